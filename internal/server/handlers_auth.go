package server

import (
	"fmt"

	"github.com/labstack/echo/v4"

	apperrors "github.com/PointonKaren/OCR-Projet6/internal/errors"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleSignUp(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	if _, err := s.app.SignUp(c.Request().Context(), req.Email, req.Password); err != nil {
		return mapDomainError(err)
	}

	if err := c.JSON(201, map[string]string{"message": "User created."}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleLogIn(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	user, token, err := s.app.LogIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return mapDomainError(err)
	}

	if err := c.JSON(200, map[string]string{
		"userId": user.ID.String(),
		"token":  token,
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
