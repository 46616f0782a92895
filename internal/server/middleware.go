package server

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/PointonKaren/OCR-Projet6/internal/errors"
)

// requireAuth extracts and verifies the Bearer token and stores the caller's
// user ID under "userID" in the request context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return apperrors.UnauthorizedError("missing authorization header")
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return apperrors.UnauthorizedError("authorization header must be a bearer token")
		}

		userID, err := s.tokens.Verify(token)
		if err != nil {
			return apperrors.UnauthorizedError("invalid or expired token")
		}

		c.Set("userID", userID)
		return next(c)
	}
}
