package server

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/PointonKaren/OCR-Projet6/internal/domain"
	apperrors "github.com/PointonKaren/OCR-Projet6/internal/errors"
)

// saucePayload is the client-sent sauce document: the JSON body of a plain
// request, or the "sauce" part of a multipart one. The embedded userId is
// legacy wire format; it must match the token identity when present.
type saucePayload struct {
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Description  string `json:"description"`
	MainPepper   string `json:"mainPepper"`
	Heat         int    `json:"heat"`
}

func (p saucePayload) input() domain.SauceInput {
	return domain.SauceInput{
		Name:         p.Name,
		Manufacturer: p.Manufacturer,
		Description:  p.Description,
		MainPepper:   p.MainPepper,
		Heat:         p.Heat,
	}
}

// checkBodyUserID rejects a request whose body claims a different identity
// than the verified token. An absent body userId is fine - the token wins.
func checkBodyUserID(bodyUserID string, callerID uuid.UUID) error {
	if bodyUserID != "" && bodyUserID != callerID.String() {
		return apperrors.ForbiddenError("userId does not match authenticated user")
	}
	return nil
}

func parseSaucePart(c echo.Context) (saucePayload, error) {
	raw := c.FormValue("sauce")
	if raw == "" {
		return saucePayload{}, apperrors.ValidationError("sauce part is required")
	}
	var p saucePayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return saucePayload{}, apperrors.ValidationError("sauce part is not valid JSON")
	}
	return p, nil
}

func uploadFromFileHeader(fileHeader *multipart.FileHeader) (*domain.Upload, multipart.File, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, nil, apperrors.InternalError("failed to open uploaded file", err)
	}
	upload := &domain.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        f,
	}
	return upload, f, nil
}

func (s *Server) handleListSauces(c echo.Context) error {
	sauces, err := s.app.ListSauces(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}

	if err := c.JSON(200, sauces); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleGetSauce(c echo.Context) error {
	id, err := sauceIDFromPath(c)
	if err != nil {
		return err
	}

	sauce, err := s.app.GetSauce(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(err)
	}

	if err := c.JSON(200, sauce); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleCreateSauce(c echo.Context) error {
	callerID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	payload, err := parseSaucePart(c)
	if err != nil {
		return err
	}
	if err := checkBodyUserID(payload.UserID, callerID); err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return mapDomainError(domain.ErrMissingImage)
	}
	upload, f, err := uploadFromFileHeader(fileHeader)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := s.app.CreateSauce(c.Request().Context(), callerID, payload.input(), upload); err != nil {
		return mapDomainError(err)
	}

	if err := c.JSON(201, map[string]string{"message": "Sauce added."}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// handleUpdateSauce accepts two shapes: multipart form data when the image is
// replaced, plain JSON when only the descriptive fields change.
func (s *Server) handleUpdateSauce(c echo.Context) error {
	callerID, err := userIDFromContext(c)
	if err != nil {
		return err
	}
	id, err := sauceIDFromPath(c)
	if err != nil {
		return err
	}

	var payload saucePayload
	var upload *domain.Upload

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		payload, err = parseSaucePart(c)
		if err != nil {
			return err
		}
		fileHeader, ferr := c.FormFile("image")
		if ferr == nil {
			var f multipart.File
			upload, f, err = uploadFromFileHeader(fileHeader)
			if err != nil {
				return err
			}
			defer f.Close()
		}
	} else {
		if err := c.Bind(&payload); err != nil {
			return apperrors.ValidationError("invalid request body")
		}
	}

	if err := checkBodyUserID(payload.UserID, callerID); err != nil {
		return err
	}

	if _, err := s.app.UpdateSauce(c.Request().Context(), id, callerID, payload.input(), upload); err != nil {
		return mapDomainError(err)
	}

	if err := c.JSON(200, map[string]string{"message": "Sauce updated."}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleDeleteSauce(c echo.Context) error {
	callerID, err := userIDFromContext(c)
	if err != nil {
		return err
	}
	id, err := sauceIDFromPath(c)
	if err != nil {
		return err
	}

	if err := s.app.DeleteSauce(c.Request().Context(), id, callerID); err != nil {
		return mapDomainError(err)
	}

	if err := c.JSON(200, map[string]string{"message": "Sauce deleted."}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

type rateRequest struct {
	UserID string `json:"userId"`
	Like   int    `json:"like"`
}

var voteMessages = map[domain.VoteOp]string{
	domain.AddLike:       "Like added.",
	domain.RemoveLike:    "Like removed.",
	domain.AddDislike:    "Dislike added.",
	domain.RemoveDislike: "Dislike removed.",
}

func (s *Server) handleRateSauce(c echo.Context) error {
	callerID, err := userIDFromContext(c)
	if err != nil {
		return err
	}
	id, err := sauceIDFromPath(c)
	if err != nil {
		return err
	}

	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if err := checkBodyUserID(req.UserID, callerID); err != nil {
		return err
	}

	op, _, err := s.app.RateSauce(c.Request().Context(), id, callerID, req.Like)
	if err != nil {
		return mapDomainError(err)
	}

	if err := c.JSON(200, map[string]string{"message": voteMessages[op]}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
