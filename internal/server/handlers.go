package server

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/PointonKaren/OCR-Projet6/internal/domain"
	apperrors "github.com/PointonKaren/OCR-Projet6/internal/errors"
)

// userIDFromContext reads the caller identity set by requireAuth.
func userIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, apperrors.InternalError("invalid user ID in context", nil)
	}
	return userID, nil
}

// sauceIDFromPath parses the :id path parameter.
func sauceIDFromPath(c echo.Context) (uuid.UUID, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.ValidationError("invalid sauce ID format").WithField("id", raw)
	}
	return id, nil
}

// mapDomainError translates domain sentinel errors to structured errors so
// the error middleware can pick the right status code. Structured errors
// pass through unchanged.
func mapDomainError(err error) error {
	var structured *apperrors.Error
	if errors.As(err, &structured) {
		return structured
	}

	switch {
	case errors.Is(err, domain.ErrSauceNotFound):
		return apperrors.NotFoundError("sauce not found")
	case errors.Is(err, domain.ErrUserNotFound):
		return apperrors.NotFoundError("user not found")
	case errors.Is(err, domain.ErrEmailTaken):
		return apperrors.ConflictError("email already registered")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return apperrors.UnauthorizedError("invalid credentials")
	case errors.Is(err, domain.ErrNotOwner):
		return apperrors.ForbiddenError("unauthorized request")
	case errors.Is(err, domain.ErrVoteNotAllowed):
		return apperrors.ForbiddenError("vote not allowed in current state")
	case errors.Is(err, domain.ErrInvalidVoteValue):
		return apperrors.ValidationError("like must be -1, 0 or 1")
	case errors.Is(err, domain.ErrMissingImage):
		return apperrors.ValidationError("image file is required")
	case errors.Is(err, domain.ErrUnsupportedMediaType):
		return apperrors.ValidationError("image must be jpg, jpeg or png")
	default:
		return apperrors.InternalError("internal server error", err)
	}
}
