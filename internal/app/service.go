package app

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/PointonKaren/OCR-Projet6/internal/crypto"
	"github.com/PointonKaren/OCR-Projet6/internal/domain"
	apperrors "github.com/PointonKaren/OCR-Projet6/internal/errors"
	"github.com/PointonKaren/OCR-Projet6/internal/metrics"
)

const minPasswordLength = 8

// Service orchestrates all use cases on top of the domain repositories, the
// asset store and the token service.
type Service struct {
	users     domain.UserRepository
	sauces    domain.SauceRepository
	assets    domain.AssetStore
	tokens    domain.TokenService
	passwords crypto.Service
}

var _ domain.AppService = (*Service)(nil)

// NewService creates the application layer service.
func NewService(users domain.UserRepository, sauces domain.SauceRepository, assets domain.AssetStore, tokens domain.TokenService, passwords crypto.Service) *Service {
	return &Service{
		users:     users,
		sauces:    sauces,
		assets:    assets,
		tokens:    tokens,
		passwords: passwords,
	}
}

// SignUp registers a new account. The email is normalized to lowercase and
// must parse as a plain address; the password is stored hashed only.
func (s *Service) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.ValidationError("password must be at least 8 characters")
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, email, hash)
	if err != nil {
		return nil, err
	}

	slog.Info("User registered", "user_id", user.ID.String())
	return user, nil
}

// LogIn authenticates an account and mints a bearer token for it. A wrong
// password surfaces as ErrInvalidCredentials; an unknown email as
// ErrUserNotFound.
func (s *Service) LogIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err := s.passwords.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, crypto.ErrMismatch) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	token, err := s.tokens.Mint(user.ID)
	if err != nil {
		return nil, "", err
	}

	slog.Info("User logged in", "user_id", user.ID.String())
	return user, token, nil
}

// CreateSauce stores the image first and only then creates the record that
// references it, so a record never points at a missing file. If the record
// insert fails the stored file is removed again; a failed removal leaves an
// orphan, which is logged and counted but never fails the operation.
func (s *Service) CreateSauce(ctx context.Context, ownerID uuid.UUID, input domain.SauceInput, upload *domain.Upload) (*domain.Sauce, error) {
	if err := validateSauceInput(input); err != nil {
		return nil, err
	}
	if upload == nil {
		return nil, domain.ErrMissingImage
	}

	storedName, err := s.assets.Save(ctx, upload)
	if err != nil {
		return nil, err
	}

	sauce := &domain.Sauce{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         input.Name,
		Manufacturer: input.Manufacturer,
		Description:  input.Description,
		MainPepper:   input.MainPepper,
		ImageURL:     s.assets.URL(storedName),
		Heat:         input.Heat,
	}

	if err := s.sauces.Create(ctx, sauce); err != nil {
		s.removeStored(ctx, storedName)
		return nil, err
	}

	metrics.SauceOperationsTotal.WithLabelValues("create").Inc()
	slog.Info("Sauce created", "sauce_id", sauce.ID.String(), "user_id", ownerID.String())
	return sauce, nil
}

func (s *Service) GetSauce(ctx context.Context, id uuid.UUID) (*domain.Sauce, error) {
	return s.sauces.GetByID(ctx, id)
}

func (s *Service) ListSauces(ctx context.Context) ([]domain.Sauce, error) {
	return s.sauces.List(ctx)
}

// UpdateSauce replaces the descriptive fields and optionally the image. Only
// the owner may update. With a new image the new file is stored before the
// record is switched over, and the old file is removed only after the record
// points at the new one.
func (s *Service) UpdateSauce(ctx context.Context, id, callerID uuid.UUID, input domain.SauceInput, upload *domain.Upload) (*domain.Sauce, error) {
	if err := validateSauceInput(input); err != nil {
		return nil, err
	}

	sauce, err := s.sauces.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeMutation(sauce, callerID); err != nil {
		return nil, err
	}

	sauce.Name = input.Name
	sauce.Manufacturer = input.Manufacturer
	sauce.Description = input.Description
	sauce.MainPepper = input.MainPepper
	sauce.Heat = input.Heat

	oldImageURL := sauce.ImageURL
	var newStoredName string
	if upload != nil {
		newStoredName, err = s.assets.Save(ctx, upload)
		if err != nil {
			return nil, err
		}
		sauce.ImageURL = s.assets.URL(newStoredName)
	}

	if err := s.sauces.Update(ctx, sauce); err != nil {
		if newStoredName != "" {
			s.removeStored(ctx, newStoredName)
		}
		return nil, err
	}

	if upload != nil {
		s.removeStored(ctx, s.assets.StoredName(oldImageURL))
	}

	metrics.SauceOperationsTotal.WithLabelValues("update").Inc()
	slog.Info("Sauce updated", "sauce_id", sauce.ID.String(), "user_id", callerID.String(), "image_replaced", upload != nil)
	return sauce, nil
}

// DeleteSauce removes the record first and the image after: a dangling record
// reference must never occur, an orphaned file is tolerable.
func (s *Service) DeleteSauce(ctx context.Context, id, callerID uuid.UUID) error {
	sauce, err := s.sauces.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.AuthorizeMutation(sauce, callerID); err != nil {
		return err
	}

	if err := s.sauces.Delete(ctx, id); err != nil {
		return err
	}

	s.removeStored(ctx, s.assets.StoredName(sauce.ImageURL))

	metrics.SauceOperationsTotal.WithLabelValues("delete").Inc()
	slog.Info("Sauce deleted", "sauce_id", id.String(), "user_id", callerID.String())
	return nil
}

// RateSauce runs the vote state machine: the wire value is parsed to a
// requested disposition, the decision table turns it into an operation, and
// the store applies that operation conditionally. A request the table rejects
// and a request that loses a race both surface as ErrVoteNotAllowed.
func (s *Service) RateSauce(ctx context.Context, id, callerID uuid.UUID, like int) (domain.VoteOp, *domain.Sauce, error) {
	requested, err := domain.ParseVoteValue(like)
	if err != nil {
		return 0, nil, err
	}

	sauce, err := s.sauces.GetByID(ctx, id)
	if err != nil {
		return 0, nil, err
	}

	op, err := domain.Transition(sauce.DispositionOf(callerID), requested)
	if err != nil {
		metrics.VoteRejectionsTotal.Inc()
		return 0, nil, err
	}

	updated, err := s.sauces.ApplyVote(ctx, id, callerID, op)
	if err != nil {
		if errors.Is(err, domain.ErrVoteNotAllowed) {
			metrics.VoteRejectionsTotal.Inc()
		}
		return 0, nil, err
	}

	metrics.VotesAppliedTotal.WithLabelValues(op.String()).Inc()
	slog.Debug("Vote applied", "sauce_id", id.String(), "user_id", callerID.String(), "operation", op.String())
	return op, updated, nil
}

// removeStored deletes a stored image, tolerating failure: the file becomes
// an orphan, which is logged and counted.
func (s *Service) removeStored(ctx context.Context, storedName string) {
	if storedName == "" {
		return
	}
	if err := s.assets.Remove(ctx, storedName); err != nil {
		metrics.OrphanedAssetsTotal.Inc()
		slog.Error("Failed to remove stored image, leaving orphan", "stored_name", storedName, "error", err)
	}
}

func validateEmail(email string) error {
	if email == "" {
		return apperrors.ValidationError("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return apperrors.ValidationError("email is not a valid address").WithField("email", email)
	}
	return nil
}

func validateSauceInput(input domain.SauceInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return apperrors.ValidationError("name is required")
	case strings.TrimSpace(input.Manufacturer) == "":
		return apperrors.ValidationError("manufacturer is required")
	case strings.TrimSpace(input.Description) == "":
		return apperrors.ValidationError("description is required")
	case strings.TrimSpace(input.MainPepper) == "":
		return apperrors.ValidationError("mainPepper is required")
	case input.Heat < domain.HeatMin || input.Heat > domain.HeatMax:
		return apperrors.ValidationError("heat must be between 1 and 10").WithField("heat", input.Heat)
	}
	return nil
}
