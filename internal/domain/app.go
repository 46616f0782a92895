package domain

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Upload is an image file received from a multipart request. Data is consumed
// exactly once when the asset store persists it.
type Upload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

// AssetStore manages the stored image files whose lifecycle tracks the sauce
// records that reference them.
type AssetStore interface {
	// Save persists the upload under a collision-free name and returns that
	// name. Disallowed media types fail with ErrUnsupportedMediaType.
	Save(ctx context.Context, upload *Upload) (string, error)
	// Remove deletes a stored file. A file that is already gone counts as
	// removed.
	Remove(ctx context.Context, storedName string) error
	// URL maps a stored name to the server-relative reference embedded in
	// Sauce.ImageURL.
	URL(storedName string) string
	// StoredName extracts the stored name back out of an image URL.
	StoredName(imageURL string) string
}

// TokenService mints and verifies the bearer credentials that carry a user
// identity.
type TokenService interface {
	Mint(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}

// AppService is the application layer contract - handlers route all
// operations through here.
type AppService interface {
	SignUp(ctx context.Context, email, password string) (*User, error)
	LogIn(ctx context.Context, email, password string) (*User, string, error)

	CreateSauce(ctx context.Context, ownerID uuid.UUID, input SauceInput, upload *Upload) (*Sauce, error)
	GetSauce(ctx context.Context, id uuid.UUID) (*Sauce, error)
	ListSauces(ctx context.Context) ([]Sauce, error)
	UpdateSauce(ctx context.Context, id, callerID uuid.UUID, input SauceInput, upload *Upload) (*Sauce, error)
	DeleteSauce(ctx context.Context, id, callerID uuid.UUID) error
	RateSauce(ctx context.Context, id, callerID uuid.UUID, like int) (VoteOp, *Sauce, error)
}
