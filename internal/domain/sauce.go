package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Sauce is the rateable resource. Likes/Dislikes are derived from the
// membership sets and are only ever changed through ApplyVote; the two must
// stay consistent at rest (Likes == len(UsersLiked), no user in both sets).
type Sauce struct {
	ID            uuid.UUID   `json:"id"`
	OwnerID       uuid.UUID   `json:"userId"`
	Name          string      `json:"name"`
	Manufacturer  string      `json:"manufacturer"`
	Description   string      `json:"description"`
	MainPepper    string      `json:"mainPepper"`
	ImageURL      string      `json:"imageUrl"`
	Heat          int         `json:"heat"`
	Likes         int         `json:"likes"`
	Dislikes      int         `json:"dislikes"`
	UsersLiked    []uuid.UUID `json:"usersLiked"`
	UsersDisliked []uuid.UUID `json:"usersDisliked"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// SauceInput carries the client-writable descriptive fields. OwnerID,
// counters and vote sets are never taken from a request.
type SauceInput struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Description  string `json:"description"`
	MainPepper   string `json:"mainPepper"`
	Heat         int    `json:"heat"`
}

const (
	HeatMin = 1
	HeatMax = 10
)

// DispositionOf reconstructs a user's current vote state from set membership.
func (s *Sauce) DispositionOf(userID uuid.UUID) Disposition {
	for _, id := range s.UsersLiked {
		if id == userID {
			return Liked
		}
	}
	for _, id := range s.UsersDisliked {
		if id == userID {
			return Disliked
		}
	}
	return None
}

// SauceRepository abstracts sauce persistence.
//
// ApplyVote is the atomic conditional mutation at the heart of the rating
// contract: the operation's precondition (set membership) and its delta
// (counter adjustment plus membership change) are applied as one store
// operation, never as a read followed by an unconditional write. Zero rows
// matched while the sauce exists means the precondition failed and surfaces
// as ErrVoteNotAllowed.
type SauceRepository interface {
	Create(ctx context.Context, sauce *Sauce) error
	GetByID(ctx context.Context, id uuid.UUID) (*Sauce, error)
	List(ctx context.Context) ([]Sauce, error)
	Update(ctx context.Context, sauce *Sauce) error
	Delete(ctx context.Context, id uuid.UUID) error
	ApplyVote(ctx context.Context, sauceID, userID uuid.UUID, op VoteOp) (*Sauce, error)
}
