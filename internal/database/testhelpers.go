package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/PointonKaren/OCR-Projet6/internal/domain"
)

// CreateTestUser is a helper that creates a user with a unique email for
// testing. Returns the created user.
func CreateTestUser(t *testing.T, pool *pgxpool.Pool) *domain.User {
	t.Helper()

	repo := NewUserRepo(pool)
	ctx := context.Background()

	email := fmt.Sprintf("user_%s@example.com", uuid.New().String()[:8])
	user, err := repo.Create(ctx, email, "$2a$10$notarealhashnotarealhashnotareal")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, user.ID)

	return user
}

// CreateTestSauce is a helper that creates a sauce owned by ownerID with
// default descriptive fields. Returns the created sauce.
func CreateTestSauce(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) *domain.Sauce {
	t.Helper()

	repo := NewSauceRepo(pool)
	ctx := context.Background()

	sauce := &domain.Sauce{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         "Test Sauce",
		Manufacturer: "Test Co",
		Description:  "A sauce for tests",
		MainPepper:   "habanero",
		ImageURL:     "http://localhost:3000/images/test_1.jpg",
		Heat:         5,
	}
	err := repo.Create(ctx, sauce)
	require.NoError(t, err)

	return sauce
}
