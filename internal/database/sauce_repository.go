package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PointonKaren/OCR-Projet6/internal/domain"
)

// sauceColumns must match the Scan order in scanSauce.
const sauceColumns = `id, owner_id, name, manufacturer, description, main_pepper, image_url, heat, likes, dislikes, users_liked, users_disliked, created_at, updated_at`

// voteStatements holds one conditional UPDATE per legal transition. Each
// statement carries its precondition in the WHERE clause and applies the
// counter delta together with the membership change, so the decision table's
// outcome is enforced at the store even under concurrent requests. Zero rows
// matched means the precondition no longer holds.
var voteStatements = map[domain.VoteOp]string{
	domain.AddLike: `
		UPDATE sauces
		SET likes = likes + 1, users_liked = array_append(users_liked, $2), updated_at = NOW()
		WHERE id = $1
		  AND NOT ($2 = ANY(users_liked))
		  AND NOT ($2 = ANY(users_disliked))
		RETURNING ` + sauceColumns,
	domain.RemoveLike: `
		UPDATE sauces
		SET likes = likes - 1, users_liked = array_remove(users_liked, $2), updated_at = NOW()
		WHERE id = $1
		  AND $2 = ANY(users_liked)
		RETURNING ` + sauceColumns,
	domain.AddDislike: `
		UPDATE sauces
		SET dislikes = dislikes + 1, users_disliked = array_append(users_disliked, $2), updated_at = NOW()
		WHERE id = $1
		  AND NOT ($2 = ANY(users_liked))
		  AND NOT ($2 = ANY(users_disliked))
		RETURNING ` + sauceColumns,
	domain.RemoveDislike: `
		UPDATE sauces
		SET dislikes = dislikes - 1, users_disliked = array_remove(users_disliked, $2), updated_at = NOW()
		WHERE id = $1
		  AND $2 = ANY(users_disliked)
		RETURNING ` + sauceColumns,
}

// SauceRepo implements domain.SauceRepository backed by PostgreSQL.
type SauceRepo struct {
	pool *pgxpool.Pool
}

func NewSauceRepo(pool *pgxpool.Pool) *SauceRepo {
	return &SauceRepo{pool: pool}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSauce(row rowScanner) (*domain.Sauce, error) {
	var s domain.Sauce
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Name, &s.Manufacturer, &s.Description,
		&s.MainPepper, &s.ImageURL, &s.Heat, &s.Likes, &s.Dislikes,
		&s.UsersLiked, &s.UsersDisliked, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SauceRepo) Create(ctx context.Context, sauce *domain.Sauce) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO sauces (id, owner_id, name, manufacturer, description, main_pepper, image_url, heat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, sauce.ID, sauce.OwnerID, sauce.Name, sauce.Manufacturer, sauce.Description,
		sauce.MainPepper, sauce.ImageURL, sauce.Heat)

	if err := row.Scan(&sauce.CreatedAt, &sauce.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create sauce: %w", err)
	}

	sauce.Likes, sauce.Dislikes = 0, 0
	sauce.UsersLiked, sauce.UsersDisliked = []uuid.UUID{}, []uuid.UUID{}
	return nil
}

func (r *SauceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sauce, error) {
	sauce, err := scanSauce(r.pool.QueryRow(ctx,
		`SELECT `+sauceColumns+` FROM sauces WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSauceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sauce: %w", err)
	}
	return sauce, nil
}

func (r *SauceRepo) List(ctx context.Context) ([]domain.Sauce, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+sauceColumns+` FROM sauces ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sauces: %w", err)
	}
	defer rows.Close()

	sauces := []domain.Sauce{}
	for rows.Next() {
		s, err := scanSauce(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sauce: %w", err)
		}
		sauces = append(sauces, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sauces: %w", err)
	}
	return sauces, nil
}

// Update persists the client-writable fields plus the image reference.
// Counters and vote sets are deliberately not part of the statement.
func (r *SauceRepo) Update(ctx context.Context, sauce *domain.Sauce) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE sauces
		SET name = $2, manufacturer = $3, description = $4, main_pepper = $5, heat = $6, image_url = $7, updated_at = NOW()
		WHERE id = $1
	`, sauce.ID, sauce.Name, sauce.Manufacturer, sauce.Description, sauce.MainPepper, sauce.Heat, sauce.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to update sauce: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSauceNotFound
	}
	return nil
}

func (r *SauceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sauces WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sauce: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSauceNotFound
	}
	return nil
}

// ApplyVote runs the conditional statement for op. When no row matches, the
// sauce either no longer exists (ErrSauceNotFound) or the precondition failed
// (ErrVoteNotAllowed) - the latter is what a lost race or a retried request
// surfaces as, which keeps re-issued votes from double-applying.
func (r *SauceRepo) ApplyVote(ctx context.Context, sauceID, userID uuid.UUID, op domain.VoteOp) (*domain.Sauce, error) {
	stmt, ok := voteStatements[op]
	if !ok {
		return nil, fmt.Errorf("unknown vote operation %d", op)
	}

	sauce, err := scanSauce(r.pool.QueryRow(ctx, stmt, sauceID, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if err := r.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM sauces WHERE id = $1)`, sauceID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("failed to check sauce existence: %w", err)
		}
		if !exists {
			return nil, domain.ErrSauceNotFound
		}
		return nil, domain.ErrVoteNotAllowed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to apply vote: %w", err)
	}
	return sauce, nil
}
