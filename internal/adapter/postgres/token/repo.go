// Package token implements the refresh token repository using PostgreSQL.
// Only token hashes are stored; the raw token never touches the database.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sangseok/blog-backend/internal/adapter/postgres"
	"github.com/sangseok/blog-backend/internal/domain"
)

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new refresh token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const tokenColumns = `id, user_id, token_hash, expires_at, created_at, revoked_at`

const createSQL = `
INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + tokenColumns

const getByHashSQL = `
SELECT ` + tokenColumns + `
FROM refresh_tokens
WHERE token_hash = $1 AND revoked_at IS NULL`

const revokeByIDSQL = `
UPDATE refresh_tokens
SET revoked_at = now()
WHERE id = $1 AND revoked_at IS NULL`

const revokeAllByUserSQL = `
UPDATE refresh_tokens
SET revoked_at = now()
WHERE user_id = $1 AND revoked_at IS NULL`

const deleteExpiredSQL = `
DELETE FROM refresh_tokens
WHERE expires_at < $1 OR revoked_at IS NOT NULL`

// Create stores a new refresh token record.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt)

	created, err := scanToken(row)
	if err != nil {
		return nil, postgres.MapError(err, "refresh token", t.ID)
	}

	return created, nil
}

// GetByHash returns the unrevoked token with the given hash.
// Expiry is checked by the caller, not here, so it can distinguish the two.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanToken(querier.QueryRow(ctx, getByHashSQL, hash))
	if err != nil {
		return nil, postgres.MapError(err, "refresh token", uuid.Nil)
	}

	return t, nil
}

// RevokeByID revokes a single token. Used during rotation.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, revokeByIDSQL, id)
	if err != nil {
		return postgres.MapError(err, "refresh token", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("refresh token %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// RevokeAllByUser revokes every active token of the user. Used on logout
// and on account deletion.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, revokeAllByUserSQL, userID); err != nil {
		return fmt.Errorf("revoke tokens for user %s: %w", userID, err)
	}

	return nil
}

// DeleteExpired removes tokens that expired before now, plus revoked ones.
// Returns the number of rows deleted.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteExpiredSQL, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanToken(row pgx.Row) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := row.Scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
