// Package user implements the User repository using PostgreSQL.
// All queries use raw SQL. Live-row semantics: every read filters
// deleted_at IS NULL; email uniqueness is enforced by a partial unique
// index on live rows, so the check-and-insert is race-free.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sangseok/blog-backend/internal/adapter/postgres"
	"github.com/sangseok/blog-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, username, password_hash, is_admin, profile_id, created_at, updated_at, deleted_at`

const createSQL = `
INSERT INTO users (id, email, username, password_hash, is_admin, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + userColumns

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1 AND deleted_at IS NULL`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1 AND deleted_at IS NULL`

const listSQL = `
SELECT ` + userColumns + `
FROM users
WHERE deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

const setProfileSQL = `
UPDATE users
SET profile_id = $2, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + userColumns

const softDeleteSQL = `
UPDATE users
SET deleted_at = now(), updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

// Create inserts a new user and returns the persisted row.
// Returns domain.ErrAlreadyExists when the email collides with a live row.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		u.ID, u.Email, u.Username, u.PasswordHash, u.IsAdmin, u.CreatedAt, u.UpdatedAt)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return created, nil
}

// GetByID returns a live user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByEmail returns a live user by email (case-sensitive exact match).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// List returns live users ordered by registration time, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

// SetProfile links a profile to the user (1:1). A second user linking the
// same profile violates the partial unique index and maps to ErrAlreadyExists.
func (r *Repo) SetProfile(ctx context.Context, userID, profileID uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, setProfileSQL, userID, profileID))
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	return u, nil
}

// SoftDelete marks the user logically removed. Idempotent in effect: an
// already-deleted user maps to domain.ErrNotFound.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, softDeleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// scanUser reads one user row from a pgx.Row or pgx.Rows.
func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.IsAdmin,
		&u.ProfileID, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
