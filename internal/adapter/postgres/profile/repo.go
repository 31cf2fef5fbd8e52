// Package profile implements the Profile repository using PostgreSQL.
// A profile is a 1:1 descriptive extension of a user; the owning side of
// the link lives in users.profile_id.
package profile

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sangseok/blog-backend/internal/adapter/postgres"
	"github.com/sangseok/blog-backend/internal/domain"
)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const profileColumns = `id, bio, avatar_url, website, created_at, updated_at, deleted_at`

const createSQL = `
INSERT INTO profiles (id, bio, avatar_url, website, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + profileColumns

const getByIDSQL = `
SELECT ` + profileColumns + `
FROM profiles
WHERE id = $1 AND deleted_at IS NULL`

const updateSQL = `
UPDATE profiles
SET bio = $2, avatar_url = $3, website = $4, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + profileColumns

// Create inserts a new profile and returns the persisted row.
func (r *Repo) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		p.ID, p.Bio, p.AvatarURL, p.Website, p.CreatedAt, p.UpdatedAt)

	created, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.ID)
	}

	return created, nil
}

// GetByID returns a live profile by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProfile(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	return p, nil
}

// Update replaces the descriptive attributes of a profile.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, bio, avatarURL, website *string) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProfile(querier.QueryRow(ctx, updateSQL, id, bio, avatarURL, website))
	if err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	return p, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.Bio, &p.AvatarURL, &p.Website, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
