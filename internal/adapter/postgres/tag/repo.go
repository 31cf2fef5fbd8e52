// Package tag implements the Tag repository using PostgreSQL.
// Tags are created lazily and shared across blogs; deleting a blog or a
// user never touches this table.
package tag

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sangseok/blog-backend/internal/adapter/postgres"
	"github.com/sangseok/blog-backend/internal/domain"
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const tagColumns = `id, name, created_at, updated_at, deleted_at`

const ensureSQL = `
INSERT INTO tags (id, name, created_at, updated_at)
VALUES ($1, $2, $3, $3)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING ` + tagColumns

const listAllSQL = `
SELECT ` + tagColumns + `
FROM tags
ORDER BY name`

const listByBlogIDSQL = `
SELECT t.id, t.name, t.created_at, t.updated_at, t.deleted_at
FROM tags t
JOIN blog_tags bt ON bt.tag_id = t.id
WHERE bt.blog_id = $1
ORDER BY t.name`

const listByBlogIDsSQL = `
SELECT bt.blog_id, t.id, t.name, t.created_at, t.updated_at, t.deleted_at
FROM tags t
JOIN blog_tags bt ON bt.tag_id = t.id
WHERE bt.blog_id = ANY($1)
ORDER BY t.name`

// EnsureByNames returns the tags with the given names, creating any that do
// not yet exist. The no-op DO UPDATE makes RETURNING yield the existing row
// on conflict, so one round trip per name covers both cases.
func (r *Repo) EnsureByNames(ctx context.Context, names []string) ([]domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	tags := make([]domain.Tag, 0, len(names))
	for _, name := range names {
		var t domain.Tag
		err := querier.QueryRow(ctx, ensureSQL, uuid.New(), name, now).
			Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt)
		if err != nil {
			return nil, fmt.Errorf("ensure tag %q: %w", name, err)
		}
		tags = append(tags, t)
	}

	return tags, nil
}

// ListAll returns every tag ordered by name.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAllSQL)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags := make([]domain.Tag, 0)
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt); err != nil {
			return nil, fmt.Errorf("list tags: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return tags, nil
}

// ListByBlogID returns the tags linked to one blog, ordered by name.
func (r *Repo) ListByBlogID(ctx context.Context, blogID uuid.UUID) ([]domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByBlogIDSQL, blogID)
	if err != nil {
		return nil, fmt.Errorf("list tags by blog: %w", err)
	}
	defer rows.Close()

	tags := make([]domain.Tag, 0)
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt); err != nil {
			return nil, fmt.Errorf("list tags by blog: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tags by blog: %w", err)
	}

	return tags, nil
}

// ListByBlogIDs returns the tags of many blogs in one round trip, keyed by
// blog id. Used to decorate blog listings.
func (r *Repo) ListByBlogIDs(ctx context.Context, blogIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error) {
	result := make(map[uuid.UUID][]domain.Tag, len(blogIDs))
	if len(blogIDs) == 0 {
		return result, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByBlogIDsSQL, blogIDs)
	if err != nil {
		return nil, fmt.Errorf("list tags by blogs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var blogID uuid.UUID
		var t domain.Tag
		if err := rows.Scan(&blogID, &t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt); err != nil {
			return nil, fmt.Errorf("list tags by blogs: %w", err)
		}
		result[blogID] = append(result[blogID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tags by blogs: %w", err)
	}

	return result, nil
}
