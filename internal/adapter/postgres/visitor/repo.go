// Package visitor implements the Visitor repository using PostgreSQL.
// Visit records are append-only; they are never updated, only soft-deleted
// when their blog is removed.
package visitor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sangseok/blog-backend/internal/adapter/postgres"
	"github.com/sangseok/blog-backend/internal/domain"
)

// Repo provides visitor persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new visitor repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const visitorColumns = `id, blog_id, ip_hash, user_agent, referer, created_at, deleted_at`

const createSQL = `
INSERT INTO visitors (id, blog_id, ip_hash, user_agent, referer, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + visitorColumns

const listByBlogSQL = `
SELECT ` + visitorColumns + `
FROM visitors
WHERE blog_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

const countByBlogSQL = `
SELECT count(*)
FROM visitors
WHERE blog_id = $1 AND deleted_at IS NULL`

const softDeleteByBlogIDsSQL = `
UPDATE visitors
SET deleted_at = now()
WHERE blog_id = ANY($1) AND deleted_at IS NULL`

// Create appends a visit record.
func (r *Repo) Create(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		v.ID, v.BlogID, v.IPHash, v.UserAgent, v.Referer, v.CreatedAt)

	created, err := scanVisitor(row)
	if err != nil {
		return nil, postgres.MapError(err, "visitor", v.ID)
	}

	return created, nil
}

// ListByBlog returns live visits of one blog, newest first.
func (r *Repo) ListByBlog(ctx context.Context, blogID uuid.UUID, limit, offset int) ([]*domain.Visitor, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByBlogSQL, blogID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	defer rows.Close()

	visitors := make([]*domain.Visitor, 0)
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			return nil, fmt.Errorf("list visitors: %w", err)
		}
		visitors = append(visitors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}

	return visitors, nil
}

// CountByBlog returns the number of live visits of one blog.
func (r *Repo) CountByBlog(ctx context.Context, blogID uuid.UUID) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int64
	if err := querier.QueryRow(ctx, countByBlogSQL, blogID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count visitors: %w", err)
	}

	return count, nil
}

// SoftDeleteByBlogIDs soft-deletes every live visit of the given blogs.
// A no-op when ids is empty.
func (r *Repo) SoftDeleteByBlogIDs(ctx context.Context, blogIDs []uuid.UUID) error {
	if len(blogIDs) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, softDeleteByBlogIDsSQL, blogIDs); err != nil {
		return fmt.Errorf("soft delete visitors: %w", err)
	}

	return nil
}

func scanVisitor(row pgx.Row) (*domain.Visitor, error) {
	var v domain.Visitor
	err := row.Scan(
		&v.ID, &v.BlogID, &v.IPHash, &v.UserAgent, &v.Referer,
		&v.CreatedAt, &v.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
