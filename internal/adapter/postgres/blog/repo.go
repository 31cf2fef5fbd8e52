// Package blog implements the Blog repository using PostgreSQL, including
// the blog_tags join table. Static queries are raw SQL; List builds its
// query with squirrel because every filter is optional.
package blog

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sangseok/blog-backend/internal/adapter/postgres"
	"github.com/sangseok/blog-backend/internal/domain"
)

// Repo provides blog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new blog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const blogColumns = `id, title, description, content, author_id, created_at, updated_at, deleted_at`

const createSQL = `
INSERT INTO blogs (id, title, description, content, author_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + blogColumns

const getByIDSQL = `
SELECT ` + blogColumns + `
FROM blogs
WHERE id = $1 AND deleted_at IS NULL`

const updateSQL = `
UPDATE blogs
SET title = $2, description = $3, content = $4, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + blogColumns

const softDeleteSQL = `
UPDATE blogs
SET deleted_at = now(), updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

const softDeleteByAuthorSQL = `
UPDATE blogs
SET deleted_at = now(), updated_at = now()
WHERE author_id = $1 AND deleted_at IS NULL
RETURNING id`

const linkTagSQL = `
INSERT INTO blog_tags (blog_id, tag_id)
VALUES ($1, $2)
ON CONFLICT (blog_id, tag_id) DO NOTHING`

const unlinkAllTagsSQL = `
DELETE FROM blog_tags WHERE blog_id = $1`

// Filter defines optional parameters for listing blogs.
type Filter struct {
	// AuthorID restricts the listing to one owner.
	AuthorID *uuid.UUID

	// TagName restricts the listing to blogs linked to the named tag.
	TagName *string

	// Search performs ILIKE '%...%' on the title.
	Search *string

	// Limit is the maximum number of blogs to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of blogs to skip.
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

func (f *Filter) normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// Create inserts a new blog and returns the persisted row.
// Returns domain.ErrAlreadyExists when the title collides with a live row.
func (r *Repo) Create(ctx context.Context, b *domain.Blog) (*domain.Blog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		b.ID, b.Title, b.Description, b.Content, b.AuthorID, b.CreatedAt, b.UpdatedAt)

	created, err := scanBlog(row)
	if err != nil {
		return nil, postgres.MapError(err, "blog", b.ID)
	}

	return created, nil
}

// GetByID returns a live blog by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBlog(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "blog", id)
	}

	return b, nil
}

// List returns live blogs matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter Filter) ([]*domain.Blog, error) {
	filter.normalize()

	qb := sq.Select("b.id", "b.title", "b.description", "b.content", "b.author_id",
		"b.created_at", "b.updated_at", "b.deleted_at").
		From("blogs b").
		Where(sq.Eq{"b.deleted_at": nil}).
		OrderBy("b.created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		PlaceholderFormat(sq.Dollar)

	if filter.AuthorID != nil {
		qb = qb.Where(sq.Eq{"b.author_id": *filter.AuthorID})
	}
	if filter.Search != nil && *filter.Search != "" {
		qb = qb.Where(sq.ILike{"b.title": "%" + *filter.Search + "%"})
	}
	if filter.TagName != nil && *filter.TagName != "" {
		qb = qb.Join("blog_tags bt ON bt.blog_id = b.id").
			Join("tags t ON t.id = bt.tag_id").
			Where(sq.Eq{"t.name": *filter.TagName})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]*domain.Blog, 0)
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("list blogs: %w", err)
		}
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}

	return blogs, nil
}

// Update replaces title, description and content of a live blog.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, title string, description *string, content string) (*domain.Blog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBlog(querier.QueryRow(ctx, updateSQL, id, title, description, content))
	if err != nil {
		return nil, postgres.MapError(err, "blog", id)
	}

	return b, nil
}

// SoftDelete marks the blog logically removed.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, softDeleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "blog", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("blog %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// SoftDeleteByAuthor soft-deletes every live blog of the given author and
// returns their ids so the caller can cascade to visitors in the same
// transaction. Join rows in blog_tags are left in place: tags are shared
// and have no owner.
func (r *Repo) SoftDeleteByAuthor(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, softDeleteByAuthorSQL, authorID)
	if err != nil {
		return nil, fmt.Errorf("soft delete blogs by author: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("soft delete blogs by author: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("soft delete blogs by author: %w", err)
	}

	return ids, nil
}

// ReplaceTags rewires the blog_tags join rows for a blog to exactly the
// given tag ids. Must run inside the same transaction as the tag upserts
// so the cascade is all-or-nothing.
func (r *Repo) ReplaceTags(ctx context.Context, blogID uuid.UUID, tagIDs []uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, unlinkAllTagsSQL, blogID); err != nil {
		return postgres.MapError(err, "blog_tags", blogID)
	}

	for _, tagID := range tagIDs {
		if _, err := querier.Exec(ctx, linkTagSQL, blogID, tagID); err != nil {
			return postgres.MapError(err, "blog_tags", blogID)
		}
	}

	return nil
}

func scanBlog(row pgx.Row) (*domain.Blog, error) {
	var b domain.Blog
	err := row.Scan(
		&b.ID, &b.Title, &b.Description, &b.Content, &b.AuthorID,
		&b.CreatedAt, &b.UpdatedAt, &b.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
