package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sangseok/blog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a regular user with a placeholder bcrypt hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:       uuid.New(),
		Email:    "testuser-" + suffix + "@example.com",
		Username: "Test User " + suffix,
		// bcrypt hash of "password" with cost 4; login is never exercised
		// through seeded users, only the stored shape matters.
		PasswordHash: "$2a$04$XgXBdNVNWTTMU/Cx5rYdCuRCCUTAAFgTSxO0qLtAAL3MIBS0av/l2",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, is_admin, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.IsAdmin, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedAdmin creates a user with the admin flag set.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	user := SeedUser(t, pool)
	user.IsAdmin = true

	if _, err := pool.Exec(ctx, `UPDATE users SET is_admin = true WHERE id = $1`, user.ID); err != nil {
		t.Fatalf("testhelper: SeedAdmin promote user: %v", err)
	}

	return user
}

// SeedBlog creates a blog owned by the given user.
func SeedBlog(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID) domain.Blog {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	description := "Description " + suffix
	blog := domain.Blog{
		ID:          uuid.New(),
		Title:       "Test Blog " + suffix,
		Description: &description,
		Content:     "Content " + suffix,
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO blogs (id, title, description, content, author_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		blog.ID, blog.Title, blog.Description, blog.Content, blog.AuthorID, blog.CreatedAt, blog.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBlog insert blog: %v", err)
	}

	return blog
}

// SeedTag creates a tag with a unique name.
func SeedTag(t *testing.T, pool *pgxpool.Pool) domain.Tag {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	tag := domain.Tag{
		ID:        uuid.New(),
		Name:      "tag-" + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tags (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		tag.ID, tag.Name, tag.CreatedAt, tag.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag insert tag: %v", err)
	}

	return tag
}

// LinkTag attaches a tag to a blog through blog_tags.
func LinkTag(t *testing.T, pool *pgxpool.Pool, blogID, tagID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO blog_tags (blog_id, tag_id) VALUES ($1, $2)`, blogID, tagID)
	if err != nil {
		t.Fatalf("testhelper: LinkTag insert blog_tag: %v", err)
	}
}

// SeedVisitor creates a visit record for the given blog.
func SeedVisitor(t *testing.T, pool *pgxpool.Pool, blogID uuid.UUID) domain.Visitor {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	referer := "https://example.com/" + suffix
	visitor := domain.Visitor{
		ID:        uuid.New(),
		BlogID:    blogID,
		IPHash:    "iphash-" + suffix,
		UserAgent: "test-agent/1.0",
		Referer:   &referer,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO visitors (id, blog_id, ip_hash, user_agent, referer, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		visitor.ID, visitor.BlogID, visitor.IPHash, visitor.UserAgent, visitor.Referer, visitor.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVisitor insert visitor: %v", err)
	}

	return visitor
}

// SeedRefreshToken creates an active refresh token for the given user.
func SeedRefreshToken(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, expiresAt time.Time) domain.RefreshToken {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	token := domain.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "hash-" + uuid.New().String(),
		ExpiresAt: expiresAt.UTC().Truncate(time.Microsecond),
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		token.ID, token.UserID, token.TokenHash, token.ExpiresAt, token.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRefreshToken insert token: %v", err)
	}

	return token
}
