package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sangseok/blog-backend/internal/domain"
	"github.com/sangseok/blog-backend/pkg/ctxutil"
)

// Create creates a blog owned by the authenticated user. Missing tags are
// created lazily; the blog, its tags and the links land in one transaction,
// so a failing tag leaves no half-created blog behind.
// Returns ErrAlreadyExists when the title is taken by a live blog.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Blog, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Tags = normalizeTags(input.Tags)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	authorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var created *domain.Blog
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		b, err := s.blogs.Create(txCtx, &domain.Blog{
			ID:          uuid.New(),
			Title:       input.Title,
			Description: input.Description,
			Content:     input.Content,
			AuthorID:    authorID,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create blog: %w", err)
		}

		tags, err := s.attachTags(txCtx, b.ID, input.Tags)
		if err != nil {
			return err
		}
		b.Tags = tags

		created = b
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("blog.Create: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("blog.Create: %w", err)
	}

	s.log.InfoContext(ctx, "blog created",
		slog.String("blog_id", created.ID.String()),
		slog.String("author_id", authorID.String()))

	return created, nil
}

// attachTags ensures the named tags exist and rewires the blog's links to
// exactly that set. Must run inside a transaction.
func (s *Service) attachTags(ctx context.Context, blogID uuid.UUID, names []string) ([]domain.Tag, error) {
	tags, err := s.tags.EnsureByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("ensure tags: %w", err)
	}

	tagIDs := make([]uuid.UUID, 0, len(tags))
	for _, t := range tags {
		tagIDs = append(tagIDs, t.ID)
	}
	if err := s.blogs.ReplaceTags(ctx, blogID, tagIDs); err != nil {
		return nil, fmt.Errorf("link tags: %w", err)
	}

	return tags, nil
}
