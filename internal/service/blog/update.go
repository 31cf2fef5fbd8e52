package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sangseok/blog-backend/internal/domain"
	"github.com/sangseok/blog-backend/pkg/ctxutil"
)

// Update replaces a blog's title, description, content and optionally its
// tag set. Only the owning author or an admin may update.
// Returns ErrForbidden for anyone else, ErrNotFound for missing blogs.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Blog, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Tags = normalizeTags(input.Tags)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	isAdmin := ctxutil.IsAdminCtx(ctx)

	existing, err := s.blogs.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("blog.Update: %w", err)
	}
	if !existing.CanBeEditedBy(userID, isAdmin) {
		return nil, domain.ErrForbidden
	}

	var updated *domain.Blog
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		b, err := s.blogs.Update(txCtx, input.ID, input.Title, input.Description, input.Content)
		if err != nil {
			return fmt.Errorf("update blog: %w", err)
		}

		if input.Tags != nil {
			tags, err := s.attachTags(txCtx, b.ID, input.Tags)
			if err != nil {
				return err
			}
			b.Tags = tags
		} else {
			tags, err := s.tags.ListByBlogID(txCtx, b.ID)
			if err != nil {
				return fmt.Errorf("load tags: %w", err)
			}
			b.Tags = tags
		}

		updated = b
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("blog.Update: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("blog.Update: %w", err)
	}

	s.log.InfoContext(ctx, "blog updated",
		slog.String("blog_id", updated.ID.String()),
		slog.String("user_id", userID.String()))

	return updated, nil
}
