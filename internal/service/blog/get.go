package blog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sangseok/blog-backend/internal/domain"
)

// Get returns a live blog with its tags.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	b, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("blog.Get: %w", err)
	}

	tags, err := s.tags.ListByBlogID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("blog.Get tags: %w", err)
	}
	b.Tags = tags

	return b, nil
}
