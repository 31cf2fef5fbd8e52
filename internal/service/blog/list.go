package blog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	blogrepo "github.com/sangseok/blog-backend/internal/adapter/postgres/blog"
	"github.com/sangseok/blog-backend/internal/domain"
)

// List returns live blogs matching the filter, newest first, with their
// tags attached.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Blog, error) {
	blogs, err := s.blogs.List(ctx, blogrepo.Filter{
		AuthorID: input.AuthorID,
		TagName:  input.TagName,
		Search:   input.Search,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("blog.List: %w", err)
	}
	if len(blogs) == 0 {
		return blogs, nil
	}

	ids := make([]uuid.UUID, 0, len(blogs))
	for _, b := range blogs {
		ids = append(ids, b.ID)
	}

	tagsByBlog, err := s.tags.ListByBlogIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("blog.List tags: %w", err)
	}
	for _, b := range blogs {
		b.Tags = tagsByBlog[b.ID]
	}

	return blogs, nil
}

// Tags returns every tag known to the system.
func (s *Service) Tags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tags.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("blog.Tags: %w", err)
	}
	return tags, nil
}
