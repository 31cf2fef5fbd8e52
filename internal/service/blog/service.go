// Package blog implements blog CRUD with tag management, visit recording
// and visitor listings.
package blog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	blogrepo "github.com/sangseok/blog-backend/internal/adapter/postgres/blog"
	"github.com/sangseok/blog-backend/internal/domain"
)

// blogRepo defines the blog repository interface needed by blog service.
type blogRepo interface {
	Create(ctx context.Context, b *domain.Blog) (*domain.Blog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	List(ctx context.Context, filter blogrepo.Filter) ([]*domain.Blog, error)
	Update(ctx context.Context, id uuid.UUID, title string, description *string, content string) (*domain.Blog, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ReplaceTags(ctx context.Context, blogID uuid.UUID, tagIDs []uuid.UUID) error
}

// tagRepo defines the tag repository interface needed by blog service.
type tagRepo interface {
	EnsureByNames(ctx context.Context, names []string) ([]domain.Tag, error)
	ListAll(ctx context.Context) ([]domain.Tag, error)
	ListByBlogID(ctx context.Context, blogID uuid.UUID) ([]domain.Tag, error)
	ListByBlogIDs(ctx context.Context, blogIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error)
}

// visitorRepo defines the visitor repository interface needed by blog service.
type visitorRepo interface {
	Create(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error)
	ListByBlog(ctx context.Context, blogID uuid.UUID, limit, offset int) ([]*domain.Visitor, error)
	CountByBlog(ctx context.Context, blogID uuid.UUID) (int64, error)
	SoftDeleteByBlogIDs(ctx context.Context, blogIDs []uuid.UUID) error
}

// txManager defines the transaction manager interface needed by blog service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements blog operations.
type Service struct {
	log      *slog.Logger
	blogs    blogRepo
	tags     tagRepo
	visitors visitorRepo
	tx       txManager
}

// NewService creates a new blog service instance.
func NewService(
	logger *slog.Logger,
	blogs blogRepo,
	tags tagRepo,
	visitors visitorRepo,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "blog"),
		blogs:    blogs,
		tags:     tags,
		visitors: visitors,
		tx:       tx,
	}
}
