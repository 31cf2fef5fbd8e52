// Package user implements account listing, profile management and account
// deletion with its cascade.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sangseok/blog-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
	SetProfile(ctx context.Context, userID, profileID uuid.UUID) (*domain.User, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// profileRepo defines the profile repository interface needed by user service.
type profileRepo interface {
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, id uuid.UUID, bio, avatarURL, website *string) (*domain.Profile, error)
}

// blogRepo defines the blog repository interface needed by user service.
type blogRepo interface {
	SoftDeleteByAuthor(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error)
}

// visitorRepo defines the visitor repository interface needed by user service.
type visitorRepo interface {
	SoftDeleteByBlogIDs(ctx context.Context, blogIDs []uuid.UUID) error
}

// tokenRepo defines the refresh token repository interface needed by user service.
type tokenRepo interface {
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	profiles profileRepo
	blogs    blogRepo
	visitors visitorRepo
	tokens   tokenRepo
	tx       txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	profiles profileRepo,
	blogs blogRepo,
	visitors visitorRepo,
	tokens tokenRepo,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		profiles: profiles,
		blogs:    blogs,
		visitors: visitors,
		tokens:   tokens,
		tx:       tx,
	}
}
