package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sangseok/blog-backend/internal/domain"
	"github.com/sangseok/blog-backend/pkg/ctxutil"
)

// Me returns the authenticated user together with their profile, if any.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Me(ctx context.Context) (*domain.User, *domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("user.Me: %w", err)
	}

	if user.ProfileID == nil {
		return user, nil, nil
	}

	profile, err := s.profiles.GetByID(ctx, *user.ProfileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Dangling reference; treat as profile-less rather than fail.
			return user, nil, nil
		}
		return nil, nil, fmt.Errorf("user.Me get profile: %w", err)
	}

	return user, profile, nil
}

// List returns registered users.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.User, error) {
	input.normalize()

	users, err := s.users.List(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// UpsertProfile creates the authenticated user's profile on first call and
// updates it afterwards. Creation links the profile to the user in the same
// transaction.
func (s *Service) UpsertProfile(ctx context.Context, input UpsertProfileInput) (*domain.Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.UpsertProfile get user: %w", err)
	}

	if user.ProfileID != nil {
		profile, err := s.profiles.Update(ctx, *user.ProfileID, input.Bio, input.AvatarURL, input.Website)
		if err != nil {
			return nil, fmt.Errorf("user.UpsertProfile update: %w", err)
		}
		return profile, nil
	}

	var created *domain.Profile
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		profile, err := s.profiles.Create(txCtx, &domain.Profile{
			ID:        uuid.New(),
			Bio:       input.Bio,
			AvatarURL: input.AvatarURL,
			Website:   input.Website,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}

		if _, err := s.users.SetProfile(txCtx, userID, profile.ID); err != nil {
			return fmt.Errorf("link profile: %w", err)
		}

		created = profile
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpsertProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile created",
		slog.String("user_id", userID.String()),
		slog.String("profile_id", created.ID.String()))

	return created, nil
}

// DeleteAccount soft-deletes the authenticated user, all their blogs and
// those blogs' visitor records in one transaction, then revokes every
// refresh token. Tags are shared and survive untouched.
func (s *Service) DeleteAccount(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.SoftDelete(txCtx, userID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}

		blogIDs, err := s.blogs.SoftDeleteByAuthor(txCtx, userID)
		if err != nil {
			return fmt.Errorf("delete blogs: %w", err)
		}

		if err := s.visitors.SoftDeleteByBlogIDs(txCtx, blogIDs); err != nil {
			return fmt.Errorf("delete visitors: %w", err)
		}

		if err := s.tokens.RevokeAllByUser(txCtx, userID); err != nil {
			return fmt.Errorf("revoke tokens: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("user.DeleteAccount: %w", err)
	}

	s.log.InfoContext(ctx, "account deleted", slog.String("user_id", userID.String()))
	return nil
}
