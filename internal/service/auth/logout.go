package auth

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

// Logout revokes all refresh tokens for the authenticated user.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// Identify validates an access token and resolves it to a live user.
// Any failure, malformed token, bad signature, expired claims or a deleted
// account, uniformly reports absence instead of an error so callers treat
// the request as anonymous.
func (s *Service) Identify(ctx context.Context, token string) (uuid.UUID, bool, bool) {
	userID, _, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, false, false
	}

	// A valid signature is not enough: the subject must still resolve to
	// a live account. The admin flag comes from the row, not the claim,
	// so a demotion takes effect before the token expires.
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "identity lookup failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
		}
		return uuid.Nil, false, false
	}

	return user.ID, user.IsAdmin, true
}

// CleanupExpiredTokens removes expired and revoked refresh tokens.
// Returns the number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	count, err := s.tokens.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int64("count", count))
	}

	return count, nil
}
