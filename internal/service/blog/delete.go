package blog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sangseok/blog-backend/internal/domain"
	"github.com/sangseok/blog-backend/pkg/ctxutil"
)

// Delete soft-deletes a blog together with its visitor records. Tag links
// are kept; tags have no owner and are never cascade-deleted.
// Only the owning author or an admin may delete.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	isAdmin := ctxutil.IsAdminCtx(ctx)

	existing, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("blog.Delete: %w", err)
	}
	if !existing.CanBeEditedBy(userID, isAdmin) {
		return domain.ErrForbidden
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.blogs.SoftDelete(txCtx, id); err != nil {
			return fmt.Errorf("delete blog: %w", err)
		}
		if err := s.deleteVisitors(txCtx, id); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("blog.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "blog deleted",
		slog.String("blog_id", id.String()),
		slog.String("user_id", userID.String()))

	return nil
}
