package blog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sangseok/blog-backend/internal/domain"
	"github.com/sangseok/blog-backend/pkg/ctxutil"
)

// Visit describes one incoming view of a blog as seen at the transport edge.
type Visit struct {
	IP        string
	UserAgent string
	Referer   string
}

// RecordVisit appends an engagement record for a live blog. The raw IP is
// hashed before it is stored; the record itself is never mutated afterwards.
// Recording failures must not break the read path, so the caller logs and
// drops the error instead of propagating it to the visitor.
func (s *Service) RecordVisit(ctx context.Context, blogID uuid.UUID, visit Visit) error {
	var referer *string
	if visit.Referer != "" {
		referer = &visit.Referer
	}

	_, err := s.visitors.Create(ctx, &domain.Visitor{
		ID:        uuid.New(),
		BlogID:    blogID,
		IPHash:    hashIP(visit.IP),
		UserAgent: visit.UserAgent,
		Referer:   referer,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("blog.RecordVisit: %w", err)
	}
	return nil
}

// Visitors lists a blog's visit records, newest first, with the live total.
// Only the blog's owner or an admin may see them.
func (s *Service) Visitors(ctx context.Context, input VisitorsInput) ([]*domain.Visitor, int64, error) {
	input.normalize()

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}
	isAdmin := ctxutil.IsAdminCtx(ctx)

	b, err := s.blogs.GetByID(ctx, input.BlogID)
	if err != nil {
		return nil, 0, fmt.Errorf("blog.Visitors: %w", err)
	}
	if !b.CanBeEditedBy(userID, isAdmin) {
		return nil, 0, domain.ErrForbidden
	}

	visitors, err := s.visitors.ListByBlog(ctx, input.BlogID, input.Limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("blog.Visitors list: %w", err)
	}
	total, err := s.visitors.CountByBlog(ctx, input.BlogID)
	if err != nil {
		return nil, 0, fmt.Errorf("blog.Visitors count: %w", err)
	}

	return visitors, total, nil
}

func (s *Service) deleteVisitors(ctx context.Context, blogID uuid.UUID) error {
	if err := s.visitors.SoftDeleteByBlogIDs(ctx, []uuid.UUID{blogID}); err != nil {
		return fmt.Errorf("delete visitors: %w", err)
	}
	return nil
}

// hashIP hashes a visitor address so records carry no raw PII.
func hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])
}
