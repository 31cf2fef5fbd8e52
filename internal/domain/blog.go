package domain

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a post owned by exactly one user.
// Tags is populated by read paths that join through blog_tags; write paths
// treat it as the desired tag set for the cascade.
type Blog struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Content     string
	AuthorID    uuid.UUID
	Tags        []Tag
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// CanBeEditedBy reports whether the given user may mutate this blog:
// the owning author or an administrator.
func (b *Blog) CanBeEditedBy(userID uuid.UUID, isAdmin bool) bool {
	return isAdmin || b.AuthorID == userID
}
