package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a shared label linked to blogs through the blog_tags join table.
// Tags have no single owner: they are created lazily when first referenced
// and survive the deletion of any referencing blog.
type Tag struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
