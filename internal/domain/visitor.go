package domain

import (
	"time"

	"github.com/google/uuid"
)

// Visitor is an append-only engagement record for a blog.
// Rows are never mutated after insert; they are soft-deleted in bulk
// together with their parent blog.
type Visitor struct {
	ID        uuid.UUID
	BlogID    uuid.UUID
	IPHash    string
	UserAgent string
	Referer   *string
	CreatedAt time.Time
	DeletedAt *time.Time
}
