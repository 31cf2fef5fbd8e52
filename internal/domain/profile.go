package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds descriptive attributes for a single user.
// It is owned by exactly one user via users.profile_id and carries no
// authentication data.
type Profile struct {
	ID        uuid.UUID
	Bio       *string
	AvatarURL *string
	Website   *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
