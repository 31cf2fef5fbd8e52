package user

import (
	"net/url"

	"github.com/sangseok/blog-backend/internal/domain"
)

const (
	maxBioLen = 4000
	maxURLLen = 512

	defaultListLimit = 50
	maxListLimit     = 200
)

// ListInput holds pagination parameters for the user listing.
type ListInput struct {
	Limit  int
	Offset int
}

func (i *ListInput) normalize() {
	if i.Limit <= 0 {
		i.Limit = defaultListLimit
	}
	if i.Limit > maxListLimit {
		i.Limit = maxListLimit
	}
	if i.Offset < 0 {
		i.Offset = 0
	}
}

// UpsertProfileInput holds parameters for profile creation and update.
// Nil fields clear the stored value.
type UpsertProfileInput struct {
	Bio       *string
	AvatarURL *string
	Website   *string
}

// Validate validates the profile input.
func (i UpsertProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Bio != nil && len(*i.Bio) > maxBioLen {
		errs = append(errs, domain.FieldError{Field: "bio", Message: "too long"})
	}
	if err := validateURLField(i.AvatarURL); err != "" {
		errs = append(errs, domain.FieldError{Field: "avatar_url", Message: err})
	}
	if err := validateURLField(i.Website); err != "" {
		errs = append(errs, domain.FieldError{Field: "website", Message: err})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateURLField(s *string) string {
	if s == nil {
		return ""
	}
	if len(*s) > maxURLLen {
		return "too long"
	}
	u, err := url.Parse(*s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "must be an http(s) URL"
	}
	return ""
}
