package blog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/sangseok/blog-backend/internal/domain"
)

const (
	maxTitleLen       = 300
	maxDescriptionLen = 1000
	maxTagNameLen     = 100
	maxTagsPerBlog    = 20
)

// CreateInput holds parameters for blog creation.
type CreateInput struct {
	Title       string
	Description *string
	Content     string
	Tags        []string
}

// Validate validates the create input. Tag names are matched case-sensitively;
// duplicates within one request are rejected rather than silently collapsed.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	errs = append(errs, validateTags(i.Tags)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for blog update. A nil Tags slice leaves the
// tag set untouched; an empty non-nil slice clears it.
type UpdateInput struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Content     string
	Tags        []string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	errs = append(errs, validateTags(i.Tags)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTags(tags []string) []domain.FieldError {
	var errs []domain.FieldError

	if len(tags) > maxTagsPerBlog {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many"})
	}

	seen := make(map[string]bool, len(tags))
	for _, name := range tags {
		trimmed := strings.TrimSpace(name)
		switch {
		case trimmed == "":
			errs = append(errs, domain.FieldError{Field: "tags", Message: "empty tag name"})
		case len(trimmed) > maxTagNameLen:
			errs = append(errs, domain.FieldError{Field: "tags", Message: "tag name too long"})
		case seen[trimmed]:
			errs = append(errs, domain.FieldError{Field: "tags", Message: "duplicate tag " + trimmed})
		}
		seen[trimmed] = true
	}

	return errs
}

// normalizeTags trims whitespace from every tag name.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, name := range tags {
		out = append(out, strings.TrimSpace(name))
	}
	return out
}

// ListInput holds filter parameters for the blog listing.
type ListInput struct {
	AuthorID *uuid.UUID
	TagName  *string
	Search   *string
	Limit    int
	Offset   int
}

// VisitorsInput holds parameters for listing a blog's visitors.
type VisitorsInput struct {
	BlogID uuid.UUID
	Limit  int
	Offset int
}

const (
	defaultVisitorLimit = 50
	maxVisitorLimit     = 200
)

func (i *VisitorsInput) normalize() {
	if i.Limit <= 0 {
		i.Limit = defaultVisitorLimit
	}
	if i.Limit > maxVisitorLimit {
		i.Limit = maxVisitorLimit
	}
	if i.Offset < 0 {
		i.Offset = 0
	}
}
