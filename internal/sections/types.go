package sections

import (
	"errors"
	"fmt"
	"time"

	"github.com/goliatone/go-landing/internal/util"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Section is an admin-managed section row attached to a landing page.
type Section struct {
	bun.BaseModel `bun:"table:sections,alias:sec" json:"-"`

	ID            uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	LandingPageID uuid.UUID      `bun:"landing_page_id,notnull,type:uuid" json:"landing_page_id"`
	SectionID     string         `bun:"section_id,notnull,unique" json:"section_id"`
	Type          string         `bun:"type,notnull" json:"type"`
	Data          map[string]any `bun:"data,type:jsonb" json:"data"`
	SortOrder     int            `bun:"sort_order,notnull" json:"sort_order"`
	IsActive      bool           `bun:"is_active,notnull" json:"is_active"`
	CreatedAt     time.Time      `bun:"created_at,nullzero" json:"created_at"`
	UpdatedAt     time.Time      `bun:"updated_at,nullzero" json:"updated_at"`
}

var (
	ErrSectionRequired = errors.New("sections: section id required")
	ErrInvalidSection  = errors.New("sections: invalid section")
	ErrSectionIDExists = errors.New("sections: section_id already exists")
	ErrInvalidOrder    = errors.New("sections: invalid order update")
)

// NotFoundError is returned when a section or its page cannot be found.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func cloneSection(src *Section) *Section {
	if src == nil {
		return nil
	}
	out := *src
	out.Data = util.DeepCloneMap(src.Data)
	return &out
}
