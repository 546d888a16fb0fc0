package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Descriptor is a section template a user can drop into a page.
type Descriptor struct {
	bun.BaseModel `bun:"table:section_types,alias:st" json:"-"`

	ID          uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	Type        string         `bun:"type,notnull,unique" json:"type"`
	Name        string         `bun:"name,notnull" json:"name"`
	Description string         `bun:"description" json:"description"`
	Icon        string         `bun:"icon" json:"icon"`
	Thumbnail   string         `bun:"thumbnail" json:"thumbnail,omitempty"`
	DefaultData map[string]any `bun:"default_data,type:jsonb" json:"default_data"`
	Schema      map[string]any `bun:"schema,type:jsonb" json:"schema,omitempty"`
	SortOrder   int            `bun:"sort_order,notnull" json:"sort_order"`
	IsActive    bool           `bun:"is_active,notnull" json:"is_active"`
	CreatedAt   time.Time      `bun:"created_at,nullzero" json:"created_at"`
	UpdatedAt   time.Time      `bun:"updated_at,nullzero" json:"updated_at"`
}

var (
	ErrTypeRequired    = errors.New("catalog: section type key required")
	ErrNameRequired    = errors.New("catalog: section type name required")
	ErrTypeExists      = errors.New("catalog: section type already exists")
	ErrIDRequired      = errors.New("catalog: section type id required")
	ErrDefaultsInvalid = errors.New("catalog: default data does not match schema")
	ErrSchemaInvalid   = errors.New("catalog: schema invalid")
)

// NotFoundError is returned when a section type lookup fails.
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

func cloneDescriptor(src *Descriptor) *Descriptor {
	if src == nil {
		return nil
	}
	out := *src
	out.DefaultData = cloneData(src.DefaultData)
	out.Schema = cloneData(src.Schema)
	return &out
}
