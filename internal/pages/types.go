package pages

import (
	"errors"
	"fmt"
	"time"

	"github.com/goliatone/go-landing/internal/document"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Statuses lists the page lifecycle values in order.
var Statuses = []string{StatusDraft, StatusPublished, StatusArchived}

// Page is a persisted landing page document.
type Page struct {
	bun.BaseModel `bun:"table:landing_pages,alias:lp" json:"-"`

	ID              uuid.UUID          `bun:",pk,type:uuid" json:"id"`
	Title           string             `bun:"title,notnull" json:"title"`
	Slug            string             `bun:"slug,notnull,unique" json:"slug"`
	Status          string             `bun:"status,notnull" json:"status"`
	Sections        []document.Section `bun:"sections,type:jsonb" json:"sections"`
	MetaDescription string             `bun:"meta_description" json:"meta_description"`
	MetaKeywords    string             `bun:"meta_keywords" json:"meta_keywords"`
	CreatedAt       time.Time          `bun:"created_at,nullzero" json:"created_at"`
	UpdatedAt       time.Time          `bun:"updated_at,nullzero" json:"updated_at"`
}

var (
	ErrPageRequired   = errors.New("pages: page id required")
	ErrInvalidPage    = errors.New("pages: invalid page")
	ErrStatusInvalid  = errors.New("pages: status must be draft, published or archived")
	ErrSlugInvalid    = errors.New("pages: slug contains no usable characters")
	ErrSlugExhausted  = errors.New("pages: no free slug suffix found")
	ErrSlugRequired   = errors.New("pages: slug is required")
	ErrSlugExists     = errors.New("pages: slug already exists")
	ErrPageNotVisible = errors.New("pages: page is not published")
)

// NotFoundError is returned when a page lookup fails.
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

func clonePage(src *Page) *Page {
	if src == nil {
		return nil
	}
	out := *src
	out.Sections = document.CloneSections(src.Sections)
	return &out
}

func isValidStatus(status string) bool {
	for _, candidate := range Statuses {
		if candidate == status {
			return true
		}
	}
	return false
}
