package sections

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ListOptions filters section rows. Nil fields match everything.
type ListOptions struct {
	PageID *uuid.UUID
	Type   string
	Active *bool
}

// Repository persists section rows. List is ordered by sort_order then
// created_at.
type Repository interface {
	Create(ctx context.Context, section *Section) (*Section, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Section, error)
	GetBySectionID(ctx context.Context, sectionID string) (*Section, error)
	List(ctx context.Context, opts ListOptions) ([]*Section, error)
	Update(ctx context.Context, section *Section) (*Section, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewSectionRepository creates the go-repository-bun repository for section rows.
func NewSectionRepository(db *bun.DB) repository.Repository[*Section] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Section]{
		NewRecord:          func() *Section { return &Section{} },
		GetID:              func(s *Section) uuid.UUID { return s.ID },
		SetID:              func(s *Section, id uuid.UUID) { s.ID = id },
		GetIdentifier:      func() string { return "section_id" },
		GetIdentifierValue: func(s *Section) string { return s.SectionID },
	})
}

func matches(section *Section, opts ListOptions) bool {
	if opts.PageID != nil && section.LandingPageID != *opts.PageID {
		return false
	}
	if opts.Type != "" && section.Type != opts.Type {
		return false
	}
	if opts.Active != nil && section.IsActive != *opts.Active {
		return false
	}
	return true
}
