package pages

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ListOptions filters page listings. Results are ordered by UpdatedAt, newest first.
type ListOptions struct {
	Status string
	Search string
}

// Repository persists pages.
type Repository interface {
	Create(ctx context.Context, page *Page) (*Page, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	List(ctx context.Context, opts ListOptions) ([]*Page, error)
	Update(ctx context.Context, page *Page) (*Page, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewPageRepository creates the go-repository-bun repository for pages.
func NewPageRepository(db *bun.DB) repository.Repository[*Page] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Page]{
		NewRecord:          func() *Page { return &Page{} },
		GetID:              func(p *Page) uuid.UUID { return p.ID },
		SetID:              func(p *Page, id uuid.UUID) { p.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(p *Page) string { return p.Slug },
	})
}
