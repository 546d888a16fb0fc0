package catalog

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository persists section type descriptors.
type Repository interface {
	Create(ctx context.Context, descriptor *Descriptor) (*Descriptor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Descriptor, error)
	GetByType(ctx context.Context, typeKey string) (*Descriptor, error)
	List(ctx context.Context) ([]*Descriptor, error)
	Update(ctx context.Context, descriptor *Descriptor) (*Descriptor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewDescriptorRepository creates the go-repository-bun repository for descriptors.
func NewDescriptorRepository(db *bun.DB) repository.Repository[*Descriptor] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Descriptor]{
		NewRecord:          func() *Descriptor { return &Descriptor{} },
		GetID:              func(d *Descriptor) uuid.UUID { return d.ID },
		SetID:              func(d *Descriptor, id uuid.UUID) { d.ID = id },
		GetIdentifier:      func() string { return "type" },
		GetIdentifierValue: func(d *Descriptor) string { return d.Type },
	})
}
