package domains

import (
	"context"
	"strings"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ListOptions filters domains. Search is a substring of the host name.
type ListOptions struct {
	Active *bool
	Search string
}

// Repository persists domains. List returns newest first.
type Repository interface {
	Create(ctx context.Context, domain *Domain) (*Domain, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Domain, error)
	GetByDomain(ctx context.Context, host string) (*Domain, error)
	List(ctx context.Context, opts ListOptions) ([]*Domain, error)
	Update(ctx context.Context, domain *Domain) (*Domain, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewDomainRepository creates the go-repository-bun repository for domains.
func NewDomainRepository(db *bun.DB) repository.Repository[*Domain] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Domain]{
		NewRecord:          func() *Domain { return &Domain{} },
		GetID:              func(d *Domain) uuid.UUID { return d.ID },
		SetID:              func(d *Domain, id uuid.UUID) { d.ID = id },
		GetIdentifier:      func() string { return "domain" },
		GetIdentifierValue: func(d *Domain) string { return d.Domain },
	})
}

func matches(domain *Domain, opts ListOptions) bool {
	if opts.Active != nil && domain.IsActive != *opts.Active {
		return false
	}
	if search := strings.ToLower(strings.TrimSpace(opts.Search)); search != "" && !strings.Contains(domain.Domain, search) {
		return false
	}
	return true
}
