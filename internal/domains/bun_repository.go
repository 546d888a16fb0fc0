package domains

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRepository implements Repository with optional caching.
type BunRepository struct {
	repo repository.Repository[*Domain]
}

// NewBunRepository creates a domain repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache creates a domain repository with caching services.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRepository {
	base := NewDomainRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunRepository{repo: base}
}

func (r *BunRepository) Create(ctx context.Context, domain *Domain) (*Domain, error) {
	return r.repo.Create(ctx, domain)
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Domain, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "domain", id.String())
	}
	return record, nil
}

func (r *BunRepository) GetByDomain(ctx context.Context, host string) (*Domain, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.domain = ?", host)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "domain", host)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "domain", Key: host}
	}
	return records[0], nil
}

func (r *BunRepository) List(ctx context.Context, opts ListOptions) ([]*Domain, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		if opts.Active != nil {
			q = q.Where("?TableAlias.is_active = ?", *opts.Active)
		}
		if search := strings.ToLower(strings.TrimSpace(opts.Search)); search != "" {
			q = q.Where("?TableAlias.domain LIKE ?", "%"+search+"%")
		}
		return q.OrderExpr("?TableAlias.created_at DESC").OrderExpr("?TableAlias.domain ASC")
	}))
	return records, err
}

func (r *BunRepository) Update(ctx context.Context, domain *Domain) (*Domain, error) {
	return r.repo.Update(ctx, domain,
		repository.UpdateByID(domain.ID.String()),
		repository.UpdateColumns(
			"domain",
			"landing_page_id",
			"is_active",
			"notes",
			"updated_at",
		),
	)
}

func (r *BunRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return r.repo.Delete(ctx, &Domain{ID: id})
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
