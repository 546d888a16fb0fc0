package catalog

import (
	"context"
	"fmt"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRepository implements Repository with optional caching.
type BunRepository struct {
	repo repository.Repository[*Descriptor]
}

// NewBunRepository creates a descriptor repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache creates a descriptor repository with caching services.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRepository {
	base := NewDescriptorRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunRepository{repo: base}
}

func (r *BunRepository) Create(ctx context.Context, descriptor *Descriptor) (*Descriptor, error) {
	return r.repo.Create(ctx, descriptor)
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Descriptor, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, id.String())
	}
	return record, nil
}

func (r *BunRepository) GetByType(ctx context.Context, typeKey string) (*Descriptor, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.type = ?", typeKey)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, typeKey)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "section_type", Key: typeKey}
	}
	return records[0], nil
}

func (r *BunRepository) List(ctx context.Context) ([]*Descriptor, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.sort_order ASC").OrderExpr("?TableAlias.created_at ASC")
	}))
	return records, err
}

func (r *BunRepository) Update(ctx context.Context, descriptor *Descriptor) (*Descriptor, error) {
	return r.repo.Update(ctx, descriptor,
		repository.UpdateByID(descriptor.ID.String()),
		repository.UpdateColumns(
			"type",
			"name",
			"description",
			"icon",
			"thumbnail",
			"default_data",
			"schema",
			"sort_order",
			"is_active",
			"updated_at",
		),
	)
}

func (r *BunRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Descriptor{ID: id})
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: "section_type", Key: key}
	}
	return fmt.Errorf("section_type repository error: %w", err)
}
