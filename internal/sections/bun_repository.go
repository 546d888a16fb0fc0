package sections

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
	repo repository.Repository[*Section]
}

// NewBunRepository creates a section repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache creates a section repository with caching services.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRepository {
	base := NewSectionRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunRepository{repo: base}
}

func (r *BunRepository) Create(ctx context.Context, section *Section) (*Section, error) {
	return r.repo.Create(ctx, section)
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Section, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "section", id.String())
	}
	return record, nil
}

func (r *BunRepository) GetBySectionID(ctx context.Context, sectionID string) (*Section, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.section_id = ?", sectionID)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "section", sectionID)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "section", Key: sectionID}
	}
	return records[0], nil
}

func (r *BunRepository) List(ctx context.Context, opts ListOptions) ([]*Section, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		if opts.PageID != nil {
			q = q.Where("?TableAlias.landing_page_id = ?", *opts.PageID)
		}
		if opts.Type != "" {
			q = q.Where("?TableAlias.type = ?", opts.Type)
		}
		if opts.Active != nil {
			q = q.Where("?TableAlias.is_active = ?", *opts.Active)
		}
		return q.OrderExpr("?TableAlias.sort_order ASC").
			OrderExpr("?TableAlias.created_at ASC").
			OrderExpr("?TableAlias.section_id ASC")
	}))
	return records, err
}

func (r *BunRepository) Update(ctx context.Context, section *Section) (*Section, error) {
	return r.repo.Update(ctx, section,
		repository.UpdateByID(section.ID.String()),
		repository.UpdateColumns(
			"section_id",
			"type",
			"data",
			"sort_order",
			"is_active",
			"updated_at",
		),
	)
}

func (r *BunRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return r.repo.Delete(ctx, &Section{ID: id})
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
