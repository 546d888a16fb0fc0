package orders

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
	repo repository.Repository[*Order]
}

// NewBunRepository creates an order repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache creates an order repository with caching services.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRepository {
	base := NewOrderRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunRepository{repo: base}
}

func (r *BunRepository) Create(ctx context.Context, order *Order) (*Order, error) {
	return r.repo.Create(ctx, order)
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "order", id.String())
	}
	return record, nil
}

func (r *BunRepository) GetByNumber(ctx context.Context, number string) (*Order, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.order_number = ?", number)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "order", number)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "order", Key: number}
	}
	return records[0], nil
}

func (r *BunRepository) List(ctx context.Context, opts ListOptions) ([]*Order, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		if opts.Status != "" {
			q = q.Where("?TableAlias.status = ?", opts.Status)
		}
		if search := strings.ToLower(strings.TrimSpace(opts.Search)); search != "" {
			pattern := "%" + search + "%"
			q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Where("LOWER(?TableAlias.name) LIKE ?", pattern).
					WhereOr("LOWER(?TableAlias.email) LIKE ?", pattern).
					WhereOr("LOWER(?TableAlias.order_number) LIKE ?", pattern)
			})
		}
		if opts.DateFrom != nil {
			q = q.Where("?TableAlias.created_at >= ?", startOfDay(*opts.DateFrom))
		}
		if opts.DateTo != nil {
			q = q.Where("?TableAlias.created_at < ?", startOfDay(*opts.DateTo).AddDate(0, 0, 1))
		}
		return q.OrderExpr("?TableAlias.created_at DESC").OrderExpr("?TableAlias.order_number DESC")
	}))
	return records, err
}

func (r *BunRepository) Update(ctx context.Context, order *Order) (*Order, error) {
	return r.repo.Update(ctx, order,
		repository.UpdateByID(order.ID.String()),
		repository.UpdateColumns(
			"status",
			"total_price",
			"order_items",
			"notes",
			"shipped_at",
			"delivered_at",
			"updated_at",
		),
	)
}

func (r *BunRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return r.repo.Delete(ctx, &Order{ID: id})
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
