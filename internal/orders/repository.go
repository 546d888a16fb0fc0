package orders

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ListOptions filters orders. Search matches name, email or order number.
// DateFrom and DateTo compare calendar days and are inclusive.
type ListOptions struct {
	Status   string
	Search   string
	DateFrom *time.Time
	DateTo   *time.Time
}

// Repository persists orders. List returns newest first.
type Repository interface {
	Create(ctx context.Context, order *Order) (*Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	GetByNumber(ctx context.Context, number string) (*Order, error)
	List(ctx context.Context, opts ListOptions) ([]*Order, error)
	Update(ctx context.Context, order *Order) (*Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewOrderRepository creates the go-repository-bun repository for orders.
func NewOrderRepository(db *bun.DB) repository.Repository[*Order] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Order]{
		NewRecord:          func() *Order { return &Order{} },
		GetID:              func(o *Order) uuid.UUID { return o.ID },
		SetID:              func(o *Order, id uuid.UUID) { o.ID = id },
		GetIdentifier:      func() string { return "order_number" },
		GetIdentifierValue: func(o *Order) string { return o.OrderNumber },
	})
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func matches(order *Order, opts ListOptions) bool {
	if opts.Status != "" && order.Status != opts.Status {
		return false
	}
	if search := strings.ToLower(strings.TrimSpace(opts.Search)); search != "" {
		if !strings.Contains(strings.ToLower(order.Name), search) &&
			!strings.Contains(strings.ToLower(order.Email), search) &&
			!strings.Contains(strings.ToLower(order.OrderNumber), search) {
			return false
		}
	}
	if opts.DateFrom != nil && order.CreatedAt.Before(startOfDay(*opts.DateFrom)) {
		return false
	}
	if opts.DateTo != nil && !order.CreatedAt.Before(startOfDay(*opts.DateTo).AddDate(0, 0, 1)) {
		return false
	}
	return true
}
