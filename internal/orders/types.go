package orders

import (
	"errors"
	"fmt"
	"time"

	"github.com/goliatone/go-landing/internal/util"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Statuses lists every order status in lifecycle order.
var Statuses = []string{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}

// Order is a purchase submitted through an order form section.
type Order struct {
	bun.BaseModel `bun:"table:orders,alias:ord" json:"-"`

	ID          uuid.UUID       `bun:",pk,type:uuid" json:"id"`
	OrderNumber string          `bun:"order_number,notnull,unique" json:"order_number"`
	Name        string          `bun:"name,notnull" json:"name"`
	Email       string          `bun:"email,notnull" json:"email"`
	Address     string          `bun:"address,notnull" json:"address"`
	Phone       string          `bun:"phone" json:"phone,omitempty"`
	TotalPrice  decimal.Decimal `bun:"total_price,type:decimal(10,2),notnull" json:"total_price"`
	Status      string          `bun:"status,notnull" json:"status"`
	OrderItems  []any           `bun:"order_items,type:jsonb" json:"order_items,omitempty"`
	Notes       string          `bun:"notes" json:"notes,omitempty"`
	ShippedAt   *time.Time      `bun:"shipped_at,nullzero" json:"shipped_at,omitempty"`
	DeliveredAt *time.Time      `bun:"delivered_at,nullzero" json:"delivered_at,omitempty"`
	CreatedAt   time.Time       `bun:"created_at,nullzero" json:"created_at"`
	UpdatedAt   time.Time       `bun:"updated_at,nullzero" json:"updated_at"`
}

var (
	ErrOrderRequired    = errors.New("orders: order id required")
	ErrInvalidOrder     = errors.New("orders: invalid order")
	ErrStatusInvalid    = errors.New("orders: unknown status")
	ErrOrderNumberTaken = errors.New("orders: order number already exists")
)

// NotFoundError is returned when an order lookup fails.
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

func cloneOrder(src *Order) *Order {
	if src == nil {
		return nil
	}
	out := *src
	if src.OrderItems != nil {
		out.OrderItems, _ = util.DeepCloneValue(src.OrderItems).([]any)
	}
	if src.ShippedAt != nil {
		t := *src.ShippedAt
		out.ShippedAt = &t
	}
	if src.DeliveredAt != nil {
		t := *src.DeliveredAt
		out.DeliveredAt = &t
	}
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
