package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/util"
	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxNameLength  = 255
	maxEmailLength = 255
	maxPhoneLength = 20
	maxNotesLength = 1000

	orderNumberAttempts = 5
)

// Service records orders posted by order form sections and lets admins
// progress them.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Order, error)
	Get(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context, opts ListOptions) ([]*Order, error)
	Update(ctx context.Context, req UpdateRequest) (*Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Statistics(ctx context.Context) (*Statistics, error)
}

// SubmitRequest is the payload of an order form.
type SubmitRequest struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Address    string          `json:"address"`
	Phone      string          `json:"phone"`
	TotalPrice decimal.Decimal `json:"total_price"`
	OrderItems []any           `json:"order_items"`
	Notes      string          `json:"notes"`
}

// UpdateRequest changes the non-nil fields of an order.
type UpdateRequest struct {
	ID         uuid.UUID        `json:"-"`
	Status     *string          `json:"status,omitempty"`
	TotalPrice *decimal.Decimal `json:"total_price,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
	OrderItems []any            `json:"order_items,omitempty"`
}

// Statistics summarises orders. Revenue counts delivered orders only.
type Statistics struct {
	TotalOrders       int             `json:"total_orders"`
	PendingOrders     int             `json:"pending_orders"`
	ProcessingOrders  int             `json:"processing_orders"`
	ShippedOrders     int             `json:"shipped_orders"`
	DeliveredOrders   int             `json:"delivered_orders"`
	CancelledOrders   int             `json:"cancelled_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	OrdersToday       int             `json:"orders_today"`
	OrdersThisMonth   int             `json:"orders_this_month"`
}

type IDGenerator func() uuid.UUID

// NumberGenerator produces order numbers for orders created at t.
type NumberGenerator func(t time.Time) string

type ServiceOption func(*service)

func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

func WithNumberGenerator(generator NumberGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.number = generator
		}
	}
}

func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	repo   Repository
	now    func() time.Time
	id     IDGenerator
	number NumberGenerator
	logger interfaces.Logger
}

func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		id:     uuid.New,
		number: DefaultOrderNumber,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultOrderNumber formats ORD-<yyyymmdd>-<8 hex chars>.
func DefaultOrderNumber(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", t.UTC().Format("20060102"), suffix)
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*Order, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Address = strings.TrimSpace(req.Address)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Notes = strings.TrimSpace(req.Notes)
	if err := validateSubmit(req); err != nil {
		return nil, err
	}

	now := s.now()
	number, err := s.nextNumber(ctx, now)
	if err != nil {
		return nil, err
	}
	record := &Order{
		ID:          s.id(),
		OrderNumber: number,
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		Phone:       req.Phone,
		TotalPrice:  req.TotalPrice.Round(2),
		Status:      StatusPending,
		OrderItems:  cloneItems(req.OrderItems),
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("orders.submitted", "order_number", created.OrderNumber, "total_price", created.TotalPrice.StringFixed(2))
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	if id == uuid.Nil {
		return nil, ErrOrderRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]*Order, error) {
	opts.Status = strings.ToLower(strings.TrimSpace(opts.Status))
	if opts.Status != "" && !isValidStatus(opts.Status) {
		return nil, ErrStatusInvalid
	}
	return s.repo.List(ctx, opts)
}

func (s *service) Update(ctx context.Context, req UpdateRequest) (*Order, error) {
	existing, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if err := validateUpdate(req); err != nil {
		return nil, err
	}

	now := s.now()
	if req.Status != nil {
		applyStatus(existing, strings.ToLower(strings.TrimSpace(*req.Status)), now)
	}
	if req.TotalPrice != nil {
		existing.TotalPrice = req.TotalPrice.Round(2)
	}
	if req.Notes != nil {
		existing.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.OrderItems != nil {
		existing.OrderItems = cloneItems(req.OrderItems)
	}
	existing.UpdatedAt = now

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.logger.Info("orders.updated", "order_number", updated.OrderNumber, "status", updated.Status)
	return updated, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Order, error) {
	return s.Update(ctx, UpdateRequest{ID: id, Status: &status})
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrOrderRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("orders.deleted", "id", id.String())
	return nil
}

func (s *service) Statistics(ctx context.Context) (*Statistics, error) {
	records, err := s.repo.List(ctx, ListOptions{})
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := startOfDay(now)
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := &Statistics{TotalRevenue: decimal.Zero, AverageOrderValue: decimal.Zero}
	for _, record := range records {
		stats.TotalOrders++
		switch record.Status {
		case StatusPending:
			stats.PendingOrders++
		case StatusProcessing:
			stats.ProcessingOrders++
		case StatusShipped:
			stats.ShippedOrders++
		case StatusDelivered:
			stats.DeliveredOrders++
			stats.TotalRevenue = stats.TotalRevenue.Add(record.TotalPrice)
		case StatusCancelled:
			stats.CancelledOrders++
		}
		created := record.CreatedAt.In(now.Location())
		if !created.Before(today) {
			stats.OrdersToday++
		}
		if !created.Before(month) {
			stats.OrdersThisMonth++
		}
	}
	if stats.DeliveredOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue.Div(decimal.NewFromInt(int64(stats.DeliveredOrders))).Round(2)
	}
	return stats, nil
}

func (s *service) nextNumber(ctx context.Context, now time.Time) (string, error) {
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		number := s.number(now)
		if _, err := s.repo.GetByNumber(ctx, number); err != nil {
			if IsNotFound(err) {
				return number, nil
			}
			return "", err
		}
	}
	return "", ErrOrderNumberTaken
}

// applyStatus stamps shipped_at and delivered_at the first time an order
// reaches those statuses.
func applyStatus(order *Order, status string, now time.Time) {
	order.Status = status
	switch status {
	case StatusShipped:
		if order.ShippedAt == nil {
			stamp := now
			order.ShippedAt = &stamp
		}
	case StatusDelivered:
		if order.DeliveredAt == nil {
			stamp := now
			order.DeliveredAt = &stamp
		}
	}
}

func cloneItems(items []any) []any {
	if items == nil {
		return nil
	}
	out, _ := util.DeepCloneValue(items).([]any)
	return out
}

func validateSubmit(req SubmitRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required, validation.RuneLength(1, maxNameLength)),
		validation.Field(&req.Email, validation.Required, is.EmailFormat, validation.RuneLength(1, maxEmailLength)),
		validation.Field(&req.Address, validation.Required),
		validation.Field(&req.Phone, validation.RuneLength(0, maxPhoneLength)),
		validation.Field(&req.TotalPrice, validation.By(nonNegative)),
		validation.Field(&req.Notes, validation.RuneLength(0, maxNotesLength)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return nil
}

func validateUpdate(req UpdateRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Status, validation.NilOrNotEmpty, validation.By(knownStatus)),
		validation.Field(&req.TotalPrice, validation.By(nonNegative)),
		validation.Field(&req.Notes, validation.RuneLength(0, maxNotesLength)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return nil
}

func nonNegative(value any) error {
	var amount decimal.Decimal
	switch typed := value.(type) {
	case decimal.Decimal:
		amount = typed
	case *decimal.Decimal:
		if typed == nil {
			return nil
		}
		amount = *typed
	default:
		return nil
	}
	if amount.IsNegative() {
		return validation.NewError("validation_min_greater_equal_than_required", "must be no less than 0")
	}
	return nil
}

func knownStatus(value any) error {
	status, ok := value.(*string)
	if !ok || status == nil {
		return nil
	}
	if !isValidStatus(strings.ToLower(strings.TrimSpace(*status))) {
		return validation.NewError("validation_in_invalid", "must be one of "+strings.Join(Statuses, ", "))
	}
	return nil
}
