package orderscmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-landing/internal/commands"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/orders"
	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/google/uuid"
)

const updateOrderStatusMessageType = "landing.orders.update_status"

// UpdateOrderStatusCommand advances an order through its fulfilment states.
type UpdateOrderStatusCommand struct {
	OrderID uuid.UUID `json:"order_id"`
	Status  string    `json:"status"`
}

func (UpdateOrderStatusCommand) Type() string { return updateOrderStatusMessageType }

func (m UpdateOrderStatusCommand) Validate() error {
	statuses := make([]any, len(orders.Statuses))
	for i, status := range orders.Statuses {
		statuses[i] = status
	}
	return validation.ValidateStruct(&m,
		validation.Field(&m.OrderID, validation.By(func(any) error {
			if m.OrderID == uuid.Nil {
				return validation.NewError("landing.orders.update_status.order_id_required", "order_id is required")
			}
			return nil
		})),
		validation.Field(&m.Status, validation.Required, validation.In(statuses...)),
	)
}

type UpdateOrderStatusHandler struct {
	inner *commands.Handler[UpdateOrderStatusCommand]
}

func NewUpdateOrderStatusHandler(service orders.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateOrderStatusCommand]) *UpdateOrderStatusHandler {
	if logger == nil {
		logger = logging.NoOp()
	}
	exec := func(ctx context.Context, msg UpdateOrderStatusCommand) error {
		_, err := service.UpdateStatus(ctx, msg.OrderID, strings.TrimSpace(msg.Status))
		return err
	}
	handlerOpts := []commands.HandlerOption[UpdateOrderStatusCommand]{
		commands.WithLogger[UpdateOrderStatusCommand](logger),
		commands.WithOperation[UpdateOrderStatusCommand]("orders.update_status"),
		commands.WithMessageFields(func(msg UpdateOrderStatusCommand) map[string]any {
			return map[string]any{"order_id": msg.OrderID.String(), "status": msg.Status}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[UpdateOrderStatusCommand](logger)),
	}
	return &UpdateOrderStatusHandler{inner: commands.NewHandler(exec, append(handlerOpts, opts...)...)}
}

func (h *UpdateOrderStatusHandler) Execute(ctx context.Context, msg UpdateOrderStatusCommand) error {
	return h.inner.Execute(ctx, msg)
}
