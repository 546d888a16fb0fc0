package orderscmd_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-command/dispatcher"
	goerrors "github.com/goliatone/go-errors"
	orderscmd "github.com/goliatone/go-landing/internal/commands/orders"
	"github.com/goliatone/go-landing/internal/orders"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func submit(t *testing.T, svc orders.Service) *orders.Order {
	t.Helper()
	order, err := svc.Submit(context.Background(), orders.SubmitRequest{
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		Address:    "12 Engine Row",
		TotalPrice: decimal.RequireFromString("199.99"),
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return order
}

func TestUpdateOrderStatusHandlerViaDispatcher(t *testing.T) {
	svc := orders.NewService(orders.NewMemoryRepository())
	order := submit(t, svc)

	sub := dispatcher.SubscribeCommand(orderscmd.NewUpdateOrderStatusHandler(svc, nil))
	t.Cleanup(sub.Unsubscribe)

	if err := dispatcher.Dispatch(context.Background(), orderscmd.UpdateOrderStatusCommand{OrderID: order.ID, Status: orders.StatusShipped}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	stored, err := svc.Get(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Status != orders.StatusShipped || stored.ShippedAt == nil {
		t.Fatalf("expected shipped order with timestamp, got %+v", stored)
	}
}

func TestUpdateOrderStatusHandlerRejectsUnknownStatus(t *testing.T) {
	svc := orders.NewService(orders.NewMemoryRepository())
	order := submit(t, svc)
	handler := orderscmd.NewUpdateOrderStatusHandler(svc, nil)

	err := handler.Execute(context.Background(), orderscmd.UpdateOrderStatusCommand{OrderID: order.ID, Status: "lost"})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	err = handler.Execute(context.Background(), orderscmd.UpdateOrderStatusCommand{OrderID: uuid.Nil, Status: orders.StatusPending})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category for missing id, got %v", err)
	}

	stored, _ := svc.Get(context.Background(), order.ID)
	if stored.Status != orders.StatusPending {
		t.Fatalf("expected order to stay pending, got %s", stored.Status)
	}
}
