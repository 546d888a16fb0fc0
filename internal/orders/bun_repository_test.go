package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-landing/internal/orders"
	"github.com/goliatone/go-landing/pkg/testsupport"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func newBunDB(t *testing.T) *bun.DB {
	t.Helper()
	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	db.SetMaxOpenConns(1)
	if _, err := db.NewCreateTable().Model((*orders.Order)(nil)).IfNotExists().Exec(context.Background()); err != nil {
		t.Fatalf("create orders: %v", err)
	}
	return db
}

func TestOrderService_WithBunStorage(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Date(2024, 7, 4, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(orders.NewBunRepository(newBunDB(t)), clock)

	order, err := svc.Submit(ctx, validRequest("bun"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	loaded, err := svc.Get(ctx, order.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.OrderNumber != order.OrderNumber || !loaded.TotalPrice.Equal(decimal.RequireFromString("99.99")) {
		t.Fatalf("unexpected loaded order %+v", loaded)
	}
	if len(loaded.OrderItems) != 1 {
		t.Fatalf("expected order items to round-trip, got %#v", loaded.OrderItems)
	}

	clock.now = clock.now.Add(time.Hour)
	shipped, err := svc.UpdateStatus(ctx, order.ID, orders.StatusShipped)
	if err != nil {
		t.Fatalf("ship: %v", err)
	}
	if shipped.ShippedAt == nil {
		t.Fatal("expected shipped_at to be set")
	}

	found, err := svc.List(ctx, orders.ListOptions{Status: orders.StatusShipped, Search: "BUN@"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(found) != 1 || found[0].ID != order.ID {
		t.Fatalf("unexpected list %#v", found)
	}

	if err := svc.Delete(ctx, order.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, order.ID); !orders.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
