package sections_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-landing/internal/sections"
	"github.com/goliatone/go-landing/pkg/testsupport"
	"github.com/google/uuid"
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
	if _, err := db.NewCreateTable().Model((*sections.Section)(nil)).IfNotExists().Exec(context.Background()); err != nil {
		t.Fatalf("create sections: %v", err)
	}
	return db
}

func TestSectionService_WithBunStorage(t *testing.T) {
	ctx := context.Background()
	pageID := uuid.New()
	svc := newTestService(t, sections.NewBunRepository(newBunDB(t)), pageID)

	hero := create(t, svc, pageID, "hero-1", "hero")
	cta := create(t, svc, pageID, "cta-1", "cta")
	if cta.SortOrder != 2 {
		t.Fatalf("expected sort order 2, got %d", cta.SortOrder)
	}

	loaded, err := svc.Get(ctx, hero.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Data["title"] != "hero-1" || !loaded.IsActive {
		t.Fatalf("unexpected loaded section %+v", loaded)
	}

	if _, err := svc.ToggleStatus(ctx, hero.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	inactive, err := svc.List(ctx, sections.ListOptions{Active: boolPtr(false)})
	if err != nil {
		t.Fatalf("list inactive: %v", err)
	}
	if len(inactive) != 1 || inactive[0].ID != hero.ID {
		t.Fatalf("unexpected inactive list %#v", inactive)
	}

	if err := svc.UpdateOrder(ctx, []sections.OrderEntry{{ID: cta.ID, SortOrder: 0}}); err != nil {
		t.Fatalf("update order: %v", err)
	}
	ordered, err := svc.List(ctx, sections.ListOptions{PageID: &pageID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ordered) != 2 || ordered[0].ID != cta.ID {
		t.Fatalf("expected cta first, got %#v", ordered)
	}

	copied, err := svc.Duplicate(ctx, hero.ID)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if copied.SortOrder != 2 {
		t.Fatalf("expected duplicate at end, got %d", copied.SortOrder)
	}

	if err := svc.Delete(ctx, copied.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, copied.ID); !sections.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
