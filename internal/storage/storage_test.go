package storage_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/goliatone/go-landing/internal/domains"
	"github.com/goliatone/go-landing/internal/storage"
	"github.com/google/uuid"
)

func TestOpenRejectsUnknownProvider(t *testing.T) {
	if _, err := storage.Open("mongo", "mongodb://localhost"); !errors.Is(err, storage.ErrProviderUnsupported) {
		t.Fatalf("expected ErrProviderUnsupported, got %v", err)
	}
	if _, err := storage.Open("sqlite", " "); !errors.Is(err, storage.ErrDSNRequired) {
		t.Fatalf("expected ErrDSNRequired, got %v", err)
	}
}

func TestCreateTablesOnSQLite(t *testing.T) {
	db, err := storage.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	if err := storage.CreateTables(ctx, db); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	// second run is a no-op
	if err := storage.CreateTables(ctx, db); err != nil {
		t.Fatalf("create tables twice: %v", err)
	}

	for _, table := range []string{"section_types", "landing_pages", "sections", "orders", "custom_domains"} {
		var count int
		if err := db.NewRaw("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(ctx, &count); err != nil {
			t.Fatalf("inspect %s: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected table %s to exist", table)
		}
	}

	repo := domains.NewBunRepository(db)
	if _, err := repo.List(ctx, domains.ListOptions{}); err != nil {
		t.Fatalf("list domains: %v", err)
	}
}
