package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-landing/internal/catalog"
	"github.com/goliatone/go-landing/internal/identity"
	"github.com/google/uuid"
)

func newTestService() catalog.Service {
	fixed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return catalog.NewService(catalog.NewMemoryRepository(), catalog.WithClock(func() time.Time { return fixed }))
}

func TestServiceCreateAssignsSortOrderAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	first, err := svc.Create(ctx, catalog.CreateTypeRequest{Type: "Hero", Name: "Hero Banner"})
	if err != nil {
		t.Fatalf("create hero: %v", err)
	}
	if first.Type != "hero" || first.SortOrder != 1 || !first.IsActive {
		t.Fatalf("unexpected hero record %+v", first)
	}
	if first.DefaultData == nil {
		t.Fatal("expected default data to be initialised")
	}

	second, err := svc.Create(ctx, catalog.CreateTypeRequest{Type: "cta", Name: "Call to Action"})
	if err != nil {
		t.Fatalf("create cta: %v", err)
	}
	if second.SortOrder != 2 {
		t.Fatalf("expected sort order 2, got %d", second.SortOrder)
	}

	if _, err := svc.Create(ctx, catalog.CreateTypeRequest{Type: "hero", Name: "Another"}); !errors.Is(err, catalog.ErrTypeExists) {
		t.Fatalf("expected ErrTypeExists, got %v", err)
	}
	if _, err := svc.Create(ctx, catalog.CreateTypeRequest{Type: "faq"}); !errors.Is(err, catalog.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestServiceSchemaValidatesDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	schema := map[string]any{
		"type":     "object",
		"required": []any{"title"},
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
		},
	}
	if _, err := svc.Create(ctx, catalog.CreateTypeRequest{
		Type:        "banner",
		Name:        "Banner",
		Schema:      schema,
		DefaultData: map[string]any{"subtitle": "missing title"},
	}); !errors.Is(err, catalog.ErrDefaultsInvalid) {
		t.Fatalf("expected ErrDefaultsInvalid, got %v", err)
	}

	if _, err := svc.Create(ctx, catalog.CreateTypeRequest{
		Type:        "banner",
		Name:        "Banner",
		Schema:      schema,
		DefaultData: map[string]any{"title": "Hello"},
	}); err != nil {
		t.Fatalf("expected valid defaults to pass, got %v", err)
	}
}

func TestServiceSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.Seed(ctx, catalog.Defaults())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if created != 10 {
		t.Fatalf("expected 10 created, got %d", created)
	}

	created, err = svc.Seed(ctx, catalog.Defaults())
	if err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if created != 0 {
		t.Fatalf("expected reseed to create nothing, got %d", created)
	}

	hero, err := svc.GetByType(ctx, "hero")
	if err != nil {
		t.Fatalf("get hero: %v", err)
	}
	if hero.ID != identity.SectionTypeUUID("hero") {
		t.Fatalf("expected deterministic id, got %s", hero.ID)
	}

	all, err := svc.List(ctx, catalog.ListOptions{IncludeInactive: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 10 {
		t.Fatalf("expected 10 records, got %d", len(all))
	}
}

func TestServiceSnapshotSkipsInactive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	if _, err := svc.Seed(ctx, catalog.Defaults()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	hero, err := svc.GetByType(ctx, "hero")
	if err != nil {
		t.Fatalf("get hero: %v", err)
	}
	inactive := false
	if _, err := svc.Update(ctx, catalog.UpdateTypeRequest{ID: hero.ID, IsActive: &inactive}); err != nil {
		t.Fatalf("deactivate hero: %v", err)
	}

	snapshot, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snapshot.Len() != 9 {
		t.Fatalf("expected 9 active types, got %d", snapshot.Len())
	}
	if _, ok := snapshot.Get("hero"); ok {
		t.Fatal("expected inactive hero to be excluded")
	}
	first, _ := snapshot.At(0)
	if first.Type != "product_showcase" {
		t.Fatalf("expected product_showcase first, got %s", first.Type)
	}
}

func TestServiceUpdateRenameConflicts(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	if _, err := svc.Seed(ctx, catalog.Defaults()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	cta, _ := svc.GetByType(ctx, "cta")

	taken := "hero"
	if _, err := svc.Update(ctx, catalog.UpdateTypeRequest{ID: cta.ID, Type: &taken}); !errors.Is(err, catalog.ErrTypeExists) {
		t.Fatalf("expected ErrTypeExists, got %v", err)
	}

	name := "Big CTA"
	updated, err := svc.Update(ctx, catalog.UpdateTypeRequest{ID: cta.ID, Name: &name})
	if err != nil {
		t.Fatalf("update cta: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("expected name %q, got %q", name, updated.Name)
	}
}

func TestServiceDeleteAndNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	record, err := svc.Create(ctx, catalog.CreateTypeRequest{Type: "faq", Name: "FAQ"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, record.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err = svc.Get(ctx, record.ID)
	var nf *catalog.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if _, err := svc.Get(ctx, uuid.Nil); !errors.Is(err, catalog.ErrIDRequired) {
		t.Fatalf("expected ErrIDRequired, got %v", err)
	}
}
