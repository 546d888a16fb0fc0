package sections_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/goliatone/go-landing/internal/pages"
	"github.com/goliatone/go-landing/internal/sections"
	"github.com/google/uuid"
)

type stubPages struct {
	pages map[uuid.UUID]*pages.Page
}

func (s stubPages) Get(_ context.Context, id uuid.UUID) (*pages.Page, error) {
	page, ok := s.pages[id]
	if !ok {
		return nil, &pages.NotFoundError{Resource: "page", Key: id.String()}
	}
	return page, nil
}

func newTestService(t *testing.T, repo sections.Repository, pageIDs ...uuid.UUID) sections.Service {
	t.Helper()
	lookup := stubPages{pages: map[uuid.UUID]*pages.Page{}}
	for i, id := range pageIDs {
		lookup.pages[id] = &pages.Page{ID: id, Title: fmt.Sprintf("Page %d", i+1)}
	}
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	return sections.NewService(repo,
		sections.WithPageLookup(lookup),
		sections.WithClock(func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		}),
	)
}

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func create(t *testing.T, svc sections.Service, pageID uuid.UUID, sectionID, typ string) *sections.Section {
	t.Helper()
	section, err := svc.Create(context.Background(), sections.CreateSectionRequest{
		LandingPageID: pageID,
		SectionID:     sectionID,
		Type:          typ,
		Data:          map[string]any{"title": sectionID},
	})
	if err != nil {
		t.Fatalf("create %s: %v", sectionID, err)
	}
	return section
}

func TestSectionServiceCreateAssignsNextSortOrder(t *testing.T) {
	pageA, pageB := uuid.New(), uuid.New()
	svc := newTestService(t, sections.NewMemoryRepository(), pageA, pageB)

	first := create(t, svc, pageA, "hero-1", "hero")
	second := create(t, svc, pageA, "cta-1", "cta")
	other := create(t, svc, pageB, "hero-2", "hero")

	if first.SortOrder != 1 || second.SortOrder != 2 {
		t.Fatalf("expected sort orders 1 and 2, got %d and %d", first.SortOrder, second.SortOrder)
	}
	if other.SortOrder != 1 {
		t.Fatalf("expected sort order per page, got %d", other.SortOrder)
	}
	if !first.IsActive {
		t.Fatal("expected sections to default to active")
	}

	explicit, err := svc.Create(context.Background(), sections.CreateSectionRequest{
		LandingPageID: pageA,
		SectionID:     "hidden",
		Type:          "cta",
		Data:          map[string]any{},
		SortOrder:     intPtr(10),
		IsActive:      boolPtr(false),
	})
	if err != nil {
		t.Fatalf("create explicit: %v", err)
	}
	if explicit.SortOrder != 10 || explicit.IsActive {
		t.Fatalf("expected explicit values, got %+v", explicit)
	}
}

func TestSectionServiceCreateValidation(t *testing.T) {
	pageID := uuid.New()
	svc := newTestService(t, sections.NewMemoryRepository(), pageID)
	ctx := context.Background()

	cases := []struct {
		name string
		req  sections.CreateSectionRequest
	}{
		{"missing page", sections.CreateSectionRequest{SectionID: "a", Type: "hero", Data: map[string]any{}}},
		{"missing section id", sections.CreateSectionRequest{LandingPageID: pageID, Type: "hero", Data: map[string]any{}}},
		{"missing type", sections.CreateSectionRequest{LandingPageID: pageID, SectionID: "a", Data: map[string]any{}}},
		{"nil data", sections.CreateSectionRequest{LandingPageID: pageID, SectionID: "a", Type: "hero"}},
		{"negative order", sections.CreateSectionRequest{LandingPageID: pageID, SectionID: "a", Type: "hero", Data: map[string]any{}, SortOrder: intPtr(-1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.req); !errors.Is(err, sections.ErrInvalidSection) {
				t.Fatalf("expected ErrInvalidSection, got %v", err)
			}
		})
	}

	_, err := svc.Create(ctx, sections.CreateSectionRequest{LandingPageID: uuid.New(), SectionID: "a", Type: "hero", Data: map[string]any{}})
	if !sections.IsNotFound(err) {
		t.Fatalf("expected unknown page to be rejected, got %v", err)
	}

	create(t, svc, pageID, "taken", "hero")
	_, err = svc.Create(ctx, sections.CreateSectionRequest{LandingPageID: pageID, SectionID: "taken", Type: "hero", Data: map[string]any{}})
	if !errors.Is(err, sections.ErrSectionIDExists) {
		t.Fatalf("expected ErrSectionIDExists, got %v", err)
	}
}

func TestSectionServiceUpdate(t *testing.T) {
	pageID := uuid.New()
	svc := newTestService(t, sections.NewMemoryRepository(), pageID)
	ctx := context.Background()

	a := create(t, svc, pageID, "a", "hero")
	create(t, svc, pageID, "b", "hero")

	updated, err := svc.Update(ctx, sections.UpdateSectionRequest{ID: a.ID, SectionID: strPtr("a"), Data: map[string]any{"title": "New"}})
	if err != nil {
		t.Fatalf("update keeping own section_id: %v", err)
	}
	if updated.Data["title"] != "New" || updated.Type != "hero" {
		t.Fatalf("unexpected update result %+v", updated)
	}

	if _, err := svc.Update(ctx, sections.UpdateSectionRequest{ID: a.ID, SectionID: strPtr("b")}); !errors.Is(err, sections.ErrSectionIDExists) {
		t.Fatalf("expected ErrSectionIDExists, got %v", err)
	}
	if _, err := svc.Update(ctx, sections.UpdateSectionRequest{ID: a.ID, Type: strPtr("")}); !errors.Is(err, sections.ErrInvalidSection) {
		t.Fatalf("expected ErrInvalidSection for empty type, got %v", err)
	}

	renamed, err := svc.Update(ctx, sections.UpdateSectionRequest{ID: a.ID, SectionID: strPtr("a-renamed"), SortOrder: intPtr(5)})
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.SectionID != "a-renamed" || renamed.SortOrder != 5 {
		t.Fatalf("unexpected rename result %+v", renamed)
	}
}

func TestSectionServiceDuplicate(t *testing.T) {
	pageID := uuid.New()
	svc := newTestService(t, sections.NewMemoryRepository(), pageID)

	source := create(t, svc, pageID, "hero-main", "hero")
	create(t, svc, pageID, "cta-main", "cta")

	copied, err := svc.Duplicate(context.Background(), source.ID)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if copied.ID == source.ID {
		t.Fatal("expected new row id")
	}
	want := fmt.Sprintf("hero-main-copy-%d", time.Date(2024, 6, 1, 12, 0, 3, 0, time.UTC).Unix())
	if copied.SectionID != want {
		t.Fatalf("expected %s, got %s", want, copied.SectionID)
	}
	if copied.SortOrder != 3 {
		t.Fatalf("expected sort order 3, got %d", copied.SortOrder)
	}
	if copied.Data["title"] != "hero-main" {
		t.Fatalf("expected data to be copied, got %v", copied.Data)
	}
}

func TestSectionServiceDuplicateWithinSameSecondSuffixes(t *testing.T) {
	pageID := uuid.New()
	lookup := stubPages{pages: map[uuid.UUID]*pages.Page{pageID: {ID: pageID, Title: "Page"}}}
	frozen := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := sections.NewService(sections.NewMemoryRepository(),
		sections.WithPageLookup(lookup),
		sections.WithClock(func() time.Time { return frozen }),
	)
	ctx := context.Background()
	source := create(t, svc, pageID, "hero-main", "hero")

	base := fmt.Sprintf("hero-main-copy-%d", frozen.Unix())
	for _, want := range []string{base, base + "-2", base + "-3"} {
		copied, err := svc.Duplicate(ctx, source.ID)
		if err != nil {
			t.Fatalf("duplicate: %v", err)
		}
		if copied.SectionID != want {
			t.Fatalf("expected %s, got %s", want, copied.SectionID)
		}
	}
}

func TestSectionServiceToggleAndFilters(t *testing.T) {
	pageA, pageB := uuid.New(), uuid.New()
	svc := newTestService(t, sections.NewMemoryRepository(), pageA, pageB)
	ctx := context.Background()

	hero := create(t, svc, pageA, "hero", "hero")
	create(t, svc, pageA, "cta", "cta")
	create(t, svc, pageB, "hero-b", "hero")

	toggled, err := svc.ToggleStatus(ctx, hero.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if toggled.IsActive {
		t.Fatal("expected section to be inactive")
	}

	heroes, err := svc.List(ctx, sections.ListOptions{Type: "hero"})
	if err != nil {
		t.Fatalf("list by type: %v", err)
	}
	if len(heroes) != 2 {
		t.Fatalf("expected 2 hero sections, got %d", len(heroes))
	}

	active, err := svc.List(ctx, sections.ListOptions{PageID: &pageA, Active: boolPtr(true)})
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].SectionID != "cta" {
		t.Fatalf("unexpected active sections %#v", active)
	}
}

func TestSectionServiceUpdateOrder(t *testing.T) {
	pageID := uuid.New()
	svc := newTestService(t, sections.NewMemoryRepository(), pageID)
	ctx := context.Background()

	a := create(t, svc, pageID, "a", "hero")
	b := create(t, svc, pageID, "b", "hero")
	c := create(t, svc, pageID, "c", "hero")

	if err := svc.UpdateOrder(ctx, []sections.OrderEntry{{ID: c.ID, SortOrder: 0}, {ID: a.ID, SortOrder: 1}, {ID: b.ID, SortOrder: 2}}); err != nil {
		t.Fatalf("update order: %v", err)
	}
	list, err := svc.List(ctx, sections.ListOptions{PageID: &pageID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := []string{list[0].SectionID, list[1].SectionID, list[2].SectionID}
	if fmt.Sprint(got) != "[c a b]" {
		t.Fatalf("unexpected order %v", got)
	}

	err = svc.UpdateOrder(ctx, []sections.OrderEntry{{ID: a.ID, SortOrder: 9}, {ID: uuid.New(), SortOrder: 1}})
	if !sections.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	unchanged, _ := svc.Get(ctx, a.ID)
	if unchanged.SortOrder != 1 {
		t.Fatalf("expected no partial write, got sort order %d", unchanged.SortOrder)
	}

	if err := svc.UpdateOrder(ctx, nil); !errors.Is(err, sections.ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
}

func TestSectionServiceStatistics(t *testing.T) {
	pageA, pageB := uuid.New(), uuid.New()
	svc := newTestService(t, sections.NewMemoryRepository(), pageA, pageB)
	ctx := context.Background()

	hero := create(t, svc, pageA, "hero", "hero")
	create(t, svc, pageA, "cta", "cta")
	create(t, svc, pageB, "hero-b", "hero")
	if _, err := svc.ToggleStatus(ctx, hero.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	stats, err := svc.Statistics(ctx)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalSections != 3 || stats.ActiveSections != 2 || stats.InactiveSections != 1 {
		t.Fatalf("unexpected counts %+v", stats)
	}
	if stats.SectionsByType["hero"] != 2 || stats.SectionsByType["cta"] != 1 {
		t.Fatalf("unexpected by type %v", stats.SectionsByType)
	}
	if len(stats.SectionsByPage) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(stats.SectionsByPage))
	}
	top := stats.SectionsByPage[0]
	if top.PageID != pageA || top.PageTitle != "Page 1" || top.SectionCount != 2 {
		t.Fatalf("unexpected top page %+v", top)
	}
}

func TestSectionServiceDelete(t *testing.T) {
	pageID := uuid.New()
	svc := newTestService(t, sections.NewMemoryRepository(), pageID)
	ctx := context.Background()

	section := create(t, svc, pageID, "gone", "hero")
	if err := svc.Delete(ctx, section.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, section.ID); !sections.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	create(t, svc, pageID, "gone", "hero")
}
