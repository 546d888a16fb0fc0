package sectionscmd_test

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	sectionscmd "github.com/goliatone/go-landing/internal/commands/sections"
	"github.com/goliatone/go-landing/internal/sections"
	"github.com/google/uuid"
)

func seedSections(t *testing.T, svc sections.Service, pageID uuid.UUID, ids ...string) []*sections.Section {
	t.Helper()
	out := make([]*sections.Section, 0, len(ids))
	for _, id := range ids {
		created, err := svc.Create(context.Background(), sections.CreateSectionRequest{
			LandingPageID: pageID,
			SectionID:     id,
			Type:          "hero",
			Data:          map[string]any{"title": id},
		})
		if err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
		out = append(out, created)
	}
	return out
}

func TestToggleSectionHandler(t *testing.T) {
	svc := sections.NewService(sections.NewMemoryRepository())
	rows := seedSections(t, svc, uuid.New(), "hero-a")
	handler := sectionscmd.NewToggleSectionHandler(svc, nil)

	if err := handler.Execute(context.Background(), sectionscmd.ToggleSectionCommand{SectionID: rows[0].ID}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	stored, _ := svc.Get(context.Background(), rows[0].ID)
	if stored.IsActive {
		t.Fatal("expected section to be deactivated")
	}

	err := handler.Execute(context.Background(), sectionscmd.ToggleSectionCommand{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestReorderSectionsHandler(t *testing.T) {
	svc := sections.NewService(sections.NewMemoryRepository())
	pageID := uuid.New()
	rows := seedSections(t, svc, pageID, "a", "b", "c")
	handler := sectionscmd.NewReorderSectionsHandler(svc, nil)

	msg := sectionscmd.ReorderSectionsCommand{Entries: []sections.OrderEntry{
		{ID: rows[2].ID, SortOrder: 1},
		{ID: rows[0].ID, SortOrder: 2},
		{ID: rows[1].ID, SortOrder: 3},
	}}
	if err := handler.Execute(context.Background(), msg); err != nil {
		t.Fatalf("execute: %v", err)
	}

	listed, err := svc.List(context.Background(), sections.ListOptions{PageID: &pageID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := []string{listed[0].SectionID, listed[1].SectionID, listed[2].SectionID}
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestReorderSectionsCommandValidate(t *testing.T) {
	id := uuid.New()
	cases := []struct {
		name    string
		entries []sections.OrderEntry
		wantErr bool
	}{
		{"valid", []sections.OrderEntry{{ID: id, SortOrder: 0}}, false},
		{"empty", nil, true},
		{"nil id", []sections.OrderEntry{{SortOrder: 1}}, true},
		{"negative", []sections.OrderEntry{{ID: id, SortOrder: -1}}, true},
		{"duplicate", []sections.OrderEntry{{ID: id, SortOrder: 1}, {ID: id, SortOrder: 2}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := sectionscmd.ReorderSectionsCommand{Entries: tc.entries}.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
