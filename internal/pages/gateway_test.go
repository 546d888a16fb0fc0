package pages_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-landing/internal/builder"
	"github.com/goliatone/go-landing/internal/catalog"
	"github.com/goliatone/go-landing/internal/pages"
)

func TestGatewayAdapterRoundTripsSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(pages.NewMemoryRepository())
	gateway := pages.NewGatewayAdapter(svc)

	session := builder.NewSession(gateway, catalog.Default())
	if _, err := session.Apply(builder.Gesture{
		Source:      builder.Location{List: builder.ListCatalog, Index: 0},
		Destination: &builder.Location{List: builder.ListDocument, Index: 0},
	}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	session.SetDetails(builder.Details{Title: "Spring Launch"})

	saved, err := session.Save(ctx)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Slug != "spring-launch" || saved.Status != pages.StatusDraft {
		t.Fatalf("unexpected saved document %+v", saved)
	}

	details := builder.Details{Title: "Summer Launch", Slug: session.Document().Slug}
	session.SetDetails(details)
	resaved, err := session.Save(ctx)
	if err != nil {
		t.Fatalf("resave: %v", err)
	}
	if resaved.ID != saved.ID {
		t.Fatalf("expected update of %s, got %s", saved.ID, resaved.ID)
	}
	if resaved.Slug != "summer-launch" {
		t.Fatalf("expected slug to follow title, got %s", resaved.Slug)
	}

	reloaded := builder.NewSession(gateway, catalog.Default())
	if err := reloaded.LoadBySlug(ctx, "summer-launch"); err != nil {
		t.Fatalf("load by slug: %v", err)
	}
	doc := reloaded.Document()
	if doc.Title != "Summer Launch" || len(doc.Sections) != 1 || doc.Sections[0].Type != catalog.TypeHero {
		t.Fatalf("unexpected reloaded document %+v", doc)
	}
}

func TestGatewayAdapterLoadMissingPage(t *testing.T) {
	gateway := pages.NewGatewayAdapter(newTestService(pages.NewMemoryRepository()))
	if _, err := gateway.LoadBySlug(context.Background(), "missing"); !pages.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
