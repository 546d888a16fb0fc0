package render_test

import (
	"testing"

	"github.com/goliatone/go-landing/internal/document"
	"github.com/goliatone/go-landing/internal/render"
)

func TestFieldChangeSinkEditModePatchesDocument(t *testing.T) {
	model, err := document.New(
		document.Section{ID: "a", Type: "hero", Data: map[string]any{"title": "Old"}},
		document.Section{ID: "s", Type: "swiper_slider", Data: map[string]any{"slides": []any{
			map[string]any{"title": "One"},
			map[string]any{"title": "Two"},
		}}},
	)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	sink := render.FieldChangeSink(render.ModeEdit, model)

	if ok, err := sink(render.FieldChange{SectionID: "a", Data: map[string]any{"title": "New"}}); err != nil || !ok {
		t.Fatalf("patch title: ok=%v err=%v", ok, err)
	}
	if ok, err := sink(render.FieldChange{SectionID: "s", List: "slides", Index: 1, Data: map[string]any{"title": "Second"}}); err != nil || !ok {
		t.Fatalf("patch slide: ok=%v err=%v", ok, err)
	}

	hero, _ := model.Find("a")
	if hero.Data["title"] != "New" {
		t.Fatalf("expected patched title, got %v", hero.Data["title"])
	}
	slider, _ := model.Find("s")
	slides := slider.Data["slides"].([]any)
	if slides[0].(map[string]any)["title"] != "One" || slides[1].(map[string]any)["title"] != "Second" {
		t.Fatalf("unexpected slides %v", slides)
	}
}

func TestFieldChangeSinkSeedsBuiltInListBeforeItemEdit(t *testing.T) {
	model, err := document.New(document.Section{ID: "p", Type: "product_showcase", Data: map[string]any{"title": "Shop"}})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	sink := render.FieldChangeSink(render.ModeEdit, model)

	ok, err := sink(render.FieldChange{SectionID: "p", List: "products", Index: 1, Data: map[string]any{"price": "$5"}})
	if err != nil || !ok {
		t.Fatalf("patch product: ok=%v err=%v", ok, err)
	}

	defaults := render.DefaultItems("product_showcase", "products")
	section, _ := model.Find("p")
	products := section.Data["products"].([]any)
	if len(products) != len(defaults) {
		t.Fatalf("expected %d seeded products, got %d", len(defaults), len(products))
	}
	first := products[0].(map[string]any)
	second := products[1].(map[string]any)
	if first["price"] != defaults[0]["price"] {
		t.Fatalf("expected first product untouched, got %v", first)
	}
	if second["price"] != "$5" || second["name"] != defaults[1]["name"] {
		t.Fatalf("expected second product patched over its default, got %v", second)
	}
	if section.Data["title"] != "Shop" {
		t.Fatalf("expected title kept, got %v", section.Data["title"])
	}
}

func TestFieldChangeSinkViewModeIsNoOp(t *testing.T) {
	model, err := document.New(document.Section{ID: "a", Type: "hero", Data: map[string]any{"title": "Old"}})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	before := model.Clone()

	sink := render.FieldChangeSink(render.ModeView, model)
	if ok, err := sink(render.FieldChange{SectionID: "a", Data: map[string]any{"title": "New"}}); ok || err != nil {
		t.Fatalf("expected no-op, got ok=%v err=%v", ok, err)
	}
	if !model.Equal(before) {
		t.Fatal("expected view mode sink to leave the document untouched")
	}
}

func TestParseMode(t *testing.T) {
	if render.ParseMode(" EDIT ") != render.ModeEdit {
		t.Fatal("expected edit mode")
	}
	if render.ParseMode("anything") != render.ModeView {
		t.Fatal("expected view mode default")
	}
}
