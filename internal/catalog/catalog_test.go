package catalog_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-landing/internal/catalog"
)

func TestDefaultsCoverEveryBuiltInType(t *testing.T) {
	c := catalog.Default()
	want := []string{
		"hero", "product_showcase", "testimonial", "newsletter", "image_text",
		"feature_grid", "cta", "product_details", "order_form", "swiper_slider",
	}
	list := c.List()
	if len(list) != len(want) {
		t.Fatalf("expected %d types, got %d", len(want), len(list))
	}
	for i, key := range want {
		if list[i].Type != key {
			t.Fatalf("position %d: expected %s, got %s", i, key, list[i].Type)
		}
	}

	hero, ok := c.Get("hero")
	if !ok {
		t.Fatal("expected hero to resolve")
	}
	if hero.DefaultData["title"] != "Welcome to Our Amazing Store" {
		t.Fatalf("unexpected hero title %v", hero.DefaultData["title"])
	}
	if hero.Icon != "bi-star" {
		t.Fatalf("unexpected hero icon %q", hero.Icon)
	}
}

func TestGetUnknownTypeReportsNotFound(t *testing.T) {
	c := catalog.Default()
	if _, ok := c.Get("carousel_3d"); ok {
		t.Fatal("expected unknown type to report false")
	}
	if _, ok := c.At(-1); ok {
		t.Fatal("expected negative position to report false")
	}
	if _, ok := c.At(c.Len()); ok {
		t.Fatal("expected out of range position to report false")
	}
}

func TestListOrdersBySortOrderThenRegistration(t *testing.T) {
	c, err := catalog.New(
		catalog.Descriptor{Type: "b", SortOrder: 2},
		catalog.Descriptor{Type: "a", SortOrder: 1},
		catalog.Descriptor{Type: "c", SortOrder: 2},
	)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	list := c.List()
	got := []string{list[0].Type, list[1].Type, list[2].Type}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
	if entry, ok := c.At(1); !ok || entry.Type != "b" {
		t.Fatalf("expected At(1) to be b, got %+v", entry)
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := catalog.Default()
	slider, _ := c.Get("swiper_slider")
	slides := slider.DefaultData["slides"].([]any)
	slides[0].(map[string]any)["title"] = "mutated"
	slider.DefaultData["extra"] = true

	again, _ := c.Get("swiper_slider")
	first := again.DefaultData["slides"].([]any)[0].(map[string]any)
	if first["title"] != "Premium Quality Products" {
		t.Fatalf("expected catalog snapshot to be immutable, got %v", first["title"])
	}
	if _, ok := again.DefaultData["extra"]; ok {
		t.Fatal("expected top-level mutation not to leak")
	}
}

func TestNewRejectsDuplicateAndEmptyKeys(t *testing.T) {
	if _, err := catalog.New(catalog.Descriptor{Type: "hero"}, catalog.Descriptor{Type: "HERO"}); !errors.Is(err, catalog.ErrTypeExists) {
		t.Fatalf("expected ErrTypeExists, got %v", err)
	}
	if _, err := catalog.New(catalog.Descriptor{Type: "  "}); !errors.Is(err, catalog.ErrTypeRequired) {
		t.Fatalf("expected ErrTypeRequired, got %v", err)
	}
}

func TestNormalizeTypeKey(t *testing.T) {
	cases := map[string]string{
		"hero":             "hero",
		"  HERO ":          "hero",
		"product_showcase": "product_showcase",
		"Product Showcase": "product_showcase",
		"":                 "",
	}
	for input, want := range cases {
		if got := catalog.NormalizeTypeKey(input); got != want {
			t.Fatalf("NormalizeTypeKey(%q) = %q, want %q", input, got, want)
		}
	}
}
