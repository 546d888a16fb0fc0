package pages_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-landing/internal/pages"
)

func TestURLResolver(t *testing.T) {
	resolver := pages.NewURLResolver("https://pages.example.com/")

	url, err := resolver.Resolve("spring-sale")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if url != "https://pages.example.com/view/spring-sale" {
		t.Fatalf("unexpected url %q", url)
	}
	if _, err := resolver.Resolve(" "); !errors.Is(err, pages.ErrSlugRequired) {
		t.Fatalf("expected ErrSlugRequired, got %v", err)
	}

	draft := &pages.Page{Slug: "draft", Status: pages.StatusDraft}
	if got := resolver.PublicURL(draft); got != "" {
		t.Fatalf("expected no public url for drafts, got %q", got)
	}
	live := &pages.Page{Slug: "live", Status: pages.StatusPublished}
	if got := resolver.PublicURL(live); got != "https://pages.example.com/view/live" {
		t.Fatalf("unexpected public url %q", got)
	}
}
