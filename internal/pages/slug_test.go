package pages_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-landing/internal/pages"
)

func TestDeriveSlug(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"My Cool Page!", "my-cool-page"},
		{"  Summer   Sale  2024 ", "summer-sale-2024"},
		{"already-slugged", "already-slugged"},
		{"under_scores and spaces", "under-scores-and-spaces"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			if got := pages.DeriveSlug(tc.title); got != tc.want {
				t.Fatalf("DeriveSlug(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestEnsureUniqueAppendsCounter(t *testing.T) {
	used := map[string]bool{"promo": true, "promo-2": true}
	got, err := pages.EnsureUnique(context.Background(), "promo", func(_ context.Context, slug string) (bool, error) {
		return used[slug], nil
	})
	if err != nil {
		t.Fatalf("ensure unique: %v", err)
	}
	if got != "promo-3" {
		t.Fatalf("expected promo-3, got %s", got)
	}
}

func TestEnsureUniquePropagatesLookupErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := pages.EnsureUnique(context.Background(), "promo", func(context.Context, string) (bool, error) {
		return false, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}

func TestEnsureUniqueRequiresCandidate(t *testing.T) {
	_, err := pages.EnsureUnique(context.Background(), "", func(context.Context, string) (bool, error) {
		return false, nil
	})
	if !errors.Is(err, pages.ErrSlugRequired) {
		t.Fatalf("expected ErrSlugRequired, got %v", err)
	}
}
