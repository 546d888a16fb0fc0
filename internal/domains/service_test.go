package domains_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-landing/internal/domains"
	"github.com/goliatone/go-landing/internal/pages"
	"github.com/google/uuid"
)

type stubPages map[uuid.UUID]*pages.Page

func (s stubPages) Get(_ context.Context, id uuid.UUID) (*pages.Page, error) {
	page, ok := s[id]
	if !ok {
		return nil, &pages.NotFoundError{Resource: "page", Key: id.String()}
	}
	return page, nil
}

type fixture struct {
	svc       domains.Service
	published uuid.UUID
	draft     uuid.UUID
}

func newFixture(repo domains.Repository) fixture {
	published, draft := uuid.New(), uuid.New()
	lookup := stubPages{
		published: {ID: published, Title: "Live", Status: pages.StatusPublished},
		draft:     {ID: draft, Title: "Draft", Status: pages.StatusDraft},
	}
	base := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	svc := domains.NewService(repo,
		domains.WithPageLookup(lookup),
		domains.WithClock(func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Minute)
		}),
	)
	return fixture{svc: svc, published: published, draft: draft}
}

func TestNormalizeHost(t *testing.T) {
	cases := map[string]string{
		"https://www.Example.com/": "example.com",
		"http://shop.example.com":  "shop.example.com",
		"  EXAMPLE.org// ":         "example.org",
		"www.example.net":          "example.net",
	}
	for input, want := range cases {
		if got := domains.NormalizeHost(input); got != want {
			t.Fatalf("NormalizeHost(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDomainServiceCreate(t *testing.T) {
	f := newFixture(domains.NewMemoryRepository())
	ctx := context.Background()

	created, err := f.svc.Create(ctx, domains.CreateDomainRequest{Domain: "https://www.Promo.example.com/", LandingPageID: f.published})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Domain != "promo.example.com" || !created.IsActive {
		t.Fatalf("unexpected domain %+v", created)
	}

	if _, err := f.svc.Create(ctx, domains.CreateDomainRequest{Domain: "promo.example.com", LandingPageID: f.published}); !errors.Is(err, domains.ErrDomainExists) {
		t.Fatalf("expected ErrDomainExists, got %v", err)
	}
	if _, err := f.svc.Create(ctx, domains.CreateDomainRequest{Domain: "draft.example.com", LandingPageID: f.draft}); !errors.Is(err, domains.ErrPageNotPublished) {
		t.Fatalf("expected ErrPageNotPublished, got %v", err)
	}
	if _, err := f.svc.Create(ctx, domains.CreateDomainRequest{Domain: "ghost.example.com", LandingPageID: uuid.New()}); !domains.IsNotFound(err) {
		t.Fatalf("expected missing page, got %v", err)
	}
	if _, err := f.svc.Create(ctx, domains.CreateDomainRequest{Domain: "not a domain", LandingPageID: f.published}); !errors.Is(err, domains.ErrInvalidDomain) {
		t.Fatalf("expected ErrInvalidDomain, got %v", err)
	}
	if _, err := f.svc.Create(ctx, domains.CreateDomainRequest{Domain: "ok.example.com"}); !errors.Is(err, domains.ErrInvalidDomain) {
		t.Fatalf("expected ErrInvalidDomain for missing page id, got %v", err)
	}
}

func TestDomainServiceGetByDomain(t *testing.T) {
	f := newFixture(domains.NewMemoryRepository())
	ctx := context.Background()

	created, err := f.svc.Create(ctx, domains.CreateDomainRequest{Domain: "live.example.com", LandingPageID: f.published})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := f.svc.GetByDomain(ctx, "HTTPS://Live.Example.com")
	if err != nil {
		t.Fatalf("get by domain: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected %s, got %s", created.ID, found.ID)
	}

	inactive := false
	if _, err := f.svc.Update(ctx, domains.UpdateDomainRequest{ID: created.ID, IsActive: &inactive}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := f.svc.GetByDomain(ctx, "live.example.com"); !domains.IsNotFound(err) {
		t.Fatalf("expected inactive domain to be hidden, got %v", err)
	}
	if _, err := f.svc.GetByDomain(ctx, " "); !errors.Is(err, domains.ErrInvalidDomain) {
		t.Fatalf("expected ErrInvalidDomain, got %v", err)
	}
}

func TestDomainServiceUpdateAndList(t *testing.T) {
	f := newFixture(domains.NewMemoryRepository())
	ctx := context.Background()

	a, _ := f.svc.Create(ctx, domains.CreateDomainRequest{Domain: "a.example.com", LandingPageID: f.published})
	b, _ := f.svc.Create(ctx, domains.CreateDomainRequest{Domain: "b.example.org", LandingPageID: f.published})

	taken := "b.example.org"
	if _, err := f.svc.Update(ctx, domains.UpdateDomainRequest{ID: a.ID, Domain: &taken}); !errors.Is(err, domains.ErrDomainExists) {
		t.Fatalf("expected ErrDomainExists, got %v", err)
	}
	if _, err := f.svc.Update(ctx, domains.UpdateDomainRequest{ID: a.ID, LandingPageID: &f.draft}); !errors.Is(err, domains.ErrPageNotPublished) {
		t.Fatalf("expected ErrPageNotPublished, got %v", err)
	}

	renamed := "WWW.Renamed.example.com"
	notes := " moved "
	updated, err := f.svc.Update(ctx, domains.UpdateDomainRequest{ID: a.ID, Domain: &renamed, Notes: &notes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Domain != "renamed.example.com" || updated.Notes != "moved" {
		t.Fatalf("unexpected update %+v", updated)
	}

	all, _ := f.svc.List(ctx, domains.ListOptions{})
	if len(all) != 2 || all[0].ID != b.ID {
		t.Fatalf("expected newest first, got %#v", all)
	}
	org, _ := f.svc.List(ctx, domains.ListOptions{Search: ".ORG"})
	if len(org) != 1 || org[0].ID != b.ID {
		t.Fatalf("unexpected search result %#v", org)
	}

	if err := f.svc.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.svc.Get(ctx, b.ID); !domains.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
