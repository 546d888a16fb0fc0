package sectionscmd_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	"github.com/goliatone/go-landing/internal/commands"
	sectionscmd "github.com/goliatone/go-landing/internal/commands/sections"
	"github.com/goliatone/go-landing/internal/sections"
	"github.com/google/uuid"
)

// flakySections fails the first failures toggle calls before delegating.
type flakySections struct {
	sections.Service
	failures int
	attempts int
}

func (f *flakySections) ToggleStatus(ctx context.Context, id uuid.UUID) (*sections.Section, error) {
	f.attempts++
	if f.attempts <= f.failures {
		return nil, errors.New("storage unavailable")
	}
	return f.Service.ToggleStatus(ctx, id)
}

func subscribeToggle(t *testing.T, svc sections.Service, retries int) {
	t.Helper()
	handler := sectionscmd.NewToggleSectionHandler(svc, nil,
		commands.WithTimeout[sectionscmd.ToggleSectionCommand](time.Second))
	sub := dispatcher.SubscribeCommand(handler, runner.WithMaxRetries(retries))
	t.Cleanup(sub.Unsubscribe)
}

func TestDispatchToggleSectionRetriesUntilSuccess(t *testing.T) {
	ctx := context.Background()
	base := sections.NewService(sections.NewMemoryRepository())
	rows := seedSections(t, base, uuid.New(), "hero-a")
	svc := &flakySections{Service: base, failures: 1}
	subscribeToggle(t, svc, 1)

	if err := dispatcher.Dispatch(ctx, sectionscmd.ToggleSectionCommand{SectionID: rows[0].ID}); err != nil {
		t.Fatalf("dispatch: expected success after retry, got %v", err)
	}
	if svc.attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", svc.attempts)
	}
	stored, err := base.Get(ctx, rows[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.IsActive {
		t.Fatal("expected section to be deactivated once")
	}
}

func TestDispatchToggleSectionRetryExhaustionPropagatesError(t *testing.T) {
	ctx := context.Background()
	base := sections.NewService(sections.NewMemoryRepository())
	rows := seedSections(t, base, uuid.New(), "hero-a")
	svc := &flakySections{Service: base, failures: 10}
	subscribeToggle(t, svc, 2)

	if err := dispatcher.Dispatch(ctx, sectionscmd.ToggleSectionCommand{SectionID: rows[0].ID}); err == nil {
		t.Fatal("expected dispatch to fail after exhausting retries")
	}
	if svc.attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", svc.attempts)
	}
	stored, err := base.Get(ctx, rows[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !stored.IsActive {
		t.Fatal("expected section to stay active")
	}
}

func TestDispatchToggleSectionRejectsMissingID(t *testing.T) {
	svc := &flakySections{Service: sections.NewService(sections.NewMemoryRepository())}
	subscribeToggle(t, svc, 0)

	if err := dispatcher.Dispatch(context.Background(), sectionscmd.ToggleSectionCommand{}); err == nil {
		t.Fatal("expected dispatch of an empty command to fail")
	}
	if svc.attempts != 0 {
		t.Fatalf("expected service untouched, got %d calls", svc.attempts)
	}
}
