package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := SectionTypeUUID("hero")
	second := SectionTypeUUID("  HERO ")
	if first == uuid.Nil {
		t.Fatal("expected non-nil uuid")
	}
	if first != second {
		t.Fatalf("expected normalised keys to match, got %s and %s", first, second)
	}
}

func TestUUIDSeparatesEntityKinds(t *testing.T) {
	if SectionTypeUUID("example.com") == DomainUUID("example.com") {
		t.Fatal("expected section type and domain ids to differ for the same key")
	}
}

func TestUUIDEmptyKey(t *testing.T) {
	if got := UUID("   "); got != uuid.Nil {
		t.Fatalf("expected nil uuid for empty key, got %s", got)
	}
}
