package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunSeedOnlyWithSQLite(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "landing.yaml")
	contents := "storage:\n  provider: sqlite\n  dsn: \"file:" + filepath.Join(dir, "landing.db") + "?cache=shared\"\nlogging:\n  provider: noop\n"
	if err := os.WriteFile(configPath, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := run(context.Background(), []string{"-config", configPath, "-seed-only"}); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunRejectsMissingConfig(t *testing.T) {
	err := run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected load config error, got %v", err)
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	if err := run(context.Background(), []string{"-nope"}); err == nil {
		t.Fatal("expected flag parse error")
	}
}
