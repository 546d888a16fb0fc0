package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-landing/internal/catalog"
)

const pricingFile = `---
type: pricing_table
name: Pricing Table
icon: bi-currency-dollar
sort_order: 20
default_data:
  title: Simple pricing
  plans:
    - name: Starter
      price: "$9"
---
Compare plans side by side.
`

const faqFile = `---
name: FAQ
description: Frequently asked questions
active: false
---
`

func TestLoadDirParsesFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pricing.md"), pricingFile)
	writeFile(t, filepath.Join(dir, "faq.md"), faqFile)
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	descriptors, err := catalog.LoadDir(dir)
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if len(descriptors) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(descriptors))
	}

	faq := descriptors[0]
	if faq.Type != "faq" {
		t.Fatalf("expected file name to provide type key, got %q", faq.Type)
	}
	if faq.IsActive {
		t.Fatal("expected faq to be inactive")
	}
	if faq.Description != "Frequently asked questions" {
		t.Fatalf("unexpected faq description %q", faq.Description)
	}

	pricing := descriptors[1]
	if pricing.Type != "pricing_table" || pricing.SortOrder != 20 {
		t.Fatalf("unexpected pricing descriptor %+v", pricing)
	}
	if pricing.Description != "Compare plans side by side." {
		t.Fatalf("expected body as description, got %q", pricing.Description)
	}
	plans, ok := pricing.DefaultData["plans"].([]any)
	if !ok || len(plans) != 1 {
		t.Fatalf("expected one plan, got %#v", pricing.DefaultData["plans"])
	}
	plan, ok := plans[0].(map[string]any)
	if !ok || plan["name"] != "Starter" {
		t.Fatalf("expected normalised plan map, got %#v", plans[0])
	}
}

func TestLoadDirMissing(t *testing.T) {
	if _, err := catalog.LoadDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
