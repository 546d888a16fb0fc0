package landing_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-landing"
	"github.com/goliatone/go-landing/internal/pages"
)

func TestModuleServesSeededCatalog(t *testing.T) {
	cfg := landing.DefaultConfig()
	cfg.Logging.Provider = "noop"
	cfg.HTTP.APIBase = "/v1"

	module, err := landing.New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })
	if err := module.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	rec := httptest.NewRecorder()
	module.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/page-builder/sections", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Success bool             `json:"success"`
		Data    []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || len(body.Data) != 10 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestModuleViewsSavedPage(t *testing.T) {
	ctx := context.Background()
	cfg := landing.DefaultConfig()
	cfg.Logging.Provider = "noop"

	module, err := landing.New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })
	if err := module.Bootstrap(ctx); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	if _, err := module.Pages().Save(ctx, pages.SaveRequest{Title: "Open House", Status: pages.StatusPublished}); err != nil {
		t.Fatalf("save: %v", err)
	}

	rec := httptest.NewRecorder()
	module.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view/open-house", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "<title>Open House</title>") {
		t.Fatalf("unexpected view response %d: %s", rec.Code, rec.Body.String())
	}
}
