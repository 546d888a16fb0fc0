package landing

import (
	"context"
	"net/http"

	"github.com/goliatone/go-landing/internal/builder"
	"github.com/goliatone/go-landing/internal/catalog"
	"github.com/goliatone/go-landing/internal/di"
	"github.com/goliatone/go-landing/internal/domains"
	landinghttp "github.com/goliatone/go-landing/internal/http"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/orders"
	"github.com/goliatone/go-landing/internal/pages"
	"github.com/goliatone/go-landing/internal/render"
	"github.com/goliatone/go-landing/internal/sections"
)

// CatalogService exports the section type catalog contract.
type CatalogService = catalog.Service

// PageService exports the pages service contract.
type PageService = pages.Service

// SectionService exports the stored sections contract.
type SectionService = sections.Service

// OrderService exports the orders service contract.
type OrderService = orders.Service

// DomainService exports the custom domains contract.
type DomainService = domains.Service

// Session exports the editor session type.
type Session = builder.Session

// Renderer exports the section renderer.
type Renderer = *render.Renderer

// Module is the top level landing page builder runtime.
type Module struct {
	container *di.Container
}

// New constructs a module from cfg with optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Bootstrap creates tables and seeds the section type catalog.
func (m *Module) Bootstrap(ctx context.Context) error {
	return m.container.Bootstrap(ctx)
}

// NewSession opens an editor session over a fresh catalog snapshot.
func (m *Module) NewSession(ctx context.Context, opts ...builder.SessionOption) (*Session, error) {
	return m.container.NewSession(ctx, opts...)
}

// Catalog returns the section type catalog service.
func (m *Module) Catalog() CatalogService {
	return m.container.CatalogService()
}

// Pages returns the page service.
func (m *Module) Pages() PageService {
	return m.container.PageService()
}

// Sections returns the stored sections service.
func (m *Module) Sections() SectionService {
	return m.container.SectionService()
}

// Orders returns the order service.
func (m *Module) Orders() OrderService {
	return m.container.OrderService()
}

// Domains returns the custom domain service.
func (m *Module) Domains() DomainService {
	return m.container.DomainService()
}

// Renderer returns the section renderer.
func (m *Module) Renderer() Renderer {
	return m.container.Renderer()
}

// Handler returns the JSON API and public page routes.
func (m *Module) Handler() http.Handler {
	c := m.container
	api := landinghttp.NewAPI(
		landinghttp.WithBasePath(c.Config.HTTP.APIBase),
		landinghttp.WithCatalogService(c.CatalogService()),
		landinghttp.WithPageService(c.PageService()),
		landinghttp.WithSectionService(c.SectionService()),
		landinghttp.WithOrderService(c.OrderService()),
		landinghttp.WithDomainService(c.DomainService()),
		landinghttp.WithRenderer(c.Renderer()),
		landinghttp.WithURLResolver(c.URLResolver()),
		landinghttp.WithLogger(logging.HTTPLogger(c.LoggerProvider())),
	)
	return api.Handler()
}

// Close releases the database when the module opened it.
func (m *Module) Close() error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Close()
}
