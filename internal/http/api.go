package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-landing/internal/catalog"
	"github.com/goliatone/go-landing/internal/domains"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/orders"
	"github.com/goliatone/go-landing/internal/pages"
	"github.com/goliatone/go-landing/internal/render"
	"github.com/goliatone/go-landing/internal/sections"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

// API registers the JSON endpoints and the public page view.
type API struct {
	basePath string
	catalog  catalog.Service
	pages    pages.Service
	sections sections.Service
	orders   orders.Service
	domains  domains.Service
	renderer *render.Renderer
	urls     *pages.URLResolver
	logger   interfaces.Logger
}

// Option mutates the API configuration.
type Option func(*API)

func NewAPI(opts ...Option) *API {
	api := &API{
		basePath: "/api",
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the API prefix (defaults to "/api").
func WithBasePath(path string) Option {
	return func(api *API) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

func WithCatalogService(service catalog.Service) Option {
	return func(api *API) { api.catalog = service }
}

func WithPageService(service pages.Service) Option {
	return func(api *API) { api.pages = service }
}

func WithSectionService(service sections.Service) Option {
	return func(api *API) { api.sections = service }
}

func WithOrderService(service orders.Service) Option {
	return func(api *API) { api.orders = service }
}

func WithDomainService(service domains.Service) Option {
	return func(api *API) { api.domains = service }
}

// WithRenderer enables GET /view/{slug}.
func WithRenderer(renderer *render.Renderer) Option {
	return func(api *API) { api.renderer = renderer }
}

// WithURLResolver adds public URLs to page payloads.
func WithURLResolver(urls *pages.URLResolver) Option {
	return func(api *API) { api.urls = urls }
}

func WithLogger(logger interfaces.Logger) Option {
	return func(api *API) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// Register mounts every route whose service is configured.
func (api *API) Register(mux *http.ServeMux) {
	if api == nil || mux == nil {
		return
	}
	api.registerBuilderRoutes(mux, api.basePath)
	api.registerSectionRoutes(mux, api.basePath)
	api.registerOrderRoutes(mux, api.basePath)
	api.registerDomainRoutes(mux, api.basePath)
	api.registerSectionTypeRoutes(mux, api.basePath)
	api.registerViewRoutes(mux)
}

// Handler returns a mux with every route registered.
func (api *API) Handler() http.Handler {
	mux := http.NewServeMux()
	api.Register(mux)
	return api.logRequests(mux)
}

func (api *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		api.logger.Debug("http.request", "method", r.Method, "path", r.URL.Path, "status", rec.status)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
