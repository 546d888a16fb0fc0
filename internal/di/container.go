package di

import (
	"context"
	"fmt"

	orderscmd "github.com/goliatone/go-landing/internal/commands/orders"
	pagescmd "github.com/goliatone/go-landing/internal/commands/pages"
	sectionscmd "github.com/goliatone/go-landing/internal/commands/sections"

	"github.com/goliatone/go-landing/internal/builder"
	"github.com/goliatone/go-landing/internal/catalog"
	"github.com/goliatone/go-landing/internal/commands"
	"github.com/goliatone/go-landing/internal/domains"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/logging/gologger"
	"github.com/goliatone/go-landing/internal/orders"
	"github.com/goliatone/go-landing/internal/pages"
	"github.com/goliatone/go-landing/internal/render"
	"github.com/goliatone/go-landing/internal/runtimeconfig"
	"github.com/goliatone/go-landing/internal/sections"
	"github.com/goliatone/go-landing/internal/storage"
	"github.com/goliatone/go-landing/pkg/interfaces"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

// Container wires repositories, services, the renderer and command
// handlers from a runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	db             *bun.DB
	ownsDB         bool
	cacheService   repocache.CacheService
	keySerializer  repocache.KeySerializer
	loggerProvider interfaces.LoggerProvider

	catalogRepo catalog.Repository
	pageRepo    pages.Repository
	sectionRepo sections.Repository
	orderRepo   orders.Repository
	domainRepo  domains.Repository

	catalogSvc catalog.Service
	pageSvc    pages.Service
	sectionSvc sections.Service
	orderSvc   orders.Service
	domainSvc  domains.Service

	renderer *render.Renderer
	urls     *pages.URLResolver
	handlers Handlers
}

// Handlers groups the admin command handlers.
type Handlers struct {
	DuplicatePage     *pagescmd.DuplicatePageHandler
	SetPageStatus     *pagescmd.SetPageStatusHandler
	ToggleSection     *sectionscmd.ToggleSectionHandler
	ReorderSections   *sectionscmd.ReorderSectionsHandler
	UpdateOrderStatus *orderscmd.UpdateOrderStatusHandler
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB supplies an open database. The container will not close it.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.db = db
	}
}

// WithCache overrides the cache service used around bun repositories.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithPageService overrides the page service binding.
func WithPageService(svc pages.Service) Option {
	return func(c *Container) {
		c.pageSvc = svc
	}
}

// NewContainer validates cfg and builds every dependency.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	steps := []func() error{
		c.configureLogging,
		c.configureStorage,
		c.configureCache,
		c.configureRepositories,
		c.configureServices,
		c.configureRenderer,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			_ = c.Close()
			return nil, err
		}
	}
	c.configureCommands()
	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}
	if c.Config.Logging.Provider != "gologger" {
		return nil
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Service:   "go-landing",
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureStorage() error {
	if c.db != nil || c.Config.StorageProvider() == runtimeconfig.StorageMemory {
		return nil
	}
	db, err := storage.Open(c.Config.StorageProvider(), c.Config.Storage.DSN)
	if err != nil {
		return err
	}
	c.db = db
	c.ownsDB = true
	return nil
}

func (c *Container) configureCache() error {
	if c.db == nil || !c.Config.Cache.Enabled || c.cacheService != nil {
		return nil
	}
	cfg := repocache.DefaultConfig()
	cfg.TTL = c.Config.Cache.TTL
	service, err := repocache.NewCacheService(cfg)
	if err != nil {
		return fmt.Errorf("di: cache service: %w", err)
	}
	c.cacheService = service
	if c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
	return nil
}

func (c *Container) configureRepositories() error {
	switch {
	case c.db == nil:
		c.catalogRepo = catalog.NewMemoryRepository()
		c.pageRepo = pages.NewMemoryRepository()
		c.sectionRepo = sections.NewMemoryRepository()
		c.orderRepo = orders.NewMemoryRepository()
		c.domainRepo = domains.NewMemoryRepository()
	case c.cacheService != nil:
		if c.keySerializer == nil {
			c.keySerializer = repocache.NewDefaultKeySerializer()
		}
		c.catalogRepo = catalog.NewBunRepositoryWithCache(c.db, c.cacheService, c.keySerializer)
		c.pageRepo = pages.NewBunRepositoryWithCache(c.db, c.cacheService, c.keySerializer)
		c.sectionRepo = sections.NewBunRepositoryWithCache(c.db, c.cacheService, c.keySerializer)
		c.orderRepo = orders.NewBunRepositoryWithCache(c.db, c.cacheService, c.keySerializer)
		c.domainRepo = domains.NewBunRepositoryWithCache(c.db, c.cacheService, c.keySerializer)
	default:
		c.catalogRepo = catalog.NewBunRepository(c.db)
		c.pageRepo = pages.NewBunRepository(c.db)
		c.sectionRepo = sections.NewBunRepository(c.db)
		c.orderRepo = orders.NewBunRepository(c.db)
		c.domainRepo = domains.NewBunRepository(c.db)
	}
	return nil
}

func (c *Container) configureServices() error {
	provider := c.loggerProvider
	c.catalogSvc = catalog.NewService(c.catalogRepo, catalog.WithLogger(logging.CatalogLogger(provider)))
	if c.pageSvc == nil {
		c.pageSvc = pages.NewService(c.pageRepo, pages.WithLogger(logging.PagesLogger(provider)))
	}
	c.sectionSvc = sections.NewService(c.sectionRepo,
		sections.WithPageLookup(c.pageSvc),
		sections.WithLogger(logging.SectionsLogger(provider)),
	)
	c.orderSvc = orders.NewService(c.orderRepo, orders.WithLogger(logging.OrdersLogger(provider)))
	c.domainSvc = domains.NewService(c.domainRepo,
		domains.WithPageLookup(c.pageSvc),
		domains.WithLogger(logging.DomainsLogger(provider)),
	)
	c.urls = pages.NewURLResolver(c.Config.Render.PublicBaseURL)
	return nil
}

func (c *Container) configureRenderer() error {
	renderer, err := render.New(
		render.WithOrderEndpoint(c.Config.Render.OrderEndpoint),
		render.WithPretty(c.Config.Render.Pretty),
		render.WithLogger(logging.RenderLogger(c.loggerProvider)),
	)
	if err != nil {
		return err
	}
	c.renderer = renderer
	return nil
}

func (c *Container) configureCommands() {
	loggerFor := func(module string) interfaces.Logger {
		return commands.CommandLogger(c.loggerProvider, module)
	}
	c.handlers = Handlers{
		DuplicatePage:     pagescmd.NewDuplicatePageHandler(c.pageSvc, loggerFor("pages")),
		SetPageStatus:     pagescmd.NewSetPageStatusHandler(c.pageSvc, loggerFor("pages")),
		ToggleSection:     sectionscmd.NewToggleSectionHandler(c.sectionSvc, loggerFor("sections")),
		ReorderSections:   sectionscmd.NewReorderSectionsHandler(c.sectionSvc, loggerFor("sections")),
		UpdateOrderStatus: orderscmd.NewUpdateOrderStatusHandler(c.orderSvc, loggerFor("orders")),
	}
}

// Bootstrap creates tables for SQL storage and seeds the section catalog
// from the built-in types and the configured directory.
func (c *Container) Bootstrap(ctx context.Context) error {
	if c.db != nil {
		if err := storage.CreateTables(ctx, c.db); err != nil {
			return err
		}
	}
	var seed []catalog.Descriptor
	if c.Config.Catalog.Seed {
		seed = append(seed, catalog.Defaults()...)
	}
	if dir := c.Config.Catalog.Directory; dir != "" {
		loaded, err := catalog.LoadDir(dir)
		if err != nil {
			return err
		}
		seed = append(seed, loaded...)
	}
	if len(seed) == 0 {
		return nil
	}
	_, err := c.catalogSvc.Seed(ctx, seed)
	return err
}

// NewSession opens a builder session over the current catalog snapshot.
func (c *Container) NewSession(ctx context.Context, opts ...builder.SessionOption) (*builder.Session, error) {
	snapshot, err := c.catalogSvc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	base := []builder.SessionOption{builder.WithSessionLogger(logging.BuilderLogger(c.loggerProvider))}
	return builder.NewSession(pages.NewGatewayAdapter(c.pageSvc), snapshot, append(base, opts...)...), nil
}

// Close releases the database when the container opened it.
func (c *Container) Close() error {
	if c.db != nil && c.ownsDB {
		c.ownsDB = false
		return c.db.Close()
	}
	return nil
}

func (c *Container) DB() *bun.DB                               { return c.db }
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }
func (c *Container) CatalogService() catalog.Service           { return c.catalogSvc }
func (c *Container) PageService() pages.Service                { return c.pageSvc }
func (c *Container) SectionService() sections.Service          { return c.sectionSvc }
func (c *Container) OrderService() orders.Service              { return c.orderSvc }
func (c *Container) DomainService() domains.Service            { return c.domainSvc }
func (c *Container) Renderer() *render.Renderer                { return c.renderer }
func (c *Container) URLResolver() *pages.URLResolver           { return c.urls }
func (c *Container) Handlers() Handlers                        { return c.handlers }
