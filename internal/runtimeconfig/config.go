package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

var (
	ErrStorageProviderUnknown = errors.New("landing config: storage provider must be memory, sqlite or postgres")
	ErrStorageDSNRequired     = errors.New("landing config: storage dsn is required for sql providers")
	ErrCacheTTLInvalid        = errors.New("landing config: cache ttl must be positive when cache is enabled")
	ErrCacheRequiresSQL       = errors.New("landing config: cache requires a sql storage provider")
	ErrLoggingProviderUnknown = errors.New("landing config: logging provider is invalid")
	ErrLoggingLevelInvalid    = errors.New("landing config: logging level is invalid")
	ErrLoggingFormatInvalid   = errors.New("landing config: logging format is invalid")
	ErrCatalogSourceRequired  = errors.New("landing config: catalog needs a directory or seeded defaults")
	ErrOrderEndpointInvalid   = errors.New("landing config: render order endpoint must be a path or absolute url")
	ErrPublicBaseURLInvalid   = errors.New("landing config: render public base url must be absolute")
	ErrHTTPAddrRequired       = errors.New("landing config: http address is required")
	ErrAPIBaseInvalid         = errors.New("landing config: http api base must start with /")
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Config aggregates the runtime settings of the landing page builder.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Render  RenderConfig  `mapstructure:"render"`
	HTTP    HTTPConfig    `mapstructure:"http"`
}

// StorageConfig selects the repository backend.
type StorageConfig struct {
	Provider string `mapstructure:"provider"`
	DSN      string `mapstructure:"dsn"`
}

// CacheConfig toggles go-repository-cache around the bun repositories.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type LoggingConfig struct {
	Provider  string   `mapstructure:"provider"`
	Level     string   `mapstructure:"level"`
	Format    string   `mapstructure:"format"`
	AddSource bool     `mapstructure:"add_source"`
	Focus     []string `mapstructure:"focus"`
}

// CatalogConfig controls where section types come from. Directory holds
// markdown descriptors; Seed loads the built-in types.
type CatalogConfig struct {
	Directory string `mapstructure:"directory"`
	Seed      bool   `mapstructure:"seed"`
}

type RenderConfig struct {
	Pretty        bool   `mapstructure:"pretty"`
	OrderEndpoint string `mapstructure:"order_endpoint"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type HTTPConfig struct {
	Addr    string `mapstructure:"addr"`
	APIBase string `mapstructure:"api_base"`
}

func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Provider: StorageMemory,
		},
		Cache: CacheConfig{
			Enabled: false,
			TTL:     time.Minute,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
		Catalog: CatalogConfig{
			Seed: true,
		},
		Render: RenderConfig{
			OrderEndpoint: "/api/order",
		},
		HTTP: HTTPConfig{
			Addr:    ":8080",
			APIBase: "/api",
		},
	}
}

// Validate performs consistency checks across sections.
func (cfg Config) Validate() error {
	provider := normalize(cfg.Storage.Provider)
	switch provider {
	case StorageMemory:
	case StorageSQLite, StoragePostgres:
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return fmt.Errorf("%w: %s", ErrStorageDSNRequired, provider)
		}
	default:
		return fmt.Errorf("%w: %q", ErrStorageProviderUnknown, cfg.Storage.Provider)
	}
	if cfg.Cache.Enabled {
		if provider == StorageMemory {
			return ErrCacheRequiresSQL
		}
		if cfg.Cache.TTL <= 0 {
			return ErrCacheTTLInvalid
		}
	}

	switch logging := normalize(cfg.Logging.Provider); logging {
	case "", "noop":
	case "gologger":
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	default:
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, logging)
	}

	if !cfg.Catalog.Seed && strings.TrimSpace(cfg.Catalog.Directory) == "" {
		return ErrCatalogSourceRequired
	}

	if endpoint := strings.TrimSpace(cfg.Render.OrderEndpoint); endpoint != "" && !strings.HasPrefix(endpoint, "/") && !isAbsoluteURL(endpoint) {
		return fmt.Errorf("%w: %s", ErrOrderEndpointInvalid, endpoint)
	}
	if base := strings.TrimSpace(cfg.Render.PublicBaseURL); base != "" && !isAbsoluteURL(base) {
		return fmt.Errorf("%w: %s", ErrPublicBaseURLInvalid, base)
	}

	if strings.TrimSpace(cfg.HTTP.Addr) == "" {
		return ErrHTTPAddrRequired
	}
	if base := strings.TrimSpace(cfg.HTTP.APIBase); !strings.HasPrefix(base, "/") {
		return fmt.Errorf("%w: %q", ErrAPIBaseInvalid, cfg.HTTP.APIBase)
	}
	return nil
}

// StorageProvider returns the normalised storage provider name.
func (cfg Config) StorageProvider() string {
	return normalize(cfg.Storage.Provider)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isAbsoluteURL(raw string) bool {
	parsed, err := url.Parse(raw)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
