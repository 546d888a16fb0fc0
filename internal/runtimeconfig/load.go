package runtimeconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. LANDING_STORAGE_DSN.
const EnvPrefix = "LANDING"

// Load reads path (YAML, JSON or TOML, chosen by extension) on top of
// DefaultConfig, applies LANDING_* environment overrides and validates the
// result. An empty path loads defaults and environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("landing config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("landing config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it during
// Unmarshal.
func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("storage.provider", cfg.Storage.Provider)
	v.SetDefault("storage.dsn", cfg.Storage.DSN)
	v.SetDefault("cache.enabled", cfg.Cache.Enabled)
	v.SetDefault("cache.ttl", cfg.Cache.TTL)
	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.add_source", cfg.Logging.AddSource)
	v.SetDefault("logging.focus", cfg.Logging.Focus)
	v.SetDefault("catalog.directory", cfg.Catalog.Directory)
	v.SetDefault("catalog.seed", cfg.Catalog.Seed)
	v.SetDefault("render.pretty", cfg.Render.Pretty)
	v.SetDefault("render.order_endpoint", cfg.Render.OrderEndpoint)
	v.SetDefault("render.public_base_url", cfg.Render.PublicBaseURL)
	v.SetDefault("http.addr", cfg.HTTP.Addr)
	v.SetDefault("http.api_base", cfg.HTTP.APIBase)
}
