package landing

import "github.com/goliatone/go-landing/internal/runtimeconfig"

// Config is the runtime configuration of a Module.
type Config = runtimeconfig.Config

// DefaultConfig returns an in-memory configuration with the built-in catalog seeded.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads path (optional) and LANDING_* environment overrides on
// top of the defaults.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}
