package logging

import (
	"context"

	"github.com/goliatone/go-landing/pkg/interfaces"
)

const (
	rootModule     = "landing"
	catalogModule  = "landing.catalog"
	pagesModule    = "landing.pages"
	builderModule  = "landing.builder"
	renderModule   = "landing.render"
	sectionsModule = "landing.sections"
	ordersModule   = "landing.orders"
	domainsModule  = "landing.domains"
	httpModule     = "landing.http"
)

// ModuleLogger returns a logger scoped to module. A no-op logger is returned
// when provider is nil or yields nothing, so callers never need nil checks.
// Every entry carries a "module" field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

func CatalogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, catalogModule)
}

func PagesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pagesModule)
}

func BuilderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, builderModule)
}

func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

func SectionsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, sectionsModule)
}

func OrdersLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, ordersModule)
}

func DomainsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, domainsModule)
}

func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
