package logging

import (
	"context"
	"maps"

	"github.com/goliatone/go-landing/pkg/interfaces"
)

type contextKey string

const contextFieldsKey contextKey = "landing.logging.fields"

// ContextWithFields returns a context carrying structured logging fields.
// Fields already on ctx are kept; new keys win on conflict.
func ContextWithFields(ctx context.Context, fields map[string]any) context.Context {
	if ctx == nil || len(fields) == 0 {
		return ctx
	}

	existing := ContextFields(ctx)
	merged := make(map[string]any, len(existing)+len(fields))
	maps.Copy(merged, existing)
	maps.Copy(merged, fields)
	return context.WithValue(ctx, contextFieldsKey, merged)
}

// ContextFields returns a copy of the fields stored on ctx.
func ContextFields(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	fields, ok := ctx.Value(contextFieldsKey).(map[string]any)
	if !ok || len(fields) == 0 {
		return nil
	}
	copied := make(map[string]any, len(fields))
	maps.Copy(copied, fields)
	return copied
}

// FromContext enriches logger with any fields stored on ctx.
func FromContext(ctx context.Context, logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return NoOp()
	}
	return WithFields(logger, ContextFields(ctx))
}
