package util

import (
	"fmt"
	"strings"
)

// FirstNonEmpty returns the first non-blank string in values.
func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// CloneAnyMap returns a shallow copy of supported raw map types.
// Unsupported inputs yield an empty map.
func CloneAnyMap(raw any) map[string]any {
	result := make(map[string]any)
	switch values := raw.(type) {
	case map[string]any:
		for k, v := range values {
			result[k] = v
		}
	case map[string]string:
		for k, v := range values {
			result[k] = v
		}
	}
	return result
}

// DeepCloneMap copies a JSON-like payload so the result shares no maps or
// slices with input. A nil input yields nil.
func DeepCloneMap(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = DeepCloneValue(value)
	}
	return out
}

// DeepCloneValue copies maps and slices recursively; scalars are returned as is.
func DeepCloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return DeepCloneMap(typed)
	case map[any]any:
		return DeepCloneMap(NormalizeMap(typed))
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = DeepCloneValue(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = DeepCloneMap(item)
		}
		return out
	case []string:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = item
		}
		return out
	default:
		return value
	}
}

// MergeShallow copies the top-level keys of partial into a copy of base.
// Values taken from partial are deep copied; nested objects are replaced, not merged.
func MergeShallow(base, partial map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(partial))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range partial {
		out[key] = DeepCloneValue(value)
	}
	return out
}

// NormalizeMap converts YAML style map[any]any values into map[string]any.
func NormalizeMap(input map[any]any) map[string]any {
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[fmt.Sprint(key)] = normalizeValue(value)
	}
	return out
}

// NormalizeValue walks a decoded YAML value and rewrites nested maps with string keys.
func NormalizeValue(value any) any {
	return normalizeValue(value)
}

func normalizeValue(value any) any {
	switch typed := value.(type) {
	case map[any]any:
		return NormalizeMap(typed)
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return value
	}
}
