package pages

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-slug"
)

const maxSlugAttempts = 10000

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveSlug turns a title into a URL-safe slug: lowercase, runs of
// non-alphanumeric characters collapsed to "-", no leading or trailing "-".
func DeriveSlug(title string) string {
	candidate := strings.TrimSpace(title)
	if normalized, err := slug.Normalize(candidate); err == nil && normalized != "" {
		candidate = normalized
	}
	candidate = nonAlphanumeric.ReplaceAllString(strings.ToLower(candidate), "-")
	return strings.Trim(candidate, "-")
}

// SlugTaken reports whether slug is used by a page other than the one
// being saved.
type SlugTaken func(ctx context.Context, slug string) (bool, error)

// EnsureUnique returns candidate, or candidate-2, candidate-3 and so on,
// whichever is first free according to taken.
func EnsureUnique(ctx context.Context, candidate string, taken SlugTaken) (string, error) {
	if candidate == "" {
		return "", ErrSlugRequired
	}
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		next := candidate
		if attempt > 1 {
			next = fmt.Sprintf("%s-%d", candidate, attempt)
		}
		used, err := taken(ctx, next)
		if err != nil {
			return "", err
		}
		if !used {
			return next, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrSlugExhausted, candidate)
}
