package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-landing/internal/util"
	"github.com/goliatone/go-slug"
)

// Catalog is an immutable snapshot of section types ordered for the sidebar.
// Lookups return copies so callers can never mutate the snapshot.
type Catalog struct {
	entries []Descriptor
	index   map[string]int
}

// New builds a snapshot. Entries are ordered by SortOrder, keeping the
// given order for ties.
func New(descriptors ...Descriptor) (*Catalog, error) {
	entries := make([]Descriptor, 0, len(descriptors))
	index := make(map[string]int, len(descriptors))
	for _, desc := range descriptors {
		key := NormalizeTypeKey(desc.Type)
		if key == "" {
			return nil, ErrTypeRequired
		}
		if _, exists := index[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrTypeExists, key)
		}
		entry := *cloneDescriptor(&desc)
		entry.Type = key
		index[key] = len(entries)
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SortOrder < entries[j].SortOrder
	})
	for i, entry := range entries {
		index[entry.Type] = i
	}
	return &Catalog{entries: entries, index: index}, nil
}

// MustNew is New for static seed data.
func MustNew(descriptors ...Descriptor) *Catalog {
	c, err := New(descriptors...)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the catalog built from Defaults.
func Default() *Catalog {
	return MustNew(Defaults()...)
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// List returns every entry in sidebar order.
func (c *Catalog) List() []Descriptor {
	if c == nil {
		return nil
	}
	out := make([]Descriptor, len(c.entries))
	for i := range c.entries {
		out[i] = *cloneDescriptor(&c.entries[i])
	}
	return out
}

// Get resolves a type key. Unknown keys report false.
func (c *Catalog) Get(typeKey string) (Descriptor, bool) {
	if c == nil {
		return Descriptor{}, false
	}
	i, ok := c.index[NormalizeTypeKey(typeKey)]
	if !ok {
		return Descriptor{}, false
	}
	return *cloneDescriptor(&c.entries[i]), true
}

// At resolves the entry shown at a sidebar position.
func (c *Catalog) At(position int) (Descriptor, bool) {
	if c == nil || position < 0 || position >= len(c.entries) {
		return Descriptor{}, false
	}
	return *cloneDescriptor(&c.entries[position]), true
}

// NormalizeTypeKey lowercases a type key with go-slug while keeping the
// underscore separators used by section type keys.
func NormalizeTypeKey(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	normalized, err := slug.Normalize(trimmed)
	if err != nil || normalized == "" {
		normalized = strings.ToLower(trimmed)
	}
	return strings.ReplaceAll(normalized, "-", "_")
}

func cloneData(data map[string]any) map[string]any {
	return util.DeepCloneMap(data)
}
