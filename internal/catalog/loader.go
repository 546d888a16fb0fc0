package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/goliatone/go-landing/internal/identity"
	"github.com/goliatone/go-landing/internal/util"
)

type fileMeta struct {
	Type        string         `yaml:"type"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Icon        string         `yaml:"icon"`
	Thumbnail   string         `yaml:"thumbnail"`
	SortOrder   int            `yaml:"sort_order"`
	Active      *bool          `yaml:"active"`
	DefaultData map[string]any `yaml:"default_data"`
	Schema      map[string]any `yaml:"schema"`
}

// LoadDir reads section types authored as markdown files with front matter.
// The markdown body becomes the description when none is set in front matter.
// Files are read in name order.
func LoadDir(dir string) ([]Descriptor, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: read dir %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	descriptors := make([]Descriptor, 0, len(names))
	for _, name := range names {
		desc, err := loadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, desc)
	}
	return descriptors, nil
}

func loadFile(path string) (Descriptor, error) {
	file, err := os.Open(path)
	if err != nil {
		return Descriptor{}, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer file.Close()

	var meta fileMeta
	body, err := frontmatter.Parse(file, &meta)
	if err != nil {
		return Descriptor{}, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	key := NormalizeTypeKey(meta.Type)
	if key == "" {
		key = NormalizeTypeKey(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}
	if key == "" {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrTypeRequired, path)
	}

	active := true
	if meta.Active != nil {
		active = *meta.Active
	}

	desc := Descriptor{
		ID:          identity.SectionTypeUUID(key),
		Type:        key,
		Name:        util.FirstNonEmpty(meta.Name, key),
		Description: util.FirstNonEmpty(meta.Description, strings.TrimSpace(string(body))),
		Icon:        meta.Icon,
		Thumbnail:   meta.Thumbnail,
		DefaultData: normalizeData(meta.DefaultData),
		Schema:      normalizeData(meta.Schema),
		SortOrder:   meta.SortOrder,
		IsActive:    active,
	}
	if desc.DefaultData == nil {
		desc.DefaultData = map[string]any{}
	}
	if err := ValidateDefaults(desc.Schema, desc.DefaultData); err != nil {
		return Descriptor{}, fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}

func normalizeData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	normalized, _ := util.NormalizeValue(data).(map[string]any)
	return normalized
}
