package pages

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryRepository constructs an in-memory page repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:   make(map[uuid.UUID]*Page),
		bySlug: make(map[string]uuid.UUID),
	}
}

type memoryRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*Page
	bySlug map[string]uuid.UUID
}

func (m *memoryRepository) Create(_ context.Context, page *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.bySlug[page.Slug]; taken {
		return nil, ErrSlugExists
	}
	cloned := clonePage(page)
	m.byID[cloned.ID] = cloned
	m.bySlug[cloned.Slug] = cloned.ID
	return clonePage(cloned), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "page", Key: id.String()}
	}
	return clonePage(record), nil
}

func (m *memoryRepository) GetBySlug(_ context.Context, slug string) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.bySlug[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "page", Key: slug}
	}
	return clonePage(m.byID[id]), nil
}

func (m *memoryRepository) List(_ context.Context, opts ListOptions) ([]*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(opts.Search))
	out := make([]*Page, 0, len(m.byID))
	for _, record := range m.byID {
		if opts.Status != "" && record.Status != opts.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(record.Title), search) {
			continue
		}
		out = append(out, clonePage(record))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}

func (m *memoryRepository) Update(_ context.Context, page *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.byID[page.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "page", Key: page.ID.String()}
	}
	if existing.Slug != page.Slug {
		if owner, taken := m.bySlug[page.Slug]; taken && owner != page.ID {
			return nil, ErrSlugExists
		}
		delete(m.bySlug, existing.Slug)
	}
	cloned := clonePage(page)
	m.byID[cloned.ID] = cloned
	m.bySlug[cloned.Slug] = cloned.ID
	return clonePage(cloned), nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.byID[id]
	if !ok {
		return &NotFoundError{Resource: "page", Key: id.String()}
	}
	delete(m.bySlug, record.Slug)
	delete(m.byID, id)
	return nil
}
