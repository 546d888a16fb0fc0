package sections

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryRepository constructs an in-memory section repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:        make(map[uuid.UUID]*Section),
		bySectionID: make(map[string]uuid.UUID),
	}
}

type memoryRepository struct {
	mu          sync.RWMutex
	byID        map[uuid.UUID]*Section
	bySectionID map[string]uuid.UUID
}

func (m *memoryRepository) Create(_ context.Context, section *Section) (*Section, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.bySectionID[section.SectionID]; taken {
		return nil, ErrSectionIDExists
	}
	cloned := cloneSection(section)
	m.byID[cloned.ID] = cloned
	m.bySectionID[cloned.SectionID] = cloned.ID
	return cloneSection(cloned), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Section, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "section", Key: id.String()}
	}
	return cloneSection(record), nil
}

func (m *memoryRepository) GetBySectionID(_ context.Context, sectionID string) (*Section, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.bySectionID[sectionID]
	if !ok {
		return nil, &NotFoundError{Resource: "section", Key: sectionID}
	}
	return cloneSection(m.byID[id]), nil
}

func (m *memoryRepository) List(_ context.Context, opts ListOptions) ([]*Section, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Section, 0, len(m.byID))
	for _, record := range m.byID {
		if matches(record, opts) {
			out = append(out, cloneSection(record))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].SectionID < out[j].SectionID
	})
	return out, nil
}

func (m *memoryRepository) Update(_ context.Context, section *Section) (*Section, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.byID[section.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "section", Key: section.ID.String()}
	}
	if existing.SectionID != section.SectionID {
		if owner, taken := m.bySectionID[section.SectionID]; taken && owner != section.ID {
			return nil, ErrSectionIDExists
		}
		delete(m.bySectionID, existing.SectionID)
	}
	cloned := cloneSection(section)
	m.byID[cloned.ID] = cloned
	m.bySectionID[cloned.SectionID] = cloned.ID
	return cloneSection(cloned), nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.byID[id]
	if !ok {
		return &NotFoundError{Resource: "section", Key: id.String()}
	}
	delete(m.bySectionID, record.SectionID)
	delete(m.byID, id)
	return nil
}
