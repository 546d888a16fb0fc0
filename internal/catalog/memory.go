package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryRepository constructs an in-memory descriptor repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:   make(map[uuid.UUID]*Descriptor),
		byType: make(map[string]uuid.UUID),
	}
}

type memoryRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*Descriptor
	byType map[string]uuid.UUID
}

func (m *memoryRepository) Create(_ context.Context, descriptor *Descriptor) (*Descriptor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byType[descriptor.Type]; exists {
		return nil, ErrTypeExists
	}
	cloned := cloneDescriptor(descriptor)
	m.byID[cloned.ID] = cloned
	m.byType[cloned.Type] = cloned.ID
	return cloneDescriptor(cloned), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Descriptor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "section_type", Key: id.String()}
	}
	return cloneDescriptor(record), nil
}

func (m *memoryRepository) GetByType(_ context.Context, typeKey string) (*Descriptor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byType[typeKey]
	if !ok {
		return nil, &NotFoundError{Resource: "section_type", Key: typeKey}
	}
	return cloneDescriptor(m.byID[id]), nil
}

func (m *memoryRepository) List(_ context.Context) ([]*Descriptor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Descriptor, 0, len(m.byID))
	for _, record := range m.byID {
		out = append(out, cloneDescriptor(record))
	}
	sortDescriptors(out)
	return out, nil
}

func (m *memoryRepository) Update(_ context.Context, descriptor *Descriptor) (*Descriptor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.byID[descriptor.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "section_type", Key: descriptor.ID.String()}
	}
	if existing.Type != descriptor.Type {
		if _, taken := m.byType[descriptor.Type]; taken {
			return nil, ErrTypeExists
		}
		delete(m.byType, existing.Type)
	}
	cloned := cloneDescriptor(descriptor)
	m.byID[cloned.ID] = cloned
	m.byType[cloned.Type] = cloned.ID
	return cloneDescriptor(cloned), nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.byID[id]
	if !ok {
		return &NotFoundError{Resource: "section_type", Key: id.String()}
	}
	delete(m.byType, record.Type)
	delete(m.byID, id)
	return nil
}

func sortDescriptors(records []*Descriptor) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].SortOrder != records[j].SortOrder {
			return records[i].SortOrder < records[j].SortOrder
		}
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].Type < records[j].Type
	})
}
