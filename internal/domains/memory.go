package domains

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryRepository constructs an in-memory domain repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:   make(map[uuid.UUID]*Domain),
		byHost: make(map[string]uuid.UUID),
	}
}

type memoryRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*Domain
	byHost map[string]uuid.UUID
}

func (m *memoryRepository) Create(_ context.Context, domain *Domain) (*Domain, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.byHost[domain.Domain]; taken {
		return nil, ErrDomainExists
	}
	cloned := cloneDomain(domain)
	m.byID[cloned.ID] = cloned
	m.byHost[cloned.Domain] = cloned.ID
	return cloneDomain(cloned), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Domain, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "domain", Key: id.String()}
	}
	return cloneDomain(record), nil
}

func (m *memoryRepository) GetByDomain(_ context.Context, host string) (*Domain, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byHost[host]
	if !ok {
		return nil, &NotFoundError{Resource: "domain", Key: host}
	}
	return cloneDomain(m.byID[id]), nil
}

func (m *memoryRepository) List(_ context.Context, opts ListOptions) ([]*Domain, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Domain, 0, len(m.byID))
	for _, record := range m.byID {
		if matches(record, opts) {
			out = append(out, cloneDomain(record))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Domain < out[j].Domain
	})
	return out, nil
}

func (m *memoryRepository) Update(_ context.Context, domain *Domain) (*Domain, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.byID[domain.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "domain", Key: domain.ID.String()}
	}
	if existing.Domain != domain.Domain {
		if owner, taken := m.byHost[domain.Domain]; taken && owner != domain.ID {
			return nil, ErrDomainExists
		}
		delete(m.byHost, existing.Domain)
	}
	cloned := cloneDomain(domain)
	m.byID[cloned.ID] = cloned
	m.byHost[cloned.Domain] = cloned.ID
	return cloneDomain(cloned), nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.byID[id]
	if !ok {
		return &NotFoundError{Resource: "domain", Key: id.String()}
	}
	delete(m.byHost, record.Domain)
	delete(m.byID, id)
	return nil
}
