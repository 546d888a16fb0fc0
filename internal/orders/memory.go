package orders

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryRepository constructs an in-memory order repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:     make(map[uuid.UUID]*Order),
		byNumber: make(map[string]uuid.UUID),
	}
}

type memoryRepository struct {
	mu       sync.RWMutex
	byID     map[uuid.UUID]*Order
	byNumber map[string]uuid.UUID
}

func (m *memoryRepository) Create(_ context.Context, order *Order) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.byNumber[order.OrderNumber]; taken {
		return nil, ErrOrderNumberTaken
	}
	cloned := cloneOrder(order)
	m.byID[cloned.ID] = cloned
	m.byNumber[cloned.OrderNumber] = cloned.ID
	return cloneOrder(cloned), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "order", Key: id.String()}
	}
	return cloneOrder(record), nil
}

func (m *memoryRepository) GetByNumber(_ context.Context, number string) (*Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byNumber[number]
	if !ok {
		return nil, &NotFoundError{Resource: "order", Key: number}
	}
	return cloneOrder(m.byID[id]), nil
}

func (m *memoryRepository) List(_ context.Context, opts ListOptions) ([]*Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Order, 0, len(m.byID))
	for _, record := range m.byID {
		if matches(record, opts) {
			out = append(out, cloneOrder(record))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].OrderNumber > out[j].OrderNumber
	})
	return out, nil
}

func (m *memoryRepository) Update(_ context.Context, order *Order) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[order.ID]; !ok {
		return nil, &NotFoundError{Resource: "order", Key: order.ID.String()}
	}
	cloned := cloneOrder(order)
	m.byID[cloned.ID] = cloned
	return cloneOrder(cloned), nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.byID[id]
	if !ok {
		return &NotFoundError{Resource: "order", Key: id.String()}
	}
	delete(m.byNumber, record.OrderNumber)
	delete(m.byID, id)
	return nil
}
