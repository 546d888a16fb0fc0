package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-landing/internal/identity"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/google/uuid"
)

// Service manages section types and produces read-only catalog snapshots.
type Service interface {
	Create(ctx context.Context, req CreateTypeRequest) (*Descriptor, error)
	Get(ctx context.Context, id uuid.UUID) (*Descriptor, error)
	GetByType(ctx context.Context, typeKey string) (*Descriptor, error)
	List(ctx context.Context, opts ListOptions) ([]*Descriptor, error)
	Update(ctx context.Context, req UpdateTypeRequest) (*Descriptor, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Seed(ctx context.Context, descriptors []Descriptor) (int, error)
	Snapshot(ctx context.Context) (*Catalog, error)
}

type CreateTypeRequest struct {
	Type        string         `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Thumbnail   string         `json:"thumbnail"`
	DefaultData map[string]any `json:"default_data"`
	Schema      map[string]any `json:"schema,omitempty"`
	SortOrder   *int           `json:"sort_order,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
}

// UpdateTypeRequest applies only the non-nil fields.
type UpdateTypeRequest struct {
	ID          uuid.UUID      `json:"-"`
	Type        *string        `json:"type,omitempty"`
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Icon        *string        `json:"icon,omitempty"`
	Thumbnail   *string        `json:"thumbnail,omitempty"`
	DefaultData map[string]any `json:"default_data,omitempty"`
	Schema      map[string]any `json:"schema,omitempty"`
	SortOrder   *int           `json:"sort_order,omitempty"`
	IsActive    *bool          `json:"is_active,omitempty"`
}

type ListOptions struct {
	IncludeInactive bool
}

type IDGenerator func() uuid.UUID

type ServiceOption func(*service)

func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	repo   Repository
	now    func() time.Time
	id     IDGenerator
	logger interfaces.Logger
}

func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, req CreateTypeRequest) (*Descriptor, error) {
	key := NormalizeTypeKey(req.Type)
	if key == "" {
		return nil, ErrTypeRequired
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if err := s.ensureTypeAvailable(ctx, key, uuid.Nil); err != nil {
		return nil, err
	}

	data := cloneData(req.DefaultData)
	if data == nil {
		data = map[string]any{}
	}
	if err := ValidateDefaults(req.Schema, data); err != nil {
		return nil, err
	}

	sortOrder, err := s.nextSortOrder(ctx)
	if err != nil {
		return nil, err
	}
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := s.now()
	record := &Descriptor{
		ID:          s.id(),
		Type:        key,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Icon:        strings.TrimSpace(req.Icon),
		Thumbnail:   strings.TrimSpace(req.Thumbnail),
		DefaultData: data,
		Schema:      cloneData(req.Schema),
		SortOrder:   sortOrder,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("catalog.type.created", "type", created.Type, "id", created.ID)
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Descriptor, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByType(ctx context.Context, typeKey string) (*Descriptor, error) {
	key := NormalizeTypeKey(typeKey)
	if key == "" {
		return nil, ErrTypeRequired
	}
	return s.repo.GetByType(ctx, key)
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]*Descriptor, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortDescriptors(records)
	if opts.IncludeInactive {
		return records, nil
	}
	active := records[:0]
	for _, record := range records {
		if record.IsActive {
			active = append(active, record)
		}
	}
	return active, nil
}

func (s *service) Update(ctx context.Context, req UpdateTypeRequest) (*Descriptor, error) {
	if req.ID == uuid.Nil {
		return nil, ErrIDRequired
	}
	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		key := NormalizeTypeKey(*req.Type)
		if key == "" {
			return nil, ErrTypeRequired
		}
		if key != record.Type {
			if err := s.ensureTypeAvailable(ctx, key, record.ID); err != nil {
				return nil, err
			}
		}
		record.Type = key
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		record.Name = name
	}
	if req.Description != nil {
		record.Description = strings.TrimSpace(*req.Description)
	}
	if req.Icon != nil {
		record.Icon = strings.TrimSpace(*req.Icon)
	}
	if req.Thumbnail != nil {
		record.Thumbnail = strings.TrimSpace(*req.Thumbnail)
	}
	if req.DefaultData != nil {
		record.DefaultData = cloneData(req.DefaultData)
	}
	if req.Schema != nil {
		record.Schema = cloneData(req.Schema)
	}
	if req.SortOrder != nil {
		record.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		record.IsActive = *req.IsActive
	}
	if err := ValidateDefaults(record.Schema, record.DefaultData); err != nil {
		return nil, err
	}
	record.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("catalog.type.updated", "type", updated.Type, "id", updated.ID)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("catalog.type.deleted", "id", id)
	return nil
}

// Seed upserts descriptors by type key and reports how many were created.
// Running it again with the same input changes nothing but timestamps.
func (s *service) Seed(ctx context.Context, descriptors []Descriptor) (int, error) {
	created := 0
	for _, desc := range descriptors {
		key := NormalizeTypeKey(desc.Type)
		if key == "" {
			return created, ErrTypeRequired
		}
		data := cloneData(desc.DefaultData)
		if data == nil {
			data = map[string]any{}
		}
		if err := ValidateDefaults(desc.Schema, data); err != nil {
			return created, err
		}

		now := s.now()
		existing, err := s.repo.GetByType(ctx, key)
		switch {
		case err == nil:
			existing.Name = desc.Name
			existing.Description = desc.Description
			existing.Icon = desc.Icon
			existing.Thumbnail = desc.Thumbnail
			existing.DefaultData = data
			existing.Schema = cloneData(desc.Schema)
			existing.SortOrder = desc.SortOrder
			existing.IsActive = desc.IsActive
			existing.UpdatedAt = now
			if _, err := s.repo.Update(ctx, existing); err != nil {
				return created, err
			}
		case IsNotFound(err):
			id := desc.ID
			if id == uuid.Nil {
				id = identity.SectionTypeUUID(key)
			}
			record := &Descriptor{
				ID:          id,
				Type:        key,
				Name:        desc.Name,
				Description: desc.Description,
				Icon:        desc.Icon,
				Thumbnail:   desc.Thumbnail,
				DefaultData: data,
				Schema:      cloneData(desc.Schema),
				SortOrder:   desc.SortOrder,
				IsActive:    desc.IsActive,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if _, err := s.repo.Create(ctx, record); err != nil {
				return created, err
			}
			created++
		default:
			return created, err
		}
	}
	s.logger.Info("catalog.seeded", "count", len(descriptors), "created", created)
	return created, nil
}

// Snapshot returns the active section types as an immutable catalog.
func (s *service) Snapshot(ctx context.Context) (*Catalog, error) {
	records, err := s.List(ctx, ListOptions{})
	if err != nil {
		return nil, err
	}
	descriptors := make([]Descriptor, 0, len(records))
	for _, record := range records {
		descriptors = append(descriptors, *record)
	}
	return New(descriptors...)
}

func (s *service) ensureTypeAvailable(ctx context.Context, key string, self uuid.UUID) error {
	existing, err := s.repo.GetByType(ctx, key)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID == self {
		return nil
	}
	return ErrTypeExists
}

func (s *service) nextSortOrder(ctx context.Context) (int, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	highest := 0
	for _, record := range records {
		if record.SortOrder > highest {
			highest = record.SortOrder
		}
	}
	return highest + 1, nil
}
