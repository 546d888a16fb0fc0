package sections

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/pages"
	"github.com/goliatone/go-landing/internal/util"
	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/google/uuid"
)

const (
	maxTypeLength    = 100
	unknownPageTitle = "Unknown"
)

// Service manages section rows outside the builder canvas.
type Service interface {
	Create(ctx context.Context, req CreateSectionRequest) (*Section, error)
	Get(ctx context.Context, id uuid.UUID) (*Section, error)
	List(ctx context.Context, opts ListOptions) ([]*Section, error)
	Update(ctx context.Context, req UpdateSectionRequest) (*Section, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Duplicate(ctx context.Context, id uuid.UUID) (*Section, error)
	ToggleStatus(ctx context.Context, id uuid.UUID) (*Section, error)
	UpdateOrder(ctx context.Context, entries []OrderEntry) error
	Statistics(ctx context.Context) (*Statistics, error)
}

// PageLookup resolves the page a section belongs to.
type PageLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*pages.Page, error)
}

// CreateSectionRequest describes a new section row. SortOrder defaults to
// one past the page's highest; IsActive defaults to true.
type CreateSectionRequest struct {
	LandingPageID uuid.UUID      `json:"landing_page_id"`
	SectionID     string         `json:"section_id"`
	Type          string         `json:"type"`
	Data          map[string]any `json:"data"`
	SortOrder     *int           `json:"sort_order,omitempty"`
	IsActive      *bool          `json:"is_active,omitempty"`
}

// UpdateSectionRequest changes the non-nil fields of a row.
type UpdateSectionRequest struct {
	ID        uuid.UUID      `json:"-"`
	SectionID *string        `json:"section_id,omitempty"`
	Type      *string        `json:"type,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	SortOrder *int           `json:"sort_order,omitempty"`
	IsActive  *bool          `json:"is_active,omitempty"`
}

// OrderEntry assigns a sort order to one row.
type OrderEntry struct {
	ID        uuid.UUID `json:"id"`
	SortOrder int       `json:"sort_order"`
}

// Statistics summarises all section rows.
type Statistics struct {
	TotalSections    int            `json:"total_sections"`
	ActiveSections   int            `json:"active_sections"`
	InactiveSections int            `json:"inactive_sections"`
	SectionsByType   map[string]int `json:"sections_by_type"`
	SectionsByPage   []PageCount    `json:"sections_by_page"`
}

// PageCount is the number of sections attached to one page.
type PageCount struct {
	PageID       uuid.UUID `json:"page_id"`
	PageTitle    string    `json:"page_title"`
	SectionCount int       `json:"section_count"`
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

// WithPageLookup makes Create check that the page exists and lets
// Statistics report page titles.
func WithPageLookup(lookup PageLookup) ServiceOption {
	return func(s *service) {
		s.pages = lookup
	}
}

type service struct {
	repo   Repository
	pages  PageLookup
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

func (s *service) Create(ctx context.Context, req CreateSectionRequest) (*Section, error) {
	req.SectionID = strings.TrimSpace(req.SectionID)
	req.Type = strings.TrimSpace(req.Type)
	if err := validateCreate(req); err != nil {
		return nil, err
	}
	if err := s.ensurePage(ctx, req.LandingPageID); err != nil {
		return nil, err
	}
	if err := s.ensureSectionIDAvailable(ctx, req.SectionID, uuid.Nil); err != nil {
		return nil, err
	}

	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	} else {
		next, err := s.nextSortOrder(ctx, req.LandingPageID)
		if err != nil {
			return nil, err
		}
		sortOrder = next
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := s.now()
	record := &Section{
		ID:            s.id(),
		LandingPageID: req.LandingPageID,
		SectionID:     req.SectionID,
		Type:          req.Type,
		Data:          util.DeepCloneMap(req.Data),
		SortOrder:     sortOrder,
		IsActive:      active,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	logging.WithDocument(s.logger, created.LandingPageID.String(), created.SectionID).Info("sections.created", "type", created.Type, "sort_order", created.SortOrder)
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Section, error) {
	if id == uuid.Nil {
		return nil, ErrSectionRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]*Section, error) {
	opts.Type = strings.TrimSpace(opts.Type)
	return s.repo.List(ctx, opts)
}

func (s *service) Update(ctx context.Context, req UpdateSectionRequest) (*Section, error) {
	existing, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if err := validateUpdate(req); err != nil {
		return nil, err
	}

	if req.SectionID != nil {
		sectionID := strings.TrimSpace(*req.SectionID)
		if sectionID != existing.SectionID {
			if err := s.ensureSectionIDAvailable(ctx, sectionID, existing.ID); err != nil {
				return nil, err
			}
			existing.SectionID = sectionID
		}
	}
	if req.Type != nil {
		existing.Type = strings.TrimSpace(*req.Type)
	}
	if req.Data != nil {
		existing.Data = util.DeepCloneMap(req.Data)
	}
	if req.SortOrder != nil {
		existing.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	existing.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	logging.WithDocument(s.logger, updated.LandingPageID.String(), updated.SectionID).Info("sections.updated")
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrSectionRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("sections.deleted", "id", id.String())
	return nil
}

// Duplicate copies a row to the end of its page. The copy's section_id is
// "<section_id>-copy-<unix seconds>", suffixed -2, -3 and so on when a copy
// made in the same second already holds it.
func (s *service) Duplicate(ctx context.Context, id uuid.UUID) (*Section, error) {
	source, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := s.nextSortOrder(ctx, source.LandingPageID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record := cloneSection(source)
	record.ID = s.id()
	record.SectionID, err = pages.EnsureUnique(ctx, fmt.Sprintf("%s-copy-%d", source.SectionID, now.Unix()), s.sectionIDTaken)
	if err != nil {
		return nil, err
	}
	record.SortOrder = next
	record.CreatedAt = now
	record.UpdatedAt = now

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	logging.WithDocument(s.logger, created.LandingPageID.String(), created.SectionID).Info("sections.duplicated", "source", source.SectionID)
	return created, nil
}

func (s *service) ToggleStatus(ctx context.Context, id uuid.UUID) (*Section, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.IsActive = !existing.IsActive
	existing.UpdatedAt = s.now()
	return s.repo.Update(ctx, existing)
}

// UpdateOrder assigns sort orders in bulk. Every entry is checked before
// any row is written.
func (s *service) UpdateOrder(ctx context.Context, entries []OrderEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: no sections given", ErrInvalidOrder)
	}
	records := make([]*Section, len(entries))
	for i, entry := range entries {
		if entry.SortOrder < 0 {
			return fmt.Errorf("%w: sort_order must be zero or positive", ErrInvalidOrder)
		}
		record, err := s.Get(ctx, entry.ID)
		if err != nil {
			return err
		}
		records[i] = record
	}

	now := s.now()
	for i, record := range records {
		record.SortOrder = entries[i].SortOrder
		record.UpdatedAt = now
		if _, err := s.repo.Update(ctx, record); err != nil {
			return err
		}
	}
	s.logger.Info("sections.order.updated", "count", len(records))
	return nil
}

func (s *service) Statistics(ctx context.Context) (*Statistics, error) {
	records, err := s.repo.List(ctx, ListOptions{})
	if err != nil {
		return nil, err
	}

	stats := &Statistics{
		SectionsByType: map[string]int{},
		SectionsByPage: []PageCount{},
	}
	perPage := map[uuid.UUID]int{}
	for _, record := range records {
		stats.TotalSections++
		if record.IsActive {
			stats.ActiveSections++
		} else {
			stats.InactiveSections++
		}
		stats.SectionsByType[record.Type]++
		perPage[record.LandingPageID]++
	}

	for pageID, count := range perPage {
		stats.SectionsByPage = append(stats.SectionsByPage, PageCount{
			PageID:       pageID,
			PageTitle:    s.pageTitle(ctx, pageID),
			SectionCount: count,
		})
	}
	sort.Slice(stats.SectionsByPage, func(i, j int) bool {
		a, b := stats.SectionsByPage[i], stats.SectionsByPage[j]
		if a.SectionCount != b.SectionCount {
			return a.SectionCount > b.SectionCount
		}
		return a.PageID.String() < b.PageID.String()
	})
	return stats, nil
}

func (s *service) pageTitle(ctx context.Context, id uuid.UUID) string {
	if s.pages == nil {
		return unknownPageTitle
	}
	page, err := s.pages.Get(ctx, id)
	if err != nil || page == nil {
		return unknownPageTitle
	}
	return page.Title
}

func (s *service) ensurePage(ctx context.Context, id uuid.UUID) error {
	if s.pages == nil {
		return nil
	}
	if _, err := s.pages.Get(ctx, id); err != nil {
		if pages.IsNotFound(err) {
			return &NotFoundError{Resource: "landing_page", Key: id.String()}
		}
		return err
	}
	return nil
}

func (s *service) ensureSectionIDAvailable(ctx context.Context, sectionID string, self uuid.UUID) error {
	existing, err := s.repo.GetBySectionID(ctx, sectionID)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != self {
		return ErrSectionIDExists
	}
	return nil
}

func (s *service) sectionIDTaken(ctx context.Context, sectionID string) (bool, error) {
	if err := s.ensureSectionIDAvailable(ctx, sectionID, uuid.Nil); err != nil {
		if errors.Is(err, ErrSectionIDExists) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

func (s *service) nextSortOrder(ctx context.Context, pageID uuid.UUID) (int, error) {
	records, err := s.repo.List(ctx, ListOptions{PageID: &pageID})
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

func validateCreate(req CreateSectionRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.LandingPageID, validation.By(requireUUID)),
		validation.Field(&req.SectionID, validation.Required),
		validation.Field(&req.Type, validation.Required, validation.RuneLength(1, maxTypeLength)),
		validation.Field(&req.Data, validation.NotNil),
		validation.Field(&req.SortOrder, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSection, err)
	}
	return nil
}

func validateUpdate(req UpdateSectionRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.SectionID, validation.NilOrNotEmpty),
		validation.Field(&req.Type, validation.NilOrNotEmpty, validation.RuneLength(1, maxTypeLength)),
		validation.Field(&req.SortOrder, validation.Min(0)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSection, err)
	}
	return nil
}

func requireUUID(value any) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
}
