package pages

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-landing/internal/document"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/google/uuid"
)

const (
	maxTitleLength           = 255
	maxMetaDescriptionLength = 500
	maxMetaKeywordsLength    = 255
	copySuffix               = " (Copy)"
)

// Service persists landing page documents and owns slug assignment.
type Service interface {
	Save(ctx context.Context, req SaveRequest) (*Page, error)
	Get(ctx context.Context, id uuid.UUID) (*Page, error)
	GetBySlug(ctx context.Context, slug string, opts LookupOptions) (*Page, error)
	List(ctx context.Context, opts ListOptions) ([]*Page, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Duplicate(ctx context.Context, id uuid.UUID) (*Page, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*Page, error)
	EnsureUniqueSlug(ctx context.Context, candidate string, exclude *uuid.UUID) (string, error)
}

// SaveRequest creates a page when ID is nil and overwrites it otherwise.
// An explicit Slug always wins over the title-derived one.
type SaveRequest struct {
	ID              *uuid.UUID         `json:"-"`
	Title           string             `json:"title"`
	Slug            string             `json:"slug"`
	Status          string             `json:"status"`
	Sections        []document.Section `json:"sections"`
	MetaDescription string             `json:"meta_description"`
	MetaKeywords    string             `json:"meta_keywords"`
	KeepSlug        bool               `json:"keep_slug,omitempty"`
}

// LookupOptions controls GetBySlug visibility.
type LookupOptions struct {
	PublishedOnly bool
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

// WithSectionIDGenerator overrides the ids given to copied sections.
func WithSectionIDGenerator(generator func() string) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.sectionID = generator
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
	repo      Repository
	now       func() time.Time
	id        IDGenerator
	sectionID func() string
	logger    interfaces.Logger
}

func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:      repo,
		now:       time.Now,
		id:        uuid.New,
		sectionID: uuid.NewString,
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Save(ctx context.Context, req SaveRequest) (*Page, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Slug = strings.TrimSpace(req.Slug)
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if err := validateSaveRequest(req); err != nil {
		return nil, err
	}
	if req.ID == nil {
		return s.create(ctx, req)
	}
	return s.update(ctx, req)
}

func (s *service) create(ctx context.Context, req SaveRequest) (*Page, error) {
	slug, err := s.resolveSlug(ctx, req.Slug, req.Title, nil)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = StatusDraft
	}

	now := s.now()
	record := &Page{
		ID:              s.id(),
		Title:           req.Title,
		Slug:            slug,
		Status:          status,
		Sections:        normalizeSections(req.Sections),
		MetaDescription: strings.TrimSpace(req.MetaDescription),
		MetaKeywords:    strings.TrimSpace(req.MetaKeywords),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	logging.WithDocument(s.logger, created.ID.String(), "").Info("pages.created", "slug", created.Slug, "sections", len(created.Sections))
	return created, nil
}

func (s *service) update(ctx context.Context, req SaveRequest) (*Page, error) {
	if *req.ID == uuid.Nil {
		return nil, ErrPageRequired
	}
	existing, err := s.repo.GetByID(ctx, *req.ID)
	if err != nil {
		return nil, err
	}

	// KeepSlug pins the slug: the given one, or the stored one when empty.
	// Without it a slug equal to the stored one is treated as unchanged and
	// a title change regenerates it.
	slug := existing.Slug
	switch {
	case req.Slug != "" && (req.KeepSlug || DeriveSlug(req.Slug) != existing.Slug):
		slug, err = s.resolveSlug(ctx, req.Slug, "", &existing.ID)
	case req.KeepSlug:
	case req.Title != existing.Title:
		slug, err = s.resolveSlug(ctx, "", req.Title, &existing.ID)
	}
	if err != nil {
		return nil, err
	}

	existing.Title = req.Title
	existing.Slug = slug
	if req.Status != "" {
		existing.Status = req.Status
	}
	existing.Sections = normalizeSections(req.Sections)
	existing.MetaDescription = strings.TrimSpace(req.MetaDescription)
	existing.MetaKeywords = strings.TrimSpace(req.MetaKeywords)
	existing.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	logging.WithDocument(s.logger, updated.ID.String(), "").Info("pages.updated", "slug", updated.Slug, "sections", len(updated.Sections))
	return updated, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Page, error) {
	if id == uuid.Nil {
		return nil, ErrPageRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string, opts LookupOptions) (*Page, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrSlugRequired
	}
	page, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if opts.PublishedOnly && page.Status != StatusPublished {
		return nil, &NotFoundError{Resource: "page", Key: slug}
	}
	return page, nil
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]*Page, error) {
	opts.Status = strings.ToLower(strings.TrimSpace(opts.Status))
	if opts.Status != "" && !isValidStatus(opts.Status) {
		return nil, ErrStatusInvalid
	}
	return s.repo.List(ctx, opts)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrPageRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logging.WithDocument(s.logger, id.String(), "").Info("pages.deleted")
	return nil
}

// Duplicate copies a page as a new draft titled "<title> (Copy)". Copied
// sections get fresh ids.
func (s *service) Duplicate(ctx context.Context, id uuid.UUID) (*Page, error) {
	source, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sections := document.CloneSections(source.Sections)
	for i := range sections {
		sections[i].ID = s.sectionID()
	}
	return s.create(ctx, SaveRequest{
		Title:           source.Title + copySuffix,
		Status:          StatusDraft,
		Sections:        sections,
		MetaDescription: source.MetaDescription,
		MetaKeywords:    source.MetaKeywords,
	})
}

func (s *service) SetStatus(ctx context.Context, id uuid.UUID, status string) (*Page, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !isValidStatus(status) {
		return nil, ErrStatusInvalid
	}
	page, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if page.Status == status {
		return page, nil
	}
	page.Status = status
	page.UpdatedAt = s.now()
	updated, err := s.repo.Update(ctx, page)
	if err != nil {
		return nil, err
	}
	logging.WithDocument(s.logger, updated.ID.String(), "").Info("pages.status.changed", "status", status)
	return updated, nil
}

// EnsureUniqueSlug suffixes candidate until no page other than exclude uses it.
func (s *service) EnsureUniqueSlug(ctx context.Context, candidate string, exclude *uuid.UUID) (string, error) {
	return EnsureUnique(ctx, candidate, func(ctx context.Context, slug string) (bool, error) {
		existing, err := s.repo.GetBySlug(ctx, slug)
		if err != nil {
			if IsNotFound(err) {
				return false, nil
			}
			return false, err
		}
		return exclude == nil || existing.ID != *exclude, nil
	})
}

func (s *service) resolveSlug(ctx context.Context, explicit, title string, exclude *uuid.UUID) (string, error) {
	source := explicit
	if source == "" {
		source = title
	}
	candidate := DeriveSlug(source)
	if candidate == "" {
		if explicit != "" {
			return "", ErrSlugInvalid
		}
		candidate = "page"
	}
	return s.EnsureUniqueSlug(ctx, candidate, exclude)
}

func validateSaveRequest(req SaveRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.RuneLength(1, maxTitleLength)),
		validation.Field(&req.Status, validation.In(StatusDraft, StatusPublished, StatusArchived).Error("must be draft, published or archived")),
		validation.Field(&req.MetaDescription, validation.RuneLength(0, maxMetaDescriptionLength)),
		validation.Field(&req.MetaKeywords, validation.RuneLength(0, maxMetaKeywordsLength)),
		validation.Field(&req.Sections, validation.By(validateSections)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPage, err)
	}
	return nil
}

// validateSections enforces structure only: id, type and an object payload
// per section and unique ids. Type keys are not checked against the catalog.
func validateSections(value any) error {
	sections, _ := value.([]document.Section)
	for i, section := range sections {
		if section.Data == nil {
			return validation.NewError("validation_section_data_required", fmt.Sprintf("section %d data is required", i))
		}
	}
	if err := document.ValidateSections(sections); err != nil {
		return validation.NewError("validation_sections_invalid", err.Error())
	}
	return nil
}

func normalizeSections(sections []document.Section) []document.Section {
	out := document.CloneSections(sections)
	if out == nil {
		out = []document.Section{}
	}
	for i := range out {
		out[i].ID = strings.TrimSpace(out[i].ID)
		out[i].Type = strings.TrimSpace(out[i].Type)
	}
	return out
}

// ValidationErrors extracts field errors from a save failure.
func ValidationErrors(err error) map[string]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for field, fieldErr := range verrs {
		if fieldErr != nil {
			out[field] = fieldErr.Error()
		}
	}
	return out
}
