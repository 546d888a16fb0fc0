package domains

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/pages"
	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/google/uuid"
)

const (
	maxDomainLength = 255
	maxNotesLength  = 1000
)

var schemePrefix = regexp.MustCompile(`^https?://`)

// Service manages custom domain records. It does not verify DNS or
// provision certificates.
type Service interface {
	Create(ctx context.Context, req CreateDomainRequest) (*Domain, error)
	Get(ctx context.Context, id uuid.UUID) (*Domain, error)
	GetByDomain(ctx context.Context, host string) (*Domain, error)
	List(ctx context.Context, opts ListOptions) ([]*Domain, error)
	Update(ctx context.Context, req UpdateDomainRequest) (*Domain, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PageLookup resolves the page a domain points at.
type PageLookup interface {
	Get(ctx context.Context, id uuid.UUID) (*pages.Page, error)
}

type CreateDomainRequest struct {
	Domain        string    `json:"domain"`
	LandingPageID uuid.UUID `json:"landing_page_id"`
	IsActive      *bool     `json:"is_active,omitempty"`
	Notes         string    `json:"notes"`
}

// UpdateDomainRequest changes the non-nil fields of a domain.
type UpdateDomainRequest struct {
	ID            uuid.UUID  `json:"-"`
	Domain        *string    `json:"domain,omitempty"`
	LandingPageID *uuid.UUID `json:"landing_page_id,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
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

// WithPageLookup requires the target page to exist and be published.
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

// NormalizeHost strips the scheme, a leading "www." and trailing slashes,
// then lowercases.
func NormalizeHost(raw string) string {
	host := strings.ToLower(strings.TrimSpace(raw))
	host = schemePrefix.ReplaceAllString(host, "")
	host = strings.TrimPrefix(host, "www.")
	return strings.TrimRight(host, "/")
}

func (s *service) Create(ctx context.Context, req CreateDomainRequest) (*Domain, error) {
	req.Domain = NormalizeHost(req.Domain)
	req.Notes = strings.TrimSpace(req.Notes)
	if err := validateCreate(req); err != nil {
		return nil, err
	}
	if err := s.ensurePublished(ctx, req.LandingPageID); err != nil {
		return nil, err
	}
	if err := s.ensureAvailable(ctx, req.Domain, uuid.Nil); err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	now := s.now()
	created, err := s.repo.Create(ctx, &Domain{
		ID:            s.id(),
		Domain:        req.Domain,
		LandingPageID: req.LandingPageID,
		IsActive:      active,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}
	logging.WithDocument(s.logger, created.LandingPageID.String(), "").Info("domains.created", "domain", created.Domain)
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Domain, error) {
	if id == uuid.Nil {
		return nil, ErrDomainRequired
	}
	return s.repo.GetByID(ctx, id)
}

// GetByDomain resolves an active domain by host name.
func (s *service) GetByDomain(ctx context.Context, host string) (*Domain, error) {
	host = NormalizeHost(host)
	if host == "" {
		return nil, fmt.Errorf("%w: domain is required", ErrInvalidDomain)
	}
	record, err := s.repo.GetByDomain(ctx, host)
	if err != nil {
		return nil, err
	}
	if !record.IsActive {
		return nil, &NotFoundError{Resource: "domain", Key: host}
	}
	return record, nil
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]*Domain, error) {
	return s.repo.List(ctx, opts)
}

func (s *service) Update(ctx context.Context, req UpdateDomainRequest) (*Domain, error) {
	existing, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if req.Domain != nil {
		normalized := NormalizeHost(*req.Domain)
		req.Domain = &normalized
	}
	if err := validateUpdate(req); err != nil {
		return nil, err
	}

	if req.Domain != nil && *req.Domain != existing.Domain {
		if err := s.ensureAvailable(ctx, *req.Domain, existing.ID); err != nil {
			return nil, err
		}
		existing.Domain = *req.Domain
	}
	if req.LandingPageID != nil && *req.LandingPageID != existing.LandingPageID {
		if err := s.ensurePublished(ctx, *req.LandingPageID); err != nil {
			return nil, err
		}
		existing.LandingPageID = *req.LandingPageID
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		existing.Notes = strings.TrimSpace(*req.Notes)
	}
	existing.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.logger.Info("domains.updated", "domain", updated.Domain)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrDomainRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("domains.deleted", "id", id.String())
	return nil
}

func (s *service) ensurePublished(ctx context.Context, pageID uuid.UUID) error {
	if s.pages == nil {
		return nil
	}
	page, err := s.pages.Get(ctx, pageID)
	if err != nil {
		if pages.IsNotFound(err) {
			return &NotFoundError{Resource: "landing_page", Key: pageID.String()}
		}
		return err
	}
	if page.Status != pages.StatusPublished {
		return ErrPageNotPublished
	}
	return nil
}

func (s *service) ensureAvailable(ctx context.Context, host string, self uuid.UUID) error {
	existing, err := s.repo.GetByDomain(ctx, host)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != self {
		return ErrDomainExists
	}
	return nil
}

func validateCreate(req CreateDomainRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Domain, validation.Required, validation.RuneLength(1, maxDomainLength), is.Domain),
		validation.Field(&req.LandingPageID, validation.By(requireUUID)),
		validation.Field(&req.Notes, validation.RuneLength(0, maxNotesLength)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDomain, err)
	}
	return nil
}

func validateUpdate(req UpdateDomainRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Domain, validation.NilOrNotEmpty, validation.RuneLength(1, maxDomainLength), is.Domain),
		validation.Field(&req.LandingPageID, validation.By(requireUUID)),
		validation.Field(&req.Notes, validation.RuneLength(0, maxNotesLength)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDomain, err)
	}
	return nil
}

func requireUUID(value any) error {
	switch id := value.(type) {
	case uuid.UUID:
		if id == uuid.Nil {
			return validation.NewError("validation_required", "cannot be blank")
		}
	case *uuid.UUID:
		if id != nil && *id == uuid.Nil {
			return validation.NewError("validation_required", "cannot be blank")
		}
	}
	return nil
}
