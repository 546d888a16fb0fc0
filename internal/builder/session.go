package builder

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/goliatone/go-landing/internal/catalog"
	"github.com/goliatone/go-landing/internal/document"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/render"
	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/google/uuid"
)

// NoticeKind classifies a user-facing notice.
type NoticeKind string

const (
	NoticeLoadFailed NoticeKind = "load_failed"
	NoticeSaveFailed NoticeKind = "save_failed"
	NoticeSaved      NoticeKind = "saved"
)

// Notice is a dismissible message about a gateway call.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
	Err     error      `json:"-"`
}

// Session is the editing state of one page: its details, its sections and
// the last gateway notice.
type Session struct {
	gateway Gateway
	coord   *Coordinator
	logger  interfaces.Logger
	saving  atomic.Bool

	mu      sync.RWMutex
	details Details
	pageID  uuid.UUID
	notice  *Notice
}

type SessionOption func(*sessionOptions)

type sessionOptions struct {
	logger      interfaces.Logger
	coordinator []CoordinatorOption
}

func WithSessionLogger(logger interfaces.Logger) SessionOption {
	return func(o *sessionOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCoordinatorOptions forwards options to the session's coordinator.
func WithCoordinatorOptions(opts ...CoordinatorOption) SessionOption {
	return func(o *sessionOptions) {
		o.coordinator = append(o.coordinator, opts...)
	}
}

// NewSession starts an empty, unsaved page.
func NewSession(gateway Gateway, cat *catalog.Catalog, opts ...SessionOption) *Session {
	options := sessionOptions{logger: logging.NoOp()}
	for _, opt := range opts {
		opt(&options)
	}
	coordOpts := append([]CoordinatorOption{WithCoordinatorLogger(options.logger)}, options.coordinator...)
	return &Session{
		gateway: gateway,
		coord:   NewCoordinator(cat, nil, coordOpts...),
		logger:  options.logger,
	}
}

// Load replaces the session with the page id. On failure the session is
// left empty with a load notice.
func (s *Session) Load(ctx context.Context, id uuid.UUID) error {
	if s.gateway == nil {
		return s.failLoad(ErrNoGateway)
	}
	doc, err := s.gateway.Load(ctx, id)
	if err != nil {
		return s.failLoad(err)
	}
	return s.replace(doc)
}

// LoadBySlug is Load addressed by slug.
func (s *Session) LoadBySlug(ctx context.Context, slug string) error {
	if s.gateway == nil {
		return s.failLoad(ErrNoGateway)
	}
	doc, err := s.gateway.LoadBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return s.failLoad(err)
	}
	return s.replace(doc)
}

func (s *Session) replace(doc *PageDocument) error {
	model, err := document.New(doc.Sections...)
	if err != nil {
		return s.failLoad(err)
	}
	s.coord.withDocument(func(current *document.Model) {
		*current = *model
	})

	s.mu.Lock()
	s.pageID = doc.ID
	s.details = Details{
		Title:           doc.Title,
		Slug:            doc.Slug,
		Status:          doc.Status,
		MetaDescription: doc.MetaDescription,
		MetaKeywords:    doc.MetaKeywords,
	}
	s.notice = nil
	s.mu.Unlock()

	logging.WithDocument(s.logger, doc.ID.String(), "").Debug("builder.session.loaded", "sections", len(doc.Sections))
	return nil
}

func (s *Session) failLoad(err error) error {
	s.coord.withDocument(func(current *document.Model) {
		current.Clear()
	})

	s.mu.Lock()
	s.pageID = uuid.Nil
	s.details = Details{}
	s.notice = &Notice{Kind: NoticeLoadFailed, Message: "Failed to load page: " + err.Error(), Err: err}
	s.mu.Unlock()

	s.logger.Warn("builder.session.load_failed", "error", err)
	return err
}

// Save hands the current document to the gateway. Only one save runs at a
// time; a second call while one is pending returns ErrSaveInFlight. A
// failed save keeps the in-memory document as it was.
func (s *Session) Save(ctx context.Context) (*PageDocument, error) {
	if !s.saving.CompareAndSwap(false, true) {
		return nil, ErrSaveInFlight
	}
	defer s.saving.Store(false)

	if s.gateway == nil {
		s.setNotice(&Notice{Kind: NoticeSaveFailed, Message: "Failed to save page: " + ErrNoGateway.Error(), Err: ErrNoGateway})
		return nil, ErrNoGateway
	}

	doc := s.Document()
	saved, err := s.gateway.Save(ctx, doc)
	if err != nil {
		s.setNotice(&Notice{Kind: NoticeSaveFailed, Message: "Failed to save page: " + err.Error(), Err: err})
		logging.WithDocument(s.logger, doc.ID.String(), "").Warn("builder.session.save_failed", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.pageID = saved.ID
	s.details.Slug = saved.Slug
	if saved.Status != "" {
		s.details.Status = saved.Status
	}
	s.notice = &Notice{Kind: NoticeSaved, Message: "Page saved"}
	s.mu.Unlock()

	logging.WithDocument(s.logger, saved.ID.String(), "").Info("builder.session.saved", "slug", saved.Slug)
	return saved, nil
}

// Saving reports whether a save is pending.
func (s *Session) Saving() bool {
	return s.saving.Load()
}

// Document returns the page as it would be saved now.
func (s *Session) Document() PageDocument {
	sections := s.coord.Sections()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return PageDocument{
		ID:              s.pageID,
		Title:           s.details.Title,
		Slug:            s.details.Slug,
		Status:          s.details.Status,
		Sections:        sections,
		MetaDescription: s.details.MetaDescription,
		MetaKeywords:    s.details.MetaKeywords,
		KeepSlug:        s.details.KeepSlug,
	}
}

// SetDetails replaces the non-section page fields.
func (s *Session) SetDetails(details Details) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details = details
}

// Apply runs a drag gesture against the session document.
func (s *Session) Apply(gesture Gesture) (Result, error) {
	return s.coord.Apply(gesture)
}

// FieldChange routes a canvas edit through the sink for mode.
func (s *Session) FieldChange(mode render.Mode, change render.FieldChange) (bool, error) {
	return render.FieldChangeSink(mode, lockedPatcher{coord: s.coord})(change)
}

// Remove drops a section by id. Unknown ids are a no-op.
func (s *Session) Remove(id string) bool {
	var removed bool
	s.coord.withDocument(func(doc *document.Model) {
		removed = doc.RemoveByID(id)
	})
	return removed
}

// Clear removes every section.
func (s *Session) Clear() {
	s.coord.withDocument(func(doc *document.Model) {
		doc.Clear()
	})
}

// Preview renders the session document.
func (s *Session) Preview(renderer *render.Renderer, mode render.Mode) render.Page {
	return renderer.RenderDocument(s.coord.Sections(), mode)
}

// Notice returns the current notice, if any.
func (s *Session) Notice() (Notice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.notice == nil {
		return Notice{}, false
	}
	return *s.notice, true
}

func (s *Session) DismissNotice() {
	s.setNotice(nil)
}

func (s *Session) setNotice(notice *Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = notice
}

type lockedPatcher struct {
	coord *Coordinator
}

func (p lockedPatcher) PatchData(id string, partial map[string]any) bool {
	var ok bool
	p.coord.withDocument(func(doc *document.Model) {
		ok = doc.PatchData(id, partial)
	})
	return ok
}

func (p lockedPatcher) PatchItem(id, field string, index int, partial map[string]any) (bool, error) {
	var (
		ok  bool
		err error
	)
	p.coord.withDocument(func(doc *document.Model) {
		ok, err = doc.PatchItem(id, field, index, partial)
	})
	return ok, err
}

func (p lockedPatcher) SeedList(id, field string, defaults func(typeKey string) []map[string]any) bool {
	var ok bool
	p.coord.withDocument(func(doc *document.Model) {
		ok = doc.SeedList(id, field, defaults)
	})
	return ok
}
