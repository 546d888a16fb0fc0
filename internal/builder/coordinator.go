package builder

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-landing/internal/catalog"
	"github.com/goliatone/go-landing/internal/document"
	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/pkg/interfaces"
	"github.com/google/uuid"
)

// Coordinator applies drag gestures to a document. Every gesture runs to
// completion under the coordinator lock before the next one starts.
type Coordinator struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	doc     *document.Model
	newID   func() string
	logger  interfaces.Logger
}

type CoordinatorOption func(*Coordinator)

// WithInstanceIDGenerator overrides the ids given to dropped sections.
func WithInstanceIDGenerator(generator func() string) CoordinatorOption {
	return func(c *Coordinator) {
		if generator != nil {
			c.newID = generator
		}
	}
}

func WithCoordinatorLogger(logger interfaces.Logger) CoordinatorOption {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCoordinator binds a catalog snapshot to a document. A nil doc starts
// from an empty page.
func NewCoordinator(cat *catalog.Catalog, doc *document.Model, opts ...CoordinatorOption) *Coordinator {
	if doc == nil {
		doc, _ = document.New()
	}
	c := &Coordinator{
		catalog: cat,
		doc:     doc,
		newID:   uuid.NewString,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the snapshot used to resolve catalog drops.
func (c *Coordinator) Catalog() *catalog.Catalog {
	return c.catalog
}

// Sections returns a copy of the current document order.
func (c *Coordinator) Sections() []document.Section {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc.Sections()
}

// Apply interprets one gesture. Drops that do not map to an insert or a
// move leave the document untouched and report ActionNone.
func (c *Coordinator) Apply(gesture Gesture) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gesture.Destination == nil {
		return noop("no destination"), nil
	}
	source, dest := gesture.Source, *gesture.Destination

	switch {
	case source.List == ListCatalog && dest.List == ListDocument:
		return c.insertFromCatalog(source.Index, dest.Index)
	case source.List == ListDocument && dest.List == ListDocument:
		return c.move(source.Index, dest.Index), nil
	default:
		return noop(fmt.Sprintf("%s to %s is not a valid drop", source.List, dest.List)), nil
	}
}

func (c *Coordinator) insertFromCatalog(position, index int) (Result, error) {
	descriptor, ok := c.catalog.At(position)
	if !ok {
		return noop(fmt.Sprintf("no catalog entry at %d", position)), nil
	}

	section := document.Section{
		ID:   c.newID(),
		Type: descriptor.Type,
		Data: descriptor.DefaultData,
	}
	if err := c.doc.InsertAt(index, section); err != nil {
		return noop(err.Error()), err
	}

	at := c.doc.IndexOf(section.ID)
	inserted, _ := c.doc.At(at)
	logging.WithDocument(c.logger, "", section.ID).Debug("builder.section.inserted", "type", section.Type, "index", at)
	return Result{Action: ActionInsert, Section: &inserted, Index: at}, nil
}

func (c *Coordinator) move(from, to int) Result {
	moved, ok := c.doc.At(from)
	if !ok {
		return noop(fmt.Sprintf("no section at %d", from))
	}
	if !c.doc.MoveTo(from, to) {
		return noop("move rejected")
	}
	at := c.doc.IndexOf(moved.ID)
	if at == from {
		return Result{Action: ActionNone, Section: &moved, Index: at, Reason: "position unchanged"}
	}
	logging.WithDocument(c.logger, "", moved.ID).Debug("builder.section.moved", "from", from, "to", at)
	return Result{Action: ActionMove, Section: &moved, Index: at}
}

// withDocument runs fn against the document under the coordinator lock.
func (c *Coordinator) withDocument(fn func(doc *document.Model)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.doc)
}

func noop(reason string) Result {
	return Result{Action: ActionNone, Index: -1, Reason: reason}
}
