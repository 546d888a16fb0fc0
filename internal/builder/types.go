package builder

import (
	"errors"

	"github.com/goliatone/go-landing/internal/document"
	"github.com/google/uuid"
)

// List identifiers understood by the coordinator.
const (
	ListCatalog  = "catalog"
	ListDocument = "document"
)

// Location addresses a position in one of the two drag lists.
type Location struct {
	List  string `json:"list"`
	Index int    `json:"index"`
}

// Gesture is a completed drag. A nil Destination means the item was
// dropped outside any list.
type Gesture struct {
	Source      Location  `json:"source"`
	Destination *Location `json:"destination,omitempty"`
}

// Action names the document change a gesture produced.
type Action string

const (
	ActionNone   Action = "none"
	ActionInsert Action = "insert"
	ActionMove   Action = "move"
)

// Result reports what Apply did. Section is set for inserts and moves.
type Result struct {
	Action  Action            `json:"action"`
	Section *document.Section `json:"section,omitempty"`
	Index   int               `json:"index"`
	Reason  string            `json:"reason,omitempty"`
}

// Changed reports whether the document was modified.
func (r Result) Changed() bool {
	return r.Action != ActionNone
}

// PageDocument is the wire shape exchanged with the persistence gateway.
type PageDocument struct {
	ID              uuid.UUID          `json:"id"`
	Title           string             `json:"title"`
	Slug            string             `json:"slug"`
	Status          string             `json:"status"`
	Sections        []document.Section `json:"sections"`
	MetaDescription string             `json:"meta_description"`
	MetaKeywords    string             `json:"meta_keywords"`
	KeepSlug        bool               `json:"keep_slug,omitempty"`
}

// IsNew reports whether the document has never been saved.
func (d PageDocument) IsNew() bool {
	return d.ID == uuid.Nil
}

// Details holds the page fields edited outside the canvas.
type Details struct {
	Title           string
	Slug            string
	Status          string
	MetaDescription string
	MetaKeywords    string
	// KeepSlug stops a title change from regenerating Slug on save.
	KeepSlug bool
}

var (
	ErrSaveInFlight = errors.New("builder: save already in progress")
	ErrNoGateway    = errors.New("builder: gateway not configured")
)
