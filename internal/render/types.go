package render

import (
	"errors"
	"html/template"
	"strings"
)

// Mode selects between the editor canvas and the public page.
type Mode string

const (
	ModeEdit Mode = "edit"
	ModeView Mode = "view"
)

// ParseMode maps a user supplied mode to a Mode, defaulting to view.
func ParseMode(value string) Mode {
	if strings.EqualFold(strings.TrimSpace(value), string(ModeEdit)) {
		return ModeEdit
	}
	return ModeView
}

// Capabilities describes what a variant exposes to the editor.
type Capabilities struct {
	HasTitle        bool `json:"has_title"`
	HasSubtitle     bool `json:"has_subtitle"`
	HasMediaList    bool `json:"has_media_list"`
	HasCallToAction bool `json:"has_call_to_action"`
	HasFormFields   bool `json:"has_form_fields"`
}

type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldMarkdown FieldKind = "markdown"
	FieldImage    FieldKind = "image"
	FieldSelect   FieldKind = "select"
)

// Field describes one editable value. Item fields set List to the data key
// holding the item array.
type Field struct {
	Name    string    `json:"name"`
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	List    string    `json:"list,omitempty"`
	Options []string  `json:"options,omitempty"`
}

// Variant renders one section type.
type Variant interface {
	Key() string
	Capabilities() Capabilities
	Fields() []Field
	Render(data map[string]any, mode Mode) (template.HTML, error)
}

// Output is the rendered form of one section.
type Output struct {
	SectionID string        `json:"id"`
	Type      string        `json:"type"`
	Mode      Mode          `json:"mode"`
	HTML      template.HTML `json:"html"`
	Unknown   bool          `json:"unknown,omitempty"`
	Failed    bool          `json:"failed,omitempty"`
}

// Page is a rendered section list.
type Page struct {
	Sections []Output      `json:"sections"`
	HTML     template.HTML `json:"html"`
}

var ErrVariantKeyRequired = errors.New("render: variant key required")
