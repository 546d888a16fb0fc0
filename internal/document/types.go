package document

import (
	"errors"

	"github.com/goliatone/go-landing/internal/util"
)

// Section is one typed block of a page. Data is owned by the section's
// type; the model only requires it to be an object.
type Section struct {
	ID   string         `json:"id"`
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

var (
	ErrInstanceIDRequired = errors.New("document: section id required")
	ErrTypeRequired       = errors.New("document: section type required")
	ErrDuplicateInstance  = errors.New("document: duplicate section id")
	ErrListFieldInvalid   = errors.New("document: list field holds no object items")
	ErrListItemInvalid    = errors.New("document: list item is not an object")
)

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	return Section{
		ID:   s.ID,
		Type: s.Type,
		Data: util.DeepCloneMap(s.Data),
	}
}

// CloneSections deep copies a section slice.
func CloneSections(sections []Section) []Section {
	if sections == nil {
		return nil
	}
	out := make([]Section, len(sections))
	for i, section := range sections {
		out[i] = section.Clone()
	}
	return out
}
