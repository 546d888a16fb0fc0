package document

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-landing/internal/util"
)

// Model is the ordered section list of one page during an edit session.
// Index 0 is the top of the page. A Model is not safe for concurrent use;
// the builder coordinator serialises access.
type Model struct {
	sections []Section
}

// New builds a model from persisted sections, rejecting duplicate ids.
func New(sections ...Section) (*Model, error) {
	m := &Model{sections: make([]Section, 0, len(sections))}
	for _, section := range sections {
		if err := m.InsertAt(len(m.sections), section); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Model) Len() int {
	return len(m.sections)
}

// Sections returns a deep copy of the ordered sections.
func (m *Model) Sections() []Section {
	return CloneSections(m.sections)
}

// At returns a copy of the section at index.
func (m *Model) At(index int) (Section, bool) {
	if index < 0 || index >= len(m.sections) {
		return Section{}, false
	}
	return m.sections[index].Clone(), true
}

// IndexOf returns the position of id, or -1.
func (m *Model) IndexOf(id string) int {
	for i, section := range m.sections {
		if section.ID == id {
			return i
		}
	}
	return -1
}

// Find returns a copy of the section with id.
func (m *Model) Find(id string) (Section, bool) {
	return m.At(m.IndexOf(id))
}

// InsertAt inserts section at index clamped to [0, Len()].
func (m *Model) InsertAt(index int, section Section) error {
	id := strings.TrimSpace(section.ID)
	if id == "" {
		return ErrInstanceIDRequired
	}
	if strings.TrimSpace(section.Type) == "" {
		return ErrTypeRequired
	}
	if m.IndexOf(id) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateInstance, id)
	}

	inserted := section.Clone()
	inserted.ID = id
	if inserted.Data == nil {
		inserted.Data = map[string]any{}
	}

	index = clamp(index, 0, len(m.sections))
	m.sections = append(m.sections, Section{})
	copy(m.sections[index+1:], m.sections[index:])
	m.sections[index] = inserted
	return nil
}

// MoveTo removes the section at from and inserts it at to, where to is
// read against the list after the removal and clamped. It reports false
// when from does not exist.
func (m *Model) MoveTo(from, to int) bool {
	if from < 0 || from >= len(m.sections) {
		return false
	}
	moved := m.sections[from]
	m.sections = append(m.sections[:from], m.sections[from+1:]...)

	to = clamp(to, 0, len(m.sections))
	m.sections = append(m.sections, Section{})
	copy(m.sections[to+1:], m.sections[to:])
	m.sections[to] = moved
	return true
}

// RemoveAt drops the section at index. Out of range is a no-op.
func (m *Model) RemoveAt(index int) bool {
	if index < 0 || index >= len(m.sections) {
		return false
	}
	m.sections = append(m.sections[:index], m.sections[index+1:]...)
	return true
}

// RemoveByID drops the section with id. A missing id is a no-op, so
// repeated removals are harmless.
func (m *Model) RemoveByID(id string) bool {
	return m.RemoveAt(m.IndexOf(id))
}

// PatchData shallow merges partial into the data of section id. Other
// sections keep their data maps untouched. Unknown ids are a no-op.
func (m *Model) PatchData(id string, partial map[string]any) bool {
	index := m.IndexOf(id)
	if index < 0 {
		return false
	}
	m.sections[index].Data = util.MergeShallow(m.sections[index].Data, partial)
	return true
}

// PatchItem shallow merges partial into element itemIndex of the list
// stored under field, leaving sibling elements as they were. Unknown ids
// and out of range indexes are a no-op. Indexes count every element of the
// stored list, objects or not, matching the indexes the renderer emits.
func (m *Model) PatchItem(id, field string, itemIndex int, partial map[string]any) (bool, error) {
	index := m.IndexOf(id)
	if index < 0 {
		return false, nil
	}
	raw := m.sections[index].Data[field]
	items, ok := ObjectItems(raw)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrListFieldInvalid, field)
	}
	if itemIndex < 0 || itemIndex >= len(items) {
		return false, nil
	}
	if items[itemIndex] == nil {
		return false, fmt.Errorf("%w: %s[%d]", ErrListItemInvalid, field, itemIndex)
	}

	next := rawList(raw)
	next[itemIndex] = util.MergeShallow(items[itemIndex], partial)

	data := util.MergeShallow(m.sections[index].Data, nil)
	data[field] = next
	m.sections[index].Data = data
	return true, nil
}

// SeedList stores the list returned by defaults under field when the
// section has no object items there yet, so item edits made against the
// built-in list the renderer shows have something to patch. defaults
// receives the section type. It reports whether the list was written.
func (m *Model) SeedList(id, field string, defaults func(typeKey string) []map[string]any) bool {
	index := m.IndexOf(id)
	if index < 0 || defaults == nil {
		return false
	}
	if _, ok := ObjectItems(m.sections[index].Data[field]); ok {
		return false
	}
	seed := defaults(m.sections[index].Type)
	if len(seed) == 0 {
		return false
	}
	list := make([]any, len(seed))
	for i, item := range seed {
		list[i] = util.DeepCloneMap(item)
	}
	data := util.MergeShallow(m.sections[index].Data, nil)
	data[field] = list
	m.sections[index].Data = data
	return true
}

// Clear removes every section.
func (m *Model) Clear() {
	m.sections = m.sections[:0]
}

// Clone deep copies the model.
func (m *Model) Clone() *Model {
	return &Model{sections: CloneSections(m.sections)}
}

// Equal reports structural equality of two models.
func (m *Model) Equal(other *Model) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.sections) != len(other.sections) {
		return false
	}
	for i := range m.sections {
		a, b := m.sections[i], other.sections[i]
		if a.ID != b.ID || a.Type != b.Type || !reflect.DeepEqual(a.Data, b.Data) {
			return false
		}
	}
	return true
}

// Validate checks that every section has an id and a type and that ids are unique.
func (m *Model) Validate() error {
	return ValidateSections(m.sections)
}

// ValidateSections applies the model invariants to a raw section list.
func ValidateSections(sections []Section) error {
	seen := make(map[string]struct{}, len(sections))
	for _, section := range sections {
		id := strings.TrimSpace(section.ID)
		if id == "" {
			return ErrInstanceIDRequired
		}
		if strings.TrimSpace(section.Type) == "" {
			return ErrTypeRequired
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateInstance, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// ObjectItems returns the elements of a stored list with every non-object
// element replaced by nil, so positions match the stored list. ok is false
// when value is not a list or holds no objects at all.
func ObjectItems(value any) ([]map[string]any, bool) {
	var items []map[string]any
	found := false
	switch typed := value.(type) {
	case []any:
		items = make([]map[string]any, len(typed))
		for i, item := range typed {
			if obj, isObj := item.(map[string]any); isObj {
				items[i] = obj
				found = true
			}
		}
	case []map[string]any:
		items = make([]map[string]any, len(typed))
		for i, item := range typed {
			items[i] = item
			found = found || item != nil
		}
	}
	return items, found
}

func rawList(value any) []any {
	switch typed := value.(type) {
	case []any:
		out := make([]any, len(typed))
		copy(out, typed)
		return out
	case []map[string]any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = item
		}
		return out
	}
	return nil
}

func clamp(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
