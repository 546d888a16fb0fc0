package render

// FieldChange is one edit made on the canvas. List and Index address a
// sub-item when List is set.
type FieldChange struct {
	SectionID string         `json:"section_id"`
	List      string         `json:"list,omitempty"`
	Index     int            `json:"index,omitempty"`
	Data      map[string]any `json:"data"`
}

// Patcher applies field changes to a document.
type Patcher interface {
	PatchData(id string, partial map[string]any) bool
	PatchItem(id, field string, index int, partial map[string]any) (bool, error)
	SeedList(id, field string, defaults func(typeKey string) []map[string]any) bool
}

// ChangeFunc receives field changes from rendered sections.
type ChangeFunc func(change FieldChange) (bool, error)

// FieldChangeSink returns the callback for mode. In edit mode changes are
// merged into target; in view mode the callback does nothing. An item edit
// on a list the section never stored first copies the built-in list the
// canvas was showing into the section.
func FieldChangeSink(mode Mode, target Patcher) ChangeFunc {
	if mode != ModeEdit || target == nil {
		return func(FieldChange) (bool, error) { return false, nil }
	}
	return func(change FieldChange) (bool, error) {
		if change.List != "" {
			target.SeedList(change.SectionID, change.List, func(typeKey string) []map[string]any {
				return DefaultItems(typeKey, change.List)
			})
			return target.PatchItem(change.SectionID, change.List, change.Index, change.Data)
		}
		return target.PatchData(change.SectionID, change.Data), nil
	}
}
