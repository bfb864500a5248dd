package mapping

// File: internal/mapping/editor.go
// Purpose: Editing operations over one internal association.

import "fmt"

// Editor applies the configuration screen's editing rules to one internal
// association (system field -> raw header) for one entity type. The map is
// owned by the caller; Editor mutates it in place.
type Editor struct {
	entity EntityType
	assoc  map[string]string
}

// NewEditor wraps an internal association for editing. A nil map starts an
// empty association.
func NewEditor(entity EntityType, assoc map[string]string) *Editor {
	if assoc == nil {
		assoc = make(map[string]string)
	}
	return &Editor{entity: entity, assoc: assoc}
}

// Association returns the underlying internal association.
func (e *Editor) Association() map[string]string {
	return e.assoc
}

// SetHeader upserts the raw header mapped to a system field. Free-text
// headers are allowed, including ones absent from the discovered header set;
// flagging those is the dashboard's job, not a reason to reject the edit.
func (e *Editor) SetHeader(field, header string) {
	e.assoc[field] = header
}

// Remove drops a field's mapping; removing an unmapped field is a no-op.
func (e *Editor) Remove(field string) {
	delete(e.assoc, field)
}

// AddNew maps a previously unmapped system field. Both values must be
// non-empty, the field must belong to the entity's vocabulary, and a field
// that is already mapped is a conflict, never a silent overwrite.
func (e *Editor) AddNew(field, header string) error {
	if field == "" || header == "" {
		return fmt.Errorf("system field and raw header are both required")
	}
	if !contains(Vocabulary(e.entity), field) {
		return fmt.Errorf("unknown %s field: %s", e.entity, field)
	}
	if _, exists := e.assoc[field]; exists {
		return fmt.Errorf("field %q is already mapped", field)
	}
	e.assoc[field] = header
	return nil
}

// AvailableFields returns the vocabulary entries not yet mapped, in
// vocabulary order, for the add-new selector. It shrinks to empty once every
// field is mapped.
func (e *Editor) AvailableFields() []string {
	available := make([]string, 0)
	for _, field := range Vocabulary(e.entity) {
		if _, mapped := e.assoc[field]; !mapped {
			available = append(available, field)
		}
	}
	return available
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
