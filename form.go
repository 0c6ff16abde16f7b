package syllabus

import (
	"sort"
	"strconv"
	"strings"
)

// FormState is the complete content of a syllabus form:
// the value of every field plus the course outline.
//
// Values are kept as strings. Boolean fields store "true" or "false".
// A field without a value reads as the empty string.
type FormState struct {
	values  map[FieldID]string
	Outline *Outline
}

// NewFormState creates a form state without values and with a fresh outline.
func NewFormState() *FormState {
	return &FormState{
		values:  make(map[FieldID]string),
		Outline: NewOutline(),
	}
}

// Get returns the value for a field.
func (s *FormState) Get(id FieldID) string {
	return s.values[id]
}

// Lookup returns the value for a field and whether one was set.
func (s *FormState) Lookup(id FieldID) (string, bool) {
	v, ok := s.values[id]
	return v, ok
}

// Set changes the value of a field.
func (s *FormState) Set(id FieldID, v string) {
	if s.values == nil {
		s.values = make(map[FieldID]string)
	}
	s.values[id] = v
}

// Bool interprets the field value as a boolean.
func (s *FormState) Bool(id FieldID) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s.values[id]))
	return err == nil && b
}

// SetBool stores a boolean field value.
func (s *FormState) SetBool(id FieldID, b bool) {
	s.Set(id, strconv.FormatBool(b))
}

// Unset removes the value of a field.
func (s *FormState) Unset(id FieldID) {
	delete(s.values, id)
}

// Filled reports whether the field has a non-blank value.
func (s *FormState) Filled(id FieldID) bool {
	return strings.TrimSpace(s.values[id]) != ""
}

// Fields returns the ids of all fields with a value, in form order.
func (s *FormState) Fields() []FieldID {
	ids := make([]FieldID, 0, len(s.values))
	for id := range s.values {
		ids = append(ids, id)
	}

	pos := make(map[FieldID]int, len(allFieldIDs))
	for i, id := range allFieldIDs {
		pos[id] = i
	}
	sort.Slice(ids, func(i, j int) bool {
		return pos[ids[i]] < pos[ids[j]]
	})
	return ids
}

// Clone returns an independent copy of the form state.
// Exports work on a clone so later edits do not affect them.
func (s *FormState) Clone() *FormState {
	c := &FormState{
		values: make(map[FieldID]string, len(s.values)),
	}
	for id, v := range s.values {
		c.values[id] = v
	}
	if s.Outline != nil {
		c.Outline = s.Outline.Clone()
	}
	return c
}
