package syllabus

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akeil/syllabus/internal/errors"
	"github.com/akeil/syllabus/internal/logging"
)

//go:embed layout.yaml
var defaultLayout []byte

// Registry holds the static description of the syllabus form:
// its sections in display order and the declaration of every rendered field.
//
// A Registry is read-only after it was loaded and can be shared.
type Registry struct {
	sections []Section
	fields   map[FieldID]Field
	order    []FieldID
}

type layout struct {
	Sections []Section `yaml:"sections"`
	Fields   []Field   `yaml:"fields"`
}

// DefaultRegistry returns the registry for the built-in form layout.
func DefaultRegistry() *Registry {
	r, err := LoadRegistry(bytes.NewReader(defaultLayout))
	if err != nil {
		// the embedded layout is covered by tests
		panic(err)
	}
	return r
}

// LoadRegistryFile reads a form layout from the YAML file at path.
func LoadRegistryFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := LoadRegistry(f)
	if err != nil {
		return nil, errors.Wrap(err, "load layout %q", path)
	}
	return r, nil
}

// LoadRegistry reads a form layout in YAML format.
func LoadRegistry(r io.Reader) (*Registry, error) {
	var l layout
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&l)
	if err != nil {
		return nil, err
	}

	reg := &Registry{
		sections: l.Sections,
		fields:   make(map[FieldID]Field, len(l.Fields)),
		order:    make([]FieldID, 0, len(l.Fields)),
	}

	for _, f := range l.Fields {
		err = reg.addField(f)
		if err != nil {
			return nil, err
		}
	}

	err = reg.Validate()
	if err != nil {
		return nil, err
	}

	logging.Debug("Loaded layout with %d sections and %d fields", len(reg.sections), len(reg.fields))
	return reg, nil
}

func (r *Registry) addField(f Field) error {
	if !f.ID.Known() {
		return errors.NewValidationError("unknown field %q", f.ID)
	}
	if _, exists := r.fields[f.ID]; exists {
		return errors.NewValidationError("duplicate field %q", f.ID)
	}
	r.fields[f.ID] = f
	r.order = append(r.order, f.ID)
	return nil
}

// Validate checks that sections only reference declared fields
// and that every choice field has options.
func (r *Registry) Validate() error {
	for _, id := range r.order {
		f := r.fields[id]
		if f.Kind == KindChoice && len(f.Options) == 0 {
			return errors.NewValidationError("choice field %q has no options", f.ID)
		}
		if f.Kind != KindChoice && len(f.Options) != 0 {
			return errors.NewValidationError("field %q is not a choice but has options", f.ID)
		}
	}

	seen := make(map[string]bool, len(r.sections))
	for _, s := range r.sections {
		if s.ID == "" {
			return errors.NewValidationError("section id must not be empty")
		}
		if seen[s.ID] {
			return errors.NewValidationError("duplicate section %q", s.ID)
		}
		seen[s.ID] = true

		if s.Check != NoCheck {
			if _, ok := checks[s.Check]; !ok {
				return errors.NewValidationError("section %q: unknown check %q", s.ID, s.Check)
			}
		}
		for _, id := range s.Fields() {
			if _, ok := r.fields[id]; !ok {
				return errors.NewValidationError("section %q references undeclared field %q", s.ID, id)
			}
		}
	}

	return nil
}

// AllSections returns the sections in display order.
func (r *Registry) AllSections() []Section {
	out := make([]Section, len(r.sections))
	copy(out, r.sections)
	return out
}

// Section looks up a section by its id.
func (r *Registry) Section(id string) (Section, error) {
	for _, s := range r.sections {
		if s.ID == id {
			return s, nil
		}
	}
	return Section{}, errors.NewNotFound("no section %q", id)
}

// Field returns the declaration for the given field.
// The second return value is false if the layout does not render the field.
func (r *Registry) Field(id FieldID) (Field, bool) {
	f, ok := r.fields[id]
	return f, ok
}

// Fields returns all declared fields in layout order.
func (r *Registry) Fields() []Field {
	out := make([]Field, len(r.order))
	for i, id := range r.order {
		out[i] = r.fields[id]
	}
	return out
}

// DisplayValue resolves a stored value to the text that should appear in a
// document. For choice fields this is the label of the selected option;
// values without a matching option and all other fields are returned as-is.
func (r *Registry) DisplayValue(id FieldID, raw string) string {
	f, ok := r.fields[id]
	if !ok || f.Kind != KindChoice {
		return raw
	}
	label, ok := f.OptionLabel(raw)
	if !ok {
		return raw
	}
	return label
}

// Resolve returns a copy of the state with every choice value replaced by
// its display label.
func (r *Registry) Resolve(s *FormState) *FormState {
	out := s.Clone()
	for id, v := range out.values {
		out.values[id] = r.DisplayValue(id, v)
	}
	return out
}

// NewState creates an empty form state with the layout's default values and
// an outline holding one module with one class day.
func (r *Registry) NewState() *FormState {
	s := NewFormState()
	for _, id := range r.order {
		f := r.fields[id]
		if f.Default != "" {
			s.Set(id, f.Default)
		}
	}
	return s
}

func (r *Registry) String() string {
	return fmt.Sprintf("Registry(%d sections, %d fields)", len(r.sections), len(r.fields))
}
