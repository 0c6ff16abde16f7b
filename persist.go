package syllabus

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/akeil/syllabus/internal/errors"
	"github.com/akeil/syllabus/internal/logging"
)

// Serialize writes the form state as an indented JSON document.
// Each field with a value is written under its identifier and the
// outline under "courseOutline". Only complete class days and modules with
// a title or a complete class day are written.
func Serialize(s *FormState) ([]byte, error) {
	doc := make(map[string]interface{}, len(s.values)+1)
	for id, v := range s.values {
		doc[string(id)] = v
	}

	o := s.Outline
	if o == nil {
		o = NewOutline()
	}
	doc[OutlineKey] = o

	return json.MarshalIndent(doc, "", "  ")
}

// WriteState writes the serialized form state to w.
func WriteState(w io.Writer, s *FormState) error {
	data, err := Serialize(s)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Deserialize reads a JSON document into the given state.
//
// Keys that are not field identifiers are ignored; fields missing from the
// document keep their current value. A legacy outline stored as a plain
// string is skipped. If the document is malformed, a *ParseError is
// returned and the state is left untouched.
func Deserialize(data []byte, s *FormState) error {
	var doc map[string]json.RawMessage
	err := json.Unmarshal(data, &doc)
	if err != nil {
		return errors.NewParseError(err)
	}

	values := make(map[FieldID]string, len(doc))
	var outline *Outline
	for key, raw := range doc {
		if key == OutlineKey {
			outline, err = decodeOutline(raw)
			if err != nil {
				return errors.NewParseError(err)
			}
			continue
		}

		id := FieldID(key)
		if !id.Known() {
			logging.Debug("Ignore unknown key %q", key)
			continue
		}
		v, ok, err := decodeValue(raw)
		if err != nil {
			return errors.NewParseError(err)
		}
		if ok {
			values[id] = v
		}
	}

	// only apply after everything was read
	for id, v := range values {
		s.Set(id, v)
	}
	if outline != nil {
		s.Outline = outline
	}
	return nil
}

// ReadState reads a JSON document from r into the given state.
func ReadState(r io.Reader, s *FormState) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return Deserialize(data, s)
}

// Load creates a new state with the registry defaults
// and populates it from the given JSON document.
func Load(reg *Registry, data []byte) (*FormState, error) {
	s := reg.NewState()
	err := Deserialize(data, s)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// decodeOutline returns nil without error for outlines that should be
// skipped, i.e. null or the legacy plain text form.
func decodeOutline(raw json.RawMessage) (*Outline, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		logging.Debug("Skip outline in legacy format")
		return nil, nil
	}

	var o Outline
	err := json.Unmarshal(raw, &o)
	if err != nil {
		return nil, err
	}
	if len(o.Modules) == 0 {
		return NewOutline(), nil
	}
	return &o, nil
}

// decodeValue accepts strings, booleans and numbers.
// Other values are skipped.
func decodeValue(raw json.RawMessage) (string, bool, error) {
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	err := dec.Decode(&v)
	if err != nil {
		return "", false, err
	}

	switch x := v.(type) {
	case string:
		return x, true, nil
	case bool:
		return strconv.FormatBool(x), true, nil
	case json.Number:
		return x.String(), true, nil
	}
	return "", false, nil
}
