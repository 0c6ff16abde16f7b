package syllabus

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSerializeRoundTrip(t *testing.T) {
	reg := DefaultRegistry()
	s := SampleState(reg)

	data, err := Serialize(s)
	if err != nil {
		t.Fatal(err)
	}

	actual := NewFormState()
	err = Deserialize(data, actual)
	if err != nil {
		t.Fatal(err)
	}

	for _, id := range s.Fields() {
		if actual.Get(id) != s.Get(id) {
			t.Errorf("value for %q not restored: %q != %q", id, actual.Get(id), s.Get(id))
		}
	}

	ignoreID := cmpopts.IgnoreFields(Module{}, "ID")
	if diff := cmp.Diff(s.Outline.ToSerializable(), actual.Outline.ToSerializable(), ignoreID); diff != "" {
		t.Errorf("outline not restored (-want +got):\n%s", diff)
	}
}

func TestSerializeSkipsUnfinished(t *testing.T) {
	reg := DefaultRegistry()
	s := SampleState(reg)
	s.Outline.AddModule()
	s.Outline.AddClassDay(s.Outline.Modules[0].ID)

	data, err := Serialize(s)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(data, []byte(`"title": ""`)) {
		t.Errorf("blank outline entries were written:\n%s", data)
	}

	actual, err := Load(reg, data)
	if err != nil {
		t.Fatal(err)
	}
	if actual.Outline.Len() != 3 {
		t.Errorf("unexpected module count %v", actual.Outline.Len())
	}
	want := len(s.Outline.Modules[0].ClassDays) - 1
	if got := len(actual.Outline.Modules[0].ClassDays); got != want {
		t.Errorf("unexpected class day count %v, want %v", got, want)
	}
}

func TestDeserializeMalformed(t *testing.T) {
	s := NewFormState()
	s.Set(CourseTitle, "Before")
	outline := s.Outline

	inputs := []string{
		`{"courseTitle": "After"`,
		`not json`,
		`{"courseTitle": "After", "courseOutline": {"modules": "nope"}}`,
	}
	for _, in := range inputs {
		err := Deserialize([]byte(in), s)
		if !IsParseError(err) {
			t.Errorf("expected parse error for %q, got %v", in, err)
		}
		if s.Get(CourseTitle) != "Before" || s.Outline != outline {
			t.Errorf("state modified by %q", in)
		}
	}
}

func TestDeserializeLegacyOutline(t *testing.T) {
	s := NewFormState()
	outline := s.Outline

	in := `{"courseTitle": "Marketing", "courseOutline": "Week 1: Intro\nWeek 2: Pricing"}`
	err := Deserialize([]byte(in), s)
	if err != nil {
		t.Fatal(err)
	}
	if s.Get(CourseTitle) != "Marketing" {
		t.Errorf("field not read")
	}
	if s.Outline != outline {
		t.Errorf("legacy outline replaced the current one")
	}
}

func TestDeserializeLenient(t *testing.T) {
	reg := DefaultRegistry()
	s := reg.NewState()
	pronouns := s.Get(NamePronouns)

	in := `{
		"credits": 3,
		"term": true,
		"unknownKey": "ignored",
		"prerequisites": null,
		"courseOutline": {"modules": []}
	}`
	err := Deserialize([]byte(in), s)
	if err != nil {
		t.Fatal(err)
	}

	if s.Get(Credits) != "3" {
		t.Errorf("number not read: %q", s.Get(Credits))
	}
	if s.Get(Term) != "true" {
		t.Errorf("boolean not read: %q", s.Get(Term))
	}
	if _, ok := s.Lookup(Prerequisites); ok {
		t.Errorf("null value was stored")
	}
	if _, ok := s.Lookup(FieldID("unknownKey")); ok {
		t.Errorf("unknown key was stored")
	}
	if s.Get(NamePronouns) != pronouns {
		t.Errorf("missing key changed the default")
	}
	if s.Outline.Len() != 1 || len(s.Outline.Modules[0].ClassDays) != 1 {
		t.Errorf("empty outline not replaced by a default outline")
	}
}

func TestLoad(t *testing.T) {
	reg := DefaultRegistry()
	var buf bytes.Buffer
	err := WriteState(&buf, SampleState(reg))
	if err != nil {
		t.Fatal(err)
	}

	s, err := Load(reg, buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if s.Get(CourseNumber) != "MKTG-GB.2334.01" {
		t.Errorf("unexpected course number %q", s.Get(CourseNumber))
	}

	_, err = Load(reg, []byte("{"))
	if !IsParseError(err) {
		t.Errorf("expected parse error, got %v", err)
	}

	s = NewFormState()
	err = ReadState(bytes.NewReader(buf.Bytes()), s)
	if err != nil {
		t.Fatal(err)
	}
	if s.Outline.Len() != 3 {
		t.Errorf("unexpected module count %v", s.Outline.Len())
	}
}
