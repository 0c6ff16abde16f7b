package syllabus

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssembleMissingTitle(t *testing.T) {
	reg := DefaultRegistry()
	s := SampleState(reg)
	s.Unset(CourseTitle)

	blocks, err := Assemble(reg, s, AssembleOptions{})
	if blocks != nil {
		t.Errorf("expected no output on validation failure")
	}

	var v *ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if diff := cmp.Diff([]string{"Course Title"}, v.Missing); diff != "" {
		t.Errorf("unexpected missing fields (-want +got):\n%s", diff)
	}
	if len(v.Outline) != 0 {
		t.Errorf("unexpected outline problems: %v", v.Outline)
	}
}

func TestAssembleReportsAll(t *testing.T) {
	reg := DefaultRegistry()
	s := reg.NewState()

	_, err := Assemble(reg, s, AssembleOptions{})
	var v *ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(v.Missing) != len(requiredForExport) {
		t.Errorf("expected %v missing fields, got %v", len(requiredForExport), v.Missing)
	}
	// the blank module of a fresh outline is not counted
	if len(v.Outline) != 1 {
		t.Errorf("unexpected outline problems: %v", v.Outline)
	}
}

func TestAssembleOutlineGate(t *testing.T) {
	reg := DefaultRegistry()
	s := SampleState(reg)

	s.Outline = &Outline{}
	_, err := Assemble(reg, s, AssembleOptions{})
	if !IsValidation(err) || !strings.Contains(err.Error(), "module") {
		t.Errorf("missing modules not detected: %v", err)
	}

	s.Outline = &Outline{Modules: []*Module{{Title: "Week 1"}}}
	_, err = Assemble(reg, s, AssembleOptions{})
	if !IsValidation(err) || !strings.Contains(err.Error(), "class day") {
		t.Errorf("missing class days not detected: %v", err)
	}
}

// A titled module whose only class day is blank has a class day in the
// editable outline, but not in the trimmed outline the export gate checks.
func TestOutlinePresenceAndCompletion(t *testing.T) {
	reg := DefaultRegistry()
	s := SampleState(reg)

	o := NewOutline()
	o.Modules[0].Title = "Week 1"
	s.Outline = o

	if !o.HasModules() || !o.HasClassDays() {
		t.Errorf("editable outline should have a module and a class day")
	}
	if o.IsNonEmpty() {
		t.Errorf("blank class day counted as complete")
	}
	if Evaluate(reg, mustSection(t, reg, "outline"), s) != Incomplete {
		t.Errorf("outline section should be incomplete")
	}

	err := CheckExportable(s)
	var v *ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("expected validation error, got %v", err)
	}
	want := []string{"Please add at least one class day to the course outline."}
	if diff := cmp.Diff(want, v.Outline); diff != "" {
		t.Errorf("unexpected outline problems (-want +got):\n%s", diff)
	}
	if len(v.Missing) != 0 {
		t.Errorf("unexpected missing fields: %v", v.Missing)
	}

	// a half filled class day is present but still not exportable
	o.Modules[0].ClassDays[0].Title = "Intro"
	if !o.HasClassDays() || o.IsNonEmpty() {
		t.Errorf("unexpected predicates for a half filled class day")
	}
	if CheckExportable(s) == nil {
		t.Errorf("half filled class day passed the export check")
	}

	o.Modules[0].ClassDays[0].Content = "Read Ch.1"
	if err := CheckExportable(s); err != nil {
		t.Errorf("complete outline rejected: %v", err)
	}
}

func mustSection(t *testing.T, reg *Registry, id string) Section {
	t.Helper()
	sec, err := reg.Section(id)
	if err != nil {
		t.Fatal(err)
	}
	return sec
}

func TestAssembleOrder(t *testing.T) {
	reg := DefaultRegistry()
	s := SampleState(reg)

	blocks, err := Assemble(reg, s, AssembleOptions{Institution: "School of Business"})
	if err != nil {
		t.Fatal(err)
	}

	if blocks[0] != (Heading{Text: "Strategic Marketing Management", Level: LevelTitle}) {
		t.Errorf("unexpected first block %+v", blocks[0])
	}
	if blocks[1] != (Heading{Text: "School of Business", Level: LevelSubtitle}) {
		t.Errorf("unexpected second block %+v", blocks[1])
	}
	if blocks[2] != (Paragraph{Label: "Course Number / Section", Text: "MKTG-GB.2334.01"}) {
		t.Errorf("unexpected third block %+v", blocks[2])
	}

	var sections []string
	for _, b := range blocks {
		if h, ok := b.(Heading); ok && h.Level == LevelSection {
			sections = append(sections, h.Text)
		}
	}
	expected := []string{
		"Course Description",
		"Learning Outcomes",
		"Communication Strategy",
		"Technical Requirements",
		"Course Requirements and Assignments",
		"Course Outline",
		"Academic Integrity",
		"Code of Conduct",
		"Integrity of Credit",
		"General Conduct & Behavior",
		"Grading Guidelines",
		"Student Accessibility",
		"Student Wellness",
		"Name Pronunciation and Pronouns",
		"Religious Observances and Absences",
		"Electronic Devices Policy",
		"AI Guidance",
	}
	if diff := cmp.Diff(expected, sections); diff != "" {
		t.Errorf("unexpected sections (-want +got):\n%s", diff)
	}
}

func TestAssembleOmitsOptional(t *testing.T) {
	reg := DefaultRegistry()
	s := SampleState(reg)
	s.Unset(CommunicationStrategy)
	s.Unset(Prerequisites)
	s.Unset(AIGuidance)

	blocks, err := Assemble(reg, s, AssembleOptions{})
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range blocks {
		switch x := b.(type) {
		case Heading:
			if x.Text == "Communication Strategy" || x.Text == "AI Guidance" {
				t.Errorf("unexpected section %q", x.Text)
			}
		case Paragraph:
			if x.Label == "Prerequisites" {
				t.Errorf("unexpected prerequisites")
			}
		}
	}
}

func TestAssembleResolvesChoices(t *testing.T) {
	reg := DefaultRegistry()
	s := SampleState(reg)

	blocks, err := Assemble(reg, s, AssembleOptions{})
	if err != nil {
		t.Fatal(err)
	}

	for i, b := range blocks {
		if b == (Heading{Text: "Academic Integrity", Level: LevelSection}) {
			p := blocks[i+1].(Paragraph)
			if !strings.HasPrefix(p.Text, "Academic integrity is fundamental") {
				t.Errorf("choice not resolved: %q", p.Text)
			}
		}
	}
	if s.Get(AcademicIntegrity) != "standard" {
		t.Errorf("state was modified")
	}
}

func TestAssembleLines(t *testing.T) {
	reg := DefaultRegistry()
	s := SampleState(reg)
	s.Set(LearningOutcomes, "first\n\nsecond")

	blocks, err := Assemble(reg, s, AssembleOptions{})
	if err != nil {
		t.Fatal(err)
	}

	for i, b := range blocks {
		if b == (Heading{Text: "Learning Outcomes", Level: LevelSection}) {
			expected := []Block{Paragraph{Text: "first"}, Paragraph{Text: " "}, Paragraph{Text: "second"}}
			if diff := cmp.Diff(expected, blocks[i+1:i+4]); diff != "" {
				t.Errorf("unexpected paragraphs (-want +got):\n%s", diff)
			}
		}
	}
}

func TestAssembleOutline(t *testing.T) {
	reg := DefaultRegistry()
	s := SampleState(reg)
	s.Outline = NewOutline()
	s.Outline.Modules[0].Title = "Week 1"
	s.Outline.Modules[0].ClassDays[0] = ClassDay{Title: "Intro", Content: "Read Ch.1\nDiscuss"}

	blocks, err := Assemble(reg, s, AssembleOptions{})
	if err != nil {
		t.Fatal(err)
	}

	for i, b := range blocks {
		if b == (Heading{Text: "Course Outline", Level: LevelSection}) {
			expected := []Block{
				Heading{Text: "Week 1", Level: LevelSubsection},
				Table{
					Header: []string{DayTitleHeader, DayContentHeader},
					Rows:   [][]string{{"Intro", "Read Ch.1\nDiscuss"}},
				},
			}
			if diff := cmp.Diff(expected, blocks[i+1:i+3]); diff != "" {
				t.Errorf("unexpected outline blocks (-want +got):\n%s", diff)
			}
		}
	}
}

func TestAssembleIdempotent(t *testing.T) {
	reg := DefaultRegistry()
	s := SampleState(reg)

	first, err := Assemble(reg, s, AssembleOptions{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Assemble(reg, s, AssembleOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("assemble is not idempotent:\n%s", diff)
	}
}
