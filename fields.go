package syllabus

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldID identifies a single form field.
// The set of identifiers is fixed; the registry only decides which of them
// a layout renders and how.
type FieldID string

const (
	CourseTitle           FieldID = "courseTitle"
	CourseNumber          FieldID = "courseNumber"
	Term                  FieldID = "term"
	Credits               FieldID = "credits"
	Prerequisites         FieldID = "prerequisites"
	InstructorName        FieldID = "instructorName"
	OfficeHours           FieldID = "officeHours"
	ClassSchedule         FieldID = "classSchedule"
	CourseDescription     FieldID = "courseDescription"
	LearningOutcomes      FieldID = "learningOutcomes"
	CommunicationStrategy FieldID = "communicationStrategy"
	TechnicalRequirements FieldID = "technicalRequirements"
	AssignmentTypes       FieldID = "assignmentTypes"
	GradingPercentages    FieldID = "gradingPercentages"
	DueDatesPolicy        FieldID = "dueDatesPolicy"
	AcademicIntegrity     FieldID = "academicIntegrity"
	CodeOfConduct         FieldID = "codeOfConduct"
	IntegrityOfCredit     FieldID = "integrityOfCredit"
	GeneralConduct        FieldID = "generalConduct"
	GradingGuidelines     FieldID = "gradingGuidelines"
	StudentAccessibility  FieldID = "studentAccessibility"
	StudentWellness       FieldID = "studentWellness"
	NamePronouns          FieldID = "namePronouns"
	ReligiousObservances  FieldID = "religiousObservances"
	ElectronicDevices     FieldID = "electronicDevices"
	AIGuidance            FieldID = "aiGuidance"
)

// OutlineKey is the key under which the course outline is persisted.
const OutlineKey = "courseOutline"

var allFieldIDs = []FieldID{
	CourseTitle,
	CourseNumber,
	Term,
	Credits,
	Prerequisites,
	InstructorName,
	OfficeHours,
	ClassSchedule,
	CourseDescription,
	LearningOutcomes,
	CommunicationStrategy,
	TechnicalRequirements,
	AssignmentTypes,
	GradingPercentages,
	DueDatesPolicy,
	AcademicIntegrity,
	CodeOfConduct,
	IntegrityOfCredit,
	GeneralConduct,
	GradingGuidelines,
	StudentAccessibility,
	StudentWellness,
	NamePronouns,
	ReligiousObservances,
	ElectronicDevices,
	AIGuidance,
}

var knownFields = func() map[FieldID]bool {
	m := make(map[FieldID]bool, len(allFieldIDs))
	for _, id := range allFieldIDs {
		m[id] = true
	}
	return m
}()

// AllFieldIDs returns every known field identifier in form order.
func AllFieldIDs() []FieldID {
	ids := make([]FieldID, len(allFieldIDs))
	copy(ids, allFieldIDs)
	return ids
}

// Known reports whether id is one of the predefined field identifiers.
func (id FieldID) Known() bool {
	return knownFields[id]
}

func (id FieldID) String() string {
	return string(id)
}

// FieldKind determines how a field is edited and when it counts as filled.
type FieldKind int

const (
	KindText FieldKind = iota
	KindMultiline
	KindChoice
	KindBoolean
)

var kindNames = map[FieldKind]string{
	KindText:      "text",
	KindMultiline: "multiline",
	KindChoice:    "choice",
	KindBoolean:   "boolean",
}

func (k FieldKind) String() string {
	s, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
	return s
}

func (k *FieldKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	err := node.Decode(&s)
	if err != nil {
		return err
	}

	for kind, name := range kindNames {
		if strings.EqualFold(name, s) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("invalid field kind %q", s)
}

// Option is a single entry of a choice field.
type Option struct {
	// Value is what gets stored in the form state.
	Value string `yaml:"value"`
	// Label is the human readable text that appears in exported documents.
	Label string `yaml:"label"`
}

// Field describes one form field.
type Field struct {
	ID    FieldID   `yaml:"id"`
	Kind  FieldKind `yaml:"kind"`
	Label string    `yaml:"label"`
	// Default is the pre-filled value for new syllabi.
	Default string   `yaml:"default"`
	Options []Option `yaml:"options"`
}

// Title returns the configured label or one derived from the identifier.
func (f Field) Title() string {
	if f.Label != "" {
		return f.Label
	}
	return Label(f.ID)
}

// OptionLabel returns the label for a stored choice value.
func (f Field) OptionLabel(value string) (string, bool) {
	for _, o := range f.Options {
		if o.Value == value {
			return o.Label, true
		}
	}
	return "", false
}

// Check names a built-in predicate used to evaluate a section
// that is not described by plain field lists.
type Check string

const (
	NoCheck Check = ""
	// CheckOutlineComplete is satisfied when the outline holds at least one
	// class day with both title and content.
	CheckOutlineComplete Check = "outline-complete"
)

var checks = map[Check]func(*FormState) bool{
	CheckOutlineComplete: func(s *FormState) bool {
		return s.Outline != nil && s.Outline.IsNonEmpty()
	},
}

// Section is one top-level area of the syllabus form.
type Section struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title"`
	Required []FieldID `yaml:"required"`
	Optional []FieldID `yaml:"optional"`
	Check    Check     `yaml:"check"`
}

// Fields returns all fields referenced by the section, required ones first.
func (s Section) Fields() []FieldID {
	ids := make([]FieldID, 0, len(s.Required)+len(s.Optional))
	ids = append(ids, s.Required...)
	ids = append(ids, s.Optional...)
	return ids
}
