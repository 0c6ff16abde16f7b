package syllabus

import (
	"strings"

	"github.com/akeil/syllabus/internal/errors"
	"github.com/akeil/syllabus/internal/logging"
)

// AssembleOptions modify the generated document.
type AssembleOptions struct {
	// Institution is printed as a subtitle below the course title.
	Institution string
}

// requiredForExport lists the fields that must be filled before a document
// can be generated, in the order they are reported.
var requiredForExport = []FieldID{
	CourseTitle,
	CourseNumber,
	Term,
	Credits,
	InstructorName,
	OfficeHours,
	ClassSchedule,
	CourseDescription,
	LearningOutcomes,
	AssignmentTypes,
	GradingPercentages,
	DueDatesPolicy,
	AcademicIntegrity,
	IntegrityOfCredit,
	GradingGuidelines,
}

// CheckExportable returns a *ValidationError listing every problem that
// prevents the state from being exported, or nil.
func CheckExportable(s *FormState) error {
	v := &errors.ValidationError{}
	for _, id := range requiredForExport {
		if !s.Filled(id) {
			v.Missing = append(v.Missing, Label(id))
		}
	}

	var o Outline
	if s.Outline != nil {
		o = s.Outline.ToSerializable()
	}
	if !o.HasModules() {
		v.Outline = append(v.Outline, "Please add at least one module to the course outline.")
	} else if !o.HasClassDays() {
		v.Outline = append(v.Outline, "Please add at least one class day to the course outline.")
	}

	if v.Empty() {
		return nil
	}
	return v
}

// Assemble turns a form state into the ordered content of a syllabus
// document. It fails with a *ValidationError if required content is missing
// and never returns partial output.
//
// Choice values are replaced by their labels from reg.
// The state is not modified.
func Assemble(reg *Registry, s *FormState, opts AssembleOptions) ([]Block, error) {
	err := CheckExportable(s)
	if err != nil {
		return nil, err
	}

	d := reg.Resolve(s)
	a := &assembler{}

	a.heading(d.Get(CourseTitle), LevelTitle)
	if opts.Institution != "" {
		a.heading(opts.Institution, LevelSubtitle)
	}

	a.labeled("Course Number / Section", d.Get(CourseNumber))
	a.labeled("Term", d.Get(Term))
	a.labeled("Credits", d.Get(Credits))
	if d.Get(Prerequisites) != "" {
		a.labeled("Prerequisites", d.Get(Prerequisites))
	}
	a.labeled("Instructor Name", d.Get(InstructorName))
	a.labeled("Office Hours", d.Get(OfficeHours))
	a.labeled("Class Schedule", d.Get(ClassSchedule))

	a.heading("Course Description", LevelSection)
	a.text(d.Get(CourseDescription))

	a.heading("Learning Outcomes", LevelSection)
	a.lines(d.Get(LearningOutcomes))

	if d.Get(CommunicationStrategy) != "" {
		a.heading("Communication Strategy", LevelSection)
		a.lines(d.Get(CommunicationStrategy))
	}
	if d.Get(TechnicalRequirements) != "" {
		a.heading("Technical Requirements", LevelSection)
		a.lines(d.Get(TechnicalRequirements))
	}

	a.heading("Course Requirements and Assignments", LevelSection)
	a.heading("Assignment Types and Descriptions:", LevelSubsection)
	a.lines(d.Get(AssignmentTypes))
	a.heading("Grading Percentages:", LevelSubsection)
	a.lines(d.Get(GradingPercentages))
	a.heading("Due Dates and Late Policy:", LevelSubsection)
	a.lines(d.Get(DueDatesPolicy))

	a.heading("Course Outline", LevelSection)
	a.outline(d.Outline)

	a.heading("Academic Integrity", LevelSection)
	a.text(d.Get(AcademicIntegrity))

	a.heading("Code of Conduct", LevelSection)
	a.lines(d.Get(CodeOfConduct))

	a.heading("Integrity of Credit", LevelSection)
	a.text(d.Get(IntegrityOfCredit))

	a.heading("General Conduct & Behavior", LevelSection)
	a.lines(d.Get(GeneralConduct))

	if d.Get(GradingGuidelines) != "" {
		a.heading("Grading Guidelines", LevelSection)
		a.text(d.Get(GradingGuidelines))
	}

	a.heading("Student Accessibility", LevelSection)
	a.lines(d.Get(StudentAccessibility))

	if d.Get(StudentWellness) != "" {
		a.heading("Student Wellness", LevelSection)
		a.text(d.Get(StudentWellness))
	}
	if d.Get(NamePronouns) != "" {
		a.heading("Name Pronunciation and Pronouns", LevelSection)
		a.lines(d.Get(NamePronouns))
	}
	if d.Get(ReligiousObservances) != "" {
		a.heading("Religious Observances and Absences", LevelSection)
		a.text(d.Get(ReligiousObservances))
	}
	if d.Get(ElectronicDevices) != "" {
		a.heading("Electronic Devices Policy", LevelSection)
		a.text(d.Get(ElectronicDevices))
	}
	if d.Get(AIGuidance) != "" {
		a.heading("AI Guidance", LevelSection)
		a.text(d.Get(AIGuidance))
	}

	logging.Debug("Assembled %d blocks for %q", len(a.blocks), d.Get(CourseNumber))
	return a.blocks, nil
}

type assembler struct {
	blocks []Block
}

func (a *assembler) heading(text string, level int) {
	a.blocks = append(a.blocks, Heading{Text: text, Level: level})
}

func (a *assembler) labeled(label, text string) {
	a.blocks = append(a.blocks, Paragraph{Label: label, Text: text})
}

func (a *assembler) text(text string) {
	a.blocks = append(a.blocks, Paragraph{Text: text})
}

// lines adds one paragraph per line; blank lines become a single space.
func (a *assembler) lines(text string) {
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			line = " "
		}
		a.text(line)
	}
}

func (a *assembler) outline(o *Outline) {
	if o == nil {
		return
	}
	s := o.ToSerializable()
	for _, m := range s.Modules {
		if m.Title != "" {
			a.heading(m.Title, LevelSubsection)
		}
		if m.Description != "" {
			a.text(m.Description)
		}
		if len(m.ClassDays) == 0 {
			continue
		}
		t := Table{
			Header: []string{DayTitleHeader, DayContentHeader},
			Rows:   make([][]string, len(m.ClassDays)),
		}
		for i, d := range m.ClassDays {
			t.Rows[i] = []string{d.Title, d.Content}
		}
		a.blocks = append(a.blocks, t)
	}
}
