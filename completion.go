package syllabus

import (
	"fmt"
	"strings"
)

// Status is the completion state of a form section.
type Status int

const (
	Optional Status = iota
	Complete
	Incomplete
)

func (s Status) String() string {
	switch s {
	case Optional:
		return "optional"
	case Complete:
		return "complete"
	case Incomplete:
		return "incomplete"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// SectionStatus pairs a section with its evaluated status.
type SectionStatus struct {
	Section Section
	Status  Status
}

// Evaluate derives the completion status of a single section.
//
// Sections with a check are complete if the check passes.
// Sections with required fields are complete if all of them are filled.
// Sections with optional fields are complete if any of them is filled
// and optional otherwise.
func Evaluate(reg *Registry, sec Section, s *FormState) Status {
	if sec.Check != NoCheck {
		check, ok := checks[sec.Check]
		if ok && check(s) {
			return Complete
		}
		return Incomplete
	}

	if len(sec.Required) != 0 {
		for _, id := range sec.Required {
			if !fieldFilled(reg, s, id) {
				return Incomplete
			}
		}
		return Complete
	}

	if len(sec.Optional) != 0 {
		for _, id := range sec.Optional {
			if fieldFilled(reg, s, id) {
				return Complete
			}
		}
		return Optional
	}

	return Optional
}

// EvaluateAll evaluates every section of the registry, in display order.
func EvaluateAll(reg *Registry, s *FormState) []SectionStatus {
	sections := reg.AllSections()
	out := make([]SectionStatus, len(sections))
	for i, sec := range sections {
		out[i] = SectionStatus{Section: sec, Status: Evaluate(reg, sec, s)}
	}
	return out
}

// fieldFilled decides whether a field counts as filled.
// Fields the layout does not render are considered filled so they never
// block a section.
func fieldFilled(reg *Registry, s *FormState, id FieldID) bool {
	f, ok := reg.Field(id)
	if !ok {
		return true
	}

	switch f.Kind {
	case KindBoolean:
		return s.Bool(id)
	case KindChoice:
		return s.Get(id) != ""
	default:
		return strings.TrimSpace(s.Get(id)) != ""
	}
}
