package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/akeil/syllabus"
	"github.com/akeil/syllabus/internal/logging"
)

// prompter asks the user for field values.
type prompter interface {
	Input(message, def string) (string, error)
	Multiline(message, def string) (string, error)
	Select(message string, options []string) (int, error)
	Confirm(message string, def bool) (bool, error)
}

func doFill(reg *syllabus.Registry, path string) error {
	s, err := readDraft(reg, path)
	if err != nil {
		return err
	}

	err = fillState(reg, s, surveyPrompter{})
	interrupted := errors.Is(err, terminal.InterruptErr)
	if err != nil && !interrupted {
		return err
	}

	// keep what was entered so far
	werr := writeDraft(path, s)
	if werr != nil {
		return werr
	}
	if interrupted {
		fmt.Printf("%v stopped, answers so far saved to %q\n", ellipsis, path)
		return nil
	}
	fmt.Printf("%v saved %q\n", checkmark, path)
	return nil
}

// fillState prompts for every empty field of the sections that are not
// complete and for every unfinished module and class day of the outline.
func fillState(reg *syllabus.Registry, s *syllabus.FormState, p prompter) error {
	for _, st := range syllabus.EvaluateAll(reg, s) {
		if st.Status == syllabus.Complete {
			continue
		}
		logging.Debug("Fill section %q", st.Section.ID)

		if st.Section.Check == syllabus.CheckOutlineComplete {
			continue
		}

		for _, id := range st.Section.Fields() {
			f, ok := reg.Field(id)
			if !ok || filled(f, s) {
				continue
			}
			err := fillField(f, s, p)
			if err != nil {
				return err
			}
		}
	}
	return fillOutline(s, p)
}

func filled(f syllabus.Field, s *syllabus.FormState) bool {
	if f.Kind == syllabus.KindBoolean {
		return s.Bool(f.ID)
	}
	return s.Filled(f.ID)
}

func fillField(f syllabus.Field, s *syllabus.FormState, p prompter) error {
	msg := f.Title() + ":"
	switch f.Kind {
	case syllabus.KindBoolean:
		b, err := p.Confirm(f.Title()+"?", s.Bool(f.ID))
		if err != nil {
			return err
		}
		s.SetBool(f.ID, b)
		return nil
	case syllabus.KindChoice:
		labels := make([]string, len(f.Options))
		for i, o := range f.Options {
			labels[i] = o.Label
		}
		i, err := p.Select(msg, labels)
		if err != nil {
			return err
		}
		if i >= 0 && i < len(f.Options) {
			s.Set(f.ID, f.Options[i].Value)
		}
		return nil
	case syllabus.KindMultiline:
		v, err := p.Multiline(msg, s.Get(f.ID))
		if err != nil {
			return err
		}
		setIfNotBlank(s, f.ID, v)
		return nil
	default:
		v, err := p.Input(msg, s.Get(f.ID))
		if err != nil {
			return err
		}
		setIfNotBlank(s, f.ID, v)
		return nil
	}
}

func setIfNotBlank(s *syllabus.FormState, id syllabus.FieldID, v string) {
	if strings.TrimSpace(v) != "" {
		s.Set(id, v)
	}
}

// fillOutline asks for the title and description of untitled modules and
// for title and content of every unfinished class day.
// A module without class days gets a new one.
func fillOutline(s *syllabus.FormState, p prompter) error {
	if s.Outline == nil {
		s.Outline = syllabus.NewOutline()
	}
	o := s.Outline
	if o.Len() == 0 {
		o.AddModule()
	}

	for i, m := range o.Modules {
		if strings.TrimSpace(m.Title) == "" {
			title, err := p.Input(fmt.Sprintf("Module %d title:", i+1), m.Title)
			if err != nil {
				return err
			}
			m.Title = strings.TrimSpace(title)

			desc, err := p.Input(fmt.Sprintf("Module %d description (optional):", i+1), m.Description)
			if err != nil {
				return err
			}
			m.Description = strings.TrimSpace(desc)
		}

		if len(m.ClassDays) == 0 {
			err := o.AddClassDay(m.ID)
			if err != nil {
				return err
			}
		}
		for j := range m.ClassDays {
			d := &m.ClassDays[j]
			if d.Complete() {
				continue
			}
			title, err := p.Input(fmt.Sprintf("Class day %d.%d title:", i+1, j+1), d.Title)
			if err != nil {
				return err
			}
			d.Title = strings.TrimSpace(title)

			content, err := p.Multiline(fmt.Sprintf("Class day %d.%d readings, assignments, and activities:", i+1, j+1), d.Content)
			if err != nil {
				return err
			}
			d.Content = strings.TrimSpace(content)
		}
	}
	return nil
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message, def string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &out)
	return out, err
}

func (surveyPrompter) Multiline(message, def string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Multiline{Message: message, Default: def}, &out)
	return out, err
}

func (surveyPrompter) Select(message string, options []string) (int, error) {
	short := make([]string, len(options))
	for i, o := range options {
		short[i] = truncate(o, 70)
	}
	var out int
	err := survey.AskOne(&survey.Select{Message: message, Options: short}, &out)
	return out, err
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out)
	return out, err
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + ellipsis
}
