package main

import (
	"fmt"
	"strings"

	"github.com/akeil/syllabus"
	"github.com/akeil/syllabus/internal/errors"
)

func doOutlineShow(reg *syllabus.Registry, path string) error {
	s, err := readDraft(reg, path)
	if err != nil {
		return err
	}
	fmt.Print(formatOutline(s.Outline))
	return nil
}

func doAddModule(reg *syllabus.Registry, path, title, description string) error {
	return editDraft(reg, path, func(s *syllabus.FormState) error {
		n, err := addModule(s.Outline, title, description)
		if err != nil {
			return err
		}
		fmt.Printf("%v added module %d\n", checkmark, n)
		return nil
	})
}

func doSetModule(reg *syllabus.Registry, path string, module int, title, description string) error {
	return editDraft(reg, path, func(s *syllabus.FormState) error {
		err := setModule(s.Outline, module, title, description)
		if err != nil {
			return err
		}
		fmt.Printf("%v updated module %d\n", checkmark, module)
		return nil
	})
}

func doAddDay(reg *syllabus.Registry, path string, module int, title, content string) error {
	return editDraft(reg, path, func(s *syllabus.FormState) error {
		n, err := addDay(s.Outline, module, title, content)
		if err != nil {
			return err
		}
		fmt.Printf("%v added class day %d to module %d\n", checkmark, n, module)
		return nil
	})
}

func doSetDay(reg *syllabus.Registry, path string, module, day int, title, content string) error {
	return editDraft(reg, path, func(s *syllabus.FormState) error {
		err := setDay(s.Outline, module, day, title, content)
		if err != nil {
			return err
		}
		fmt.Printf("%v updated class day %d of module %d\n", checkmark, day, module)
		return nil
	})
}

func doRmModule(reg *syllabus.Registry, path string, module int) error {
	return editDraft(reg, path, func(s *syllabus.FormState) error {
		id, err := s.Outline.ModuleAt(module - 1)
		if err != nil {
			return err
		}
		err = s.Outline.RemoveModule(id)
		if err != nil {
			return err
		}
		fmt.Printf("%v removed module %d\n", checkmark, module)
		return nil
	})
}

func doRmDay(reg *syllabus.Registry, path string, module, day int) error {
	return editDraft(reg, path, func(s *syllabus.FormState) error {
		id, err := s.Outline.ModuleAt(module - 1)
		if err != nil {
			return err
		}
		err = s.Outline.RemoveClassDay(id, day-1)
		if err != nil {
			return err
		}
		fmt.Printf("%v removed class day %d from module %d\n", checkmark, day, module)
		return nil
	})
}

// addModule appends a module with the given title and returns its 1-based
// position. The blank module of a new draft is filled in instead.
func addModule(o *syllabus.Outline, title, description string) (int, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, errors.NewValidationError("a module needs a title")
	}

	var pos int
	var m *syllabus.Module
	if o.Len() == 1 && blankModule(o.Modules[0]) {
		m = o.Modules[0]
		pos = 1
	} else {
		id := o.AddModule()
		m, _ = o.Module(id)
		pos = o.Len()
	}
	m.Title = title
	m.Description = strings.TrimSpace(description)
	return pos, nil
}

// setModule changes title and description of a module.
// Empty values leave the current value unchanged.
func setModule(o *syllabus.Outline, module int, title, description string) error {
	m, err := moduleAt(o, module)
	if err != nil {
		return err
	}
	if v := strings.TrimSpace(title); v != "" {
		m.Title = v
	}
	if v := strings.TrimSpace(description); v != "" {
		m.Description = v
	}
	return nil
}

// addDay adds a complete class day to a module and returns its 1-based
// position. A blank class day is filled in before a new one is appended.
func addDay(o *syllabus.Outline, module int, title, content string) (int, error) {
	day := syllabus.ClassDay{
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
	}
	if !day.Complete() {
		return 0, errors.NewValidationError("a class day needs a title and content")
	}

	m, err := moduleAt(o, module)
	if err != nil {
		return 0, err
	}
	for i, d := range m.ClassDays {
		if blankDay(d) {
			m.ClassDays[i] = day
			return i + 1, nil
		}
	}
	m.ClassDays = append(m.ClassDays, day)
	return len(m.ClassDays), nil
}

// setDay changes title and content of a class day.
// Empty values leave the current value unchanged.
func setDay(o *syllabus.Outline, module, day int, title, content string) error {
	m, err := moduleAt(o, module)
	if err != nil {
		return err
	}
	if day < 1 || day > len(m.ClassDays) {
		return errors.NewNotFound("module %d has no class day %d", module, day)
	}
	d := &m.ClassDays[day-1]
	if v := strings.TrimSpace(title); v != "" {
		d.Title = v
	}
	if v := strings.TrimSpace(content); v != "" {
		d.Content = v
	}
	return nil
}

func moduleAt(o *syllabus.Outline, module int) (*syllabus.Module, error) {
	id, err := o.ModuleAt(module - 1)
	if err != nil {
		return nil, err
	}
	return o.Module(id)
}

func blankModule(m *syllabus.Module) bool {
	if strings.TrimSpace(m.Title) != "" {
		return false
	}
	for _, d := range m.ClassDays {
		if !blankDay(d) {
			return false
		}
	}
	return true
}

func blankDay(d syllabus.ClassDay) bool {
	return strings.TrimSpace(d.Title) == "" && strings.TrimSpace(d.Content) == ""
}

// formatOutline lists modules and class days with their 1-based positions.
func formatOutline(o *syllabus.Outline) string {
	var sb strings.Builder
	for i, m := range o.Modules {
		title := m.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(&sb, "%d. %v\n", i+1, title)
		if m.Description != "" {
			fmt.Fprintf(&sb, "   %v\n", m.Description)
		}
		for j, d := range m.ClassDays {
			mark := crossmark
			if d.Complete() {
				mark = checkmark
			}
			dayTitle := d.Title
			if dayTitle == "" {
				dayTitle = "(untitled)"
			}
			fmt.Fprintf(&sb, "   %d.%d %v %v\n", i+1, j+1, mark, dayTitle)
		}
	}
	return sb.String()
}
