package main

import (
	"os"

	"github.com/akeil/syllabus"
	"github.com/akeil/syllabus/internal/errors"
	"github.com/akeil/syllabus/internal/fs"
	"github.com/akeil/syllabus/internal/logging"
	"github.com/akeil/syllabus/pkg/render"
)

// readDraft loads a draft file on top of the layout defaults.
func readDraft(reg *syllabus.Registry, path string) (*syllabus.FormState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("no draft at %q", path)
		}
		return nil, err
	}

	s, err := syllabus.Load(reg, data)
	if err != nil {
		return nil, errors.Wrap(err, "read %q", path)
	}
	logging.Debug("Read draft %q", path)
	return s, nil
}

func writeDraft(path string, s *syllabus.FormState) error {
	data, err := syllabus.Serialize(s)
	if err != nil {
		return err
	}
	return fs.WriteFile(path, data)
}

// editDraft reads a draft, applies f and writes it back if f succeeds.
func editDraft(reg *syllabus.Registry, path string, f func(s *syllabus.FormState) error) error {
	s, err := readDraft(reg, path)
	if err != nil {
		return err
	}
	err = f(s)
	if err != nil {
		return err
	}
	return writeDraft(path, s)
}

func renderContext(s settings) *render.Context {
	c := render.DefaultContext()
	if s.PageSize != "" {
		c.PageSize = s.PageSize
	}
	return c
}
