package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/akeil/syllabus"
	"github.com/akeil/syllabus/pkg/render"
)

func doPreview(s settings, reg *syllabus.Registry, path string) error {
	state, err := readDraft(reg, path)
	if err != nil {
		return err
	}

	blocks, err := syllabus.Assemble(reg, state, syllabus.AssembleOptions{Institution: s.Institution})
	if err != nil {
		var v *syllabus.ValidationError
		if errors.As(err, &v) {
			printValidation(v)
		}
		return err
	}

	md, err := render.NewMarkdown(renderContext(s)).Render(context.Background(), blocks, render.Meta{})
	if err != nil {
		return err
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return err
	}
	out, err := tr.Render(string(md))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
