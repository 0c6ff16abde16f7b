package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/akeil/syllabus"
	"github.com/akeil/syllabus/pkg/export"
	"github.com/akeil/syllabus/pkg/render"
)

var defaultFormats = []string{"docx", "pdf"}

func doExport(s settings, reg *syllabus.Registry, path string, formats []string, outDir string, verify bool) error {
	state, err := readDraft(reg, path)
	if err != nil {
		return err
	}

	if len(formats) == 0 {
		formats = defaultFormats
	}
	if outDir == "" {
		outDir = s.OutDir
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e := export.New(reg, render.NewDefaultRegistry(renderContext(s)), export.Options{
		Institution: s.Institution,
	})

	fmt.Printf("%v export %q as %v\n", ellipsis, path, formats)
	results, err := e.ExportAll(ctx, state, formats...)
	if err != nil {
		var v *syllabus.ValidationError
		if errors.As(err, &v) {
			printValidation(v)
		}
		return err
	}

	if verify {
		for _, r := range results {
			if r.Format != "pdf" {
				continue
			}
			err = render.VerifyPDF(bytes.NewReader(r.Data))
			if err != nil {
				fmt.Printf("%v %q failed validation\n", crossmark, r.Filename)
				return err
			}
			fmt.Printf("%v %q is a valid PDF\n", checkmark, r.Filename)
		}
	}

	sink := export.NewDirSink(outDir)
	for _, r := range results {
		err = sink.Deliver(r)
		if err != nil {
			fmt.Printf("%v failed to write %q: %v\n", crossmark, r.Filename, err)
			return err
		}
		fmt.Printf("%v document saved as %q.\n", checkmark, sink.Path(r))
	}
	return nil
}

func printValidation(v *syllabus.ValidationError) {
	fmt.Print(formatValidation(v))
}

func formatValidation(v *syllabus.ValidationError) string {
	var sb strings.Builder
	if len(v.Missing) != 0 {
		sb.WriteString("Please fill in all required fields:\n")
		for _, m := range v.Missing {
			fmt.Fprintf(&sb, "  %v %v\n", crossmark, m)
		}
	}
	if len(v.Outline) != 0 {
		sb.WriteString("Course outline:\n")
		for _, o := range v.Outline {
			fmt.Fprintf(&sb, "  %v %v\n", crossmark, o)
		}
	}
	for _, p := range v.Problems {
		fmt.Fprintf(&sb, "%v %v\n", crossmark, p)
	}
	return sb.String()
}
