package main

import (
	"fmt"
	"os"
	"time"

	"github.com/akeil/syllabus"
)

func doNew(s settings, reg *syllabus.Registry, out string, sample, force bool) error {
	var state *syllabus.FormState
	if sample {
		state = syllabus.SampleState(reg)
	} else {
		state = reg.NewState()
	}

	if out == "" {
		out = syllabus.DraftFilename(state.Get(syllabus.CourseNumber), time.Now())
	}

	if !force {
		_, err := os.Stat(out)
		if err == nil {
			return fmt.Errorf("%q already exists, use --force to overwrite", out)
		}
	}

	err := writeDraft(out, state)
	if err != nil {
		return err
	}

	fmt.Printf("%v created draft %q\n", checkmark, out)
	return nil
}
