package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/akeil/syllabus"
)

func doSave(s settings, reg *syllabus.Registry, path, outDir string) error {
	state, err := readDraft(reg, path)
	if err != nil {
		return err
	}

	if outDir == "" {
		outDir = s.DraftDir
	}
	filename := syllabus.DraftFilename(state.Get(syllabus.CourseNumber), time.Now())
	name := strings.TrimSuffix(filename, filepath.Ext(filename))

	st := syllabus.NewFilesystemStorage(outDir, reg)
	err = st.Save(name, state)
	if err != nil {
		return err
	}

	fmt.Printf("%v saved as %q\n", checkmark, filepath.Join(outDir, filename))
	return nil
}
