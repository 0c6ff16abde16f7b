package main

import (
	"fmt"

	"github.com/akeil/syllabus"
)

func doDraftsLs(s settings, reg *syllabus.Registry) error {
	st := syllabus.NewFilesystemStorage(s.DraftDir, reg)
	names, err := st.List()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Printf("No drafts in %q.\n", s.DraftDir)
		return nil
	}

	fmt.Println("Saved drafts")
	fmt.Println("------------")
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}

func doDraftsRm(s settings, reg *syllabus.Registry, name string) error {
	st := syllabus.NewFilesystemStorage(s.DraftDir, reg)
	err := st.Delete(name)
	if err != nil {
		return err
	}
	fmt.Printf("%v deleted draft %q\n", checkmark, name)
	return nil
}
