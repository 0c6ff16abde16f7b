package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/syllabus"
)

func TestFormatStatus(t *testing.T) {
	reg := syllabus.DefaultRegistry()

	s := syllabus.SampleState(reg)
	out := formatStatus(s, syllabus.EvaluateAll(reg, s))
	assert.Contains(t, out, s.Get(syllabus.CourseTitle))
	assert.Contains(t, out, "18 of 18 sections complete")

	blank := syllabus.NewFormState()
	out = formatStatus(blank, syllabus.EvaluateAll(reg, blank))
	assert.Contains(t, out, "Untitled syllabus")
	assert.Contains(t, out, "incomplete")
}

func TestFormatOutline(t *testing.T) {
	o := syllabus.NewOutline()
	assert.Equal(t, "1. (untitled)\n   1.1 "+crossmark+" (untitled)\n", formatOutline(o))

	o.Modules[0].Title = "Week 1"
	o.Modules[0].Description = "Basics"
	o.Modules[0].ClassDays[0] = syllabus.ClassDay{Title: "Intro", Content: "Read Ch.1"}
	id := o.AddModule()
	o.AddClassDay(id)

	want := "1. Week 1\n" +
		"   Basics\n" +
		"   1.1 " + checkmark + " Intro\n" +
		"2. (untitled)\n" +
		"   2.1 " + crossmark + " (untitled)\n" +
		"   2.2 " + crossmark + " (untitled)\n"
	assert.Equal(t, want, formatOutline(o))
}

func TestFormatValidation(t *testing.T) {
	v := &syllabus.ValidationError{
		Missing: []string{"Course Title"},
		Outline: []string{"Please add at least one module to the course outline."},
	}
	want := "Please fill in all required fields:\n" +
		"  " + crossmark + " Course Title\n" +
		"Course outline:\n" +
		"  " + crossmark + " Please add at least one module to the course outline.\n"
	assert.Equal(t, want, formatValidation(v))

	err := syllabus.NewFilesystemStorage(t.TempDir(), syllabus.DefaultRegistry()).Delete("..")
	var general *syllabus.ValidationError
	require.ErrorAs(t, err, &general)
	out := formatValidation(general)
	assert.NotContains(t, out, "Course outline")
	assert.Contains(t, out, "invalid draft name")
}
