package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/syllabus"
)

func TestAddModule(t *testing.T) {
	o := syllabus.NewOutline()

	n, err := addModule(o, " Week 1 ", "Basics")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, o.Len(), "blank module should be reused")
	assert.Equal(t, "Week 1", o.Modules[0].Title)
	assert.Equal(t, "Basics", o.Modules[0].Description)

	n, err = addModule(o, "Week 2", "")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "Week 2", o.Modules[1].Title)

	_, err = addModule(o, "  ", "")
	assert.True(t, syllabus.IsValidation(err))
	assert.Equal(t, 2, o.Len())
}

func TestAddDay(t *testing.T) {
	o := syllabus.NewOutline()
	o.Modules[0].Title = "Week 1"

	n, err := addDay(o, 1, "Intro", "Read Ch.1")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "blank class day should be reused")

	n, err = addDay(o, 1, "Pricing", "Read Ch.2")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, syllabus.ClassDay{Title: "Pricing", Content: "Read Ch.2"}, o.Modules[0].ClassDays[1])

	_, err = addDay(o, 1, "No content", "")
	assert.True(t, syllabus.IsValidation(err))

	_, err = addDay(o, 2, "Intro", "Read")
	assert.True(t, syllabus.IsNotFound(err))
}

func TestSetModuleAndDay(t *testing.T) {
	o := syllabus.NewOutline()
	o.Modules[0].Title = "Week 1"
	o.Modules[0].ClassDays[0] = syllabus.ClassDay{Title: "Intro", Content: "Read"}
	o.AddModule()

	require.NoError(t, setModule(o, 2, "Week 2", "Pricing"))
	assert.Equal(t, "Week 2", o.Modules[1].Title)
	assert.Equal(t, "Pricing", o.Modules[1].Description)

	require.NoError(t, setModule(o, 2, "", "Price models"))
	assert.Equal(t, "Week 2", o.Modules[1].Title)
	assert.Equal(t, "Price models", o.Modules[1].Description)

	require.NoError(t, setDay(o, 2, 1, "Cases", "Case 1 due"))
	assert.True(t, o.Modules[1].ClassDays[0].Complete())

	require.NoError(t, setDay(o, 1, 1, "", "Read Ch.1"))
	assert.Equal(t, syllabus.ClassDay{Title: "Intro", Content: "Read Ch.1"}, o.Modules[0].ClassDays[0])

	assert.True(t, syllabus.IsNotFound(setDay(o, 1, 2, "x", "y")))
	assert.True(t, syllabus.IsNotFound(setModule(o, 3, "x", "")))
}

func TestOutlineCommands(t *testing.T) {
	reg := syllabus.DefaultRegistry()
	path := filepath.Join(t.TempDir(), "draft.json")
	require.NoError(t, writeDraft(path, reg.NewState()))

	require.NoError(t, doAddModule(reg, path, "Week 1", "Basics"))
	require.NoError(t, doAddDay(reg, path, 1, "Intro", "Read Ch.1"))
	require.NoError(t, doAddModule(reg, path, "Week 2", ""))
	require.NoError(t, doSetModule(reg, path, 2, "", "Pricing"))
	require.NoError(t, doAddDay(reg, path, 2, "Price models", "Read Ch.2"))
	require.NoError(t, doSetDay(reg, path, 2, 1, "Pricing models", ""))

	s, err := readDraft(reg, path)
	require.NoError(t, err)
	o := s.Outline
	require.Equal(t, 2, o.Len())
	assert.Equal(t, "Week 1", o.Modules[0].Title)
	assert.Equal(t, "Basics", o.Modules[0].Description)
	assert.Equal(t, []syllabus.ClassDay{{Title: "Intro", Content: "Read Ch.1"}}, o.Modules[0].ClassDays)
	assert.Equal(t, "Pricing", o.Modules[1].Description)
	assert.Equal(t, []syllabus.ClassDay{{Title: "Pricing models", Content: "Read Ch.2"}}, o.Modules[1].ClassDays)
	assert.True(t, o.IsNonEmpty())

	assert.True(t, syllabus.IsInvariantViolation(doRmDay(reg, path, 1, 1)))
	require.NoError(t, doRmModule(reg, path, 1))
	s, err = readDraft(reg, path)
	require.NoError(t, err)
	assert.Equal(t, "Week 2", s.Outline.Modules[0].Title)
}
