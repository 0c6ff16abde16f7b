// Package render turns assembled syllabus content into documents.
//
// Every Renderer consumes the same sequence of blocks, so all formats show
// the same headings in the same order.
package render

import (
	"context"
	"strings"
	"time"

	"github.com/akeil/syllabus"
)

// Renderer produces a document in one output format.
type Renderer interface {
	// Name is the format name used to select the renderer, e.g. "pdf".
	Name() string
	// ContentType is the MIME type of the rendered document.
	ContentType() string
	// Extension is the file extension for the rendered document, without dot.
	Extension() string
	// Render writes the given blocks to a new document.
	Render(ctx context.Context, blocks []syllabus.Block, meta Meta) ([]byte, error)
}

// Meta holds document properties.
type Meta struct {
	Title   string
	Subject string
	Author  string
	Created time.Time
}

// MetaFor derives document properties from a form state.
func MetaFor(s *syllabus.FormState, created time.Time) Meta {
	return Meta{
		Title:   s.Get(syllabus.CourseTitle),
		Subject: s.Get(syllabus.CourseNumber),
		Author:  s.Get(syllabus.InstructorName),
		Created: created,
	}
}

// flatten renders a table the way the plain text outline does:
// a title line followed by the content, one blank line between rows.
func flatten(t syllabus.Table) string {
	var sb strings.Builder
	for i, row := range t.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, cell := range row {
			sb.WriteString(cell)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
