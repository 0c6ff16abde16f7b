package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/syllabus"
	"github.com/akeil/syllabus/internal/logging"
)

type pdfRenderer struct {
	c *Context
}

// NewPDF creates a renderer for PDF documents.
func NewPDF(c *Context) Renderer {
	return &pdfRenderer{c: c}
}

func (p *pdfRenderer) Name() string        { return "pdf" }
func (p *pdfRenderer) ContentType() string { return "application/pdf" }
func (p *pdfRenderer) Extension() string   { return "pdf" }

func (p *pdfRenderer) Render(ctx context.Context, blocks []syllabus.Block, meta Meta) ([]byte, error) {
	err := ctx.Err()
	if err != nil {
		return nil, err
	}

	logging.Debug("Render PDF with %d blocks", len(blocks))
	w := newPDFWriter(p.c, meta)
	for _, b := range blocks {
		w.block(b)
	}

	var buf bytes.Buffer
	err = w.pdf.Output(&buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pdfWriter lays out blocks top to bottom with a running cursor.
type pdfWriter struct {
	c     *Context
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	y     float64
	pageH float64
	width float64
	prev  syllabus.Block
}

func newPDFWriter(c *Context, meta Meta) *pdfWriter {
	pdf := gofpdf.New("P", "mm", c.PageSize, "")
	pdf.SetMargins(c.Margin, c.Margin, c.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("{totalPages}")
	pdf.SetProducer(c.Producer, true)

	pdf.SetTitle(meta.Title, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetAuthor(meta.Author, true)
	if !meta.Created.IsZero() {
		pdf.SetCreationDate(meta.Created.UTC())
		pdf.SetModificationDate(meta.Created.UTC())
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-c.Margin / 2)
		pdf.SetFont(c.FontFamily, "", 8)
		pdf.SetTextColor(127, 127, 127)
		pdf.CellFormat(0, 5, pdfPageLabel(pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	return &pdfWriter{
		c:     c,
		pdf:   pdf,
		tr:    tr,
		y:     c.Margin,
		pageH: pageH,
		width: pageW - 2*c.Margin,
	}
}

func pdfPageLabel(n int) string {
	return fmt.Sprintf("%d / {totalPages}", n)
}

func (w *pdfWriter) block(b syllabus.Block) {
	c := w.c
	switch x := b.(type) {
	case syllabus.Heading:
		switch x.Level {
		case syllabus.LevelTitle:
			w.text(x.Text, c.TitleSize, true, true)
		case syllabus.LevelSubtitle:
			w.text(x.Text, c.SubtitleSize, false, true)
		case syllabus.LevelSection:
			if w.prev != nil {
				w.space(10)
			}
			w.text(x.Text, c.SectionSize, true, true)
			w.space(3)
		default:
			if _, ok := w.prev.(syllabus.Heading); !ok && w.prev != nil {
				w.space(5)
			}
			w.text(x.Text, c.headingSize(x.Level), true, false)
		}
	case syllabus.Paragraph:
		if h, ok := w.prev.(syllabus.Heading); ok && h.Level <= syllabus.LevelSubtitle {
			w.space(10)
		}
		w.text(x.String(), c.BodySize, false, false)
	case syllabus.Table:
		w.text(flatten(x), c.BodySize, false, false)
	}
	w.prev = b
}

func (w *pdfWriter) space(mm float64) {
	w.y += mm
}

// text writes wrapped lines, starting a new page whenever the next line
// would cross the bottom margin.
func (w *pdfWriter) text(s string, size float64, bold, colored bool) {
	style := ""
	if bold {
		style = "B"
	}
	w.pdf.SetFont(w.c.FontFamily, style, size)
	if colored {
		h := w.c.HeadingColor
		w.pdf.SetTextColor(int(h.R), int(h.G), int(h.B))
	} else {
		w.pdf.SetTextColor(0, 0, 0)
	}

	for _, line := range w.wrap(s) {
		if w.y+size/2 > w.pageH-w.c.Margin {
			w.pdf.AddPage()
			w.y = w.c.Margin
		}
		w.pdf.Text(w.c.Margin, w.y, line)
		w.y += size/2 + 2
	}
}

// wrap splits text into lines that fit the content width at the current
// font. The returned lines are already converted to the PDF code page.
func (w *pdfWriter) wrap(s string) []string {
	s = strings.TrimRight(s, "\n")
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, w.wrapLine(w.tr(para))...)
	}
	return lines
}

func (w *pdfWriter) wrapLine(s string) []string {
	words := strings.Split(s, " ")
	lines := make([]string, 0, 1)
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current == "" || w.pdf.GetStringWidth(candidate) <= w.width {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}

	// break words that are wider than the page
	out := make([]string, 0, len(lines)+1)
	for _, l := range append(lines, current) {
		for w.pdf.GetStringWidth(l) > w.width && len(l) > 1 {
			n := len(l) - 1
			for n > 1 && w.pdf.GetStringWidth(l[:n]) > w.width {
				n--
			}
			out = append(out, l[:n])
			l = l[n:]
		}
		out = append(out, l)
	}
	return out
}

// pages returns the number of pages written so far.
func (w *pdfWriter) pages() int {
	return w.pdf.PageNo()
}
