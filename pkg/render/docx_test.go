package render

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type docxParagraph struct {
	Style string
	Text  string
}

// readDocx returns the paragraphs of word/document.xml and the number of
// tables it contains.
func readDocx(t *testing.T, data []byte) ([]docxParagraph, int) {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var body []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		body, err = io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
	}
	require.NotEmpty(t, body, "no document part")

	var (
		paras  []docxParagraph
		cur    *docxParagraph
		tables int
		inText bool
	)
	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		switch x := tok.(type) {
		case xml.StartElement:
			switch x.Name.Local {
			case "tbl":
				tables++
			case "p":
				cur = &docxParagraph{}
			case "pStyle":
				for _, a := range x.Attr {
					if a.Name.Local == "val" && cur != nil {
						cur.Style = a.Value
					}
				}
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch x.Name.Local {
			case "p":
				if cur != nil {
					paras = append(paras, *cur)
				}
				cur = nil
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText && cur != nil {
				cur.Text += string(x)
			}
		}
	}
	return paras, tables
}

func TestDocx(t *testing.T) {
	blocks, meta := sampleBlocks(t)
	r := NewDocx(DefaultContext())

	data, err := r.Render(context.Background(), blocks, meta)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	for _, part := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml", "word/styles.xml", "docProps/core.xml"} {
		assert.Contains(t, names, part)
	}

	paras, tables := readDocx(t, data)
	assert.Equal(t, 3, tables, "one table per module")
	require.NotEmpty(t, paras)
	assert.Equal(t, docxParagraph{Style: "Title", Text: "Strategic Marketing Management"}, paras[0])
	assert.Equal(t, docxParagraph{Style: "Subtitle", Text: "School of Business"}, paras[1])
	assert.Equal(t, "Course Number / Section: MKTG-GB.2334.01", paras[2].Text)

	var sections []string
	for _, p := range paras {
		if p.Style == "Heading1" {
			sections = append(sections, p.Text)
		}
	}
	assert.Contains(t, sections, "General Conduct & Behavior")
	assert.Equal(t, "Course Description", sections[0])
	assert.Equal(t, "AI Guidance", sections[len(sections)-1])

	// blank lines in multi-line fields stay visible
	var blank int
	for _, p := range paras {
		if p.Text == " " {
			blank++
		}
	}
	assert.Greater(t, blank, 0)
}

func TestDocxEscapes(t *testing.T) {
	blocks, meta := sampleBlocks(t)
	meta.Title = `Q&A <Session>`
	r := NewDocx(DefaultContext())

	data, err := r.Render(context.Background(), blocks, meta)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != "docProps/core.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		core, _ := io.ReadAll(rc)
		rc.Close()
		assert.True(t, strings.Contains(string(core), "Q&amp;A &lt;Session&gt;"), string(core))
	}
}
