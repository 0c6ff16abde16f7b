package render

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/akeil/syllabus"
	"github.com/akeil/syllabus/internal/logging"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// paragraph styles by heading level
var docxStyles = map[int]string{
	syllabus.LevelTitle:      "Title",
	syllabus.LevelSubtitle:   "Subtitle",
	syllabus.LevelSection:    "Heading1",
	syllabus.LevelSubsection: "Heading2",
}

type docxRenderer struct {
	c *Context
}

// NewDocx creates a renderer for Word documents (Office Open XML).
func NewDocx(c *Context) Renderer {
	return &docxRenderer{c: c}
}

func (d *docxRenderer) Name() string        { return "docx" }
func (d *docxRenderer) ContentType() string { return docxContentType }
func (d *docxRenderer) Extension() string   { return "docx" }

func (d *docxRenderer) Render(ctx context.Context, blocks []syllabus.Block, meta Meta) ([]byte, error) {
	err := ctx.Err()
	if err != nil {
		return nil, err
	}

	logging.Debug("Render DOCX with %d blocks", len(blocks))
	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/styles.xml", d.styles()},
		{"word/document.xml", d.document(blocks)},
		{"docProps/core.xml", d.core(meta)},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, err
		}
		_, err = w.Write([]byte(p.data))
		if err != nil {
			return nil, err
		}
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *docxRenderer) document(blocks []syllabus.Block) string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for _, b := range blocks {
		switch x := b.(type) {
		case syllabus.Heading:
			style, ok := docxStyles[x.Level]
			if !ok {
				style = "Heading2"
			}
			sb.WriteString(`<w:p><w:pPr><w:pStyle w:val="` + style + `"/></w:pPr>`)
			writeRun(&sb, x.Text, false)
			sb.WriteString(`</w:p>`)
		case syllabus.Paragraph:
			sb.WriteString(`<w:p>`)
			if x.Label != "" {
				writeRun(&sb, x.Label+": ", true)
			}
			text := x.Text
			if text == "" {
				text = " "
			}
			writeRun(&sb, text, false)
			sb.WriteString(`</w:p>`)
		case syllabus.Table:
			writeTable(&sb, x)
		}
	}

	sb.WriteString(`<w:sectPr>`)
	sb.WriteString(d.pageSize())
	m := mmToTwips(d.c.Margin)
	fmt.Fprintf(&sb, `<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="708" w:footer="708" w:gutter="0"/>`, m, m, m, m)
	sb.WriteString(`</w:sectPr></w:body></w:document>`)
	return sb.String()
}

func writeTable(sb *strings.Builder, t syllabus.Table) {
	sb.WriteString(`<w:tbl><w:tblPr><w:tblStyle w:val="TableGrid"/><w:tblW w:w="5000" w:type="pct"/></w:tblPr>`)
	sb.WriteString(`<w:tblGrid><w:gridCol w:w="3000"/><w:gridCol w:w="6000"/></w:tblGrid>`)

	sb.WriteString(`<w:tr><w:trPr><w:tblHeader/></w:trPr>`)
	for _, h := range t.Header {
		writeCell(sb, h, true)
	}
	sb.WriteString(`</w:tr>`)

	for _, row := range t.Rows {
		sb.WriteString(`<w:tr>`)
		for i, cell := range row {
			// the first column holds the class day title
			writeCell(sb, cell, i == 0)
		}
		sb.WriteString(`</w:tr>`)
	}
	sb.WriteString(`</w:tbl>`)
}

// writeCell writes one paragraph per line of text.
func writeCell(sb *strings.Builder, text string, bold bool) {
	sb.WriteString(`<w:tc>`)
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString(`<w:p>`)
		writeRun(sb, line, bold)
		sb.WriteString(`</w:p>`)
	}
	sb.WriteString(`</w:tc>`)
}

func writeRun(sb *strings.Builder, text string, bold bool) {
	sb.WriteString(`<w:r>`)
	if bold {
		sb.WriteString(`<w:rPr><w:b/></w:rPr>`)
	}
	sb.WriteString(`<w:t xml:space="preserve">`)
	sb.WriteString(escapeXML(text))
	sb.WriteString(`</w:t></w:r>`)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	// only fails if the writer does
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func (d *docxRenderer) pageSize() string {
	// sizes in twips
	switch strings.ToLower(d.c.PageSize) {
	case "letter":
		return `<w:pgSz w:w="12240" w:h="15840"/>`
	case "legal":
		return `<w:pgSz w:w="12240" w:h="20160"/>`
	case "a5":
		return `<w:pgSz w:w="8391" w:h="11906"/>`
	default:
		return `<w:pgSz w:w="11906" w:h="16838"/>`
	}
}

func mmToTwips(mm float64) int {
	return int(mm * 1440 / 25.4)
}

func (d *docxRenderer) styles() string {
	color := d.c.colorHex()
	halfPt := func(pt float64) int { return int(pt * 2) }

	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)
	fmt.Fprintf(&sb, `<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"/><w:sz w:val="%d"/></w:rPr></w:rPrDefault></w:docDefaults>`, halfPt(d.c.BodySize))
	sb.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:pPr><w:spacing w:after="120"/></w:pPr></w:style>`)

	heading := func(id, name string, size float64, bold bool, after int) {
		b := ""
		if bold {
			b = "<w:b/>"
		}
		fmt.Fprintf(&sb, `<w:style w:type="paragraph" w:styleId="%v"><w:name w:val="%v"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:pPr><w:keepNext/><w:spacing w:before="240" w:after="%d"/></w:pPr><w:rPr>%v<w:color w:val="%v"/><w:sz w:val="%d"/></w:rPr></w:style>`,
			id, name, after, b, color, halfPt(size))
	}
	heading("Title", "Title", d.c.TitleSize, true, 120)
	heading("Subtitle", "Subtitle", d.c.SubtitleSize, false, 240)
	heading("Heading1", "heading 1", d.c.SectionSize, true, 120)
	heading("Heading2", "heading 2", d.c.BodySize, true, 60)

	sb.WriteString(`<w:style w:type="table" w:styleId="TableGrid"><w:name w:val="Table Grid"/><w:tblPr><w:tblBorders>`)
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		fmt.Fprintf(&sb, `<w:%v w:val="single" w:sz="4" w:space="0" w:color="auto"/>`, side)
	}
	sb.WriteString(`</w:tblBorders></w:tblPr></w:style>`)
	sb.WriteString(`</w:styles>`)
	return sb.String()
}

func (d *docxRenderer) core(meta Meta) string {
	created := meta.Created
	if created.IsZero() {
		created = time.Now()
	}
	ts := created.UTC().Format(time.RFC3339)

	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	sb.WriteString(`<dc:title>` + escapeXML(meta.Title) + `</dc:title>`)
	sb.WriteString(`<dc:subject>` + escapeXML(meta.Subject) + `</dc:subject>`)
	sb.WriteString(`<dc:creator>` + escapeXML(meta.Author) + `</dc:creator>`)
	sb.WriteString(`<cp:lastModifiedBy>` + escapeXML(d.c.Producer) + `</cp:lastModifiedBy>`)
	sb.WriteString(`<dcterms:created xsi:type="dcterms:W3CDTF">` + ts + `</dcterms:created>`)
	sb.WriteString(`<dcterms:modified xsi:type="dcterms:W3CDTF">` + ts + `</dcterms:modified>`)
	sb.WriteString(`</cp:coreProperties>`)
	return sb.String()
}

const docxContentTypes = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`</Types>`

const docxRels = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`</Relationships>`

const docxDocumentRels = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`
