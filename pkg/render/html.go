package render

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/akeil/syllabus"
	"github.com/akeil/syllabus/internal/logging"
)

type htmlRenderer struct {
	c *Context
}

// NewHTML creates a renderer for a standalone HTML preview page.
func NewHTML(c *Context) Renderer {
	return &htmlRenderer{c: c}
}

func (h *htmlRenderer) Name() string        { return "html" }
func (h *htmlRenderer) ContentType() string { return "text/html; charset=utf-8" }
func (h *htmlRenderer) Extension() string   { return "html" }

func (h *htmlRenderer) Render(ctx context.Context, blocks []syllabus.Block, meta Meta) ([]byte, error) {
	err := ctx.Err()
	if err != nil {
		return nil, err
	}

	logging.Debug("Render HTML with %d blocks", len(blocks))
	var body strings.Builder
	for _, b := range blocks {
		switch x := b.(type) {
		case syllabus.Heading:
			level := x.Level
			if level < 1 || level > 6 {
				level = 4
			}
			fmt.Fprintf(&body, "<h%d>%v</h%d>\n", level, html.EscapeString(x.Text), level)
		case syllabus.Paragraph:
			body.WriteString("<p>")
			if x.Label != "" {
				body.WriteString("<strong>" + html.EscapeString(x.Label) + ":</strong> ")
			}
			body.WriteString(html.EscapeString(x.Text))
			body.WriteString("</p>\n")
		case syllabus.Table:
			writeHTMLTable(&body, x)
		}
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>" + html.EscapeString(meta.Title) + "</title>\n")
	sb.WriteString("<style>\n" + h.css() + "</style>\n")
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(htmlPolicy().Sanitize(body.String()))
	sb.WriteString("</body>\n</html>\n")
	return []byte(sb.String()), nil
}

func writeHTMLTable(sb *strings.Builder, t syllabus.Table) {
	sb.WriteString(`<table class="course-outline-table"><thead><tr>`)
	for _, h := range t.Header {
		sb.WriteString("<th>" + html.EscapeString(h) + "</th>")
	}
	sb.WriteString("</tr></thead><tbody>")
	for _, row := range t.Rows {
		sb.WriteString("<tr>")
		for i, cell := range row {
			text := strings.ReplaceAll(html.EscapeString(cell), "\n", "<br>")
			if i == 0 {
				text = "<strong>" + text + "</strong>"
			}
			sb.WriteString("<td>" + text + "</td>")
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</tbody></table>\n")
}

func (h *htmlRenderer) css() string {
	c := h.c.colorCSS()
	return fmt.Sprintf(`body { font-family: Arial, sans-serif; line-height: 1.6; max-width: 800px; margin: 0 auto; padding: 20px; }
h1, h2, h3 { color: %v; }
h1 { font-size: %vpt; margin-bottom: 0; }
h2 { font-size: %vpt; font-weight: normal; margin-top: 0; }
h3 { font-size: %vpt; border-bottom: 1px solid %v; }
table { border-collapse: collapse; width: 100%%; margin: 10px 0; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; vertical-align: top; }
th { background-color: #f5f5f5; }
`, c, h.c.TitleSize, h.c.SubtitleSize, h.c.SectionSize, c)
}

var (
	htmlPolicyOnce sync.Once
	bodyPolicy     *bluemonday.Policy
)

// htmlPolicy allows the elements the renderer emits.
func htmlPolicy() *bluemonday.Policy {
	htmlPolicyOnce.Do(func() {
		p := bluemonday.StrictPolicy()
		p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6", "p", "strong", "table", "thead", "tbody", "tr", "th", "td", "br")
		p.AllowAttrs("class").OnElements("table")
		bodyPolicy = p
	})
	return bodyPolicy
}
