package render

import (
	"context"
	"strings"

	"github.com/akeil/syllabus"
	"github.com/akeil/syllabus/internal/logging"
)

type markdownRenderer struct {
	c *Context
}

// NewMarkdown creates a renderer for Markdown text.
func NewMarkdown(c *Context) Renderer {
	return &markdownRenderer{c: c}
}

func (m *markdownRenderer) Name() string        { return "md" }
func (m *markdownRenderer) ContentType() string { return "text/markdown; charset=utf-8" }
func (m *markdownRenderer) Extension() string   { return "md" }

func (m *markdownRenderer) Render(ctx context.Context, blocks []syllabus.Block, meta Meta) ([]byte, error) {
	err := ctx.Err()
	if err != nil {
		return nil, err
	}

	logging.Debug("Render Markdown with %d blocks", len(blocks))
	var sb strings.Builder
	for _, b := range blocks {
		switch x := b.(type) {
		case syllabus.Heading:
			level := x.Level
			if level < 1 || level > 6 {
				level = 4
			}
			sb.WriteString(strings.Repeat("#", level) + " " + mdEscape(x.Text) + "\n\n")
		case syllabus.Paragraph:
			if strings.TrimSpace(x.Text) == "" && x.Label == "" {
				// blank line in the source text
				sb.WriteString("&nbsp;\n\n")
				continue
			}
			if x.Label != "" {
				sb.WriteString("**" + mdEscape(x.Label) + ":** ")
			}
			sb.WriteString(mdEscape(x.Text) + "\n\n")
		case syllabus.Table:
			writeMarkdownTable(&sb, x)
		}
	}
	return []byte(sb.String()), nil
}

func writeMarkdownTable(sb *strings.Builder, t syllabus.Table) {
	cells := func(row []string) {
		sb.WriteString("|")
		for _, c := range row {
			c = strings.ReplaceAll(mdEscape(c), "|", `\|`)
			c = strings.ReplaceAll(c, "\n", "<br>")
			sb.WriteString(" " + c + " |")
		}
		sb.WriteString("\n")
	}

	cells(t.Header)
	sb.WriteString("|")
	for range t.Header {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")
	for _, row := range t.Rows {
		cells(row)
	}
	sb.WriteString("\n")
}

var mdReplacer = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"#", `\#`,
	"<", "&lt;",
)

// mdEscape escapes characters that would change the formatting.
func mdEscape(s string) string {
	return mdReplacer.Replace(s)
}
