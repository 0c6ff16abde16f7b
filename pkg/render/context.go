package render

import (
	"fmt"
	"image/color"

	"github.com/akeil/syllabus"
)

// Context holds layout parameters shared by the renderers.
type Context struct {
	// PageSize is the paper format for paged output, e.g. "A4" or "Letter".
	PageSize string
	// Margin is the page margin in mm.
	Margin float64
	// FontFamily is the PDF core font for all text.
	FontFamily string
	// Font sizes in pt.
	TitleSize    float64
	SubtitleSize float64
	SectionSize  float64
	BodySize     float64
	// HeadingColor is used for the title and section headings.
	HeadingColor color.RGBA
	// Producer is written to the document properties.
	Producer string
}

// DefaultContext returns the standard layout: A4 with 20mm margins and
// purple headings.
func DefaultContext() *Context {
	return &Context{
		PageSize:     "A4",
		Margin:       20,
		FontFamily:   "helvetica",
		TitleSize:    18,
		SubtitleSize: 14,
		SectionSize:  14,
		BodySize:     11,
		HeadingColor: color.RGBA{87, 6, 140, 255},
		Producer:     "syllabus",
	}
}

// headingSize returns the font size for a heading level.
func (c *Context) headingSize(level int) float64 {
	switch level {
	case syllabus.LevelTitle:
		return c.TitleSize
	case syllabus.LevelSubtitle:
		return c.SubtitleSize
	case syllabus.LevelSection:
		return c.SectionSize
	default:
		return c.BodySize
	}
}

// colorHex formats the heading color for office documents, e.g. "57068C".
func (c *Context) colorHex() string {
	h := c.HeadingColor
	return fmt.Sprintf("%02X%02X%02X", h.R, h.G, h.B)
}

func (c *Context) colorCSS() string {
	return "#" + c.colorHex()
}
