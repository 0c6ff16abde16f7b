package syllabus

// Heading levels used by the assembler.
const (
	LevelTitle      = 1
	LevelSubtitle   = 2
	LevelSection    = 3
	LevelSubsection = 4
)

// Block is a format-neutral unit of document content.
// It is one of Heading, Paragraph or Table.
type Block interface {
	block()
}

// Heading is a title line. Level 1 is the document title.
type Heading struct {
	Text  string
	Level int
}

// Paragraph is a single paragraph of text.
// If Label is set, the paragraph reads "Label: Text".
type Paragraph struct {
	Label string
	Text  string
}

// Table is a grid with a header row.
type Table struct {
	Header []string
	Rows   [][]string
}

func (Heading) block()   {}
func (Paragraph) block() {}
func (Table) block()     {}

// String returns the paragraph text including its label.
func (p Paragraph) String() string {
	if p.Label == "" {
		return p.Text
	}
	return p.Label + ": " + p.Text
}
