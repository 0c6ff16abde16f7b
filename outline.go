package syllabus

import (
	"encoding/json"
	"html"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/akeil/syllabus/internal/errors"
)

// Column headers for the class day table of each module.
const (
	DayTitleHeader   = "Class Day & Title"
	DayContentHeader = "Readings, Assignments, and Activities"
)

// ModuleID is a handle for a module within an outline.
// It is not persisted; loading an outline assigns new ids.
type ModuleID string

// ClassDay is one scheduled session.
type ClassDay struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Complete reports whether both title and content are set.
func (c ClassDay) Complete() bool {
	return strings.TrimSpace(c.Title) != "" && strings.TrimSpace(c.Content) != ""
}

// Module is a labeled group of class days.
type Module struct {
	ID          ModuleID   `json:"-"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ClassDays   []ClassDay `json:"classDays"`
}

func newModule() *Module {
	return &Module{
		ID:        newModuleID(),
		ClassDays: []ClassDay{{}},
	}
}

func newModuleID() ModuleID {
	return ModuleID(uuid.New().String())
}

// Outline is the ordered list of modules of a course.
//
// An editable outline always keeps at least one module and every module
// keeps at least one class day.
type Outline struct {
	Modules []*Module `json:"modules"`
}

// NewOutline creates an outline with a single module holding one empty
// class day.
func NewOutline() *Outline {
	return &Outline{
		Modules: []*Module{newModule()},
	}
}

// Len returns the number of modules.
func (o *Outline) Len() int {
	return len(o.Modules)
}

// AddModule appends a new module with one empty class day.
func (o *Outline) AddModule() ModuleID {
	m := newModule()
	o.Modules = append(o.Modules, m)
	return m.ID
}

// Module returns the module with the given id.
func (o *Outline) Module(id ModuleID) (*Module, error) {
	_, m, err := o.find(id)
	return m, err
}

// ModuleAt returns the id of the module at the given (zero based) position.
func (o *Outline) ModuleAt(i int) (ModuleID, error) {
	if i < 0 || i >= len(o.Modules) {
		return "", errors.NewNotFound("no module at position %d", i+1)
	}
	return o.Modules[i].ID, nil
}

func (o *Outline) find(id ModuleID) (int, *Module, error) {
	for i, m := range o.Modules {
		if m.ID == id {
			return i, m, nil
		}
	}
	return -1, nil, errors.NewNotFound("no module with id %q", id)
}

// AddClassDay appends an empty class day to the given module.
func (o *Outline) AddClassDay(id ModuleID) error {
	m, err := o.Module(id)
	if err != nil {
		return err
	}
	m.ClassDays = append(m.ClassDays, ClassDay{})
	return nil
}

// RemoveModule deletes a module.
// The last remaining module cannot be removed.
func (o *Outline) RemoveModule(id ModuleID) error {
	i, _, err := o.find(id)
	if err != nil {
		return err
	}
	if len(o.Modules) <= 1 {
		return errors.NewInvariantViolation("You must have at least one module.")
	}
	o.Modules = append(o.Modules[:i], o.Modules[i+1:]...)
	return nil
}

// RemoveClassDay deletes the class day at index from the given module.
// The last class day of a module cannot be removed.
func (o *Outline) RemoveClassDay(id ModuleID, index int) error {
	m, err := o.Module(id)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(m.ClassDays) {
		return errors.NewNotFound("module %q has no class day %d", id, index+1)
	}
	if len(m.ClassDays) <= 1 {
		return errors.NewInvariantViolation("Each module must have at least one class day.")
	}
	m.ClassDays = append(m.ClassDays[:index], m.ClassDays[index+1:]...)
	return nil
}

// ToSerializable returns a trimmed copy of the outline that contains only
// complete class days and only modules with a title or at least one
// complete class day.
func (o *Outline) ToSerializable() Outline {
	out := Outline{Modules: make([]*Module, 0, len(o.Modules))}
	for _, m := range o.Modules {
		title := strings.TrimSpace(m.Title)
		days := make([]ClassDay, 0, len(m.ClassDays))
		for _, d := range m.ClassDays {
			if !d.Complete() {
				continue
			}
			days = append(days, ClassDay{
				Title:   strings.TrimSpace(d.Title),
				Content: strings.TrimSpace(d.Content),
			})
		}

		if title == "" && len(days) == 0 {
			continue
		}
		out.Modules = append(out.Modules, &Module{
			ID:          m.ID,
			Title:       title,
			Description: strings.TrimSpace(m.Description),
			ClassDays:   days,
		})
	}
	return out
}

// IsNonEmpty reports whether at least one class day has both a title and
// content. This is what marks the outline section as complete.
func (o *Outline) IsNonEmpty() bool {
	for _, m := range o.Modules {
		for _, d := range m.ClassDays {
			if d.Complete() {
				return true
			}
		}
	}
	return false
}

// HasModules reports whether the outline contains any module.
func (o *Outline) HasModules() bool {
	return len(o.Modules) != 0
}

// HasClassDays reports whether any module contains a class day,
// regardless of whether that day is filled in.
func (o *Outline) HasClassDays() bool {
	for _, m := range o.Modules {
		if len(m.ClassDays) != 0 {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the outline. Module ids are preserved.
func (o *Outline) Clone() *Outline {
	c := &Outline{Modules: make([]*Module, len(o.Modules))}
	for i, m := range o.Modules {
		days := make([]ClassDay, len(m.ClassDays))
		copy(days, m.ClassDays)
		c.Modules[i] = &Module{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			ClassDays:   days,
		}
	}
	return c
}

// RenderPlainText formats the outline as text.
//
// Each module starts with its title line and an optional description line,
// followed by a blank line. Each class day is written as its title line
// followed by its content. Class days are separated by a blank line,
// modules by two.
func (o *Outline) RenderPlainText() string {
	s := o.ToSerializable()
	var sb strings.Builder
	for i, m := range s.Modules {
		if i > 0 {
			sb.WriteString("\n\n")
		}

		if m.Title != "" {
			sb.WriteString(m.Title)
			sb.WriteString("\n")
			if m.Description != "" {
				sb.WriteString(m.Description)
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
		}

		for j, d := range m.ClassDays {
			if j > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(d.Title)
			sb.WriteString("\n")
			sb.WriteString(d.Content)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderMarkup formats the outline as an HTML fragment.
// Titled modules get a header block; modules with class days get a
// two-column table.
func (o *Outline) RenderMarkup() string {
	s := o.ToSerializable()
	var sb strings.Builder
	for _, m := range s.Modules {
		if m.Title != "" {
			sb.WriteString(`<div class="course-outline-module">`)
			sb.WriteString("<h4>" + html.EscapeString(m.Title) + "</h4>")
			if m.Description != "" {
				sb.WriteString("<p>" + html.EscapeString(m.Description) + "</p>")
			}
			sb.WriteString("</div>")
		}

		if len(m.ClassDays) == 0 {
			continue
		}
		sb.WriteString(`<table class="course-outline-table">`)
		sb.WriteString("<thead><tr>")
		sb.WriteString("<th>" + html.EscapeString(DayTitleHeader) + "</th>")
		sb.WriteString("<th>" + html.EscapeString(DayContentHeader) + "</th>")
		sb.WriteString("</tr></thead><tbody>")
		for _, d := range m.ClassDays {
			sb.WriteString("<tr>")
			sb.WriteString(`<td class="class-day-title-cell"><strong>` + html.EscapeString(d.Title) + "</strong></td>")
			sb.WriteString(`<td class="class-day-content-cell">` + lineBreaks(d.Content) + "</td>")
			sb.WriteString("</tr>")
		}
		sb.WriteString("</tbody></table>")
	}

	return markupPolicy().Sanitize(sb.String())
}

func lineBreaks(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = html.EscapeString(l)
	}
	return strings.Join(lines, "<br>")
}

var (
	markupPolicyOnce sync.Once
	outlinePolicy    *bluemonday.Policy
)

// markupPolicy allows exactly the elements RenderMarkup emits.
func markupPolicy() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		p := bluemonday.StrictPolicy()
		p.AllowElements("div", "h4", "p", "table", "thead", "tbody", "tr", "th", "td", "strong", "br")
		p.AllowAttrs("class").OnElements("div", "table", "td")
		outlinePolicy = p
	})
	return outlinePolicy
}

// MarshalJSON writes the trimmed outline as returned by ToSerializable.
// Blank modules and unfinished class days are not written.
func (o *Outline) MarshalJSON() ([]byte, error) {
	type plain Outline
	p := plain(o.ToSerializable())
	return json.Marshal(&p)
}

// UnmarshalJSON reads an outline and assigns fresh module ids.
func (o *Outline) UnmarshalJSON(b []byte) error {
	type plain Outline
	var p plain
	err := json.Unmarshal(b, &p)
	if err != nil {
		return err
	}

	modules := make([]*Module, 0, len(p.Modules))
	for _, m := range p.Modules {
		if m == nil {
			continue
		}
		m.ID = newModuleID()
		if m.ClassDays == nil {
			m.ClassDays = make([]ClassDay, 0)
		}
		modules = append(modules, m)
	}
	o.Modules = modules
	return nil
}
