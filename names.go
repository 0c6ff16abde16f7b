package syllabus

import (
	"fmt"
	"strings"
	"time"
)

// ExportFilename returns the file name for an exported document,
// e.g. "MKTG-101_Syllabus.docx".
func ExportFilename(courseNumber, ext string) string {
	return fmt.Sprintf("%v_Syllabus.%v", cleanName(courseNumber), strings.TrimPrefix(ext, "."))
}

// DraftFilename returns the file name for a saved draft,
// e.g. "syllabus_MKTG-101_2024-01-31.json".
// The date is taken from t in UTC.
func DraftFilename(courseNumber string, t time.Time) string {
	return fmt.Sprintf("syllabus_%v_%v.json", cleanName(courseNumber), t.UTC().Format("2006-01-02"))
}

var nameReplacer = strings.NewReplacer("/", "-", "\\", "-")

func cleanName(courseNumber string) string {
	s := strings.TrimSpace(courseNumber)
	if s == "" {
		return "draft"
	}
	return nameReplacer.Replace(s)
}
