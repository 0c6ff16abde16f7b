package syllabus

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Label derives a human readable name from a field identifier.
// It inserts a space before each upper case letter and capitalizes the
// first letter, e.g. "instructorName" becomes "Instructor Name".
func Label(id FieldID) string {
	s := string(id)
	if s == "" {
		return ""
	}

	var sb strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			sb.WriteRune(' ')
		}
		sb.WriteRune(r)
	}

	out := sb.String()
	first, size := utf8.DecodeRuneInString(out)
	return string(unicode.ToUpper(first)) + out[size:]
}
