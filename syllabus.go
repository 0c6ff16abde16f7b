// Package syllabus holds the model of a course syllabus form:
// the field registry, the course outline, completion tracking
// and the assembly of format-neutral document content.
package syllabus

import (
	"strings"

	"github.com/akeil/syllabus/internal/logging"
)

// SetLogLevel sets the log level by name.
// Unknown names disable logging.
func SetLogLevel(level string) {
	var lvl logging.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = logging.LevelDebug
	case "info":
		lvl = logging.LevelInfo
	case "warning", "warn":
		lvl = logging.LevelWarning
	case "error":
		lvl = logging.LevelError
	default:
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}
