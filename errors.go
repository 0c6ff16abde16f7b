package syllabus

import (
	"github.com/akeil/syllabus/internal/errors"
)

// ValidationError lists the content that is missing before a syllabus can
// be exported.
type ValidationError = errors.ValidationError

// ParseError is returned when a draft cannot be read.
type ParseError = errors.ParseError

// ExportError wraps a failure of a document renderer.
type ExportError = errors.ExportError

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.IsNotFound(err)
}

// IsValidation checks if the given error is a *ValidationError.
func IsValidation(err error) bool {
	return errors.IsValidation(err)
}

// IsInvariantViolation checks if err was caused by an attempt to remove the
// last module or class day of an outline.
func IsInvariantViolation(err error) bool {
	return errors.IsInvariantViolation(err)
}

// IsParseError checks if the given error is a *ParseError.
func IsParseError(err error) bool {
	return errors.IsParseError(err)
}

// IsExportError checks if the given error is an *ExportError.
func IsExportError(err error) bool {
	return errors.IsExportError(err)
}
