package errors

import (
	e "errors"
	"fmt"
	"strings"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

type notFound struct {
	message string
}

// NewNotFound creates a new "not found" error.
func NewNotFound(s string, v ...interface{}) error {
	return asNotFound(fmt.Errorf(s, v...))
}

func (n notFound) Error() string {
	return n.message
}

func asNotFound(err error) error {
	return notFound{fmt.Sprintf("Not found: %v", err)}
}

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	var nf notFound
	return e.As(err, &nf)
}

// ValidationError is returned when a syllabus lacks required content.
// It lists every missing field at once.
type ValidationError struct {
	// Missing holds the human readable labels of the missing fields,
	// in the order they were checked.
	Missing []string
	// Outline holds problems with the course outline.
	Outline []string
	// Problems holds any other reason the input was rejected.
	Problems []string
}

// NewValidationError creates a validation error with a single general
// problem from the given format string.
func NewValidationError(msg string, v ...interface{}) error {
	return &ValidationError{Problems: []string{fmt.Sprintf(msg, v...)}}
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, 2)
	if len(v.Missing) != 0 {
		parts = append(parts, "please fill in all required fields: "+strings.Join(v.Missing, ", "))
	}
	parts = append(parts, v.Outline...)
	parts = append(parts, v.Problems...)
	if len(parts) == 0 {
		return "validation failed"
	}
	return strings.Join(parts, "; ")
}

// Empty reports whether no problems were recorded.
func (v *ValidationError) Empty() bool {
	return len(v.Missing) == 0 && len(v.Outline) == 0 && len(v.Problems) == 0
}

// IsValidation checks if the given error is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return e.As(err, &v)
}

type invariantViolation struct {
	message string
}

// NewInvariantViolation creates an error for an operation that would break
// a structural rule, e.g. removing the last module of an outline.
func NewInvariantViolation(msg string, v ...interface{}) error {
	return invariantViolation{fmt.Sprintf(msg, v...)}
}

func (i invariantViolation) Error() string {
	return i.message
}

// IsInvariantViolation checks if the given error is an invariant violation.
func IsInvariantViolation(err error) bool {
	var iv invariantViolation
	return e.As(err, &iv)
}

// ParseError is returned for malformed input documents.
type ParseError struct {
	Err error
}

// NewParseError wraps the given cause in a ParseError.
func NewParseError(err error) error {
	return &ParseError{Err: err}
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON format: %v", p.Err)
}

func (p *ParseError) Unwrap() error {
	return p.Err
}

// IsParseError checks if the given error is a ParseError.
func IsParseError(err error) bool {
	var p *ParseError
	return e.As(err, &p)
}

// ExportError wraps a failure of an underlying renderer.
type ExportError struct {
	Format string
	Err    error
}

// NewExportError wraps the cause of a failed export for the given format.
func NewExportError(format string, err error) error {
	return &ExportError{Format: format, Err: err}
}

func (x *ExportError) Error() string {
	return fmt.Sprintf("error creating %v document: %v", x.Format, x.Err)
}

func (x *ExportError) Unwrap() error {
	return x.Err
}

// IsExportError checks if the given error is an ExportError.
func IsExportError(err error) bool {
	var x *ExportError
	return e.As(err, &x)
}
