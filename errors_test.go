package syllabus

import (
	"errors"
	"testing"

	ierrors "github.com/akeil/syllabus/internal/errors"
)

func TestErrorKinds(t *testing.T) {
	err := errors.New("some error")
	if IsNotFound(err) || IsValidation(err) || IsParseError(err) || IsExportError(err) || IsInvariantViolation(err) {
		t.Errorf("plain error recognized as a custom kind")
	}

	err = ierrors.Wrap(ierrors.NewExportError("pdf", err), "export")
	if !IsExportError(err) {
		t.Errorf("wrapped export error not recognized")
	}

	var x *ExportError
	if !errors.As(err, &x) || x.Format != "pdf" {
		t.Errorf("export error has no format")
	}
}
