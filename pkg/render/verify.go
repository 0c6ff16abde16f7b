package render

import (
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/akeil/syllabus/internal/errors"
)

// VerifyPDF checks that rs holds a structurally valid PDF document.
func VerifyPDF(rs io.ReadSeeker) error {
	conf := pdfcpu.NewDefaultConfiguration()
	conf.ValidationMode = pdfcpu.ValidationRelaxed

	err := api.Validate(rs, conf)
	if err != nil {
		return errors.Wrap(err, "invalid PDF")
	}
	return nil
}
