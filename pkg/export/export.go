// Package export produces syllabus documents from a form state.
package export

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/syllabus"
	"github.com/akeil/syllabus/internal/errors"
	"github.com/akeil/syllabus/internal/logging"
	"github.com/akeil/syllabus/pkg/render"
)

// Options configure an Exporter.
type Options struct {
	// Institution is printed below the course title.
	Institution string
	// Now returns the time used for document properties.
	// Defaults to time.Now.
	Now func() time.Time
}

// Result is a rendered document, ready to be handed to a Sink.
type Result struct {
	Format      string
	Filename    string
	ContentType string
	Data        []byte
}

// Exporter assembles and renders syllabus documents.
type Exporter struct {
	reg       *syllabus.Registry
	renderers *render.Registry
	opts      Options
}

// New creates an exporter for the given form layout and output formats.
func New(reg *syllabus.Registry, renderers *render.Registry, opts Options) *Exporter {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Exporter{
		reg:       reg,
		renderers: renderers,
		opts:      opts,
	}
}

// Formats lists the available output formats.
func (e *Exporter) Formats() []string {
	return e.renderers.List()
}

// Export renders the state in the given format.
//
// The export works on a snapshot of s; later changes to s do not affect it
// and s is never modified. Missing content is reported as a
// *ValidationError, a failing renderer as an *ExportError.
func (e *Exporter) Export(ctx context.Context, s *syllabus.FormState, format string) (Result, error) {
	return e.export(ctx, s.Clone(), format)
}

func (e *Exporter) export(ctx context.Context, snapshot *syllabus.FormState, format string) (Result, error) {
	r, err := e.renderers.Get(format)
	if err != nil {
		return Result{}, err
	}

	blocks, err := syllabus.Assemble(e.reg, snapshot, syllabus.AssembleOptions{
		Institution: e.opts.Institution,
	})
	if err != nil {
		return Result{}, err
	}

	meta := render.MetaFor(snapshot, e.opts.Now())

	var data []byte
	err = dontPanic(func() error {
		var rerr error
		data, rerr = r.Render(ctx, blocks, meta)
		return rerr
	})
	if err != nil {
		logging.Warning("Export as %v failed: %v", format, err)
		return Result{}, errors.NewExportError(format, err)
	}

	res := Result{
		Format:      format,
		Filename:    syllabus.ExportFilename(snapshot.Get(syllabus.CourseNumber), r.Extension()),
		ContentType: r.ContentType(),
		Data:        data,
	}
	logging.Info("Exported %q (%d bytes)", res.Filename, len(res.Data))
	return res, nil
}

// ExportAll renders the state in several formats concurrently.
// Results are returned in the order of the requested formats.
// The first failure cancels the remaining exports.
func (e *Exporter) ExportAll(ctx context.Context, s *syllabus.FormState, formats ...string) ([]Result, error) {
	results := make([]Result, len(formats))
	g, ctx := errgroup.WithContext(ctx)
	for i, format := range formats {
		i, format := i, format
		// each export gets its own snapshot
		snapshot := s.Clone()
		g.Go(func() error {
			res, err := e.export(ctx, snapshot, format)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}
	return results, nil
}

// dontPanic runs f and converts a panic into an error.
func dontPanic(f func() error) (err error) {
	defer func() {
		x := recover()
		if x != nil {
			logging.Warning("Panic occurred (recovered): %v", x)
			err = fmt.Errorf("recovered from: %v", x)
		}
	}()

	return f()
}
