package export

import (
	"path/filepath"

	"github.com/akeil/syllabus/internal/fs"
	"github.com/akeil/syllabus/internal/logging"
)

// Sink receives finished documents, e.g. to store or download them.
type Sink interface {
	Deliver(r Result) error
}

// DirSink writes documents to a directory.
type DirSink struct {
	Dir string
}

// NewDirSink creates a Sink that writes to dir, creating it if needed.
func NewDirSink(dir string) *DirSink {
	return &DirSink{Dir: dir}
}

// Deliver writes the document under its filename, replacing an existing file.
func (d *DirSink) Deliver(r Result) error {
	path := d.Path(r)
	logging.Debug("Write %q", path)
	return fs.WriteFile(path, r.Data)
}

// Path returns where the given result is written.
func (d *DirSink) Path(r Result) string {
	return filepath.Join(d.Dir, filepath.Base(r.Filename))
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(r Result) error

// Deliver calls f(r).
func (f SinkFunc) Deliver(r Result) error {
	return f(r)
}

// DeliverAll hands every result to the sink and stops at the first error.
func DeliverAll(s Sink, results []Result) error {
	for _, r := range results {
		err := s.Deliver(r)
		if err != nil {
			return err
		}
	}
	return nil
}
