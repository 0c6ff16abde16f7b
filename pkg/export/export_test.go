package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/akeil/syllabus"
	"github.com/akeil/syllabus/pkg/render"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeRenderer struct {
	name  string
	err   error
	panic bool
}

func (f *fakeRenderer) Name() string        { return f.name }
func (f *fakeRenderer) ContentType() string { return "text/plain" }
func (f *fakeRenderer) Extension() string   { return "txt" }

func (f *fakeRenderer) Render(ctx context.Context, blocks []syllabus.Block, meta render.Meta) ([]byte, error) {
	if f.panic {
		panic("out of memory")
	}
	if f.err != nil {
		return nil, f.err
	}
	return []byte(meta.Title), nil
}

func newExporter(t *testing.T, extra ...render.Renderer) *Exporter {
	t.Helper()
	renderers := render.NewDefaultRegistry(render.DefaultContext())
	for _, r := range extra {
		require.NoError(t, renderers.Register(r))
	}
	fixed := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	return New(syllabus.DefaultRegistry(), renderers, Options{
		Institution: "School of Business",
		Now:         func() time.Time { return fixed },
	})
}

func TestExport(t *testing.T) {
	e := newExporter(t)
	s := syllabus.SampleState(syllabus.DefaultRegistry())

	res, err := e.Export(context.Background(), s, "docx")
	require.NoError(t, err)
	assert.Equal(t, "docx", res.Format)
	assert.Equal(t, "MKTG-GB.2334.01_Syllabus.docx", res.Filename)
	assert.NotEmpty(t, res.Data)

	res, err = e.Export(context.Background(), s, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", res.ContentType)
}

func TestExportUnknownFormat(t *testing.T) {
	e := newExporter(t)
	s := syllabus.SampleState(syllabus.DefaultRegistry())

	_, err := e.Export(context.Background(), s, "odt")
	assert.True(t, syllabus.IsNotFound(err))
}

func TestExportValidation(t *testing.T) {
	e := newExporter(t)
	s := syllabus.SampleState(syllabus.DefaultRegistry())
	s.Unset(syllabus.CourseTitle)

	_, err := e.Export(context.Background(), s, "pdf")
	var v *syllabus.ValidationError
	require.True(t, errors.As(err, &v))
	assert.Equal(t, []string{"Course Title"}, v.Missing)
}

func TestExportRendererFailure(t *testing.T) {
	cause := errors.New("disk full")
	e := newExporter(t,
		&fakeRenderer{name: "broken", err: cause},
		&fakeRenderer{name: "panicky", panic: true},
	)
	s := syllabus.SampleState(syllabus.DefaultRegistry())
	before, err := syllabus.Serialize(s)
	require.NoError(t, err)

	_, err = e.Export(context.Background(), s, "broken")
	assert.True(t, syllabus.IsExportError(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "error creating broken document")

	_, err = e.Export(context.Background(), s, "panicky")
	assert.True(t, syllabus.IsExportError(err))
	assert.Contains(t, err.Error(), "out of memory")

	after, err := syllabus.Serialize(s)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after), "failed export changed the state")
}

func TestExportAll(t *testing.T) {
	e := newExporter(t, &fakeRenderer{name: "txt"})
	s := syllabus.SampleState(syllabus.DefaultRegistry())

	formats := []string{"pdf", "txt", "docx", "html", "md"}
	results, err := e.ExportAll(context.Background(), s, formats...)
	require.NoError(t, err)
	require.Len(t, results, len(formats))
	for i, f := range formats {
		assert.Equal(t, f, results[i].Format)
	}
	assert.Equal(t, "Strategic Marketing Management", string(results[1].Data))
}

func TestExportAllFailure(t *testing.T) {
	e := newExporter(t, &fakeRenderer{name: "broken", err: errors.New("boom")})
	s := syllabus.SampleState(syllabus.DefaultRegistry())

	results, err := e.ExportAll(context.Background(), s, "pdf", "broken", "docx")
	assert.Nil(t, results)
	assert.True(t, syllabus.IsExportError(err))
}

func TestDirSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sink := NewDirSink(dir)
	results := []Result{
		{Filename: "a_Syllabus.pdf", Data: []byte("pdf")},
		{Filename: "../b_Syllabus.docx", Data: []byte("docx")},
	}

	require.NoError(t, DeliverAll(sink, results))

	data, err := os.ReadFile(filepath.Join(dir, "a_Syllabus.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(data))

	_, err = os.Stat(filepath.Join(dir, "b_Syllabus.docx"))
	assert.NoError(t, err, "file names are confined to the directory")
}

func TestSinkFunc(t *testing.T) {
	var got []string
	sink := SinkFunc(func(r Result) error {
		got = append(got, r.Filename)
		return nil
	})

	require.NoError(t, DeliverAll(sink, []Result{{Filename: "x"}, {Filename: "y"}}))
	assert.Equal(t, []string{"x", "y"}, got)
}
