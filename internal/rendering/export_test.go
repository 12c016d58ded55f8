package rendering

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-editor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePDF struct {
	err    error
	layout Layout
}

func (f *fakePDF) Render(_ context.Context, l Layout) ([]byte, error) {
	f.layout = l
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	f, err = ParseFormat(" TeX ")
	require.NoError(t, err)
	assert.Equal(t, FormatTeX, f)

	_, err = ParseFormat("docx")
	var unsupported *UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
}

func TestExport_Formats(t *testing.T) {
	l := Compose(janeDoe(), modern(t))
	pdf := &fakePDF{}

	tests := []struct {
		format      Format
		contentType string
		contains    string
	}{
		{format: FormatPDF, contentType: "application/pdf", contains: "%PDF"},
		{format: FormatHTML, contentType: "text/html; charset=utf-8", contains: "<h1 class=\"header\">Jane Doe</h1>"},
		{format: FormatTeX, contentType: "application/x-tex; charset=utf-8", contains: `\begin{document}`},
		{format: FormatJSON, contentType: "application/json", contains: `"subtitle": "Acme | 2020-01 - Present"`},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			a, err := Export(context.Background(), l, tt.format, pdf)
			require.NoError(t, err)
			assert.Equal(t, tt.format, a.Format)
			assert.Equal(t, tt.contentType, a.ContentType)
			assert.Equal(t, "jane-doe-resume."+string(tt.format), a.Filename)
			assert.Contains(t, string(a.Data), tt.contains)
		})
	}
	assert.Equal(t, "Jane Doe", pdf.layout.Header.Name)
}

func TestExport_JSONLayoutRoundTrips(t *testing.T) {
	l := Compose(janeDoe(), modern(t))

	a, err := Export(context.Background(), l, FormatJSON, nil)
	require.NoError(t, err)

	var decoded Layout
	require.NoError(t, json.Unmarshal(a.Data, &decoded))
	assert.Equal(t, l, decoded)
}

func TestExport_PDFErrors(t *testing.T) {
	l := Compose(janeDoe(), modern(t))

	_, err := Export(context.Background(), l, FormatPDF, nil)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)

	cause := errors.New("chrome not found")
	_, err = Export(context.Background(), l, FormatPDF, &fakePDF{err: cause})
	assert.ErrorIs(t, err, cause)

	_, err = Export(context.Background(), l, Format("docx"), nil)
	var unsupported *UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
}

func TestExportAll(t *testing.T) {
	l := Compose(janeDoe(), modern(t))

	artifacts, err := ExportAll(context.Background(), l, Formats(), ExportOptions{PDF: &fakePDF{}})
	require.NoError(t, err)
	require.Len(t, artifacts, 4)
	for i, f := range Formats() {
		assert.Equal(t, f, artifacts[i].Format)
		assert.NotEmpty(t, artifacts[i].Data)
	}

	_, err = ExportAll(context.Background(), l, []Format{FormatHTML, FormatPDF}, ExportOptions{PDF: &fakePDF{err: errors.New("boom")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export pdf")
}

func TestExportWith_CustomTeXTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.tex")
	require.NoError(t, os.WriteFile(path, []byte(`\name{<<.Name>>}`), 0o644))

	a, err := ExportWith(context.Background(), Compose(janeDoe(), modern(t)), FormatTeX, ExportOptions{TeXTemplate: path})
	require.NoError(t, err)
	assert.Equal(t, `\name{Jane Doe}`, string(a.Data))
	assert.Equal(t, "jane-doe-resume.tex", a.Filename)

	_, err = ExportWith(context.Background(), Compose(janeDoe(), modern(t)), FormatTeX, ExportOptions{TeXTemplate: filepath.Join(t.TempDir(), "missing.tex")})
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "Jane Doe", want: "jane-doe-resume.pdf"},
		{name: "  José  O'Brien ", want: "jos-o-brien-resume.pdf"},
		{name: "", want: "resume.pdf"},
		{name: "!!!", want: "resume.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			r := types.NewResume()
			r.PersonalInfo.FullName = tt.name
			assert.Equal(t, tt.want, Filename(Compose(r, modern(t)), FormatPDF))
		})
	}
}
