package rendering

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Format is an export file format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
	FormatTeX  Format = "tex"
	FormatJSON Format = "json"
)

var contentTypes = map[Format]string{
	FormatPDF:  "application/pdf",
	FormatHTML: "text/html; charset=utf-8",
	FormatTeX:  "application/x-tex; charset=utf-8",
	FormatJSON: "application/json",
}

// Formats returns the supported export formats, PDF first.
func Formats() []Format {
	return []Format{FormatPDF, FormatHTML, FormatTeX, FormatJSON}
}

// ParseFormat validates a format name. Empty selects PDF.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return FormatPDF, nil
	}
	if _, ok := contentTypes[f]; !ok {
		return "", &UnsupportedFormatError{Format: name}
	}
	return f, nil
}

// UnsupportedFormatError reports an unknown export format.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format: %s", e.Format)
}

// Artifact is one exported file.
type Artifact struct {
	Format      Format
	Filename    string
	ContentType string
	Data        []byte
}

// ExportOptions selects the renderers behind each format.
type ExportOptions struct {
	// PDF is only used for FormatPDF.
	PDF PDFRenderer
	// TeXTemplate is a template file replacing the built-in LaTeX template.
	TeXTemplate string
}

// Export renders the layout in one format. pdf is only used for FormatPDF.
func Export(ctx context.Context, l Layout, format Format, pdf PDFRenderer) (Artifact, error) {
	return ExportWith(ctx, l, format, ExportOptions{PDF: pdf})
}

// ExportWith renders the layout in one format using opts.
func ExportWith(ctx context.Context, l Layout, format Format, opts ExportOptions) (Artifact, error) {
	var data []byte
	switch format {
	case FormatPDF:
		pdf := opts.PDF
		if pdf == nil {
			return Artifact{}, &RenderError{Message: "no PDF renderer configured"}
		}
		out, err := pdf.Render(ctx, l)
		if err != nil {
			return Artifact{}, err
		}
		data = out
	case FormatHTML:
		out, err := RenderHTML(l)
		if err != nil {
			return Artifact{}, err
		}
		data = []byte(out)
	case FormatTeX:
		render := RenderLaTeX
		if opts.TeXTemplate != "" {
			render = func(l Layout) (string, error) { return RenderLaTeXFile(l, opts.TeXTemplate) }
		}
		out, err := render(l)
		if err != nil {
			return Artifact{}, err
		}
		data = []byte(out)
	case FormatJSON:
		out, err := json.MarshalIndent(l, "", "  ")
		if err != nil {
			return Artifact{}, &RenderError{Message: "failed to encode layout", Cause: err}
		}
		data = out
	default:
		return Artifact{}, &UnsupportedFormatError{Format: string(format)}
	}

	return Artifact{
		Format:      format,
		Filename:    Filename(l, format),
		ContentType: contentTypes[format],
		Data:        data,
	}, nil
}

// ExportAll renders several formats concurrently. Results keep the order of formats.
func ExportAll(ctx context.Context, l Layout, formats []Format, opts ExportOptions) ([]Artifact, error) {
	artifacts := make([]Artifact, len(formats))
	g, ctx := errgroup.WithContext(ctx)
	for i, format := range formats {
		g.Go(func() error {
			a, err := ExportWith(ctx, l, format, opts)
			if err != nil {
				return fmt.Errorf("export %s: %w", format, err)
			}
			artifacts[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Filename derives the download name from the résumé owner, e.g.
// "jane-doe-resume.pdf". Without a usable name it is "resume.<ext>".
func Filename(l Layout, format Format) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(l.Header.Name), "-"), "-")
	if slug == "" {
		return "resume." + string(format)
	}
	return slug + "-resume." + string(format)
}
