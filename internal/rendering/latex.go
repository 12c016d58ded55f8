package rendering

import (
	"fmt"
	"os"
	"strings"
	"text/template"
)

// LaTeX templates use << >> delimiters so literal braces never collide with actions.
const (
	texLeftDelim  = "<<"
	texRightDelim = ">>"
)

// TemplateData represents the data passed to a LaTeX template. Every string
// is already escaped.
type TemplateData struct {
	Name         string
	Contact      string
	Margin       float64
	Serif        bool
	PrimaryColor string
	AccentColor  string
	Blocks       []Block
}

// RenderLaTeX renders the layout with the built-in LaTeX template.
func RenderLaTeX(l Layout) (string, error) {
	content, err := templateFiles.ReadFile("templates/resume.tex.tmpl")
	if err != nil {
		return "", &TemplateError{Message: "failed to read built-in template", Cause: err}
	}
	tmpl, err := newTeXTemplate(string(content))
	if err != nil {
		return "", err
	}
	return executeTeX(tmpl, l)
}

// RenderLaTeXFile renders the layout with a LaTeX template read from disk.
func RenderLaTeXFile(l Layout, templatePath string) (string, error) {
	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}
	return executeTeX(tmpl, l)
}

func executeTeX(tmpl *template.Template, l Layout) (string, error) {
	var result strings.Builder
	if err := tmpl.Execute(&result, buildTemplateData(l)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

// parseTemplate reads and parses a LaTeX template file
func parseTemplate(templatePath string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}
	return newTeXTemplate(string(content))
}

func newTeXTemplate(content string) (*template.Template, error) {
	tmpl, err := template.New("resume").
		Delims(texLeftDelim, texRightDelim).
		Funcs(template.FuncMap{"escape": EscapeLaTeX}).
		Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// buildTemplateData escapes a layout for LaTeX output.
func buildTemplateData(l Layout) *TemplateData {
	data := &TemplateData{
		Name:         EscapeLaTeX(l.Header.Name),
		Contact:      EscapeLaTeX(l.Header.Contact),
		Margin:       l.Style.PageMargin,
		Serif:        l.Style.DocumentFont == "Times",
		PrimaryColor: texColor(l.Style.PrimaryColor),
		AccentColor:  texColor(l.Style.AccentColor),
		Blocks:       make([]Block, 0, len(l.Blocks)),
	}

	for _, b := range l.Blocks {
		block := Block{
			Kind:  b.Kind,
			Title: EscapeLaTeX(b.Title),
			Text:  escapeParagraph(b.Text),
			Items: escapeAll(b.Items),
		}
		for _, e := range b.Entries {
			entry := Entry{
				Title:    EscapeLaTeX(e.Title),
				Subtitle: EscapeLaTeX(e.Subtitle),
				Text:     escapeParagraph(e.Text),
				Bullets:  escapeAll(e.Bullets),
			}
			for _, line := range e.Lines {
				entry.Lines = append(entry.Lines, Line{
					Kind:  line.Kind,
					Label: EscapeLaTeX(line.Label),
					Text:  EscapeLaTeX(line.Text),
					URL:   escapeURL(line.URL),
				})
			}
			block.Entries = append(block.Entries, entry)
		}
		data.Blocks = append(data.Blocks, block)
	}
	return data
}

func escapeAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = EscapeLaTeX(s)
	}
	return out
}

// escapeParagraph escapes text and turns its non-blank lines into forced line breaks.
func escapeParagraph(text string) string {
	lines := nonBlank(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"))
	for i, line := range lines {
		lines[i] = EscapeLaTeX(strings.TrimSpace(line))
	}
	return strings.Join(lines, "\\\\\n")
}

// escapeURL escapes only what \href cannot take literally.
func escapeURL(url string) string {
	if url == "" {
		return ""
	}
	return strings.NewReplacer(`\`, "", "{", `\%7B`, "}", `\%7D`, "#", `\#`, "%", `\%`).Replace(url)
}

// texColor converts "#2563eb" to the "2563EB" form xcolor's HTML model takes.
func texColor(hex string) string {
	return strings.ToUpper(strings.TrimPrefix(hex, "#"))
}
