package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// PlaceholderName stands in for an empty name in the preview.
const PlaceholderName = "Your Name"

var htmlTemplate = template.Must(template.ParseFS(templateFiles, "templates/document.html.tmpl"))

type htmlData struct {
	Title   string
	Name    string
	Preview bool
	CSS     template.CSS
	Layout  Layout
}

// RenderHTML renders the layout as a standalone printable page.
func RenderHTML(l Layout) (string, error) {
	return renderHTML(l, false)
}

// RenderPreview renders the read-only preview markup. Unlike RenderHTML it
// shows PlaceholderName when the name is empty.
func RenderPreview(l Layout) (string, error) {
	return renderHTML(l, true)
}

func renderHTML(l Layout, preview bool) (string, error) {
	name := l.Header.Name
	if preview && strings.TrimSpace(name) == "" {
		name = PlaceholderName
	}
	title := "Resume"
	if strings.TrimSpace(l.Header.Name) != "" {
		title = l.Header.Name + " - Resume"
	}

	var out strings.Builder
	err := htmlTemplate.Execute(&out, htmlData{
		Title:   title,
		Name:    name,
		Preview: preview,
		CSS:     stylesheet(l.Style, preview),
		Layout:  l,
	})
	if err != nil {
		return "", &TemplateError{Message: "failed to execute HTML template", Cause: err}
	}
	return out.String(), nil
}

// stylesheet builds the CSS for a style configuration. Every value comes from
// the fixed token tables in styles.go.
func stylesheet(s StyleConfig, preview bool) template.CSS {
	var sb strings.Builder

	fmt.Fprintf(&sb, "@page { size: A4; margin: %gpt; }\n", s.PageMargin)
	fmt.Fprintf(&sb, "body { margin: 0; font-family: %s; font-size: 11pt; color: #111827; }\n", s.FontStack)
	if preview {
		fmt.Fprintf(&sb, ".resume.preview { max-width: 210mm; margin: 0 auto; padding: %gpt; background: #fff; }\n", s.PageMargin)
	}
	sb.WriteString(".text { white-space: pre-line; margin: 4pt 0; }\n")
	sb.WriteString(".block { margin-top: 12pt; }\n")
	sb.WriteString(".entry { margin-bottom: 8pt; }\n")
	sb.WriteString(".bullets, .items { margin: 4pt 0; padding-left: 16pt; }\n")
	sb.WriteString("h1, h2, h3, p { margin: 0; }\n")

	for _, c := range []struct{ class, style string }{
		{"header", StyleHeader},
		{"subheader", StyleSubheader},
		{"section-header", StyleSectionHeader},
		{"job-title", StyleJobTitle},
		{"date", StyleDate},
		{"technologies", StyleTechnologies},
		{"link", StyleLink},
	} {
		sb.WriteString(cssRule("."+c.class, s.Styles[c.style]))
	}
	sb.WriteString(".link a { color: inherit; }\n")

	return template.CSS(sb.String())
}

func cssRule(selector string, t TextStyle) string {
	decls := []string{fmt.Sprintf("font-size: %gpt", t.FontSize)}
	if t.Bold {
		decls = append(decls, "font-weight: bold")
	}
	if t.Italic {
		decls = append(decls, "font-style: italic")
	}
	if t.Underline {
		decls = append(decls, "text-decoration: underline")
	}
	if t.Color != "" {
		decls = append(decls, "color: "+t.Color)
	}
	return selector + " { " + strings.Join(decls, "; ") + "; }\n"
}
