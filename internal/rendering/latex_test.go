package rendering

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-editor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate_ValidTemplate(t *testing.T) {
	templatePath := filepath.Join(t.TempDir(), "test.tex")
	templateContent := `\documentclass{article}
\begin{document}
Name: <<.Name>>
\end{document}`
	require.NoError(t, os.WriteFile(templatePath, []byte(templateContent), 0o644))

	tmpl, err := parseTemplate(templatePath)
	require.NoError(t, err)
	assert.NotNil(t, tmpl)
}

func TestParseTemplate_InvalidPath(t *testing.T) {
	_, err := parseTemplate("/nonexistent/template.tex")
	var templateErr *TemplateError
	require.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestParseTemplate_InvalidTemplate(t *testing.T) {
	templatePath := filepath.Join(t.TempDir(), "invalid.tex")
	require.NoError(t, os.WriteFile(templatePath, []byte(`<<.Broken<<>>`), 0o644))

	_, err := parseTemplate(templatePath)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
}

func TestRenderLaTeX_Document(t *testing.T) {
	r := janeDoe()
	r.PersonalInfo.Email = "jane@example.com"
	r.Summary = "Cut costs by 40% & shipped."
	r.Projects = []types.Project{{ID: "p", Title: "tool_kit", GitHubURL: "https://github.com/jane/tool#readme"}}

	tex, err := RenderLaTeX(Compose(r, modern(t)))
	require.NoError(t, err)

	assert.Contains(t, tex, `\documentclass[11pt,a4paper]{article}`)
	assert.Contains(t, tex, `\usepackage[margin=40pt]{geometry}`)
	assert.Contains(t, tex, `\definecolor{primary}{HTML}{2563EB}`)
	assert.Contains(t, tex, `\color{primary} Jane Doe}`)
	assert.Contains(t, tex, `{\large\bfseries\color{accent} Work Experience}`)
	assert.Contains(t, tex, `{\itshape\color{muted} Acme \textbar{} 2020-01 - Present}`)
	assert.Contains(t, tex, `\item Built X`)
	assert.Contains(t, tex, `Cut costs by 40\% \& shipped.`)
	assert.Contains(t, tex, `{\bfseries tool\_kit}`)
	assert.Contains(t, tex, `\href{https://github.com/jane/tool\#readme}{GitHub: https://github.com/jane/tool\#readme}`)
	assert.Contains(t, tex, `\renewcommand{\familydefault}{\sfdefault}`)
	assert.Contains(t, tex, `\end{document}`)
}

func TestRenderLaTeX_SerifTemplate(t *testing.T) {
	classic, ok := types.LookupTemplate("classic")
	require.True(t, ok)

	tex, err := RenderLaTeX(Compose(janeDoe(), classic))
	require.NoError(t, err)
	assert.Contains(t, tex, `\usepackage{mathptmx}`)
	assert.Contains(t, tex, `\usepackage[margin=30pt]{geometry}`)
	assert.NotContains(t, tex, `\sfdefault`)
}

func TestRenderLaTeX_EmptyResume(t *testing.T) {
	tex, err := RenderLaTeX(Compose(types.NewResume(), modern(t)))
	require.NoError(t, err)
	assert.NotContains(t, tex, `\color{primary}`+" ")
	assert.NotContains(t, tex, `\begin{itemize}`)
}

func TestRenderLaTeXFile(t *testing.T) {
	templatePath := filepath.Join(t.TempDir(), "custom.tex")
	content := `<<.Name>>/<<range .Blocks>><<.Title>>;<<end>>`
	require.NoError(t, os.WriteFile(templatePath, []byte(content), 0o644))

	r := janeDoe()
	r.Skills = []string{"Go"}
	out, err := RenderLaTeXFile(Compose(r, modern(t)), templatePath)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe/Work Experience;Skills;", out)
}

func TestRenderLaTeXFile_ExecutionError(t *testing.T) {
	templatePath := filepath.Join(t.TempDir(), "bad.tex")
	require.NoError(t, os.WriteFile(templatePath, []byte(`<<.Missing>>`), 0o644))

	_, err := RenderLaTeXFile(Compose(janeDoe(), modern(t)), templatePath)
	var templateErr *TemplateError
	require.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "failed to execute template")
}

func TestBuildTemplateData_Escapes(t *testing.T) {
	r := types.NewResume()
	r.PersonalInfo.FullName = "Jane_Doe"
	r.Education = []types.Education{{ID: "e", School: "A&M", Degree: "BSc"}}

	data := buildTemplateData(Compose(r, modern(t)))
	assert.Equal(t, `Jane\_Doe`, data.Name)
	assert.Equal(t, `A\&M`, data.Blocks[0].Entries[0].Subtitle)
	assert.False(t, data.Serif)
}
