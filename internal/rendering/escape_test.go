package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain text", in: "Built a payments API", want: "Built a payments API"},
		{name: "backslash", in: `C:\dev`, want: `C:\textbackslash{}dev`},
		{name: "braces", in: "text{with}braces", want: `text\{with\}braces`},
		{name: "money and percent", in: "Saved $2M (30%)", want: `Saved \$2M (30\%)`},
		{name: "ampersand and hash", in: "R&D #1", want: `R\&D \#1`},
		{name: "caret and tilde", in: "x^2 ~ y", want: `x\textasciicircum{}2 \textasciitilde{} y`},
		{name: "underscore", in: "snake_case", want: `snake\_case`},
		{name: "angle brackets", in: "<b>", want: `\textless{}b\textgreater{}`},
		{name: "contact pipe", in: "a@b.c | Berlin", want: `a@b.c \textbar{} Berlin`},
		{name: "unicode untouched", in: "Résumé – Zürich", want: "Résumé – Zürich"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLaTeX(tt.in))
		})
	}
}

func TestEscapeURL(t *testing.T) {
	assert.Equal(t, "", escapeURL(""))
	assert.Equal(t, "https://jane.dev/a_b~c", escapeURL("https://jane.dev/a_b~c"))
	assert.Equal(t, `https://x.dev/\#top?q=1\%20`, escapeURL("https://x.dev/#top?q=1%20"))
}

func TestEscapeParagraph(t *testing.T) {
	assert.Equal(t, "", escapeParagraph(""))
	assert.Equal(t, "One\\\\\nTwo \\& three", escapeParagraph("One\r\n\n  Two & three  "))
}

func TestTeXColor(t *testing.T) {
	assert.Equal(t, "2563EB", texColor("#2563eb"))
}
