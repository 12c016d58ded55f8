package rendering

import "strings"

// latexReplacements maps characters LaTeX treats specially (plus the ones
// that print wrongly outside T1 encoding, such as the contact-line pipe) to
// their text-mode commands.
var latexReplacements = map[rune]string{
	'\\': `\textbackslash{}`,
	'{':  `\{`,
	'}':  `\}`,
	'$':  `\$`,
	'&':  `\&`,
	'%':  `\%`,
	'#':  `\#`,
	'^':  `\textasciicircum{}`,
	'_':  `\_`,
	'~':  `\textasciitilde{}`,
	'<':  `\textless{}`,
	'>':  `\textgreater{}`,
	'|':  `\textbar{}`,
}

// EscapeLaTeX escapes text for use in a LaTeX document body.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		if repl, ok := latexReplacements[r]; ok {
			result.WriteString(repl)
			continue
		}
		result.WriteRune(r)
	}

	return result.String()
}
