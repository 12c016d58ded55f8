package rendering

import "github.com/jonathan/resume-editor/internal/types"

// Named text styles in a StyleConfig.
const (
	StyleHeader        = "header"
	StyleSubheader     = "subheader"
	StyleSectionHeader = "sectionHeader"
	StyleJobTitle      = "jobTitle"
	StyleDate          = "date"
	StyleTechnologies  = "technologies"
	StyleLink          = "link"
)

// TextStyle is the appearance of one kind of text run. Sizes are in points.
type TextStyle struct {
	FontSize  float64 `json:"fontSize"`
	Bold      bool    `json:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty"`
	Underline bool    `json:"underline,omitempty"`
	Color     string  `json:"color,omitempty"`
}

// StyleConfig is what a renderer needs besides the layout: named text styles,
// the font choice and page margins in points.
type StyleConfig struct {
	FontStack    string               `json:"fontStack"`
	DocumentFont string               `json:"documentFont"`
	PageMargin   float64              `json:"pageMargin"`
	PrimaryColor string               `json:"primaryColor"`
	AccentColor  string               `json:"accentColor"`
	Styles       map[string]TextStyle `json:"styles"`
}

type palette struct {
	primary string
	accent  string
}

var palettes = map[types.ColorToken]palette{
	types.ColorBlueAccent:  {primary: "#2563eb", accent: "#1d4ed8"},
	types.ColorSlate:       {primary: "#334155", accent: "#1e293b"},
	types.ColorNeutralGray: {primary: "#374151", accent: "#1f2937"},
}

type font struct {
	stack    string
	document string
}

var fonts = map[types.FontToken]font{
	types.FontHumanistSans:  {stack: "Inter, Helvetica, Arial, sans-serif", document: "Helvetica"},
	types.FontSerif:         {stack: "Georgia, Times New Roman, Times, serif", document: "Times"},
	types.FontSystemDefault: {stack: "system-ui, -apple-system, Segoe UI, Roboto, sans-serif", document: "Helvetica"},
}

var fallbackFont = font{stack: "Helvetica, Arial, sans-serif", document: "Helvetica"}

var margins = map[types.SpacingToken]float64{
	types.SpacingComfortable: 40,
	types.SpacingCompact:     30,
	types.SpacingRelaxed:     50,
}

const (
	mutedColor = "#6b7280"
	techColor  = "#4b5563"
	linkColor  = "#2563eb"
)

// Styles derives the style configuration for a template. Unrecognized color
// tokens fall back to neutral gray, font tokens to Helvetica and spacing
// tokens to comfortable margins.
func Styles(t types.Template) StyleConfig {
	p, ok := palettes[t.PrimaryColor]
	if !ok {
		p = palettes[types.ColorNeutralGray]
	}
	f, ok := fonts[t.FontFamily]
	if !ok {
		f = fallbackFont
	}
	margin, ok := margins[t.Spacing]
	if !ok {
		margin = margins[types.SpacingComfortable]
	}

	return StyleConfig{
		FontStack:    f.stack,
		DocumentFont: f.document,
		PageMargin:   margin,
		PrimaryColor: p.primary,
		AccentColor:  p.accent,
		Styles: map[string]TextStyle{
			StyleHeader:        {FontSize: 24, Bold: true, Color: p.primary},
			StyleSubheader:     {FontSize: 12, Color: mutedColor},
			StyleSectionHeader: {FontSize: 16, Bold: true, Color: p.accent},
			StyleJobTitle:      {FontSize: 14, Bold: true},
			StyleDate:          {FontSize: 12, Italic: true, Color: mutedColor},
			StyleTechnologies:  {FontSize: 12, Color: techColor},
			StyleLink:          {FontSize: 12, Underline: true, Color: linkColor},
		},
	}
}
