package types

// ColorToken names a primary color choice of a template.
type ColorToken string

// FontToken names a font family choice of a template.
type FontToken string

// SpacingToken names a spacing density choice of a template.
type SpacingToken string

// Color tokens
const (
	ColorBlueAccent  ColorToken = "blue-accent"
	ColorNeutralGray ColorToken = "neutral-gray"
	ColorSlate       ColorToken = "slate"
)

// Font tokens
const (
	FontHumanistSans  FontToken = "humanist-sans"
	FontSerif         FontToken = "serif"
	FontSystemDefault FontToken = "system-default"
)

// Spacing tokens
const (
	SpacingComfortable SpacingToken = "comfortable"
	SpacingCompact     SpacingToken = "compact"
	SpacingRelaxed     SpacingToken = "relaxed"
)

// DefaultTemplateKey is used when no template is selected.
const DefaultTemplateKey = "modern"

// Template is a named bundle of visual choices applied to the composed document.
// It is chosen per preview/export and never stored with the résumé.
type Template struct {
	Key          string       `json:"key"`
	Name         string       `json:"name"`
	PrimaryColor ColorToken   `json:"primaryColor"`
	FontFamily   FontToken    `json:"fontFamily"`
	Spacing      SpacingToken `json:"spacing"`
}

var builtinTemplates = []Template{
	{Key: "modern", Name: "Modern", PrimaryColor: ColorBlueAccent, FontFamily: FontHumanistSans, Spacing: SpacingComfortable},
	{Key: "classic", Name: "Classic", PrimaryColor: ColorNeutralGray, FontFamily: FontSerif, Spacing: SpacingCompact},
	{Key: "minimal", Name: "Minimal", PrimaryColor: ColorSlate, FontFamily: FontSystemDefault, Spacing: SpacingRelaxed},
}

// Templates returns the fixed template set in display order.
func Templates() []Template {
	out := make([]Template, len(builtinTemplates))
	copy(out, builtinTemplates)
	return out
}

// LookupTemplate finds a template by key. An empty key selects the default template.
func LookupTemplate(key string) (Template, bool) {
	if key == "" {
		key = DefaultTemplateKey
	}
	for _, t := range builtinTemplates {
		if t.Key == key {
			return t, true
		}
	}
	return Template{}, false
}
