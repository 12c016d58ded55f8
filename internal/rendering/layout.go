package rendering

import (
	"strings"

	"github.com/jonathan/resume-editor/internal/types"
)

// BlockKind identifies a section block in a layout.
type BlockKind string

const (
	BlockSummary        BlockKind = "summary"
	BlockExperience     BlockKind = "experience"
	BlockEducation      BlockKind = "education"
	BlockSkills         BlockKind = "skills"
	BlockProjects       BlockKind = "projects"
	BlockCertifications BlockKind = "certifications"
	BlockLanguages      BlockKind = "languages"
)

// Block headings.
const (
	TitleSummary        = "Professional Summary"
	TitleExperience     = "Work Experience"
	TitleEducation      = "Education"
	TitleSkills         = "Skills"
	TitleProjects       = "Projects"
	TitleCertifications = "Certifications"
	TitleLanguages      = "Languages"
)

// PresentLabel replaces the end date of an ongoing role.
const PresentLabel = "Present"

// LineKind distinguishes the extra lines under a project entry.
type LineKind string

const (
	LineTechnologies LineKind = "technologies"
	LineLink         LineKind = "link"
)

// Layout is the composed document: a header followed by section blocks in
// fixed order. Both the preview and every export are rendered from it.
type Layout struct {
	Template types.Template `json:"template"`
	Style    StyleConfig    `json:"style"`
	Header   Header         `json:"header"`
	Blocks   []Block        `json:"blocks"`
}

// Header is the name line and the pipe-joined contact line.
type Header struct {
	Name    string   `json:"name"`
	Contact string   `json:"contact"`
	Fields  []string `json:"fields"`
}

// Block is one section. Paragraph sections carry Text, list sections Entries
// and certifications Items.
type Block struct {
	Kind    BlockKind `json:"kind"`
	Title   string    `json:"title"`
	Text    string    `json:"text,omitempty"`
	Items   []string  `json:"items,omitempty"`
	Entries []Entry   `json:"entries,omitempty"`
}

// Entry is one experience, education or project item.
type Entry struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Text     string   `json:"text,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
	Lines    []Line   `json:"lines,omitempty"`
}

// Line is a labelled line under a project: its technologies or a link.
type Line struct {
	Kind  LineKind `json:"kind"`
	Label string   `json:"label"`
	Text  string   `json:"text"`
	URL   string   `json:"url,omitempty"`
}

// String renders the line as "Label: text".
func (l Line) String() string {
	return l.Label + ": " + l.Text
}

// Block returns the block of the given kind, if present.
func (l Layout) Block(kind BlockKind) (Block, bool) {
	for _, b := range l.Blocks {
		if b.Kind == kind {
			return b, true
		}
	}
	return Block{}, false
}

// Compose maps a résumé onto a layout for template t. Blocks whose data is
// empty are omitted; entries keep their stored order.
func Compose(r types.Resume, t types.Template) Layout {
	layout := Layout{
		Template: t,
		Style:    Styles(t),
		Header:   composeHeader(r.PersonalInfo),
		Blocks:   []Block{},
	}

	if r.Summary != "" {
		layout.Blocks = append(layout.Blocks, Block{Kind: BlockSummary, Title: TitleSummary, Text: r.Summary})
	}

	if len(r.WorkExperience) > 0 {
		entries := make([]Entry, 0, len(r.WorkExperience))
		for _, exp := range r.WorkExperience {
			entries = append(entries, Entry{
				Title:    exp.Position,
				Subtitle: joinNonEmpty(" | ", exp.Company, dateRange(exp.StartDate, exp.EndDate, exp.Current)),
				Bullets:  nonBlank(exp.Description),
			})
		}
		layout.Blocks = append(layout.Blocks, Block{Kind: BlockExperience, Title: TitleExperience, Entries: entries})
	}

	if len(r.Education) > 0 {
		entries := make([]Entry, 0, len(r.Education))
		for _, edu := range r.Education {
			entries = append(entries, Entry{
				Title:    joinNonEmpty(" in ", edu.Degree, edu.Field),
				Subtitle: joinNonEmpty(" | ", edu.School, edu.GraduationDate),
				Bullets:  nonBlank(edu.Achievements),
			})
		}
		layout.Blocks = append(layout.Blocks, Block{Kind: BlockEducation, Title: TitleEducation, Entries: entries})
	}

	if len(r.Skills) > 0 {
		layout.Blocks = append(layout.Blocks, Block{Kind: BlockSkills, Title: TitleSkills, Text: strings.Join(r.Skills, ", ")})
	}

	if len(r.Projects) > 0 {
		entries := make([]Entry, 0, len(r.Projects))
		for _, p := range r.Projects {
			entries = append(entries, composeProject(p))
		}
		layout.Blocks = append(layout.Blocks, Block{Kind: BlockProjects, Title: TitleProjects, Entries: entries})
	}

	if len(r.Certifications) > 0 {
		certs := append([]string(nil), r.Certifications...)
		layout.Blocks = append(layout.Blocks, Block{Kind: BlockCertifications, Title: TitleCertifications, Items: certs})
	}

	if len(r.Languages) > 0 {
		layout.Blocks = append(layout.Blocks, Block{Kind: BlockLanguages, Title: TitleLanguages, Text: strings.Join(r.Languages, ", ")})
	}

	return layout
}

// composeHeader builds the contact line from email, phone and location only;
// profile links appear in the personal section form but not on the document.
func composeHeader(info types.PersonalInfo) Header {
	fields := make([]string, 0, 3)
	for _, f := range []string{info.Email, info.Phone, info.Location} {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return Header{
		Name:    info.FullName,
		Contact: strings.Join(fields, " | "),
		Fields:  fields,
	}
}

func composeProject(p types.Project) Entry {
	entry := Entry{Title: p.Title, Text: p.Description}
	if techs := nonBlank(p.Technologies); len(techs) > 0 {
		entry.Lines = append(entry.Lines, Line{Kind: LineTechnologies, Label: "Technologies", Text: strings.Join(techs, ", ")})
	}
	if p.GitHubURL != "" {
		entry.Lines = append(entry.Lines, Line{Kind: LineLink, Label: "GitHub", Text: p.GitHubURL, URL: p.GitHubURL})
	}
	if p.LiveURL != "" {
		entry.Lines = append(entry.Lines, Line{Kind: LineLink, Label: "Live Demo", Text: p.LiveURL, URL: p.LiveURL})
	}
	return entry
}

// dateRange formats "start - end", with PresentLabel for an ongoing role
// whatever its stored end date.
func dateRange(start, end string, current bool) string {
	if current {
		end = PresentLabel
	}
	if start == "" && end == "" {
		return ""
	}
	return start + " - " + end
}

func joinNonEmpty(sep string, parts ...string) string {
	return strings.Join(nonBlank(parts), sep)
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
