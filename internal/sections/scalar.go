package sections

import (
	"slices"
	"strings"

	"github.com/jonathan/resume-editor/internal/types"
)

// Personal info field names.
const (
	FieldFullName  = "fullName"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldLocation  = "location"
	FieldLinkedIn  = "linkedin"
	FieldGitHub    = "github"
	FieldPortfolio = "portfolio"
)

// PersonalFields lists the personal info fields in form order.
func PersonalFields() []string {
	return []string{FieldFullName, FieldEmail, FieldPhone, FieldLocation, FieldLinkedIn, FieldGitHub, FieldPortfolio}
}

// UpdatePersonal merges one personal info field, preserving all others.
func UpdatePersonal(r types.Resume, field, value string) (types.Resume, error) {
	out := r.Clone()
	info := &out.PersonalInfo
	switch field {
	case FieldFullName:
		info.FullName = value
	case FieldEmail:
		info.Email = value
	case FieldPhone:
		info.Phone = value
	case FieldLocation:
		info.Location = value
	case FieldLinkedIn:
		info.LinkedIn = value
	case FieldGitHub:
		info.GitHub = value
	case FieldPortfolio:
		info.Portfolio = value
	default:
		return r, &FieldError{Section: types.SectionPersonal, Field: field, Message: "unknown field"}
	}
	return out, nil
}

// SetSummary replaces the professional summary.
func SetSummary(r types.Resume, summary string) types.Resume {
	out := r.Clone()
	out.Summary = summary
	return out
}

// SetList replaces a flat string list (skills, certifications, languages) as a whole.
func SetList(r types.Resume, section types.Section, items []string) (types.Resume, error) {
	out := r.Clone()
	items = slices.Clone(items)
	if items == nil {
		items = []string{}
	}
	switch section {
	case types.SectionSkills:
		out.Skills = items
	case types.SectionCertifications:
		out.Certifications = items
	case types.SectionLanguages:
		out.Languages = items
	default:
		return r, &UnknownSectionError{Section: string(section)}
	}
	return out, nil
}

// ParseBlock splits a newline-delimited block into list entries. Entries are
// kept verbatim, as typed; an empty block yields an empty list.
func ParseBlock(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
