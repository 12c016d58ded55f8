package types

// Section names an addressable part of the résumé.
type Section string

// Navigator sections, plus the flat lists that have no navigator entry of their own.
const (
	SectionPersonal       Section = "personal"
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionLanguages      Section = "languages"
)

// Sections returns the six navigator sections in their fixed order.
func Sections() []Section {
	return []Section{
		SectionPersonal,
		SectionSummary,
		SectionExperience,
		SectionEducation,
		SectionSkills,
		SectionProjects,
	}
}

// IsListSection reports whether s holds identified items (experience, education, projects).
func (s Section) IsListSection() bool {
	switch s {
	case SectionExperience, SectionEducation, SectionProjects:
		return true
	}
	return false
}

// IsFlatList reports whether s is a flat string list edited as one block.
func (s Section) IsFlatList() bool {
	switch s {
	case SectionSkills, SectionCertifications, SectionLanguages:
		return true
	}
	return false
}
