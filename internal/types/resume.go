// Package types provides type definitions for structured data used throughout the resume editor.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonalInfo holds the contact block of a résumé. All fields are free text.
type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// WorkExperience is one position held. When Current is true, EndDate is ignored for display.
type WorkExperience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description []string `json:"description"`
}

// Education is one degree or program.
type Education struct {
	ID             string   `json:"id"`
	School         string   `json:"school"`
	Degree         string   `json:"degree"`
	Field          string   `json:"field"`
	GraduationDate string   `json:"graduationDate"`
	Achievements   []string `json:"achievements"`
}

// Project is a portfolio entry with optional repository and demo links.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GitHubURL    string   `json:"githubUrl,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
}

// Resume is the aggregate root of everything the user edits.
type Resume struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []string         `json:"skills"`
	Projects       []Project        `json:"projects"`
	Certifications []string         `json:"certifications"`
	Languages      []string         `json:"languages"`
}

// NewResume returns the canonical empty résumé. Sequences are non-nil so they
// serialize as empty arrays.
func NewResume() Resume {
	return Resume{
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Skills:         []string{},
		Projects:       []Project{},
		Certifications: []string{},
		Languages:      []string{},
	}
}

// Clone returns a deep copy of r. Nil sequences come back as empty slices.
func (r Resume) Clone() Resume {
	out := r
	out.Skills = cloneStrings(r.Skills)
	out.Certifications = cloneStrings(r.Certifications)
	out.Languages = cloneStrings(r.Languages)

	out.WorkExperience = make([]WorkExperience, len(r.WorkExperience))
	for i, exp := range r.WorkExperience {
		exp.Description = cloneStrings(exp.Description)
		out.WorkExperience[i] = exp
	}

	out.Education = make([]Education, len(r.Education))
	for i, edu := range r.Education {
		edu.Achievements = cloneStrings(edu.Achievements)
		out.Education[i] = edu
	}

	out.Projects = make([]Project, len(r.Projects))
	for i, p := range r.Projects {
		p.Technologies = cloneStrings(p.Technologies)
		out.Projects[i] = p
	}
	return out
}

// Normalize replaces nil sequences with empty ones, e.g. after decoding a blob
// that stored them as null.
func (r Resume) Normalize() Resume {
	return r.Clone()
}

// ItemID returns the identifier of the experience entry.
func (w WorkExperience) ItemID() string { return w.ID }

// ItemID returns the identifier of the education entry.
func (e Education) ItemID() string { return e.ID }

// ItemID returns the identifier of the project.
func (p Project) ItemID() string { return p.ID }

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
