package sections

import (
	"github.com/jonathan/resume-editor/internal/types"
)

// Field names accepted by Update, as they appear in the serialized record.
const (
	FieldCompany     = "company"
	FieldPosition    = "position"
	FieldStartDate   = "startDate"
	FieldEndDate     = "endDate"
	FieldCurrent     = "current"
	FieldDescription = "description"

	FieldSchool         = "school"
	FieldDegree         = "degree"
	FieldField          = "field"
	FieldGraduationDate = "graduationDate"
	FieldAchievements   = "achievements"

	FieldTitle        = "title"
	FieldTechnologies = "technologies"
	FieldGitHubURL    = "githubUrl"
	FieldLiveURL      = "liveUrl"
)

const (
	lineSeparator = "\n"
	techSeparator = ", "
)

// ListEditor edits one list-valued section. Every operation returns a new
// résumé and leaves its input untouched.
type ListEditor interface {
	Section() types.Section
	// Add appends a new empty item carrying id.
	Add(r types.Resume, id string) types.Resume
	// Update replaces one field of the item carrying id. An unknown id is not an error.
	Update(r types.Resume, id, field string, value any) (types.Resume, error)
	// Remove drops the item carrying id. An unknown id is a no-op.
	Remove(r types.Resume, id string) types.Resume
}

// Experience edits the work experience section.
var Experience ListEditor = experienceEditor{}

// Education edits the education section.
var Education ListEditor = educationEditor{}

// Projects edits the projects section.
var Projects ListEditor = projectsEditor{}

// EditorFor returns the editor for a list-valued section.
func EditorFor(section types.Section) (ListEditor, error) {
	switch section {
	case types.SectionExperience:
		return Experience, nil
	case types.SectionEducation:
		return Education, nil
	case types.SectionProjects:
		return Projects, nil
	}
	return nil, &UnknownSectionError{Section: string(section)}
}

type experienceEditor struct{}

func (experienceEditor) Section() types.Section { return types.SectionExperience }

func (experienceEditor) Add(r types.Resume, id string) types.Resume {
	out := r.Clone()
	out.WorkExperience = append(out.WorkExperience, types.WorkExperience{
		ID:          id,
		Description: []string{},
	})
	return out
}

func (e experienceEditor) Update(r types.Resume, id, field string, value any) (types.Resume, error) {
	out := r.Clone()
	items, err := updateItem(out.WorkExperience, id, func(exp *types.WorkExperience) error {
		return e.set(exp, field, value)
	})
	if err != nil {
		return r, err
	}
	out.WorkExperience = items
	return out, nil
}

func (e experienceEditor) set(exp *types.WorkExperience, field string, value any) error {
	var err error
	switch field {
	case FieldCompany:
		exp.Company, err = asString(e.Section(), field, value)
	case FieldPosition:
		exp.Position, err = asString(e.Section(), field, value)
	case FieldStartDate:
		exp.StartDate, err = asString(e.Section(), field, value)
	case FieldEndDate:
		exp.EndDate, err = asString(e.Section(), field, value)
	case FieldCurrent:
		exp.Current, err = asBool(e.Section(), field, value)
	case FieldDescription:
		exp.Description, err = asList(e.Section(), field, value, lineSeparator)
	default:
		err = &FieldError{Section: e.Section(), Field: field, Message: "unknown field"}
	}
	return err
}

func (experienceEditor) Remove(r types.Resume, id string) types.Resume {
	out := r.Clone()
	out.WorkExperience = removeItem(out.WorkExperience, id)
	return out
}

type educationEditor struct{}

func (educationEditor) Section() types.Section { return types.SectionEducation }

func (educationEditor) Add(r types.Resume, id string) types.Resume {
	out := r.Clone()
	out.Education = append(out.Education, types.Education{
		ID:           id,
		Achievements: []string{},
	})
	return out
}

func (e educationEditor) Update(r types.Resume, id, field string, value any) (types.Resume, error) {
	out := r.Clone()
	items, err := updateItem(out.Education, id, func(edu *types.Education) error {
		return e.set(edu, field, value)
	})
	if err != nil {
		return r, err
	}
	out.Education = items
	return out, nil
}

func (e educationEditor) set(edu *types.Education, field string, value any) error {
	var err error
	switch field {
	case FieldSchool:
		edu.School, err = asString(e.Section(), field, value)
	case FieldDegree:
		edu.Degree, err = asString(e.Section(), field, value)
	case FieldField:
		edu.Field, err = asString(e.Section(), field, value)
	case FieldGraduationDate:
		edu.GraduationDate, err = asString(e.Section(), field, value)
	case FieldAchievements:
		edu.Achievements, err = asList(e.Section(), field, value, lineSeparator)
	default:
		err = &FieldError{Section: e.Section(), Field: field, Message: "unknown field"}
	}
	return err
}

func (educationEditor) Remove(r types.Resume, id string) types.Resume {
	out := r.Clone()
	out.Education = removeItem(out.Education, id)
	return out
}

type projectsEditor struct{}

func (projectsEditor) Section() types.Section { return types.SectionProjects }

func (projectsEditor) Add(r types.Resume, id string) types.Resume {
	out := r.Clone()
	out.Projects = append(out.Projects, types.Project{
		ID:           id,
		Technologies: []string{},
	})
	return out
}

func (e projectsEditor) Update(r types.Resume, id, field string, value any) (types.Resume, error) {
	out := r.Clone()
	items, err := updateItem(out.Projects, id, func(p *types.Project) error {
		return e.set(p, field, value)
	})
	if err != nil {
		return r, err
	}
	out.Projects = items
	return out, nil
}

func (e projectsEditor) set(p *types.Project, field string, value any) error {
	var err error
	switch field {
	case FieldTitle:
		p.Title, err = asString(e.Section(), field, value)
	case FieldDescription:
		p.Description, err = asString(e.Section(), field, value)
	case FieldTechnologies:
		p.Technologies, err = asList(e.Section(), field, value, techSeparator)
	case FieldGitHubURL:
		p.GitHubURL, err = asString(e.Section(), field, value)
	case FieldLiveURL:
		p.LiveURL, err = asString(e.Section(), field, value)
	default:
		err = &FieldError{Section: e.Section(), Field: field, Message: "unknown field"}
	}
	return err
}

func (projectsEditor) Remove(r types.Resume, id string) types.Resume {
	out := r.Clone()
	out.Projects = removeItem(out.Projects, id)
	return out
}
