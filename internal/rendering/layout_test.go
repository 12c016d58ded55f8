package rendering

import (
	"testing"

	"github.com/jonathan/resume-editor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modern(t *testing.T) types.Template {
	t.Helper()
	tmpl, ok := types.LookupTemplate("modern")
	require.True(t, ok)
	return tmpl
}

func janeDoe() types.Resume {
	r := types.NewResume()
	r.PersonalInfo.FullName = "Jane Doe"
	r.WorkExperience = []types.WorkExperience{{
		ID:          "w1",
		Company:     "Acme",
		Position:    "Engineer",
		StartDate:   "2020-01",
		Current:     true,
		Description: []string{"Built X", "Shipped Y"},
	}}
	return r
}

func kinds(l Layout) []BlockKind {
	out := make([]BlockKind, 0, len(l.Blocks))
	for _, b := range l.Blocks {
		out = append(out, b.Kind)
	}
	return out
}

func TestCompose_CurrentRole(t *testing.T) {
	l := Compose(janeDoe(), modern(t))

	assert.Equal(t, "Jane Doe", l.Header.Name)
	assert.Equal(t, "", l.Header.Contact)
	assert.Equal(t, []BlockKind{BlockExperience}, kinds(l))

	exp, ok := l.Block(BlockExperience)
	require.True(t, ok)
	assert.Equal(t, TitleExperience, exp.Title)
	require.Len(t, exp.Entries, 1)
	assert.Equal(t, "Engineer", exp.Entries[0].Title)
	assert.Equal(t, "Acme | 2020-01 - Present", exp.Entries[0].Subtitle)
	assert.Equal(t, []string{"Built X", "Shipped Y"}, exp.Entries[0].Bullets)

	for _, kind := range []BlockKind{BlockEducation, BlockSkills, BlockProjects, BlockSummary} {
		_, ok := l.Block(kind)
		assert.False(t, ok, "block %s should be omitted", kind)
	}
}

func TestCompose_EmptyResume(t *testing.T) {
	l := Compose(types.NewResume(), modern(t))

	assert.Empty(t, l.Blocks)
	assert.Equal(t, "", l.Header.Name)
	assert.Equal(t, "", l.Header.Contact)
}

func TestCompose_ContactLine(t *testing.T) {
	tests := []struct {
		name string
		info types.PersonalInfo
		want string
	}{
		{
			name: "email phone location in order",
			info: types.PersonalInfo{Location: "Berlin", Phone: "555-1234", Email: "jane@example.com"},
			want: "jane@example.com | 555-1234 | Berlin",
		},
		{
			name: "profile links left out",
			info: types.PersonalInfo{
				Email: "a@b.c", LinkedIn: "in/jane", GitHub: "gh/jane", Portfolio: "jane.dev",
			},
			want: "a@b.c",
		},
		{
			name: "only links",
			info: types.PersonalInfo{LinkedIn: "in/jane"},
			want: "",
		},
		{
			name: "empty fields skipped",
			info: types.PersonalInfo{Email: "jane@example.com", Location: "Berlin"},
			want: "jane@example.com | Berlin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := types.NewResume()
			r.PersonalInfo = tt.info
			assert.Equal(t, tt.want, Compose(r, modern(t)).Header.Contact)
		})
	}
}

func TestCompose_DateRanges(t *testing.T) {
	tests := []struct {
		name string
		exp  types.WorkExperience
		want string
	}{
		{
			name: "current ignores stored end date",
			exp:  types.WorkExperience{Company: "Acme", StartDate: "2020-01", EndDate: "2021-01", Current: true},
			want: "Acme | 2020-01 - Present",
		},
		{
			name: "past role",
			exp:  types.WorkExperience{Company: "Acme", StartDate: "2018-03", EndDate: "2019-12"},
			want: "Acme | 2018-03 - 2019-12",
		},
		{
			name: "no dates",
			exp:  types.WorkExperience{Company: "Acme"},
			want: "Acme",
		},
		{
			name: "no company",
			exp:  types.WorkExperience{StartDate: "2020-01", Current: true},
			want: "2020-01 - Present",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := types.NewResume()
			r.WorkExperience = []types.WorkExperience{tt.exp}
			exp, ok := Compose(r, modern(t)).Block(BlockExperience)
			require.True(t, ok)
			assert.Equal(t, tt.want, exp.Entries[0].Subtitle)
		})
	}
}

func TestCompose_KeepsStoredOrder(t *testing.T) {
	r := types.NewResume()
	r.WorkExperience = []types.WorkExperience{
		{ID: "a", Position: "Junior", StartDate: "2015-01"},
		{ID: "b", Position: "Senior", StartDate: "2021-01"},
		{ID: "c", Position: "Mid", StartDate: "2018-01"},
	}

	exp, ok := Compose(r, modern(t)).Block(BlockExperience)
	require.True(t, ok)
	titles := []string{exp.Entries[0].Title, exp.Entries[1].Title, exp.Entries[2].Title}
	assert.Equal(t, []string{"Junior", "Senior", "Mid"}, titles)
}

func TestCompose_Education(t *testing.T) {
	r := types.NewResume()
	r.Education = []types.Education{
		{ID: "e1", School: "MIT", Degree: "BSc", Field: "Computer Science", GraduationDate: "2019", Achievements: []string{"Dean's list"}},
		{ID: "e2", School: "Online", Degree: "Certificate"},
	}

	edu, ok := Compose(r, modern(t)).Block(BlockEducation)
	require.True(t, ok)
	assert.Equal(t, TitleEducation, edu.Title)
	assert.Equal(t, "BSc in Computer Science", edu.Entries[0].Title)
	assert.Equal(t, "MIT | 2019", edu.Entries[0].Subtitle)
	assert.Equal(t, []string{"Dean's list"}, edu.Entries[0].Bullets)
	assert.Equal(t, "Certificate", edu.Entries[1].Title)
	assert.Equal(t, "Online", edu.Entries[1].Subtitle)
	assert.Empty(t, edu.Entries[1].Bullets)
}

func TestCompose_Projects(t *testing.T) {
	r := types.NewResume()
	r.Projects = []types.Project{
		{ID: "p1", Title: "Tool", Description: "A CLI", Technologies: []string{"Go", "SQL"}, GitHubURL: "https://github.com/jane/tool", LiveURL: "https://tool.dev"},
		{ID: "p2", Title: "Notes", Description: "Plain"},
	}

	projects, ok := Compose(r, modern(t)).Block(BlockProjects)
	require.True(t, ok)

	first := projects.Entries[0]
	assert.Equal(t, "Tool", first.Title)
	assert.Equal(t, "A CLI", first.Text)
	require.Len(t, first.Lines, 3)
	assert.Equal(t, "Technologies: Go, SQL", first.Lines[0].String())
	assert.Equal(t, "GitHub: https://github.com/jane/tool", first.Lines[1].String())
	assert.Equal(t, "Live Demo: https://tool.dev", first.Lines[2].String())
	assert.Equal(t, LineLink, first.Lines[2].Kind)

	assert.Empty(t, projects.Entries[1].Lines)
}

func TestCompose_FlatLists(t *testing.T) {
	r := types.NewResume()
	r.Summary = "Backend engineer."
	r.Skills = []string{"Go", "Kubernetes"}
	r.Certifications = []string{"CKA"}
	r.Languages = []string{"English", "German"}

	l := Compose(r, modern(t))
	assert.Equal(t, []BlockKind{BlockSummary, BlockSkills, BlockCertifications, BlockLanguages}, kinds(l))

	summary, _ := l.Block(BlockSummary)
	assert.Equal(t, TitleSummary, summary.Title)
	assert.Equal(t, "Backend engineer.", summary.Text)

	skills, _ := l.Block(BlockSkills)
	assert.Equal(t, "Go, Kubernetes", skills.Text)

	certs, _ := l.Block(BlockCertifications)
	assert.Equal(t, []string{"CKA"}, certs.Items)

	langs, _ := l.Block(BlockLanguages)
	assert.Equal(t, "English, German", langs.Text)
}

func TestCompose_BlankButNonEmptyDataKeepsBlocks(t *testing.T) {
	r := types.NewResume()
	r.Summary = " "
	r.Skills = []string{""}
	r.Certifications = []string{" "}
	r.Languages = []string{"English", ""}

	l := Compose(r, modern(t))
	assert.Equal(t, []BlockKind{BlockSummary, BlockSkills, BlockCertifications, BlockLanguages}, kinds(l))

	summary, _ := l.Block(BlockSummary)
	assert.Equal(t, " ", summary.Text)

	skills, _ := l.Block(BlockSkills)
	assert.Equal(t, "", skills.Text)

	langs, _ := l.Block(BlockLanguages)
	assert.Equal(t, "English, ", langs.Text)
}

func TestCompose_EmptySummaryAndListsOmitted(t *testing.T) {
	r := types.NewResume()
	r.Summary = ""
	r.Skills = []string{}
	r.Certifications = nil

	assert.Empty(t, Compose(r, modern(t)).Blocks)
}

func TestCompose_FullBlockOrder(t *testing.T) {
	r := janeDoe()
	r.Summary = "x"
	r.Education = []types.Education{{ID: "e", School: "MIT"}}
	r.Skills = []string{"Go"}
	r.Projects = []types.Project{{ID: "p", Title: "Tool"}}
	r.Certifications = []string{"CKA"}
	r.Languages = []string{"English"}

	assert.Equal(t, []BlockKind{
		BlockSummary, BlockExperience, BlockEducation, BlockSkills,
		BlockProjects, BlockCertifications, BlockLanguages,
	}, kinds(Compose(r, modern(t))))
}

func TestCompose_DoesNotMutateInput(t *testing.T) {
	r := janeDoe()
	before := r.Clone()

	l := Compose(r, modern(t))
	exp, _ := l.Block(BlockExperience)
	exp.Entries[0].Bullets[0] = "changed"

	assert.Equal(t, before, r)
}
