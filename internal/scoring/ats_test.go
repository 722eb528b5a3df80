package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func idealDocument() *types.ResumeDocument {
	return &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			FirstName: "Jane",
			LastName:  "Smith",
			Email:     "jane.smith@example.com",
			Phone:     "+1 (212) 555-0101",
			Location:  "New York, NY",
			LinkedIn:  "linkedin.com/in/janesmith",
			JobRole:   "Software Engineer",
		},
		ProfessionalSummary: "Software engineer with eight years of experience building distributed systems and developer tooling for high-traffic platforms.",
		WorkExperience: []types.ExperienceEntry{{
			Company:     "Acme Corp",
			Position:    "Software Engineer",
			Description: "• Led team of 10 engineers\n• Developed the deployment API and database tooling",
		}},
		Education: []types.EducationEntry{{Institution: "MIT", Degree: "BSc"}},
		Projects: []types.ProjectEntry{{
			Name:      "Deploy Bot",
			GitHubURL: "github.com/janesmith/deploybot",
		}},
		Skills: types.SkillSet{
			Technical: []string{"Go", "PostgreSQL", "Docker", "Kubernetes", "gRPC", "Terraform"},
			Soft:      []string{"Mentoring"},
			Languages: []string{"English", "Spanish"},
		},
	}
}

func TestScore_EmptyDocument(t *testing.T) {
	report := Score(&types.ResumeDocument{})

	assert.Equal(t, 0, report.Score)
	require.NotEmpty(t, report.Feedback)
	assert.Equal(t, "Significant improvements needed for ATS compatibility", report.Feedback[0])
	assert.Empty(t, report.Strengths)
	assert.NotEmpty(t, report.Improvements)
}

func TestScore_NilDocument(t *testing.T) {
	report := Score(nil)
	assert.Equal(t, 0, report.Score)
}

func TestScore_IdealDocumentScoresMaximum(t *testing.T) {
	report := Score(idealDocument())

	assert.Equal(t, 100, report.Score)
	require.NotEmpty(t, report.Feedback)
	assert.Equal(t, "Excellent! Your resume is highly ATS-friendly", report.Feedback[0])
	assert.Contains(t, report.Strengths, "Complete name provided")
	assert.Contains(t, report.Strengths, "Quantified achievements in experience")
	assert.Contains(t, report.Strengths, "Strong action verbs used")
	assert.Contains(t, report.Strengths, "Good keyword alignment with target role")
	assert.Empty(t, report.Improvements)
}

func TestScore_NeverExceedsBounds(t *testing.T) {
	docs := []*types.ResumeDocument{
		nil,
		{},
		idealDocument(),
		{ProfessionalSummary: "short"},
	}
	for _, doc := range docs {
		report := Score(doc)
		assert.GreaterOrEqual(t, report.Score, 0)
		assert.LessOrEqual(t, report.Score, 100)
	}
}

func TestScore_AddingContactInfoNeverLowersScore(t *testing.T) {
	doc := &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{FirstName: "Jane", LastName: "Smith"},
	}
	before := Score(doc).Score

	doc.PersonalInfo.Email = "jane@example.com"
	after := Score(doc).Score

	assert.Greater(t, after, before)
}

func TestScore_SummaryLengthBands(t *testing.T) {
	long := make([]byte, 150)
	for i := range long {
		long[i] = 'a'
	}

	ideal := Score(&types.ResumeDocument{ProfessionalSummary: string(long)}).Score
	medium := Score(&types.ResumeDocument{ProfessionalSummary: string(long[:60])}).Score
	short := Score(&types.ResumeDocument{ProfessionalSummary: "brief"}).Score
	none := Score(&types.ResumeDocument{}).Score

	assert.Equal(t, 15, ideal)
	assert.Equal(t, 10, medium)
	assert.Equal(t, 5, short)
	assert.Equal(t, 0, none)
}

func TestScore_SkillBands(t *testing.T) {
	mk := func(n int) *types.ResumeDocument {
		doc := &types.ResumeDocument{}
		for i := 0; i < n; i++ {
			doc.Skills.Technical = append(doc.Skills.Technical, string(rune('a'+i)))
		}
		return doc
	}

	assert.Equal(t, 20, Score(mk(8)).Score)
	assert.Equal(t, 15, Score(mk(5)).Score)
	assert.Equal(t, 10, Score(mk(3)).Score)
	assert.Equal(t, 0, Score(mk(2)).Score)
}

func TestScore_SkillBandsCountAllLists(t *testing.T) {
	doc := &types.ResumeDocument{Skills: types.SkillSet{
		Technical: []string{"Go", "Rust", "SQL"},
		Soft:      []string{"Mentoring", "Communication", "Planning"},
		Languages: []string{"English", "Spanish"},
	}}
	assert.Equal(t, 20, Score(doc).Score)
}

func TestScore_ExperienceWithoutMetricsOrVerbs(t *testing.T) {
	doc := &types.ResumeDocument{
		WorkExperience: []types.ExperienceEntry{{
			Company:     "Acme",
			Position:    "Engineer",
			Description: "Responsible for various tasks",
		}},
	}
	report := Score(doc)

	assert.Equal(t, 10, report.Score)
	assert.Contains(t, report.Improvements, "Add numbers and metrics to quantify your achievements")
	assert.Contains(t, report.Improvements, "Use stronger action verbs (led, managed, developed, etc.)")
}

func TestScore_StrongVerbsMatchOnWordBoundaries(t *testing.T) {
	// "mangled" contains no whitelisted verb; "misled" must not match "led".
	doc := &types.ResumeDocument{
		WorkExperience: []types.ExperienceEntry{{
			Company:     "Acme",
			Position:    "Engineer",
			Description: "misled mangled handled",
		}},
	}
	report := Score(doc)
	assert.NotContains(t, report.Strengths, "Strong action verbs used")

	doc.WorkExperience[0].Description = "Led the migration"
	report = Score(doc)
	assert.Contains(t, report.Strengths, "Strong action verbs used")
}

func TestScore_KeywordAlignmentBuckets(t *testing.T) {
	doc := &types.ResumeDocument{
		PersonalInfo:        types.PersonalInfo{JobRole: "Product Manager"},
		ProfessionalSummary: "Team leadership and management with long-range strategy and planning.",
	}
	report := Score(doc)
	assert.Contains(t, report.Strengths, "Good keyword alignment with target role")
}

func TestScore_UnknownRoleBucketContributesNothing(t *testing.T) {
	withRole := Score(&types.ResumeDocument{
		PersonalInfo:        types.PersonalInfo{JobRole: "Chef"},
		ProfessionalSummary: "programming coding development",
	})
	assert.NotContains(t, withRole.Strengths, "Good keyword alignment with target role")
}

func TestScore_ProjectLinksEarnBonusOnce(t *testing.T) {
	doc := &types.ResumeDocument{
		Projects: []types.ProjectEntry{
			{Name: "One", URL: "example.com/one"},
			{Name: "Two", GitHubURL: "github.com/two"},
		},
	}
	report := Score(doc)
	assert.Equal(t, 10, report.Score)

	count := 0
	for _, s := range report.Strengths {
		if s == "Project links provided for verification" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestScore_BannerThresholds(t *testing.T) {
	assert.Equal(t, "Excellent! Your resume is highly ATS-friendly", banner(90))
	assert.Equal(t, "Great job! Your resume should perform well with ATS systems", banner(80))
	assert.Equal(t, "Good foundation, but there's room for improvement", banner(70))
	assert.Equal(t, "Your resume needs some optimization for ATS systems", banner(60))
	assert.Equal(t, "Significant improvements needed for ATS compatibility", banner(59))
}

func TestScore_Deterministic(t *testing.T) {
	doc := idealDocument()
	first := Score(doc)
	second := Score(doc)
	assert.Equal(t, first, second)
}
