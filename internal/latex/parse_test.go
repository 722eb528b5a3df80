package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestParse_EmptySource(t *testing.T) {
	doc := Parse("")
	require.NotNil(t, doc)
	assert.Empty(t, doc.PersonalInfo.FirstName)
	assert.Empty(t, doc.WorkExperience)
}

func TestParse_GarbageInputNeverFails(t *testing.T) {
	inputs := []string{
		"not latex at all",
		`\documentclass{article} \section{Experience} \subsection{broken`,
		"{{{{}}}",
		`\cventry`,
	}
	for _, in := range inputs {
		doc := Parse(in)
		require.NotNil(t, doc)
	}
}

func TestParse_SetsTemplateFromDialect(t *testing.T) {
	modern := Generate(&types.ResumeDocument{}, Modern)
	classic := Generate(&types.ResumeDocument{}, Classic)

	assert.Equal(t, Modern, Parse(modern).SelectedTemplate)
	assert.Equal(t, Classic, Parse(classic).SelectedTemplate)
}

func TestParse_TemplateDefaultsTreatedAsAbsent(t *testing.T) {
	// A freshly generated empty resume is all placeholder text; parsing it
	// back must not fabricate data the user never entered.
	for _, tmpl := range []Template{Modern, Classic} {
		doc := Parse(Generate(&types.ResumeDocument{}, tmpl))

		assert.Empty(t, doc.PersonalInfo.FirstName, "template %s", tmpl)
		assert.Empty(t, doc.PersonalInfo.Email, "template %s", tmpl)
		assert.Empty(t, doc.ProfessionalSummary, "template %s", tmpl)
		assert.Empty(t, doc.Skills.Technical, "template %s", tmpl)
		assert.Empty(t, doc.Skills.Languages, "template %s", tmpl)
		assert.Empty(t, doc.WorkExperience, "template %s", tmpl)
	}
}

func TestParse_ModernPersonalInfo(t *testing.T) {
	source := `\documentclass[11pt,a4paper,sans]{moderncv}
\name{Jane}{Smith}
\title{Software Engineer}
\address{New York, NY}{}{}
\phone{+1 (212) 555-0101}
\email{jane.smith@example.com}
\social[linkedin]{linkedin.com/in/janesmith}
\social[github]{github.com/janesmith}
\begin{document}
\end{document}
`
	doc := Parse(source)
	pi := doc.PersonalInfo
	assert.Equal(t, "Jane", pi.FirstName)
	assert.Equal(t, "Smith", pi.LastName)
	assert.Equal(t, "Software Engineer", pi.JobRole)
	assert.Equal(t, "New York, NY", pi.Location)
	assert.Equal(t, "+1 (212) 555-0101", pi.Phone)
	assert.Equal(t, "jane.smith@example.com", pi.Email)
	assert.Equal(t, "linkedin.com/in/janesmith", pi.LinkedIn)
	assert.Equal(t, "github.com/janesmith", pi.GitHub)
}

func TestParse_ModernExperiencePresent(t *testing.T) {
	source := `\documentclass{moderncv}
\begin{document}
\section{Experience}
\cventry{2020-01 -- Present}{Engineer}{Acme}{NYC}{}{\item Shipped things}
\end{document}
`
	doc := Parse(source)
	require.Len(t, doc.WorkExperience, 1)
	e := doc.WorkExperience[0]
	assert.Equal(t, "Engineer", e.Position)
	assert.Equal(t, "Acme", e.Company)
	assert.Equal(t, "NYC", e.Location)
	assert.Equal(t, "2020-01", e.StartDate)
	assert.Equal(t, "", e.EndDate)
	assert.True(t, e.IsCurrent)
	assert.Equal(t, "• Shipped things", e.Description)
}

func TestParse_ModernMalformedEntrySkipped(t *testing.T) {
	source := `\documentclass{moderncv}
\begin{document}
\section{Experience}
\cventry{2020}{Engineer}{Acme}
\cventry{2021 -- 2022}{Analyst}{Beta}{LA}{}{}
\end{document}
`
	doc := Parse(source)
	require.Len(t, doc.WorkExperience, 1)
	assert.Equal(t, "Analyst", doc.WorkExperience[0].Position)
}

func TestParse_ClassicPersonalInfo(t *testing.T) {
	source := `\documentclass[11pt,a4paper]{article}
\begin{document}
\begin{center}
{\Large\bfseries Jane Smith}\\
Software Engineer\\
New York, NY | +1 (212) 555-0101 | jane.smith@example.com\\
LinkedIn: linkedin.com/in/janesmith | GitHub: github.com/janesmith
\end{center}
\end{document}
`
	doc := Parse(source)
	pi := doc.PersonalInfo
	assert.Equal(t, "Jane", pi.FirstName)
	assert.Equal(t, "Smith", pi.LastName)
	assert.Equal(t, "Software Engineer", pi.JobRole)
	assert.Equal(t, "New York, NY", pi.Location)
	assert.Equal(t, "+1 (212) 555-0101", pi.Phone)
	assert.Equal(t, "jane.smith@example.com", pi.Email)
	assert.Equal(t, "linkedin.com/in/janesmith", pi.LinkedIn)
	assert.Equal(t, "github.com/janesmith", pi.GitHub)
}

func TestParse_ClassicExperienceWithoutLocation(t *testing.T) {
	source := `\documentclass{article}
\begin{document}
\section{Experience}
\subsection{Engineer | Acme | 2020-01 -- 2021-06}
Plain description line
\end{document}
`
	doc := Parse(source)
	require.Len(t, doc.WorkExperience, 1)
	e := doc.WorkExperience[0]
	assert.Equal(t, "Engineer", e.Position)
	assert.Equal(t, "Acme", e.Company)
	assert.Equal(t, "", e.Location)
	assert.Equal(t, "2020-01", e.StartDate)
	assert.Equal(t, "2021-06", e.EndDate)
	assert.Equal(t, "Plain description line", e.Description)
}

func TestParse_ClassicEducationFieldAndGPA(t *testing.T) {
	source := `\documentclass{article}
\begin{document}
\section{Education}
\subsection{BSc | MIT | Cambridge, MA | 2015-09 -- 2019-06}
Computer Science
GPA: 3.9
\end{document}
`
	doc := Parse(source)
	require.Len(t, doc.Education, 1)
	e := doc.Education[0]
	assert.Equal(t, "BSc", e.Degree)
	assert.Equal(t, "MIT", e.Institution)
	assert.Equal(t, "Cambridge, MA", e.Location)
	assert.Equal(t, "Computer Science", e.Field)
	assert.Equal(t, "3.9", e.GPA)
}

func TestParse_ClassicSkills(t *testing.T) {
	source := `\documentclass{article}
\begin{document}
\section{Skills}
\textbf{Technical Skills:} Go, PostgreSQL, Docker\\
\textbf{Languages:} English, Spanish
\end{document}
`
	doc := Parse(source)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker"}, doc.Skills.Technical)
	assert.Equal(t, []string{"English", "Spanish"}, doc.Skills.Languages)
}

func TestParse_ModernProjectsTechnologies(t *testing.T) {
	source := `\documentclass{moderncv}
\begin{document}
\section{Projects}
\cventry{2021-03 -- Present}{Deploy Bot}{}{}{}{\item Automated releases
Technologies: Go, PostgreSQL}
\end{document}
`
	doc := Parse(source)
	require.Len(t, doc.Projects, 1)
	p := doc.Projects[0]
	assert.Equal(t, "Deploy Bot", p.Name)
	assert.Equal(t, "• Automated releases", p.Description)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, p.Technologies)
	assert.True(t, p.IsOngoing)
	assert.Equal(t, "", p.EndDate)
}

func TestParse_UnknownDialectFallsBackToClassicRoutine(t *testing.T) {
	source := `\documentclass{report}
\begin{document}
\section{Professional Summary}
A summary written in an unrecognized layout.
\end{document}
`
	doc := Parse(source)
	assert.Equal(t, Classic, doc.SelectedTemplate)
	assert.Equal(t, "A summary written in an unrecognized layout.", doc.ProfessionalSummary)
}
