package pdf

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// previewTemplate is a print-oriented HTML rendering of a resume document.
// It mirrors the sections the LaTeX grammars carry.
var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
	body { font-family: Georgia, serif; margin: 2rem 3rem; color: #1a1a1a; }
	h1 { margin-bottom: 0; font-size: 1.8rem; }
	.role { color: #444; margin-top: 0.2rem; }
	.contact { font-size: 0.85rem; color: #555; margin-bottom: 1rem; }
	h2 { font-size: 1.05rem; border-bottom: 1px solid #999; padding-bottom: 2px; margin-top: 1.2rem; }
	.entry { margin-bottom: 0.7rem; }
	.entry-head { display: flex; justify-content: space-between; font-weight: bold; }
	.entry-sub { font-style: italic; font-size: 0.9rem; }
	.desc { white-space: pre-line; font-size: 0.9rem; margin-top: 0.2rem; }
	.tech { font-size: 0.85rem; color: #333; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
{{if .JobRole}}<div class="role">{{.JobRole}}</div>{{end}}
<div class="contact">{{.Contact}}</div>

{{if .Summary}}<h2>Professional Summary</h2><div class="desc">{{.Summary}}</div>{{end}}

{{if .Experience}}<h2>Experience</h2>
{{range .Experience}}<div class="entry">
	<div class="entry-head"><span>{{.Title}}</span><span>{{.Dates}}</span></div>
	<div class="entry-sub">{{.Subtitle}}</div>
	{{if .Description}}<div class="desc">{{.Description}}</div>{{end}}
</div>{{end}}{{end}}

{{if .Education}}<h2>Education</h2>
{{range .Education}}<div class="entry">
	<div class="entry-head"><span>{{.Title}}</span><span>{{.Dates}}</span></div>
	<div class="entry-sub">{{.Subtitle}}</div>
	{{if .Description}}<div class="desc">{{.Description}}</div>{{end}}
</div>{{end}}{{end}}

{{if .Skills}}<h2>Skills</h2><div class="desc">{{.Skills}}</div>{{end}}

{{if .Projects}}<h2>Projects</h2>
{{range .Projects}}<div class="entry">
	<div class="entry-head"><span>{{.Title}}</span><span>{{.Dates}}</span></div>
	{{if .Description}}<div class="desc">{{.Description}}</div>{{end}}
	{{if .Subtitle}}<div class="tech">{{.Subtitle}}</div>{{end}}
</div>{{end}}{{end}}
</body>
</html>
`))

type previewEntry struct {
	Title       string
	Subtitle    string
	Dates       string
	Description string
}

type previewData struct {
	Name       string
	JobRole    string
	Contact    string
	Summary    string
	Experience []previewEntry
	Education  []previewEntry
	Skills     string
	Projects   []previewEntry
}

// BuildHTML renders a resume document to the HTML the render collaborator
// consumes. html/template handles escaping.
func BuildHTML(doc *types.ResumeDocument) (string, error) {
	if doc == nil {
		doc = &types.ResumeDocument{}
	}
	pi := doc.PersonalInfo

	name := strings.TrimSpace(pi.FirstName + " " + pi.LastName)
	if name == "" {
		name = "Untitled Resume"
	}

	var contact []string
	for _, v := range []string{pi.Location, pi.Phone, pi.Email, pi.LinkedIn, pi.GitHub, pi.Website} {
		if v != "" {
			contact = append(contact, v)
		}
	}

	data := previewData{
		Name:    name,
		JobRole: pi.JobRole,
		Contact: strings.Join(contact, " | "),
		Summary: doc.ProfessionalSummary,
	}

	for i := range doc.WorkExperience {
		e := &doc.WorkExperience[i]
		data.Experience = append(data.Experience, previewEntry{
			Title:       e.Position,
			Subtitle:    strings.TrimSpace(strings.Join(nonEmpty(e.Company, e.Location), ", ")),
			Dates:       joinDates(e.StartDate, e.EffectiveEndDate()),
			Description: e.Description,
		})
	}
	for i := range doc.Education {
		e := &doc.Education[i]
		data.Education = append(data.Education, previewEntry{
			Title:       strings.TrimSpace(strings.Join(nonEmpty(e.Degree, e.Field), ", ")),
			Subtitle:    strings.TrimSpace(strings.Join(nonEmpty(e.Institution, e.Location), ", ")),
			Dates:       joinDates(e.StartDate, e.EndDate),
			Description: gpaLine(e.GPA),
		})
	}
	for i := range doc.Projects {
		p := &doc.Projects[i]
		entry := previewEntry{
			Title:       p.Name,
			Dates:       joinDates(p.StartDate, p.EffectiveEndDate()),
			Description: p.Description,
		}
		if len(p.Technologies) > 0 {
			entry.Subtitle = "Technologies: " + strings.Join(p.Technologies, ", ")
		}
		data.Projects = append(data.Projects, entry)
	}

	var skills []string
	if len(doc.Skills.Technical) > 0 {
		skills = append(skills, "Technical: "+strings.Join(doc.Skills.Technical, ", "))
	}
	if len(doc.Skills.Soft) > 0 {
		skills = append(skills, "Soft: "+strings.Join(doc.Skills.Soft, ", "))
	}
	if len(doc.Skills.Languages) > 0 {
		skills = append(skills, "Languages: "+strings.Join(doc.Skills.Languages, ", "))
	}
	data.Skills = strings.Join(skills, "\n")

	var sb strings.Builder
	if err := previewTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render preview HTML: %w", err)
	}
	return sb.String(), nil
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func joinDates(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	default:
		return start + " – " + end
	}
}

func gpaLine(gpa string) string {
	if gpa == "" {
		return ""
	}
	return "GPA: " + gpa
}
