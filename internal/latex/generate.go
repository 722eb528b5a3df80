package latex

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Generate renders a resume document to LaTeX source using the requested
// template family. It is total: every field is optional and degrades to a
// template default, so the output is always complete, compilable LaTeX.
func Generate(doc *types.ResumeDocument, tmpl Template) string {
	if doc == nil {
		doc = &types.ResumeDocument{}
	}

	skeleton := modernSkeleton
	if types.NormalizeTemplate(string(tmpl)) == Classic {
		skeleton = classicSkeleton
		tmpl = Classic
	} else {
		tmpl = Modern
	}

	pi := doc.PersonalInfo
	replacer := strings.NewReplacer(
		"[FIRST_NAME]", escapeOr(pi.FirstName, defaultFirstName),
		"[LAST_NAME]", escapeOr(pi.LastName, defaultLastName),
		"[JOB_ROLE]", escapeOr(pi.JobRole, defaultJobRole),
		"[LOCATION]", escapeOr(pi.Location, defaultLocation),
		"[PHONE]", escapeOr(pi.Phone, defaultPhone),
		"[EMAIL]", escapeOr(pi.Email, defaultEmail),
		"[LINKEDIN]", escapeOr(pi.LinkedIn, defaultLinkedIn),
		"[GITHUB]", escapeOr(pi.GitHub, defaultGitHub),
		"[PROFESSIONAL_SUMMARY]", escapeOr(doc.ProfessionalSummary, defaultSummary),
		"[WORK_EXPERIENCE]", experienceBlock(doc.WorkExperience, tmpl),
		"[EDUCATION]", educationBlock(doc.Education, tmpl),
		"[PROJECTS]", projectsBlock(doc.Projects, tmpl),
		"[TECHNICAL_SKILLS]", joinSkills(doc.Skills.Technical, defaultTechnical),
		"[LANGUAGES]", joinSkills(doc.Skills.Languages, defaultLanguages),
	)

	return replacer.Replace(skeleton)
}

// escapeOr escapes value for LaTeX, substituting fallback when empty.
func escapeOr(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return Escape(value)
}

// joinSkills comma-joins an escaped skill list, substituting fallback when empty.
func joinSkills(skills []string, fallback string) string {
	if len(skills) == 0 {
		return fallback
	}
	escaped := make([]string, len(skills))
	for i, s := range skills {
		escaped[i] = Escape(s)
	}
	return strings.Join(escaped, ", ")
}

// dateRange formats a start/end pair the way both grammars expect.
func dateRange(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	default:
		return start + " -- " + end
	}
}

// formatDescription converts free-text description lines into the grammar's
// bullet convention: lines prefixed "•" or "-" become \item lines, other
// non-empty lines pass through as plain paragraph lines.
func formatDescription(desc string) string {
	lines := strings.Split(desc, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "•"); ok {
			out = append(out, `\item `+Escape(strings.TrimSpace(rest)))
			continue
		}
		if rest, ok := strings.CutPrefix(line, "-"); ok {
			out = append(out, `\item `+Escape(strings.TrimSpace(rest)))
			continue
		}
		out = append(out, Escape(line))
	}
	return strings.Join(out, "\n")
}

// experienceBlock renders one entry per work experience item.
func experienceBlock(entries []types.ExperienceEntry, tmpl Template) string {
	var sb strings.Builder
	for i := range entries {
		e := &entries[i]
		dates := dateRange(e.StartDate, e.EffectiveEndDate())
		desc := formatDescription(e.Description)
		if tmpl == Modern {
			sb.WriteString(fmt.Sprintf(`\cventry{%s}{%s}{%s}{%s}{}{%s}`,
				dates, Escape(e.Position), Escape(e.Company), Escape(e.Location), desc))
			sb.WriteString("\n")
		} else {
			sb.WriteString(fmt.Sprintf(`\subsection{%s | %s | %s | %s}`,
				Escape(e.Position), Escape(e.Company), Escape(e.Location), dates))
			sb.WriteString("\n")
			if desc != "" {
				sb.WriteString(desc)
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// educationBlock renders one entry per education item.
func educationBlock(entries []types.EducationEntry, tmpl Template) string {
	var sb strings.Builder
	for i := range entries {
		e := &entries[i]
		dates := dateRange(e.StartDate, e.EndDate)
		if tmpl == Modern {
			sb.WriteString(fmt.Sprintf(`\cventry{%s}{%s}{%s}{%s}{%s}{%s}`,
				dates, Escape(e.Degree), Escape(e.Institution), Escape(e.GPA), Escape(e.Location), Escape(e.Field)))
			sb.WriteString("\n")
		} else {
			sb.WriteString(fmt.Sprintf(`\subsection{%s | %s | %s | %s}`,
				Escape(e.Degree), Escape(e.Institution), Escape(e.Location), dates))
			sb.WriteString("\n")
			if e.Field != "" {
				sb.WriteString(Escape(e.Field))
				sb.WriteString("\n")
			}
			if e.GPA != "" {
				sb.WriteString("GPA: " + Escape(e.GPA))
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// projectsBlock renders one entry per project, always appending the
// Technologies line ("N/A" when the list is empty) so the parser has a
// stable anchor to split on.
func projectsBlock(entries []types.ProjectEntry, tmpl Template) string {
	var sb strings.Builder
	for i := range entries {
		p := &entries[i]
		dates := dateRange(p.StartDate, p.EffectiveEndDate())
		tech := joinSkills(p.Technologies, "N/A")
		desc := formatDescription(p.Description)
		if tmpl == Modern {
			body := "Technologies: " + tech
			if desc != "" {
				body = desc + "\n" + body
			}
			sb.WriteString(fmt.Sprintf(`\cventry{%s}{%s}{}{}{}{%s}`, dates, Escape(p.Name), body))
			sb.WriteString("\n")
		} else {
			sb.WriteString(fmt.Sprintf(`\subsection{%s | %s}`, Escape(p.Name), dates))
			sb.WriteString("\n")
			if desc != "" {
				sb.WriteString(desc)
				sb.WriteString("\n")
			}
			sb.WriteString("Technologies: " + tech)
			sb.WriteString("\n\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
