package latex

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// classicNameRe matches the headline of the classic template's center block.
var classicNameRe = regexp.MustCompile(`\{\\Large\\bfseries ([^\n]*)\}\\\\`)

// parseClassic extracts resume data from the article-class template family.
// It also serves as the fallback routine for unrecognized sources, where it
// may extract little or nothing.
func parseClassic(source string, doc *types.ResumeDocument) {
	runStep("personal info", func() { classicPersonalInfo(source, doc) })
	runStep("summary", func() { classicSummary(source, doc) })
	runStep("experience", func() { classicExperience(source, doc) })
	runStep("education", func() { classicEducation(source, doc) })
	runStep("skills", func() { classicSkills(source, doc) })
	runStep("projects", func() { classicProjects(source, doc) })
}

func classicPersonalInfo(source string, doc *types.ResumeDocument) {
	start := strings.Index(source, `\begin{center}`)
	end := strings.Index(source, `\end{center}`)
	if start < 0 || end < 0 || end < start {
		return
	}
	block := source[start+len(`\begin{center}`) : end]
	pi := &doc.PersonalInfo

	var nameSeen bool
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), `\\`))
		if line == "" {
			continue
		}

		if m := classicNameRe.FindStringSubmatch(line + `\\`); m != nil {
			full := strings.TrimSpace(Unescape(m[1]))
			first, last, _ := strings.Cut(full, " ")
			pi.FirstName = cleanField(first)
			pi.LastName = cleanField(last)
			nameSeen = true
			continue
		}

		// "LinkedIn: x | GitHub: y" line.
		if strings.HasPrefix(line, "LinkedIn:") {
			for _, part := range strings.Split(line, "|") {
				part = strings.TrimSpace(part)
				if v, ok := strings.CutPrefix(part, "LinkedIn:"); ok {
					pi.LinkedIn = cleanField(v)
				}
				if v, ok := strings.CutPrefix(part, "GitHub:"); ok {
					pi.GitHub = cleanField(v)
				}
			}
			continue
		}

		// "location | phone | email" contact line.
		if parts := strings.Split(line, "|"); len(parts) == 3 {
			pi.Location = cleanField(parts[0])
			pi.Phone = cleanField(parts[1])
			pi.Email = cleanField(parts[2])
			continue
		}

		// The bare line after the headline carries the job role.
		if nameSeen && pi.JobRole == "" {
			pi.JobRole = cleanField(line)
		}
	}
}

func classicSummary(source string, doc *types.ResumeDocument) {
	body := strings.TrimSpace(sectionBody(source, "Professional Summary"))
	if body == "" {
		return
	}
	doc.ProfessionalSummary = cleanField(body)
}

// classicHeader splits a \subsection header into its pipe-delimited parts.
func classicHeader(chunk string) ([]string, string, bool) {
	args, ok := scanBraceArgs(chunk, 1)
	if !ok {
		return nil, "", false
	}
	parts := strings.Split(args[0], "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	// The entry body is whatever follows the closing brace of the header.
	// The raw argument substring begins right after the opening brace, so
	// its length locates the close exactly.
	open := strings.IndexByte(chunk, '{')
	body := chunk[open+1+len(args[0])+1:]
	return parts, body, true
}

func classicExperience(source string, doc *types.ResumeDocument) {
	body := sectionBody(source, "Experience")
	for _, chunk := range splitEntries(body, `\subsection`) {
		parts, rest, ok := classicHeader(chunk)
		if !ok {
			continue
		}
		entry := types.ExperienceEntry{Description: reconstructDescription(rest)}
		switch len(parts) {
		case 4:
			entry.Position = cleanField(parts[0])
			entry.Company = cleanField(parts[1])
			entry.Location = cleanField(parts[2])
			entry.StartDate, entry.EndDate, entry.IsCurrent = splitDates(parts[3])
		case 3:
			// Older emissions omit the location segment.
			entry.Position = cleanField(parts[0])
			entry.Company = cleanField(parts[1])
			entry.StartDate, entry.EndDate, entry.IsCurrent = splitDates(parts[2])
		default:
			continue
		}
		doc.WorkExperience = append(doc.WorkExperience, entry)
	}
}

func classicEducation(source string, doc *types.ResumeDocument) {
	body := sectionBody(source, "Education")
	for _, chunk := range splitEntries(body, `\subsection`) {
		parts, rest, ok := classicHeader(chunk)
		if !ok || len(parts) < 3 {
			continue
		}
		entry := types.EducationEntry{}
		if len(parts) >= 4 {
			entry.Degree = cleanField(parts[0])
			entry.Institution = cleanField(parts[1])
			entry.Location = cleanField(parts[2])
			entry.StartDate, entry.EndDate, _ = splitDates(parts[3])
		} else {
			entry.Degree = cleanField(parts[0])
			entry.Institution = cleanField(parts[1])
			entry.StartDate, entry.EndDate, _ = splitDates(parts[2])
		}
		for _, line := range strings.Split(rest, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if gpa, ok := strings.CutPrefix(line, "GPA:"); ok {
				entry.GPA = cleanField(gpa)
				continue
			}
			if entry.Field == "" {
				entry.Field = cleanField(line)
			}
		}
		doc.Education = append(doc.Education, entry)
	}
}

func classicSkills(source string, doc *types.ResumeDocument) {
	body := sectionBody(source, "Skills")
	if body == "" {
		return
	}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), `\\`))
		if payload, ok := strings.CutPrefix(line, `\textbf{Technical Skills:}`); ok {
			doc.Skills.Technical = cleanSkillList(strings.TrimSpace(payload))
		}
		if payload, ok := strings.CutPrefix(line, `\textbf{Languages:}`); ok {
			doc.Skills.Languages = cleanSkillList(strings.TrimSpace(payload))
		}
	}
}

func classicProjects(source string, doc *types.ResumeDocument) {
	body := sectionBody(source, "Projects")
	for _, chunk := range splitEntries(body, `\subsection`) {
		parts, rest, ok := classicHeader(chunk)
		if !ok || len(parts) == 0 {
			continue
		}
		entry := types.ProjectEntry{Name: cleanField(parts[0])}
		if len(parts) >= 2 {
			entry.StartDate, entry.EndDate, entry.IsOngoing = splitDates(parts[1])
		}
		descBody, technologies := splitTechnologies(rest)
		entry.Description = reconstructDescription(descBody)
		entry.Technologies = technologies
		doc.Projects = append(doc.Projects, entry)
	}
}
