package latex

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// parseModern extracts resume data from the moderncv template family.
// Each step is independent and failure-tolerant.
func parseModern(source string, doc *types.ResumeDocument) {
	runStep("personal info", func() { modernPersonalInfo(source, doc) })
	runStep("summary", func() { modernSummary(source, doc) })
	runStep("experience", func() { modernExperience(source, doc) })
	runStep("education", func() { modernEducation(source, doc) })
	runStep("skills", func() { modernSkills(source, doc) })
	runStep("projects", func() { modernProjects(source, doc) })
}

func modernPersonalInfo(source string, doc *types.ResumeDocument) {
	pi := &doc.PersonalInfo

	if args, ok := macroArgs(source, `\name`, 2); ok {
		pi.FirstName = cleanField(args[0])
		pi.LastName = cleanField(args[1])
	}
	if args, ok := macroArgs(source, `\title`, 1); ok {
		pi.JobRole = cleanField(args[0])
	}
	if args, ok := macroArgs(source, `\email`, 1); ok {
		pi.Email = cleanField(args[0])
	}
	if args, ok := macroArgs(source, `\phone`, 1); ok {
		pi.Phone = cleanField(args[0])
	}
	// First address argument carries the city/location; the rest are unused.
	if args, ok := macroArgs(source, `\address`, 3); ok {
		pi.Location = cleanField(args[0])
	}
	if args, ok := macroArgs(source, `\social[linkedin]`, 1); ok {
		pi.LinkedIn = cleanField(args[0])
	}
	if args, ok := macroArgs(source, `\social[github]`, 1); ok {
		pi.GitHub = cleanField(args[0])
	}
}

func modernSummary(source string, doc *types.ResumeDocument) {
	body := sectionBody(source, "Professional Summary")
	if body == "" {
		return
	}
	if args, ok := macroArgs(body, `\cvitem`, 2); ok {
		doc.ProfessionalSummary = cleanField(args[1])
	}
}

func modernExperience(source string, doc *types.ResumeDocument) {
	body := sectionBody(source, "Experience")
	for _, chunk := range splitEntries(body, `\cventry`) {
		args, ok := scanBraceArgs(chunk, 6)
		if !ok {
			continue
		}
		start, end, current := splitDates(args[0])
		doc.WorkExperience = append(doc.WorkExperience, types.ExperienceEntry{
			Position:    cleanField(args[1]),
			Company:     cleanField(args[2]),
			Location:    cleanField(args[3]),
			StartDate:   start,
			EndDate:     end,
			IsCurrent:   current,
			Description: reconstructDescription(args[5]),
		})
	}
}

func modernEducation(source string, doc *types.ResumeDocument) {
	body := sectionBody(source, "Education")
	for _, chunk := range splitEntries(body, `\cventry`) {
		args, ok := scanBraceArgs(chunk, 6)
		if !ok {
			continue
		}
		start, end, _ := splitDates(args[0])
		doc.Education = append(doc.Education, types.EducationEntry{
			Degree:      cleanField(args[1]),
			Institution: cleanField(args[2]),
			GPA:         cleanField(args[3]),
			Location:    cleanField(args[4]),
			Field:       cleanField(args[5]),
			StartDate:   start,
			EndDate:     end,
		})
	}
}

func modernSkills(source string, doc *types.ResumeDocument) {
	body := sectionBody(source, "Skills")
	for _, chunk := range splitEntries(body, `\cvitem`) {
		args, ok := scanBraceArgs(chunk, 2)
		if !ok {
			continue
		}
		switch strings.TrimSpace(args[0]) {
		case "Technical":
			doc.Skills.Technical = cleanSkillList(args[1])
		case "Languages":
			doc.Skills.Languages = cleanSkillList(args[1])
		}
		// Soft skills have no emission point in the grammar; they are
		// always absent from parsed output.
	}
}

func modernProjects(source string, doc *types.ResumeDocument) {
	body := sectionBody(source, "Projects")
	for _, chunk := range splitEntries(body, `\cventry`) {
		args, ok := scanBraceArgs(chunk, 6)
		if !ok {
			continue
		}
		start, end, ongoing := splitDates(args[0])
		rest, technologies := splitTechnologies(args[5])
		doc.Projects = append(doc.Projects, types.ProjectEntry{
			Name:         cleanField(args[1]),
			Description:  reconstructDescription(rest),
			Technologies: technologies,
			StartDate:    start,
			EndDate:      end,
			IsOngoing:    ongoing,
		})
	}
}
