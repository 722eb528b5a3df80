// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Template identifies which LaTeX template family a resume uses.
type Template string

// Supported template families.
const (
	TemplateModern  Template = "modern"
	TemplateClassic Template = "classic"
)

// NormalizeTemplate maps an arbitrary template tag to a supported one.
// Anything other than "classic" falls back to "modern".
func NormalizeTemplate(s string) Template {
	if Template(strings.ToLower(strings.TrimSpace(s))) == TemplateClassic {
		return TemplateClassic
	}
	return TemplateModern
}

// PersonalInfo holds the contact block of a resume. All fields are plain
// text; nothing here is validated beyond what the scoring engine checks.
type PersonalInfo struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Website   string `json:"website,omitempty"`
	GitHub    string `json:"github,omitempty"`
	JobRole   string `json:"job_role,omitempty"`
}

// EducationEntry is one item in the education history. Order within the
// slice is preserved by position.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Location    string `json:"location,omitempty"`
}

// ExperienceEntry is one work experience item. Description is free text;
// lines prefixed with "•" or "-" are treated as bullet items by the LaTeX
// generator, other lines as plain paragraphs.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	IsCurrent   bool   `json:"is_current,omitempty"`
	Description string `json:"description,omitempty"`
}

// EffectiveEndDate returns the end date that should be rendered.
// A current role always reads "Present", regardless of any stale stored value.
func (e *ExperienceEntry) EffectiveEndDate() string {
	if e.IsCurrent {
		return "Present"
	}
	return e.EndDate
}

// ProjectEntry is one project item with optional links and date range.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	IsOngoing    bool     `json:"is_ongoing,omitempty"`
	URL          string   `json:"url,omitempty"`
	GitHubURL    string   `json:"github_url,omitempty"`
}

// EffectiveEndDate returns the end date that should be rendered.
// An ongoing project always reads "Present".
func (p *ProjectEntry) EffectiveEndDate() string {
	if p.IsOngoing {
		return "Present"
	}
	return p.EndDate
}

// SkillSet holds three independent ordered skill lists.
type SkillSet struct {
	Technical []string `json:"technical,omitempty"`
	Soft      []string `json:"soft,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

// addUnique appends skill to list unless the exact string is already present.
func addUnique(list []string, skill string) []string {
	for _, s := range list {
		if s == skill {
			return list
		}
	}
	return append(list, skill)
}

// AddTechnical appends a technical skill, skipping exact duplicates.
func (s *SkillSet) AddTechnical(skill string) { s.Technical = addUnique(s.Technical, skill) }

// AddSoft appends a soft skill, skipping exact duplicates.
func (s *SkillSet) AddSoft(skill string) { s.Soft = addUnique(s.Soft, skill) }

// AddLanguage appends a spoken language, skipping exact duplicates.
func (s *SkillSet) AddLanguage(skill string) { s.Languages = addUnique(s.Languages, skill) }

// Total returns the combined count across all three lists.
func (s *SkillSet) Total() int {
	return len(s.Technical) + len(s.Soft) + len(s.Languages)
}

// ResumeDocument aggregates all structured resume content plus the raw
// LaTeX source last generated or edited for it. The structured fields and
// LatexSource are allowed to diverge between reconciliation points; they
// are only brought back in sync by the edit pipeline.
type ResumeDocument struct {
	PersonalInfo        PersonalInfo      `json:"personal_info"`
	ProfessionalSummary string            `json:"professional_summary,omitempty"`
	Education           []EducationEntry  `json:"education,omitempty"`
	WorkExperience      []ExperienceEntry `json:"work_experience,omitempty"`
	Projects            []ProjectEntry    `json:"projects,omitempty"`
	Skills              SkillSet          `json:"skills"`
	SelectedTemplate    Template          `json:"selected_template,omitempty"`
	LatexSource         string            `json:"latex_source,omitempty"`
}

// Merge copies every non-empty field of partial onto the document. Fields
// the parser could not extract stay untouched, so a best-effort parse never
// clears existing data. List fields are replaced wholesale when non-empty.
func (d *ResumeDocument) Merge(partial *ResumeDocument) {
	if partial == nil {
		return
	}

	mergeString(&d.PersonalInfo.FirstName, partial.PersonalInfo.FirstName)
	mergeString(&d.PersonalInfo.LastName, partial.PersonalInfo.LastName)
	mergeString(&d.PersonalInfo.Email, partial.PersonalInfo.Email)
	mergeString(&d.PersonalInfo.Phone, partial.PersonalInfo.Phone)
	mergeString(&d.PersonalInfo.Location, partial.PersonalInfo.Location)
	mergeString(&d.PersonalInfo.LinkedIn, partial.PersonalInfo.LinkedIn)
	mergeString(&d.PersonalInfo.Website, partial.PersonalInfo.Website)
	mergeString(&d.PersonalInfo.GitHub, partial.PersonalInfo.GitHub)
	mergeString(&d.PersonalInfo.JobRole, partial.PersonalInfo.JobRole)
	mergeString(&d.ProfessionalSummary, partial.ProfessionalSummary)

	if len(partial.Education) > 0 {
		d.Education = partial.Education
	}
	if len(partial.WorkExperience) > 0 {
		d.WorkExperience = partial.WorkExperience
	}
	if len(partial.Projects) > 0 {
		d.Projects = partial.Projects
	}
	if len(partial.Skills.Technical) > 0 {
		d.Skills.Technical = partial.Skills.Technical
	}
	if len(partial.Skills.Soft) > 0 {
		d.Skills.Soft = partial.Skills.Soft
	}
	if len(partial.Skills.Languages) > 0 {
		d.Skills.Languages = partial.Skills.Languages
	}
	if partial.SelectedTemplate != "" {
		d.SelectedTemplate = partial.SelectedTemplate
	}
	if partial.LatexSource != "" {
		d.LatexSource = partial.LatexSource
	}
}

func mergeString(dst *string, src string) {
	if strings.TrimSpace(src) != "" {
		*dst = src
	}
}
