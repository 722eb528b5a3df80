// Package scoring implements the heuristic ATS compatibility score: a
// purely additive point system over a resume document with categorized
// feedback. Scoring is deterministic, total over sparse documents, and
// performs no I/O.
package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Report is the result of scoring one resume: a 0-100 score plus
// categorized feedback lines. Feedback always begins with the overall
// banner message.
type Report struct {
	Score        int      `json:"score"`
	Feedback     []string `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

var (
	digitRe = regexp.MustCompile(`\d`)
	// strongVerbRe matches the fixed whitelist of strong action verbs on
	// word boundaries, case-insensitively.
	strongVerbRe = regexp.MustCompile(`(?i)\b(led|managed|developed|created|improved|increased|reduced|achieved|delivered)\b`)
)

// Keyword buckets for job-role alignment. The bucket is chosen by substring
// match on the lowercased job role.
var (
	engineeringKeywords = []string{"programming", "coding", "development", "software", "api", "database", "framework"}
	managementKeywords  = []string{"team", "leadership", "management", "strategy", "planning", "coordination"}
	designKeywords      = []string{"design", "user", "interface", "experience", "prototype", "visual"}
)

// Score evaluates a resume document and returns its ATS report. Every check
// tolerates absent fields; an empty document scores zero with the lowest
// banner.
func Score(doc *types.ResumeDocument) *Report {
	if doc == nil {
		doc = &types.ResumeDocument{}
	}

	r := &Report{
		Feedback:     []string{},
		Strengths:    []string{},
		Improvements: []string{},
	}
	score := 0

	// Personal info (up to 20 points).
	pi := doc.PersonalInfo
	if pi.FirstName != "" && pi.LastName != "" {
		score += 5
		r.Strengths = append(r.Strengths, "Complete name provided")
	} else {
		r.Improvements = append(r.Improvements, "Add complete first and last name")
	}
	if strings.Contains(pi.Email, "@") {
		score += 5
		r.Strengths = append(r.Strengths, "Valid email address")
	} else {
		r.Improvements = append(r.Improvements, "Add a valid email address")
	}
	if pi.Phone != "" {
		score += 3
		r.Strengths = append(r.Strengths, "Phone number included")
	} else {
		r.Improvements = append(r.Improvements, "Add phone number for contact")
	}
	if pi.Location != "" {
		score += 3
		r.Strengths = append(r.Strengths, "Location information provided")
	} else {
		r.Improvements = append(r.Improvements, "Add location for job matching")
	}
	if pi.LinkedIn != "" {
		score += 2
		r.Strengths = append(r.Strengths, "LinkedIn profile included")
	}
	if pi.JobRole != "" {
		score += 2
		r.Strengths = append(r.Strengths, "Clear job role specified")
	} else {
		r.Improvements = append(r.Improvements, "Specify target job role")
	}

	// Professional summary (up to 15 points), banded by length.
	if doc.ProfessionalSummary != "" {
		switch n := len(doc.ProfessionalSummary); {
		case n >= 100 && n <= 300:
			score += 15
			r.Strengths = append(r.Strengths, "Well-sized professional summary (100-300 characters)")
		case n >= 50:
			score += 10
			r.Feedback = append(r.Feedback, "Professional summary could be optimized (aim for 100-300 characters)")
		default:
			score += 5
			r.Improvements = append(r.Improvements, "Expand your professional summary")
		}
	} else {
		r.Improvements = append(r.Improvements, "Add a professional summary")
	}

	// Work experience (up to 25 points).
	if len(doc.WorkExperience) > 0 {
		score += 10
		r.Strengths = append(r.Strengths, "Work experience included")

		if anyDescription(doc.WorkExperience, digitRe.MatchString) {
			score += 8
			r.Strengths = append(r.Strengths, "Quantified achievements in experience")
		} else {
			r.Improvements = append(r.Improvements, "Add numbers and metrics to quantify your achievements")
		}

		if anyDescription(doc.WorkExperience, strongVerbRe.MatchString) {
			score += 7
			r.Strengths = append(r.Strengths, "Strong action verbs used")
		} else {
			r.Improvements = append(r.Improvements, "Use stronger action verbs (led, managed, developed, etc.)")
		}
	} else {
		r.Improvements = append(r.Improvements, "Add work experience if available")
	}

	// Skills (up to 20 points), banded by total count across all lists.
	switch total := doc.Skills.Total(); {
	case total >= 8:
		score += 20
		r.Strengths = append(r.Strengths, "Comprehensive skills section")
	case total >= 5:
		score += 15
		r.Feedback = append(r.Feedback, "Good skills coverage, consider adding more relevant skills")
	case total >= 3:
		score += 10
		r.Improvements = append(r.Improvements, "Add more relevant skills to your profile")
	default:
		r.Improvements = append(r.Improvements, "Expand your skills section significantly")
	}

	// Education (10 points, flat).
	if len(doc.Education) > 0 {
		score += 10
		r.Strengths = append(r.Strengths, "Education information included")
	} else {
		r.Improvements = append(r.Improvements, "Add education background")
	}

	// Projects (up to 10 bonus points).
	if len(doc.Projects) > 0 {
		score += 5
		r.Strengths = append(r.Strengths, "Projects showcase your work")

		for _, p := range doc.Projects {
			if p.URL != "" || p.GitHubURL != "" {
				score += 5
				r.Strengths = append(r.Strengths, "Project links provided for verification")
				break
			}
		}
	}

	// Job-role keyword alignment (up to 5 bonus points). Only evaluated
	// when a target role is set; roles matching no bucket contribute
	// nothing.
	if pi.JobRole != "" {
		matches := keywordMatches(doc)
		switch {
		case matches >= 3:
			score += 5
			r.Strengths = append(r.Strengths, "Good keyword alignment with target role")
		case matches >= 1:
			r.Feedback = append(r.Feedback, "Consider adding more keywords related to your target role")
		default:
			r.Improvements = append(r.Improvements, "Include more keywords relevant to your target job role")
		}
	}

	// Clamp once at the end so bonus categories can offset shortfalls
	// elsewhere, never per category.
	if score > 100 {
		score = 100
	}
	r.Score = score

	r.Feedback = append([]string{banner(score)}, r.Feedback...)
	return r
}

// anyDescription reports whether any experience description satisfies match.
func anyDescription(entries []types.ExperienceEntry, match func(string) bool) bool {
	for _, e := range entries {
		if e.Description != "" && match(e.Description) {
			return true
		}
	}
	return false
}

// keywordMatches counts distinct bucket keywords present in the resume's
// combined text for the job role's bucket.
func keywordMatches(doc *types.ResumeDocument) int {
	role := strings.ToLower(doc.PersonalInfo.JobRole)

	var keywords []string
	switch {
	case strings.Contains(role, "software") || strings.Contains(role, "developer") || strings.Contains(role, "engineer"):
		keywords = engineeringKeywords
	case strings.Contains(role, "manager") || strings.Contains(role, "lead"):
		keywords = managementKeywords
	case strings.Contains(role, "design"):
		keywords = designKeywords
	default:
		return 0
	}

	parts := []string{doc.ProfessionalSummary}
	for _, e := range doc.WorkExperience {
		parts = append(parts, e.Description)
	}
	for _, p := range doc.Projects {
		parts = append(parts, p.Description)
	}
	parts = append(parts, doc.Skills.Technical...)
	haystack := strings.ToLower(strings.Join(parts, " "))

	count := 0
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			count++
		}
	}
	return count
}

// banner returns the single overall feedback message for a final score.
func banner(score int) string {
	switch {
	case score >= 90:
		return "Excellent! Your resume is highly ATS-friendly"
	case score >= 80:
		return "Great job! Your resume should perform well with ATS systems"
	case score >= 70:
		return "Good foundation, but there's room for improvement"
	case score >= 60:
		return "Your resume needs some optimization for ATS systems"
	default:
		return "Significant improvements needed for ATS compatibility"
	}
}
