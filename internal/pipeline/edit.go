// Package pipeline provides the edit orchestration sequence: generate or
// reuse LaTeX, send it to the external rewrite collaborator, re-parse the
// result into structured data, and re-score.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/latex"
	"github.com/jonathan/resume-builder/internal/scoring"
	"github.com/jonathan/resume-builder/internal/types"
)

// RewriteResult is what the text-rewrite collaborator returns: the full
// rewritten LaTeX source and a short human-readable change summary.
type RewriteResult struct {
	LatexSource string `json:"latex_source"`
	Summary     string `json:"summary"`
}

// Rewriter is the external text-rewrite collaborator. Implementations may
// fail (quota, auth, service errors); the pipeline treats any failure as
// non-fatal to the stored document.
type Rewriter interface {
	Rewrite(ctx context.Context, latexSource, instruction string) (*RewriteResult, error)
}

// Result carries the outcome of one edit pipeline run.
type Result struct {
	Document      *types.ResumeDocument `json:"document"`
	ChangeSummary string                `json:"change_summary,omitempty"`
	Report        *scoring.Report       `json:"report"`
}

// Edit runs the linear edit sequence against doc without mutating it. The
// input document's LaTeX source is generated first when absent or stale
// placeholder text; the rewrite response is fully received before parsing.
// On collaborator failure the error is returned and the caller's document
// is untouched, so a stored resume is never partially overwritten.
func Edit(ctx context.Context, doc *types.ResumeDocument, instruction string, rw Rewriter) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("edit: document is required")
	}
	if rw == nil {
		return nil, fmt.Errorf("edit: rewriter is required")
	}

	tmpl := types.NormalizeTemplate(string(doc.SelectedTemplate))

	source := doc.LatexSource
	if !usableLatex(source) {
		source = latex.Generate(doc, tmpl)
	}

	rewritten, err := rw.Rewrite(ctx, source, instruction)
	if err != nil {
		return nil, fmt.Errorf("rewrite failed: %w", err)
	}
	if rewritten == nil || strings.TrimSpace(rewritten.LatexSource) == "" {
		return nil, fmt.Errorf("rewrite returned empty LaTeX source")
	}

	// Merge the best-effort parse onto a copy; absent fields in the parse
	// never clear existing data.
	updated := *doc
	updated.Merge(latex.Parse(rewritten.LatexSource))
	updated.LatexSource = rewritten.LatexSource

	return &Result{
		Document:      &updated,
		ChangeSummary: rewritten.Summary,
		Report:        scoring.Score(&updated),
	}, nil
}

// usableLatex reports whether a stored source is real LaTeX rather than
// empty or a bare template name placeholder.
func usableLatex(source string) bool {
	source = strings.TrimSpace(source)
	if source == "" {
		return false
	}
	return strings.Contains(source, `\documentclass`)
}
