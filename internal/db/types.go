package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// Resume is a stored resume record. The structured document and the raw
// LaTeX source are persisted side by side and are allowed to diverge
// between reconciliation points; the edit pipeline brings them back in
// sync.
type Resume struct {
	ID               uuid.UUID            `json:"id"`
	Title            string               `json:"title"`
	SelectedTemplate types.Template       `json:"selected_template"`
	Document         types.ResumeDocument `json:"document"`
	LatexSource      string               `json:"latex_source,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}
