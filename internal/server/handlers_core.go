package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/latex"
	"github.com/jonathan/resume-builder/internal/scoring"
	"github.com/jonathan/resume-builder/internal/types"
)

// handleParseLatex extracts structured data from raw LaTeX source. Parsing
// is best-effort: unrecognized sections come back empty rather than failing
// the request.
func (s *Server) handleParseLatex(w http.ResponseWriter, r *http.Request) {
	var req types.ParseLatexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Validation failed: %v", err))
		return
	}

	doc := latex.Parse(req.LatexSource)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"document": doc,
		"template": doc.SelectedTemplate,
	})
}

// handleScoreDocument scores an ad-hoc document without storing it.
func (s *Server) handleScoreDocument(w http.ResponseWriter, r *http.Request) {
	var doc types.ResumeDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	s.jsonResponse(w, http.StatusOK, scoring.Score(&doc))
}
