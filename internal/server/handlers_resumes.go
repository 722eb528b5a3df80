package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/latex"
	"github.com/jonathan/resume-builder/internal/pdf"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/scoring"
	"github.com/jonathan/resume-builder/internal/types"
)

// handleCreateResume stores a new resume document.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Validation failed: %v", err))
		return
	}
	if err := validateDocument(req.Document); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	tmpl := types.NormalizeTemplate(req.Template)
	req.Document.SelectedTemplate = tmpl

	id, err := s.db.CreateResume(r.Context(), req.Title, tmpl, req.Document)
	if err != nil {
		log.Printf("Error creating resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create resume")
		return
	}

	rec, err := s.db.GetResume(r.Context(), id)
	if err != nil || rec == nil {
		log.Printf("Error loading created resume %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load created resume")
		return
	}
	s.jsonResponse(w, http.StatusCreated, rec)
}

// handleListResumes returns all stored resumes.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.db.ListResumes(r.Context())
	if err != nil {
		log.Printf("Error listing resumes: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes")
		return
	}
	if resumes == nil {
		resumes = []db.Resume{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes, "count": len(resumes)})
}

// handleGetResume returns one stored resume.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadResume(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleUpdateResume replaces a stored resume's content.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	var req types.UpdateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Validation failed: %v", err))
		return
	}
	if err := validateDocument(req.Document); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		log.Printf("Error loading resume %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load resume")
		return
	}
	if existing == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	title := req.Title
	if title == "" {
		title = existing.Title
	}
	tmpl := existing.SelectedTemplate
	if req.Template != "" {
		tmpl = types.NormalizeTemplate(req.Template)
	}
	req.Document.SelectedTemplate = tmpl

	updated, err := s.db.UpdateResume(r.Context(), id, title, tmpl, req.Document)
	if err != nil {
		log.Printf("Error updating resume %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update resume")
		return
	}
	if !updated {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	rec, err := s.db.GetResume(r.Context(), id)
	if err != nil || rec == nil {
		log.Printf("Error loading updated resume %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load updated resume")
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleDeleteResume removes a stored resume.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	deleted, err := s.db.DeleteResume(r.Context(), id)
	if err != nil {
		log.Printf("Error deleting resume %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete resume")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleGenerateLatex regenerates LaTeX source from the stored document and
// persists it alongside the structured data.
func (s *Server) handleGenerateLatex(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	source := latex.Generate(&rec.Document, rec.SelectedTemplate)
	if err := s.db.UpdateLatexSource(r.Context(), rec.ID, source); err != nil {
		log.Printf("Error storing latex source for %s: %v", rec.ID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store LaTeX source")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":           rec.ID,
		"template":     rec.SelectedTemplate,
		"latex_source": source,
	})
}

// handleResumeTex serves the resume's LaTeX source as a downloadable file.
// Missing source is generated on the fly but not persisted.
func (s *Server) handleResumeTex(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	source := rec.LatexSource
	if source == "" {
		source = latex.Generate(&rec.Document, rec.SelectedTemplate)
	}

	w.Header().Set("Content-Type", "application/x-tex")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.tex"`)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, source)
}

// handleEditResume runs the AI edit pipeline against a stored resume and
// persists the result. The stored record is only written after the whole
// pipeline succeeds.
func (s *Server) handleEditResume(w http.ResponseWriter, r *http.Request) {
	if s.rewriter == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "AI editing is not configured")
		return
	}

	rec, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	var req types.EditResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Validation failed: %v", err))
		return
	}

	result, err := pipeline.Edit(r.Context(), &rec.Document, req.Instruction, s.rewriter)
	if err != nil {
		log.Printf("Edit pipeline failed for %s: %v", rec.ID, err)
		s.errorResponse(w, http.StatusBadGateway, "Edit failed; resume unchanged")
		return
	}

	if _, err := s.db.UpdateResume(r.Context(), rec.ID, rec.Title, rec.SelectedTemplate, result.Document); err != nil {
		log.Printf("Error persisting edited resume %s: %v", rec.ID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to persist edited resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleScoreResume scores a stored resume.
func (s *Server) handleScoreResume(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadResume(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, scoring.Score(&rec.Document))
}

// handleResumePDF renders a stored resume to PDF via headless Chrome.
func (s *Server) handleResumePDF(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	html, err := pdf.BuildHTML(&rec.Document)
	if err != nil {
		log.Printf("Error building PDF preview for %s: %v", rec.ID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build PDF preview")
		return
	}

	data, err := s.renderer.RenderHTML(r.Context(), html)
	if err != nil {
		log.Printf("Error rendering PDF for %s: %v", rec.ID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// loadResume fetches the resume identified by the path, writing the error
// response itself when the ID is bad or the record is missing.
func (s *Server) loadResume(w http.ResponseWriter, r *http.Request) (*db.Resume, bool) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return nil, false
	}

	rec, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		log.Printf("Error loading resume %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load resume")
		return nil, false
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return nil, false
	}
	return rec, true
}

// resumeID parses the {id} path segment.
func (s *Server) resumeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return uuid.Nil, false
	}
	return id, true
}

// validateDocument checks an incoming document against the JSON Schema.
func validateDocument(doc *types.ResumeDocument) error {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}
	if err := schemas.ValidateResumeJSON(docJSON); err != nil {
		return fmt.Errorf("document validation failed: %w", err)
	}
	return nil
}
