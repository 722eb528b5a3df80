package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-builder/internal/types"
)

// CreateResume inserts a new resume record and returns its ID. The raw
// LaTeX source lives in its own column; the JSONB document never carries a
// duplicate copy.
func (db *DB) CreateResume(ctx context.Context, title string, tmpl types.Template, doc *types.ResumeDocument) (uuid.UUID, error) {
	docJSON, latexSource, err := encodeDocument(doc)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (title, selected_template, document, latex_source)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		title, string(tmpl), docJSON, latexSource,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves one resume by ID. Returns nil without error when the
// record does not exist.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, title, selected_template, document, latex_source, created_at, updated_at
		 FROM resumes WHERE id = $1`, id)

	rec, err := scanResume(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return rec, nil
}

// ListResumes returns all stored resumes, most recently updated first.
func (db *DB) ListResumes(ctx context.Context) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, selected_template, document, latex_source, created_at, updated_at
		 FROM resumes ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		rec, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resumes: %w", err)
	}
	return resumes, nil
}

// UpdateResume replaces a stored resume's content. Returns false when the
// record does not exist.
func (db *DB) UpdateResume(ctx context.Context, id uuid.UUID, title string, tmpl types.Template, doc *types.ResumeDocument) (bool, error) {
	docJSON, latexSource, err := encodeDocument(doc)
	if err != nil {
		return false, err
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE resumes
		 SET title = $1, selected_template = $2, document = $3, latex_source = $4, updated_at = NOW()
		 WHERE id = $5`,
		title, string(tmpl), docJSON, latexSource, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateLatexSource stores a new LaTeX source for a resume without touching
// the structured document.
func (db *DB) UpdateLatexSource(ctx context.Context, id uuid.UUID, latexSource string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE resumes SET latex_source = $1, updated_at = NOW() WHERE id = $2`,
		latexSource, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update latex source: %w", err)
	}
	return nil
}

// DeleteResume removes a resume. Returns false when the record does not exist.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// encodeDocument marshals a document for storage, keeping the LaTeX source
// out of the JSONB payload (it has its own column).
func encodeDocument(doc *types.ResumeDocument) ([]byte, string, error) {
	if doc == nil {
		doc = &types.ResumeDocument{}
	}
	stored := *doc
	latexSource := stored.LatexSource
	stored.LatexSource = ""

	docJSON, err := json.Marshal(&stored)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal document: %w", err)
	}
	return docJSON, latexSource, nil
}

// scanResume reads one resume row and rehydrates the document, restoring
// the LaTeX source from its column.
func scanResume(row pgx.Row) (*Resume, error) {
	var (
		rec     Resume
		tmpl    string
		docJSON []byte
	)
	if err := row.Scan(&rec.ID, &rec.Title, &tmpl, &docJSON, &rec.LatexSource, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	rec.SelectedTemplate = types.Template(tmpl)

	if len(docJSON) > 0 {
		if err := json.Unmarshal(docJSON, &rec.Document); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
	}
	rec.Document.LatexSource = rec.LatexSource
	rec.Document.SelectedTemplate = rec.SelectedTemplate
	return &rec, nil
}
