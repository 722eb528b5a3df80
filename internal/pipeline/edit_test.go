package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/latex"
	"github.com/jonathan/resume-builder/internal/types"
)

// fakeRewriter records the source it was given and plays back a canned
// response.
type fakeRewriter struct {
	gotSource      string
	gotInstruction string
	result         *RewriteResult
	err            error
}

func (f *fakeRewriter) Rewrite(_ context.Context, latexSource, instruction string) (*RewriteResult, error) {
	f.gotSource = latexSource
	f.gotInstruction = instruction
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func baseDocument() *types.ResumeDocument {
	return &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			FirstName: "Jane",
			LastName:  "Smith",
			Email:     "jane@example.com",
		},
		ProfessionalSummary: "Original summary.",
		Skills:              types.SkillSet{Soft: []string{"Mentoring"}},
		SelectedTemplate:    types.TemplateModern,
	}
}

func TestEdit_GeneratesLatexWhenSourceMissing(t *testing.T) {
	doc := baseDocument()
	require.Empty(t, doc.LatexSource)

	rewritten := latex.Generate(doc, types.TemplateModern)
	fake := &fakeRewriter{result: &RewriteResult{LatexSource: rewritten, Summary: "No changes"}}

	result, err := Edit(context.Background(), doc, "tighten the summary", fake)
	require.NoError(t, err)

	assert.Contains(t, fake.gotSource, `\documentclass`)
	assert.Equal(t, "tighten the summary", fake.gotInstruction)
	assert.Equal(t, "No changes", result.ChangeSummary)
	require.NotNil(t, result.Report)
}

func TestEdit_ReusesStoredLatexSource(t *testing.T) {
	doc := baseDocument()
	doc.LatexSource = latex.Generate(doc, types.TemplateModern)

	fake := &fakeRewriter{result: &RewriteResult{LatexSource: doc.LatexSource}}
	_, err := Edit(context.Background(), doc, "anything", fake)
	require.NoError(t, err)

	assert.Equal(t, doc.LatexSource, fake.gotSource)
}

func TestEdit_RegeneratesWhenStoredSourceIsNotLatex(t *testing.T) {
	doc := baseDocument()
	doc.LatexSource = "modern" // placeholder left behind by older records

	fake := &fakeRewriter{result: &RewriteResult{LatexSource: latex.Generate(doc, types.TemplateModern)}}
	_, err := Edit(context.Background(), doc, "anything", fake)
	require.NoError(t, err)

	assert.Contains(t, fake.gotSource, `\documentclass`)
}

func TestEdit_MergesParsedChangesOntoCopy(t *testing.T) {
	doc := baseDocument()

	edited := *doc
	edited.ProfessionalSummary = "A completely rewritten professional summary with more impact."
	rewritten := latex.Generate(&edited, types.TemplateModern)

	fake := &fakeRewriter{result: &RewriteResult{LatexSource: rewritten, Summary: "Rewrote summary"}}
	result, err := Edit(context.Background(), doc, "improve the summary", fake)
	require.NoError(t, err)

	assert.Equal(t, "A completely rewritten professional summary with more impact.", result.Document.ProfessionalSummary)
	assert.Equal(t, rewritten, result.Document.LatexSource)
	// Soft skills have no LaTeX emission point; the merge must keep them.
	assert.Equal(t, []string{"Mentoring"}, result.Document.Skills.Soft)
	// The caller's document is untouched.
	assert.Equal(t, "Original summary.", doc.ProfessionalSummary)
	assert.Empty(t, doc.LatexSource)
}

func TestEdit_RewriterFailureLeavesDocumentUntouched(t *testing.T) {
	doc := baseDocument()
	fake := &fakeRewriter{err: errors.New("quota exceeded")}

	result, err := Edit(context.Background(), doc, "anything", fake)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, strings.Contains(err.Error(), "quota exceeded"))
	assert.Equal(t, "Original summary.", doc.ProfessionalSummary)
	assert.Empty(t, doc.LatexSource)
}

func TestEdit_EmptyRewriteResponseIsError(t *testing.T) {
	doc := baseDocument()
	fake := &fakeRewriter{result: &RewriteResult{LatexSource: "   "}}

	result, err := Edit(context.Background(), doc, "anything", fake)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestEdit_NilArguments(t *testing.T) {
	fake := &fakeRewriter{result: &RewriteResult{LatexSource: "x"}}

	_, err := Edit(context.Background(), nil, "anything", fake)
	assert.Error(t, err)

	_, err = Edit(context.Background(), baseDocument(), "anything", nil)
	assert.Error(t, err)
}

func TestEdit_ScoresTheUpdatedDocument(t *testing.T) {
	doc := baseDocument()

	edited := *doc
	edited.ProfessionalSummary = "Software engineer with eight years of experience building distributed systems and developer tooling for large platforms."
	fake := &fakeRewriter{result: &RewriteResult{LatexSource: latex.Generate(&edited, types.TemplateModern)}}

	result, err := Edit(context.Background(), doc, "expand the summary", fake)
	require.NoError(t, err)
	require.NotNil(t, result.Report)
	assert.Greater(t, result.Report.Score, 0)
}
