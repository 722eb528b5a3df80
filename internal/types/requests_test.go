package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateResumeRequest_Validate(t *testing.T) {
	req := CreateResumeRequest{Title: "My Resume", Document: &ResumeDocument{}}
	assert.NoError(t, req.Validate())

	req.Title = ""
	assert.Error(t, req.Validate())

	req.Title = "My Resume"
	req.Document = nil
	assert.Error(t, req.Validate())
}

func TestCreateResumeRequest_TemplateValues(t *testing.T) {
	req := CreateResumeRequest{Title: "r", Document: &ResumeDocument{}}

	req.Template = "modern"
	assert.NoError(t, req.Validate())

	req.Template = "classic"
	assert.NoError(t, req.Validate())

	req.Template = "futuristic"
	assert.Error(t, req.Validate())

	req.Template = ""
	assert.NoError(t, req.Validate())
}

func TestEditResumeRequest_Validate(t *testing.T) {
	req := EditResumeRequest{Instruction: "make it better"}
	assert.NoError(t, req.Validate())

	req.Instruction = ""
	assert.Error(t, req.Validate())
}

func TestParseLatexRequest_Validate(t *testing.T) {
	req := ParseLatexRequest{LatexSource: `\documentclass{article}`}
	assert.NoError(t, req.Validate())

	req.LatexSource = ""
	assert.Error(t, req.Validate())
}
