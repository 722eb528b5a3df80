package schemas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestResolveSchemaPath_FindsRepoSchema(t *testing.T) {
	path := ResolveSchemaPath(ResumeSchemaPath)
	assert.NotEmpty(t, path)
}

func TestResolveSchemaPath_MissingFile(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does-not-exist.json"))
}

func TestValidateResumeJSON_ValidDocument(t *testing.T) {
	doc := types.ResumeDocument{
		PersonalInfo:        types.PersonalInfo{FirstName: "Jane", LastName: "Smith"},
		ProfessionalSummary: "A summary.",
		Education:           []types.EducationEntry{{Institution: "MIT", Degree: "BSc"}},
		WorkExperience:      []types.ExperienceEntry{{Company: "Acme", Position: "Engineer"}},
		Skills:              types.SkillSet{Technical: []string{"Go"}},
		SelectedTemplate:    types.TemplateModern,
	}
	raw, err := json.Marshal(&doc)
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeJSON(raw))
}

func TestValidateResumeJSON_EmptyDocument(t *testing.T) {
	raw, err := json.Marshal(&types.ResumeDocument{})
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeJSON(raw))
}

func TestValidateResumeJSON_MissingRequiredEntryFields(t *testing.T) {
	raw := []byte(`{"education": [{"field": "CS"}]}`)

	err := ValidateResumeJSON(raw)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateResumeJSON_UnknownFieldsRejected(t *testing.T) {
	raw := []byte(`{"salary_expectation": "lots"}`)

	err := ValidateResumeJSON(raw)
	require.Error(t, err)

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestValidateResumeJSON_InvalidTemplateValue(t *testing.T) {
	raw := []byte(`{"selected_template": "futuristic"}`)

	err := ValidateResumeJSON(raw)
	require.Error(t, err)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "education.0", Message: "institution is required"},
	}}
	assert.Contains(t, ve.Error(), "education.0")
	assert.Contains(t, ve.Error(), "institution is required")
}
