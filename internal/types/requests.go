package types

import "github.com/go-playground/validator/v10"

// CreateResumeRequest represents the request to create a new stored resume.
type CreateResumeRequest struct {
	Title    string          `json:"title" validate:"required,min=1"`
	Template string          `json:"template,omitempty" validate:"omitempty,oneof=modern classic"`
	Document *ResumeDocument `json:"document" validate:"required"`
}

// UpdateResumeRequest represents the request to replace a stored resume's content.
type UpdateResumeRequest struct {
	Title    string          `json:"title,omitempty"`
	Template string          `json:"template,omitempty" validate:"omitempty,oneof=modern classic"`
	Document *ResumeDocument `json:"document" validate:"required"`
}

// EditResumeRequest represents the request to run the AI edit pipeline
// against a stored resume's LaTeX source.
type EditResumeRequest struct {
	Instruction string `json:"instruction" validate:"required,min=1"`
}

// ParseLatexRequest represents the request to extract structured data from
// raw LaTeX source.
type ParseLatexRequest struct {
	LatexSource string `json:"latex_source" validate:"required,min=1"`
}

// Validate validates the CreateResumeRequest using the validator.
func (r *CreateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateResumeRequest using the validator.
func (r *UpdateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the EditResumeRequest using the validator.
func (r *EditResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ParseLatexRequest using the validator.
func (r *ParseLatexRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
