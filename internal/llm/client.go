// Package llm provides the Gemini-backed text-rewrite collaborator used by
// the edit pipeline.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-builder/internal/pipeline"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-1.5-flash"

// rewritePrompt instructs the model to return the complete modified LaTeX
// plus a concise change summary as JSON.
const rewritePrompt = `You are an expert LaTeX resume editor. Modify the LaTeX resume source below according to the user request.

Return a JSON object with exactly these fields:
- "summary": a concise, specific description of the modifications made
- "latex_code": the complete modified LaTeX source, valid and compilable

Keep the document structure and packages intact; only change content unless the request says otherwise.

User request: %q

Current LaTeX source:
%s`

// GeminiRewriter implements pipeline.Rewriter on top of the Gemini API.
type GeminiRewriter struct {
	client *genai.Client
	model  string
}

var _ pipeline.Rewriter = (*GeminiRewriter)(nil)

// NewGeminiRewriter creates a rewriter. An empty model selects DefaultModel.
func NewGeminiRewriter(ctx context.Context, apiKey, model string) (*GeminiRewriter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiRewriter{client: client, model: model}, nil
}

// Rewrite sends the LaTeX source and instruction to the model and decodes
// the JSON response into a RewriteResult.
func (g *GeminiRewriter) Rewrite(ctx context.Context, latexSource, instruction string) (*pipeline.RewriteResult, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.3) // Low temperature for consistent edits
	model.ResponseMIMEType = "application/json"

	prompt := fmt.Sprintf(rewritePrompt, instruction, latexSource)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Summary   string `json:"summary"`
		LatexCode string `json:"latex_code"`
	}
	if err := json.Unmarshal([]byte(cleanJSONBlock(text)), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse rewrite response: %w", err)
	}
	if strings.TrimSpace(payload.LatexCode) == "" {
		return nil, fmt.Errorf("rewrite response contained no LaTeX source")
	}

	return &pipeline.RewriteResult{
		LatexSource: payload.LatexCode,
		Summary:     payload.Summary,
	}, nil
}

// Close releases resources held by the client.
func (g *GeminiRewriter) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
