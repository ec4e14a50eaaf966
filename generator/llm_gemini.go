package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiLLM implements LLMClient for Google Gemini.
type GeminiLLM struct {
	Model  string
	apiKey string
}

func NewGeminiLLM(cfg LLMSettings) *GeminiLLM {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &GeminiLLM{Model: model, apiKey: cfg.APIKey}
}

func (g *GeminiLLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("gemini: api key missing")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.Model)
	if prompt.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(prompt.System)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt.User))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return textFromResponse(resp), nil
}

// textFromResponse joins the text parts of the first candidate. A response
// without text yields "".
func textFromResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	return strings.Join(parts, "")
}
