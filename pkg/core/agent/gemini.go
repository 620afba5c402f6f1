package agent

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// GeminiProvider is the cloud fallback used when the fallback model names a
// gemini-* model and the local runtime is unreachable.
type GeminiProvider struct {
	Model string // e.g. "gemini-2.0-flash-exp"
}

var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider returns the cloud provider. An empty model uses the
// default flash model.
func NewGeminiProvider(model string) *GeminiProvider {
	if model == "" {
		model = "gemini-2.0-flash-exp"
	}
	return &GeminiProvider{Model: model}
}

// Name implements Provider.
func (p *GeminiProvider) Name() string { return "gemini" }

// Available reports whether the API key is configured. No network probe:
// the first Generate call surfaces connectivity errors.
func (p *GeminiProvider) Available(ctx context.Context) bool {
	return os.Getenv("GEMINI_API_KEY") != ""
}

// Generate sends a generateContent request via the official GenAI SDK.
func (p *GeminiProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	model := p.Model
	if model == "" {
		model = "gemini-2.0-flash-exp"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("GEMINI_CLIENT_ERROR: %v", err)
	}

	config := &genai.GenerateContentConfig{}
	if systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(userPrompt), config)
	if err != nil {
		return "", fmt.Errorf("GEMINI_API_ERROR: %v", err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("GEMINI_NO_CANDIDATES: empty response")
	}

	var out string
	for _, part := range result.Candidates[0].Content.Parts {
		out += part.Text
	}
	return out, nil
}
