package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OllamaProvider talks to a local Ollama runtime over its generate API.
type OllamaProvider struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	System  string        `json:"system,omitempty"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type ollamaError struct {
	Error string `json:"error"`
}

// NewOllamaProvider creates a provider for the given endpoint and model.
// An empty baseURL defaults to the local runtime.
func NewOllamaProvider(baseURL, model string, timeout time.Duration) *OllamaProvider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &OllamaProvider{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Name implements Provider.
func (p *OllamaProvider) Name() string { return "ollama" }

// Available checks the runtime by listing its models.
func (p *OllamaProvider) Available(ctx context.Context) bool {
	url := fmt.Sprintf("%s/api/tags", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode == http.StatusOK
}

// Generate implements Provider over the non-streaming generate endpoint.
func (p *OllamaProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	apiReq := ollamaRequest{
		Model:  p.model,
		Prompt: userPrompt,
		System: systemPrompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: 0.1, // near-deterministic; this is classification, not prose
			NumPredict:  800,
		},
	}

	body, err := json.Marshal(apiReq)
	if err != nil {
		return "", fmt.Errorf("OLLAMA_MARSHAL_ERROR: %v", err)
	}

	url := fmt.Sprintf("%s/api/generate", p.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("OLLAMA_REQ_CREATE_ERROR: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("OLLAMA_API_CALL_ERROR: %v", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("OLLAMA_READ_BODY_ERROR: %v", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var apiErr ollamaError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error != "" {
			return "", fmt.Errorf("OLLAMA_API_ERROR: status=%d: %s", httpResp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("OLLAMA_API_ERROR: status=%d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp ollamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("OLLAMA_UNMARSHAL_ERROR: %v", err)
	}
	return resp.Response, nil
}
