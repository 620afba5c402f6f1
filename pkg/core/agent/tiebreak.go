package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"finmap/pkg/core/utils"
)

// CandidateSummary is the slice of a match candidate the model sees.
type CandidateSummary struct {
	CanonicalName  string  `json:"canonical_name"`
	PatternFamily  string  `json:"pattern_family"`
	RegexScore     float64 `json:"regex_score"`
	TemporalScore  float64 `json:"temporal_score"`
	SummationScore float64 `json:"summation_score"`
	TotalScore     float64 `json:"total_score"`
	Hints          string  `json:"reasoning_hints,omitempty"`
}

// Neighbor is one surrounding row included for context.
type Neighbor struct {
	RowID string `json:"row_id"`
	Label string `json:"label"`
}

// Request carries everything the model needs to pick between candidates.
type Request struct {
	RowIdx           string             `json:"row_idx"`
	HumanLabel       string             `json:"human_label"`
	Candidates       []CandidateSummary `json:"candidates"`
	RowValues        map[string]float64 `json:"row_values"`
	Neighbors        []Neighbor         `json:"neighbors,omitempty"`
	TemporalSummary  string             `json:"temporal_summary,omitempty"`
	SummationSummary string             `json:"summation_summary,omitempty"`
}

// Response is the model's selection. A null canonical name means the model
// declined to bind the row.
type Response struct {
	SelectedCanonicalName *string `json:"selected_canonical_name"`
	Confidence            float64 `json:"confidence"`
	Reasoning             string  `json:"reasoning"`
}

// Client runs the tie-break and discovery calls with a per-request timeout
// and a one-shot availability check.
type Client struct {
	provider Provider
	fallback Provider
	timeout  time.Duration

	availChecked bool
	available    bool
	activeName   string
}

// NewClient wires a primary provider and an optional fallback.
func NewClient(primary Provider, fallback Provider, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{provider: primary, fallback: fallback, timeout: timeout}
}

// Available probes the providers once per client lifetime. When the primary
// is unreachable the fallback (if any) is promoted; the decision is cached
// so a run logs the outage a single time.
func (c *Client) Available(ctx context.Context) bool {
	if c.availChecked {
		return c.available
	}
	c.availChecked = true

	if c.provider != nil && c.provider.Available(ctx) {
		c.available = true
		c.activeName = c.provider.Name()
		return true
	}
	if c.provider != nil {
		log.Printf("[WARNING] AGENT_UNAVAILABLE: %s endpoint unreachable", c.provider.Name())
	}
	if c.fallback != nil && c.fallback.Available(ctx) {
		log.Printf("Agent fallback provider %s active", c.fallback.Name())
		c.provider = c.fallback
		c.available = true
		c.activeName = c.fallback.Name()
		return true
	}
	c.available = false
	return false
}

const tieBreakSystemPrompt = `You are an expert financial analyst. You map rows of regulatory filing tables to a fixed canonical vocabulary.
You are given one ambiguous row with its candidate canonical facts and the evidence collected so far.
Pick the single best candidate, or null if none fits.

Respond with ONLY this JSON:
{
  "selected_canonical_name": "<one of the candidate names, or null>",
  "confidence": <0.0-1.0>,
  "reasoning": "<one or two sentences>"
}`

// ResolveTie asks the model to choose between a row's top candidates.
func (c *Client) ResolveTie(ctx context.Context, req *Request) (*Response, error) {
	if !c.Available(ctx) {
		return nil, fmt.Errorf("AGENT_UNAVAILABLE: no provider reachable")
	}

	payload, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("AGENT_MARSHAL_ERROR: %v", err)
	}

	userPrompt := fmt.Sprintf(`Ambiguous row to classify:

%s

Rules:
- selected_canonical_name must be exactly one of the candidate canonical_name values, or null.
- Prefer candidates whose temporal and summation evidence agree with the label.
- A row that is a sub-breakdown (segment, product line) of a nearby total should get null.
Return ONLY valid JSON.`, string(payload))

	return c.call(ctx, tieBreakSystemPrompt, userPrompt, allowedNames(req.Candidates))
}

// call runs one bounded request and parses the response leniently.
func (c *Client) call(ctx context.Context, systemPrompt, userPrompt string, allowed map[string]bool) (*Response, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.provider.Generate(callCtx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("AGENT_REQUEST_ERROR: %w", err)
	}

	var resp Response
	if _, err := utils.SmartParse(raw, &resp); err != nil {
		return nil, fmt.Errorf("AGENT_REQUEST_ERROR: unparseable response: %w", err)
	}

	if resp.Confidence < 0 {
		resp.Confidence = 0
	}
	if resp.Confidence > 1 {
		resp.Confidence = 1
	}

	// A hallucinated name outside the offered set counts as a decline.
	if resp.SelectedCanonicalName != nil && allowed != nil {
		if !allowed[*resp.SelectedCanonicalName] {
			log.Printf("[WARNING] agent selected unknown fact %q, treating as null", *resp.SelectedCanonicalName)
			resp.SelectedCanonicalName = nil
		}
	}
	return &resp, nil
}

// ActiveProvider names the provider answering calls, "" when unavailable.
func (c *Client) ActiveProvider() string { return c.activeName }

func allowedNames(cands []CandidateSummary) map[string]bool {
	m := make(map[string]bool, len(cands))
	for _, cand := range cands {
		m[cand.CanonicalName] = true
	}
	return m
}

// SummarizeValues renders a period map compactly for prompt text.
func SummarizeValues(values map[string]float64, periods []string) string {
	var b strings.Builder
	for _, p := range periods {
		if v, ok := values[p]; ok {
			fmt.Fprintf(&b, "%s=%.2f ", p, v)
		}
	}
	return strings.TrimSpace(b.String())
}
