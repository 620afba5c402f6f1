package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"finmap/pkg/core/utils"
)

// DiscoveryRow is one unmapped row offered to the discovery pass.
type DiscoveryRow struct {
	RowIdx     string             `json:"row_idx"`
	HumanLabel string             `json:"human_label"`
	RowValues  map[string]float64 `json:"row_values"`
}

// DiscoveryRequest offers the leftover rows and the still-open canonical slots.
type DiscoveryRequest struct {
	StatementType  string         `json:"statement_type"`
	UnmappedRows   []DiscoveryRow `json:"unmapped_rows"`
	OpenCanonicals []string       `json:"open_canonical_names"`
}

// Binding is one row-to-canonical assignment proposed by the model.
type Binding struct {
	RowIdx        string  `json:"row_idx"`
	CanonicalName string  `json:"canonical_name"`
	Confidence    float64 `json:"confidence"`
	Reasoning     string  `json:"reasoning"`
}

type discoveryResponse struct {
	Bindings []Binding `json:"bindings"`
}

// MinDiscoveryConfidence is the floor below which proposed bindings are dropped.
const MinDiscoveryConfidence = 0.6

const discoverySystemPrompt = `You are an expert financial analyst. Regex matching left some filing rows unmapped and some canonical facts unfilled.
Propose bindings only when the row label clearly denotes the canonical fact. Skip rows that are segment breakdowns, subtotals of unrelated items, or footnote artifacts.

Respond with ONLY this JSON:
{
  "bindings": [
    {"row_idx": "<row id>", "canonical_name": "<open canonical name>", "confidence": <0.0-1.0>, "reasoning": "<short>"}
  ]
}
An empty bindings list is a valid answer.`

// Discover runs the end-of-pipeline pass over unmapped rows. Returned
// bindings are filtered: confidence at or above MinDiscoveryConfidence,
// row and canonical taken from the offered sets, each side used at most once.
func (c *Client) Discover(ctx context.Context, req *DiscoveryRequest) ([]Binding, error) {
	if !c.Available(ctx) {
		return nil, fmt.Errorf("AGENT_UNAVAILABLE: no provider reachable")
	}
	if len(req.UnmappedRows) == 0 || len(req.OpenCanonicals) == 0 {
		return nil, nil
	}

	payload, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("AGENT_MARSHAL_ERROR: %v", err)
	}
	userPrompt := fmt.Sprintf("Statement context and open slots:\n\n%s\n\nReturn ONLY valid JSON.", string(payload))

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	raw, err := c.provider.Generate(callCtx, discoverySystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("AGENT_REQUEST_ERROR: %w", err)
	}

	var resp discoveryResponse
	if _, err := utils.SmartParse(raw, &resp); err != nil {
		return nil, fmt.Errorf("AGENT_REQUEST_ERROR: unparseable response: %w", err)
	}

	rows := make(map[string]bool, len(req.UnmappedRows))
	for _, r := range req.UnmappedRows {
		rows[r.RowIdx] = true
	}
	open := make(map[string]bool, len(req.OpenCanonicals))
	for _, name := range req.OpenCanonicals {
		open[name] = true
	}

	var accepted []Binding
	for _, b := range resp.Bindings {
		if b.Confidence < MinDiscoveryConfidence {
			continue
		}
		if !rows[b.RowIdx] || !open[b.CanonicalName] {
			log.Printf("[WARNING] discovery binding rejected: %s -> %s not in offered sets", b.RowIdx, b.CanonicalName)
			continue
		}
		rows[b.RowIdx] = false
		open[b.CanonicalName] = false
		accepted = append(accepted, b)
	}
	return accepted, nil
}
