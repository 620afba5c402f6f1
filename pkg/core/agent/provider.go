// Package agent implements the tie-break and discovery contract against a
// local language-model runtime. The pipeline consults it only when regex,
// temporal, and summation evidence cannot disambiguate a row.
package agent

import "context"

// Provider is the transport-level contract to a model runtime.
type Provider interface {
	// Name identifies the provider for logging.
	Name() string

	// Available probes the runtime. Checked once per pipeline run.
	Available(ctx context.Context) bool

	// Generate sends one prompt pair and returns the raw completion.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
