// Package match produces ranked canonical-fact candidates for every row of
// an extracted statement. Four strategies run in order: primary taxonomy
// patterns, alternate taxonomy patterns, human label patterns, and a
// CamelCase keyword fallback against the catalog's inverted index.
package match

import (
	"fmt"

	"finmap/pkg/core/catalog"
)

// PatternFamily names the strategy that produced a candidate.
type PatternFamily string

const (
	FamilyPrimary   PatternFamily = "primary"
	FamilyAlternate PatternFamily = "alternate"
	FamilyHuman     PatternFamily = "human"
	FamilyCamelCase PatternFamily = "camelcase"

	// FamilyAgent marks bindings proposed by the discovery pass rather
	// than a pattern hit.
	FamilyAgent PatternFamily = "agent"
)

// PatternMatch records one concrete pattern hit: which pattern in the
// entry's list fired, what it matched, and where.
type PatternMatch struct {
	PatternIndex int    `json:"pattern_index"`
	Matched      string `json:"matched"`
	Position     int    `json:"position"`
}

// Candidate is a tentative binding of one row to one canonical fact. The
// matcher creates candidates; the temporal and summation stages write only
// into their score fields; identity is stable for the life of the run.
type Candidate struct {
	RowID  string
	Entry  *catalog.Entry
	Family PatternFamily

	// Matches holds the concrete pattern hits behind this candidate.
	Matches []PatternMatch

	// Score components. RegexScore is fixed at creation (with the
	// dimensional penalty already applied); the later stages fill in their
	// own components without touching the others.
	RegexScore     float64
	TemporalScore  float64
	SummationScore float64
	AgentScore     float64

	// Dimensional marks candidates produced for a dimensional breakdown row.
	Dimensional bool

	// IsTotalRow is set by the summation checker when the row behaves as a
	// total and the canonical fact is a total type.
	IsTotalRow bool

	// Context is a free-form bag for cross-stage messaging: attached row
	// data, temporal detail, summation findings, agent output.
	Context map[string]interface{}
}

// TotalScore is the derived rank of the candidate.
func (c *Candidate) TotalScore() float64 {
	return c.RegexScore + c.TemporalScore + c.SummationScore + c.AgentScore
}

// CanonicalName is shorthand for the bound fact's output label.
func (c *Candidate) CanonicalName() string { return c.Entry.CanonicalName }

// SetContext stores a value in the candidate's context bag, allocating it
// on first use.
func (c *Candidate) SetContext(key string, v interface{}) {
	if c.Context == nil {
		c.Context = make(map[string]interface{})
	}
	c.Context[key] = v
}

func (c *Candidate) String() string {
	return fmt.Sprintf("%s -> %q [%s] regex=%.1f temporal=%.1f summation=%.1f agent=%.1f total=%.1f",
		c.RowID, c.Entry.CanonicalName, c.Family,
		c.RegexScore, c.TemporalScore, c.SummationScore, c.AgentScore, c.TotalScore())
}
