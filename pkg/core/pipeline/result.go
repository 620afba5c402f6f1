package pipeline

import (
	"time"

	"github.com/google/uuid"

	"finmap/pkg/core/filing"
	"finmap/pkg/core/match"
	"finmap/pkg/core/units"
)

// MappedTable is the standardized statement: one row per canonical fact in
// catalog order, one column per period, zero where no source row bound.
type MappedTable struct {
	Statement filing.StatementType `json:"statement"`
	RowNames  []string             `json:"row_names"`
	Columns   []string             `json:"columns"`
	Data      [][]float64          `json:"data"`
}

// Value returns the cell for a canonical name and period label, 0 when
// either is absent.
func (t *MappedTable) Value(canonical, period string) float64 {
	ri, ci := -1, -1
	for i, n := range t.RowNames {
		if n == canonical {
			ri = i
			break
		}
	}
	for i, c := range t.Columns {
		if c == period {
			ci = i
			break
		}
	}
	if ri < 0 || ci < 0 {
		return 0
	}
	return t.Data[ri][ci]
}

// Binding records how one canonical fact was filled: the winning pattern
// family, every score component, and the classification flags.
type Binding struct {
	CanonicalName string              `json:"canonical_name"`
	RowID         string              `json:"row_id"`
	HumanLabel    string              `json:"human_label"`
	Family        match.PatternFamily `json:"pattern_family"`

	RegexScore     float64 `json:"regex_score"`
	TemporalScore  float64 `json:"temporal_score"`
	SummationScore float64 `json:"summation_score"`
	AgentScore     float64 `json:"agent_score"`
	TotalScore     float64 `json:"total_score"`

	// Confidence is the total score mapped onto [0,1].
	Confidence float64 `json:"confidence"`

	IsTotalRow   bool `json:"is_total_row"`
	ViaAgent     bool `json:"via_agent"`
	ViaDiscovery bool `json:"via_discovery"`
}

// newBinding copies a winning candidate into the result record.
func newBinding(cand *match.Candidate, label string, viaAgent, viaDiscovery bool) Binding {
	total := cand.TotalScore()
	conf := total / 100
	if conf < 0 {
		conf = 0
	} else if conf > 1 {
		conf = 1
	}
	return Binding{
		CanonicalName:  cand.CanonicalName(),
		RowID:          cand.RowID,
		HumanLabel:     label,
		Family:         cand.Family,
		RegexScore:     cand.RegexScore,
		TemporalScore:  cand.TemporalScore,
		SummationScore: cand.SummationScore,
		AgentScore:     cand.AgentScore,
		TotalScore:     total,
		Confidence:     conf,
		IsTotalRow:     cand.IsTotalRow,
		ViaAgent:       viaAgent,
		ViaDiscovery:   viaDiscovery,
	}
}

// Stats counts what the run did.
type Stats struct {
	RowsIn          int     `json:"rows_in"`
	RowsMapped      int     `json:"rows_mapped"`
	RowsUnmapped    int     `json:"rows_unmapped"`
	MappedPercent   float64 `json:"mapped_percent"`
	CanonicalFilled int     `json:"canonical_filled"`

	// NonZeroCanonicalRows counts the mapped table's rows carrying at least
	// one non-zero value.
	NonZeroCanonicalRows int `json:"non_zero_canonical_rows"`

	AgentCalls     int `json:"agent_calls"`
	AgentOverrides int `json:"agent_overrides"`
	DiscoveryBinds int `json:"discovery_binds"`

	// MissingExpected lists the expected canonical names the run left
	// unfilled.
	MissingExpected []string `json:"missing_expected,omitempty"`
}

// Result is the full output of one pipeline run.
type Result struct {
	RunID     string    `json:"run_id"`
	Ticker    string    `json:"ticker"`
	StartedAt time.Time `json:"started_at"`
	Elapsed   string    `json:"elapsed"`

	Table    *MappedTable       `json:"table"`
	Bindings map[string]Binding `json:"bindings"` // canonical name -> binding
	Unmapped []string           `json:"unmapped_rows"`

	Units    *units.Report `json:"-"`
	Warnings []string      `json:"warnings,omitempty"`
	Stats    Stats         `json:"stats"`
}

func newResult(st *filing.ExtractedStatement) *Result {
	return &Result{
		RunID:     uuid.New().String(),
		Ticker:    st.Ticker,
		StartedAt: time.Now().UTC(),
		Bindings:  make(map[string]Binding),
	}
}
