// Package temporal scores candidates against previously mapped filings.
// A candidate whose row values agree with the same canonical fact in prior
// years gains score; disagreement costs score; absence contributes nothing.
// The validator never reorders candidates — it writes temporal_score only.
package temporal

import (
	"math"

	"finmap/pkg/core/filing"
	"finmap/pkg/core/match"
)

// HistoricalFiling is one previously mapped filing: canonical name ->
// period label -> value in base units.
type HistoricalFiling struct {
	Ticker string                        `json:"ticker"`
	Values map[string]map[string]float64 `json:"values"`
}

// Detail is attached to each scored candidate's context bag under
// DetailKey, for downstream agent prompts.
type Detail struct {
	MatchedYears int `json:"matched_years"`
	Mismatches   int `json:"mismatches"`
	Comparisons  int `json:"comparisons"`
}

// DetailKey is the context-bag key the validator writes.
const DetailKey = "temporal_detail"

// Per-comparison increments. Matches are worth more than mismatches cost,
// so one noisy year does not erase two clean ones.
const (
	matchPoints    = 10.0
	mismatchPoints = 6.0
)

// Validator compares row series across filings within a fractional
// tolerance.
type Validator struct {
	Tolerance float64
}

// NewValidator returns a validator with the given fractional tolerance
// (0.10 means values within 10% count as agreement).
func NewValidator(tolerance float64) *Validator {
	if tolerance <= 0 {
		tolerance = 0.10
	}
	return &Validator{Tolerance: tolerance}
}

// Score writes the temporal score of every candidate for one row. For each
// period column shared with a historical filing's mapping of the
// candidate's canonical fact, a tolerance match adds points and a mismatch
// subtracts them; the aggregate is weighted by the match ratio so a single
// coincidental hit among many comparisons stays weak.
func (v *Validator) Score(st *filing.ExtractedStatement, rowID string, candidates []*match.Candidate, history []HistoricalFiling) {
	if len(history) == 0 {
		return
	}
	for _, c := range candidates {
		matched, mismatched := 0, 0
		for _, period := range st.Periods {
			current, ok := st.RowValue(rowID, period)
			if !ok {
				continue
			}
			for _, h := range history {
				series, ok := h.Values[c.CanonicalName()]
				if !ok {
					continue
				}
				prior, ok := series[period]
				if !ok || prior == 0 {
					continue
				}
				if withinTolerance(current, prior, v.Tolerance) {
					matched++
				} else {
					mismatched++
				}
			}
		}

		comparisons := matched + mismatched
		detail := Detail{MatchedYears: matched, Mismatches: mismatched, Comparisons: comparisons}
		c.SetContext(DetailKey, detail)

		if comparisons == 0 {
			continue
		}
		ratio := float64(matched) / float64(comparisons)
		c.TemporalScore = matchPoints*float64(matched)*ratio - mismatchPoints*float64(mismatched)
	}
}

func withinTolerance(a, b, tol float64) bool {
	if a == b {
		return true
	}
	denom := math.Max(math.Abs(a), math.Abs(b))
	if denom == 0 {
		return true
	}
	return math.Abs(a-b)/denom <= tol
}
