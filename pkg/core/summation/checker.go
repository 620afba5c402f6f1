// Package summation detects rows that behave as totals of contiguous rows
// above them. Three evidence sources run in order of trust: the filing's
// calculation arcs, the source's total markers, and a brute-force contiguous
// subset search over signed, negated, and absolute sums.
//
// The checker is read-only with respect to the statement: it never rewrites
// reported values, only candidate score fields and findings.
package summation

import (
	"math"
	"strings"

	"finmap/pkg/core/filing"
	"finmap/pkg/core/match"
)

// Method names the evidence that established a total.
type Method string

const (
	MethodCalcArc    Method = "calc_arc"
	MethodAbsArc     Method = "abs_arc"
	MethodMarker     Method = "marker_only"
	MethodBruteForce Method = "brute_force"
)

// Polarity of a brute-force match.
type Polarity string

const (
	PolaritySigned   Polarity = "signed"
	PolarityNegated  Polarity = "negated"
	PolarityAbsolute Polarity = "absolute"
)

// Finding records that a row was identified as a total.
type Finding struct {
	RowID      string   `json:"row_id"`
	Method     Method   `json:"method"`
	Confidence float64  `json:"confidence"`
	Components []string `json:"components,omitempty"`
	Polarity   Polarity `json:"polarity,omitempty"`
}

// FindingKey is the context-bag key Apply writes on scored candidates.
const FindingKey = "summation_finding"

// Checker analyzes an extracted statement for total rows.
type Checker struct {
	// Tolerance is the fractional equality margin. The upper bound is
	// inclusive: a sum exactly at tolerance distance still matches.
	Tolerance float64

	// Lookback bounds the brute-force window (rows above the candidate).
	Lookback int
}

// NewChecker returns a checker with the default 2% tolerance and a 20-row
// lookback.
func NewChecker(tolerance float64) *Checker {
	if tolerance <= 0 {
		tolerance = 0.02
	}
	return &Checker{Tolerance: tolerance, Lookback: 20}
}

// Analyze inspects every row and returns the findings keyed by row ID.
func (c *Checker) Analyze(st *filing.ExtractedStatement) map[string]*Finding {
	findings := make(map[string]*Finding)
	for i, rowID := range st.RowIDs {
		if f := c.analyzeRow(st, i, rowID); f != nil {
			findings[rowID] = f
		}
	}
	return findings
}

func (c *Checker) analyzeRow(st *filing.ExtractedStatement, rowIndex int, rowID string) *Finding {
	rep, ok := st.RepresentativeValue(rowID)
	if !ok {
		return nil
	}

	// 1. Calculation-arc check, signed then absolute.
	if f := c.arcCheck(st, rowID, rep); f != nil {
		return f
	}

	// 2/3. Source total marker: a numeric confirmation raises confidence;
	// the marker alone is still worth something.
	if st.TotalRows[rowID] {
		if f := c.bruteForce(st, rowIndex, rowID, rep); f != nil {
			f.Confidence = math.Min(1.0, f.Confidence+0.2)
			return f
		}
		return &Finding{RowID: rowID, Method: MethodMarker, Confidence: 0.5}
	}

	// 4. Brute-force contiguous subset search.
	return c.bruteForce(st, rowIndex, rowID, rep)
}

// arcCheck sums the row's calculation-arc children with their arc signs,
// then by magnitude. Children missing from the table void the check.
func (c *Checker) arcCheck(st *filing.ExtractedStatement, rowID string, rep float64) *Finding {
	children, ok := st.CalcArcs[rowID]
	if !ok || len(children) == 0 {
		return nil
	}

	signed, absolute := 0.0, 0.0
	components := make([]string, 0, len(children))
	for _, child := range children {
		cv, ok := st.RepresentativeValue(child.RowID)
		if !ok {
			if _, present := st.Values[child.RowID]; !present {
				return nil // child concept not in this table
			}
			cv = 0
		}
		signed += child.Weight * cv
		absolute += math.Abs(cv)
		components = append(components, child.RowID)
	}

	if c.matches(signed, rep) {
		return &Finding{RowID: rowID, Method: MethodCalcArc, Confidence: 0.95, Components: components, Polarity: PolaritySigned}
	}
	if c.matches(absolute, rep) {
		return &Finding{RowID: rowID, Method: MethodAbsArc, Confidence: 0.90, Components: components, Polarity: PolarityAbsolute}
	}
	return nil
}

// bruteForce scans window prefixes of up to Lookback rows directly above the
// row, testing the signed sum, its negation, and the absolute sum. Among
// matches the smallest window wins, with signed beating negated beating
// absolute at equal size; confidence decays with window size.
func (c *Checker) bruteForce(st *filing.ExtractedStatement, rowIndex int, rowID string, rep float64) *Finding {
	signed, absolute := 0.0, 0.0
	var components []string

	maxWindow := rowIndex
	if maxWindow > c.Lookback {
		maxWindow = c.Lookback
	}

	for size := 1; size <= maxWindow; size++ {
		above := st.RowIDs[rowIndex-size]
		v, ok := st.RepresentativeValue(above)
		if !ok {
			v = 0
		}
		signed += v
		absolute += math.Abs(v)
		components = append([]string{above}, components...)

		if size < 2 {
			continue // a "total" of one row is not a total
		}

		var polarity Polarity
		switch {
		case c.matches(signed, rep):
			polarity = PolaritySigned
		case c.matches(-signed, rep):
			polarity = PolarityNegated
		case c.matches(absolute, rep):
			polarity = PolarityAbsolute
		default:
			continue
		}

		comps := make([]string, len(components))
		copy(comps, components)
		return &Finding{
			RowID:      rowID,
			Method:     MethodBruteForce,
			Confidence: bruteConfidence(polarity, size),
			Components: comps,
			Polarity:   polarity,
		}
	}
	return nil
}

func bruteConfidence(p Polarity, size int) float64 {
	base := 0.70
	switch p {
	case PolaritySigned:
		base = 0.85
	case PolarityNegated:
		base = 0.75
	}
	conf := base - 0.01*float64(size)
	if conf < 0.5 {
		conf = 0.5
	}
	return conf
}

// matches tests |sum - target| <= tolerance * |target|, inclusive at the
// upper bound.
func (c *Checker) matches(sum, target float64) bool {
	if target == 0 {
		return sum == 0
	}
	return math.Abs(sum-target) <= c.Tolerance*math.Abs(target)
}

// Score constants: an exact (signed/negated) total outranks an absolute
// match, which outranks marker-only evidence.
const (
	exactScore    = 20.0
	absoluteScore = 15.0
	partialScore  = 8.0
)

// totalKeywords marks canonical facts that are intrinsically totals.
var totalKeywords = []string{
	"total", "net cash", "gross profit", "operating income",
	"stockholders equity", "net income", "net change", "income before",
}

// IsTotalFact reports whether a canonical name belongs to the total
// keyword set.
func IsTotalFact(canonicalName string) bool {
	lower := strings.ToLower(canonicalName)
	for _, kw := range totalKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Apply writes summation scores onto a row's candidates given the analysis
// findings. Candidates bound to total-type facts on rows that behave as
// totals are boosted; the finding is attached to the context bag for agent
// prompts.
func (c *Checker) Apply(rowID string, candidates []*match.Candidate, findings map[string]*Finding) {
	f, ok := findings[rowID]
	if !ok {
		return
	}
	for _, cand := range candidates {
		cand.SetContext(FindingKey, f)
		if !IsTotalFact(cand.CanonicalName()) {
			continue
		}
		switch {
		case f.Method == MethodCalcArc, f.Polarity == PolaritySigned, f.Polarity == PolarityNegated:
			cand.SummationScore = exactScore * f.Confidence
		case f.Method == MethodAbsArc, f.Polarity == PolarityAbsolute:
			cand.SummationScore = absoluteScore * f.Confidence
		default:
			cand.SummationScore = partialScore * f.Confidence
		}
		cand.IsTotalRow = true
	}
}
