// Package units infers the scale and kind of each statement row and
// normalizes reported values into base units (dollars, shares). Two passes
// run: a header pass over the table-header text, and a verification pass
// that cross-checks table values against the filing's facts database.
//
// The scale factor is applied exactly once, at extraction time; per-share
// and ratio rows are never rescaled, and signs are preserved as reported.
package units

import (
	"fmt"
	"log"
	"math"
	"regexp"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"finmap/pkg/core/filing"
)

// Kind classifies what a row's numbers measure.
type Kind string

const (
	KindCurrency Kind = "currency"
	KindShares   Kind = "shares"
	KindPerShare Kind = "per_share"
	KindRatio    Kind = "ratio"
)

// HeaderUnits is the result of the header pass.
type HeaderUnits struct {
	CurrencyScale float64
	SharesScale   float64
}

// RowUnit records the decision for one row.
type RowUnit struct {
	RowID    string
	Kind     Kind
	Scale    float64
	Verified bool // true when the facts database confirmed the scale
}

// Report summarizes a normalization run.
type Report struct {
	Header   HeaderUnits
	Rows     map[string]RowUnit
	Warnings []string
}

// Detector performs unit detection for extracted statements.
type Detector struct {
	// RelTolerance is the relative margin for accepting a facts/table ratio
	// as a clean power of ten.
	RelTolerance float64

	memo *gocache.Cache
}

// NewDetector returns a detector with the default 10% verification margin.
func NewDetector() *Detector {
	return &Detector{
		RelTolerance: 0.10,
		memo:         gocache.New(10*time.Minute, 30*time.Minute),
	}
}

var (
	sharesScaleRe   = regexp.MustCompile(`(?i)shares?\s+(?:are\s+)?in\s+(thousands|millions|billions)`)
	currencyScaleRe = regexp.MustCompile(`(?i)in\s+(thousands|millions|billions|dollars)`)
)

// DetectHeader parses the concatenated table-header text. The shares-scale
// phrase is extracted and removed first so it cannot be misread as the
// currency phrase; the currency scale defaults to thousands when no phrase
// is present.
func (d *Detector) DetectHeader(header string) HeaderUnits {
	h := HeaderUnits{CurrencyScale: 1000, SharesScale: 1}

	if m := sharesScaleRe.FindStringSubmatchIndex(header); m != nil {
		word := header[m[2]:m[3]]
		h.SharesScale = scaleWord(word)
		header = header[:m[0]] + header[m[1]:]
	}
	if m := currencyScaleRe.FindStringSubmatch(header); m != nil {
		h.CurrencyScale = scaleWord(m[1])
	}
	return h
}

func scaleWord(w string) float64 {
	switch strings.ToLower(w) {
	case "thousands":
		return 1000
	case "millions":
		return 1e6
	case "billions":
		return 1e9
	default: // "dollars"
		return 1
	}
}

// perShareConcepts are concepts that carry per-share values regardless of
// label wording.
var perShareConcepts = map[string]bool{
	"EarningsPerShareBasic":                             true,
	"EarningsPerShareDiluted":                           true,
	"EarningsPerShareBasicAndDiluted":                   true,
	"IncomeLossFromContinuingOperationsPerBasicShare":   true,
	"IncomeLossFromContinuingOperationsPerDilutedShare": true,
	"CommonStockDividendsPerShareDeclared":              true,
	"CommonStockDividendsPerShareCashPaid":              true,
}

var ratioTagRe = regexp.MustCompile(`(Percentage|Ratio|Rate)$`)

// ClassifyRow decides the unit kind of a row from its concept and label.
func (d *Detector) ClassifyRow(rowID, label string) Kind {
	tag := filing.TagSegment(rowID)
	lower := strings.ToLower(label)

	if perShareConcepts[tag] || strings.Contains(lower, "per share") || strings.Contains(tag, "PerShare") {
		return KindPerShare
	}
	if ratioTagRe.MatchString(tag) || strings.Contains(lower, "ratio") || strings.Contains(lower, "%") {
		return KindRatio
	}
	if strings.Contains(tag, "SharesOutstanding") || strings.Contains(tag, "NumberOfShares") ||
		strings.Contains(lower, "shares outstanding") || strings.Contains(lower, "weighted average") {
		return KindShares
	}
	return KindCurrency
}

// cleanScales are the only accepted facts/table ratios.
var cleanScales = []float64{1, 1e3, 1e6, 1e9}

// VerifyScale cross-checks one table value against the facts database for
// the same concept and period end. It returns the confirmed scale factor
// and true on a clean power-of-ten ratio; (0, false) otherwise (including
// when no fact is available).
func (d *Detector) VerifyScale(facts filing.FactsDB, concept, periodEnd string, tableValue float64, period filing.PeriodType) (float64, bool) {
	if facts == nil || tableValue == 0 {
		return 0, false
	}
	factValue, ok := d.lookupFact(facts, concept, periodEnd, period)
	if !ok || factValue == 0 {
		return 0, false
	}

	ratio := math.Abs(factValue / tableValue)
	for _, s := range cleanScales {
		if math.Abs(ratio-s)/s <= d.RelTolerance {
			return s, true
		}
	}
	return 0, false
}

// lookupFact selects the fact for a concept at a period end. Quarterly
// filings often report both the quarter and the YTD duration against the
// same end date; the fact whose period length falls in 85–95 days wins,
// else the shortest duration.
func (d *Detector) lookupFact(facts filing.FactsDB, concept, periodEnd string, period filing.PeriodType) (float64, bool) {
	key := concept + "|" + periodEnd
	if v, ok := d.memo.Get(key); ok {
		f := v.(filing.Fact)
		return f.Value, true
	}

	matches := facts.Lookup(concept, periodEnd)
	if len(matches) == 0 {
		return 0, false
	}

	best := matches[0]
	if len(matches) > 1 && period == filing.Quarterly {
		bestLen := durationDays(best)
		for _, f := range matches[1:] {
			l := durationDays(f)
			if inQuarterBand(l) && !inQuarterBand(bestLen) {
				best, bestLen = f, l
				continue
			}
			if inQuarterBand(l) == inQuarterBand(bestLen) && l > 0 && (bestLen <= 0 || l < bestLen) {
				best, bestLen = f, l
			}
		}
	}

	d.memo.Set(key, best, gocache.DefaultExpiration)
	return best.Value, true
}

func inQuarterBand(days int) bool { return days >= 85 && days <= 95 }

func durationDays(f filing.Fact) int {
	if f.PeriodStart == "" {
		return 0
	}
	start, err1 := time.Parse("2006-01-02", f.PeriodStart)
	end, err2 := time.Parse("2006-01-02", f.PeriodEnd)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}

// Normalize applies unit detection to an extracted statement in place,
// multiplying each row's values into base units. Per-share and ratio rows
// keep scale 1. A facts-database mismatch is a warning only; the row keeps
// its header-derived scale.
func (d *Detector) Normalize(st *filing.ExtractedStatement) *Report {
	header := d.DetectHeader(st.HeaderText)
	report := &Report{Header: header, Rows: make(map[string]RowUnit, len(st.RowIDs))}

	for _, rowID := range st.RowIDs {
		kind := d.ClassifyRow(rowID, st.Label(rowID))

		scale := 1.0
		verified := false
		switch kind {
		case KindPerShare, KindRatio:
			scale = 1
		case KindShares:
			scale = header.SharesScale
		default:
			scale = header.CurrencyScale
			if v, ok := st.RepresentativeValue(rowID); ok {
				concept := filing.TagSegment(rowID)
				periodEnd := periodOf(st, rowID, v)
				if factScale, ok := d.VerifyScale(st.Facts, concept, periodEnd, v, st.Period); ok {
					scale = factScale
					verified = true
				} else if st.Facts != nil {
					if _, hasFacts := firstFact(st.Facts, concept, periodEnd); hasFacts {
						w := fmt.Sprintf("UNIT_VERIFY_MISMATCH: %s at %s: facts/table ratio is not a clean power of ten, keeping header scale %.0f", rowID, periodEnd, scale)
						report.Warnings = append(report.Warnings, w)
						log.Printf("[WARNING] %s", w)
					}
				}
			}
		}

		if scale != 1 {
			vec := st.Values[rowID]
			for p, v := range vec {
				vec[p] = v * scale
			}
		}
		report.Rows[rowID] = RowUnit{RowID: rowID, Kind: kind, Scale: scale, Verified: verified}
	}
	return report
}

// periodOf finds the period label whose value produced the representative.
func periodOf(st *filing.ExtractedStatement, rowID string, v float64) string {
	for _, p := range st.Periods {
		if got, ok := st.RowValue(rowID, p); ok && got == v {
			return p
		}
	}
	if len(st.Periods) > 0 {
		return st.Periods[0]
	}
	return ""
}

func firstFact(facts filing.FactsDB, concept, periodEnd string) (filing.Fact, bool) {
	matches := facts.Lookup(concept, periodEnd)
	if len(matches) == 0 {
		return filing.Fact{}, false
	}
	return matches[0], true
}
