// Package filing defines the input containers the mapping pipeline consumes.
//
// An ExtractedStatement is produced by an upstream extractor (HTML/XBRL
// parsing lives outside the core) and is consumed exactly once by a pipeline
// run. Row identifiers preserve the source order of the filing table.
package filing

import (
	"fmt"
	"strings"
)

// StatementType identifies one of the three standardized statements.
type StatementType string

const (
	IncomeStatement StatementType = "income_statement"
	BalanceSheet    StatementType = "balance_sheet"
	CashFlow        StatementType = "cash_flow"
)

// PeriodType tags a filing as annual or quarterly.
type PeriodType string

const (
	Annual    PeriodType = "annual"
	Quarterly PeriodType = "quarterly"
)

// ArcChild is one child of a calculation arc: a row identifier plus the
// signed weight the issuer assigned to it (usually +1 or -1).
type ArcChild struct {
	RowID  string  `json:"row_id"`
	Weight float64 `json:"weight"`
}

// ExtractedStatement is the raw, row-indexed table for one filing and one
// statement type, together with everything the pipeline needs to map it:
// human labels, source total markers, calculation arcs, and the header text
// fragment the unit detector parses.
type ExtractedStatement struct {
	Ticker    string        `json:"ticker"`
	Statement StatementType `json:"statement"`
	Period    PeriodType    `json:"period_type"`

	// RowIDs in source order. IDs are taxonomy concepts, optionally carrying
	// a dimensional prefix/suffix (see IsDimensional).
	RowIDs []string `json:"row_ids"`

	// Periods holds the period-end labels, most-recent first. Every value
	// vector is indexed by these labels.
	Periods []string `json:"periods"`

	// Values maps row ID -> period label -> reported value.
	Values map[string]map[string]float64 `json:"values"`

	// Labels maps row ID -> the human-readable label shown in the table.
	Labels map[string]string `json:"labels"`

	// TotalRows is the set of rows the source markup flags as totals.
	TotalRows map[string]bool `json:"total_rows"`

	// CalcArcs maps a parent row ID to its calculation-arc children, in
	// arc order. May be nil when the filing carries no calculation linkbase.
	CalcArcs map[string][]ArcChild `json:"calc_arcs,omitempty"`

	// HeaderText is the concatenated table-header text ("In millions,
	// except per share data; shares in thousands").
	HeaderText string `json:"header_text"`

	// Facts is the taxonomy facts database used for unit verification.
	// Optional; when nil the header-derived scale stands.
	Facts FactsDB `json:"-"`
}

// Validate checks the record for the required fields. A malformed record is
// a programmer error and aborts the pipeline (InputError semantics); an
// empty rows list is valid and yields an empty mapping.
func (s *ExtractedStatement) Validate() error {
	switch s.Statement {
	case IncomeStatement, BalanceSheet, CashFlow:
	default:
		return fmt.Errorf("INPUT_ERROR: unknown statement type %q", s.Statement)
	}
	if len(s.RowIDs) > 0 && len(s.Periods) == 0 {
		return fmt.Errorf("INPUT_ERROR: %d rows but no period columns", len(s.RowIDs))
	}
	if s.Values == nil && len(s.RowIDs) > 0 {
		return fmt.Errorf("INPUT_ERROR: values table missing")
	}
	for _, id := range s.RowIDs {
		if _, ok := s.Values[id]; !ok {
			return fmt.Errorf("INPUT_ERROR: row %q has no value vector", id)
		}
	}
	return nil
}

// Label returns the human label for a row, falling back to the tag segment.
func (s *ExtractedStatement) Label(rowID string) string {
	if l, ok := s.Labels[rowID]; ok && l != "" {
		return l
	}
	return TagSegment(rowID)
}

// RowValue returns the value of a row at a period label.
func (s *ExtractedStatement) RowValue(rowID, period string) (float64, bool) {
	vec, ok := s.Values[rowID]
	if !ok {
		return 0, false
	}
	v, ok := vec[period]
	return v, ok
}

// RepresentativeValue returns the first non-zero value of a row scanning
// periods most-recent first. Used by the summation checker.
func (s *ExtractedStatement) RepresentativeValue(rowID string) (float64, bool) {
	vec, ok := s.Values[rowID]
	if !ok {
		return 0, false
	}
	for _, p := range s.Periods {
		if v, ok := vec[p]; ok && v != 0 {
			return v, true
		}
	}
	return 0, false
}

// CloneValues returns a copy of the statement whose value vectors are
// independent of the receiver's, so in-place normalization cannot leak back
// into the caller's record. Labels, arcs, and the facts handle are shared.
func (s *ExtractedStatement) CloneValues() *ExtractedStatement {
	c := *s
	c.Values = make(map[string]map[string]float64, len(s.Values))
	for id, vec := range s.Values {
		nv := make(map[string]float64, len(vec))
		for p, v := range vec {
			nv[p] = v
		}
		c.Values[id] = nv
	}
	return &c
}

// IsDimensional reports whether a row identifier denotes a dimensional
// sub-breakdown. Two encodings appear in source data: a trailing
// "::<member>" suffix, or a leading "D<digit>:" token.
func IsDimensional(rowID string) bool {
	if strings.Contains(rowID, "::") {
		return true
	}
	if len(rowID) > 2 && rowID[0] == 'D' && rowID[1] >= '0' && rowID[1] <= '9' && rowID[2] == ':' {
		return true
	}
	return false
}

// StripDimensionalPrefix removes the dimensional markers from a row ID so
// the underlying concept can be matched: "Revenue::us-gaap_Revenues" keeps
// the trailing concept tag, "D1:us-gaap_Revenues" drops the leading token.
// Non-dimensional IDs pass through.
func StripDimensionalPrefix(rowID string) string {
	if i := strings.Index(rowID, "::"); i >= 0 {
		rowID = rowID[i+2:]
	}
	if len(rowID) > 2 && rowID[0] == 'D' && rowID[1] >= '0' && rowID[1] <= '9' && rowID[2] == ':' {
		rowID = rowID[3:]
	}
	return rowID
}

// TagSegment returns the concept fragment after the namespace prefix:
// "us-gaap_Revenues" -> "Revenues". Both "_" and ":" separators occur.
func TagSegment(rowID string) string {
	tag := StripDimensionalPrefix(rowID)
	if i := strings.IndexAny(tag, "_:"); i >= 0 {
		return tag[i+1:]
	}
	return tag
}

// Namespace returns the taxonomy prefix of a row ID ("us-gaap", "ifrs-full"),
// or "" when the ID carries none.
func Namespace(rowID string) string {
	tag := StripDimensionalPrefix(rowID)
	if i := strings.IndexAny(tag, "_:"); i >= 0 {
		return tag[:i]
	}
	return ""
}
