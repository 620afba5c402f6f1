// Package merge combines per-filing mapped tables into one multi-period
// history and repairs cumulative fourth-quarter columns.
package merge

import (
	"log"
	"math"
	"sort"

	"finmap/pkg/core/catalog"
	"finmap/pkg/core/filing"
	"finmap/pkg/core/pipeline"
)

// restatementTolerance is the fractional disagreement between two filings'
// values for the same fact and period before we call it a restatement.
const restatementTolerance = 0.005

// Restatement records a cell where two filings disagreed. The value from the
// more recent filing is kept.
type Restatement struct {
	CanonicalName string  `json:"canonical_name"`
	Period        string  `json:"period"`
	Kept          float64 `json:"kept"`
	Superseded    float64 `json:"superseded"`
}

// MergedStatement is the stacked multi-period table plus the restatements
// found while stacking.
type MergedStatement struct {
	Table        *pipeline.MappedTable `json:"table"`
	Restatements []Restatement         `json:"restatements,omitempty"`
}

// Stack merges mapped tables of the same statement type into one table.
// Row order follows the canonical catalog; columns are the union of all
// period labels, most recent first; cells missing from every filing stay
// zero; canonical rows that are zero across every column are dropped.
//
// Tables must be passed most-recent filing first. When two filings disagree
// on a shared cell the more recent filing wins and the disagreement is
// recorded as a restatement.
func Stack(st filing.StatementType, tables []*pipeline.MappedTable) (*MergedStatement, error) {
	cat, err := catalog.ForStatement(st)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var columns []string
	for _, t := range tables {
		for _, c := range t.Columns {
			if !seen[c] {
				seen[c] = true
				columns = append(columns, c)
			}
		}
	}
	// Period labels are ISO dates, so lexical descending is newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(columns)))

	names := cat.CanonicalNames()
	data := make([][]float64, len(names))
	filled := make([][]bool, len(names))
	for i := range data {
		data[i] = make([]float64, len(columns))
		filled[i] = make([]bool, len(columns))
	}

	var restatements []Restatement
	for _, t := range tables {
		for ri, name := range names {
			for ci, col := range columns {
				v := t.Value(name, col)
				if v == 0 {
					continue
				}
				if !filled[ri][ci] {
					data[ri][ci] = v
					filled[ri][ci] = true
					continue
				}
				if disagree(data[ri][ci], v) {
					log.Printf("[WARNING] RESTATEMENT: %q at %s: keeping %.2f from newer filing, older filing reported %.2f",
						name, col, data[ri][ci], v)
					restatements = append(restatements, Restatement{
						CanonicalName: name,
						Period:        col,
						Kept:          data[ri][ci],
						Superseded:    v,
					})
				}
			}
		}
	}

	table := &pipeline.MappedTable{Statement: st, Columns: columns}
	for ri, name := range names {
		if allZero(data[ri]) {
			continue
		}
		table.RowNames = append(table.RowNames, name)
		table.Data = append(table.Data, data[ri])
	}
	return &MergedStatement{Table: table, Restatements: restatements}, nil
}

func disagree(a, b float64) bool {
	ref := math.Max(math.Abs(a), math.Abs(b))
	if ref == 0 {
		return false
	}
	return math.Abs(a-b)/ref > restatementTolerance
}

func allZero(row []float64) bool {
	for _, v := range row {
		if v != 0 {
			return false
		}
	}
	return true
}
