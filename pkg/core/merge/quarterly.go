package merge

import (
	"log"
	"strings"

	"finmap/pkg/core/filing"
	"finmap/pkg/core/pipeline"
)

// Cumulative-detection band: a fourth-quarter column holding a full-year
// total runs well above the prior quarters, but not absurdly so.
const (
	cumulativeRatioMin = 1.2
	cumulativeRatioMax = 8.0

	// minFlowVotes is the number of flow rows that must agree before the
	// column is treated as cumulative.
	minFlowVotes = 3
)

// flowKeywords marks canonical facts whose values accumulate over a
// period. Per-share facts are excluded: EPS does not sum across quarters
// the way revenue does.
var flowKeywords = []string{
	"revenue", "income", "expense", "cost", "profit", "tax",
	"cash from", "cash used", "capital expenditure", "depreciation",
	"dividends paid", "repurchase", "issuance",
}

func isFlowFact(name string) bool {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "per share") || strings.Contains(lower, "eps") {
		return false
	}
	for _, kw := range flowKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// AdjustQuarterlyCumulative repairs fiscal years where the fourth-quarter
// column actually holds the cumulative full-year value. For each group of
// four same-fiscal-year columns (Q4 newest first), flow rows vote: a row
// votes cumulative when its Q4 value is between 1.2x and 8x the sum of its
// Q1-Q3 values. With at least minFlowVotes votes and a majority, every flow
// row's Q4 cell becomes Q4 - (Q1 + Q2 + Q3). Balance sheets are point-in-
// time snapshots and are returned untouched.
func AdjustQuarterlyCumulative(t *pipeline.MappedTable, fiscalYears map[string][]string) *pipeline.MappedTable {
	if t.Statement == filing.BalanceSheet {
		return t
	}

	colIndex := make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		colIndex[c] = i
	}

	for fy, cols := range fiscalYears {
		if len(cols) != 4 {
			continue
		}
		q4, ok := colIndex[cols[0]]
		if !ok {
			continue
		}
		quarters := make([]int, 0, 3)
		for _, c := range cols[1:] {
			if i, ok := colIndex[c]; ok {
				quarters = append(quarters, i)
			}
		}
		if len(quarters) != 3 {
			continue
		}

		votes, voters := 0, 0
		for ri, name := range t.RowNames {
			if !isFlowFact(name) {
				continue
			}
			q4v := t.Data[ri][q4]
			sum := quarterSum(t.Data[ri], quarters)
			if q4v == 0 || sum == 0 {
				continue
			}
			voters++
			ratio := q4v / sum
			if ratio >= cumulativeRatioMin && ratio <= cumulativeRatioMax {
				votes++
			}
		}
		if voters < minFlowVotes || votes*2 <= voters {
			continue
		}

		log.Printf("Fiscal year %s: Q4 column %s is cumulative (%d of %d flow rows), converting to discrete quarter", fy, cols[0], votes, voters)
		for ri, name := range t.RowNames {
			if !isFlowFact(name) {
				continue
			}
			if t.Data[ri][q4] != 0 {
				t.Data[ri][q4] -= quarterSum(t.Data[ri], quarters)
			}
		}
	}
	return t
}

func quarterSum(row []float64, idx []int) float64 {
	var sum float64
	for _, i := range idx {
		sum += row[i]
	}
	return sum
}
