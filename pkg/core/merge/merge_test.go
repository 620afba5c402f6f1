package merge

import (
	"testing"

	"finmap/pkg/core/filing"
	"finmap/pkg/core/pipeline"
)

func incomeTable(columns []string, cells map[string][]float64) *pipeline.MappedTable {
	t := &pipeline.MappedTable{Statement: filing.IncomeStatement, Columns: columns}
	for name, row := range cells {
		t.RowNames = append(t.RowNames, name)
		t.Data = append(t.Data, row)
	}
	return t
}

func TestStackUnionsPeriodsNewestFirst(t *testing.T) {
	newer := incomeTable([]string{"2024-12-31"}, map[string][]float64{
		"Total revenue": {500},
	})
	older := incomeTable([]string{"2023-12-31"}, map[string][]float64{
		"Total revenue": {450},
		"Net income":    {60},
	})

	merged, err := Stack(filing.IncomeStatement, []*pipeline.MappedTable{newer, older})
	if err != nil {
		t.Fatal(err)
	}

	if len(merged.Table.Columns) != 2 || merged.Table.Columns[0] != "2024-12-31" || merged.Table.Columns[1] != "2023-12-31" {
		t.Fatalf("columns = %v, want newest first union", merged.Table.Columns)
	}
	if merged.Table.Value("Total revenue", "2024-12-31") != 500 {
		t.Error("newer filing value missing")
	}
	if merged.Table.Value("Total revenue", "2023-12-31") != 450 {
		t.Error("older filing value missing")
	}
	// Net income appears only in the older filing; the newer column stays 0.
	if merged.Table.Value("Net income", "2024-12-31") != 0 {
		t.Error("absent cell should stay zero")
	}
	if len(merged.Restatements) != 0 {
		t.Errorf("restatements = %v, want none", merged.Restatements)
	}
}

func TestStackDropsAllZeroRowsAndKeepsCatalogOrder(t *testing.T) {
	a := incomeTable([]string{"2024-12-31"}, map[string][]float64{
		"Net income":    {60},
		"Total revenue": {500},
	})
	merged, err := Stack(filing.IncomeStatement, []*pipeline.MappedTable{a})
	if err != nil {
		t.Fatal(err)
	}
	if len(merged.Table.RowNames) != 2 {
		t.Fatalf("rows = %v, want only the two filled facts", merged.Table.RowNames)
	}
	// Catalog order puts Total revenue above Net income.
	if merged.Table.RowNames[0] != "Total revenue" || merged.Table.RowNames[1] != "Net income" {
		t.Errorf("row order = %v, want catalog order", merged.Table.RowNames)
	}
}

func TestStackNewerFilingWinsOnRestatement(t *testing.T) {
	newer := incomeTable([]string{"2023-12-31"}, map[string][]float64{
		"Total revenue": {460},
	})
	older := incomeTable([]string{"2023-12-31"}, map[string][]float64{
		"Total revenue": {450},
	})
	merged, err := Stack(filing.IncomeStatement, []*pipeline.MappedTable{newer, older})
	if err != nil {
		t.Fatal(err)
	}
	if merged.Table.Value("Total revenue", "2023-12-31") != 460 {
		t.Errorf("restated value = %v, want 460 from the newer filing", merged.Table.Value("Total revenue", "2023-12-31"))
	}
	if len(merged.Restatements) != 1 {
		t.Fatalf("restatements = %v, want one entry", merged.Restatements)
	}
	r := merged.Restatements[0]
	if r.CanonicalName != "Total revenue" || r.Period != "2023-12-31" || r.Kept != 460 || r.Superseded != 450 {
		t.Errorf("restatement entry = %+v", r)
	}
}

func fourQuarterTable(q4 float64) *pipeline.MappedTable {
	cols := []string{"2024-12-31", "2024-09-30", "2024-06-30", "2024-03-31"}
	return &pipeline.MappedTable{
		Statement: filing.IncomeStatement,
		Columns:   cols,
		RowNames:  []string{"Total revenue", "Cost of revenue", "Net income", "Earnings per share basic"},
		Data: [][]float64{
			{q4, 120, 110, 100},      // revenue quarters
			{q4 * 0.6, 72, 66, 60},   // cost tracks revenue
			{q4 * 0.1, 12, 11, 10},   // net income
			{1.10, 1.05, 1.00, 0.95}, // EPS, never adjusted
		},
	}
}

func TestAdjustQuarterlyCumulativeRepairsQ4(t *testing.T) {
	// Q4 column holds full-year totals: revenue 450 vs quarterly mean 110.
	table := fourQuarterTable(450)
	fy := map[string][]string{
		"2024": {"2024-12-31", "2024-09-30", "2024-06-30", "2024-03-31"},
	}

	got := AdjustQuarterlyCumulative(table, fy)

	// 450 - (120+110+100) = 120.
	if v := got.Value("Total revenue", "2024-12-31"); v != 120 {
		t.Errorf("repaired Q4 revenue = %v, want 120", v)
	}
	if v := got.Value("Net income", "2024-12-31"); v != 45-33 {
		t.Errorf("repaired Q4 net income = %v, want 12", v)
	}
	// Per-share rows are not flow facts and stay untouched.
	if v := got.Value("Earnings per share basic", "2024-12-31"); v != 1.10 {
		t.Errorf("EPS = %v, want 1.10 untouched", v)
	}
}

func TestAdjustLeavesDiscreteQuartersAlone(t *testing.T) {
	// Q4 is already discrete: 115 against a mean of 110 (ratio 1.05, under
	// the 1.2 band floor).
	table := fourQuarterTable(115)
	fy := map[string][]string{
		"2024": {"2024-12-31", "2024-09-30", "2024-06-30", "2024-03-31"},
	}

	got := AdjustQuarterlyCumulative(table, fy)
	if v := got.Value("Total revenue", "2024-12-31"); v != 115 {
		t.Errorf("discrete Q4 = %v, want 115 untouched", v)
	}
}

func TestAdjustLeavesStrongDiscreteQ4Alone(t *testing.T) {
	// A strong discrete quarter: Q4 revenue 150 against quarters summing to
	// 330 (ratio 0.45, under the 1.2 band floor). Banding against the mean
	// instead would see 1.36 and wrongly subtract, leaving -180.
	table := fourQuarterTable(150)
	fy := map[string][]string{
		"2024": {"2024-12-31", "2024-09-30", "2024-06-30", "2024-03-31"},
	}

	got := AdjustQuarterlyCumulative(table, fy)
	if v := got.Value("Total revenue", "2024-12-31"); v != 150 {
		t.Errorf("strong discrete Q4 = %v, want 150 untouched", v)
	}
	if v := got.Value("Net income", "2024-12-31"); v != 15 {
		t.Errorf("net income Q4 = %v, want 15 untouched", v)
	}
}

func TestAdjustSkipsBalanceSheet(t *testing.T) {
	table := fourQuarterTable(450)
	table.Statement = filing.BalanceSheet
	fy := map[string][]string{
		"2024": {"2024-12-31", "2024-09-30", "2024-06-30", "2024-03-31"},
	}
	got := AdjustQuarterlyCumulative(table, fy)
	if v := got.Value("Total revenue", "2024-12-31"); v != 450 {
		t.Errorf("balance sheet cell = %v, want 450 untouched", v)
	}
}

func TestIsFlowFactExcludesPerShare(t *testing.T) {
	if !isFlowFact("Total revenue") || !isFlowFact("Income tax expense") {
		t.Error("revenue and expense facts are flows")
	}
	if isFlowFact("Earnings per share diluted") {
		t.Error("per-share facts are not flows")
	}
	if isFlowFact("Total Assets") {
		t.Error("balance facts are not flows")
	}
}
