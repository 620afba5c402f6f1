package summation

import (
	"testing"

	"finmap/pkg/core/catalog"
	"finmap/pkg/core/filing"
	"finmap/pkg/core/match"
)

func incomeStatement(rows []string, values map[string]float64) *filing.ExtractedStatement {
	vals := make(map[string]map[string]float64, len(rows))
	for _, r := range rows {
		vals[r] = map[string]float64{"2024-12-31": values[r]}
	}
	return &filing.ExtractedStatement{
		Ticker:    "ACME",
		Statement: filing.IncomeStatement,
		Period:    filing.Annual,
		RowIDs:    rows,
		Periods:   []string{"2024-12-31"},
		Values:    vals,
	}
}

func TestBruteForceFindsContiguousSum(t *testing.T) {
	st := incomeStatement(
		[]string{"r1", "r2", "r3", "total"},
		map[string]float64{"r1": 40, "r2": 100, "r3": 50, "total": 150},
	)

	findings := NewChecker(0.02).Analyze(st)
	f := findings["total"]
	if f == nil {
		t.Fatal("expected a finding for the total row")
	}
	if f.Method != MethodBruteForce || f.Polarity != PolaritySigned {
		t.Errorf("finding = %+v, want signed brute-force", f)
	}
	// Window of 2 (r2+r3): 0.85 - 0.01*2 = 0.83.
	if f.Confidence != 0.83 {
		t.Errorf("confidence = %v, want 0.83", f.Confidence)
	}
	if len(f.Components) != 2 || f.Components[0] != "r2" || f.Components[1] != "r3" {
		t.Errorf("components = %v, want [r2 r3]", f.Components)
	}
}

func TestBruteForceRejectsSingleRowWindow(t *testing.T) {
	// "total" equals the one row above it; a window of one is never a total.
	st := incomeStatement(
		[]string{"r1", "total"},
		map[string]float64{"r1": 150, "total": 150},
	)
	findings := NewChecker(0.02).Analyze(st)
	if f := findings["total"]; f != nil && f.Method == MethodBruteForce {
		t.Errorf("single-row window should not produce a brute-force finding, got %+v", f)
	}
}

func TestToleranceUpperBoundIsInclusive(t *testing.T) {
	// Sum 102 against target 100 sits exactly at the 2% bound.
	st := incomeStatement(
		[]string{"r1", "r2", "total"},
		map[string]float64{"r1": 60, "r2": 42, "total": 100},
	)
	findings := NewChecker(0.02).Analyze(st)
	if findings["total"] == nil {
		t.Error("sum exactly at the tolerance bound must match")
	}

	// One unit past the bound must not.
	st2 := incomeStatement(
		[]string{"r1", "r2", "total"},
		map[string]float64{"r1": 60, "r2": 43, "total": 100},
	)
	findings2 := NewChecker(0.02).Analyze(st2)
	if findings2["total"] != nil {
		t.Error("sum past the tolerance bound must not match")
	}
}

func TestNegatedAndAbsolutePolarities(t *testing.T) {
	// Expenses listed positive, total reported negative.
	st := incomeStatement(
		[]string{"e1", "e2", "total"},
		map[string]float64{"e1": 30, "e2": 70, "total": -100},
	)
	findings := NewChecker(0.02).Analyze(st)
	f := findings["total"]
	if f == nil || f.Polarity != PolarityNegated {
		t.Fatalf("finding = %+v, want negated polarity", f)
	}
	// 0.75 - 0.01*2 = 0.73.
	if f.Confidence != 0.73 {
		t.Errorf("confidence = %v, want 0.73", f.Confidence)
	}

	// Mixed signs summing by magnitude only.
	st2 := incomeStatement(
		[]string{"a", "b", "total"},
		map[string]float64{"a": -30, "b": 70, "total": 100},
	)
	f2 := NewChecker(0.02).Analyze(st2)["total"]
	if f2 == nil || f2.Polarity != PolarityAbsolute {
		t.Fatalf("finding = %+v, want absolute polarity", f2)
	}
}

func TestCalcArcOutranksBruteForce(t *testing.T) {
	st := incomeStatement(
		[]string{"rev", "cost", "gp"},
		map[string]float64{"rev": 500, "cost": 300, "gp": 200},
	)
	st.CalcArcs = map[string][]filing.ArcChild{
		"gp": {{RowID: "rev", Weight: 1}, {RowID: "cost", Weight: -1}},
	}

	f := NewChecker(0.02).Analyze(st)["gp"]
	if f == nil || f.Method != MethodCalcArc {
		t.Fatalf("finding = %+v, want calc-arc method", f)
	}
	if f.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", f.Confidence)
	}
}

func TestCalcArcVoidedByMissingChild(t *testing.T) {
	st := incomeStatement(
		[]string{"rev", "gp"},
		map[string]float64{"rev": 500, "gp": 200},
	)
	st.CalcArcs = map[string][]filing.ArcChild{
		"gp": {{RowID: "rev", Weight: 1}, {RowID: "cost", Weight: -1}},
	}

	f := NewChecker(0.02).Analyze(st)["gp"]
	if f != nil && f.Method == MethodCalcArc {
		t.Errorf("arc with an absent child must not confirm, got %+v", f)
	}
}

func TestMarkerRaisesConfidence(t *testing.T) {
	st := incomeStatement(
		[]string{"r1", "r2", "total"},
		map[string]float64{"r1": 60, "r2": 40, "total": 100},
	)
	st.TotalRows = map[string]bool{"total": true}

	f := NewChecker(0.02).Analyze(st)["total"]
	if f == nil {
		t.Fatal("expected finding")
	}
	// Brute force 0.85-0.02=0.83, marker bonus +0.2 = 1.0 (capped).
	if f.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", f.Confidence)
	}

	// Marker with no numeric confirmation stands alone at 0.5.
	st2 := incomeStatement(
		[]string{"r1", "total"},
		map[string]float64{"r1": 60, "total": 999},
	)
	st2.TotalRows = map[string]bool{"total": true}
	f2 := NewChecker(0.02).Analyze(st2)["total"]
	if f2 == nil || f2.Method != MethodMarker || f2.Confidence != 0.5 {
		t.Errorf("finding = %+v, want marker-only at 0.5", f2)
	}
}

func TestApplyBoostsTotalFactsOnly(t *testing.T) {
	cat, err := catalog.ForStatement(filing.IncomeStatement)
	if err != nil {
		t.Fatal(err)
	}
	totalRev := &match.Candidate{RowID: "total", Entry: cat.Lookup("Total revenue")}
	costRev := &match.Candidate{RowID: "total", Entry: cat.Lookup("Cost of revenue")}

	findings := map[string]*Finding{
		"total": {RowID: "total", Method: MethodBruteForce, Confidence: 0.8, Polarity: PolaritySigned},
	}
	NewChecker(0.02).Apply("total", []*match.Candidate{totalRev, costRev}, findings)

	// exactScore 20 * 0.8 = 16 for the total-type fact.
	if totalRev.SummationScore != 16 {
		t.Errorf("Total revenue summation score = %v, want 16", totalRev.SummationScore)
	}
	if !totalRev.IsTotalRow {
		t.Error("total-type candidate should be flagged as a total row")
	}
	if costRev.SummationScore != 0 {
		t.Errorf("Cost of revenue summation score = %v, want 0", costRev.SummationScore)
	}
}

func TestIsTotalFact(t *testing.T) {
	cases := map[string]bool{
		"Total revenue":                      true,
		"Net cash from operating activities": true,
		"Gross profit":                       true,
		"Cost of revenue":                    false,
		"Accounts receivable":                false,
	}
	for name, want := range cases {
		if got := IsTotalFact(name); got != want {
			t.Errorf("IsTotalFact(%q) = %v, want %v", name, got, want)
		}
	}
}
