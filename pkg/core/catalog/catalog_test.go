package catalog

import (
	"testing"

	"finmap/pkg/core/filing"
)

func TestForStatementReturnsAllThree(t *testing.T) {
	for _, st := range []filing.StatementType{filing.IncomeStatement, filing.BalanceSheet, filing.CashFlow} {
		cat, err := ForStatement(st)
		if err != nil {
			t.Fatalf("ForStatement(%s): %v", st, err)
		}
		if cat.Len() == 0 {
			t.Errorf("catalog for %s is empty", st)
		}
	}
	if _, err := ForStatement("notes"); err == nil {
		t.Error("expected error for unknown statement type")
	}
}

func TestRequiredCanonicalNamesPresent(t *testing.T) {
	want := map[filing.StatementType][]string{
		filing.IncomeStatement: {"Total revenue", "Gross profit", "Net income"},
		filing.BalanceSheet:    {"Total Assets", "Stockholders Equity"},
		filing.CashFlow:        {"Net cash from operating activities"},
	}
	for st, names := range want {
		cat, err := ForStatement(st)
		if err != nil {
			t.Fatal(err)
		}
		for _, name := range names {
			if cat.Lookup(name) == nil {
				t.Errorf("%s catalog lacks %q", st, name)
			}
		}
	}
}

func TestIndexOfFollowsEntryOrder(t *testing.T) {
	cat, err := ForStatement(filing.IncomeStatement)
	if err != nil {
		t.Fatal(err)
	}
	names := cat.CanonicalNames()
	for i, name := range names {
		if got := cat.IndexOf(name); got != i {
			t.Errorf("IndexOf(%q) = %d, want %d", name, got, i)
		}
	}
	if cat.IndexOf("No such fact") != -1 {
		t.Error("IndexOf should return -1 for unknown names")
	}
}

func TestKeywordIndex(t *testing.T) {
	cat, err := ForStatement(filing.IncomeStatement)
	if err != nil {
		t.Fatal(err)
	}
	hits := cat.KeywordMatches("revenue")
	found := false
	for _, e := range hits {
		if e.CanonicalName == "Total revenue" {
			found = true
		}
	}
	if !found {
		t.Error(`keyword "revenue" should reach "Total revenue"`)
	}
	if len(cat.KeywordMatches("zebra")) != 0 {
		t.Error("unexpected entries for unrelated keyword")
	}
}

func TestPatternsAreCompiled(t *testing.T) {
	cat, err := ForStatement(filing.BalanceSheet)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range cat.Entries() {
		if len(e.Patterns(Primary)) != len(e.PrimaryPatterns) {
			t.Errorf("%q: primary patterns not fully compiled", e.CanonicalName)
		}
		if e.Priority < 1 || e.Priority > 10 {
			t.Errorf("%q: priority %d outside 1..10", e.CanonicalName, e.Priority)
		}
	}
}

func TestHumanPatternsAreCaseInsensitive(t *testing.T) {
	cat, err := ForStatement(filing.IncomeStatement)
	if err != nil {
		t.Fatal(err)
	}
	entry := cat.Lookup("Gross profit")
	if entry == nil {
		t.Fatal("missing entry")
	}
	matched := false
	for _, re := range entry.Patterns(Human) {
		if re.MatchString("GROSS PROFIT") {
			matched = true
		}
	}
	if !matched {
		t.Error("human patterns should match regardless of case")
	}
}
