package match

import (
	"testing"

	"finmap/pkg/core/catalog"
	"finmap/pkg/core/filing"
)

func incomeMatcher(t *testing.T) *Matcher {
	t.Helper()
	cat, err := catalog.ForStatement(filing.IncomeStatement)
	if err != nil {
		t.Fatal(err)
	}
	return NewMatcher(cat)
}

func topCandidate(t *testing.T, cands []*Candidate) *Candidate {
	t.Helper()
	if len(cands) == 0 {
		t.Fatal("expected at least one candidate")
	}
	return cands[0]
}

func TestPrimaryTaxonomyMatch(t *testing.T) {
	m := incomeMatcher(t)
	cands := m.MatchRow("us-gaap_RevenueFromContractWithCustomerExcludingAssessedTax", "Revenue")
	top := topCandidate(t, cands)
	if top.CanonicalName() != "Total revenue" {
		t.Errorf("top candidate = %q, want Total revenue", top.CanonicalName())
	}
	if top.Family != FamilyPrimary {
		t.Errorf("family = %s, want primary", top.Family)
	}
	if top.Dimensional {
		t.Error("clean row should not carry the dimensional flag")
	}
}

func TestDimensionalRowStillCandidatesWithPenalty(t *testing.T) {
	m := incomeMatcher(t)

	clean := m.MatchRow("us-gaap_RevenueFromContractWithCustomerExcludingAssessedTax", "Revenue")
	dim := m.MatchRow("ProductSegment::us-gaap_RevenueFromContractWithCustomerExcludingAssessedTax", "Products")

	ct := topCandidate(t, clean)
	dt := topCandidate(t, dim)

	if dt.CanonicalName() != "Total revenue" {
		t.Fatalf("dimensional row should still candidate for Total revenue, got %q", dt.CanonicalName())
	}
	if !dt.Dimensional {
		t.Error("dimensional flag not set")
	}
	if diff := ct.RegexScore - dt.RegexScore; diff != Scores.DimensionalPenalty {
		t.Errorf("penalty = %v, want %v", diff, Scores.DimensionalPenalty)
	}
	if dt.RegexScore >= ct.RegexScore {
		t.Error("clean row must outrank the dimensional breakdown")
	}
}

func TestStrictEqualityRejectsPartialHit(t *testing.T) {
	m := incomeMatcher(t)
	// The unanchored pattern would hit a fragment of this longer tag, but
	// the entry demands whole-subject equality.
	cands := m.MatchRow("us-gaap_RegulatedAndUnregulatedOperatingRevenueSegmentDetail", "")
	for _, c := range cands {
		if c.CanonicalName() == "Total revenue" && c.Family == FamilyPrimary {
			t.Error("strict entry must not match a fragment of a longer tag")
		}
	}
}

func TestHumanLabelFallback(t *testing.T) {
	m := incomeMatcher(t)
	// A registrant extension tag no taxonomy pattern covers; the printed
	// label carries the signal.
	cands := m.MatchRow("acme_TotalNetRevenuesMember2", "Total net revenues")
	top := topCandidate(t, cands)
	if top.CanonicalName() != "Total revenue" {
		t.Errorf("top = %q, want Total revenue", top.CanonicalName())
	}
	if top.Family != FamilyHuman {
		t.Errorf("family = %s, want human", top.Family)
	}
}

func TestCamelCaseFallbackOnlyWhenNothingMatches(t *testing.T) {
	m := incomeMatcher(t)
	cands := m.MatchRow("acme_RevenueRelatedAdjustmentItem", "")
	if len(cands) == 0 {
		t.Fatal("keyword fallback should produce candidates")
	}
	for _, c := range cands {
		if c.Family != FamilyCamelCase {
			t.Errorf("expected only camelcase candidates, got %s", c.Family)
		}
		if c.RegexScore > Scores.HumanBase {
			t.Errorf("fallback score %v should stay below the weakest pattern family", c.RegexScore)
		}
	}
}

func TestNoCandidatesForUnrelatedRow(t *testing.T) {
	m := incomeMatcher(t)
	cands := m.MatchRow("acme_HedgingCollateralPosted", "Collateral posted for hedging")
	if len(cands) != 0 {
		t.Errorf("expected no candidates, got %d (top %v)", len(cands), cands[0])
	}
}

func TestCandidatesSortedByScore(t *testing.T) {
	m := incomeMatcher(t)
	cands := m.MatchRow("us-gaap_InterestIncomeExpenseNet", "Interest income (expense), net")
	for i := 1; i < len(cands); i++ {
		if cands[i].RegexScore > cands[i-1].RegexScore {
			t.Errorf("candidates out of order at %d: %v before %v", i, cands[i-1], cands[i])
		}
	}
}

func TestSplitCamelCase(t *testing.T) {
	got := SplitCamelCase("NetCashProvidedByUsedInOperatingActivities")
	want := []string{"net", "cash", "provided", "by", "used", "in", "operating", "activities"}
	if len(got) != len(want) {
		t.Fatalf("SplitCamelCase = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = %q, want %q", i, got[i], want[i])
		}
	}

	// Acronym runs stay together.
	got = SplitCamelCase("SGAExpense")
	if len(got) != 2 || got[0] != "sga" || got[1] != "expense" {
		t.Errorf("SplitCamelCase(SGAExpense) = %v, want [sga expense]", got)
	}
}
