package filing

// Fact is one taxonomy fact from the filing's facts database: a concept,
// the reported value in base units, and the period it covers. Instant facts
// (balance sheet) carry an empty PeriodStart.
type Fact struct {
	Concept     string  `json:"concept"`
	Value       float64 `json:"value"`
	PeriodStart string  `json:"period_start,omitempty"` // ISO date, "" for instants
	PeriodEnd   string  `json:"period_end"`             // ISO date
}

// FactsDB is the read-only contract to the filing's facts database. The
// unit detector uses it to cross-check table values against base-unit facts.
type FactsDB interface {
	// Lookup returns every fact reported for a concept at a period end.
	// Multiple matches occur when quarterly and YTD durations share an end
	// date; callers disambiguate by period length.
	Lookup(concept string, periodEnd string) []Fact
}

// MemFacts is an in-memory FactsDB keyed by concept and period end.
// Primarily a test fixture, also used by the extract adapter when facts
// arrive pre-parsed.
type MemFacts struct {
	facts map[string]map[string][]Fact
}

// NewMemFacts builds a MemFacts from a flat fact list.
func NewMemFacts(facts ...Fact) *MemFacts {
	m := &MemFacts{facts: make(map[string]map[string][]Fact)}
	for _, f := range facts {
		m.Add(f)
	}
	return m
}

// Add inserts a fact.
func (m *MemFacts) Add(f Fact) {
	byEnd, ok := m.facts[f.Concept]
	if !ok {
		byEnd = make(map[string][]Fact)
		m.facts[f.Concept] = byEnd
	}
	byEnd[f.PeriodEnd] = append(byEnd[f.PeriodEnd], f)
}

// Lookup implements FactsDB.
func (m *MemFacts) Lookup(concept string, periodEnd string) []Fact {
	byEnd, ok := m.facts[concept]
	if !ok {
		return nil
	}
	return byEnd[periodEnd]
}
