package match

import (
	"regexp"
	"sort"

	"finmap/pkg/core/catalog"
	"finmap/pkg/core/filing"
)

// Matcher generates candidates for one statement type's catalog.
type Matcher struct {
	cat    *catalog.Catalog
	scores ScoreTable
}

// NewMatcher builds a matcher over a catalog using the default score table.
func NewMatcher(cat *catalog.Catalog) *Matcher {
	return &Matcher{cat: cat, scores: Scores}
}

// MatchRow produces the candidate list for one row, best regex score first.
// A dimensional row is matched on its stripped concept and every resulting
// candidate carries the fixed penalty.
func (m *Matcher) MatchRow(rowID, humanLabel string) []*Candidate {
	dimensional := filing.IsDimensional(rowID)
	tag := filing.TagSegment(rowID)

	var candidates []*Candidate
	for _, entry := range m.cat.Entries() {
		if c := m.matchEntry(rowID, tag, humanLabel, entry); c != nil {
			candidates = append(candidates, c)
		}
	}

	// CamelCase fallback only when no pattern family produced anything.
	if len(candidates) == 0 {
		candidates = m.camelCaseFallback(rowID, tag)
	}

	if dimensional {
		for _, c := range candidates {
			c.Dimensional = true
			c.RegexScore -= m.scores.DimensionalPenalty
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RegexScore > candidates[j].RegexScore
	})
	return candidates
}

// matchEntry tries the three pattern families in order and emits at most one
// candidate per canonical fact; the first family that matches wins.
func (m *Matcher) matchEntry(rowID, tag, humanLabel string, entry *catalog.Entry) *Candidate {
	if hits := m.runPatterns(entry, catalog.Primary, tag, entry.StrictEquality); len(hits) > 0 {
		return m.newCandidate(rowID, entry, FamilyPrimary, hits)
	}
	if hits := m.runPatterns(entry, catalog.Alternate, tag, entry.StrictEquality); len(hits) > 0 {
		return m.newCandidate(rowID, entry, FamilyAlternate, hits)
	}
	if humanLabel != "" {
		if hits := m.runPatterns(entry, catalog.Human, humanLabel, false); len(hits) > 0 {
			return m.newCandidate(rowID, entry, FamilyHuman, hits)
		}
	}
	return nil
}

// runPatterns collects every pattern hit of one family against a subject.
// Strict entries require the hit to cover the whole subject, not merely a
// fragment of it.
func (m *Matcher) runPatterns(entry *catalog.Entry, list catalog.PatternList, subject string, strict bool) []PatternMatch {
	var hits []PatternMatch
	for i, re := range entry.Patterns(list) {
		loc := re.FindStringIndex(subject)
		if loc == nil {
			continue
		}
		matched := subject[loc[0]:loc[1]]
		if strict && matched != subject {
			continue
		}
		hits = append(hits, PatternMatch{PatternIndex: i, Matched: matched, Position: loc[0]})
	}
	return hits
}

func (m *Matcher) newCandidate(rowID string, entry *catalog.Entry, family PatternFamily, hits []PatternMatch) *Candidate {
	totalLen := 0
	firstIndex := hits[0].PatternIndex
	for _, h := range hits {
		totalLen += len(h.Matched)
		if h.PatternIndex < firstIndex {
			firstIndex = h.PatternIndex
		}
	}
	avgLen := totalLen / len(hits)

	score := m.scores.familyBase(family) +
		m.scores.countBonus(len(hits)) +
		m.scores.specificityBonus(avgLen) +
		m.scores.PriorityWeight*float64(entry.Priority) +
		m.scores.positionBonus(firstIndex)

	return &Candidate{
		RowID:      rowID,
		Entry:      entry,
		Family:     family,
		Matches:    hits,
		RegexScore: score,
	}
}

// camelCaseFallback splits the tag on capitalization boundaries, strips
// stop words, and emits one low-scored candidate per unique canonical fact
// found in the keyword index.
func (m *Matcher) camelCaseFallback(rowID, tag string) []*Candidate {
	keywords := SplitCamelCase(tag)
	seen := make(map[string]*Candidate)
	var out []*Candidate
	for _, kw := range keywords {
		if stopWords[kw] {
			continue
		}
		for _, entry := range m.cat.KeywordMatches(kw) {
			if c, ok := seen[entry.CanonicalName]; ok {
				// Another keyword hit the same fact; count it as an extra
				// pattern toward the count bonus.
				c.Matches = append(c.Matches, PatternMatch{Matched: kw})
				c.RegexScore = m.scores.CamelCaseBase +
					m.scores.countBonus(len(c.Matches)) +
					m.scores.PriorityWeight*float64(entry.Priority)
				continue
			}
			c := &Candidate{
				RowID:      rowID,
				Entry:      entry,
				Family:     FamilyCamelCase,
				Matches:    []PatternMatch{{Matched: kw}},
				RegexScore: m.scores.CamelCaseBase + m.scores.PriorityWeight*float64(entry.Priority),
			}
			seen[entry.CanonicalName] = c
			out = append(out, c)
		}
	}
	return out
}

var stopWords = map[string]bool{
	"and": true, "of": true, "the": true, "in": true, "to": true,
	"from": true, "for": true, "on": true, "a": true, "an": true,
	"us": true, "gaap": true, "ifrs": true, "full": true,
	"net": true, "loss": true, "benefit": true,
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])|([A-Z]+)([A-Z][a-z])`)

// SplitCamelCase splits a taxonomy tag into lowercase keywords:
// "NetCashProvidedByUsedInOperatingActivities" ->
// [net cash provided by used in operating activities].
func SplitCamelCase(tag string) []string {
	spaced := camelBoundary.ReplaceAllString(tag, "$1$3 $2$4")
	fields := splitNonAlnum(spaced)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, toLower(f))
	}
	return out
}

func splitNonAlnum(s string) []string {
	var fields []string
	start := -1
	for i, r := range s {
		alnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if alnum {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			fields = append(fields, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		fields = append(fields, s[start:])
	}
	return fields
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
