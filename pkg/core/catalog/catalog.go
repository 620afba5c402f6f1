// Package catalog holds the canonical fact vocabularies, one catalog per
// statement type. Catalogs are process-lifetime constants: entries are built
// once at init, patterns are pre-compiled, and the structures are read-only
// afterwards, so they may be shared across concurrent pipeline runs.
package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"finmap/pkg/core/filing"
)

// Entry fixes one canonical fact: the output row label, its ordered pattern
// lists, and matching hints. The same canonical name appears in at most one
// entry per catalog.
type Entry struct {
	// CanonicalName is the row label emitted in standardized output.
	CanonicalName string

	// PrimaryPatterns match the concept fragment after the namespace prefix
	// (us-gaap concepts). Earlier patterns are more specific.
	PrimaryPatterns []string

	// AlternatePatterns serve issuers filing under an alternate framework
	// (ifrs-full concepts).
	AlternatePatterns []string

	// HumanPatterns match the label text shown in the source table.
	HumanPatterns []string

	// StrictEquality requires the final path segment of the concept to equal
	// the pattern exactly rather than merely contain a match.
	StrictEquality bool

	// Priority in 1..10; tie-breaker hint for the regex score.
	Priority int

	primaryRe   []*regexp.Regexp
	alternateRe []*regexp.Regexp
	humanRe     []*regexp.Regexp
}

// PatternList selects one of the entry's compiled pattern families.
type PatternList int

const (
	Primary PatternList = iota
	Alternate
	Human
)

// Patterns returns the compiled regexes of a family.
func (e *Entry) Patterns(list PatternList) []*regexp.Regexp {
	switch list {
	case Primary:
		return e.primaryRe
	case Alternate:
		return e.alternateRe
	default:
		return e.humanRe
	}
}

func (e *Entry) compile() error {
	compile := func(srcs []string, human bool) ([]*regexp.Regexp, error) {
		out := make([]*regexp.Regexp, 0, len(srcs))
		for _, src := range srcs {
			// Tag patterns match case-sensitively (CamelCase concepts carry
			// meaning in their casing); human labels do not.
			if human {
				src = "(?i)" + src
			}
			re, err := regexp.Compile(src)
			if err != nil {
				return nil, fmt.Errorf("pattern %q: %w", src, err)
			}
			out = append(out, re)
		}
		return out, nil
	}
	var err error
	if e.primaryRe, err = compile(e.PrimaryPatterns, false); err != nil {
		return err
	}
	if e.alternateRe, err = compile(e.AlternatePatterns, false); err != nil {
		return err
	}
	if e.humanRe, err = compile(e.HumanPatterns, true); err != nil {
		return err
	}
	return nil
}

// Catalog is the ordered canonical vocabulary for one statement type.
type Catalog struct {
	Statement filing.StatementType

	entries []*Entry
	byName  map[string]*Entry
	// keywordIndex maps a lowercase keyword to the entries whose canonical
	// name contains that keyword. Drives the CamelCase fallback.
	keywordIndex map[string][]*Entry
}

func newCatalog(st filing.StatementType, entries []*Entry) *Catalog {
	c := &Catalog{
		Statement:    st,
		entries:      entries,
		byName:       make(map[string]*Entry, len(entries)),
		keywordIndex: make(map[string][]*Entry),
	}
	for _, e := range entries {
		if e.Priority == 0 {
			e.Priority = 5
		}
		if err := e.compile(); err != nil {
			panic(fmt.Sprintf("catalog %s / %s: %v", st, e.CanonicalName, err))
		}
		if _, dup := c.byName[e.CanonicalName]; dup {
			panic(fmt.Sprintf("catalog %s: duplicate canonical name %q", st, e.CanonicalName))
		}
		c.byName[e.CanonicalName] = e
		for _, kw := range nameKeywords(e.CanonicalName) {
			c.keywordIndex[kw] = append(c.keywordIndex[kw], e)
		}
	}
	return c
}

// Entries returns the catalog entries in canonical (output) order.
func (c *Catalog) Entries() []*Entry { return c.entries }

// Len returns the number of canonical facts.
func (c *Catalog) Len() int { return len(c.entries) }

// CanonicalNames returns the full vocabulary in catalog order. This is the
// exact index of every mapped table for this statement type.
func (c *Catalog) CanonicalNames() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.CanonicalName
	}
	return names
}

// Lookup returns the entry for a canonical name, or nil.
func (c *Catalog) Lookup(name string) *Entry { return c.byName[name] }

// IndexOf returns the catalog position of a canonical name, or -1.
func (c *Catalog) IndexOf(name string) int {
	for i, e := range c.entries {
		if e.CanonicalName == name {
			return i
		}
	}
	return -1
}

// KeywordMatches returns the entries whose canonical name contains the given
// lowercase keyword.
func (c *Catalog) KeywordMatches(keyword string) []*Entry {
	return c.keywordIndex[strings.ToLower(keyword)]
}

// ForStatement returns the catalog for a statement type.
func ForStatement(st filing.StatementType) (*Catalog, error) {
	switch st {
	case filing.IncomeStatement:
		return incomeCatalog, nil
	case filing.BalanceSheet:
		return balanceCatalog, nil
	case filing.CashFlow:
		return cashFlowCatalog, nil
	}
	return nil, fmt.Errorf("no catalog for statement type %q", st)
}

// nameKeywords lowers and splits a canonical name into index keywords,
// dropping punctuation and one-letter fragments.
func nameKeywords(name string) []string {
	name = strings.ToLower(name)
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) > 1 {
			out = append(out, f)
		}
	}
	return out
}

var (
	incomeCatalog   *Catalog
	balanceCatalog  *Catalog
	cashFlowCatalog *Catalog
)

func init() {
	incomeCatalog = newCatalog(filing.IncomeStatement, incomeEntries)
	balanceCatalog = newCatalog(filing.BalanceSheet, balanceEntries)
	cashFlowCatalog = newCatalog(filing.CashFlow, cashFlowEntries)
}
