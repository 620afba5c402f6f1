package match

// ScoreTable fixes the regex-score constants. The absolute values are
// tunable; their relative ordering (primary > alternate > human > camelcase,
// more patterns > fewer, longer matches > shorter, earlier patterns >
// later) is the contract and is what the tests assert.
type ScoreTable struct {
	// Pattern-family bases.
	PrimaryBase   float64
	AlternateBase float64
	HumanBase     float64
	CamelCaseBase float64

	// Pattern-count bonuses for 1, 2, 3, >=4 patterns matched.
	Count1 float64
	Count2 float64
	Count3 float64
	Count4 float64

	// Specificity bonus thresholds: average match length >= Long earns
	// LongBonus, >= Medium earns MediumBonus, below earns nothing.
	MediumLen   int
	LongLen     int
	MediumBonus float64
	LongBonus   float64

	// PriorityWeight multiplies the catalog entry priority (1..10).
	PriorityWeight float64

	// PositionMax is the bonus for the first pattern in a list; each later
	// position loses one point down to zero.
	PositionMax float64

	// DimensionalPenalty is subtracted from every candidate of a
	// dimensional row. Its magnitude exceeds any attainable regex score, so
	// an un-prefixed sibling with identical matches always outranks the
	// breakdown row.
	DimensionalPenalty float64
}

// Scores is the table used by the matcher.
var Scores = ScoreTable{
	PrimaryBase:   40,
	AlternateBase: 32,
	HumanBase:     24,
	CamelCaseBase: 8,

	Count1: 0,
	Count2: 4,
	Count3: 7,
	Count4: 10,

	MediumLen:   6,
	LongLen:     12,
	MediumBonus: 3,
	LongBonus:   6,

	PriorityWeight: 1,
	PositionMax:    5,

	DimensionalPenalty: 100,
}

func (t ScoreTable) familyBase(f PatternFamily) float64 {
	switch f {
	case FamilyPrimary:
		return t.PrimaryBase
	case FamilyAlternate:
		return t.AlternateBase
	case FamilyHuman:
		return t.HumanBase
	default:
		return t.CamelCaseBase
	}
}

func (t ScoreTable) countBonus(n int) float64 {
	switch {
	case n >= 4:
		return t.Count4
	case n == 3:
		return t.Count3
	case n == 2:
		return t.Count2
	default:
		return t.Count1
	}
}

func (t ScoreTable) specificityBonus(avgLen int) float64 {
	switch {
	case avgLen >= t.LongLen:
		return t.LongBonus
	case avgLen >= t.MediumLen:
		return t.MediumBonus
	default:
		return 0
	}
}

func (t ScoreTable) positionBonus(firstIndex int) float64 {
	b := t.PositionMax - float64(firstIndex)
	if b < 0 {
		return 0
	}
	return b
}
