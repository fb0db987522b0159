package round

import "github.com/samber/lo"

// DecoyStrategy is the candidate distribution used by BuildOptions.
type DecoyStrategy interface {
	// Draw returns a candidate decoy for correct. widen counts how many
	// times the builder has asked for a wider range after a run of
	// rejected candidates.
	Draw(src Source, correct Value, widen int) Value

	// Valid reports whether v may appear as an option at all.
	Valid(v Value) bool
}

// Bounded is implemented by strategies with a finite set of values.
// Capacity includes the correct answer.
type Bounded interface {
	Capacity() int
}

// DefaultSpread is the smallest distance a numeric decoy may be drawn from
// the answer.
const DefaultSpread = 10

// maxWiden keeps the shifted spread well inside int range.
const maxWiden = 16

// SpreadDecoys draws positive numbers around the correct answer:
// correct ± U[-spread, spread] with spread = max(MinSpread, correct/2).
type SpreadDecoys struct {
	MinSpread int
}

func (s SpreadDecoys) Draw(src Source, correct Value, widen int) Value {
	spread := max(s.MinSpread, correct.Int()/2, 1)
	spread <<= min(widen, maxWiden)
	return Number(correct.Int() + between(src, -spread, spread))
}

func (s SpreadDecoys) Valid(v Value) bool {
	return !v.IsLetter() && v.Int() > 0
}

// RangeDecoys draws uniformly from [Min, Max]. Each widening step extends
// Max by the width of the original range.
type RangeDecoys struct {
	Min int
	Max int
}

func (r RangeDecoys) Draw(src Source, _ Value, widen int) Value {
	width := r.Max - r.Min + 1
	return Number(between(src, r.Min, r.Max+min(widen, maxWiden)*width))
}

func (r RangeDecoys) Valid(v Value) bool {
	return !v.IsLetter() && v.Int() >= r.Min && v.Int() > 0
}

// LetterDecoys draws other letters from the same alphabet.
type LetterDecoys struct {
	Alphabet []rune
}

func (l LetterDecoys) Draw(src Source, _ Value, _ int) Value {
	return Letter(l.Alphabet[src.IntN(len(l.Alphabet))])
}

func (l LetterDecoys) Valid(v Value) bool {
	return v.IsLetter() && lo.Contains(l.Alphabet, v.Rune())
}

func (l LetterDecoys) Capacity() int {
	return len(lo.Uniq(l.Alphabet))
}
