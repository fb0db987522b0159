package round

// Span is an inclusive integer range.
type Span struct {
	Min int
	Max int
}

// level holds the tuning for one difficulty.
type level struct {
	sum      Span // add and subtract operands
	product  Span // multiply and divide factors
	maxCount int  // largest count in the counting game
	letters  string
}

const (
	upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lower = "abcdefghijklmnopqrstuvwxyz"
)

var levels = map[Difficulty]level{
	Easy: {
		sum:      Span{1, 10},
		product:  Span{1, 5},
		maxCount: 5,
		letters:  upper,
	},
	Medium: {
		sum:      Span{10, 20},
		product:  Span{2, 10},
		maxCount: 10,
		letters:  lower,
	},
	Hard: {
		sum:      Span{20, 50},
		product:  Span{5, 12},
		maxCount: 20,
		letters:  upper + lower,
	},
}

// subtractHeadroom lifts the minuend's lower bound so most
// subtractions leave something behind.
const subtractHeadroom = 5

// SumRange returns the operand range for addition and subtraction.
func SumRange(d Difficulty) Span { return levels[d].sum }

// ProductRange returns the factor range for multiplication and division.
func ProductRange(d Difficulty) Span { return levels[d].product }

// MaxCount returns the largest count asked in the counting game.
func MaxCount(d Difficulty) int { return levels[d].maxCount }

// Alphabet returns the letters drilled at the given difficulty:
// uppercase, lowercase, or both.
func Alphabet(d Difficulty) []rune { return []rune(levels[d].letters) }
