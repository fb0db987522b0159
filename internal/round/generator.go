package round

import (
	"github.com/samber/lo"
)

// fallbackItems is used when a counting session is started without a catalog.
var fallbackItems = []Item{{Symbol: "*", Name: "stars"}}

// Generator produces questions for one RoundConfig.
type Generator struct {
	cfg   RoundConfig
	src   Source
	items []Item
}

// NewGenerator validates cfg and returns a Generator drawing from src.
// items are the things to count; they are ignored outside Counting.
func NewGenerator(cfg RoundConfig, src Source, items []Item) (*Generator, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		items = fallbackItems
	}
	return &Generator{cfg: cfg, src: src, items: items}, nil
}

// Next returns a fresh question. For LetterMatch, used holds the letters
// already asked this session; Next records the new target in it and
// clears it once the whole alphabet has been asked.
func (g *Generator) Next(used map[Value]bool) (Question, error) {
	switch g.cfg.Domain {
	case DomainArithmetic:
		return g.arithmetic()
	case DomainCounting:
		return g.counting(), nil
	case DomainLetters:
		return g.letter(used), nil
	default:
		return Question{}, &ConfigError{Field: "domain", Value: string(g.cfg.Domain), Reason: "unknown domain"}
	}
}

func (g *Generator) arithmetic() (Question, error) {
	q := Question{Domain: DomainArithmetic, Operation: g.cfg.Operation}

	switch g.cfg.Operation {
	case OpAdd:
		r := SumRange(g.cfg.Difficulty)
		q.Operand1 = between(g.src, r.Min, r.Max)
		q.Operand2 = between(g.src, r.Min, r.Max)
		q.Answer = Number(q.Operand1 + q.Operand2)

	case OpSub:
		r := SumRange(g.cfg.Difficulty)
		q.Operand1 = between(g.src, r.Min+subtractHeadroom, r.Max)
		q.Operand2 = between(g.src, r.Min, q.Operand1)
		q.Answer = Number(q.Operand1 - q.Operand2)

	case OpMul:
		r := ProductRange(g.cfg.Difficulty)
		q.Operand1 = between(g.src, r.Min, r.Max)
		q.Operand2 = between(g.src, r.Min, r.Max)
		q.Answer = Number(q.Operand1 * q.Operand2)

	case OpDiv:
		// Build the dividend from divisor × quotient so the division is exact.
		r := ProductRange(g.cfg.Difficulty)
		divisor := between(g.src, r.Min, r.Max)
		quotient := between(g.src, r.Min, r.Max)
		q.Operand1 = divisor * quotient
		q.Operand2 = divisor
		q.Answer = Number(quotient)

	default:
		return Question{}, &ConfigError{Field: "operation", Value: string(g.cfg.Operation), Reason: "unknown operation"}
	}
	return q, nil
}

func (g *Generator) counting() Question {
	item := g.items[g.src.IntN(len(g.items))]
	n := between(g.src, 1, MaxCount(g.cfg.Difficulty))
	return Question{
		Domain: DomainCounting,
		Item:   item,
		Count:  n,
		Answer: Number(n),
	}
}

func (g *Generator) letter(used map[Value]bool) Question {
	alphabet := Alphabet(g.cfg.Difficulty)
	available := lo.Filter(alphabet, func(r rune, _ int) bool {
		return !used[Letter(r)]
	})
	if len(available) == 0 {
		clear(used)
		available = alphabet
	}

	r := available[g.src.IntN(len(available))]
	if used != nil {
		used[Letter(r)] = true
	}
	return Question{
		Domain: DomainLetters,
		Letter: r,
		Answer: Letter(r),
	}
}

// Strategy returns the decoy distribution that fits q.
func (g *Generator) Strategy(q Question) DecoyStrategy {
	switch q.Domain {
	case DomainCounting:
		return RangeDecoys{Min: 1, Max: MaxCount(g.cfg.Difficulty)}
	case DomainLetters:
		return LetterDecoys{Alphabet: Alphabet(g.cfg.Difficulty)}
	default:
		return SpreadDecoys{MinSpread: DefaultSpread}
	}
}
