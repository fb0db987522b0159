package round

import (
	"fmt"
	"strconv"
)

// Domain selects which kind of question a session asks.
type Domain string

const (
	DomainArithmetic Domain = "arithmetic"
	DomainCounting   Domain = "counting"
	DomainLetters    Domain = "letters"
)

// Operation is the arithmetic operation drilled in an Arithmetic session.
type Operation string

const (
	OpAdd Operation = "add"
	OpSub Operation = "sub"
	OpMul Operation = "mul"
	OpDiv Operation = "div"
)

// Symbol returns the operator glyph shown between the operands.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "−"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return "?"
	}
}

// DisplayName returns a child-friendly name for the operation.
func (o Operation) DisplayName() string {
	switch o {
	case OpAdd:
		return "Adding"
	case OpSub:
		return "Taking Away"
	case OpMul:
		return "Times"
	case OpDiv:
		return "Sharing"
	default:
		return string(o)
	}
}

// Difficulty scales operand ranges, counting limits and the letter alphabet.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Item is something a child counts, like an apple or a balloon.
type Item struct {
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
}

// Value is an answer choice: either a whole number or a single letter.
// Values are comparable and can be used as map keys.
type Value struct {
	letter bool
	n      int
	r      rune
}

// Number returns a numeric Value.
func Number(n int) Value {
	return Value{n: n}
}

// Letter returns a letter Value.
func Letter(r rune) Value {
	return Value{letter: true, r: r}
}

// IsLetter reports whether v holds a letter.
func (v Value) IsLetter() bool { return v.letter }

// Int returns the numeric value. It is 0 for letters.
func (v Value) Int() int { return v.n }

// Rune returns the letter. It is 0 for numbers.
func (v Value) Rune() rune { return v.r }

func (v Value) String() string {
	if v.letter {
		return string(v.r)
	}
	return strconv.Itoa(v.n)
}

// Question is a single round's prompt and its correct answer.
type Question struct {
	Domain    Domain
	Operation Operation

	// Operand1 and Operand2 are set for Arithmetic. For division
	// Operand1 is the dividend and Operand2 the divisor.
	Operand1 int
	Operand2 int

	// Item and Count are set for Counting.
	Item  Item
	Count int

	// Letter is set for LetterMatch.
	Letter rune

	Answer Value
}

// Prompt renders the question the way it is read to the child.
func (q Question) Prompt() string {
	switch q.Domain {
	case DomainArithmetic:
		return fmt.Sprintf("%d %s %d = ?", q.Operand1, q.Operation.Symbol(), q.Operand2)
	case DomainCounting:
		name := q.Item.Name
		if name == "" {
			name = "objects"
		}
		return fmt.Sprintf("How many %s do you see?", name)
	case DomainLetters:
		return fmt.Sprintf("Find the letter %c!", q.Letter)
	default:
		return ""
	}
}

// RoundConfig is fixed for the lifetime of a session.
type RoundConfig struct {
	Domain     Domain
	Operation  Operation // Arithmetic only
	Difficulty Difficulty

	// OptionCount is the number of answer choices. Zero selects the
	// domain default.
	OptionCount int

	// TotalRounds is the number of correct answers that complete a
	// session. Zero selects DefaultTotalRounds.
	TotalRounds int

	// Reward is the score added per correct answer. Zero selects
	// DefaultReward.
	Reward int
}

const (
	DefaultTotalRounds = 10
	DefaultReward      = 10
)

// defaultOptionCount mirrors the original page layouts: three buttons
// for sums, four for counting, six letter tiles.
var defaultOptionCount = map[Domain]int{
	DomainArithmetic: 3,
	DomainCounting:   4,
	DomainLetters:    6,
}

// WithDefaults fills zero fields with their defaults.
func (c RoundConfig) WithDefaults() RoundConfig {
	if c.Difficulty == "" {
		c.Difficulty = Easy
	}
	if c.Domain == DomainArithmetic && c.Operation == "" {
		c.Operation = OpAdd
	}
	if c.OptionCount == 0 {
		c.OptionCount = defaultOptionCount[c.Domain]
	}
	if c.TotalRounds == 0 {
		c.TotalRounds = DefaultTotalRounds
	}
	if c.Reward == 0 {
		c.Reward = DefaultReward
	}
	return c
}

// Validate checks that the configuration names a playable game.
// It returns a *ConfigError describing the first problem found.
func (c RoundConfig) Validate() error {
	switch c.Domain {
	case DomainArithmetic:
		switch c.Operation {
		case OpAdd, OpSub, OpMul, OpDiv:
		default:
			return &ConfigError{Field: "operation", Value: string(c.Operation), Reason: "unknown operation"}
		}
	case DomainCounting, DomainLetters:
	default:
		return &ConfigError{Field: "domain", Value: string(c.Domain), Reason: "unknown domain"}
	}

	if _, ok := levels[c.Difficulty]; !ok {
		return &ConfigError{Field: "difficulty", Value: string(c.Difficulty), Reason: "unknown difficulty"}
	}
	if c.OptionCount < 2 {
		return &ConfigError{Field: "optionCount", Value: strconv.Itoa(c.OptionCount), Reason: "must be at least 2"}
	}
	if c.Domain == DomainLetters {
		if n := len(Alphabet(c.Difficulty)); c.OptionCount > n {
			return &ConfigError{
				Field:  "optionCount",
				Value:  strconv.Itoa(c.OptionCount),
				Reason: fmt.Sprintf("alphabet has only %d letters", n),
			}
		}
	}
	if c.TotalRounds < 1 {
		return &ConfigError{Field: "totalRounds", Value: strconv.Itoa(c.TotalRounds), Reason: "must be at least 1"}
	}
	if c.Reward < 0 {
		return &ConfigError{Field: "reward", Value: strconv.Itoa(c.Reward), Reason: "must not be negative"}
	}
	return nil
}
