package round

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

const (
	// widenAfter is the run of consecutive rejections that makes the
	// builder ask the strategy for a wider range.
	widenAfter = 32

	// drawBudget caps total draws per requested option.
	drawBudget = 4096
)

// BuildOptions returns count distinct values in random order, exactly one
// of which is correct. Decoys come from strategy by rejection sampling.
func BuildOptions(src Source, correct Value, count int, strategy DecoyStrategy) ([]Value, error) {
	if count < 2 {
		return nil, &ConfigError{Field: "optionCount", Value: strconv.Itoa(count), Reason: "must be at least 2"}
	}
	if b, ok := strategy.(Bounded); ok && count > b.Capacity() {
		return nil, &ConfigError{
			Field:  "optionCount",
			Value:  strconv.Itoa(count),
			Reason: fmt.Sprintf("only %d distinct values available", b.Capacity()),
		}
	}

	options := make([]Value, 1, count)
	options[0] = correct

	widen, streak := 0, 0
	for draws := 0; len(options) < count; draws++ {
		if draws >= drawBudget*count {
			return nil, fmt.Errorf("%d of %d options after %d draws: %w", len(options), count, draws, ErrDecoysExhausted)
		}

		candidate := strategy.Draw(src, correct, widen)
		if !strategy.Valid(candidate) || lo.Contains(options, candidate) {
			streak++
			if streak%widenAfter == 0 {
				widen++
			}
			continue
		}
		streak = 0
		options = append(options, candidate)
	}

	Shuffle(src, options)
	return options, nil
}

// Shuffle permutes s in place with Fisher–Yates.
func Shuffle[T any](src Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// IndexOf returns the position of v in options, or -1.
func IndexOf(options []Value, v Value) int {
	return lo.IndexOf(options, v)
}
