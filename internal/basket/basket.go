// Package basket is the drag-and-count game: move items from a pool into a
// basket until it holds the target number, then check.
package basket

import (
	"github.com/samber/lo"

	"github.com/abhisek/playroom/internal/round"
)

const (
	MinTarget = 3
	MaxTarget = 10

	// Extra is how many more items the pool holds than the target.
	Extra = 5

	Reward = 10
)

// Result is the outcome of a Check.
type Result struct {
	Correct bool
	Count   int
	Target  int
}

// Game is an endless run of basket rounds. Not safe for concurrent use.
type Game struct {
	src   round.Source
	items []round.Item

	target   int
	item     round.Item
	inBasket []bool

	score     int
	rounds    int
	advancing bool
}

// New starts the first round. items are the things to drop in the basket.
func New(items []round.Item, src round.Source) *Game {
	if len(items) == 0 {
		items = []round.Item{{Symbol: "*", Name: "stars"}}
	}
	g := &Game{src: src, items: items}
	g.newRound()
	return g
}

func (g *Game) newRound() {
	g.target = MinTarget + g.src.IntN(MaxTarget-MinTarget+1)
	g.item = g.items[g.src.IntN(len(g.items))]
	g.inBasket = make([]bool, g.target+Extra)
	g.advancing = false
}

func (g *Game) Target() int          { return g.target }
func (g *Game) Item() round.Item     { return g.item }
func (g *Game) PoolSize() int        { return len(g.inBasket) }
func (g *Game) Score() int           { return g.score }
func (g *Game) RoundsCompleted() int { return g.rounds }
func (g *Game) Advancing() bool      { return g.advancing }
func (g *Game) InBasket(i int) bool  { return i >= 0 && i < len(g.inBasket) && g.inBasket[i] }

// Count is the number of items in the basket.
func (g *Game) Count() int {
	return lo.Count(g.inBasket, true)
}

// Add moves pool item i into the basket. It reports whether anything moved.
func (g *Game) Add(i int) bool {
	if g.advancing || i < 0 || i >= len(g.inBasket) || g.inBasket[i] {
		return false
	}
	g.inBasket[i] = true
	return true
}

// Remove takes item i back out of the basket.
func (g *Game) Remove(i int) bool {
	if g.advancing || !g.InBasket(i) {
		return false
	}
	g.inBasket[i] = false
	return true
}

// Toggle adds or removes item i.
func (g *Game) Toggle(i int) bool {
	if g.InBasket(i) {
		return g.Remove(i)
	}
	return g.Add(i)
}

// Check compares the basket with the target. A match scores Reward and
// holds the round until Next; a miss changes nothing.
func (g *Game) Check() (Result, error) {
	if g.advancing {
		return Result{}, round.ErrNotAwaitingAnswer
	}
	res := Result{Count: g.Count(), Target: g.target}
	if res.Count == g.target {
		res.Correct = true
		g.score += Reward
		g.rounds++
		g.advancing = true
	}
	return res, nil
}

// Next starts the round that follows a correct Check.
func (g *Game) Next() error {
	if !g.advancing {
		return round.ErrNotAdvancing
	}
	g.newRound()
	return nil
}

// Reset throws the current round away without scoring.
func (g *Game) Reset() {
	g.newRound()
}
