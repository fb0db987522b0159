// Package adventure is the star-collecting game: walk a buddy around a
// grid, collect every star, then answer a bonus challenge to level up.
package adventure

import (
	"errors"
	"maps"
	"slices"

	"github.com/abhisek/playroom/internal/content"
	"github.com/abhisek/playroom/internal/round"
)

const (
	Width  = 20
	Height = 8

	StarsPerLevel = 5
	TotalLevels   = 5

	// BonusStars is awarded for a correct challenge answer.
	BonusStars = 2
)

var (
	ErrNoChallenge  = errors.New("no challenge open")
	ErrGameComplete = errors.New("adventure complete")
)

// Direction is a single step on the grid.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Point is a grid cell. Y grows downwards.
type Point struct {
	X, Y int
}

func (p Point) step(d Direction) Point {
	switch d {
	case Up:
		p.Y--
	case Down:
		p.Y++
	case Left:
		p.X--
	case Right:
		p.X++
	}
	return p
}

func (p Point) inBounds() bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// Phase is where the game stands.
type Phase int

const (
	PhaseExploring Phase = iota
	PhaseChallenge       // all stars collected, bonus question open
	PhaseLevelUp         // challenge answered, next level pending
	PhaseComplete
)

// Challenge is the open bonus question with its options in play order.
type Challenge struct {
	Question string
	Options  []int
	Answer   int
}

// MoveResult describes what a Move did.
type MoveResult struct {
	Moved     bool
	Collected bool

	// Cleared is set when the move collected the level's last star.
	Cleared bool
}

// Game is one adventure run. Not safe for concurrent use.
type Game struct {
	src        round.Source
	challenges []content.Challenge

	level     int
	player    Point
	stars     map[Point]bool
	collected int
	phase     Phase
	open      *Challenge
}

// New starts level 1 with the player in the middle of the grid.
func New(challenges []content.Challenge, src round.Source) *Game {
	g := &Game{
		src:        src,
		challenges: challenges,
		level:      1,
		player:     Point{X: Width / 2, Y: Height / 2},
	}
	g.spawnStars()
	return g
}

// spawnStars places StarsPerLevel stars on distinct cells off the edges
// and away from the player.
func (g *Game) spawnStars() {
	g.stars = make(map[Point]bool, StarsPerLevel)
	for len(g.stars) < StarsPerLevel {
		p := Point{X: 1 + g.src.IntN(Width-2), Y: 1 + g.src.IntN(Height-2)}
		if p == g.player {
			continue
		}
		g.stars[p] = true
	}
	g.phase = PhaseExploring
	g.open = nil
}

func (g *Game) Level() int          { return g.level }
func (g *Game) Player() Point       { return g.player }
func (g *Game) Collected() int      { return g.collected }
func (g *Game) Phase() Phase        { return g.phase }
func (g *Game) StarAt(p Point) bool { return g.stars[p] }
func (g *Game) StarsLeft() int      { return len(g.stars) }

// Stars returns the uncollected stars in row order.
func (g *Game) Stars() []Point {
	pts := slices.Collect(maps.Keys(g.stars))
	slices.SortFunc(pts, func(a, b Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return pts
}

// Challenge returns the open challenge, or nil.
func (g *Game) Challenge() *Challenge { return g.open }

// Move steps the player one cell. Moves off the grid and moves outside
// PhaseExploring do nothing.
func (g *Game) Move(d Direction) MoveResult {
	if g.phase != PhaseExploring {
		return MoveResult{}
	}
	next := g.player.step(d)
	if !next.inBounds() {
		return MoveResult{}
	}
	g.player = next

	res := MoveResult{Moved: true}
	if g.stars[next] {
		delete(g.stars, next)
		g.collected++
		res.Collected = true
	}
	if len(g.stars) == 0 {
		res.Cleared = true
		g.openChallenge()
	}
	return res
}

func (g *Game) openChallenge() {
	g.phase = PhaseChallenge
	if len(g.challenges) == 0 {
		g.open = &Challenge{Question: "How many stars did you find?", Options: []int{StarsPerLevel - 1, StarsPerLevel, StarsPerLevel + 1}, Answer: StarsPerLevel}
	} else {
		c := g.challenges[g.src.IntN(len(g.challenges))]
		g.open = &Challenge{Question: c.Question, Options: slices.Clone(c.Options), Answer: c.Answer}
	}
	round.Shuffle(g.src, g.open.Options)
}

// Answer checks a pick for the open challenge. A correct pick adds
// BonusStars and either completes the game or waits for NextLevel.
func (g *Game) Answer(option int) (bool, error) {
	switch g.phase {
	case PhaseComplete:
		return false, ErrGameComplete
	case PhaseChallenge:
	default:
		return false, ErrNoChallenge
	}

	if option != g.open.Answer {
		return false, nil
	}
	g.collected += BonusStars
	if g.level >= TotalLevels {
		g.phase = PhaseComplete
	} else {
		g.phase = PhaseLevelUp
	}
	return true, nil
}

// NextLevel starts the level after a correctly answered challenge.
func (g *Game) NextLevel() error {
	if g.phase != PhaseLevelUp {
		return round.ErrNotAdvancing
	}
	g.level++
	g.spawnStars()
	return nil
}
