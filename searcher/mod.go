package searcher

import (
	"errors"
	"fmt"
	"math"

	"isolation/game"
)

// Scores for positions decided within the search horizon. Heuristic scores
// are always finite, so these never tie with an evaluated position.
var (
	Win  = math.Inf(1)
	Loss = math.Inf(-1)
)

// ErrTimeout is returned by every search call once the clock drops below the
// threshold. It unwinds the whole in-progress search.
var ErrTimeout = errors.New("search timeout")

type Algorithm string

const (
	Minimax   Algorithm = "minimax"
	AlphaBeta Algorithm = "alphabeta"
)

// ParseAlgorithm maps a configuration value to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case Minimax, AlphaBeta:
		return Algorithm(name), nil
	default:
		return "", fmt.Errorf("unknown search algorithm %q", name)
	}
}

// Result is the backed-up score of a node and the move that achieves it.
type Result struct {
	Score float64
	Move  game.Move
}

// IsProven reports whether the score is a forced win or loss.
func (r Result) IsProven() bool {
	return math.IsInf(r.Score, 0)
}
