package searcher

import (
	"isolation/game"

	"github.com/rs/zerolog"
)

// run is the state of one search call tree. It is owned by a single
// goroutine and discarded after the search returns.
type run struct {
	player    game.Player // Every score is from this player's perspective
	evaluate  game.Evaluate
	algorithm Algorithm
	clock     Clock
	threshold float64
	metrics   Collector
	log       zerolog.Logger
	depth     int  // Depth at the root
	limited   bool // Some leaf was scored because the depth ran out
}

func (r *run) search(state game.State) (Result, error) {
	if r.algorithm == AlphaBeta {
		return r.alphabeta(state, r.depth, Loss, Win, true)
	}
	return r.minimax(state, r.depth, true)
}

// enter is called first by every search node.
func (r *run) enter() error {
	if r.clock() < r.threshold {
		return ErrTimeout
	}
	r.metrics.AddNode()
	return nil
}

// outcome scores a successor that ended the game.
func (r *run) outcome(successor game.State) (float64, bool) {
	switch {
	case successor.IsWinner(r.player):
		return Win, true
	case successor.IsLoser(r.player):
		return Loss, true
	default:
		return 0, false
	}
}

func (r *run) leaf(successor game.State) float64 {
	r.limited = true
	r.metrics.AddLeaf()
	return r.evaluate(successor, r.player)
}

func (r *run) trace(depth int, move game.Move, score float64) {
	r.log.Trace().
		Int("ply", r.depth-depth).
		Stringer("move", move).
		Float64("score", score).
		Msg("scored move")
}

// proven reports whether score is the best a ply can hope for, so its
// remaining siblings cannot matter. A terminal score that is the worst
// outcome for the ply (a loss on a max ply, a win on a min ply) is not
// proven and the siblings are still searched.
func proven(score float64, maximizing bool) bool {
	if maximizing {
		return score == Win
	}
	return score == Loss
}
