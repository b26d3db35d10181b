package searcher

import (
	"fmt"
	"math"

	"isolation/game"

	"github.com/rs/zerolog"
)

// Searcher holds an immutable search configuration. Everything that belongs
// to a single decision (clock, metrics, perspective) lives in a run.
type Searcher struct {
	depth        int
	iterative    bool
	algorithm    Algorithm
	evaluate     game.Evaluate
	threshold    float64
	newCollector func() Collector
	log          zerolog.Logger
}

func New(options ...Option) (*Searcher, error) {
	s := &Searcher{ // Default values
		depth:        DefaultDepth,
		iterative:    DefaultIterative,
		algorithm:    DefaultAlgorithm,
		evaluate:     game.CustomScore,
		threshold:    DefaultThreshold,
		newCollector: NewNoCollector,
		log:          zerolog.Nop(),
	}
	for _, option := range options {
		option(s)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Searcher) validate() error {
	if s.depth <= 0 {
		return fmt.Errorf("search depth must be positive, got %d", s.depth)
	}
	if _, err := ParseAlgorithm(string(s.algorithm)); err != nil {
		return err
	}
	if s.evaluate == nil {
		return fmt.Errorf("evaluation function must not be nil")
	}
	if s.threshold < 0 || math.IsNaN(s.threshold) {
		return fmt.Errorf("time threshold must be non-negative, got %v", s.threshold)
	}
	return nil
}

func (s *Searcher) Depth() int           { return s.depth }
func (s *Searcher) Iterative() bool      { return s.iterative }
func (s *Searcher) Algorithm() Algorithm { return s.algorithm }
func (s *Searcher) Threshold() float64   { return s.threshold }

// Collector returns a fresh metrics collector for one decision.
func (s *Searcher) Collector() Collector {
	return s.newCollector()
}

// Minimax searches depth plies below state. The perspective player is the
// one choosing on maximizing plies.
func (s *Searcher) Minimax(state game.State, depth int, maximizing bool, clock Clock) (Result, error) {
	if depth < 1 {
		return Result{}, fmt.Errorf("search depth must be positive, got %d", depth)
	}
	r := s.newRun(perspective(state, maximizing), clock, NewNoCollector(), depth)
	return r.minimax(state, depth, maximizing)
}

// AlphaBeta is Minimax with alpha-beta pruning inside the (alpha, beta) window.
func (s *Searcher) AlphaBeta(state game.State, depth int, alpha, beta float64, maximizing bool, clock Clock) (Result, error) {
	if depth < 1 {
		return Result{}, fmt.Errorf("search depth must be positive, got %d", depth)
	}
	r := s.newRun(perspective(state, maximizing), clock, NewNoCollector(), depth)
	return r.alphabeta(state, depth, alpha, beta, maximizing)
}

// Decide picks a move for the active player of state. With iterative
// deepening it searches depth 1, 2, ... until the clock runs out and returns
// the result of the last completed depth alongside an error wrapping
// ErrTimeout. Otherwise it runs a single search at the configured depth.
// On timeout without any completed search the result holds the first legal
// move, or NoMove when there is none.
func (s *Searcher) Decide(state game.State, clock Clock, metrics Collector) (Result, error) {
	moves := state.LegalMoves()
	best := Result{Score: Loss, Move: game.NoMove}
	if len(moves) > 0 {
		best.Move = moves[0]
	}

	if !s.iterative {
		r := s.newRun(state.ActivePlayer(), clock, metrics, s.depth)
		result, err := r.search(state)
		if err != nil {
			metrics.TimedOut()
			return best, fmt.Errorf("fixed depth %d: %w", s.depth, err)
		}
		metrics.CompleteDepth(s.depth, result)
		return result, nil
	}

	for depth := 1; ; depth++ {
		r := s.newRun(state.ActivePlayer(), clock, metrics, depth)
		result, err := r.search(state)
		if err != nil {
			// The partial iteration may not have seen every sibling, drop it
			metrics.TimedOut()
			s.log.Debug().Int("depth", depth).Stringer("move", best.Move).Msg("search timed out")
			return best, fmt.Errorf("iterative deepening at depth %d: %w", depth, err)
		}
		best = result
		metrics.CompleteDepth(depth, result)
		s.log.Debug().Int("depth", depth).Stringer("move", result.Move).Float64("score", result.Score).Msg("completed depth")

		if result.IsProven() {
			return best, nil
		}
		if !r.limited { // No leaf hit the depth limit, deeper searches see the same tree
			return best, nil
		}
	}
}

func (s *Searcher) newRun(player game.Player, clock Clock, metrics Collector, depth int) *run {
	return &run{
		player:    player,
		evaluate:  s.evaluate,
		algorithm: s.algorithm,
		clock:     clock,
		threshold: s.threshold,
		metrics:   metrics,
		log:       s.log,
		depth:     depth,
	}
}

func perspective(state game.State, maximizing bool) game.Player {
	if maximizing {
		return state.ActivePlayer()
	}
	return state.InactivePlayer()
}
