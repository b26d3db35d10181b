package agent

import (
	"errors"

	"isolation/game"
	"isolation/searcher"
	"isolation/utils"
)

// SearchAgent plays the move found by minimax or alpha-beta search, with or
// without iterative deepening, before the clock runs out.
type SearchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns an agent for the given search options. Invalid
// configurations are rejected here rather than during play.
func NewSearchAgent(options ...searcher.Option) (*SearchAgent, error) {
	s, err := searcher.New(options...)
	if err != nil {
		return nil, err
	}
	return &SearchAgent{searcher: s}, nil
}

func (a *SearchAgent) Searcher() *searcher.Searcher {
	return a.searcher
}

// GetMove returns the best move found before the clock drops below the
// search threshold. It returns NoMove when there are no legal moves.
func (a *SearchAgent) GetMove(state game.State, legalMoves []game.Move, clock searcher.Clock) game.Move {
	move, _ := a.FindMove(state, legalMoves, clock)
	return move
}

func (a *SearchAgent) FindMove(state game.State, legalMoves []game.Move, clock searcher.Clock) (game.Move, searcher.Metrics) {
	if len(legalMoves) == 0 {
		return game.NoMove, searcher.Metrics{}
	}

	move := legalMoves[0]
	metrics := a.searcher.Collector()
	metrics.Start()

	// The clock is only used for this call
	result, err := a.searcher.Decide(state, clock, metrics)
	if err != nil && !errors.Is(err, searcher.ErrTimeout) {
		return move, metrics.Complete()
	}
	if utils.Contains(legalMoves, result.Move) {
		move = result.Move
	}
	return move, metrics.Complete()
}
