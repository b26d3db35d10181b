package agent

import (
	"isolation/game"
	"isolation/searcher"
)

type Agent interface {
	// FindMove returns a legal move, or NoMove when legalMoves is empty, and
	// performance metrics (if collected) of the decision. It never fails.
	FindMove(state game.State, legalMoves []game.Move, clock searcher.Clock) (game.Move, searcher.Metrics)
}
