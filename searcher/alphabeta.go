package searcher

import (
	"math"

	"isolation/game"
)

func (r *run) alphabeta(state game.State, depth int, alpha, beta float64, maximizing bool) (Result, error) {
	if err := r.enter(); err != nil {
		return Result{}, err
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return Result{Score: state.Utility(r.player), Move: game.NoMove}, nil
	}

	best := Result{Move: game.NoMove}
	for i, move := range moves {
		successor := state.Play(move)

		score, terminal := r.outcome(successor)
		if !terminal {
			if depth == 1 {
				score = r.leaf(successor)
			} else {
				child, err := r.alphabeta(successor, depth-1, alpha, beta, !maximizing)
				if err != nil {
					return Result{}, err
				}
				score = child.Score
			}
		}
		r.trace(depth, move, score)

		if maximizing {
			if score >= beta { // Fail high, the minimizing parent will never allow this line
				r.metrics.AddCutoff()
				return Result{Score: score, Move: move}, nil
			}
			if i == 0 || score > best.Score {
				best = Result{Score: score, Move: move}
			}
			alpha = math.Max(alpha, best.Score)
		} else {
			if score <= alpha {
				r.metrics.AddCutoff()
				return Result{Score: score, Move: move}, nil
			}
			if i == 0 || score < best.Score {
				best = Result{Score: score, Move: move}
			}
			beta = math.Min(beta, best.Score)
		}
	}
	return best, nil
}
