package searcher

import "isolation/game"

func (r *run) minimax(state game.State, depth int, maximizing bool) (Result, error) {
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
				child, err := r.minimax(successor, depth-1, !maximizing)
				if err != nil {
					return Result{}, err
				}
				score = child.Score
			}
		}
		r.trace(depth, move, score)

		// Strict comparison keeps the first move among equals
		if i == 0 || (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best = Result{Score: score, Move: move}
		}
		if terminal && proven(score, maximizing) {
			return best, nil
		}
	}
	return best, nil
}
