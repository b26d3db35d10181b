package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluators(t *testing.T) {
	board := opened() // Both players have 8 jumps

	t.Run("scoring mobility", func(t *testing.T) {
		require.Zero(t, NullScore(board, Player1))
		require.Equal(t, 8.0, OpenMoveScore(board, Player1))
		require.Equal(t, 0.0, ImprovedScore(board, Player1))
		require.Equal(t, -8.0, CustomScore(board, Player1))
	})

	t.Run("favouring the side with more room", func(t *testing.T) {
		next := board.Play(Move{Row: 0, Col: 2}) // Player1 moves to the edge
		require.Equal(t, 3.0, OpenMoveScore(next, Player1))
		require.Equal(t, 3.0-8.0, ImprovedScore(next, Player1))
		require.Equal(t, 8.0-3.0, ImprovedScore(next, Player2))
	})

	t.Run("returning the utility on terminal states", func(t *testing.T) {
		terminal, err := FromSnapshot(Snapshot{
			Width:   3,
			Height:  3,
			Player1: &Move{Row: 1, Col: 1},
			Player2: &Move{Row: 0, Col: 0},
			Active:  Player1,
		})
		require.NoError(t, err)

		for name, evaluate := range Evaluators {
			require.Equal(t, math.Inf(-1), evaluate(terminal, Player1), name)
			require.Equal(t, math.Inf(1), evaluate(terminal, Player2), name)
		}
	})

	t.Run("looking up evaluators by name", func(t *testing.T) {
		evaluate, err := LookupEvaluator(DefaultEvaluator)
		require.NoError(t, err)
		require.Equal(t, CustomScore(board, Player2), evaluate(board, Player2))

		_, err = LookupEvaluator("aggressive")
		require.ErrorContains(t, err, "unknown evaluator")
	})
}
