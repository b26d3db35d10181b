package searcher

import (
	"bytes"
	"context"
	"math"
	"testing"
	"time"

	"isolation/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// openedBoard is an empty 7x7 board after both players were placed.
func openedBoard() *game.Board {
	board := game.NewBoard(game.DefaultWidth, game.DefaultHeight)
	return board.Play(game.Move{Row: 2, Col: 3}).Play(game.Move{Row: 4, Col: 3}).(*game.Board)
}

func TestNew(t *testing.T) {
	t.Run("applying defaults", func(t *testing.T) {
		s, err := New()

		require.NoError(t, err)
		require.Equal(t, DefaultDepth, s.Depth())
		require.True(t, s.Iterative())
		require.Equal(t, Minimax, s.Algorithm())
		require.Equal(t, DefaultThreshold, s.Threshold())
	})

	t.Run("rejecting invalid configurations", func(t *testing.T) {
		for name, option := range map[string]Option{
			"zero depth":         WithDepth(0),
			"negative depth":     WithDepth(-2),
			"unknown algorithm":  WithAlgorithm("negamax"),
			"nil evaluation":     WithEvaluationFn(nil),
			"negative threshold": WithThreshold(-1),
			"NaN threshold":      WithThreshold(math.NaN()),
		} {
			_, err := New(option)
			require.Error(t, err, name)
		}
	})

	t.Run("parsing algorithm names", func(t *testing.T) {
		got, err := ParseAlgorithm("alphabeta")
		require.NoError(t, err)
		require.Equal(t, AlphaBeta, got)

		_, err = ParseAlgorithm("mcts")
		require.Error(t, err)
	})
}

func TestDecide(t *testing.T) {
	p1, p2 := game.Player1, game.Player2

	t.Run("falling back to the first move when the first iteration times out", func(t *testing.T) {
		s := newTestSearcher(t)
		metrics := NewCollector()

		got, err := s.Decide(classicTree(), func() float64 { return 0 }, metrics)

		require.ErrorIs(t, err, ErrTimeout)
		require.Equal(t, game.Move{Row: 0, Col: 0}, got.Move)
		require.True(t, metrics.Complete().TimedOut)
		require.Equal(t, 0, metrics.Complete().Depth, "No iteration should complete")
	})

	t.Run("falling back to NoMove when there are no moves", func(t *testing.T) {
		s := newTestSearcher(t)

		got, err := s.Decide(lost(p1), func() float64 { return 0 }, NewNoCollector())

		require.ErrorIs(t, err, ErrTimeout)
		require.Equal(t, game.NoMove, got.Move)
	})

	t.Run("keeping the held fallback when a fixed-depth search times out", func(t *testing.T) {
		s := newTestSearcher(t, WithIterative(false), WithDepth(2))

		got, err := s.Decide(classicTree(), countdown(3), NewNoCollector())

		require.ErrorIs(t, err, ErrTimeout)
		require.Equal(t, game.Move{Row: 0, Col: 0}, got.Move)
	})

	t.Run("stopping once a win is proven", func(t *testing.T) {
		s := newTestSearcher(t)
		metrics := NewCollector()
		root := node(p1, leaf(p2, 1), lost(p2))

		got, err := s.Decide(root, unlimited, metrics)

		require.NoError(t, err)
		require.Equal(t, Result{Score: Win, Move: game.Move{Row: 0, Col: 1}}, got)
		require.Equal(t, 1, metrics.Complete().Depth)
	})

	t.Run("stopping once the whole tree is searched", func(t *testing.T) {
		s := newTestSearcher(t, WithAlgorithm(AlphaBeta))
		metrics := NewCollector()

		got, err := s.Decide(classicTree(), unlimited, metrics)

		require.NoError(t, err)
		require.Equal(t, Win, got.Score, "Every line ends with player2 out of moves")
		require.Equal(t, 3, metrics.Complete().Depth)
	})

	t.Run("returning the last completed depth when interrupted", func(t *testing.T) {
		board := openedBoard()
		s, err := New(WithEvaluationFn(game.ImprovedScore))
		require.NoError(t, err)

		expired := false
		clock := func() float64 {
			if expired {
				return 0
			}
			return math.Inf(1)
		}
		metrics := &hookCollector{
			Collector: NewCollector(),
			onDepth: func(depth int, _ Result) {
				if depth == 3 { // Clock crosses the threshold between depth 3 and 4
					expired = true
				}
			},
		}

		got, err := s.Decide(board, clock, metrics)

		require.ErrorIs(t, err, ErrTimeout)
		require.Equal(t, 3, metrics.Complete().Depth)

		fixed, err := New(WithEvaluationFn(game.ImprovedScore), WithIterative(false), WithDepth(3))
		require.NoError(t, err)
		want, err := fixed.Decide(board, unlimited, NewNoCollector())
		require.NoError(t, err)
		require.Equal(t, want, got, "Result should be the depth 3 search, not the partial depth 4")
	})

	t.Run("finding a forced win at every deeper depth", func(t *testing.T) {
		// Only the third move wins, and only a depth 3 search can see it
		root := node(p1,
			node(p2, leaf(p1, 2), lost(p1)),
			node(p2, lost(p1)),
			node(p2, node(p1, lost(p2))),
		)
		for _, algorithm := range []Algorithm{Minimax, AlphaBeta} {
			for depth := 3; depth <= 6; depth++ {
				s := newTestSearcher(t, WithAlgorithm(algorithm), WithIterative(false), WithDepth(depth))

				got, err := s.Decide(root, unlimited, NewNoCollector())

				require.NoError(t, err)
				require.Equal(t, Result{Score: Win, Move: game.Move{Row: 0, Col: 2}}, got, "%s depth %d", algorithm, depth)
			}
		}
	})

	t.Run("tracing through the injected logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
		s := newTestSearcher(t, WithLogger(logger))

		_, err := s.Decide(classicTree(), unlimited, NewNoCollector())

		require.NoError(t, err)
		require.Contains(t, buf.String(), "completed depth")
		require.Contains(t, buf.String(), `"depth":3`)
	})
}

func TestBoardSearch(t *testing.T) {
	t.Run("minimax and alphabeta agreeing on an opened 7x7 board", func(t *testing.T) {
		board := openedBoard()
		for depth := 1; depth <= 3; depth++ {
			for _, maximizing := range []bool{true, false} {
				s, err := New(WithEvaluationFn(game.ImprovedScore))
				require.NoError(t, err)

				want, err := s.Minimax(board, depth, maximizing, unlimited)
				require.NoError(t, err)
				got, err := s.AlphaBeta(board, depth, Loss, Win, maximizing, unlimited)
				require.NoError(t, err)

				require.Equal(t, want.Score, got.Score, "depth %d maximizing %v", depth, maximizing)
				require.Contains(t, board.LegalMoves(), got.Move)
			}
		}
	})

	t.Run("choosing equally scored moves at depth 2 with either algorithm", func(t *testing.T) {
		board := openedBoard()
		minimax, err := New(WithDepth(2), WithIterative(false))
		require.NoError(t, err)
		alphabeta, err := New(WithDepth(2), WithIterative(false), WithAlgorithm(AlphaBeta))
		require.NoError(t, err)

		want, err := minimax.Decide(board, unlimited, NewNoCollector())
		require.NoError(t, err)
		got, err := alphabeta.Decide(board, unlimited, NewNoCollector())
		require.NoError(t, err)

		require.Equal(t, want.Score, got.Score)
		// Both moves must back up the same value against the best reply
		for _, move := range []game.Move{want.Move, got.Move} {
			reply, err := minimax.Minimax(board.Play(move), 1, false, unlimited)
			require.NoError(t, err)
			require.Equal(t, want.Score, reply.Score)
		}
	})

	t.Run("returning the same move on repeated runs", func(t *testing.T) {
		s, err := New(WithDepth(3), WithIterative(false), WithAlgorithm(AlphaBeta))
		require.NoError(t, err)
		board := openedBoard()

		first, err := s.Decide(board, unlimited, NewNoCollector())
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := s.Decide(board, unlimited, NewNoCollector())
			require.NoError(t, err)
			require.Equal(t, first, again)
		}
	})
}

func TestClocks(t *testing.T) {
	t.Run("counting down to a deadline", func(t *testing.T) {
		clock := ClockFromDeadline(time.Now().Add(time.Second))

		left := clock()

		require.Greater(t, left, 0.0)
		require.LessOrEqual(t, left, 1000.0)
	})

	t.Run("running out once the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		clock := ClockFromContext(ctx)
		require.Equal(t, math.Inf(1), clock(), "No deadline means unlimited time")

		cancel()

		require.Equal(t, math.Inf(-1), clock())
	})

	t.Run("counting down to the context deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		left := ClockFromContext(ctx)()

		require.Greater(t, left, 0.0)
		require.LessOrEqual(t, left, 1000.0)
	})
}
