package searcher

import (
	"math"

	"isolation/game"

	"github.com/stretchr/testify/require"
)

// treeState is a hand-built game tree. Child i is reached by Move{0, i}.
type treeState struct {
	active   game.Player
	children []*treeState
	score    float64 // Heuristic value for player1
	terminal bool    // The active player has no moves and loses
}

// node is an inner node with player to move.
func node(player game.Player, children ...*treeState) *treeState {
	return &treeState{active: player, children: children}
}

// leaf is an ongoing position scored by the heuristic.
func leaf(player game.Player, score float64) *treeState {
	return &treeState{active: player, score: score}
}

// lost is a position where player is to move and has no moves.
func lost(player game.Player) *treeState {
	return &treeState{active: player, terminal: true}
}

func (s *treeState) ActivePlayer() game.Player   { return s.active }
func (s *treeState) InactivePlayer() game.Player { return s.active.Opponent() }

func (s *treeState) LegalMoves() []game.Move {
	if s.terminal {
		return nil
	}
	if len(s.children) == 0 { // Unexpanded leaf, one move into a loss
		return []game.Move{{Row: 0, Col: 0}}
	}
	moves := make([]game.Move, len(s.children))
	for i := range s.children {
		moves[i] = game.Move{Row: 0, Col: i}
	}
	return moves
}

func (s *treeState) Play(move game.Move) game.State {
	if len(s.children) == 0 {
		return lost(s.active.Opponent())
	}
	return s.children[move.Col]
}

func (s *treeState) IsLoser(player game.Player) bool {
	return s.terminal && player == s.active
}

func (s *treeState) IsWinner(player game.Player) bool {
	return s.terminal && player != s.active
}

func (s *treeState) Utility(player game.Player) float64 {
	switch {
	case s.IsWinner(player):
		return math.Inf(1)
	case s.IsLoser(player):
		return math.Inf(-1)
	default:
		return 0
	}
}

func treeScore(s game.State, player game.Player) float64 {
	t := s.(*treeState)
	if player == game.Player1 {
		return t.score
	}
	return -t.score
}

func unlimited() float64 {
	return math.Inf(1)
}

// countdown has time for the first n reads and none after.
func countdown(n int) Clock {
	reads := 0
	return func() float64 {
		reads++
		if reads > n {
			return 0
		}
		return 1000
	}
}

// classicTree is the textbook depth-2 tree with minimax value 3.
func classicTree() *treeState {
	p1, p2 := game.Player1, game.Player2
	return node(p1,
		node(p2, leaf(p1, 3), leaf(p1, 12), leaf(p1, 8)),
		node(p2, leaf(p1, 2), leaf(p1, 4), leaf(p1, 6)),
		node(p2, leaf(p1, 14), leaf(p1, 5), leaf(p1, 2)),
	)
}

// hookCollector lets a test react to completed depths.
type hookCollector struct {
	Collector
	onDepth func(depth int, result Result)
}

func (c *hookCollector) CompleteDepth(depth int, result Result) {
	c.Collector.CompleteDepth(depth, result)
	c.onDepth(depth, result)
}

func newTestSearcher(t require.TestingT, options ...Option) *Searcher {
	s, err := New(append([]Option{WithEvaluationFn(treeScore)}, options...)...)
	require.NoError(t, err)
	return s
}
