package game

import (
	"fmt"
	"sort"
)

// Mobility is implemented by states that can enumerate moves for either
// player, which every mobility heuristic below requires.
type Mobility interface {
	State
	MovesFor(player Player) []Move
}

// Evaluators maps heuristic names accepted in configuration to their functions.
var Evaluators = map[string]Evaluate{
	"null":     NullScore,
	"open":     OpenMoveScore,
	"improved": ImprovedScore,
	"custom":   CustomScore,
}

// DefaultEvaluator is the heuristic used when none is configured.
const DefaultEvaluator = "custom"

// LookupEvaluator returns the heuristic registered under name.
func LookupEvaluator(name string) (Evaluate, error) {
	evaluate, ok := Evaluators[name]
	if !ok {
		names := make([]string, 0, len(Evaluators))
		for n := range Evaluators {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown evaluator %q (want one of %v)", name, names)
	}
	return evaluate, nil
}

// NullScore scores every ongoing position as 0
func NullScore(s State, player Player) float64 {
	if terminal, score := terminalScore(s, player); terminal {
		return score
	}
	return 0
}

// OpenMoveScore counts the moves available to player
func OpenMoveScore(s State, player Player) float64 {
	if terminal, score := terminalScore(s, player); terminal {
		return score
	}
	return float64(len(mobility(s).MovesFor(player)))
}

// ImprovedScore is the difference between player's and the opponent's move counts
func ImprovedScore(s State, player Player) float64 {
	if terminal, score := terminalScore(s, player); terminal {
		return score
	}
	m := mobility(s)
	own := len(m.MovesFor(player))
	opp := len(m.MovesFor(player.Opponent()))
	return float64(own - opp)
}

// CustomScore chases the opponent: the opponent's mobility weighs twice as much
// as player's own.
func CustomScore(s State, player Player) float64 {
	if terminal, score := terminalScore(s, player); terminal {
		return score
	}
	m := mobility(s)
	own := len(m.MovesFor(player))
	opp := len(m.MovesFor(player.Opponent()))
	return float64(own) - 2*float64(opp)
}

func terminalScore(s State, player Player) (bool, float64) {
	if s.IsLoser(player) || s.IsWinner(player) {
		return true, s.Utility(player)
	}
	return false, 0
}

func mobility(s State) Mobility {
	m, ok := s.(Mobility)
	if !ok {
		panic("unexpected state type")
	}
	return m
}
