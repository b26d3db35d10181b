package game

// Player identifies one of the two sides of an Isolation game.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Opponent returns the other side, or NoPlayer for NoPlayer.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "none"
	}
}

// State should be immutable - operations on State always return a new copy
type State interface {
	// ActivePlayer is the player whose turn it is
	ActivePlayer() Player
	InactivePlayer() Player
	// LegalMoves enumerates the active player's moves in a deterministic order
	LegalMoves() []Move
	// Play forecasts the state after the active player makes move
	Play(move Move) State
	IsLoser(player Player) bool
	IsWinner(player Player) bool
	// Utility is only meaningful when the state is terminal for player
	Utility(player Player) float64
}

// Evaluate scores a state from the given player's perspective. Higher is better
// for player. Implementations must be pure.
type Evaluate func(state State, player Player) float64
