package game

import (
	"fmt"
	"math"
	"strings"
)

const (
	DefaultWidth  = 7
	DefaultHeight = 7
	MaxSide       = 64 // Largest width or height accepted from outside
)

const unplaced = -1

// Knight jumps, in the order they are enumerated by LegalMoves
var directions = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Board is an Isolation board. Each player moves like a chess knight and
// every visited cell stays blocked for the rest of the game. A player whose
// piece is not on the board yet may move to any blank cell.
type Board struct {
	width     int
	height    int
	blocked   []bool
	locations [3]int // Cell index per player, indexed by Player
	active    Player
	plies     int
}

// NewBoard returns an empty board with Player1 to move.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid board size %dx%d", width, height))
	}
	return &Board{
		width:     width,
		height:    height,
		blocked:   make([]bool, width*height),
		locations: [3]int{unplaced, unplaced, unplaced},
		active:    Player1,
	}
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	blocked := make([]bool, len(b.blocked))
	copy(blocked, b.blocked)
	return &Board{
		width:     b.width,
		height:    b.height,
		blocked:   blocked,
		locations: b.locations,
		active:    b.active,
		plies:     b.plies,
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Plies is the number of moves played so far.
func (b *Board) Plies() int { return b.plies }

func (b *Board) ActivePlayer() Player { return b.active }

func (b *Board) InactivePlayer() Player { return b.active.Opponent() }

// Location returns the cell occupied by player, or NoMove if not yet placed.
func (b *Board) Location(player Player) Move {
	idx := b.locations[player]
	if idx == unplaced {
		return NoMove
	}
	return b.move(idx)
}

// IsBlank reports whether the cell is on the board and has never been visited.
func (b *Board) IsBlank(move Move) bool {
	return b.inBounds(move.Row, move.Col) && !b.blocked[b.index(move)]
}

// BlankCells lists every unvisited cell in row-major order.
func (b *Board) BlankCells() []Move {
	cells := make([]Move, 0, len(b.blocked))
	for i, blocked := range b.blocked {
		if !blocked {
			cells = append(cells, b.move(i))
		}
	}
	return cells
}

func (b *Board) LegalMoves() []Move {
	return b.MovesFor(b.active)
}

// MovesFor lists the moves player could make if it were its turn.
func (b *Board) MovesFor(player Player) []Move {
	idx := b.locations[player]
	if idx == unplaced {
		return b.BlankCells()
	}
	from := b.move(idx)
	moves := make([]Move, 0, len(directions))
	for _, d := range directions {
		to := Move{Row: from.Row + d[0], Col: from.Col + d[1]}
		if b.IsBlank(to) {
			moves = append(moves, to)
		}
	}
	return moves
}

// Play returns the board after the active player jumps to move. The receiver
// is left untouched. Legality is not checked.
func (b *Board) Play(move Move) State {
	next := b.Copy()
	next.apply(move)
	return next
}

func (b *Board) apply(move Move) {
	idx := b.index(move)
	b.blocked[idx] = true
	b.locations[b.active] = idx
	b.active = b.active.Opponent()
	b.plies++
}

func (b *Board) IsLoser(player Player) bool {
	return player == b.active && len(b.LegalMoves()) == 0
}

func (b *Board) IsWinner(player Player) bool {
	return player == b.InactivePlayer() && len(b.LegalMoves()) == 0
}

func (b *Board) Utility(player Player) float64 {
	switch {
	case b.IsWinner(player):
		return math.Inf(1)
	case b.IsLoser(player):
		return math.Inf(-1)
	default:
		return 0
	}
}

// Winner returns the winning player, or NoPlayer while the game is ongoing.
func (b *Board) Winner() Player {
	if len(b.LegalMoves()) == 0 {
		return b.InactivePlayer()
	}
	return NoPlayer
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			idx := r*b.width + c
			switch {
			case idx == b.locations[Player1]:
				sb.WriteString(" 1")
			case idx == b.locations[Player2]:
				sb.WriteString(" 2")
			case b.blocked[idx]:
				sb.WriteString(" -")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

func (b *Board) index(move Move) int {
	return move.Row*b.width + move.Col
}

func (b *Board) move(idx int) Move {
	return Move{Row: idx / b.width, Col: idx % b.width}
}
