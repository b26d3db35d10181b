package game

import "fmt"

// Move is the (row, col) of the cell the active player jumps to.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove is returned when there are no legal moves available.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}
