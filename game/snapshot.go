package game

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the wire form of a Board.
type Snapshot struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Blocked []Move `json:"blocked"`
	Player1 *Move  `json:"player1,omitempty"`
	Player2 *Move  `json:"player2,omitempty"`
	Active  Player `json:"active"`
}

// Snapshot captures the board so it can be rebuilt with FromSnapshot.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Width:   b.width,
		Height:  b.height,
		Blocked: []Move{},
		Active:  b.active,
	}
	for i, blocked := range b.blocked {
		if blocked {
			s.Blocked = append(s.Blocked, b.move(i))
		}
	}
	if loc := b.Location(Player1); loc != NoMove {
		s.Player1 = &loc
	}
	if loc := b.Location(Player2); loc != NoMove {
		s.Player2 = &loc
	}
	return s
}

// FromSnapshot validates a snapshot and builds the board it describes.
func FromSnapshot(s Snapshot) (*Board, error) {
	if s.Width <= 0 || s.Height <= 0 || s.Width > MaxSide || s.Height > MaxSide {
		return nil, fmt.Errorf("invalid board size %dx%d (sides must be 1 to %d)", s.Width, s.Height, MaxSide)
	}
	if s.Active != Player1 && s.Active != Player2 {
		return nil, fmt.Errorf("invalid active player %d", s.Active)
	}
	b := NewBoard(s.Width, s.Height)
	b.active = s.Active
	for _, m := range s.Blocked {
		if !b.inBounds(m.Row, m.Col) {
			return nil, fmt.Errorf("blocked cell %s out of bounds", m)
		}
		if !b.blocked[b.index(m)] {
			b.blocked[b.index(m)] = true
			b.plies++
		}
	}
	for player, loc := range map[Player]*Move{Player1: s.Player1, Player2: s.Player2} {
		if loc == nil {
			continue
		}
		if !b.inBounds(loc.Row, loc.Col) {
			return nil, fmt.Errorf("%s location %s out of bounds", player, *loc)
		}
		b.locations[player] = b.index(*loc)
		if !b.blocked[b.index(*loc)] {
			b.blocked[b.index(*loc)] = true
			b.plies++
		}
	}
	if b.locations[Player1] != unplaced && b.locations[Player1] == b.locations[Player2] {
		return nil, fmt.Errorf("players share location %s", b.Location(Player1))
	}
	return b, nil
}

func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Snapshot())
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := FromSnapshot(s)
	if err != nil {
		return err
	}
	*b = *parsed
	return nil
}
