package engine

import (
	"time"

	"isolation/game"
	"isolation/searcher"
)

// Reasons a game ended
const (
	ReasonNoMoves = "no legal moves"
	ReasonTimeout = "time limit exceeded"
	ReasonIllegal = "illegal move"
)

type MoveMetric struct {
	Ply    int
	Player game.Player
	Move   game.Move
	searcher.Metrics
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}
