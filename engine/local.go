package engine

import (
	"context"
	"fmt"
	"time"

	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"
	"isolation/utils"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Engine plays a single game between two agents on one board.
type Engine struct {
	State     *game.Board
	Agents    [2]agent.Agent // Indexed by player - 1
	TimeLimit time.Duration  // Per move
	log       zerolog.Logger
}

func LocalEngine(agents []agent.Agent, board *game.Board, timeLimit time.Duration, logger zerolog.Logger) *Engine {
	if len(agents) != 2 {
		panic("isolation needs exactly two agents")
	}
	if timeLimit <= 0 {
		panic("time limit must be positive")
	}
	return &Engine{
		State:     board,
		Agents:    [2]agent.Agent{agents[0], agents[1]},
		TimeLimit: timeLimit,
		log:       logger,
	}
}

// Run plays until one player has no legal moves, runs out of time or plays an
// illegal move. The returned error is only set when ctx is cancelled.
func (e *Engine) Run(ctx context.Context) (GameMetric, []MoveMetric, error) {
	gameMetric := GameMetric{
		StartingPlayer: e.State.ActivePlayer(),
		StartTime:      time.Now(),
	}
	var moveMetrics []MoveMetric

	finish := func(winner game.Player, reason string) GameMetric {
		gameMetric.Winner = winner
		gameMetric.Reason = reason
		gameMetric.EndTime = time.Now()
		gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
		gameMetric.TotalMoves = len(moveMetrics)
		e.log.Info().Stringer("winner", winner).Str("reason", reason).Int("moves", len(moveMetrics)).Msg("game over")
		return gameMetric
	}

	e.log.Info().Msgf("%s is starting", e.State.ActivePlayer())

	for {
		if err := ctx.Err(); err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("game interrupted: %w", err)
		}

		player := e.State.ActivePlayer()
		legalMoves := e.State.LegalMoves()
		if len(legalMoves) == 0 {
			return finish(player.Opponent(), ReasonNoMoves), moveMetrics, nil
		}

		clock := searcher.ClockFromDeadline(time.Now().Add(e.TimeLimit))
		offered := make([]game.Move, len(legalMoves))
		copy(offered, legalMoves)
		move, metrics := e.Agents[player-1].FindMove(e.State.Copy(), offered, clock)
		remaining := clock()

		moveMetrics = append(moveMetrics, MoveMetric{
			Ply:     e.State.Plies() + 1,
			Player:  player,
			Move:    move,
			Metrics: metrics,
		})
		e.log.Debug().
			Stringer("player", player).
			Stringer("move", move).
			Int("depth", metrics.Depth).
			Int64("nodes", metrics.Nodes).
			Float64("time_left_ms", remaining).
			Msg("played move")

		if remaining < 0 {
			return finish(player.Opponent(), ReasonTimeout), moveMetrics, nil
		}
		if !utils.Contains(legalMoves, move) {
			return finish(player.Opponent(), ReasonIllegal), moveMetrics, nil
		}

		e.State = e.State.Play(move).(*game.Board)
	}
}

// RandomOpening plays plies uniformly random moves from board, so games
// between deterministic agents do not all start the same way.
func RandomOpening(board *game.Board, plies int, seed uint64) *game.Board {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < plies; i++ {
		moves := board.LegalMoves()
		if len(moves) == 0 {
			break
		}
		board = board.Play(moves[rng.Intn(len(moves))]).(*game.Board)
	}
	return board
}
