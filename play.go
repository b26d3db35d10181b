package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"isolation/engine"
	"isolation/game"
	"isolation/searcher/agent"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagSeed      uint64
	flagTimeLimit float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game between player1 and player2",
	Long: `Play a single game between the two agents configured as player1 and
player2. A few random opening plies are played first (match.random_openings).

Examples:
  isolation play
  isolation play --seed 42 --time-limit 300
  isolation play --config ./match.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "Seed for the random opening (0 = config value)")
	playCmd.Flags().Float64Var(&flagTimeLimit, "time-limit", 0, "Milliseconds per move (0 = config value)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSeed != 0 {
		cfg.Match.Seed = flagSeed
	}
	if flagTimeLimit > 0 {
		cfg.Match.TimeLimitMs = flagTimeLimit
	}

	player1, err := cfg.Player1.NewAgent(agentLogger("player1"))
	if err != nil {
		return fmt.Errorf("player1: %w", err)
	}
	player2, err := cfg.Player2.NewAgent(agentLogger("player2"))
	if err != nil {
		return fmt.Errorf("player2: %w", err)
	}

	board := game.NewBoard(cfg.Match.Width, cfg.Match.Height)
	board = engine.RandomOpening(board, cfg.Match.RandomOpenings, cfg.Match.Seed)

	ctx, stop := interruptContext(cmd.Context())
	defer stop()

	timeLimit := time.Duration(cfg.Match.TimeLimitMs * float64(time.Millisecond))
	e := engine.LocalEngine([]agent.Agent{player1, player2}, board, timeLimit, log.Logger)
	gameMetric, moveMetrics, err := e.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), e.State.String())
	fmt.Fprintf(cmd.OutOrStdout(), "winner: %s (%s) after %d moves in %s\n",
		gameMetric.Winner, gameMetric.Reason, gameMetric.TotalMoves, gameMetric.Duration.Round(time.Millisecond))
	for _, m := range moveMetrics {
		log.Debug().Int("ply", m.Ply).Stringer("player", m.Player).Stringer("move", m.Move).
			Int("depth", m.Depth).Int64("nodes", m.Nodes).Bool("timed_out", m.TimedOut).Msg("move summary")
	}
	return nil
}

// interruptContext is cancelled on SIGINT.
func interruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
