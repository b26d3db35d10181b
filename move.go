package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"isolation/game"
	"isolation/searcher"

	"github.com/spf13/cobra"
)

var (
	flagBoard    string
	flagTimeLeft float64
	flagSide     int
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Print the move an agent would make on a board",
	Long: `Read a board snapshot as JSON and print the move chosen by the agent
configured for --side, searched within --time-left milliseconds.

Board format:
  {"width": 7, "height": 7, "blocked": [{"row": 0, "col": 0}],
   "player1": {"row": 0, "col": 0}, "active": 2}

Examples:
  isolation move --board board.json
  cat board.json | isolation move --board - --time-left 500`,
	Args: cobra.NoArgs,
	RunE: runMove,
}

func init() {
	moveCmd.Flags().StringVar(&flagBoard, "board", "-", "Board snapshot JSON file (- for stdin)")
	moveCmd.Flags().Float64Var(&flagTimeLeft, "time-left", 0, "Milliseconds available (0 = match.time_limit_ms)")
	moveCmd.Flags().IntVar(&flagSide, "side", 1, "Which configured agent to use (1 or 2)")
}

func runMove(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	agentCfg := cfg.Player1
	switch flagSide {
	case 1:
	case 2:
		agentCfg = cfg.Player2
	default:
		return fmt.Errorf("side must be 1 or 2, got %d", flagSide)
	}

	board, err := readBoard(cmd.InOrStdin(), flagBoard)
	if err != nil {
		return err
	}

	a, err := agentCfg.NewAgent(agentLogger(fmt.Sprintf("player%d", flagSide)))
	if err != nil {
		return err
	}

	timeLeft := flagTimeLeft
	if timeLeft <= 0 {
		timeLeft = cfg.Match.TimeLimitMs
	}
	deadline := time.Now().Add(time.Duration(timeLeft * float64(time.Millisecond)))
	move, metrics := a.FindMove(board, board.LegalMoves(), searcher.ClockFromDeadline(deadline))

	out := struct {
		Row      int   `json:"row"`
		Col      int   `json:"col"`
		Depth    int   `json:"depth"`
		Nodes    int64 `json:"nodes"`
		TimedOut bool  `json:"timed_out"`
	}{move.Row, move.Col, metrics.Depth, metrics.Nodes, metrics.TimedOut}
	return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
}

func readBoard(stdin io.Reader, path string) (*game.Board, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open board %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	var board game.Board
	if err := json.NewDecoder(r).Decode(&board); err != nil {
		return nil, fmt.Errorf("failed to parse board: %w", err)
	}
	return &board, nil
}
