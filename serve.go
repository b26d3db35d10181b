package main

import (
	"fmt"

	"isolation/searcher/agent"

	"github.com/spf13/cobra"
)

var (
	flagAddr      string
	flagServeSide int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve an agent over HTTP",
	Long: `Serve the agent configured for --side over HTTP.

Endpoints:
  POST /move     {"board": {...}, "time_left_ms": 1000}
  GET  /healthz

Examples:
  isolation serve --addr :8080
  isolation serve --addr 127.0.0.1:9000 --side 2`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().IntVar(&flagServeSide, "side", 1, "Which configured agent to serve (1 or 2)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	agentCfg := cfg.Player1
	switch flagServeSide {
	case 1:
	case 2:
		agentCfg = cfg.Player2
	default:
		return fmt.Errorf("side must be 1 or 2, got %d", flagServeSide)
	}

	a, err := agentCfg.NewAgent(agentLogger(fmt.Sprintf("player%d", flagServeSide)))
	if err != nil {
		return err
	}

	ctx, stop := interruptContext(cmd.Context())
	defer stop()
	return agent.StartAgentServer(ctx, flagAddr, a)
}
