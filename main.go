// isolation runs time-bounded game-tree search agents for Isolation.
//
// Usage:
//
//	isolation play                 - Play one game between player1 and player2
//	isolation move --board b.json  - Print the move player1 would make
//	isolation serve --addr :8080   - Serve an agent over HTTP
//
// Global flags:
//
//	--config <path>     - Config YAML (default: $XDG_CONFIG_HOME/isolation/config.yaml)
//	--log-level <level> - Override the configured log level
package main

import (
	"fmt"
	"os"
	"time"

	"isolation/config"
	"isolation/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           meta.Name,
	Short:         "Time-bounded minimax and alpha-beta agents for Isolation",
	Version:       meta.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the configuration and sets up the global logger from it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return cfg, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Log.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
	return cfg, nil
}

// agentLogger tags search traces with the side the agent plays.
func agentLogger(name string) zerolog.Logger {
	return log.Logger.With().Str("agent", name).Logger()
}
