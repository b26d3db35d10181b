// Package config loads agent and match settings from YAML.
package config

import (
	_ "embed"
	"fmt"

	"isolation/game"
	"isolation/searcher"
)

//go:embed default.yaml
var defaultYAML []byte

const (
	KindSearch = "search"
	KindRandom = "random"
	KindRemote = "remote"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

func invalid(format string, args ...any) error {
	return &InvalidConfig{err: fmt.Sprintf(format, args...)}
}

type Config struct {
	Log     LogConfig   `yaml:"log"`
	Match   MatchConfig `yaml:"match"`
	Player1 AgentConfig `yaml:"player1"`
	Player2 AgentConfig `yaml:"player2"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// MatchConfig describes a single game between player1 and player2.
type MatchConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	TimeLimitMs    float64 `yaml:"time_limit_ms"`   // Per move
	RandomOpenings int     `yaml:"random_openings"` // Plies placed at random before the agents take over
	Seed           uint64  `yaml:"seed"`
}

// AgentConfig holds the options an agent is constructed with.
type AgentConfig struct {
	Kind      string  `yaml:"kind"` // "search", "random" or "remote"
	Depth     int     `yaml:"search_depth"`
	Score     string  `yaml:"score_fn"`
	Iterative bool    `yaml:"iterative"`
	Algorithm string  `yaml:"algorithm"`
	Threshold float64 `yaml:"time_threshold"` // Milliseconds
	Seed      uint64  `yaml:"seed"`
	URL       string  `yaml:"url"` // Agent server, for remote agents
}

func (c *Config) Validate() error {
	if c.Match.Width <= 0 || c.Match.Height <= 0 || c.Match.Width > game.MaxSide || c.Match.Height > game.MaxSide {
		return invalid("board sides must be 1 to %d, got %dx%d", game.MaxSide, c.Match.Width, c.Match.Height)
	}
	if c.Match.TimeLimitMs <= 0 {
		return invalid("time_limit_ms must be positive, got %v", c.Match.TimeLimitMs)
	}
	if c.Match.RandomOpenings < 0 {
		return invalid("random_openings must not be negative, got %d", c.Match.RandomOpenings)
	}
	if err := c.Player1.Validate(); err != nil {
		return fmt.Errorf("player1: %w", err)
	}
	if err := c.Player2.Validate(); err != nil {
		return fmt.Errorf("player2: %w", err)
	}
	return nil
}

func (a AgentConfig) Validate() error {
	switch a.Kind {
	case KindRandom:
		return nil
	case KindRemote:
		if a.URL == "" {
			return invalid("remote agent needs a url")
		}
		return nil
	case KindSearch:
	default:
		return invalid("unknown agent kind %q", a.Kind)
	}
	if a.Depth <= 0 {
		return invalid("search_depth must be positive, got %d", a.Depth)
	}
	if a.Threshold < 0 {
		return invalid("time_threshold must not be negative, got %v", a.Threshold)
	}
	if _, err := searcher.ParseAlgorithm(a.Algorithm); err != nil {
		return invalid("%v", err)
	}
	if _, err := game.LookupEvaluator(a.Score); err != nil {
		return invalid("%v", err)
	}
	return nil
}
