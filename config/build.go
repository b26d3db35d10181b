package config

import (
	"isolation/game"
	"isolation/searcher"
	"isolation/searcher/agent"

	"github.com/rs/zerolog"
)

// SearchOptions translates the configuration into searcher options.
func (a AgentConfig) SearchOptions(logger zerolog.Logger) ([]searcher.Option, error) {
	evaluate, err := game.LookupEvaluator(a.Score)
	if err != nil {
		return nil, invalid("%v", err)
	}
	algorithm, err := searcher.ParseAlgorithm(a.Algorithm)
	if err != nil {
		return nil, invalid("%v", err)
	}
	return []searcher.Option{
		searcher.WithDepth(a.Depth),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithIterative(a.Iterative),
		searcher.WithAlgorithm(algorithm),
		searcher.WithThreshold(a.Threshold),
		searcher.WithMetrics(),
		searcher.WithLogger(logger),
	}, nil
}

// NewAgent builds the agent described by the configuration.
func (a AgentConfig) NewAgent(logger zerolog.Logger) (agent.Agent, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	switch a.Kind {
	case KindRandom:
		return agent.NewRandomAgent(a.Seed), nil
	case KindRemote:
		return agent.NewRemoteAgent(a.URL), nil
	}
	options, err := a.SearchOptions(logger)
	if err != nil {
		return nil, err
	}
	return agent.NewSearchAgent(options...)
}
