package searcher

import (
	"isolation/game"

	"github.com/rs/zerolog"
)

// Defaults for a Searcher

const DefaultDepth = 3

const DefaultIterative = true

const DefaultAlgorithm = Minimax

// DefaultThreshold is the time left (ms) at which a search gives up
const DefaultThreshold = 10.0

type Option func(s *Searcher)

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		s.depth = depth
	}
}

func WithIterative(iterative bool) Option {
	return func(s *Searcher) {
		s.iterative = iterative
	}
}

func WithAlgorithm(algorithm Algorithm) Option {
	return func(s *Searcher) {
		s.algorithm = algorithm
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		s.evaluate = evaluate
	}
}

// WithThreshold sets the milliseconds left on the clock at which a search
// aborts. It must cover one full unwind of the recursion.
func WithThreshold(ms float64) Option {
	return func(s *Searcher) {
		s.threshold = ms
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.newCollector = NewCollector
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Searcher) {
		s.log = logger
	}
}
