package agent

import (
	"sync"

	"isolation/game"
	"isolation/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly random legal
// moves. The same seed replays the same choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(_ game.State, legalMoves []game.Move, _ searcher.Clock) (game.Move, searcher.Metrics) {
	if len(legalMoves) == 0 {
		return game.NoMove, searcher.Metrics{}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return legalMoves[a.rng.Intn(len(legalMoves))], searcher.Metrics{}
}
