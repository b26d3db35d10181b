package searcher

import (
	"context"
	"math"
	"time"
)

// Clock returns the milliseconds left in the current turn. The search only
// ever reads it.
type Clock func() float64

// ClockFromDeadline counts down to deadline.
func ClockFromDeadline(deadline time.Time) Clock {
	return func() float64 {
		return float64(time.Until(deadline)) / float64(time.Millisecond)
	}
}

// ClockFromContext counts down to the context deadline and reports no time
// left once the context is done. Without a deadline the clock never runs out
// until cancellation.
func ClockFromContext(ctx context.Context) Clock {
	deadline, ok := ctx.Deadline()
	return func() float64 {
		if ctx.Err() != nil {
			return math.Inf(-1)
		}
		if !ok {
			return math.Inf(1)
		}
		return float64(time.Until(deadline)) / float64(time.Millisecond)
	}
}
