// Package movement paces a token's walk along the board one cell at a time.
package movement

import (
	"context"
	"time"
)

// Arrival reports that the token reached the cell at Index. Step counts from 1
// within a single movement.
type Arrival struct {
	Index int
	Step  int
}

// Sequencer produces paced arrival streams. It holds no per-movement state
// and may be shared.
type Sequencer struct {
	delay time.Duration
}

// NewSequencer returns a Sequencer that waits delay after every arrival.
// A delay of zero or less emits arrivals back to back.
func NewSequencer(delay time.Duration) *Sequencer {
	if delay < 0 {
		delay = 0
	}
	return &Sequencer{delay: delay}
}

func (s *Sequencer) Delay() time.Duration {
	return s.delay
}

// Sequence emits one Arrival for every index in (fromExclusive, toInclusive]
// in ascending order, each followed by the pacing delay, then closes the
// channel. The stream is consumed once; cancelling ctx stops it early.
func (s *Sequencer) Sequence(ctx context.Context, fromExclusive, toInclusive int) <-chan Arrival {
	out := make(chan Arrival)

	go func() {
		defer close(out)

		step := 0
		for i := fromExclusive + 1; i <= toInclusive; i++ {
			step++
			select {
			case out <- Arrival{Index: i, Step: step}:
			case <-ctx.Done():
				return
			}
			if !s.wait(ctx) {
				return
			}
		}
	}()

	return out
}

func (s *Sequencer) wait(ctx context.Context) bool {
	if s.delay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
