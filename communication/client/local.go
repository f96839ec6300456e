package client

import (
	"context"
	"ludo/game"
	"sync"

	"golang.org/x/exp/rand"
)

// LocalRandomSource is an offline die backed by a seeded generator. The same
// seed always yields the same sequence of rolls.
type LocalRandomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewLocalRandomSource(seed uint64) *LocalRandomSource {
	return &LocalRandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Roll never fails unless ctx is already done.
func (s *LocalRandomSource) Roll(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(game.DieMax-game.DieMin+1) + game.DieMin, nil
}
