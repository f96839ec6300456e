package feedback

import (
	"sync"
	"time"
)

// Cooldown throttles keyed events to at most one per interval. Entries are
// created on first fire and never removed; keys come from a small fixed set.
type Cooldown struct {
	mu   sync.Mutex
	last map[string]time.Time
}

func NewCooldown() *Cooldown {
	return &Cooldown{last: make(map[string]time.Time)}
}

// Allow reports whether key may fire at now and, if so, records now as its
// last firing.
func (c *Cooldown) Allow(key string, minInterval time.Duration, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if last, ok := c.last[key]; ok && now.Sub(last) < minInterval {
		return false
	}
	c.last[key] = now
	return true
}
