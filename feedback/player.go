package feedback

import (
	"ludo/game"
	"sync"

	"github.com/rs/zerolog/log"
)

// Sink receives the clip a signal resolved to.
type Sink func(clip string)

// DefaultClips maps engine signals to the clip names used by the board's
// sound set.
var DefaultClips = map[string]string{
	game.SignalRoll:     "DiceRoll",
	game.SignalBlocked:  "Warning",
	game.SignalMove:     "ChipMove",
	game.SignalComplete: "GameOver",
}

// Player resolves feedback signals to clips and hands them to a sink.
// Unknown signals are logged and dropped.
type Player struct {
	mu    sync.RWMutex
	clips map[string]string
	sink  Sink
}

// NewPlayer copies clips so later changes to the map do not leak in.
func NewPlayer(clips map[string]string, sink Sink) *Player {
	p := &Player{
		clips: make(map[string]string, len(clips)),
		sink:  sink,
	}
	for name, clip := range clips {
		p.clips[name] = clip
	}
	return p
}

// Register adds or replaces the clip for a signal.
func (p *Player) Register(name, clip string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clips[name] = clip
}

// Signal plays the clip registered for name.
func (p *Player) Signal(name string) {
	p.mu.RLock()
	clip, ok := p.clips[name]
	p.mu.RUnlock()

	if !ok {
		log.Warn().Str("signal", name).Msg("feedback signal not found")
		return
	}
	log.Debug().Str("signal", name).Str("clip", clip).Msg("play")
	if p.sink != nil {
		p.sink(clip)
	}
}
