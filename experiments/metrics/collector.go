package metrics

import (
	"sync/atomic"
	"time"
)

// TurnMetric summarizes the turns of one game.
type TurnMetric struct {
	Rolls    int // Roll requests that reached the random source
	Wasted   int // Rolls lost to a random source failure
	Blocked  int // Rolls refused by the rules
	Moves    int // Completed movements
	Steps    int // Cells walked
	Resets   int
	Duration time.Duration
	Finished bool
}

type GameMetric struct {
	Seed      uint64
	StartTime time.Time
	EndTime   time.Time
	TurnMetric
}

type Collector interface {
	Start()
	AddRoll()
	AddWasted()
	AddBlocked()
	AddMove()
	AddStep()
	AddReset()
	SetFinished(value bool)
	Complete() TurnMetric
}

type collector struct {
	startTime time.Time
	rolls     atomic.Int32
	wasted    atomic.Int32
	blocked   atomic.Int32
	moves     atomic.Int32
	steps     atomic.Int32
	resets    atomic.Int32
	finished  atomic.Bool
}

func NewCollector() Collector {
	return &collector{startTime: time.Now()}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddRoll() {
	m.rolls.Add(1)
}

func (m *collector) AddWasted() {
	m.wasted.Add(1)
}

func (m *collector) AddBlocked() {
	m.blocked.Add(1)
}

func (m *collector) AddMove() {
	m.moves.Add(1)
}

func (m *collector) AddStep() {
	m.steps.Add(1)
}

func (m *collector) AddReset() {
	m.resets.Add(1)
}

func (m *collector) SetFinished(value bool) {
	m.finished.Store(value)
}

func (m *collector) Complete() TurnMetric {
	return TurnMetric{
		Rolls:    int(m.rolls.Load()),
		Wasted:   int(m.wasted.Load()),
		Blocked:  int(m.blocked.Load()),
		Moves:    int(m.moves.Load()),
		Steps:    int(m.steps.Load()),
		Resets:   int(m.resets.Load()),
		Duration: time.Since(m.startTime),
		Finished: m.finished.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddRoll()               {}
func (m *dummyCollector) AddWasted()             {}
func (m *dummyCollector) AddBlocked()            {}
func (m *dummyCollector) AddMove()               {}
func (m *dummyCollector) AddStep()               {}
func (m *dummyCollector) AddReset()              {}
func (m *dummyCollector) SetFinished(value bool) {}
func (m *dummyCollector) Complete() TurnMetric   { return TurnMetric{} }
