// Package frameclock abstracts the display-refresh subscription the
// animation scheduler ticks on. A [Source] delivers one [Frame] per
// refresh; [Ticker] is the wall-clock implementation and [Manual] drives
// frames synchronously for deterministic tests.
package frameclock

import (
	"sync"
	"time"
)

// Frame is one refresh callback: when it fired and when the next frame is
// expected to begin.
type Frame struct {
	Timestamp       time.Time
	TargetTimestamp time.Time
}

// Timestep is the per-frame elapsed-time sample, in seconds. Ideal is the
// nominal duration between expected frame boundaries and is what models
// integrate with, so a dropped frame cannot destabilize them; Actual is
// the true duration since the previous frame and serves diagnostics only.
// Both are zero on the first frame of a subscription.
type Timestep struct {
	Ideal  float64
	Actual float64
}

// Source is a frame subscription. Start begins delivering frames to fn
// and Stop releases the subscription; both must tolerate being called
// repeatedly.
type Source interface {
	Start(fn func(Frame))
	Stop()
}

// Ticker delivers frames from a time.Ticker at a fixed refresh rate.
// Frames arrive on an internal goroutine; callers that need single-thread
// confinement must funnel them onto their own loop.
type Ticker struct {
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
}

// NewTicker returns a source firing at the given frames per second.
func NewTicker(fps int) *Ticker {
	return &Ticker{interval: time.Second / time.Duration(fps)}
}

func (t *Ticker) Start(fn func(Frame)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return
	}
	stop := make(chan struct{})
	t.stop = stop

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				fn(Frame{Timestamp: now, TargetTimestamp: now.Add(t.interval)})
			case <-stop:
				return
			}
		}
	}()
}

func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// Manual is a test source driven by explicit Tick calls. It records how
// often it was started and stopped so tests can assert the scheduler's
// subscription lifecycle.
type Manual struct {
	Interval time.Duration
	Starts   int
	Stops    int

	fn  func(Frame)
	now time.Time
}

// NewManual returns a manual source advancing by interval per tick.
func NewManual(interval time.Duration) *Manual {
	return &Manual{Interval: interval, now: time.Unix(0, 0)}
}

func (m *Manual) Start(fn func(Frame)) {
	m.fn = fn
	m.Starts++
}

func (m *Manual) Stop() {
	m.fn = nil
	m.Stops++
}

// Running reports whether a subscriber is currently attached.
func (m *Manual) Running() bool { return m.fn != nil }

// Tick advances the clock by Interval and delivers one frame.
func (m *Manual) Tick() {
	m.TickAt(m.now.Add(m.Interval))
}

// TickAt delivers a frame at an explicit timestamp, for simulating frame
// drops. The target timestamp is ts + Interval.
func (m *Manual) TickAt(ts time.Time) {
	m.now = ts
	if m.fn != nil {
		m.fn(Frame{Timestamp: ts, TargetTimestamp: ts.Add(m.Interval)})
	}
}
