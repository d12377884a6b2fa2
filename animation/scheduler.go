package animation

import (
	"sync"

	"github.com/petterw/motion/frameclock"
)

type disposition int

const (
	keep disposition = iota
	remove
)

// tickable is the type-erased face an animator shows the scheduler, so one
// scheduler can drive animators over heterogeneous vector types.
type tickable interface {
	// queueFrame hands the animator the frame's timestep without applying
	// it, and reports whether the animator stays scheduled.
	queueFrame(frameclock.Timestep) disposition
	// realize applies any queued timestep through the animator's model.
	realize()
}

// Scheduler drives every registered animator from a single frame source.
// Construct one per UI context and inject it into consumers; tests drive
// it deterministically through a [frameclock.Manual] source.
type Scheduler struct {
	source frameclock.Source

	mu         sync.Mutex
	incoming   []tickable
	subscribed bool

	// Touched only from the frame callback.
	active  []tickable
	prev    frameclock.Frame
	hasPrev bool
}

// NewScheduler returns a scheduler ticking on src. The source is not
// started until the first animator registers.
func NewScheduler(src frameclock.Source) *Scheduler {
	return &Scheduler{source: src}
}

// schedule registers t for frame delivery starting with the next frame.
// Animators registered while a frame scan is in flight are merged at the
// top of the following frame, so none is double-counted or skipped.
func (s *Scheduler) schedule(t tickable) {
	s.mu.Lock()
	s.incoming = append(s.incoming, t)
	start := !s.subscribed
	if start {
		s.subscribed = true
	}
	s.mu.Unlock()

	if start {
		s.source.Start(s.frame)
	}
}

// frame is the per-refresh callback: compute one shared timestep, merge
// new registrations, drop stopped animators, advance the rest, and release
// the subscription if nothing remains.
func (s *Scheduler) frame(f frameclock.Frame) {
	var ts frameclock.Timestep
	if s.hasPrev {
		ts.Ideal = f.TargetTimestamp.Sub(s.prev.TargetTimestamp).Seconds()
		ts.Actual = f.Timestamp.Sub(s.prev.Timestamp).Seconds()
	}
	s.prev, s.hasPrev = f, true

	s.mu.Lock()
	if len(s.incoming) > 0 {
		s.active = append(s.active, s.incoming...)
		s.incoming = s.incoming[:0]
	}
	s.mu.Unlock()

	kept := s.active[:0]
	for _, t := range s.active {
		if t.queueFrame(ts) == keep {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = kept

	// Advancing one animator never touches another, so order within the
	// frame carries no meaning.
	for _, t := range s.active {
		t.realize()
	}

	s.mu.Lock()
	release := len(s.active) == 0 && len(s.incoming) == 0
	if release {
		s.subscribed = false
		s.hasPrev = false
	}
	s.mu.Unlock()

	if !release {
		return
	}
	s.source.Stop()

	// A registration landing between the release decision above and the
	// Stop sees the subscription as live and its Start is swallowed by a
	// still-running source. Re-check and revive the source for it.
	s.mu.Lock()
	revive := s.subscribed
	s.mu.Unlock()
	if revive {
		s.source.Start(s.frame)
	}
}
