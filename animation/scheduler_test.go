package animation

import (
	"testing"
	"time"

	"github.com/petterw/motion/frameclock"
	"github.com/petterw/motion/vector"
)

// teardownRaceSource registers an animator while its Stop is in flight and
// swallows Starts issued during that window, reproducing the interleaving a
// wall-clock source allows when another goroutine registers between the
// scheduler's release decision and the subscription shutdown.
type teardownRaceSource struct {
	*frameclock.Manual
	onStop   func()
	stopping bool
}

func (s *teardownRaceSource) Start(fn func(frameclock.Frame)) {
	if s.stopping {
		return
	}
	s.Manual.Start(fn)
}

func (s *teardownRaceSource) Stop() {
	if s.onStop != nil {
		f := s.onStop
		s.onStop = nil
		s.stopping = true
		f()
		s.stopping = false
	}
	s.Manual.Stop()
}

func TestSchedulerSharedTimestep(t *testing.T) {
	src, sched := newTestScheduler()
	ma := &countingModel{}
	mb := &countingModel{}
	a := NewAnimator[vector.Scalar](sched, ma)
	b := NewAnimator[vector.Scalar](sched, mb)

	a.Run()
	b.Run()
	src.Tick()
	src.Tick()
	src.Tick()

	if len(ma.dts) != len(mb.dts) {
		t.Fatalf("frame counts differ: %d vs %d", len(ma.dts), len(mb.dts))
	}
	for i := range ma.dts {
		if ma.dts[i] != mb.dts[i] {
			t.Errorf("frame %d: animators observed different timesteps %v vs %v", i, ma.dts[i], mb.dts[i])
		}
	}
}

func TestSchedulerLazySubscription(t *testing.T) {
	src, sched := newTestScheduler()
	m := &countingModel{}
	a := NewAnimator[vector.Scalar](sched, m)

	if src.Starts != 0 {
		t.Fatal("subscribed before any registration")
	}
	a.Run()
	if src.Starts != 1 {
		t.Fatalf("Starts=%d after first Run, expected 1", src.Starts)
	}
}

func TestSchedulerReleasesWhenIdle(t *testing.T) {
	src, sched := newTestScheduler()
	m := &countingModel{}
	a := NewAnimator[vector.Scalar](sched, m)

	a.Run()
	src.Tick()
	a.Stop(StopAtCurrent)
	src.Tick() // prune pass drops the animator and releases the clock

	if src.Stops != 1 {
		t.Errorf("Stops=%d, expected 1", src.Stops)
	}
	if src.Running() {
		t.Error("source still running with nothing scheduled")
	}

	// A new Run resubscribes, and the fresh subscription's first frame is
	// a zero timestep again.
	a.Run()
	if src.Starts != 2 {
		t.Errorf("Starts=%d after rerun, expected 2", src.Starts)
	}
	src.Tick()
	if got := m.dts[len(m.dts)-1]; got != 0 {
		t.Errorf("first frame after resubscribe dt=%v, expected 0", got)
	}
}

func TestSchedulerConvergedAnimatorPruned(t *testing.T) {
	src, sched := newTestScheduler()
	m := &countingModel{converge: true}
	a := NewAnimator[vector.Scalar](sched, m)

	a.Run()
	src.Tick() // advances once, model converges, animator self-stops
	src.Tick() // prune and release

	if m.steps != 1 {
		t.Errorf("model stepped %d times, expected 1", m.steps)
	}
	if a.Running() {
		t.Error("animator still running after convergence")
	}
	if len(sched.active) != 0 {
		t.Errorf("%d animators still scheduled", len(sched.active))
	}
	if a.scheduled {
		t.Error("pruned animator still marked registered")
	}
	if src.Running() {
		t.Error("source still running")
	}
}

func TestRegistrationDuringFrameDeferred(t *testing.T) {
	src, sched := newTestScheduler()

	late := &countingModel{}
	var b *Animator[vector.Scalar]

	ma := &countingModel{}
	a := NewAnimator[vector.Scalar](sched, ma)
	a.OnValueChanged = func(_, _, _ vector.Scalar) {
		if b == nil {
			b = NewAnimator[vector.Scalar](sched, late)
			b.Run()
		}
	}

	a.Run()
	src.Tick()

	// b registered mid-frame and must not observe that frame's timestep.
	if late.steps != 0 {
		t.Fatalf("late animator advanced %d times in its registration frame", late.steps)
	}

	src.Tick()
	if late.steps != 1 {
		t.Errorf("late animator advanced %d times on the following frame, expected 1", late.steps)
	}
}

func TestRegistrationDuringReleaseRevivesSource(t *testing.T) {
	src := &teardownRaceSource{Manual: frameclock.NewManual(interval)}
	sched := NewScheduler(src)

	late := &countingModel{}
	src.onStop = func() {
		b := NewAnimator[vector.Scalar](sched, late)
		b.Run()
	}

	m := &countingModel{converge: true}
	a := NewAnimator[vector.Scalar](sched, m)
	a.Run()
	src.Tick() // a advances once, converges and self-stops
	src.Tick() // prune releases the clock; teardown races with b's Run

	if !src.Running() {
		t.Fatal("source left stopped with a registration pending")
	}

	src.Tick()
	src.Tick()
	if late.steps != 2 {
		t.Errorf("raced animator advanced %d frames, expected 2", late.steps)
	}
}

func TestTimestepScalesWithFrameGap(t *testing.T) {
	src, sched := newTestScheduler()
	m := &countingModel{}
	a := NewAnimator[vector.Scalar](sched, m)

	a.Run()
	base := time.Unix(10, 0)
	src.TickAt(base)
	src.TickAt(base.Add(src.Interval))
	// Simulate two dropped frames.
	src.TickAt(base.Add(4 * src.Interval))

	if len(m.dts) != 3 {
		t.Fatalf("got %d timesteps", len(m.dts))
	}
	if want := src.Interval.Seconds(); m.dts[1] != want {
		t.Errorf("steady frame dt=%v, expected %v", m.dts[1], want)
	}
	if want := (3 * src.Interval).Seconds(); m.dts[2] != want {
		t.Errorf("post-drop frame dt=%v, expected %v", m.dts[2], want)
	}
}
