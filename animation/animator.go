package animation

import (
	"github.com/petterw/motion/dynamics"
	"github.com/petterw/motion/frameclock"
	"github.com/petterw/motion/vector"
)

// StopBehavior selects where Stop leaves the animated value.
type StopBehavior int

const (
	// StopAtCurrent halts motion where it is.
	StopAtCurrent StopBehavior = iota
	// StopAtTarget snaps the value to the target and fires the completion
	// observer.
	StopAtTarget
)

type runState int

const (
	stateStopped runState = iota
	stateRunning
	statePendingStop
)

// Animator binds a dynamics model to a single vector value. Value and
// velocity start at zero; the model is swappable at any time. All methods
// must be called on the goroutine driving the scheduler's frame source.
type Animator[V vector.Vector[V]] struct {
	// OnValueChanged fires synchronously after every applied mutation,
	// model-driven or direct.
	OnValueChanged func(old, new, velocity V)

	// OnCompletion fires when a model step reports convergence or the
	// animator is stopped at its target.
	OnCompletion func()

	sched *Scheduler
	model dynamics.Model[V]

	value    V
	velocity V
	target   V

	state     runState
	scheduled bool

	// pending is the queued-but-unapplied frame timestep, consumed exactly
	// once by the next realize or external read.
	pending *frameclock.Timestep
}

// NewAnimator binds model to a fresh zero value on the given scheduler.
func NewAnimator[V vector.Vector[V]](sched *Scheduler, model dynamics.Model[V]) *Animator[V] {
	return &Animator[V]{sched: sched, model: model}
}

// Run starts (or resumes) frame-driven advancement. Idempotent.
func (a *Animator[V]) Run() {
	switch a.state {
	case stateRunning:
	case statePendingStop:
		// Still registered from before the stop request; just resume.
		a.state = stateRunning
	default:
		a.state = stateRunning
		if !a.scheduled {
			a.scheduled = true
			a.sched.schedule(a)
		}
	}
}

// Stop halts the animator before its next advance. Velocity is always
// zeroed. StopAtTarget additionally snaps the value to the target and
// fires the completion observer exactly once, synchronously.
func (a *Animator[V]) Stop(at StopBehavior) {
	var zero V
	a.pending = nil
	a.velocity = zero
	if a.state == stateRunning {
		a.state = statePendingStop
	}
	if at == StopAtTarget {
		old := a.value
		a.value = a.target
		if a.OnValueChanged != nil {
			a.OnValueChanged(old, a.value, zero)
		}
		if a.OnCompletion != nil {
			a.OnCompletion()
		}
	}
}

// Running reports whether the animator is advancing each frame.
func (a *Animator[V]) Running() bool { return a.state == stateRunning }

// Value realizes any queued timestep, then returns the current value.
func (a *Animator[V]) Value() V {
	a.realize()
	return a.value
}

// SetValue applies v immediately, bypassing the model. Any queued timestep
// is realized first so the mutation lands on up-to-date state.
func (a *Animator[V]) SetValue(v V) {
	a.realize()
	old := a.value
	a.value = v
	if a.OnValueChanged != nil {
		a.OnValueChanged(old, v, a.velocity)
	}
}

// Velocity realizes any queued timestep, then returns the current velocity.
func (a *Animator[V]) Velocity() V {
	a.realize()
	return a.velocity
}

// SetVelocity applies v immediately, bypassing the model.
func (a *Animator[V]) SetVelocity(v V) {
	a.realize()
	a.velocity = v
	if a.OnValueChanged != nil {
		a.OnValueChanged(a.value, a.value, v)
	}
}

// Target returns the value the model converges toward.
func (a *Animator[V]) Target() V { return a.target }

// SetTarget retargets the animator. No advancement happens here;
// convergence is re-checked on the next frame, and the model's closed
// forms keep the trajectory continuous across the change.
func (a *Animator[V]) SetTarget(v V) { a.target = v }

// Model returns the current dynamics model.
func (a *Animator[V]) Model() dynamics.Model[V] { return a.model }

// SetModel swaps the dynamics model mid-flight.
func (a *Animator[V]) SetModel(m dynamics.Model[V]) { a.model = m }

func (a *Animator[V]) queueFrame(ts frameclock.Timestep) disposition {
	if a.state == stateRunning {
		a.pending = &ts
		return keep
	}
	// Stopped or pending-stop: honor the stop before any further advance
	// and drop out of the active set.
	a.state = stateStopped
	a.scheduled = false
	return remove
}

// realize consumes the pending timestep, if any, through the model. Fires
// the change observer with the applied mutation and self-stops on
// convergence.
func (a *Animator[V]) realize() {
	if a.pending == nil {
		return
	}
	ts := *a.pending
	a.pending = nil

	old := a.value
	value, velocity, done := a.model.Step(a.value, a.velocity, a.target, ts.Ideal)
	a.value, a.velocity = value, velocity
	if a.OnValueChanged != nil {
		a.OnValueChanged(old, value, velocity)
	}
	if done {
		a.state = stateStopped
		if a.OnCompletion != nil {
			a.OnCompletion()
		}
	}
}
