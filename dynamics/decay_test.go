package dynamics

import (
	"errors"
	"math"
	"testing"

	"github.com/petterw/motion/vector"
)

func TestDecayComesToRest(t *testing.T) {
	d := NewDecay[vector.Scalar](0.998)

	value, velocity := vector.Scalar(0), vector.Scalar(3)
	projected := vector.Project(value, velocity, d.Rate)

	done := false
	frames := 0
	for ; frames < 10000 && !done; frames++ {
		value, velocity, done = d.Step(value, velocity, 0, frame)
	}
	if !done {
		t.Fatal("never came to rest")
	}

	// The fling lands near its decay projection. The rest threshold cuts
	// the tail off early, leaving up to ~velocity/(1000·|ln rate|) of the
	// remaining coast unrealized.
	if math.Abs(float64(value-projected)) > 0.06 {
		t.Errorf("rested at %v, projection was %v", value, projected)
	}
	if math.Abs(float64(velocity)) > 1e-3 {
		t.Errorf("residual velocity %v", velocity)
	}

	// 3 units/s at rate 0.998 should take roughly five seconds.
	if frames < 200 || frames > 600 {
		t.Errorf("rested after %d frames, expected a few hundred", frames)
	}
}

func TestDecayMonotonicVelocity(t *testing.T) {
	d := NewDecay[vector.Scalar](0.995)

	velocity := vector.Scalar(-4)
	value := vector.Scalar(0)
	prev := math.Abs(float64(velocity))
	for i := 0; i < 120; i++ {
		value, velocity, _ = d.Step(value, velocity, 0, frame)
		mag := math.Abs(float64(velocity))
		if mag >= prev {
			t.Fatalf("frame %d: |velocity| grew from %g to %g", i, prev, mag)
		}
		prev = mag
	}
}

func TestDecayIgnoresTarget(t *testing.T) {
	d := NewDecay[vector.Scalar](0.998)

	a, av, _ := d.Step(0, 2, 100, frame)
	b, bv, _ := d.Step(0, 2, -100, frame)
	if a != b || av != bv {
		t.Errorf("target influenced decay: %v/%v vs %v/%v", a, av, b, bv)
	}
}

func TestNewDecayPanics(t *testing.T) {
	for _, rate := range []float64{0, 1, -0.5, 1.5} {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrDecayRange) {
					t.Errorf("rate %g: panicked with %v, expected %v", rate, r, ErrDecayRange)
				}
			}()
			NewDecay[vector.Scalar](rate)
		}()
	}
}
