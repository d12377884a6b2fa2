package dynamics

import (
	"math"

	"github.com/petterw/motion/vector"
)

// DefaultDecelerationRate matches the feel of a standard scrolling fling.
const DefaultDecelerationRate = 0.998

// Decay slows a flung value to rest without a target: velocity shrinks by
// Rate per millisecond and the value coasts toward the projection returned
// by [vector.Project]. The target argument of Step is ignored.
type Decay[V vector.Vector[V]] struct {
	Rate    float64
	Epsilon float64
}

// NewDecay builds a decay model for a per-millisecond deceleration rate in
// (0, 1). It panics outside that range.
func NewDecay[V vector.Vector[V]](rate float64) Decay[V] {
	if rate <= 0 || rate >= 1 {
		panic(ErrDecayRange)
	}
	return Decay[V]{Rate: rate, Epsilon: DefaultEpsilon}
}

// Step advances the decay by dt seconds. Converged once the squared
// velocity falls under Epsilon.
func (d Decay[V]) Step(value, velocity, _ V, dt float64) (V, V, bool) {
	k := math.Pow(d.Rate, dt*1000)
	next := vector.AddScaled(value, velocity, (k-1)/(1000*math.Log(d.Rate)))
	vel := velocity.Scale(k)

	eps := d.Epsilon
	if eps == 0 {
		eps = DefaultEpsilon
	}
	return next, vel, vel.MagnitudeSquared() < eps
}
