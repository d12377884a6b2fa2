// Package vector defines the algebra shared by every animatable quantity.
//
// Any type whose zero value is the additive identity and which supports
// addition, uniform scaling, memberwise combination and squared magnitude
// can be driven by a [dynamics.Model] or compressed by a rubber band. The
// package ships the usual geometric carriers ([Scalar], [Point], [Size],
// [Rect]) plus [Transform], a composite offset+scale pair; custom composites
// implement the interface by delegating memberwise to their fields.
package vector

import "math"

// Vector is the contract for animatable values. V is always the
// implementing type itself, e.g. Point implements Vector[Point].
//
// All operations must be pure and commute with memberwise decomposition:
// applying an operation to a composite equals applying it independently to
// each field.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Scale(float64) V
	// Memberwise combines corresponding components of the two values
	// through op.
	Memberwise(V, func(a, b float64) float64) V
	// MagnitudeSquared is the component-summed squared length, used for
	// convergence tests and rubber-band distances.
	MagnitudeSquared() float64
}

// AddScaled computes v + o*by in one fused step. The spring integrator
// leans on this for its correction terms.
func AddScaled[V Vector[V]](v, o V, by float64) V {
	return v.Add(o.Scale(by))
}

// Map applies f to every component of v.
func Map[V Vector[V]](v V, f func(float64) float64) V {
	var zero V
	return v.Memberwise(zero, func(a, _ float64) float64 { return f(a) })
}

// Clamp restricts every component of v to [lo, hi].
func Clamp[V Vector[V]](v, lo, hi V) V {
	return v.Memberwise(lo, math.Max).Memberwise(hi, math.Min)
}

// Project returns the resting position a value flung with the given
// velocity decays to, for a per-millisecond deceleration rate in (0, 1).
// Momentum gestures use this to pick a target before the fling starts.
func Project[V Vector[V]](value, velocity V, decelerationRate float64) V {
	return AddScaled(value, velocity, decelerationRate/(1000*(1-decelerationRate)))
}
