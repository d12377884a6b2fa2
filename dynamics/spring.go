package dynamics

import (
	"math"

	"github.com/petterw/motion/vector"
)

// DefaultEpsilon is the squared-magnitude rest threshold applied to both
// displacement and velocity.
const DefaultEpsilon = 1e-8

// Spring converges a value toward its target with damped harmonic motion.
//
// Response is a proxy for the oscillation period: the natural frequency is
// 2π/Response. DampingRatio selects the branch: exactly 1 for critical
// damping, below 1 for underdamped oscillation. Both branches are exact
// closed forms evaluated on the displacement value-target, so retargeting
// mid-flight never produces a jump.
type Spring[V vector.Vector[V]] struct {
	Response     float64
	DampingRatio float64
	Epsilon      float64
}

// NewSpring builds a spring model. It panics on a non-positive response or
// a damping ratio outside (0, 1].
func NewSpring[V vector.Vector[V]](response, dampingRatio float64) Spring[V] {
	if response <= 0 {
		panic(ErrResponseRange)
	}
	if dampingRatio <= 0 || dampingRatio > 1 {
		panic(ErrDampingRange)
	}
	return Spring[V]{
		Response:     response,
		DampingRatio: dampingRatio,
		Epsilon:      DefaultEpsilon,
	}
}

// Step advances the spring by dt seconds. Convergence requires both the
// squared displacement and the squared velocity to fall under Epsilon;
// position alone is not enough, since a spring passing through its target
// at speed must keep animating.
func (s Spring[V]) Step(value, velocity, target V, dt float64) (V, V, bool) {
	omega := 2 * math.Pi / s.Response
	disp := value.Sub(target)

	var next, vel V
	if s.DampingRatio >= 1 {
		// Critically damped: x(t) = e^{-ωt} (x₀ + (v₀ + ωx₀) t).
		decay := math.Exp(-omega * dt)
		c := vector.AddScaled(velocity, disp, omega)
		next = disp.Add(c.Scale(dt)).Scale(decay)
		vel = velocity.Sub(c.Scale(omega * dt)).Scale(decay)
	} else {
		// Underdamped: decaying oscillation at the damped frequency.
		damped := omega * math.Sqrt(1-s.DampingRatio*s.DampingRatio)
		decay := math.Exp(-s.DampingRatio * omega * dt)
		sin, cos := math.Sincos(damped * dt)
		c := vector.AddScaled(velocity, disp, s.DampingRatio*omega)
		next = disp.Scale(cos).Add(c.Scale(sin / damped)).Scale(decay)
		vel = c.Scale(cos).Sub(disp.Scale(damped * sin)).Scale(decay).
			Sub(next.Scale(s.DampingRatio * omega))
	}

	eps := s.Epsilon
	if eps == 0 {
		eps = DefaultEpsilon
	}
	done := next.MagnitudeSquared() < eps && vel.MagnitudeSquared() < eps
	return target.Add(next), vel, done
}
