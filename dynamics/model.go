package dynamics

import "github.com/petterw/motion/vector"

// Model computes one integration step of a value toward a target over dt
// seconds. Implementations are pure: the same inputs always yield the same
// outputs, and no state survives between calls.
type Model[V vector.Vector[V]] interface {
	Step(value, velocity, target V, dt float64) (V, V, bool)
}

// Still holds a value at rest: every step reports convergence without
// touching value or velocity. It lets an animator participate in the
// scheduler uniformly before any real motion is requested.
type Still[V vector.Vector[V]] struct{}

func (Still[V]) Step(value, velocity, _ V, _ float64) (V, V, bool) {
	return value, velocity, true
}
