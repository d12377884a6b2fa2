// Package rubberband implements the nonlinear transfer function that gives
// a dragged value asymptotic resistance past its bounds: the further the
// raw value travels out of range, the less the banded value moves, and the
// overshoot never reaches the configured dimension.
package rubberband

import (
	"math"

	"github.com/petterw/motion/vector"
)

// DefaultCoeff is the stiffness used when none is specified. Smaller
// values resist harder.
const DefaultCoeff = 0.55

// Apply maps an out-of-bounds remainder n through the band function
//
//	f(n) = d - d*d/(d + n*c)
//
// preserving sign. f is monotonic, f(0) = 0 and f(n) -> d as n grows, so
// the result is strictly bounded by dim. Computed in the equivalent form
// d*n*c/(d + n*c), which is exact at n = 0.
func Apply(n, dim, coeff float64) float64 {
	if n < 0 {
		return -Apply(-n, dim, coeff)
	}
	return dim * n * coeff / (dim + n*coeff)
}

// Invert recovers the raw remainder from a banded one:
//
//	f⁻¹(n) = n*d / (c*(d - n))
//
// The inverse diverges as n approaches dim; callers must not feed it
// values at or beyond the asymptote.
func Invert(n, dim, coeff float64) float64 {
	if n < 0 {
		return -Invert(-n, dim, coeff)
	}
	return n * dim / (coeff * (dim - n))
}

// Factor is df/dn evaluated at the banded remainder b,
//
//	c*(d - |b|)² / d²
//
// used to carry a velocity between banded and raw space by elementwise
// multiplication or division. Only meaningful while the value is actually
// outside its bounds.
func Factor(b, dim, coeff float64) float64 {
	d := dim - math.Abs(b)
	return coeff * d * d / (dim * dim)
}

// Band compresses a vector value toward the range [Lower, Upper]. The
// zero value is not usable; construct with New.
type Band[V vector.Vector[V]] struct {
	Lower, Upper V

	// Dim bounds the maximum overshoot past either edge.
	Dim float64

	// Coeff is the stiffness c of the transfer function.
	Coeff float64
}

// New returns a band over [lower, upper] with the default stiffness.
func New[V vector.Vector[V]](lower, upper V, dim float64) Band[V] {
	return Band[V]{Lower: lower, Upper: upper, Dim: dim, Coeff: DefaultCoeff}
}

// Clip splits v into its in-bounds base and out-of-bounds remainder, so
// that base + clip == v and base lies memberwise within [Lower, Upper].
func (b Band[V]) Clip(v V) (base, clip V) {
	base = vector.Clamp(v, b.Lower, b.Upper)
	clip = v.Sub(base)
	return base, clip
}

// Band returns v with its out-of-bounds remainder compressed. In-bounds
// values pass through unchanged.
func (b Band[V]) Band(v V) V {
	base, clip := b.Clip(v)
	return base.Add(vector.Map(clip, func(n float64) float64 {
		return Apply(n, b.Dim, b.Coeff)
	}))
}

// Unband is the inverse of Band. Undefined for remainders at or beyond
// Dim, where the inverse diverges.
func (b Band[V]) Unband(v V) V {
	base, clip := b.Clip(v)
	return base.Add(vector.Map(clip, func(n float64) float64 {
		return Invert(n, b.Dim, b.Coeff)
	}))
}

// FactorAt returns the per-component band derivative at the banded value
// v. Components inside the bounds report the derivative at zero remainder.
func (b Band[V]) FactorAt(v V) V {
	_, clip := b.Clip(v)
	return vector.Map(clip, func(n float64) float64 {
		return Factor(n, b.Dim, b.Coeff)
	})
}

// ScaleVelocity carries a raw-space velocity into banded space, given the
// current banded position.
func (b Band[V]) ScaleVelocity(velocity, at V) V {
	return velocity.Memberwise(b.FactorAt(at), func(v, f float64) float64 {
		return v * f
	})
}

// UnscaleVelocity carries a banded-space velocity back to raw space.
func (b Band[V]) UnscaleVelocity(velocity, at V) V {
	return velocity.Memberwise(b.FactorAt(at), func(v, f float64) float64 {
		return v / f
	})
}

// ModifyUnbanded unbands v, applies mutate, and rebands the result. Drag
// handlers use this to accumulate raw gesture deltas against an already
// banded position without compounding the distortion.
func (b Band[V]) ModifyUnbanded(v V, mutate func(V) V) V {
	return b.Band(mutate(b.Unband(v)))
}
