package dynamics

import "errors"

// Parameter errors. Constructors panic with these, since an ill-posed
// model is a programmer error that would otherwise integrate to NaN;
// configuration loaders return them wrapped instead.
var (
	// ErrResponseRange indicates a non-positive spring response.
	ErrResponseRange = errors.New("dynamics: response must be positive")

	// ErrDampingRange indicates a damping ratio outside (0, 1].
	ErrDampingRange = errors.New("dynamics: damping ratio must be in (0, 1]")

	// ErrDecayRange indicates a deceleration rate outside (0, 1).
	ErrDecayRange = errors.New("dynamics: deceleration rate must be in (0, 1)")
)
