// Package dynamics provides the pure state-update strategies the animation
// engine steps once per frame:
//
//   - [Spring]: exact closed-form damped spring toward a target
//   - [Decay]: exponential deceleration of a flung value
//   - [Still]: no-op model that holds a value at rest
//
// A [Model] maps (value, velocity, target, dt) to the next (value,
// velocity) and reports whether the motion has converged. Models carry no
// mutable state, so the target may change between steps without
// discontinuity and one model value can serve many animators.
//
// # Stability
//
// Spring and Decay are closed-form solutions, not numerical ODE steps, so
// they remain stable at any frame duration; a dropped frame stretches the
// trajectory rather than diverging it.
package dynamics
