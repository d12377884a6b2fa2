// Package animation binds dynamics models to vector values and advances
// them once per display frame.
//
// A [Scheduler] owns a [frameclock.Source]. It subscribes lazily when the
// first animator registers and releases the subscription once nothing is
// left to drive. Each frame it computes a single [frameclock.Timestep]
// that every active animator observes, prunes animators that stopped since
// the last frame, then advances the rest through their models.
//
// An [Animator] carries one value, its velocity and a target. Motion is
// realized lazily: the scheduler queues the frame's timestep and the model
// runs when the scheduler (or any reader of Value/Velocity) forces the
// catch-up, so readers never observe state that is known to be due for an
// update.
//
// # Confinement
//
// The engine is cooperative and single-threaded: frame callbacks, observer
// callbacks and animator mutations all run on whichever goroutine drives
// the frame source. Only registration is mutex-guarded, so animators may
// be created and run from another goroutine; everything else must stay on
// the driving goroutine.
package animation
