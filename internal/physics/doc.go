// Package physics provides the rigid-body model of the court.
//
// The package defines the bodies and the per-frame update rules:
//
//   - [Field]: playfield dimensions
//   - [Paddle]: vertically moving paddle with a signed speed
//   - [Ball]: ball with velocity and spin
//   - [Params]: tuning constants for all of the above
//
// Velocities are in pixels per frame. Each call to [StepBall] advances the
// ball exactly one frame; paddles are moved by [ApplyFriction],
// [Accelerate] and [Integrate], usually through a controller.
//
// # Step Order
//
// [StepBall] runs spin decay, spin curve, integration, wall bounce, paddle
// deflection and goal detection in that order. Later stages read values
// written by earlier ones, so the order is part of the model:
//
//	contacts := physics.StepBall(&ball, &left, &right, field, params)
//	if contacts.Goal != physics.SideNone {
//	    ball = physics.Launch(field, params, rnd)
//	}
package physics
