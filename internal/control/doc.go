// Package control provides the paddle drivers.
//
// Drivers implement [Controller] and move one paddle per frame:
//
//   - [Keyboard]: human player, hold-time acceleration from an input binding
//   - [Autopilot]: computer opponent predicting where the ball will arrive
//   - [Idle]: lets the paddle coast to a stop
//
// # Usage
//
//	left := control.NewKeyboard(input.LeftBinding, params)
//	right := control.NewAutopilot(physics.SideRight, params, cfg.Autopilot())
//	left.Drive(&paddle, control.Frame{Input: keys, Ball: ball, Field: field, Dt: dt})
//
// Drivers carry per-paddle state such as key hold durations; call
// [Controller.Reset] when the paddles are rebuilt.
package control
