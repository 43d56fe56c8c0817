// Package game runs a tennis match.
//
// An [Engine] owns the paddles, the ball, the score and the match state.
// It is driven one frame at a time:
//
//   - [Engine.OnKeyDown] and [Engine.OnKeyUp] record key edges
//   - [Engine.Step] advances the match using the keys currently held
//   - [Engine.Snapshot] returns a read-only copy for rendering
//
// # Match States
//
// A match moves Menu -> Playing <-> Paused, and Playing -> GameOver once a
// side reaches the winning score. Physics only runs while Playing; in every
// other state [Engine.Update] leaves the match untouched.
//
// # Collaborators
//
// Sound and score display are optional. A collaborator that panics is
// logged and detached; the match carries on without it.
//
// # Example
//
//	eng, err := game.New(*config.DefaultConfig(), game.WithSound(sounds))
//	if err != nil {
//	    return err
//	}
//	eng.Start()
//	eng.Step(16 * time.Millisecond)
//	snap := eng.Snapshot()
//
// # Thread Safety
//
// Engine is NOT safe for concurrent use. Key edges may arrive from another
// goroutine only through the [input.Tracker] returned by [Engine.Keys].
package game
