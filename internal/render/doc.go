// Package render draws game snapshots onto 2D surfaces.
//
// A [Renderer] reads a [game.Snapshot] and issues drawing calls against a
// [Surface]; it never touches engine state. Snapshot coordinates are in
// field units and are scaled to the surface size, so the same renderer
// drives a window, a terminal canvas or an in-memory image:
//
//   - [Raster]: *image.RGBA surface used for PNG and GIF output
//
// Overlays for the menu, pause and game over states fade in over
// [Renderer.FadeDuration]; call [Renderer.Tick] once per displayed frame to
// advance the fade.
package render
