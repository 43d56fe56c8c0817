// Package viz plays the game in a terminal.
//
// The court is drawn by the shared renderer onto a [BrailleSurface], which
// maps every render primitive onto the dots of a [Canvas]. A side panel
// shows the score, ball state and a rolling spin graph.
//
// # Key Bindings
//
//	W/S, ↑/↓   - Left paddle
//	O/L        - Right paddle (two player)
//	Space      - Start
//	Enter      - Start or resume
//	P, Esc     - Pause/Resume
//	R          - Back to the menu
//	M          - Mute
//	T          - Cycle themes
//	G          - Toggle GIF recording
//	X          - Save the court as SVG
//	Q          - Quit
//
// Terminals send key presses but no releases, so movement keys are held
// until their autorepeat stops.
package viz
