package render

import "errors"

var (
	// ErrNoSurface indicates Render was called without a surface.
	ErrNoSurface = errors.New("render: no surface")
)
