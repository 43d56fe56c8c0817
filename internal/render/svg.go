package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/retrotennis/internal/physics"
)

// Point is a position in field coordinates.
type Point struct {
	X, Y float64
}

// WritePathSVG draws the field outline and centre line with path as a
// polyline over it. The SVG uses field units.
func WritePathSVG(w io.Writer, f physics.Field, t Theme, path []Point) error {
	if len(path) < 2 {
		return fmt.Errorf("render: path needs at least 2 points, got %d", len(path))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<rect x="1" y="1" width="%.0f" height="%.0f" fill="none" stroke="%s" stroke-opacity="%.2f" stroke-width="2"/>
<line x1="%.1f" y1="0" x2="%.1f" y2="%.0f" stroke="%s" stroke-opacity="%.2f" stroke-width="2" stroke-dasharray="%.0f %.0f"/>
`,
		f.Width, f.Height, f.Width, f.Height,
		hex(t.Background),
		f.Width-2, f.Height-2, hex(t.Outline), t.Outline.A,
		f.Width/2, f.Width/2, f.Height, hex(t.CenterLine), t.CenterLine.A, dashOn, dashOff))

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-opacity="%.2f" stroke-width="1.5" d="M`, hex(t.Ball), t.Ball.A))
	for i, p := range path {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
		}
	}
	sb.WriteString(`"/>
</svg>`)

	_, err := io.WriteString(w, sb.String())
	return err
}

func hex(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
