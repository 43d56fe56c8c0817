package render

type Theme struct {
	Background Color
	Grid       Color
	CenterLine Color
	Outline    Color
	Left       Color
	Right      Color
	Ball       Color
	Shade      Color
	Title      Color
	Text       Color
}

var DefaultTheme = Theme{
	Background: RGBA(10, 10, 20, 1),
	Grid:       RGBA(255, 255, 255, 0.05),
	CenterLine: RGBA(255, 255, 255, 0.2),
	Outline:    RGBA(255, 255, 255, 0.5),
	Left:       RGBA(0, 243, 255, 0.8),
	Right:      RGBA(255, 0, 230, 0.8),
	Ball:       RGBA(255, 204, 0, 0.9),
	Shade:      RGBA(0, 0, 0, 0.7),
	Title:      RGBA(255, 204, 0, 0.9),
	Text:       RGBA(255, 255, 255, 0.7),
}

// Monochrome suits low-colour terminals.
var Monochrome = Theme{
	Background: RGBA(0, 0, 0, 1),
	Grid:       RGBA(255, 255, 255, 0),
	CenterLine: RGBA(255, 255, 255, 0.6),
	Outline:    RGBA(255, 255, 255, 1),
	Left:       RGBA(255, 255, 255, 1),
	Right:      RGBA(255, 255, 255, 1),
	Ball:       RGBA(255, 255, 255, 1),
	Shade:      RGBA(0, 0, 0, 0.7),
	Title:      RGBA(255, 255, 255, 1),
	Text:       RGBA(255, 255, 255, 1),
}
