package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/retrotennis/internal/render"
)

// Theme pairs the court colours with the panel accents.
type Theme struct {
	Name      string
	Scene     render.Theme
	Primary   lipgloss.Color
	Secondary lipgloss.Color
}

var phosphor = render.Theme{
	Background: render.RGBA(0, 17, 0, 1),
	Grid:       render.RGBA(0, 255, 0, 0.05),
	CenterLine: render.RGBA(0, 204, 0, 0.6),
	Outline:    render.RGBA(136, 255, 136, 1),
	Left:       render.RGBA(0, 255, 0, 1),
	Right:      render.RGBA(0, 204, 0, 1),
	Ball:       render.RGBA(136, 255, 136, 1),
	Shade:      render.RGBA(0, 0, 0, 0.7),
	Title:      render.RGBA(136, 255, 136, 1),
	Text:       render.RGBA(0, 255, 0, 1),
}

var (
	ThemeNeon = Theme{
		Name:      "neon",
		Scene:     render.DefaultTheme,
		Primary:   lipgloss.Color("#00f3ff"),
		Secondary: lipgloss.Color("#ff00e6"),
	}

	ThemePhosphor = Theme{
		Name:      "phosphor",
		Scene:     phosphor,
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#88ff88"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Scene:     render.Monochrome,
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#888888"),
	}

	Themes = []Theme{ThemeNeon, ThemePhosphor, ThemeMono}
)

// GetTheme returns a theme by name, falling back to neon.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNeon
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func nextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
