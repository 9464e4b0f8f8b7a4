package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme shared by terminal plots, the report, the
// viewer and SVG export. Analytical, Euler and Verlet colour the three
// trajectories; Success, Warning and Error shade sparklines from low to high.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color

	Analytical lipgloss.Color
	Euler      lipgloss.Color
	Verlet     lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    "#ffffff",
		Secondary:  "#cccccc",
		Background: "#000000",
		Text:       "#ffffff",
		Muted:      "#888888",
		Analytical: "#00ff00",
		Euler:      "#ffaa00",
		Verlet:     "#0088ff",
		Success:    "#00ff00",
		Warning:    "#ffaa00",
		Error:      "#ff0000",
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    "#0077be",
		Secondary:  "#00a8cc",
		Background: "#001a33",
		Text:       "#e0f0ff",
		Muted:      "#4488aa",
		Analytical: "#7fdbff",
		Euler:      "#ff851b",
		Verlet:     "#ffd700",
		Success:    "#00ff88",
		Warning:    "#ffcc00",
		Error:      "#ff4444",
	}

	// ThemePaper suits light terminals and SVG files meant for printing.
	ThemePaper = Theme{
		Name:       "paper",
		Primary:    "#1a1a1a",
		Secondary:  "#555555",
		Background: "#ffffff",
		Text:       "#1a1a1a",
		Muted:      "#999999",
		Analytical: "#2ca02c",
		Euler:      "#d62728",
		Verlet:     "#1f77b4",
		Success:    "#2ca02c",
		Warning:    "#ff7f0e",
		Error:      "#d62728",
	}

	Themes = []Theme{ThemeMinimal, ThemeOcean, ThemePaper}
)

// GetTheme returns the named theme, or ThemeMinimal.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMinimal
}

// Series returns the trajectory colours in display order.
func (t Theme) Series() []lipgloss.Color {
	return []lipgloss.Color{t.Analytical, t.Euler, t.Verlet}
}

// Next returns the theme after t in Themes, wrapping around.
func (t Theme) Next() Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
