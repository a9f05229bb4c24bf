package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the chrome colors used by all TUI panels.
// Panels hold a *Theme pointer; every style must come from NewStyle so that
// SSH sessions render with the remote terminal's color profile.
type Theme struct {
	Name     string
	Bg       lipgloss.Color
	Accent   lipgloss.Color
	Subtle   lipgloss.Color
	Text     lipgloss.Color
	Dim      lipgloss.Color
	Border   lipgloss.Color
	StatusBg lipgloss.Color
	StatusFg lipgloss.Color
	Error    lipgloss.Color

	// Mode badge colors for the status bar.
	GridMode    lipgloss.Color
	CompactMode lipgloss.Color
	ListMode    lipgloss.Color

	renderer *lipgloss.Renderer
}

// DefaultName is the theme used when none (or an unknown one) is configured.
const DefaultName = "catppuccin"

var themes = map[string]Theme{
	"catppuccin": {
		Name:        "catppuccin",
		Bg:          lipgloss.Color("#1e1e2e"),
		Accent:      lipgloss.Color("#cba6f7"),
		Subtle:      lipgloss.Color("#6c7086"),
		Text:        lipgloss.Color("#cdd6f4"),
		Dim:         lipgloss.Color("#585b70"),
		Border:      lipgloss.Color("#45475a"),
		StatusBg:    lipgloss.Color("#313244"),
		StatusFg:    lipgloss.Color("#cdd6f4"),
		Error:       lipgloss.Color("#f38ba8"),
		GridMode:    lipgloss.Color("#89b4fa"),
		CompactMode: lipgloss.Color("#a6e3a1"),
		ListMode:    lipgloss.Color("#f9e2af"),
	},
	"nord": {
		Name:        "nord",
		Bg:          lipgloss.Color("#2e3440"),
		Accent:      lipgloss.Color("#88c0d0"),
		Subtle:      lipgloss.Color("#4c566a"),
		Text:        lipgloss.Color("#eceff4"),
		Dim:         lipgloss.Color("#434c5e"),
		Border:      lipgloss.Color("#3b4252"),
		StatusBg:    lipgloss.Color("#3b4252"),
		StatusFg:    lipgloss.Color("#eceff4"),
		Error:       lipgloss.Color("#bf616a"),
		GridMode:    lipgloss.Color("#81a1c1"),
		CompactMode: lipgloss.Color("#a3be8c"),
		ListMode:    lipgloss.Color("#ebcb8b"),
	},
	"gruvbox": {
		Name:        "gruvbox",
		Bg:          lipgloss.Color("#282828"),
		Accent:      lipgloss.Color("#d79921"),
		Subtle:      lipgloss.Color("#665c54"),
		Text:        lipgloss.Color("#ebdbb2"),
		Dim:         lipgloss.Color("#504945"),
		Border:      lipgloss.Color("#3c3836"),
		StatusBg:    lipgloss.Color("#3c3836"),
		StatusFg:    lipgloss.Color("#ebdbb2"),
		Error:       lipgloss.Color("#fb4934"),
		GridMode:    lipgloss.Color("#83a598"),
		CompactMode: lipgloss.Color("#b8bb26"),
		ListMode:    lipgloss.Color("#fabd2f"),
	},
	"tokyo-night": {
		Name:        "tokyo-night",
		Bg:          lipgloss.Color("#1a1b26"),
		Accent:      lipgloss.Color("#7aa2f7"),
		Subtle:      lipgloss.Color("#565f89"),
		Text:        lipgloss.Color("#c0caf5"),
		Dim:         lipgloss.Color("#414868"),
		Border:      lipgloss.Color("#292e42"),
		StatusBg:    lipgloss.Color("#1f2335"),
		StatusFg:    lipgloss.Color("#c0caf5"),
		Error:       lipgloss.Color("#f7768e"),
		GridMode:    lipgloss.Color("#7aa2f7"),
		CompactMode: lipgloss.Color("#9ece6a"),
		ListMode:    lipgloss.Color("#e0af68"),
	},
}

// DefaultTheme returns the default color palette (catppuccin-inspired)
// bound to the default renderer.
func DefaultTheme() Theme {
	return Get(DefaultName)
}

// Get returns a theme by name, defaulting to catppuccin.
func Get(name string) Theme {
	t, ok := themes[name]
	if !ok {
		t = themes[DefaultName]
	}
	t.renderer = lipgloss.DefaultRenderer()
	return t
}

// Exists reports whether name is a known theme.
func Exists(name string) bool {
	_, ok := themes[name]
	return ok
}

// Names returns the known theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// WithRenderer returns a copy of t whose styles are built by r.
func (t Theme) WithRenderer(r *lipgloss.Renderer) Theme {
	t.renderer = r
	return t
}

// NewStyle returns an empty style bound to the theme's renderer.
func (t *Theme) NewStyle() lipgloss.Style {
	if t.renderer == nil {
		return lipgloss.NewStyle()
	}
	return t.renderer.NewStyle()
}
