package panel

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pfassina/figpal/internal/theme"
)

// Search is the search bar above the gallery.
type Search struct {
	input textinput.Model
	width int
	theme *theme.Theme
}

// SetTheme sets the color theme for the search bar.
func (s *Search) SetTheme(th *theme.Theme) {
	s.theme = th
	s.input.PromptStyle = th.NewStyle().Foreground(th.Accent)
	s.input.TextStyle = th.NewStyle().Foreground(th.Text)
	s.input.PlaceholderStyle = th.NewStyle().Foreground(th.Dim)
}

func NewSearch() Search {
	ti := textinput.New()
	ti.Placeholder = "Search by Hex or ID..."
	ti.Prompt = "/ "
	ti.Width = 30

	return Search{input: ti}
}

func (s *Search) Focus() tea.Cmd {
	return s.input.Focus()
}

func (s *Search) Blur() {
	s.input.Blur()
}

func (s Search) Focused() bool {
	return s.input.Focused()
}

func (s Search) Value() string {
	return s.input.Value()
}

func (s *Search) SetValue(v string) {
	s.input.SetValue(v)
}

// Update forwards msg to the text input. The caller compares Value before
// and after to detect a changed search term.
func (s Search) Update(msg tea.Msg) (Search, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s Search) View() string {
	if s.theme == nil {
		return s.input.View()
	}
	border := s.theme.Border
	if s.input.Focused() {
		border = s.theme.Accent
	}
	return s.theme.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(s.input.View())
}

func (s *Search) SetWidth(width int) {
	s.width = width
	w := width - 8 // border, padding and prompt
	if w < 10 {
		w = 10
	}
	s.input.Width = w
}
