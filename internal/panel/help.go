package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/pfassina/figpal/internal/theme"
)

// Help renders a centered popup listing key bindings in groups.
type Help struct {
	groups [][]key.Binding
	width  int
	theme  *theme.Theme
}

// SetTheme sets the color theme for the help popup.
func (h *Help) SetTheme(th *theme.Theme) { h.theme = th }

func NewHelp() Help {
	return Help{}
}

func (h *Help) SetGroups(groups [][]key.Binding) {
	h.groups = groups
}

func (h *Help) SetWidth(width int) {
	h.width = width
}

func (h Help) View() string {
	if len(h.groups) == 0 || h.theme == nil {
		return ""
	}
	th := h.theme

	width := h.width
	if width == 0 {
		width = 60
	}

	borderStyle := th.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Accent).
		Padding(0, 1).
		Width(width - 4)

	titleStyle := th.NewStyle().
		Bold(true).
		Foreground(th.Accent)

	keyStyle := th.NewStyle().
		Foreground(th.CompactMode).
		Bold(true)

	labelStyle := th.NewStyle().
		Foreground(th.Text)

	lines := []string{titleStyle.Render("Keys"), ""}

	keyWidth := 0
	for _, group := range h.groups {
		for _, b := range group {
			keyWidth = max(keyWidth, len(b.Help().Key))
		}
	}

	for i, group := range h.groups {
		if i > 0 {
			lines = append(lines, "")
		}
		for _, b := range group {
			if !b.Enabled() {
				continue
			}
			k := fmt.Sprintf("%-*s", keyWidth, b.Help().Key)
			lines = append(lines, keyStyle.Render(k)+"  "+labelStyle.Render(b.Help().Desc))
		}
	}

	lines = append(lines, "", th.NewStyle().Foreground(th.Dim).Render("Press any key to close"))
	return borderStyle.Render(strings.Join(lines, "\n"))
}
