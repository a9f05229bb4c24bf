package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pfassina/figpal/internal/gallery"
	"github.com/pfassina/figpal/internal/theme"
)

// Status is the status bar at the bottom.
type Status struct {
	width     int
	mode      gallery.DisplayMode
	sort      gallery.SortKey
	count     int
	total     int
	clipboard string
	theme     *theme.Theme
}

// SetTheme sets the color theme for the status bar.
func (s *Status) SetTheme(th *theme.Theme) { s.theme = th }

func NewStatus(total int) Status {
	return Status{total: total, count: total}
}

func (s *Status) SetMode(mode gallery.DisplayMode) {
	s.mode = mode
}

func (s *Status) SetSort(key gallery.SortKey) {
	s.sort = key
}

func (s *Status) SetCount(count int) {
	s.count = count
}

func (s *Status) SetWidth(width int) {
	s.width = width
}

// SetClipboard sets the label describing the last successful copy.
func (s *Status) SetClipboard(label string) {
	s.clipboard = label
}

func (s Status) Clipboard() string {
	return s.clipboard
}

func (s Status) View() string {
	if s.width == 0 || s.theme == nil {
		return ""
	}
	th := s.theme

	bgStyle := th.NewStyle().Background(th.StatusBg)

	modeColors := map[gallery.DisplayMode]lipgloss.Color{
		gallery.ModeGrid:    th.GridMode,
		gallery.ModeCompact: th.CompactMode,
		gallery.ModeList:    th.ListMode,
	}

	modeStyle := th.NewStyle().
		Background(modeColors[s.mode]).
		Foreground(th.Bg).
		Bold(true).
		Padding(0, 1)

	textStyle := th.NewStyle().
		Background(th.StatusBg).
		Foreground(th.StatusFg).
		Padding(0, 1)

	mode := modeStyle.Render(strings.ToUpper(s.mode.String()))
	counts := textStyle.Render(fmt.Sprintf("%d/%d palettes", s.count, s.total))
	left := mode + counts

	right := textStyle.Render("Sort: " + s.sort.String())
	if s.clipboard != "" {
		clipStyle := textStyle.Foreground(th.Accent)
		right = clipStyle.Render(s.clipboard) + right
	}

	padLen := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padLen < 0 {
		padLen = 0
	}
	padding := bgStyle.Render(strings.Repeat(" ", padLen))

	return left + padding + right
}
