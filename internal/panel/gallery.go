package panel

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/pfassina/figpal/internal/gallery"
	"github.com/pfassina/figpal/internal/palette"
	"github.com/pfassina/figpal/internal/theme"
)

// Minimum card widths per display density.
const (
	gridCardWidth    = 54
	compactCardWidth = 18
)

// ColumnsFor returns how many cards fit side by side in width.
func ColumnsFor(mode gallery.DisplayMode, width int) int {
	var cols int
	switch mode {
	case gallery.ModeGrid:
		cols = width / gridCardWidth
	case gallery.ModeCompact:
		cols = width / compactCardWidth
	default:
		cols = 1
	}
	return max(cols, 1)
}

// Gallery is the scrollable result area. It keeps a palette cursor and a
// swatch cursor and scrolls so the selected card stays on screen.
type Gallery struct {
	records  []palette.Record
	mode     gallery.DisplayMode
	cursor   int
	swatch   int
	width    int
	height   int
	viewport viewport.Model
	rowStart []int // first content line of each layout row
	rowEnd   []int // one past the last content line of each row
	acks     *Acks
	theme    *theme.Theme
}

func NewGallery(acks *Acks) Gallery {
	return Gallery{
		acks:     acks,
		viewport: viewport.New(0, 0),
	}
}

// SetTheme sets the color theme for the gallery.
func (g *Gallery) SetTheme(th *theme.Theme) { g.theme = th }

// SetRecords replaces the displayed result set and resets the cursor.
func (g *Gallery) SetRecords(records []palette.Record) {
	g.records = records
	g.cursor = 0
	g.swatch = 0
	g.viewport.SetYOffset(0)
	g.Refresh()
}

func (g *Gallery) SetMode(mode gallery.DisplayMode) {
	g.mode = mode
	g.Refresh()
}

func (g *Gallery) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.viewport.Width = width
	g.viewport.Height = height
	g.Refresh()
}

func (g Gallery) Cursor() (card, swatch int) {
	return g.cursor, g.swatch
}

// Selected returns the palette under the cursor.
func (g Gallery) Selected() (palette.Record, bool) {
	if g.cursor < 0 || g.cursor >= len(g.records) {
		return palette.Record{}, false
	}
	return g.records[g.cursor], true
}

// SelectedSwatch returns the swatch under the cursor. Compact cards have no
// interactive swatches, so it reports false in that mode.
func (g Gallery) SelectedSwatch() (SwatchKey, string, bool) {
	r, ok := g.Selected()
	if !ok || g.mode == gallery.ModeCompact || g.swatch >= r.Len() {
		return SwatchKey{}, "", false
	}
	return SwatchKey{ID: r.ID, Index: g.swatch}, r.Colors[g.swatch], true
}

// Visible reports whether k is currently rendered as an interactive swatch.
func (g Gallery) Visible(k SwatchKey) bool {
	if g.mode == gallery.ModeCompact {
		return false
	}
	for _, r := range g.records {
		if r.ID == k.ID {
			return k.Index < r.Len()
		}
	}
	return false
}

func (g Gallery) columns() int {
	return ColumnsFor(g.mode, g.width)
}

// MoveRow moves the cursor one layout row up (-1) or down (+1).
func (g *Gallery) MoveRow(delta int) {
	n := len(g.records)
	if n == 0 {
		return
	}
	cols := g.columns()
	next := g.cursor + delta*cols
	switch {
	case next < 0:
		return
	case next >= n:
		// Jump to the last card only if it sits on a later row.
		if (n-1)/cols == g.cursor/cols {
			return
		}
		next = n - 1
	}
	g.cursor = next
	g.clampSwatch()
	g.Refresh()
}

// MoveSwatch moves the swatch cursor left (-1) or right (+1), stepping to
// the neighbouring palette at either end. In compact mode it moves between
// palettes directly.
func (g *Gallery) MoveSwatch(delta int) {
	n := len(g.records)
	if n == 0 {
		return
	}
	if g.mode == gallery.ModeCompact {
		next := g.cursor + delta
		if next >= 0 && next < n {
			g.cursor = next
			g.swatch = 0
			g.Refresh()
		}
		return
	}

	next := g.swatch + delta
	switch {
	case next < 0:
		if g.cursor == 0 {
			return
		}
		g.cursor--
		g.swatch = g.records[g.cursor].Len() - 1
	case next >= g.records[g.cursor].Len():
		if g.cursor == n-1 {
			return
		}
		g.cursor++
		g.swatch = 0
	default:
		g.swatch = next
	}
	g.Refresh()
}

func (g *Gallery) clampSwatch() {
	if last := g.records[g.cursor].Len() - 1; g.swatch > last {
		g.swatch = last
	}
}

// Refresh re-renders every card into the viewport and scrolls the selected
// row into view. Call it after anything that changes what a card shows.
func (g *Gallery) Refresh() {
	if g.theme == nil || g.width <= 0 {
		return
	}
	if len(g.records) == 0 {
		g.rowStart, g.rowEnd = nil, nil
		g.viewport.SetContent(g.placeholder())
		g.viewport.SetYOffset(0)
		return
	}

	cols := g.columns()
	cardWidth := g.width / cols
	g.rowStart = g.rowStart[:0]
	g.rowEnd = g.rowEnd[:0]

	var rows []string
	line := 0
	for i := 0; i < len(g.records); i += cols {
		end := min(i+cols, len(g.records))
		cards := make([]string, 0, end-i)
		for j := i; j < end; j++ {
			cursor := -1
			if j == g.cursor {
				cursor = g.swatch
			}
			cards = append(cards, RenderCard(CardInput{
				Record:       g.records[j],
				Mode:         g.mode,
				Selected:     j == g.cursor,
				SwatchCursor: cursor,
				Acks:         g.acks,
				Theme:        g.theme,
				Width:        cardWidth,
			}))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		h := lipgloss.Height(row)
		g.rowStart = append(g.rowStart, line)
		g.rowEnd = append(g.rowEnd, line+h)
		line += h
		rows = append(rows, row)
	}

	g.viewport.SetContent(strings.Join(rows, "\n"))
	g.scrollToCursor()
}

func (g *Gallery) scrollToCursor() {
	row := g.cursor / g.columns()
	if row >= len(g.rowStart) {
		return
	}
	top, bottom := g.rowStart[row], g.rowEnd[row]
	switch {
	case top < g.viewport.YOffset:
		g.viewport.SetYOffset(top)
	case bottom > g.viewport.YOffset+g.viewport.Height:
		g.viewport.SetYOffset(max(bottom-g.viewport.Height, top))
	}
}

func (g Gallery) placeholder() string {
	th := g.theme
	title := th.NewStyle().Bold(true).Foreground(th.Text).Render("No matching palettes")
	hint := th.NewStyle().Foreground(th.Dim).Render("Try searching for a specific hex code like #FF0000")
	block := lipgloss.JoinVertical(lipgloss.Center, "", title, hint)
	return th.NewStyle().
		Width(g.width).
		Align(lipgloss.Center).
		PaddingTop(max(g.height/3-1, 0)).
		Render(block)
}

func (g Gallery) View() string {
	if g.width <= 0 || g.height <= 0 {
		return ""
	}
	return g.viewport.View()
}
