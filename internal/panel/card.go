package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pfassina/figpal/internal/gallery"
	"github.com/pfassina/figpal/internal/palette"
	"github.com/pfassina/figpal/internal/theme"
)

// CardInput is everything a render strategy needs to draw one palette.
type CardInput struct {
	Record       palette.Record
	Mode         gallery.DisplayMode
	Selected     bool
	SwatchCursor int // -1 when no swatch is selected
	Acks         *Acks
	Theme        *theme.Theme
	Width        int // outer width, border included
}

// RenderCard draws a palette in the density of in.Mode.
func RenderCard(in CardInput) string {
	switch in.Mode {
	case gallery.ModeCompact:
		return renderCompact(in)
	case gallery.ModeList:
		return renderList(in)
	default:
		return renderGrid(in)
	}
}

func (in CardInput) frame() lipgloss.Style {
	th := in.Theme
	border := th.Border
	if in.Selected {
		border = th.Accent
	}
	return th.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(in.Width-2, 1))
}

// innerWidth is the usable content width inside border and padding.
func (in CardInput) innerWidth() int {
	return max(in.Width-4, 1)
}

func (in CardInput) swatches(size swatchSize) []string {
	out := make([]string, len(in.Record.Colors))
	for i, c := range in.Record.Colors {
		key := SwatchKey{ID: in.Record.ID, Index: i}
		acked := in.Acks != nil && in.Acks.Active(key)
		out[i] = renderSwatch(in.Theme, c, size, in.Selected && i == in.SwatchCursor, acked)
	}
	return out
}

func renderGrid(in CardInput) string {
	th := in.Theme
	inner := in.innerWidth()
	dim := th.NewStyle().Foreground(th.Dim)

	header := dim.Render("Palette ID " + in.Record.ID)
	body := wrapSwatches(in.swatches(sizeLarge), sizeLarge.w, inner)
	rule := dim.Render(strings.Repeat("─", inner))

	count := dim.Render(fmt.Sprintf("%d Colors", in.Record.Len()))
	actionStyle := th.NewStyle().Foreground(th.Subtle).Bold(true)
	if in.Selected {
		actionStyle = actionStyle.Foreground(th.Accent)
	}
	action := actionStyle.Render("y Copy Array")
	gap := max(inner-lipgloss.Width(count)-lipgloss.Width(action), 1)
	footer := count + strings.Repeat(" ", gap) + action

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body, rule, footer)
	return in.frame().Render(content)
}

// compactDot is the glyph drawn for each circle in the compact density.
const compactDot = "●"

func renderCompact(in CardInput) string {
	th := in.Theme
	inner := in.innerWidth()

	var rows []string
	var row strings.Builder
	n := 0
	for _, c := range in.Record.Colors {
		if n == inner {
			rows = append(rows, row.String())
			row.Reset()
			n = 0
		}
		row.WriteString(th.NewStyle().Foreground(lipgloss.Color(c)).Render(compactDot))
		n++
	}
	rows = append(rows, row.String())

	label := th.NewStyle().Foreground(th.Dim).Render("#" + in.Record.ID)
	content := lipgloss.JoinVertical(lipgloss.Left, strings.Join(rows, "\n"), label)
	return in.frame().Render(content)
}

// listLabelWidth is the column reserved for the "#nnn" label in list rows.
const listLabelWidth = 6

func renderList(in CardInput) string {
	th := in.Theme
	inner := in.innerWidth()

	labelStyle := th.NewStyle().Foreground(th.Dim).Width(listLabelWidth)
	if in.Selected {
		labelStyle = labelStyle.Foreground(th.Accent).Bold(true)
	}
	label := labelStyle.Render("#" + in.Record.ID)
	body := wrapSwatches(in.swatches(sizeMedium), sizeMedium.w, inner-listLabelWidth-1)

	content := lipgloss.JoinHorizontal(lipgloss.Center, label, " ", body)
	return in.frame().Render(content)
}
