package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pfassina/figpal/internal/gallery"
	"github.com/pfassina/figpal/internal/palette"
	"github.com/pfassina/figpal/internal/theme"
)

// AckText is drawn over a swatch right after it was copied.
const AckText = "COPIED!"

// SwatchKey identifies one rendered swatch.
type SwatchKey struct {
	ID    string
	Index int
}

// Acks holds the transient "copied" acknowledgment of each swatch.
// Every Start hands out a new generation; Expire only clears an ack whose
// generation still matches, so copying again restarts the window instead of
// stacking a second one.
type Acks struct {
	gen    int
	active map[SwatchKey]int
}

func NewAcks() *Acks {
	return &Acks{active: make(map[SwatchKey]int)}
}

// Start marks k as copied and returns the generation to pass to Expire.
func (a *Acks) Start(k SwatchKey) int {
	a.gen++
	a.active[k] = a.gen
	return a.gen
}

// Expire clears k if gen is its latest generation. It reports whether the
// ack was cleared.
func (a *Acks) Expire(k SwatchKey, gen int) bool {
	if cur, ok := a.active[k]; ok && cur == gen {
		delete(a.active, k)
		return true
	}
	return false
}

func (a *Acks) Active(k SwatchKey) bool {
	_, ok := a.active[k]
	return ok
}

func (a *Acks) Len() int {
	return len(a.active)
}

// Retain drops the acks of swatches that are no longer rendered: records that
// left the result set, and every swatch while the compact mode (which has no
// interactive swatches) is shown.
func (a *Acks) Retain(records []palette.Record, mode gallery.DisplayMode) {
	if mode == gallery.ModeCompact {
		clear(a.active)
		return
	}
	sizes := make(map[string]int, len(records))
	for _, r := range records {
		sizes[r.ID] = r.Len()
	}
	for k := range a.active {
		if n, ok := sizes[k.ID]; !ok || k.Index >= n {
			delete(a.active, k)
		}
	}
}

type swatchSize struct {
	w, h int
}

var (
	sizeLarge  = swatchSize{w: 9, h: 3}
	sizeMedium = swatchSize{w: 9, h: 2}
)

// renderSwatch draws one color block with its hex label below.
func renderSwatch(th *theme.Theme, color string, size swatchSize, selected, acked bool) string {
	content := ""
	if acked {
		content = th.NewStyle().
			Bold(true).
			Foreground(theme.AckColor(color)).
			Render(AckText)
	}

	block := th.NewStyle().
		Background(lipgloss.Color(color)).
		Width(size.w).
		Height(size.h).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	labelStyle := th.NewStyle().
		Width(size.w).
		Align(lipgloss.Center).
		Foreground(th.Subtle)
	if selected {
		labelStyle = labelStyle.Foreground(th.Accent).Bold(true).Underline(true)
	}
	label := ansi.Truncate(strings.ToUpper(color), size.w, "…")

	return lipgloss.JoinVertical(lipgloss.Left, block, labelStyle.Render(label))
}

// wrapSwatches lays rendered swatches out in rows that fit width.
func wrapSwatches(swatches []string, swatchWidth, width int) string {
	perRow := (width + 1) / (swatchWidth + 1)
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for i := 0; i < len(swatches); i += perRow {
		end := min(i+perRow, len(swatches))
		var cells []string
		for j := i; j < end; j++ {
			if j > i {
				cells = append(cells, " ")
			}
			cells = append(cells, swatches[j])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
