package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pfassina/figpal/internal/clipboard"
	"github.com/pfassina/figpal/internal/palette"
	"github.com/pfassina/figpal/internal/panel"
)

// AckDuration is how long a swatch shows the copied acknowledgment.
const AckDuration = 1500 * time.Millisecond

// copySwatchCmd writes one raw color string, malformed or not, to the
// clipboard. Errors are swallowed: the copy is best-effort and a failure
// only means no acknowledgment is shown.
func copySwatchCmd(clip clipboard.Writer, key panel.SwatchKey, color string) tea.Cmd {
	return func() tea.Msg {
		err := clip.Write(color)
		return copiedMsg{key: key, text: color, count: 1, ok: err == nil}
	}
}

// copyAllCmd writes every color of r joined with commas.
func copyAllCmd(clip clipboard.Writer, r palette.Record) tea.Cmd {
	return func() tea.Msg {
		text := r.Joined()
		err := clip.Write(text)
		return copiedMsg{text: text, all: true, count: r.Len(), ok: err == nil}
	}
}

func expireAckCmd(key panel.SwatchKey, gen int) tea.Cmd {
	return tea.Tick(AckDuration, func(time.Time) tea.Msg {
		return ackExpiredMsg{key: key, gen: gen}
	})
}
