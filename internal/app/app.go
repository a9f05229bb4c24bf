package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/pfassina/figpal/internal/clipboard"
	"github.com/pfassina/figpal/internal/config"
	"github.com/pfassina/figpal/internal/gallery"
	"github.com/pfassina/figpal/internal/logging"
	"github.com/pfassina/figpal/internal/palette"
	"github.com/pfassina/figpal/internal/panel"
	"github.com/pfassina/figpal/internal/theme"
)

type focusedPanel int

const (
	focusGallery focusedPanel = iota
	focusSearch
)

// Options configures a new App. Zero values fall back to defaults.
type Options struct {
	Theme     theme.Theme
	Clipboard clipboard.Writer
	Logger    *log.Logger
	Keys      map[string][]string
}

// App is the top-level Bubble Tea model. It owns the view state and is the
// only component that writes to it.
type App struct {
	state   *gallery.State
	memo    *gallery.Memo
	results []palette.Record

	theme    theme.Theme
	keys     keyMap
	help     help.Model
	search   panel.Search
	gallery  panel.Gallery
	status   panel.Status
	helpView panel.Help
	acks     *panel.Acks
	clip     clipboard.Writer
	logger   *log.Logger

	focused  focusedPanel
	showHelp bool
	width    int
	height   int
	year     int
}

// New builds the model over the parsed records. records are never modified.
func New(records []palette.Record, opts Options) *App {
	th := opts.Theme
	if th.Name == "" {
		th = theme.DefaultTheme()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.System{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	keys := opts.Keys
	if keys == nil {
		keys = config.DefaultKeys()
	}

	acks := panel.NewAcks()
	a := &App{
		state:    gallery.NewState(),
		memo:     gallery.NewMemo(records),
		theme:    th,
		keys:     newKeyMap(keys),
		help:     help.New(),
		search:   panel.NewSearch(),
		gallery:  panel.NewGallery(acks),
		status:   panel.NewStatus(len(records)),
		helpView: panel.NewHelp(),
		acks:     acks,
		clip:     clip,
		logger:   logger,
		focused:  focusGallery,
		year:     time.Now().Year(),
	}
	a.applyTheme()
	a.helpView.SetGroups(a.keys.FullHelp())
	a.gallery.SetMode(a.state.Mode())
	a.status.SetMode(a.state.Mode())
	a.applyQuery()
	return a
}

// applyTheme points every panel at a.theme. The App is always used through a
// pointer so these stay valid.
func (a *App) applyTheme() {
	th := &a.theme
	a.search.SetTheme(th)
	a.gallery.SetTheme(th)
	a.status.SetTheme(th)
	a.helpView.SetTheme(th)

	a.help.Styles = help.Styles{
		ShortKey:       th.NewStyle().Foreground(th.Subtle).Bold(true),
		ShortDesc:      th.NewStyle().Foreground(th.Dim),
		ShortSeparator: th.NewStyle().Foreground(th.Border),
		Ellipsis:       th.NewStyle().Foreground(th.Border),
		FullKey:        th.NewStyle().Foreground(th.Subtle).Bold(true),
		FullDesc:       th.NewStyle().Foreground(th.Dim),
		FullSeparator:  th.NewStyle().Foreground(th.Border),
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Some terminals send transient 0x0 sizes during live resizes; ignore them.
		if msg.Width <= 0 || msg.Height <= 0 {
			return a, nil
		}
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, tea.ClearScreen

	case copiedMsg:
		return a, a.handleCopied(msg)

	case ackExpiredMsg:
		if a.acks.Expire(msg.key, msg.gen) {
			a.gallery.Refresh()
		}
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}
		if a.focused == focusSearch {
			return a, a.updateSearch(msg)
		}
		return a, a.updateGallery(msg)
	}

	// Cursor blink and other input messages.
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	return a, cmd
}

func (a *App) updateSearch(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, a.keys.LeaveSearch):
		a.search.Blur()
		a.focused = focusGallery
		return nil
	case key.Matches(msg, a.keys.ClearSearch):
		a.search.SetValue("")
	default:
		a.search, cmd = a.search.Update(msg)
	}
	if a.state.SetSearch(a.search.Value()) {
		a.applyQuery()
	}
	return cmd
}

func (a *App) updateGallery(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
	case key.Matches(msg, a.keys.Search):
		a.focused = focusSearch
		return a.search.Focus()
	case key.Matches(msg, a.keys.Up):
		a.gallery.MoveRow(-1)
	case key.Matches(msg, a.keys.Down):
		a.gallery.MoveRow(1)
	case key.Matches(msg, a.keys.Left):
		a.gallery.MoveSwatch(-1)
	case key.Matches(msg, a.keys.Right):
		a.gallery.MoveSwatch(1)
	case key.Matches(msg, a.keys.Copy):
		k, color, ok := a.gallery.SelectedSwatch()
		if !ok {
			return nil
		}
		return copySwatchCmd(a.clip, k, color)
	case key.Matches(msg, a.keys.CopyAll):
		if a.state.Mode() != gallery.ModeGrid {
			return nil
		}
		r, ok := a.gallery.Selected()
		if !ok {
			return nil
		}
		return copyAllCmd(a.clip, r)
	case key.Matches(msg, a.keys.ToggleSort):
		a.state.ToggleSort()
		a.applyQuery()
	case key.Matches(msg, a.keys.Grid):
		a.setMode(gallery.ModeGrid)
	case key.Matches(msg, a.keys.Compact):
		a.setMode(gallery.ModeCompact)
	case key.Matches(msg, a.keys.List):
		a.setMode(gallery.ModeList)
	case key.Matches(msg, a.keys.CycleMode):
		a.setMode(a.state.Mode().Next())
	}
	return nil
}

// handleCopied shows the acknowledgment of a successful write. A failed write
// changes nothing.
func (a *App) handleCopied(msg copiedMsg) tea.Cmd {
	if !msg.ok {
		return nil
	}
	if msg.all {
		a.status.SetClipboard(fmt.Sprintf("copied %d colors", msg.count))
		return nil
	}
	a.status.SetClipboard("copied " + strings.ToUpper(msg.text))
	// The swatch may have been filtered away while the write was running.
	if !a.gallery.Visible(msg.key) {
		return nil
	}
	gen := a.acks.Start(msg.key)
	a.gallery.Refresh()
	return expireAckCmd(msg.key, gen)
}

// applyQuery recomputes the result set after a search or sort change and
// tears down acknowledgments of swatches that are gone.
func (a *App) applyQuery() {
	a.results = a.memo.Get(a.state.Search(), a.state.Sort())
	a.acks.Retain(a.results, a.state.Mode())
	a.gallery.SetRecords(a.results)
	a.status.SetCount(len(a.results))
	a.status.SetSort(a.state.Sort())
}

// setMode changes density only. The result set is unchanged.
func (a *App) setMode(m gallery.DisplayMode) {
	if !a.state.SetMode(m) {
		return
	}
	a.logger.Debug("display mode changed", "mode", m)
	a.acks.Retain(a.results, m)
	a.gallery.SetMode(m)
	a.status.SetMode(m)
}

func (a *App) minWindowSize() (minW, minH int) {
	return 60, 16
}

func (a *App) updateLayout() {
	layout := ComputeLayout(a.width, a.height)
	a.search.SetWidth(searchWidth(a.width, lipgloss.Width(a.modeToggle())))
	a.gallery.SetSize(layout.Width, layout.GalleryHeight)
	a.status.SetWidth(a.width)
	a.help.Width = a.width
	a.helpView.SetWidth(min(a.width-4, 64))
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	th := &a.theme
	minW, minH := a.minWindowSize()
	if a.width < minW || a.height < minH {
		msg := fmt.Sprintf("Window too small (%dx%d)\nMinimum supported: %dx%d", a.width, a.height, minW, minH)
		box := th.NewStyle().
			Foreground(th.Text).
			Padding(1, 2).
			Render(msg)
		base := strings.Repeat("\n", max(a.height, 1))
		return overlayCenter(base, box, a.width, a.height)
	}

	layout := ComputeLayout(a.width, a.height)
	body := th.NewStyle().
		Width(layout.Width).
		Height(layout.GalleryHeight).
		MaxHeight(layout.GalleryHeight).
		Render(a.gallery.View())
	helpLine := a.help.ShortHelpView(a.keys.ShortHelp())

	result := lipgloss.JoinVertical(lipgloss.Left, a.headerView(), body, a.status.View(), helpLine, a.footerView(layout.Width))

	if a.showHelp {
		if hv := a.helpView.View(); hv != "" {
			result = overlayCenter(result, hv, a.width, a.height)
		}
	}
	return result
}

func (a *App) footerView(width int) string {
	th := &a.theme
	text := fmt.Sprintf("FigurePalette © %d · Parsed from text manifest", a.year)
	return th.NewStyle().
		Foreground(th.Dim).
		Width(width).
		Align(lipgloss.Center).
		Render(ansi.Truncate(text, width, ""))
}

func (a *App) headerView() string {
	th := &a.theme
	dim := th.NewStyle().Foreground(th.Dim)

	title := th.NewStyle().Bold(true).Foreground(th.Accent).Render("FigurePalette") +
		"  " + dim.Render("Digital Swatch Collection")

	controls := lipgloss.JoinHorizontal(lipgloss.Center, a.search.View(), "  ", a.modeToggle())

	found := th.NewStyle().Foreground(th.Text).Bold(true).Render("Gallery") +
		dim.Render(fmt.Sprintf(" · Found %d unique color collections", len(a.results)))
	sort := dim.Render("Sort by: ") + th.NewStyle().Foreground(th.Subtle).Render(a.state.Sort().String())
	gap := max(a.width-lipgloss.Width(found)-lipgloss.Width(sort), 1)
	summary := found + strings.Repeat(" ", gap) + sort

	lines := strings.Split(lipgloss.JoinVertical(lipgloss.Left, title, controls, summary), "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, a.width, "")
	}
	return strings.Join(lines, "\n")
}

// modeToggle draws the three density options with the active one highlighted.
func (a *App) modeToggle() string {
	th := &a.theme
	var parts []string
	for _, m := range gallery.Modes() {
		style := th.NewStyle().Padding(0, 1).Foreground(th.Subtle)
		if m == a.state.Mode() {
			style = style.Background(th.Accent).Foreground(th.Bg).Bold(true)
		}
		parts = append(parts, style.Render(m.String()))
	}
	return strings.Join(parts, "")
}

func overlayCenter(base, overlay string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, lipgloss.Width(line))
	}

	startRow := max((height-len(overlayLines))/2, 0)
	startCol := max((width-overlayWidth)/2, 0)

	padToCol := func(s string, col int) string {
		// Pad with spaces based on *visible* width (handles ANSI strings safely).
		if w := lipgloss.Width(s); w < col {
			s += strings.Repeat(" ", col-w)
		}
		return s
	}

	for i, overlayLine := range overlayLines {
		row := startRow + i
		if row >= len(baseLines) {
			break
		}

		baseLine := padToCol(baseLines[row], startCol)

		// Keep the left part of the base line, replace the middle with the
		// overlay and keep the right tail, without breaking ANSI sequences.
		left := ansi.Cut(baseLine, 0, startCol)
		right := ansi.Cut(baseLine, startCol+overlayWidth, width)

		baseLines[row] = ansi.Truncate(left+overlayLine+right, width, "")
	}

	return strings.Join(baseLines, "\n")
}
