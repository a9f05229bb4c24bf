package app

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/pfassina/figpal/internal/config"
	"github.com/pfassina/figpal/internal/gallery"
	"github.com/pfassina/figpal/internal/palette"
	"github.com/pfassina/figpal/internal/panel"
)

type fakeClipboard struct {
	writes []string
	err    error
}

func (f *fakeClipboard) Write(text string) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, text)
	return nil
}

const testManifest = `#FF0000,#00FF00
#112233,#445566,#778899,#aabbcc
#EFEFEF
#000000,#ffffff,#ef1234`

func newTestApp(t *testing.T, clip *fakeClipboard) *App {
	t.Helper()
	a := New(palette.Parse(testManifest), Options{Clipboard: clip})
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return a
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to the app and returns the follow-up command.
func send(a *App, msg tea.Msg) tea.Cmd {
	_, cmd := a.Update(msg)
	return cmd
}

func typeText(a *App, text string) {
	for _, r := range text {
		send(a, keyPress(string(r)))
	}
}

func resultIDs(a *App) []string {
	ids := make([]string, len(a.results))
	for i, r := range a.results {
		ids[i] = r.ID
	}
	return ids
}

func TestNew_Defaults(t *testing.T) {
	a := newTestApp(t, &fakeClipboard{})

	if a.state.Search() != "" || a.state.Sort() != gallery.SortByID || a.state.Mode() != gallery.ModeGrid {
		t.Errorf("unexpected initial state: %q %v %v", a.state.Search(), a.state.Sort(), a.state.Mode())
	}
	if diff := cmp.Diff([]string{"001", "002", "003", "004"}, resultIDs(a)); diff != "" {
		t.Errorf("initial results (-want +got):\n%s", diff)
	}
	view := a.View()
	for _, want := range []string{"FigurePalette", "Found 4 unique color collections", "Palette ID 001"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSearch_FiltersAsYouType(t *testing.T) {
	a := newTestApp(t, &fakeClipboard{})

	send(a, keyPress("/"))
	if a.focused != focusSearch {
		t.Fatal("/ did not focus the search bar")
	}
	typeText(a, "#ef")

	if a.state.Search() != "#ef" {
		t.Errorf("search term = %q, want #ef", a.state.Search())
	}
	if diff := cmp.Diff([]string{"003", "004"}, resultIDs(a)); diff != "" {
		t.Errorf("results (-want +got):\n%s", diff)
	}

	// Keys that are bindings in the gallery are plain text while searching.
	typeText(a, "q")
	if a.state.Search() != "#efq" {
		t.Errorf("search term = %q, want #efq", a.state.Search())
	}

	send(a, keyPress("ctrl+u"))
	if a.state.Search() != "" || len(a.results) != 4 {
		t.Errorf("ctrl+u did not clear the search: %q, %d results", a.state.Search(), len(a.results))
	}

	send(a, keyPress("esc"))
	if a.focused != focusGallery {
		t.Error("esc did not leave the search bar")
	}
}

func TestSearch_EmptyResultShowsPlaceholder(t *testing.T) {
	a := newTestApp(t, &fakeClipboard{})

	send(a, keyPress("/"))
	typeText(a, "zzz")
	send(a, keyPress("enter"))

	if len(a.results) != 0 {
		t.Fatalf("got %d results, want 0", len(a.results))
	}
	view := a.View()
	if !strings.Contains(view, "No matching palettes") {
		t.Errorf("view missing placeholder:\n%s", view)
	}
	if !strings.Contains(view, "Found 0 unique color collections") {
		t.Error("view missing zero count")
	}
}

func TestToggleSort(t *testing.T) {
	a := newTestApp(t, &fakeClipboard{})

	send(a, keyPress("s"))
	if a.state.Sort() != gallery.SortByColorCount {
		t.Fatalf("sort = %v, want count", a.state.Sort())
	}
	if diff := cmp.Diff([]string{"002", "004", "001", "003"}, resultIDs(a)); diff != "" {
		t.Errorf("count order (-want +got):\n%s", diff)
	}
	if !strings.Contains(a.View(), "Color Count") {
		t.Error("view does not show the count sort label")
	}

	send(a, keyPress("s"))
	if diff := cmp.Diff([]string{"001", "002", "003", "004"}, resultIDs(a)); diff != "" {
		t.Errorf("id order (-want +got):\n%s", diff)
	}
}

func TestDisplayModeKeys(t *testing.T) {
	a := newTestApp(t, &fakeClipboard{})
	before := resultIDs(a)

	tests := []struct {
		key  string
		want gallery.DisplayMode
	}{
		{"2", gallery.ModeCompact},
		{"3", gallery.ModeList},
		{"1", gallery.ModeGrid},
		{"tab", gallery.ModeCompact},
		{"tab", gallery.ModeList},
		{"tab", gallery.ModeGrid},
	}
	for _, tt := range tests {
		send(a, keyPress(tt.key))
		if a.state.Mode() != tt.want {
			t.Errorf("after %q mode = %v, want %v", tt.key, a.state.Mode(), tt.want)
		}
	}
	if diff := cmp.Diff(before, resultIDs(a)); diff != "" {
		t.Errorf("mode change altered the result set (-want +got):\n%s", diff)
	}
}

func TestCopySwatch_AckLifecycle(t *testing.T) {
	clip := &fakeClipboard{}
	a := newTestApp(t, clip)

	send(a, keyPress("l")) // second swatch of 001
	cmd := send(a, keyPress("c"))
	if cmd == nil {
		t.Fatal("copy returned no command")
	}
	msg, ok := cmd().(copiedMsg)
	if !ok {
		t.Fatalf("copy command returned %T", cmd())
	}
	if diff := cmp.Diff([]string{"#00FF00"}, clip.writes); diff != "" {
		t.Errorf("clipboard writes (-want +got):\n%s", diff)
	}

	tick := send(a, msg)
	if tick == nil {
		t.Fatal("successful copy did not schedule an expiry")
	}
	key := panel.SwatchKey{ID: "001", Index: 1}
	if !a.acks.Active(key) {
		t.Fatal("ack not active after copy")
	}
	if !strings.Contains(a.View(), panel.AckText) {
		t.Error("view does not show the ack")
	}
	if a.status.Clipboard() != "copied #00FF00" {
		t.Errorf("status label = %q", a.status.Clipboard())
	}

	// A second copy restarts the window; the first expiry is stale.
	send(a, copiedMsg{key: key, text: "#00FF00", count: 1, ok: true})
	send(a, ackExpiredMsg{key: key, gen: 1})
	if !a.acks.Active(key) {
		t.Fatal("stale expiry cleared a restarted ack")
	}
	send(a, ackExpiredMsg{key: key, gen: 2})
	if a.acks.Active(key) {
		t.Error("latest expiry did not clear the ack")
	}
	if strings.Contains(a.View(), panel.AckText) {
		t.Error("view still shows the ack after expiry")
	}
}

func TestCopySwatch_FailureShowsNothing(t *testing.T) {
	a := newTestApp(t, &fakeClipboard{err: errors.New("no clipboard")})

	cmd := send(a, keyPress("enter"))
	if cmd == nil {
		t.Fatal("copy returned no command")
	}
	if next := send(a, cmd()); next != nil {
		t.Error("failed copy scheduled a follow-up")
	}
	if a.acks.Len() != 0 {
		t.Error("failed copy shows an ack")
	}
	if a.status.Clipboard() != "" {
		t.Errorf("failed copy set status label %q", a.status.Clipboard())
	}
	if strings.Contains(a.View(), panel.AckText) {
		t.Error("view shows an ack after a failed copy")
	}
}

func TestCopySwatch_FilteredAwayBeforeAck(t *testing.T) {
	a := newTestApp(t, &fakeClipboard{})

	cmd := send(a, keyPress("c"))
	msg := cmd()

	send(a, keyPress("/"))
	typeText(a, "#ef")
	send(a, msg)

	if a.acks.Len() != 0 {
		t.Error("ack started for a swatch that is no longer shown")
	}
}

func TestCopySwatch_TeardownOnFilter(t *testing.T) {
	a := newTestApp(t, &fakeClipboard{})

	send(a, send(a, keyPress("c"))())
	if a.acks.Len() != 1 {
		t.Fatal("ack not started")
	}

	send(a, keyPress("/"))
	typeText(a, "#ef")
	if a.acks.Len() != 0 {
		t.Error("ack of a filtered-away swatch survived")
	}
	// Its pending expiry is a no-op.
	send(a, ackExpiredMsg{key: panel.SwatchKey{ID: "001", Index: 0}, gen: 1})
}

func TestCopyAll(t *testing.T) {
	clip := &fakeClipboard{}
	a := newTestApp(t, clip)

	cmd := send(a, keyPress("y"))
	if cmd == nil {
		t.Fatal("copy all returned no command")
	}
	if next := send(a, cmd()); next != nil {
		t.Error("copy all should not schedule a swatch ack")
	}
	if diff := cmp.Diff([]string{"#FF0000,#00FF00"}, clip.writes); diff != "" {
		t.Errorf("clipboard writes (-want +got):\n%s", diff)
	}
	if a.status.Clipboard() != "copied 2 colors" {
		t.Errorf("status label = %q", a.status.Clipboard())
	}

	// Copy-all is a grid card action only.
	send(a, keyPress("3"))
	if cmd := send(a, keyPress("y")); cmd != nil {
		t.Error("copy all fired outside grid mode")
	}
}

func TestCompactModeHasNoSwatchCopy(t *testing.T) {
	a := newTestApp(t, &fakeClipboard{})
	send(a, send(a, keyPress("c"))())

	send(a, keyPress("2"))
	if a.acks.Len() != 0 {
		t.Error("switching to compact kept swatch acks")
	}
	if cmd := send(a, keyPress("c")); cmd != nil {
		t.Error("copy fired in compact mode")
	}
}

func TestHelpOverlay(t *testing.T) {
	a := newTestApp(t, &fakeClipboard{})

	send(a, keyPress("?"))
	if !a.showHelp {
		t.Fatal("? did not open help")
	}
	if !strings.Contains(a.View(), "Press any key to close") {
		t.Error("help overlay not rendered")
	}

	send(a, keyPress("s"))
	if a.showHelp {
		t.Error("key did not close help")
	}
	if a.state.Sort() != gallery.SortByID {
		t.Error("closing help also toggled the sort")
	}
}

func TestQuit(t *testing.T) {
	a := newTestApp(t, &fakeClipboard{})

	for _, k := range []string{"q", "ctrl+c"} {
		cmd := send(a, keyPress(k))
		if cmd == nil {
			t.Fatalf("%s returned no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s did not quit", k)
		}
	}
}

func TestKeyOverrides(t *testing.T) {
	keys := config.DefaultKeys()
	keys[config.ActionToggleSort] = []string{"o"}

	a := New(palette.Parse(testManifest), Options{Clipboard: &fakeClipboard{}, Keys: keys})
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	send(a, keyPress("s"))
	if a.state.Sort() != gallery.SortByID {
		t.Error("overridden default key still toggles sort")
	}
	send(a, keyPress("o"))
	if a.state.Sort() != gallery.SortByColorCount {
		t.Error("override key did not toggle sort")
	}
}

func TestView_Footer(t *testing.T) {
	a := newTestApp(t, &fakeClipboard{})

	view := a.View()
	lines := strings.Split(view, "\n")
	last := lines[len(lines)-1]
	want := fmt.Sprintf("FigurePalette © %d", time.Now().Year())
	if !strings.Contains(last, want) || !strings.Contains(last, "Parsed from text manifest") {
		t.Errorf("last line = %q, want footer", last)
	}
}

func TestWindowTooSmall(t *testing.T) {
	a := newTestApp(t, &fakeClipboard{})
	a.Update(tea.WindowSizeMsg{Width: 30, Height: 10})

	if !strings.Contains(a.View(), "Window too small") {
		t.Error("small window placeholder not shown")
	}
}

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(100, 40)
	if got := l.HeaderHeight + l.GalleryHeight + l.StatusHeight + l.HelpHeight + l.FooterHeight; got != 40 {
		t.Errorf("layout heights sum to %d, want 40", got)
	}
	if l := ComputeLayout(0, 0); l.Width != 1 || l.GalleryHeight != 1 {
		t.Errorf("degenerate layout = %+v", l)
	}
}
