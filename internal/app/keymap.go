package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/pfassina/figpal/internal/config"
)

// keyMap holds the gallery bindings. It satisfies help.KeyMap.
type keyMap struct {
	Search     key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Copy       key.Binding
	CopyAll    key.Binding
	ToggleSort key.Binding
	Grid       key.Binding
	Compact    key.Binding
	List       key.Binding
	CycleMode  key.Binding
	Help       key.Binding
	Quit       key.Binding

	// Active only while the search bar has focus.
	LeaveSearch key.Binding
	ClearSearch key.Binding
}

func newKeyMap(keys map[string][]string) keyMap {
	bind := func(action, desc string) key.Binding {
		seq := keys[action]
		return key.NewBinding(key.WithKeys(seq...), key.WithHelp(helpKeys(seq), desc))
	}
	return keyMap{
		Search:     bind(config.ActionSearch, "search"),
		Up:         bind(config.ActionUp, "up"),
		Down:       bind(config.ActionDown, "down"),
		Left:       bind(config.ActionLeft, "prev swatch"),
		Right:      bind(config.ActionRight, "next swatch"),
		Copy:       bind(config.ActionCopy, "copy color"),
		CopyAll:    bind(config.ActionCopyAll, "copy array (grid)"),
		ToggleSort: bind(config.ActionToggleSort, "toggle sort"),
		Grid:       bind(config.ActionGrid, "grid"),
		Compact:    bind(config.ActionCompact, "compact"),
		List:       bind(config.ActionList, "list"),
		CycleMode:  bind(config.ActionCycleMode, "next mode"),
		Help:       bind(config.ActionHelp, "help"),
		Quit:       bind(config.ActionQuit, "quit"),

		LeaveSearch: key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc/enter", "leave search")),
		ClearSearch: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear search")),
	}
}

// helpKeys renders a key sequence list for the help views.
func helpKeys(seq []string) string {
	names := make([]string, len(seq))
	for i, k := range seq {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Copy, k.ToggleSort, k.CycleMode, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Copy, k.CopyAll, k.ToggleSort},
		{k.Grid, k.Compact, k.List, k.CycleMode},
		{k.Search, k.LeaveSearch, k.ClearSearch},
		{k.Help, k.Quit},
	}
}
