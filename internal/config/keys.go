package config

// Key actions that can be remapped from the [keys] table of config.toml.
const (
	ActionSearch     = "search"
	ActionUp         = "up"
	ActionDown       = "down"
	ActionLeft       = "left"
	ActionRight      = "right"
	ActionCopy       = "copy"
	ActionCopyAll    = "copy_all"
	ActionToggleSort = "toggle_sort"
	ActionGrid       = "grid"
	ActionCompact    = "compact"
	ActionList       = "list"
	ActionCycleMode  = "cycle_mode"
	ActionHelp       = "help"
	ActionQuit       = "quit"
)

// DefaultKeys returns the default key sequences for every action.
func DefaultKeys() map[string][]string {
	return map[string][]string{
		ActionSearch:     {"/"},
		ActionUp:         {"up", "k"},
		ActionDown:       {"down", "j"},
		ActionLeft:       {"left", "h"},
		ActionRight:      {"right", "l"},
		ActionCopy:       {"enter", " ", "c"},
		ActionCopyAll:    {"y"},
		ActionToggleSort: {"s"},
		ActionGrid:       {"1"},
		ActionCompact:    {"2"},
		ActionList:       {"3"},
		ActionCycleMode:  {"tab"},
		ActionHelp:       {"?"},
		ActionQuit:       {"q", "ctrl+c"},
	}
}

// KeyMap returns the default bindings with cfg.Keys overrides applied.
func (c Config) KeyMap() map[string][]string {
	keys := DefaultKeys()
	for action, seq := range c.Keys {
		if _, ok := keys[action]; ok && len(seq) > 0 {
			keys[action] = seq
		}
	}
	return keys
}
