package app

import "github.com/pfassina/figpal/internal/panel"

// copiedMsg reports the outcome of a clipboard write. For a copy-all the key
// is the zero value and count holds the number of colors.
type copiedMsg struct {
	key   panel.SwatchKey
	text  string
	all   bool
	count int
	ok    bool
}

// ackExpiredMsg ends the acknowledgment window of one swatch. It is ignored
// unless gen is still the swatch's latest generation.
type ackExpiredMsg struct {
	key panel.SwatchKey
	gen int
}
