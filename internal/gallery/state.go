package gallery

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSortKey     = errors.New("unknown sort key")
	ErrUnknownDisplayMode = errors.New("unknown display mode")
)

// SortKey selects the order of query results.
type SortKey int

const (
	SortByID SortKey = iota
	SortByColorCount
)

// String returns the label shown in the sort selector.
func (k SortKey) String() string {
	switch k {
	case SortByColorCount:
		return "Color Count"
	default:
		return "Original Order"
	}
}

// ParseSortKey parses the CLI spelling of a sort key ("id" or "count").
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "id", "":
		return SortByID, nil
	case "count":
		return SortByColorCount, nil
	}
	return SortByID, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// DisplayMode is the density used to render palettes.
type DisplayMode int

const (
	ModeGrid DisplayMode = iota
	ModeCompact
	ModeList
)

var modeNames = [...]string{"grid", "compact", "list"}

func (m DisplayMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return modeNames[0]
	}
	return modeNames[m]
}

// Next returns the following mode, wrapping from list back to grid.
func (m DisplayMode) Next() DisplayMode {
	return (m + 1) % DisplayMode(len(modeNames))
}

// Modes returns all display modes in toggle order.
func Modes() []DisplayMode {
	return []DisplayMode{ModeGrid, ModeCompact, ModeList}
}

func ParseDisplayMode(s string) (DisplayMode, error) {
	for i, name := range modeNames {
		if s == name {
			return DisplayMode(i), nil
		}
	}
	return ModeGrid, fmt.Errorf("%w: %q", ErrUnknownDisplayMode, s)
}

// State is the per-session view state. It starts at its defaults and is only
// changed through its setters; each setter reports whether anything changed.
type State struct {
	search string
	sort   SortKey
	mode   DisplayMode
}

// NewState returns the default view state: empty search, original order,
// grid display.
func NewState() *State {
	return &State{sort: SortByID, mode: ModeGrid}
}

func (s *State) Search() string { return s.search }
func (s *State) Sort() SortKey { return s.sort }
func (s *State) Mode() DisplayMode { return s.mode }

func (s *State) SetSearch(term string) bool {
	if s.search == term {
		return false
	}
	s.search = term
	return true
}

func (s *State) SetSort(k SortKey) bool {
	if s.sort == k {
		return false
	}
	s.sort = k
	return true
}

// ToggleSort switches between the two sort keys.
func (s *State) ToggleSort() {
	if s.sort == SortByID {
		s.sort = SortByColorCount
	} else {
		s.sort = SortByID
	}
}

func (s *State) SetMode(m DisplayMode) bool {
	if s.mode == m {
		return false
	}
	s.mode = m
	return true
}
