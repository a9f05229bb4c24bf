package palette

import (
	"fmt"
	"strings"
)

// Record is one palette parsed from a manifest line.
type Record struct {
	ID     string   `json:"id"`
	Colors []string `json:"colors"`
	Vibe   string   `json:"vibe,omitempty"`
}

// FormatID returns the id for a 1-based manifest line position.
func FormatID(line int) string {
	return fmt.Sprintf("%03d", line)
}

// Len returns the number of colors in the palette.
func (r Record) Len() int {
	return len(r.Colors)
}

// Joined returns the colors as a single comma-separated string, the payload
// of a "copy all" action.
func (r Record) Joined() string {
	return strings.Join(r.Colors, ",")
}
