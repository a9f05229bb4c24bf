package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// LightThreshold is the luma above which a swatch counts as light.
// A luma of exactly 155 is dark.
const LightThreshold = 155

// Acknowledgment text colors drawn over a swatch.
var (
	AckOnLight = lipgloss.Color("#4d4d4d") // black at ~70%
	AckOnDark  = lipgloss.Color("#b3b3b3") // white at ~70%
)

// Luma returns the weighted brightness (R*299 + G*587 + B*114) / 1000 of a
// "#rrggbb" color. Only the first six digits after '#' are read. ok is false
// when the string is too short or any of those digits is not hex.
func Luma(hex string) (luma float64, ok bool) {
	if len(hex) < 7 || hex[0] != '#' {
		return 0, false
	}
	for i := 1; i < 7; i++ {
		if !isHexDigit(hex[i]) {
			return 0, false
		}
	}
	c, err := colorful.Hex(hex[:7])
	if err != nil {
		return 0, false
	}
	r, g, b := c.RGB255()
	return (float64(r)*299 + float64(g)*587 + float64(b)*114) / 1000, true
}

// IsLight reports whether dark text should be drawn over hex. Malformed
// colors are never light.
func IsLight(hex string) bool {
	l, ok := Luma(hex)
	return ok && l > LightThreshold
}

// AckColor picks the "copied" label color for a swatch of the given color.
func AckColor(hex string) lipgloss.Color {
	if IsLight(hex) {
		return AckOnLight
	}
	return AckOnDark
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
