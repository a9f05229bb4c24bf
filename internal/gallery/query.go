package gallery

import (
	"cmp"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/pfassina/figpal/internal/palette"
)

// Matches reports whether r is selected by the search term. The id is
// matched case-sensitively, colors case-insensitively; the empty term
// matches everything.
func Matches(r palette.Record, term string) bool {
	if strings.Contains(r.ID, term) {
		return true
	}
	lower := strings.ToLower(term)
	return lo.SomeBy(r.Colors, func(c string) bool {
		return strings.Contains(strings.ToLower(c), lower)
	})
}

// Query filters records by term and orders them by key. The input slice is
// never modified; the result is a new slice, possibly empty.
func Query(records []palette.Record, term string, key SortKey) []palette.Record {
	result := lo.Filter(records, func(r palette.Record, _ int) bool {
		return Matches(r, term)
	})

	switch key {
	case SortByColorCount:
		slices.SortStableFunc(result, func(a, b palette.Record) int {
			return cmp.Compare(b.Len(), a.Len())
		})
	default:
		slices.SortStableFunc(result, func(a, b palette.Record) int {
			return strings.Compare(a.ID, b.ID)
		})
	}
	return result
}
