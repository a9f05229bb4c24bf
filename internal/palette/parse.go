package palette

import (
	"strings"

	"github.com/samber/lo"
)

// Parse turns a raw manifest into palette records.
//
// Each line is one palette; tokens are comma separated and only tokens that
// start with '#' are kept. Ids are assigned from the raw line position before
// empty lines are dropped, so ids can have gaps. Parse never fails.
func Parse(raw string) []Record {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var records []Record
	for i, line := range strings.Split(raw, "\n") {
		colors := parseColors(line)
		if len(colors) == 0 {
			continue
		}
		records = append(records, Record{
			ID:     FormatID(i + 1),
			Colors: colors,
		})
	}
	return records
}

func parseColors(line string) []string {
	tokens := lo.Map(strings.Split(line, ","), func(tok string, _ int) string {
		return strings.TrimSpace(tok)
	})
	return lo.Filter(tokens, func(tok string, _ int) bool {
		return strings.HasPrefix(tok, "#")
	})
}
