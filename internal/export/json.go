package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfassina/figpal/internal/palette"
)

// JSON writes records as an indented array. An empty result is "[]", never
// null.
func JSON(w io.Writer, records []palette.Record) error {
	if records == nil {
		records = []palette.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
