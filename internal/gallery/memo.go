package gallery

import "github.com/pfassina/figpal/internal/palette"

// Memo caches the last Query result for a fixed record set.
type Memo struct {
	records []palette.Record

	valid  bool
	term   string
	key    SortKey
	result []palette.Record
}

func NewMemo(records []palette.Record) *Memo {
	return &Memo{records: records}
}

// Get returns Query(records, term, key), recomputing only when the inputs
// differ from the previous call.
func (m *Memo) Get(term string, key SortKey) []palette.Record {
	if m.valid && m.term == term && m.key == key {
		return m.result
	}
	m.result = Query(m.records, term, key)
	m.term = term
	m.key = key
	m.valid = true
	return m.result
}
