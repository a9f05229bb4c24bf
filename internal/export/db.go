package export

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/pfassina/figpal/internal/palette"
)

const schema = `
CREATE TABLE IF NOT EXISTS palettes (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    color_count INTEGER NOT NULL,
    vibe TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS colors (
    palette_id TEXT NOT NULL REFERENCES palettes(id) ON DELETE CASCADE,
    idx INTEGER NOT NULL,
    hex TEXT NOT NULL,
    PRIMARY KEY (palette_id, idx)
);
`

// DB wraps the SQLite database connection.
type DB struct {
	conn *sql.DB
}

// OpenDB opens or creates the database at the given path.
func OpenDB(path string) (*DB, error) {
	return open(path + "?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
}

// OpenMemory opens an in-memory database (for testing).
func OpenMemory() (*DB, error) {
	return open(":memory:?_pragma=foreign_keys(on)")
}

func open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// A second pooled connection to ":memory:" would see an empty database.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(schema); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, fmt.Errorf("init schema: %w (close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// WriteRecords replaces the stored palettes with records in one transaction.
// position keeps the result order.
func (db *DB) WriteRecords(records []palette.Record) (err error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM colors`); err != nil {
		return fmt.Errorf("clear colors: %w", err)
	}
	if _, err = tx.Exec(`DELETE FROM palettes`); err != nil {
		return fmt.Errorf("clear palettes: %w", err)
	}

	insPalette, err := tx.Prepare(`INSERT INTO palettes (id, position, color_count, vibe) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare palette insert: %w", err)
	}
	defer insPalette.Close()
	insColor, err := tx.Prepare(`INSERT INTO colors (palette_id, idx, hex) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare color insert: %w", err)
	}
	defer insColor.Close()

	for pos, r := range records {
		if _, err = insPalette.Exec(r.ID, pos, r.Len(), r.Vibe); err != nil {
			return fmt.Errorf("insert palette %s: %w", r.ID, err)
		}
		for i, c := range r.Colors {
			if _, err = insColor.Exec(r.ID, i, c); err != nil {
				return fmt.Errorf("insert color %s/%d: %w", r.ID, i, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Palettes returns the stored palettes in their written order.
func (db *DB) Palettes() ([]palette.Record, error) {
	rows, err := db.conn.Query(`
		SELECT p.id, p.vibe, c.hex
		FROM palettes p
		LEFT JOIN colors c ON c.palette_id = p.id
		ORDER BY p.position, c.idx`)
	if err != nil {
		return nil, fmt.Errorf("query palettes: %w", err)
	}
	defer rows.Close()

	var out []palette.Record
	for rows.Next() {
		var id, vibe string
		var hex sql.NullString
		if err := rows.Scan(&id, &vibe, &hex); err != nil {
			return nil, fmt.Errorf("scan palette: %w", err)
		}
		if len(out) == 0 || out[len(out)-1].ID != id {
			out = append(out, palette.Record{ID: id, Vibe: vibe, Colors: []string{}})
		}
		if hex.Valid {
			last := &out[len(out)-1]
			last.Colors = append(last.Colors, hex.String)
		}
	}
	return out, rows.Err()
}
