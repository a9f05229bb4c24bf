// Package export writes a palette result set in derived formats.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pfassina/figpal/internal/palette"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
	// ErrNeedsPath is returned when a format that cannot stream is asked to
	// write to stdout.
	ErrNeedsPath = errors.New("format needs a file path")
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatSQLite   Format = "sqlite"
)

// DefaultTitle heads Markdown and HTML documents when no title is given.
const DefaultTitle = "FigurePalette"

func Formats() []Format {
	return []Format{FormatJSON, FormatMarkdown, FormatHTML, FormatSQLite}
}

// ParseFormat accepts a format name or its common file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	case "sqlite", "db":
		return FormatSQLite, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// Write exports records in format to path. A path of "-" writes text formats
// to stdout.
func Write(stdout io.Writer, format Format, path string, records []palette.Record, title string) error {
	if title == "" {
		title = DefaultTitle
	}

	if format == FormatSQLite {
		if path == "-" || path == "" {
			return fmt.Errorf("%s: %w", format, ErrNeedsPath)
		}
		return writeDB(path, records)
	}

	if path == "-" || path == "" {
		return render(stdout, format, records, title)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f, format, records, title); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func render(w io.Writer, format Format, records []palette.Record, title string) error {
	switch format {
	case FormatJSON:
		return JSON(w, records)
	case FormatMarkdown:
		return Markdown(w, records, title)
	case FormatHTML:
		return HTML(w, records, title)
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

func writeDB(path string, records []palette.Record) error {
	db, err := OpenDB(path)
	if err != nil {
		return err
	}
	if err := db.WriteRecords(records); err != nil {
		db.Close()
		return err
	}
	return db.Close()
}
