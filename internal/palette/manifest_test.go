package palette

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Default(t *testing.T) {
	records, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) == 0 {
		t.Fatal("bundled manifest parsed to zero records")
	}
	for _, r := range records {
		if r.Len() == 0 {
			t.Errorf("record %s has no colors", r.ID)
		}
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palettes.txt")
	if err := os.WriteFile(path, []byte("#111111\nnothing here\n#222222,#333333\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[1].ID != "003" {
		t.Errorf("second id = %q, want %q", records[1].ID, "003")
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing manifest")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap fs.ErrNotExist", err)
	}
}
