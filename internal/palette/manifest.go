package palette

import (
	_ "embed"
	"fmt"
	"os"
)

// DefaultManifest is the palette collection bundled with the binary.
//
//go:embed manifest.txt
var DefaultManifest string

// Load reads and parses the manifest at path. An empty path selects the
// bundled manifest.
func Load(path string) ([]Record, error) {
	if path == "" {
		return Parse(DefaultManifest), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return Parse(string(data)), nil
}
