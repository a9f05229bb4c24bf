package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pfassina/figpal/internal/config"
	"github.com/pfassina/figpal/internal/palette"
)

const testManifest = `#FF0000,#00FF00
#112233,#445566,#778899
#EFEFEF
`

// execRoot runs the root command with args in an isolated config dir and
// returns what was written to stdout and stderr.
func execRoot(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var outBuf, errBuf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.txt")
	if err := os.WriteFile(path, []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func assertContainsAll(t *testing.T, output, label string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in %s output:\n%s", want, label, output)
		}
	}
}

func TestListCommand(t *testing.T) {
	manifest := writeManifest(t)

	out, _, err := execRoot(t, "list", "--manifest", manifest)
	if err != nil {
		t.Fatal(err)
	}
	assertContainsAll(t, out, "list", []string{"ID", "COUNT", "COLORS", "001", "#FF0000", "#778899", "3 of 3 palettes"})
}

func TestListCommand_SearchAndSort(t *testing.T) {
	manifest := writeManifest(t)

	out, _, err := execRoot(t, "list", "--manifest", manifest, "--search", "#ef", "--sort", "count")
	if err != nil {
		t.Fatal(err)
	}
	assertContainsAll(t, out, "list", []string{"003", "1 of 3 palettes"})
	if strings.Contains(out, "#FF0000") {
		t.Errorf("filtered palette listed:\n%s", out)
	}
}

func TestListCommand_NoMatch(t *testing.T) {
	out, _, err := execRoot(t, "list", "--search", "nothing-matches-this")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No matching palettes.") {
		t.Errorf("missing empty message:\n%s", out)
	}
}

func TestListCommand_BadSort(t *testing.T) {
	if _, _, err := execRoot(t, "list", "--sort", "name"); err == nil {
		t.Error("expected error for unknown sort key")
	}
}

func TestExportCommand_JSON(t *testing.T) {
	manifest := writeManifest(t)

	out, _, err := execRoot(t, "export", "--manifest", manifest, "--sort", "count")
	if err != nil {
		t.Fatal(err)
	}
	var got []palette.Record
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	ids := make([]string, len(got))
	for i, r := range got {
		ids[i] = r.ID
	}
	if diff := cmp.Diff([]string{"002", "001", "003"}, ids); diff != "" {
		t.Errorf("export order (-want +got):\n%s", diff)
	}
}

func TestExportCommand_MarkdownFile(t *testing.T) {
	manifest := writeManifest(t)
	path := filepath.Join(t.TempDir(), "out.md")

	_, _, err := execRoot(t, "export", "--manifest", manifest, "-f", "md", "-o", path, "--title", "Mine")
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	assertContainsAll(t, string(data), "markdown", []string{"# Mine", "3 palettes, 6 colors", "| 001 |"})
}

func TestExportCommand_Errors(t *testing.T) {
	if _, _, err := execRoot(t, "export", "--format", "sqlite"); err == nil {
		t.Error("sqlite to stdout should fail")
	}
	if _, _, err := execRoot(t, "export", "--format", "pdf"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestInvalidFlagValues(t *testing.T) {
	if _, _, err := execRoot(t, "list", "--theme", "neon"); err == nil {
		t.Error("unknown theme should fail validation")
	}
	if _, _, err := execRoot(t, "list", "--clipboard", "carrier-pigeon"); err == nil {
		t.Error("unknown clipboard mode should fail validation")
	}
	if _, _, err := execRoot(t, "list", "--manifest", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("missing manifest should fail")
	}
}

func TestConfigInitAndPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figpal", "config.toml")

	out, _, err := execRoot(t, "config", "path", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("config path = %q, want %q", out, path)
	}

	if _, _, err := execRoot(t, "config", "init", "--config", path); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	existed, err := config.LoadFrom(path, &cfg)
	if err != nil || !existed {
		t.Fatalf("LoadFrom() = %v, %v", existed, err)
	}
	if diff := cmp.Diff(config.DefaultKeys(), cfg.Keys); diff != "" {
		t.Errorf("written keys (-want +got):\n%s", diff)
	}

	if _, _, err := execRoot(t, "config", "init", "--config", path); err == nil {
		t.Error("init over an existing file should fail without --force")
	}
	if _, _, err := execRoot(t, "config", "init", "--config", path, "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestConfigFileIsApplied(t *testing.T) {
	dir := t.TempDir()
	manifest := writeManifest(t)
	path := filepath.Join(dir, "config.toml")
	content := "manifest = \"" + filepath.ToSlash(manifest) + "\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execRoot(t, "list", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "3 of 3 palettes") {
		t.Errorf("config manifest not used:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execRoot(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "figpal dev" {
		t.Errorf("version output = %q", out)
	}
}
