package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/pfassina/figpal/internal/clipboard"
	"github.com/pfassina/figpal/internal/theme"
)

// fileConfig mirrors Config with pointer fields so we can distinguish
// "not set" from zero values when merging TOML.
type fileConfig struct {
	Manifest    *string             `toml:"manifest"`
	Listen      *string             `toml:"listen"`
	HostKeyPath *string             `toml:"host_key_path"`
	Theme       *string             `toml:"theme"`
	Clipboard   *string             `toml:"clipboard"`
	LogLevel    *string             `toml:"log_level"`
	LogFile     *string             `toml:"log_file"`
	Keys        map[string][]string `toml:"keys,omitempty"`
}

// ConfigDir returns the figpal config directory, respecting XDG_CONFIG_HOME.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "figpal")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "figpal")
}

// ConfigPath returns the full path to config.toml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadFile reads config.toml and merges non-nil fields into cfg.
// Returns true if the file existed, false otherwise.
func LoadFile(cfg *Config) (bool, error) {
	return LoadFrom(ConfigPath(), cfg)
}

// LoadFrom is LoadFile for an explicit path.
func LoadFrom(path string, cfg *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return true, fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.Manifest != nil {
		cfg.ManifestPath = ExpandHome(*fc.Manifest)
	}
	if fc.Listen != nil {
		cfg.Listen = *fc.Listen
	}
	if fc.HostKeyPath != nil {
		cfg.HostKeyPath = ExpandHome(*fc.HostKeyPath)
	}
	if fc.Theme != nil {
		cfg.Theme = *fc.Theme
	}
	if fc.Clipboard != nil {
		cfg.Clipboard = *fc.Clipboard
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFile != nil {
		cfg.LogFile = ExpandHome(*fc.LogFile)
	}
	if len(fc.Keys) > 0 {
		cfg.Keys = fc.Keys
	}

	return true, nil
}

// SaveFile writes cfg to config.toml, creating the config directory.
func SaveFile(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes cfg as TOML to path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	fc := fileConfig{
		Manifest:    ptr(collapseHome(cfg.ManifestPath)),
		Listen:      ptr(cfg.Listen),
		HostKeyPath: ptr(collapseHome(cfg.HostKeyPath)),
		Theme:       ptr(cfg.Theme),
		Clipboard:   ptr(cfg.Clipboard),
		LogLevel:    ptr(cfg.LogLevel),
		LogFile:     ptr(collapseHome(cfg.LogFile)),
		Keys:        cfg.Keys,
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(fc)
}

// Validate reports every invalid setting in cfg.
func Validate(cfg Config) error {
	var errs []error
	if !theme.Exists(cfg.Theme) {
		errs = append(errs, fmt.Errorf("theme %q: want one of %s", cfg.Theme, strings.Join(theme.Names(), ", ")))
	}
	switch cfg.Clipboard {
	case clipboard.ModeAuto, clipboard.ModeSystem, clipboard.ModeOSC52:
	default:
		errs = append(errs, fmt.Errorf("clipboard %q: %w", cfg.Clipboard, clipboard.ErrUnknownMode))
	}
	if _, err := log.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("log_level %q: %w", cfg.LogLevel, err))
	}
	known := DefaultKeys()
	for action := range cfg.Keys {
		if _, ok := known[action]; !ok {
			errs = append(errs, fmt.Errorf("keys: unknown action %q", action))
		}
	}
	return errors.Join(errs...)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, _ := os.UserHomeDir()
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// collapseHome stores paths under the home directory with ~ for readability.
func collapseHome(path string) string {
	home, _ := os.UserHomeDir()
	if home != "" && strings.HasPrefix(path, home+string(os.PathSeparator)) {
		return "~" + path[len(home):]
	}
	return path
}

func ptr(s string) *string { return &s }
