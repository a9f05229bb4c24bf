package config

import (
	"path/filepath"
)

type Config struct {
	ManifestPath string
	Listen       string
	HostKeyPath  string
	Theme        string
	Clipboard    string
	LogLevel     string
	LogFile      string // empty: discard in the TUI, stderr when serving
	Keys         map[string][]string
}

func Default() Config {
	return Config{
		ManifestPath: "",
		Listen:       ":2223",
		HostKeyPath:  filepath.Join(ConfigDir(), "ssh_host_ed25519"),
		Theme:        "catppuccin",
		Clipboard:    "auto",
		LogLevel:     "info",
	}
}
