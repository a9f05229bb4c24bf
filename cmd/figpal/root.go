package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pfassina/figpal/internal/app"
	"github.com/pfassina/figpal/internal/clipboard"
	"github.com/pfassina/figpal/internal/config"
	"github.com/pfassina/figpal/internal/logging"
	"github.com/pfassina/figpal/internal/palette"
	"github.com/pfassina/figpal/internal/theme"
)

// globalFlags are the persistent flags shared by every command. Empty
// values leave the config file setting alone.
type globalFlags struct {
	manifest   string
	theme      string
	clipboard  string
	logLevel   string
	logFile    string
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "figpal",
		Short: "Browse a collection of color palettes in the terminal",
		Long: `figpal is a terminal gallery for a static collection of color palettes.
Search by hex fragment or palette id, sort by id or color count, switch
between grid, compact and list layouts, and copy colors to the clipboard.

Quick start:
  figpal                         # Browse the bundled collection
  figpal --manifest colors.txt   # Browse your own manifest
  figpal serve                   # Serve the gallery over SSH
  figpal export --format md      # Print the collection as Markdown`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.manifest, "manifest", "", "palette manifest file (default: bundled collection)")
	pf.StringVar(&flags.theme, "theme", "", "UI theme: "+strings.Join(theme.Names(), "|"))
	pf.StringVar(&flags.clipboard, "clipboard", "", "clipboard mode: auto|system|osc52")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug|info|warn|error")
	pf.StringVar(&flags.logFile, "log-file", "", "append logs to this file")
	pf.StringVar(&flags.configPath, "config", "", "config file (default: "+config.ConfigPath()+")")

	cmd.AddCommand(
		newServeCmd(flags),
		newListCmd(flags),
		newExportCmd(flags),
		newConfigCmd(flags),
		newVersionCmd(),
	)
	return cmd
}

// loadConfig applies defaults, then the config file, then flags.
func loadConfig(flags *globalFlags) (config.Config, error) {
	cfg := config.Default()

	path := flags.configPath
	if path == "" {
		path = config.ConfigPath()
	}
	if _, err := config.LoadFrom(config.ExpandHome(path), &cfg); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	if flags.manifest != "" {
		cfg.ManifestPath = config.ExpandHome(flags.manifest)
	}
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.clipboard != "" {
		cfg.Clipboard = flags.clipboard
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.logFile != "" {
		cfg.LogFile = config.ExpandHome(flags.logFile)
	}

	if err := config.Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadRecords(cfg config.Config, logger *log.Logger) ([]palette.Record, error) {
	records, err := palette.Load(cfg.ManifestPath)
	if err != nil {
		return nil, err
	}
	source := cfg.ManifestPath
	if source == "" {
		source = "bundled"
	}
	logger.Debug("manifest loaded", "source", source, "records", len(records))
	return records, nil
}

func runTUI(cmd *cobra.Command, flags *globalFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	// The TUI owns the terminal: logs only go to a file, if any.
	logger, closeLog, err := logging.New(logging.Options{Path: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer closeLog()

	records, err := loadRecords(cfg, logger)
	if err != nil {
		return err
	}

	clip, err := clipboard.New(cfg.Clipboard, os.Stdout)
	if err != nil {
		return err
	}

	a := app.New(records, app.Options{
		Theme:     theme.Get(cfg.Theme),
		Clipboard: clip,
		Logger:    logger,
		Keys:      cfg.KeyMap(),
	})
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// newLogger builds the logger for non-interactive commands, which write to
// stderr unless a log file is configured.
func newLogger(cmd *cobra.Command, cfg config.Config) (*log.Logger, func() error, error) {
	return logging.New(logging.Options{
		Writer: cmd.ErrOrStderr(),
		Path:   cfg.LogFile,
		Level:  cfg.LogLevel,
	})
}
