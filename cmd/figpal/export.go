package main

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/pfassina/figpal/internal/export"
)

func newExportCmd(flags *globalFlags) *cobra.Command {
	var (
		q      queryFlags
		format string
		out    string
		title  string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write palettes as JSON, Markdown, HTML or SQLite",
		Example: `  figpal export --format json > palettes.json
  figpal export --format html --out gallery.html --title "Warm tones" --search "#f"
  figpal export --format sqlite --out palettes.db --sort count`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			records, err := loadRecords(cfg, logger)
			if err != nil {
				return err
			}
			results, err := q.apply(records)
			if err != nil {
				return err
			}

			if err := export.Write(cmd.OutOrStdout(), f, out, results, title); err != nil {
				return err
			}
			logger.Debug("export written", "format", f, "path", out, "records", len(results))
			return nil
		},
	}
	q.register(cmd)
	names := lo.Map(export.Formats(), func(f export.Format, _ int) string { return string(f) })
	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatJSON), strings.Join(names, "|"))
	cmd.Flags().StringVarP(&out, "out", "o", "-", `output path, "-" for stdout`)
	cmd.Flags().StringVar(&title, "title", export.DefaultTitle, "document title for markdown and html")
	return cmd
}
