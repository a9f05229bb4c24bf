package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/pfassina/figpal/internal/gallery"
	"github.com/pfassina/figpal/internal/palette"
)

// queryFlags select the result set for the non-interactive commands.
type queryFlags struct {
	search string
	sort   string
}

func (q *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&q.search, "search", "", "keep palettes whose id or a color contains this text")
	cmd.Flags().StringVar(&q.sort, "sort", "id", "sort order: id|count")
}

func (q *queryFlags) apply(records []palette.Record) ([]palette.Record, error) {
	key, err := gallery.ParseSortKey(q.sort)
	if err != nil {
		return nil, err
	}
	return gallery.Query(records, q.search, key), nil
}

func newListCmd(flags *globalFlags) *cobra.Command {
	var q queryFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print palettes as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No matching palettes.")
				return nil
			}
			r := lipgloss.NewRenderer(out)
			fmt.Fprintln(out, paletteTable(r, results))
			fmt.Fprintf(out, "%d of %d palettes\n", len(results), len(records))
			return nil
		},
	}
	q.register(cmd)
	return cmd
}

func paletteTable(r *lipgloss.Renderer, records []palette.Record) string {
	header := r.NewStyle().Bold(true).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)

	rows := lo.Map(records, func(rec palette.Record, _ int) []string {
		chips := lo.Map(rec.Colors, func(c string, _ int) string {
			return r.NewStyle().Foreground(lipgloss.Color(c)).Render("■") + " " + c
		})
		return []string{rec.ID, strconv.Itoa(rec.Len()), strings.Join(chips, "  ")}
	})

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Faint(true)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers("ID", "COUNT", "COLORS").
		Rows(rows...).
		String()
}
