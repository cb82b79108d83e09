package cmd

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/lthummus/timefmt/durations"
	"github.com/lthummus/timefmt/internal/config"
)

var breakdownUnit string

func init() {
	breakdownCmd.Flags().StringVarP(&breakdownUnit, "unit", "u", config.DefaultUnit, "unit the amount is given in (ms, s, m, h, d, ...)")
}

func writeBreakdown(w io.Writer, unit durations.Unit, amount int64) {
	longParts := durations.Decompose(unit, amount, durations.LongTable)
	shortParts := durations.Decompose(unit, amount, durations.ShortTable)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{"Unit", "Count", "Long", "Short"})

	// both presets share the same units, so the parts line up
	for i, curr := range longParts {
		t.AppendRow(table.Row{curr.Unit, curr.Count, curr.String(), shortParts[i].String()})
	}

	t.AppendFooter(table.Row{"Total", "", durations.Long(unit, amount), durations.Short(unit, amount)})
	t.Render()
}

var breakdownCmd = &cobra.Command{
	Use:   "breakdown <amount>",
	Short: "shows how a duration is split into days, hours, minutes and seconds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}

		unit, err := resolveUnit(cmd, breakdownUnit)
		if err != nil {
			return err
		}

		writeBreakdown(cmd.OutOrStdout(), unit, amount)
		return nil
	},
}
