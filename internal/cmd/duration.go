package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lthummus/timefmt/durations"
	"github.com/lthummus/timefmt/internal/config"
)

var (
	durationUnit      string
	durationStyle     string
	durationDelimiter string
)

func init() {
	durationCmd.Flags().StringVarP(&durationUnit, "unit", "u", config.DefaultUnit, "unit the amount is given in (ms, s, m, h, d, ...)")
	durationCmd.Flags().StringVarP(&durationStyle, "style", "s", config.DefaultStyle, "output style: long or short")
	durationCmd.Flags().StringVar(&durationDelimiter, "delimiter", "", "text placed between components (overrides the style's delimiter)")
}

type durationOptions struct {
	unit      durations.Unit
	style     durations.Style
	delimiter string
}

func writeDuration(w io.Writer, amount int64, opts durationOptions) error {
	out := durations.Format(opts.unit, amount, opts.style.Table(), opts.delimiter)
	_, err := fmt.Fprintln(w, out)
	return err
}

var durationCmd = &cobra.Command{
	Use:   "duration <amount>",
	Short: "formats a duration, e.g. `timefmt duration -u m 90` prints 1 Hour 30 Minutes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}

		unit, err := resolveUnit(cmd, durationUnit)
		if err != nil {
			return err
		}

		style, err := resolveStyle(cmd, durationStyle)
		if err != nil {
			return err
		}

		delimiter := config.Delimiter(style)
		if cmd.Flags().Changed("delimiter") {
			delimiter = durationDelimiter
		}

		log.Debug().
			Int64("amount", amount).
			Stringer("unit", unit).
			Stringer("style", style).
			Str("delimiter", delimiter).
			Msg("formatting duration")

		return writeDuration(cmd.OutOrStdout(), amount, durationOptions{
			unit:      unit,
			style:     style,
			delimiter: delimiter,
		})
	},
}
