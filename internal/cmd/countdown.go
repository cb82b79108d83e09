package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lthummus/timefmt/countdown"
	"github.com/lthummus/timefmt/durations"
	"github.com/lthummus/timefmt/internal/config"
)

var countdownUnit string

func init() {
	countdownCmd.Flags().StringVarP(&countdownUnit, "unit", "u", config.DefaultUnit, "unit the amount is given in (ms, s, m, h, d, ...)")
}

func runCountdown(ctx context.Context, w io.Writer, start time.Time, total time.Duration, ticks <-chan time.Time) error {
	c := countdown.New(start, start.Add(total), countdown.DefaultMilestones)

	fmt.Fprintf(w, "counting down %s\n", durations.LongDuration(total))

	err := c.Run(ctx, ticks, func(m time.Duration) {
		fmt.Fprintf(w, "%s left\n", durations.ShortDuration(m))
	})
	if errors.Is(err, context.Canceled) {
		log.Warn().Dur("remaining", c.Remaining(time.Now())).Msg("countdown interrupted")
		fmt.Fprintln(w, "cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "done")
	return nil
}

var countdownCmd = &cobra.Command{
	Use:   "countdown <amount>",
	Short: "counts down, announcing the time left at 10m, 5m, ... 1s",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args[0])
		if err != nil {
			return err
		}

		unit, err := resolveUnit(cmd, countdownUnit)
		if err != nil {
			return err
		}

		total := time.Duration(durations.Nanoseconds.Convert(amount, unit))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		tick := config.CountdownTick()
		ticker := time.NewTicker(tick)
		defer ticker.Stop()

		log.Debug().Dur("total", total).Dur("tick", tick).Msg("starting countdown")

		return runCountdown(ctx, cmd.OutOrStdout(), time.Now(), total, ticker.C)
	},
}
