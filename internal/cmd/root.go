package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lthummus/timefmt/durations"
	"github.com/lthummus/timefmt/internal/config"
)

func init() {
	rootCmd.AddCommand(durationCmd)
	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(breakdownCmd)
	rootCmd.AddCommand(countdownCmd)
	rootCmd.AddCommand(configCmd)
}

var rootCmd = &cobra.Command{
	Use:   "timefmt",
	Short: "timefmt turns durations and timestamps into human readable text",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Init()
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}

func parseAmount(s string) (int64, error) {
	amt, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("timefmt: %q is not a whole number", s)
	}
	if amt < 0 {
		return 0, fmt.Errorf("timefmt: amount must not be negative")
	}
	return amt, nil
}

// resolveUnit prefers the --unit flag when it was given and falls back to the
// configured unit otherwise.
func resolveUnit(cmd *cobra.Command, flagValue string) (durations.Unit, error) {
	if cmd.Flags().Changed("unit") {
		return durations.ParseUnit(flagValue)
	}
	return config.Unit()
}

func resolveStyle(cmd *cobra.Command, flagValue string) (durations.Style, error) {
	if cmd.Flags().Changed("style") {
		return durations.ParseStyle(flagValue)
	}
	return config.Style()
}
