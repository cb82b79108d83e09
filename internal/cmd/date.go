package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lthummus/timefmt/dates"
)

var useNow bool

func init() {
	dateCmd.Flags().BoolVar(&useNow, "now", false, "format the current time")
}

func writeDate(w io.Writer, millis int64) error {
	_, err := fmt.Fprintln(w, dates.FormatDate(millis))
	return err
}

var dateCmd = &cobra.Command{
	Use:   "date [epoch-millis]",
	Short: "formats a unix timestamp in milliseconds as day/month/year",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if useNow || len(args) == 0 {
			return writeDate(cmd.OutOrStdout(), time.Now().UnixMilli())
		}

		millis, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("timefmt: date: %q is not a timestamp in milliseconds", args[0])
		}

		return writeDate(cmd.OutOrStdout(), millis)
	},
}
