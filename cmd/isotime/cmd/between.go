package cmd

import (
	"time"

	"github.com/spf13/cobra"

	coreerror "github.com/msto63/isotime/foundation/core/error"
	corelog "github.com/msto63/isotime/foundation/core/log"
	"github.com/msto63/isotime/foundation/utils/timex"
)

var betweenJSON bool

var betweenCmd = &cobra.Command{
	Use:   "between <from> <to>",
	Short: "Duration between two instants",
	Long: `Prints the duration between two RFC 3339 instants as whole days plus
hours, minutes and seconds. The result is negative when <to> lies before
<from>.

Example:
  isotime between 2026-01-01T00:00:00Z 2026-02-25T18:21:42.5Z`,
	Args: cobra.ExactArgs(2),
	RunE: runBetween,
}

func init() {
	rootCmd.AddCommand(betweenCmd)
	betweenCmd.Flags().BoolVar(&betweenJSON, "json", false, "print a JSON object")
}

func runBetween(cmd *cobra.Command, args []string) error {
	from, err := parseInstant(args[0])
	if err != nil {
		return err
	}
	to, err := parseInstant(args[1])
	if err != nil {
		return err
	}

	d := timex.Between(from, to)
	logger.Debug("computed interval", corelog.Fields{
		"from":     from.Format(time.RFC3339Nano),
		"to":       to.Format(time.RFC3339Nano),
		"duration": d.String(),
	})

	report := newDurationReport(args[0]+" "+args[1], d)
	return printReports(cmd.OutOrStdout(), []durationReport{report}, betweenJSON)
}

func parseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, coreerror.Wrap(err, "invalid RFC 3339 instant").
			WithCode(coreerror.CodeInvalidInput).
			WithDetail("input", s)
	}
	return t, nil
}
