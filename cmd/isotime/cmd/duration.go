package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	coreerror "github.com/msto63/isotime/foundation/core/error"
	corelog "github.com/msto63/isotime/foundation/core/log"
	"github.com/msto63/isotime/foundation/utils/timex"
)

var durationJSON bool

var durationCmd = &cobra.Command{
	Use:   "duration <literal|@name>...",
	Short: "Parse ISO 8601 durations",
	Long: `Parses ISO 8601 durations and prints the minimal literal with the
total days, hours, minutes and seconds. A year counts as 365 days and a
month as 30 days. Arguments starting with @ name durations from the
[durations] section of the config file.

Examples:
  isotime duration P1Y2M3DT4H5M6.78912S
  isotime duration PT.1S P100D --json
  isotime duration @retention`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDuration,
}

func init() {
	rootCmd.AddCommand(durationCmd)
	durationCmd.Flags().BoolVar(&durationJSON, "json", false, "print one JSON object per duration")
}

// durationReport is the printed form of one duration
type durationReport struct {
	Input        string         `json:"input"`
	Duration     timex.Duration `json:"duration"`
	Negative     bool           `json:"negative"`
	TotalDays    int            `json:"total_days"`
	TotalHours   int            `json:"total_hours"`
	TotalMinutes int            `json:"total_minutes"`
	TotalSeconds float64        `json:"total_seconds"`
}

func newDurationReport(input string, d timex.Duration) durationReport {
	return durationReport{
		Input:        input,
		Duration:     d,
		Negative:     d.Sign() < 0,
		TotalDays:    d.TotalDays(),
		TotalHours:   d.TotalHours(),
		TotalMinutes: d.TotalMinutes(),
		TotalSeconds: d.TotalSeconds(),
	}
}

func runDuration(cmd *cobra.Command, args []string) error {
	reports := make([]durationReport, 0, len(args))
	for _, arg := range args {
		d, err := resolveDuration(arg)
		if err != nil {
			logger.LogError(err)
			return err
		}
		logger.Debug("parsed duration", corelog.Fields{
			"input":    arg,
			"duration": d.String(),
		})
		reports = append(reports, newDurationReport(arg, d))
	}

	return printReports(cmd.OutOrStdout(), reports, durationJSON)
}

func resolveDuration(arg string) (timex.Duration, error) {
	name, isRef := strings.CutPrefix(arg, "@")
	if !isRef {
		return timex.ParseDuration(arg)
	}

	d, ok := appConfig.Duration(name)
	if !ok {
		return timex.Duration{}, coreerror.Newf("unknown duration %q", name).
			WithCode(coreerror.CodeInvalidInput).
			WithDetail("name", name)
	}
	return d, nil
}

func printReports(w io.Writer, reports []durationReport, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		for _, r := range reports {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	}

	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, r.Duration)
		fmt.Fprintf(w, "  days:    %d\n", r.TotalDays)
		fmt.Fprintf(w, "  hours:   %d\n", r.TotalHours)
		fmt.Fprintf(w, "  minutes: %d\n", r.TotalMinutes)
		fmt.Fprintf(w, "  seconds: %s\n", strconv.FormatFloat(r.TotalSeconds, 'f', -1, 64))
	}
	return nil
}
