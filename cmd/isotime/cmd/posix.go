package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	coreerror "github.com/msto63/isotime/foundation/core/error"
	corelog "github.com/msto63/isotime/foundation/core/log"
	"github.com/msto63/isotime/foundation/utils/timex"
)

var (
	posixAt   string
	posixTZ   string
	posixList bool
)

var posixCmd = &cobra.Command{
	Use:   "posix <format|@preset>",
	Short: "Translate and render a POSIX format",
	Long: `Translates a POSIX strftime format and prints the resulting layout,
its shape and fixed length, the equivalent Go layout where one exists, and
the rendering of an instant. Arguments starting with @ name presets from
the [formats] section of the config file.

The instant is rendered in the --tz zone, or else in general.timezone from
the config file; an offset given with --at only fixes the instant.

Examples:
  isotime posix "%d/%m/%Y %H:%M:%S"
  isotime posix @isoweek --at 2023-01-01T00:00:00Z
  isotime posix "%A %H:%M %Z" --tz America/New_York
  isotime posix --list`,
	Args: func(cmd *cobra.Command, args []string) error {
		if posixList {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: runPosix,
}

func init() {
	rootCmd.AddCommand(posixCmd)
	posixCmd.Flags().StringVar(&posixAt, "at", "", "RFC 3339 instant to render (default: now)")
	posixCmd.Flags().StringVar(&posixTZ, "tz", "", "IANA time zone for rendering (default: config timezone)")
	posixCmd.Flags().BoolVar(&posixList, "list", false, "list configured presets")
}

func runPosix(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if posixList {
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, name := range appConfig.FormatNames() {
			fmt.Fprintf(tw, "@%s\t%s\n", name, appConfig.Formats[name])
		}
		return tw.Flush()
	}

	f, err := resolveFormat(args[0])
	if err != nil {
		logger.LogError(err)
		return err
	}

	at, err := renderInstant()
	if err != nil {
		return err
	}

	logger.Debug("translated format", corelog.Fields{
		"posix":  f.Posix(),
		"layout": f.Layout(),
	})

	length := "variable"
	if n, ok := f.Length(); ok {
		length = strconv.Itoa(n)
	}
	goLayout, ok := f.GoLayout()
	if !ok {
		goLayout = "-"
	}

	tw := tabwriter.NewWriter(out, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "posix:\t%s\n", quoteControl(f.Posix()))
	fmt.Fprintf(tw, "layout:\t%s\n", quoteControl(f.Layout()))
	fmt.Fprintf(tw, "shape:\t%s\n", quoteControl(f.Shape()))
	fmt.Fprintf(tw, "length:\t%s\n", length)
	fmt.Fprintf(tw, "go:\t%s\n", quoteControl(goLayout))
	fmt.Fprintf(tw, "result:\t%s\n", quoteControl(f.Format(at)))
	return tw.Flush()
}

func resolveFormat(arg string) (*timex.PosixFormat, error) {
	if name, isRef := strings.CutPrefix(arg, "@"); isRef {
		return appConfig.Format(name)
	}
	return timex.NewPosixFormat(arg)
}

func renderInstant() (time.Time, error) {
	at := time.Now()
	if posixAt != "" {
		var err error
		if at, err = parseInstant(posixAt); err != nil {
			return time.Time{}, err
		}
	}

	loc, err := renderLocation()
	if err != nil {
		return time.Time{}, err
	}
	return at.In(loc), nil
}

// renderLocation returns the --tz zone or the configured one
func renderLocation() (*time.Location, error) {
	if posixTZ == "" {
		return appConfig.Location()
	}

	loc, err := time.LoadLocation(posixTZ)
	if err != nil {
		return nil, coreerror.Wrap(err, "invalid timezone").
			WithCode(coreerror.CodeInvalidInput).
			WithDetail("timezone", posixTZ)
	}
	return loc, nil
}

// quoteControl makes tabs and newlines visible in the report
func quoteControl(s string) string {
	return strings.NewReplacer("\n", `\n`, "\t", `\t`).Replace(s)
}
