package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	coreerror "github.com/msto63/isotime/foundation/core/error"
	corelog "github.com/msto63/isotime/foundation/core/log"
	"github.com/msto63/isotime/pkg/core/config"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	appConfig *config.Config
	logger    = corelog.New()
)

var rootCmd = &cobra.Command{
	Use:   "isotime",
	Short: "ISO 8601 durations and POSIX date formats",
	Long: `isotime parses ISO 8601 durations with fractional seconds and
translates POSIX strftime formats.

Commands:
  duration - parse durations, print the minimal form and totals
  between  - duration between two RFC 3339 instants
  posix    - translate and render a POSIX format
  version  - print version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints a failure to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $"+config.EnvConfigPath+" or ./isotime.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json, console, logfmt")
}

// setup loads the configuration and configures the logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	level, err := corelog.ParseLevel(appConfig.General.LogLevel)
	if err != nil {
		return coreerror.Wrap(err, "invalid log level").
			WithCode(coreerror.CodeConfigError).
			WithDetail("log_level", appConfig.General.LogLevel)
	}
	formatName := appConfig.General.LogFormat
	if logFormat != "" {
		formatName = logFormat
	}
	format, err := corelog.ParseFormat(formatName)
	if err != nil {
		return coreerror.Wrap(err, "invalid log format").
			WithCode(coreerror.CodeInvalidInput).
			WithDetail("log_format", formatName)
	}

	logger = corelog.NewWithConfig(corelog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   cmd.Name(),
	})
	if verbose {
		logger.SetLevel(corelog.LevelDebug)
	}

	fields := corelog.Fields{"timezone": appConfig.General.Timezone}
	if appConfig.Path != "" {
		fields["config"] = appConfig.Path
	}
	logger = logger.WithFields(fields)
	corelog.SetDefault(logger)

	logger.Debug("loaded config")
	return nil
}

func printError(err error) {
	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
}
