package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/isotime/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "isotime v%s\n", version.ComponentVersion("isotime"))
		fmt.Fprintf(out, "  timex:      v%s\n", version.ComponentVersion("timex"))
		fmt.Fprintf(out, "  datefmt:    v%s\n", version.ComponentVersion("datefmt"))
		fmt.Fprintf(out, "  Git Commit: %s\n", version.GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", version.BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
