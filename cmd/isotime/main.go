package main

import (
	"os"
	_ "time/tzdata"

	"github.com/msto63/isotime/cmd/isotime/cmd"
	coreerror "github.com/msto63/isotime/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(coreerror.GetCode(err).ExitCode())
	}
}
