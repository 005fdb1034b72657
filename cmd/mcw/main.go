package main

import (
	"os"

	"github.com/msto63/mCW/cmd/mcw/cmd"
	mcwerror "github.com/msto63/mCW/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(mcwerror.GetCode(err).ExitCode())
	}
}
