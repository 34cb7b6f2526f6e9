package main

import (
	"os"

	"github.com/msto63/zunder/cmd/zunder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
