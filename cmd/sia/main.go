package main

import (
	"os"

	"github.com/hy461283-sudo/intership-allotment/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		// Cobra already printed the error through the command's error stream.
		os.Exit(1)
	}
}
