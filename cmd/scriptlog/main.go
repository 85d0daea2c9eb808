// Package main provides the entry point for the scriptlog CLI.
package main

import (
	"os"

	"github.com/Aman-CERP/scriptlog/cmd/scriptlog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
