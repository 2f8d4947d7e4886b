// ABOUTME: Entry point for the fireplan CLI
// ABOUTME: Command-line client for the panel optimizer service

package main

import (
	"fmt"
	"os"

	"github.com/panel-tools/fireplan/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
