// Package main provides the d3-components command line, which resolves
// chart options and normalizes chart data outside a browser.
package main

import (
	"fmt"
	"os"

	"github.com/kinggod/d3-components/cmd/d3-components/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
