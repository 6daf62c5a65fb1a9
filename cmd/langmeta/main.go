// langmeta is a query and export tool for the language metadata registry.
package main

import (
	"os"

	"github.com/corey/langmeta/cmd/langmeta/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
