// Command panzoom runs the pan/zoom viewport in a window, in a terminal, or
// headless against an interaction script.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "panzoom",
		Short: "Pan/zoom viewport with a minimap",
		Long: `panzoom shows a bounded canvas inside a resizable container. Drag or
scroll to pan, ctrl+scroll (or pinch) to zoom, and use the minimap in the
corner to jump around.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newViewCommand())
	rootCmd.AddCommand(newTUICommand())
	rootCmd.AddCommand(newScriptCommand())
	rootCmd.AddCommand(newInitCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
