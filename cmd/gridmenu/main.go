// Gridmenu simulates the settings panel of an embedded device in a terminal.
//
// It renders the character-grid menu of an ST7735-class display, drives it
// with the keyboard (or a remote button board over WebSocket), and loads the
// settings list from a YAML menu file.
//
// Usage:
//
//	gridmenu [command] [flags]
//
// Running without arguments launches the simulator with the built-in example
// menu. See 'gridmenu --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kwsdr/gridmenu/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridmenu",
	Short: "Settings-panel simulator for character-grid displays",
	Long: `Gridmenu simulates the settings menu of an embedded device panel.

The menu engine drives a 26x16 character grid the way it would an ST7735
TFT: browse settings with up/down, accept to edit, scroll values, accept
to commit or escape to cancel. Menus are defined in a YAML file.

If no command is specified, the simulator launches with the default menu.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulator(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gridmenu %s (commit: %s)\n", version.Version, version.Commit)
	},
}
