package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cristianoliveira/alfred-hue/cmd"
	"github.com/cristianoliveira/alfred-hue/internal/version"
	"github.com/spf13/cobra"
)

var versionOutputWriter io.Writer = os.Stdout

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show the current version of alfred-hue.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		PrintVersion()
	},
}

// PrintVersion prints the version line.
func PrintVersion() {
	fmt.Fprintf(versionOutputWriter, "alfred-hue version %s\n", version.String())
}

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}
