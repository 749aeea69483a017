// Package cmd holds the root command shared by the alfred-hue subcommands.
package cmd

import (
	"fmt"

	"github.com/cristianoliveira/alfred-hue/internal/colors"
	"github.com/cristianoliveira/alfred-hue/internal/config"
	"github.com/cristianoliveira/alfred-hue/internal/logging"
	"github.com/cristianoliveira/alfred-hue/internal/version"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "alfred-hue",
	Short: "Control Hue lights from an Alfred script filter.",
	Long: `Control Hue lights from an Alfred script filter.

alfred-hue interprets the text typed after the workflow keyword and prints
the matching result list for Alfred to display.

EXAMPLES:
    alfred-hue query ""
    alfred-hue query lights:1:bri:50
    alfred-hue query presets movie
    alfred-hue cache refresh`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return Setup() },
}

// Setup loads configuration and starts logging.
func Setup() error {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
	}
	return nil
}

// Execute runs the root command and reports a failure on stderr.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	defer func() { _ = logging.ShutdownGlobal() }()

	if err := RootCmd.Execute(); err != nil {
		colors.Error(err.Error())
		return err
	}
	return nil
}

func init() {
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
}
