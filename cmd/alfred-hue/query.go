package main

import (
	"fmt"

	"github.com/cristianoliveira/alfred-hue/cmd"
	"github.com/cristianoliveira/alfred-hue/internal/app"
	"github.com/cristianoliveira/alfred-hue/internal/config"
	"github.com/cristianoliveira/alfred-hue/internal/format"
	"github.com/spf13/cobra"
)

const queryCommandLong = `Interpret a launcher query and print the result list.

USAGE:
    alfred-hue query [OPTIONS] [WORDS...]

The words are joined with single spaces into the raw query:

    ""                          index: every light, all lights, presets, help
    lights:<text>               index narrowed by <text>
    lights:<id>:<text>          actions of light <id> ("all" for every light)
    lights:<id>:<func>:<value>  color, bri, effect, reminder or rename form
    presets [<text>]            saved presets narrowed by <text>

OPTIONS:
    --format=<format>    Output format: json (default), xml, text`

// NewQueryCmd creates the query command with explicit dependencies.
func NewQueryCmd(factory servicesFactory) *cobra.Command {
	if factory == nil {
		panic("NewQueryCmd: factory dependency cannot be nil")
	}

	var queryFormat string

	queryCmd := &cobra.Command{
		Use:   "query [words...]",
		Short: "Interpret a launcher query",
		Long:  queryCommandLong,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat := queryFormat
			if outputFormat == "" {
				outputFormat = config.Get("output_format", string(format.FormatterTypeJSON))
			}
			if err := validateFormat(outputFormat); err != nil {
				return err
			}

			svc, err := factory()
			if err != nil {
				return err
			}
			defer svc.Close()

			uc := app.NewQueryUseCase(svc.Interpreter, cmd.OutOrStdout())
			return uc.Execute(cmd.Context(), app.QueryInput{Words: args, Format: outputFormat})
		},
	}

	queryCmd.Flags().StringVar(&queryFormat, "format", "", "Output format: json, xml, text")
	return queryCmd
}

func validateFormat(f string) error {
	switch format.FormatterType(f) {
	case format.FormatterTypeJSON, format.FormatterTypeXML, format.FormatterTypeText:
		return nil
	}
	return fmt.Errorf("invalid format %q: must be one of json, xml, text", f)
}

func init() {
	cmd.RootCmd.AddCommand(NewQueryCmd(newServices))
}
