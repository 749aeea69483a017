package main

import (
	"github.com/cristianoliveira/alfred-hue/cmd"
	"github.com/cristianoliveira/alfred-hue/internal/app"
	"github.com/spf13/cobra"
)

// NewCacheCmd creates the cache command group with explicit dependencies.
func NewCacheCmd(factory servicesFactory) *cobra.Command {
	if factory == nil {
		panic("NewCacheCmd: factory dependency cannot be nil")
	}

	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the cached light snapshot",
		Long: `Manage the cached light snapshot.

Light menus read the snapshot written by the last bridge fetch so they stay
responsive while typing. The index view always fetches live and refreshes it.`,
	}

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Fetch lights from the bridge and cache them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := factory()
			if err != nil {
				return err
			}
			defer svc.Close()

			_, err = app.NewRefreshUseCase(svc.Source).Execute(cmd.Context())
			return err
		},
	})

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "show [prefix]",
		Short: "Print the cached lights",
		Long: `Print the cached lights, optionally only those whose name starts
with <prefix> (case-insensitive).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := factory()
			if err != nil {
				return err
			}
			defer svc.Close()

			var reader app.SnapshotReader
			if svc.Cache != nil {
				reader = svc.Cache
			}
			input := app.ShowInput{}
			if len(args) == 1 {
				input.Prefix = args[0]
			}
			return app.NewShowUseCase(reader, cmd.OutOrStdout()).Execute(cmd.Context(), input)
		},
	})

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Drop the cached lights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := factory()
			if err != nil {
				return err
			}
			defer svc.Close()

			var clearer app.SnapshotClearer
			if svc.Cache != nil {
				clearer = svc.Cache
			}
			return app.NewClearUseCase(clearer).Execute(cmd.Context())
		},
	})

	return cacheCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewCacheCmd(newServices))
}
