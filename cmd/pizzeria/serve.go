package main

import (
	"github.com/joeydtaylor/steeze-pizza/pkg/serverfx"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newServeCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP lookup server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts := []serverfx.Option{serverfx.WithService("pizzeria")}
			if manifestPath != "" {
				opts = append(opts, serverfx.WithDefaultManifest(manifestPath))
			}
			app := fx.New(serverfx.Module(opts...))
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "manifest path when PIZZERIA_MANIFEST is unset (default manifest.toml)")
	return cmd
}
