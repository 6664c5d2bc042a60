package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pizzeria",
		Short:        "Pizza lookup service",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newServeCmd(),
		newLambdaCmd(),
		newLookupCmd(),
		newListCmd(),
		newInvokeCmd(),
	)
	return cmd
}
