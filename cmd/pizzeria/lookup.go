package main

import (
	"context"
	"fmt"

	"github.com/joeydtaylor/steeze-pizza/pkg/catalog"
	"github.com/joeydtaylor/steeze-pizza/pkg/invoke"
	"github.com/spf13/cobra"
)

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup [pizza_name]",
		Short: "Look up one pizza and print the response",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := invoke.MapParams{}
			if len(args) == 1 {
				params[invoke.ParamPizzaName] = args[0]
			}
			d := invoke.NewHandler(catalog.New()).Handle(context.Background(), params)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n%s\n", d.StatusCode, d.ContentType, d.Body)
			return err
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, p := range catalog.New().All() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-8s %d\n", p.Name(), p.Price()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
