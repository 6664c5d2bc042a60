package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/go-faster/errors"
	"github.com/joeydtaylor/steeze-pizza/pkg/catalog"
	"github.com/joeydtaylor/steeze-pizza/pkg/invoke"
	"github.com/joeydtaylor/steeze-pizza/pkg/invoke/lambdainvoke"
	"github.com/joeydtaylor/steeze-pizza/pkg/middleware/logger"
	"github.com/spf13/cobra"
)

func newLambdaCmd() *cobra.Command {
	var (
		payload string
		debug   bool
	)

	cmd := &cobra.Command{
		Use:   "lambda",
		Short: "Serve lookups as an AWS Lambda behind API Gateway",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// lambda.Start never returns; the console logger writes unbuffered.
			zl := logger.NewConsole(debug)
			h := lambdainvoke.New(invoke.NewHandler(catalog.New(), invoke.WithLogger(zl)))
			switch payload {
			case "v1":
				lambda.Start(h.HandleREST)
			case "v2":
				lambda.Start(h.HandleHTTP)
			default:
				return errors.Errorf("unknown payload version %q (want v1 or v2)", payload)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&payload, "payload", "v1", "API Gateway payload format: v1 (REST API) or v2 (HTTP API)")
	cmd.Flags().BoolVar(&debug, "debug", false, "log every lookup")
	return cmd
}
