package main

import (
	"context"
	"io"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-faster/errors"
	"github.com/joeydtaylor/steeze-pizza/pkg/catalog"
	"github.com/joeydtaylor/steeze-pizza/pkg/codec"
	"github.com/joeydtaylor/steeze-pizza/pkg/invoke"
	"github.com/joeydtaylor/steeze-pizza/pkg/invoke/lambdainvoke"
	"github.com/spf13/cobra"
)

// newInvokeCmd replays a stored API Gateway event through the Lambda adapter
// and prints the JSON response the runtime would have returned.
func newInvokeCmd() *cobra.Command {
	var (
		eventPath string
		payload   string
	)

	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Run one API Gateway event through the Lambda handler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := readEvent(cmd.InOrStdin(), eventPath)
			if err != nil {
				return err
			}
			h := lambdainvoke.New(invoke.NewHandler(catalog.New()))

			var out any
			switch payload {
			case "v1":
				var req events.APIGatewayProxyRequest
				if err := codec.JSON.Unmarshal(raw, &req); err != nil {
					return errors.Wrap(err, "parse v1 event")
				}
				out, _ = h.HandleREST(context.Background(), req)
			case "v2":
				var req events.APIGatewayV2HTTPRequest
				if err := codec.JSON.Unmarshal(raw, &req); err != nil {
					return errors.Wrap(err, "parse v2 event")
				}
				out, _ = h.HandleHTTP(context.Background(), req)
			default:
				return errors.Errorf("unknown payload version %q (want v1 or v2)", payload)
			}

			b, err := codec.JSON.Marshal(out)
			if err != nil {
				return errors.Wrap(err, "encode response")
			}
			_, err = cmd.OutOrStdout().Write(append(b, '\n'))
			return err
		},
	}
	cmd.Flags().StringVar(&eventPath, "event", "-", "event JSON file, - for stdin")
	cmd.Flags().StringVar(&payload, "payload", "v1", "API Gateway payload format: v1 or v2")
	return cmd
}

func readEvent(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" || path == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "read stdin")
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return b, nil
}
