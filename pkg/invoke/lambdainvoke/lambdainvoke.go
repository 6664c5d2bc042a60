// pkg/invoke/lambdainvoke/lambdainvoke.go
package lambdainvoke

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/joeydtaylor/steeze-pizza/pkg/invoke"
	"github.com/joeydtaylor/steeze-pizza/pkg/response"
)

// Handler adapts the lookup to API Gateway proxy integrations. Both entry
// points always return a nil error; lookup failures are 400 responses.
type Handler struct {
	inner *invoke.Handler
}

func New(h *invoke.Handler) *Handler { return &Handler{inner: h} }

// HandleREST serves REST API (payload v1) proxy events.
func (h *Handler) HandleREST(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	params := invoke.Chain{
		invoke.MapParams(req.PathParameters),
		invoke.MultiParams(req.MultiValueQueryStringParameters),
		invoke.MapParams(req.QueryStringParameters),
	}
	d := h.inner.Handle(withRequestID(ctx, req.RequestContext.RequestID), params)
	return events.APIGatewayProxyResponse{
		StatusCode: d.StatusCode,
		Headers:    headers(d),
		Body:       string(d.Body),
	}, nil
}

// HandleHTTP serves HTTP API (payload v2) events.
func (h *Handler) HandleHTTP(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	params := invoke.Chain{
		invoke.MapParams(req.PathParameters),
		invoke.MapParams(req.QueryStringParameters),
	}
	d := h.inner.Handle(withRequestID(ctx, req.RequestContext.RequestID), params)
	return events.APIGatewayV2HTTPResponse{
		StatusCode: d.StatusCode,
		Headers:    headers(d),
		Body:       string(d.Body),
	}, nil
}

func headers(d response.Descriptor) map[string]string {
	return map[string]string{"content-type": d.ContentType}
}

// Prefer the runtime's invocation id; fall back to the gateway's.
func withRequestID(ctx context.Context, gatewayID string) context.Context {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return invoke.WithRequestID(ctx, lc.AwsRequestID)
	}
	return invoke.WithRequestID(ctx, gatewayID)
}
