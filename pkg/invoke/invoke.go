// pkg/invoke/invoke.go
package invoke

import (
	"context"

	"github.com/joeydtaylor/steeze-pizza/pkg/catalog"
	"github.com/joeydtaylor/steeze-pizza/pkg/response"
	"go.uber.org/zap"
)

// ParamPizzaName is the only request parameter the lookup reads.
const ParamPizzaName = "pizza_name"

// Params is the host runtime's string-keyed parameter accessor.
type Params interface {
	// First returns the first value bound to key; ok is false when the key
	// is missing or bound to an empty value.
	First(key string) (value string, ok bool)
}

// Handler runs one invocation: extract name, look it up, shape the response.
// It holds no per-request state and is safe for concurrent use.
type Handler struct {
	catalog *catalog.Catalog
	log     *zap.Logger
	observe func(outcome string)
}

type Option func(*Handler)

func WithLogger(l *zap.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithObserver registers a callback fed with each outcome label (metrics).
func WithObserver(fn func(outcome string)) Option {
	return func(h *Handler) {
		if fn != nil {
			h.observe = fn
		}
	}
}

func NewHandler(c *catalog.Catalog, opts ...Option) *Handler {
	h := &Handler{
		catalog: c,
		log:     zap.NewNop(),
		observe: func(string) {},
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Handle never fails; caller errors come back as 400 descriptors.
func (h *Handler) Handle(ctx context.Context, p Params) response.Descriptor {
	name, ok := p.First(ParamPizzaName)
	out := h.catalog.Find(name, ok)
	h.observe(out.Label())
	h.log.Debug("pizza lookup",
		zap.String("requestId", RequestID(ctx)),
		zap.String("pizzaName", name),
		zap.String("outcome", out.Label()),
	)
	return response.FromOutcome(out)
}
