package invoke

import "context"

// MapParams adapts a flat parameter map (Lambda path/query parameters, CLI args).
type MapParams map[string]string

func (m MapParams) First(key string) (string, bool) {
	v, ok := m[key]
	return v, ok && v != ""
}

// MultiParams adapts multi-valued parameters such as url.Values.
type MultiParams map[string][]string

func (m MultiParams) First(key string) (string, bool) {
	vs := m[key]
	if len(vs) == 0 || vs[0] == "" {
		return "", false
	}
	return vs[0], true
}

// Chain consults each source in order and returns the first hit.
type Chain []Params

func (c Chain) First(key string) (string, bool) {
	for _, p := range c {
		if p == nil {
			continue
		}
		if v, ok := p.First(key); ok {
			return v, true
		}
	}
	return "", false
}

type ctxKey struct{ name string }

var requestIDKey = &ctxKey{"requestId"}

// WithRequestID tags ctx with the host's request id for log correlation.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
