// pkg/invoke/httpinvoke/httpinvoke.go
package httpinvoke

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/steeze-pizza/pkg/invoke"
	"github.com/joeydtaylor/steeze-pizza/pkg/response"
)

// Handler serves the lookup over HTTP. The name comes from the chi route
// parameter when the route declares one, else from the query string.
type Handler struct {
	inner *invoke.Handler
}

func New(h *invoke.Handler) *Handler { return &Handler{inner: h} }

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params := invoke.Chain{
		routeParams{r},
		invoke.MultiParams(r.URL.Query()),
	}
	ctx := invoke.WithRequestID(r.Context(), chimd.GetReqID(r.Context()))
	Write(w, h.inner.Handle(ctx, params))
}

// Write copies a descriptor onto the response writer.
func Write(w http.ResponseWriter, d response.Descriptor) {
	w.Header().Set("Content-Type", d.ContentType)
	w.WriteHeader(d.StatusCode)
	_, _ = w.Write(d.Body)
}

type routeParams struct{ r *http.Request }

// First decodes the route segment; chi hands it back still escaped when the
// request carried a RawPath. A malformed escape counts as absent.
func (p routeParams) First(key string) (string, bool) {
	v, err := url.PathUnescape(chi.URLParam(p.r, key))
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}
