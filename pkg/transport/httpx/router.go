// pkg/transport/httpx/router.go
package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is what core.BuildRouter needs from a mux: middleware, one
// registration call keyed by method, and the final handler.
type Router interface {
	Use(mw ...func(http.Handler) http.Handler)
	Method(method, pattern string, h http.Handler)
	Mux() http.Handler
}

type chiRouter struct{ mux *chi.Mux }

// NewChi returns a Router backed by chi. chi answers 405 for a known
// pattern registered under another method.
func NewChi() Router { return chiRouter{mux: chi.NewRouter()} }

func (c chiRouter) Use(mw ...func(http.Handler) http.Handler)     { c.mux.Use(mw...) }
func (c chiRouter) Method(method, pattern string, h http.Handler) { c.mux.Method(method, pattern, h) }
func (c chiRouter) Mux() http.Handler                             { return c.mux }
