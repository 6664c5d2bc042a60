package core

import (
	"net/http"

	manifest "github.com/joeydtaylor/steeze-pizza/pkg/manifest"
)

func wrapRoute(rt manifest.Route, d BuildDeps) http.HandlerFunc {
	switch rt.Handler.Type {
	case manifest.HandlerPizzaLookup:
		h, ok := d.Handlers.Lookup(rt.Handler.Type)
		if !ok {
			return func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, []byte(`{"error":"handler not found"}`), http.StatusInternalServerError)
			}
		}
		return h.ServeHTTP

	default:
		return func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, []byte(`{"error":"unknown handler type"}`), http.StatusInternalServerError)
		}
	}
}
