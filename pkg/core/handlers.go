// core/handlers.go
package core

import (
	"net/http"

	manifest "github.com/joeydtaylor/steeze-pizza/pkg/manifest"
)

// Handlers binds manifest handler types to their HTTP implementation.
type Handlers map[manifest.HandlerType]http.Handler

// Lookup retrieves the handler for a manifest handler type.
func (hs Handlers) Lookup(t manifest.HandlerType) (http.Handler, bool) {
	h, ok := hs[t]
	return h, ok && h != nil
}
