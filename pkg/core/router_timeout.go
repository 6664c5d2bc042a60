package core

import (
	"net/http"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
)

// withTimeout bounds the route's context to d; a handler still running past
// the deadline gets a 504.
func withTimeout(next http.HandlerFunc, d time.Duration) http.HandlerFunc {
	return chimd.Timeout(d)(next).ServeHTTP
}
