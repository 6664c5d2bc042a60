package core

import (
	"net/http"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	manifest "github.com/joeydtaylor/steeze-pizza/pkg/manifest"
	hmetrics "github.com/joeydtaylor/steeze-pizza/pkg/middleware/metrics"
)

// HeartbeatPath answers "." for liveness checks without touching a route.
const HeartbeatPath = "/ping"

func BuildRouter(cfg manifest.Config, d BuildDeps) http.Handler {
	r := d.Router
	// Collect runs before the heartbeat; its skip rules decide whether /ping
	// is counted. The access log only sees routed requests.
	r.Use(chimd.RequestID, chimd.Recoverer, hmetrics.Collect(), chimd.Heartbeat(HeartbeatPath))

	if d.LogMW != nil {
		r.Use(d.LogMW.Middleware())
	}

	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	for _, rt := range cfg.Routes {
		h := wrapRoute(rt, d)
		if rt.Policy.TimeoutMS > 0 {
			h = withTimeout(h, time.Duration(rt.Policy.TimeoutMS)*time.Millisecond)
		}
		// Validate has already upper-cased the method.
		r.Method(rt.Method, rt.Path, h)
	}
	return r.Mux()
}
