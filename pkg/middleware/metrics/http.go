package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewPromHttpHandler serves the default registry. Collector errors are
// written to zl and the remaining families are still exposed.
func NewPromHttpHandler(zl *zap.Logger) http.Handler {
	if zl == nil {
		zl = zap.NewNop()
	}
	return promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorLog:      zap.NewStdLog(zl.Named("metrics")),
		ErrorHandling: promhttp.ContinueOnError,
	})
}

// ProvideMetrics is the Fx provider for the /metrics route.
func ProvideMetrics(zl *zap.Logger) http.Handler { return NewPromHttpHandler(zl) }
