// bundlefx/bundlefx.go
package bundlefx

import (
	"github.com/joeydtaylor/steeze-pizza/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-pizza/pkg/middleware/metrics"
	"go.uber.org/fx"
)

// Module provided to fx: loggers, access log middleware and the named
// "metrics" scrape handler. Callers supply a logger.Dir.
var Module = fx.Options(
	logger.Module,
	fx.Provide(fx.Annotate(metrics.ProvideMetrics, fx.ResultTags(`name:"metrics"`))),
)
