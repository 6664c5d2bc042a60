package core

import (
	"net/http"

	"github.com/joeydtaylor/steeze-pizza/pkg/middleware/logger"
	httpx "github.com/joeydtaylor/steeze-pizza/pkg/transport/httpx"
)

type BuildDeps struct {
	LogMW    *logger.Middleware
	Metrics  http.Handler
	Router   httpx.Router
	Handlers Handlers
}
