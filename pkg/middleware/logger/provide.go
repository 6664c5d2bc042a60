package logger

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Dir is the log directory handed to the providers below.
type Dir string

type accessParams struct {
	fx.In
	Access *zap.Logger `name:"access"`
}

func ProvideLoggerMiddleware(p accessParams) *Middleware { return NewMiddleware(p.Access) }
func ProvideLogger(dir Dir) *zap.Logger                  { return NewLog(string(dir), "system.log") }
func ProvideAccessLogger(dir Dir) *zap.Logger            { return NewLog(string(dir), "http-access.log") }
