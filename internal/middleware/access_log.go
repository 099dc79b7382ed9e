package middleware

import (
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/jsonize/internal/metrics"
	"github.com/fastygo/jsonize/pkg/httpcontext"
)

// AccessLog logs every request once it has been served and records it in m
// (which may be nil). The route pattern is used as the metrics path label
// when the router provides it, so label cardinality stays bounded.
func AccessLog(logger *zap.Logger, m *metrics.Metrics) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			start := time.Now()
			reqID := httpcontext.RequestID(ctx)

			next(ctx)

			elapsed := time.Since(start)
			status := ctx.Response.StatusCode()
			method := string(ctx.Method())
			m.ObserveRequest(method, routePath(ctx), status, elapsed)

			fields := []zap.Field{
				zap.String("request_id", reqID),
				zap.String("method", method),
				zap.ByteString("path", ctx.Path()),
				zap.Int("status", status),
				zap.Duration("latency", elapsed),
			}
			switch {
			case status >= fasthttp.StatusInternalServerError:
				logger.Error("request served", fields...)
			case status >= fasthttp.StatusBadRequest:
				logger.Warn("request served", fields...)
			default:
				logger.Info("request served", fields...)
			}
		}
	}
}

// RoutePathKey is the user value holding the matched route pattern.
const RoutePathKey = "route_path"

func routePath(ctx *fasthttp.RequestCtx) string {
	if p, ok := ctx.UserValue(RoutePathKey).(string); ok && p != "" {
		return p
	}
	return "unmatched"
}
