package handler

import (
	"context"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/jsonize/api/transport"
	"github.com/fastygo/jsonize/internal/metrics"
	"github.com/fastygo/jsonize/internal/middleware"
	"github.com/fastygo/jsonize/pkg/httpcontext"
	"github.com/fastygo/jsonize/pkg/jsonize"
	appLogger "github.com/fastygo/jsonize/pkg/logger"
)

// Options carries the dependencies shared by every handler.
type Options struct {
	Adapter *httpcontext.Adapter
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	// Headers replaces the default envelope headers when non-empty.
	Headers jsonize.Header
	// AllowOrigin is the comma separated CORS allow list. When set, the
	// Access-Control-Allow-Origin header is resolved against the request's
	// Origin instead of being taken from Headers.
	AllowOrigin string
}

type baseHandler struct {
	adapter     *httpcontext.Adapter
	logger      *zap.Logger
	metrics     *metrics.Metrics
	headers     jsonize.Header
	allowOrigin string
}

func newBaseHandler(opts Options) baseHandler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	headers := opts.Headers
	if headers.Len() == 0 {
		headers = jsonize.DefaultHeaders()
	}
	return baseHandler{
		adapter:     opts.Adapter,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
		headers:     headers,
		allowOrigin: opts.AllowOrigin,
	}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) newResponse(ctx *fasthttp.RequestCtx) *jsonize.Response {
	resp := transport.NewResponse(ctx).WithHeaders(h.headers)
	if h.allowOrigin == "" {
		return resp
	}
	headers := resp.Attributes().Headers()
	headers.Del("Access-Control-Allow-Origin")
	if origin := middleware.AllowedOrigin(h.allowOrigin, string(ctx.Request.Header.Peek("Origin"))); origin != "" {
		headers.Set("Access-Control-Allow-Origin", origin)
		if origin != "*" {
			headers.Set("Vary", "Origin")
		}
	}
	return resp.WithHeaders(headers)
}

// respond starts an envelope for ctx. Callers defer the returned finish
// func, which emits the envelope unless it was sent explicitly.
func (h baseHandler) respond(ctx *fasthttp.RequestCtx, stdCtx context.Context) (*jsonize.Response, func()) {
	resp := h.newResponse(ctx)
	return resp, func() {
		alreadySent := resp.Finalized()
		if err := resp.Close(); err != nil {
			appLogger.WithRequestID(stdCtx, h.logger).Error("envelope emission failed", zap.Error(err))
			h.fail(ctx)
			return
		}
		if !alreadySent {
			h.observe(resp)
		}
	}
}

// send emits resp right away, for handlers that want the write inside their
// own control flow.
func (h baseHandler) send(ctx *fasthttp.RequestCtx, stdCtx context.Context, resp *jsonize.Response) {
	if err := resp.Send(); err != nil {
		appLogger.WithRequestID(stdCtx, h.logger).Error("envelope emission failed", zap.Error(err))
		h.fail(ctx)
		return
	}
	h.observe(resp)
}

func (h baseHandler) observe(resp *jsonize.Response) {
	status := jsonize.StatusOf(resp.Attributes())
	h.metrics.ObserveEnvelope(status.Code, jsonize.Success(status.Code))
}

// fail replaces whatever was written with a bare 500 envelope. It cannot
// fail itself: the envelope carries no data.
func (h baseHandler) fail(ctx *fasthttp.RequestCtx) {
	ctx.Response.ResetBody()
	fallback := h.newResponse(ctx).WithError("failed to encode response")
	_ = fallback.Send()
	h.observe(fallback)
}
