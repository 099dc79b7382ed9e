package handler

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/jsonize/domain"
	appLogger "github.com/fastygo/jsonize/pkg/logger"
)

// FallbackHandler answers requests the router could not dispatch.
type FallbackHandler struct {
	baseHandler
}

func NewFallbackHandler(opts Options) *FallbackHandler {
	return &FallbackHandler{baseHandler: newBaseHandler(opts)}
}

func (h *FallbackHandler) NotFound(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()
	h.send(ctx, stdCtx, withError(h.newResponse(ctx), domain.ErrRouteNotFound))
}

func (h *FallbackHandler) MethodNotAllowed(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()
	h.send(ctx, stdCtx, withError(h.newResponse(ctx), domain.ErrMethodNotAllowed))
}

// Panic turns a recovered panic into a 500 envelope.
func (h *FallbackHandler) Panic(ctx *fasthttp.RequestCtx, recovered interface{}) {
	ctx.Response.Reset()
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()
	appLogger.WithRequestID(stdCtx, h.logger).Error("handler panic", zap.Any("panic", recovered))
	h.send(ctx, stdCtx, h.newResponse(ctx).WithError("internal error"))
}
