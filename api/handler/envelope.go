package handler

import (
	"encoding/json"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/jsonize/api/transport"
	"github.com/fastygo/jsonize/domain"
	appLogger "github.com/fastygo/jsonize/pkg/logger"
)

// EnvelopeHandler builds an envelope from a JSON description of it.
type EnvelopeHandler struct {
	baseHandler
}

func NewEnvelopeHandler(opts Options) *EnvelopeHandler {
	return &EnvelopeHandler{baseHandler: newBaseHandler(opts)}
}

// @Summary Build an envelope
// @Tags envelope
// @Router /api/v1/envelope [post]
func (h *EnvelopeHandler) Build(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()
	resp, finish := h.respond(ctx, stdCtx)
	defer finish()

	var req transport.EnvelopeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		appLogger.WithRequestID(stdCtx, h.logger).Debug("invalid envelope request", zap.Error(err))
		withError(resp, domain.ErrInvalidPayload)
		return
	}
	if err := req.Validate(); err != nil {
		withError(resp, domain.WrapError(domain.ErrCodeValidation, err.Error(), err))
		return
	}

	req.Apply(resp)
}
