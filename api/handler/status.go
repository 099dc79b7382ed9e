package handler

import (
	"fmt"
	"strconv"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/jsonize/domain"
	"github.com/fastygo/jsonize/pkg/jsonize"
)

// StatusHandler exposes the status catalog.
type StatusHandler struct {
	baseHandler
}

func NewStatusHandler(opts Options) *StatusHandler {
	return &StatusHandler{baseHandler: newBaseHandler(opts)}
}

// @Summary List known status codes
// @Tags status
// @Router /api/v1/status [get]
func (h *StatusHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()
	resp, finish := h.respond(ctx, stdCtx)
	defer finish()

	codes := jsonize.Codes()
	out := make([]jsonize.Descriptor, 0, len(codes))
	for _, c := range codes {
		out = append(out, jsonize.Resolve(c))
	}
	resp.WithMessage(fmt.Sprintf("%d status codes", len(out))).WithData(out, "statuses")
}

// @Summary Envelope for a status code
// @Tags status
// @Router /api/v1/status/{code} [get]
func (h *StatusHandler) Get(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()
	resp, finish := h.respond(ctx, stdCtx)
	defer finish()

	raw, _ := ctx.UserValue("code").(string)
	code, err := strconv.Atoi(raw)
	if err != nil || code <= 0 {
		withError(resp, domain.NewError(domain.ErrCodeInvalid, fmt.Sprintf("invalid status code %q", raw)))
		return
	}

	descriptor, known := jsonize.Lookup(code)
	if !known {
		descriptor = jsonize.Fallback
	}
	resp.WithMessage(descriptor.Phrase).WithStatus(code).WithData(map[string]interface{}{
		"requested": code,
		"known":     known,
	})
}
