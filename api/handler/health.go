package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
)

type HealthHandler struct {
	baseHandler
	appName   string
	env       string
	startedAt time.Time
	now       func() time.Time
}

func NewHealthHandler(appName, env string, opts Options) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(opts),
		appName:     appName,
		env:         env,
		startedAt:   time.Now(),
		now:         time.Now,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()
	resp, finish := h.respond(ctx, stdCtx)
	defer finish()

	now := h.now().UTC()
	resp.WithMessage("ok").WithStatus(http.StatusOK).WithData(map[string]interface{}{
		"app":            h.appName,
		"environment":    h.env,
		"timestamp":      now,
		"uptime_seconds": int64(now.Sub(h.startedAt).Seconds()),
	})
}
