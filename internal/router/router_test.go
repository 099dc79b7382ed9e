package router

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/jsonize/api/handler"
	"github.com/fastygo/jsonize/internal/config"
	"github.com/fastygo/jsonize/internal/metrics"
	"github.com/fastygo/jsonize/internal/middleware"
	"github.com/fastygo/jsonize/pkg/httpcontext"
)

func newTestRouter(m *metrics.Metrics) fasthttp.RequestHandler {
	opts := apiHandler.Options{
		Adapter: httpcontext.NewAdapter(time.Second),
		Logger:  zap.NewNop(),
		Metrics: m,
	}
	r := New(Handlers{
		Health:   apiHandler.NewHealthHandler("jsonize", "test", opts),
		Status:   apiHandler.NewStatusHandler(opts),
		Envelope: apiHandler.NewEnvelopeHandler(opts),
		Fallback: apiHandler.NewFallbackHandler(opts),
	}, Options{
		Preflight: middleware.Preflight(config.CORSConfig{AllowOrigin: "*", MaxAge: time.Minute}),
		Metrics:   m,
	})
	return middleware.AccessLog(zap.NewNop(), m)(r.Handler)
}

func serve(h fasthttp.RequestHandler, method, uri, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	h(ctx)
	return ctx
}

func TestRoutes(t *testing.T) {
	h := newTestRouter(metrics.New())

	tests := []struct {
		method, uri, body string
		status            int
		contains          string
	}{
		{fasthttp.MethodGet, "/health", "", 200, `"message":"ok"`},
		{fasthttp.MethodGet, "/api/v1/status", "", 200, `"statuses":[[100,"Continue"]`},
		{fasthttp.MethodGet, "/api/v1/status/404", "", 404, `"status":[404,"Not Found"]`},
		{fasthttp.MethodPost, "/api/v1/envelope", `{"status":204,"hide":["data"]}`, 204, ``},
		{fasthttp.MethodGet, "/nowhere", "", 404, `"message":"route not found"`},
		{fasthttp.MethodDelete, "/health", "", 405, `"status":[405,"Method Not Allowed"]`},
		{fasthttp.MethodOptions, "/api/v1/envelope", "", 204, ``},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.uri, func(t *testing.T) {
			ctx := serve(h, tt.method, tt.uri, tt.body)
			assert.Equal(t, tt.status, ctx.Response.StatusCode())
			assert.Contains(t, string(ctx.Response.Body()), tt.contains)
		})
	}
}

func TestMetricsRoute(t *testing.T) {
	m := metrics.New()
	h := newTestRouter(m)

	serve(h, fasthttp.MethodGet, "/api/v1/status/201", "")
	ctx := serve(h, fasthttp.MethodGet, "/metrics", "")

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := string(ctx.Response.Body())
	assert.Contains(t, body, `jsonize_envelopes_total{code="201",success="true"} 1`)
	assert.Contains(t, body, `path="/api/v1/status/{code}"`)
}
