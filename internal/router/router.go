package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/pprofhandler"

	apiHandler "github.com/fastygo/jsonize/api/handler"
	"github.com/fastygo/jsonize/internal/metrics"
	"github.com/fastygo/jsonize/internal/middleware"
)

type Handlers struct {
	Health   *apiHandler.HealthHandler
	Status   *apiHandler.StatusHandler
	Envelope *apiHandler.EnvelopeHandler
	Fallback *apiHandler.FallbackHandler
}

// Options toggles the operational endpoints.
type Options struct {
	Preflight fasthttp.RequestHandler
	Metrics   *metrics.Metrics
	Pprof     bool
}

func New(handlers Handlers, opts Options) *router.Router {
	r := router.New()

	get(r, "/health", handlers.Health.Check)

	get(r, "/api/v1/status", handlers.Status.List)
	get(r, "/api/v1/status/{code}", handlers.Status.Get)
	post(r, "/api/v1/envelope", handlers.Envelope.Build)

	if opts.Metrics != nil {
		r.GET("/metrics", opts.Metrics.Handler())
	}
	if opts.Pprof {
		r.GET("/debug/pprof/{profile:*}", pprofhandler.PprofHandler)
	}

	if opts.Preflight != nil {
		r.GlobalOPTIONS = opts.Preflight
	}
	r.NotFound = handlers.Fallback.NotFound
	r.MethodNotAllowed = handlers.Fallback.MethodNotAllowed
	r.PanicHandler = handlers.Fallback.Panic

	return r
}

func get(r *router.Router, path string, h fasthttp.RequestHandler) {
	r.GET(path, withRoute(path, h))
}

func post(r *router.Router, path string, h fasthttp.RequestHandler) {
	r.POST(path, withRoute(path, h))
}

// withRoute records the route pattern for the access log's metrics label.
func withRoute(path string, h fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		ctx.SetUserValue(middleware.RoutePathKey, path)
		h(ctx)
	}
}
