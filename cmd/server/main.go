package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/jsonize/api/handler"
	"github.com/fastygo/jsonize/internal/config"
	"github.com/fastygo/jsonize/internal/metrics"
	"github.com/fastygo/jsonize/internal/middleware"
	"github.com/fastygo/jsonize/internal/router"
	"github.com/fastygo/jsonize/internal/services/lifecycle"
	"github.com/fastygo/jsonize/pkg/httpcontext"
	"github.com/fastygo/jsonize/pkg/jsonize"
	"github.com/fastygo/jsonize/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	var appMetrics *metrics.Metrics
	if cfg.HTTP.EnableMetrics {
		appMetrics = metrics.New()
	}

	opts := apiHandler.Options{
		Adapter: httpcontext.NewAdapter(cfg.Context.RequestTimeout),
		Logger:  zapLogger,
		Metrics: appMetrics,
		Headers: jsonize.NewHeader(
			"Access-Control-Allow-Methods", cfg.CORS.AllowMethods,
			"Access-Control-Allow-Headers", cfg.CORS.AllowHeaders,
		),
		AllowOrigin: cfg.CORS.AllowOrigin,
	}

	handlers := router.Handlers{
		Health:   apiHandler.NewHealthHandler(cfg.AppName, cfg.Environment, opts),
		Status:   apiHandler.NewStatusHandler(opts),
		Envelope: apiHandler.NewEnvelopeHandler(opts),
		Fallback: apiHandler.NewFallbackHandler(opts),
	}

	r := router.New(handlers, router.Options{
		Preflight: middleware.Preflight(cfg.CORS),
		Metrics:   appMetrics,
		Pprof:     cfg.HTTP.EnablePprof,
	})

	server := &fasthttp.Server{
		Handler:      middleware.AccessLog(zapLogger, appMetrics)(r.Handler),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Concurrency:  cfg.HTTP.MaxConn,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.Bool("metrics", appMetrics != nil),
			zap.Bool("pprof", cfg.HTTP.EnablePprof),
		)
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Error("server stopped", zap.Error(err))
			cancel()
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
