// Command arkcutt runs the drafting HTTP API: DXF analysis, text
// vectorization and description-driven shape generation.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Arkcutt12/Ark-ai-agent/internal/config"
	"github.com/Arkcutt12/Ark-ai-agent/internal/db"
	dbRedis "github.com/Arkcutt12/Ark-ai-agent/internal/db/redis"
	"github.com/Arkcutt12/Ark-ai-agent/internal/draft/dxf"
	logpkg "github.com/Arkcutt12/Ark-ai-agent/internal/logger"
	"github.com/Arkcutt12/Ark-ai-agent/internal/metrics"
	"github.com/Arkcutt12/Ark-ai-agent/internal/repository/analysiscache"
	chiTransport "github.com/Arkcutt12/Ark-ai-agent/internal/transport/chi"
	openaiInterp "github.com/Arkcutt12/Ark-ai-agent/internal/transport/openai"
	"github.com/Arkcutt12/Ark-ai-agent/internal/usecase/analyze"
	"github.com/Arkcutt12/Ark-ai-agent/internal/usecase/generate"
	healthuc "github.com/Arkcutt12/Ark-ai-agent/internal/usecase/health"
	"github.com/Arkcutt12/Ark-ai-agent/internal/usecase/interpret"
	"github.com/Arkcutt12/Ark-ai-agent/internal/usecase/vectorize"
	"github.com/Arkcutt12/Ark-ai-agent/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting arkcutt API server",
		zap.String("build", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("output_dir", cfg.Output.Dir),
	)

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		logger.Fatal("Failed to create output directory", zap.Error(err))
	}

	ctx := context.Background()

	// Optional analysis cache store
	var store db.Store
	if len(cfg.Cache.Addrs) > 0 {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		readiness := time.Duration(cfg.Cache.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, readiness); err != nil {
			logger.Fatal("Cache store not ready", zap.Error(err))
		}
		logger.Info("Connected to cache store", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	// Register drafting metrics explicitly (no init())
	metrics.RegisterDraftingMetrics()

	// Use case services — all drawing goes through the DXF writer
	vectorizeSvc := vectorize.New(dxf.New).
		WithAnchor(cfg.Drawing.AnchorX, cfg.Drawing.AnchorY)
	generateSvc := generate.New(dxf.New)
	interpretSvc := interpret.New()

	// Analyzer chain: engine -> optional cache decorator
	var analyzer chiTransport.Analyzer = analyze.New()
	if store != nil {
		ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour
		analyzer = analysiscache.New(analyze.New(), store, ttl, metrics.AnalysisCacheTotal, logger)
	}

	// Optional LLM interpretation refiner
	var refiner chiTransport.Refiner
	var interpChecker healthuc.InterpreterChecker
	if cfg.Interpreter.Enabled {
		llm := openaiInterp.NewInterpreter(&openaiInterp.Config{
			APIKey:  cfg.Interpreter.APIKey,
			BaseURL: cfg.Interpreter.BaseURL,
			Model:   cfg.Interpreter.Model,
			Logger:  logger,
		})
		refiner = llm
		interpChecker = llm
		logger.Info("LLM interpreter enabled", zap.String("model", cfg.Interpreter.Model))
	}

	// Pass nil interface (not typed nil pointer!) if the store is not configured.
	var cachePinger healthuc.CachePinger
	if store != nil {
		cachePinger = store
	}
	healthSvc := healthuc.New(cachePinger, interpChecker, cfg.Output.Dir)

	server := chiTransport.NewServer(
		vectorizeSvc, interpretSvc, refiner, generateSvc,
		analyzer, healthSvc, cfg.Output.Dir, logger,
	)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
