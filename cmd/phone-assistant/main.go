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
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ashk12/phone-assistant/internal/catalog"
	"github.com/ashk12/phone-assistant/internal/config"
	dbRedis "github.com/ashk12/phone-assistant/internal/db/redis"
	"github.com/ashk12/phone-assistant/internal/index"
	logpkg "github.com/ashk12/phone-assistant/internal/logger"
	"github.com/ashk12/phone-assistant/internal/metrics"
	"github.com/ashk12/phone-assistant/internal/repository/anscache"
	"github.com/ashk12/phone-assistant/internal/safety"
	chiTransport "github.com/ashk12/phone-assistant/internal/transport/chi"
	llm "github.com/ashk12/phone-assistant/internal/transport/openai"
	"github.com/ashk12/phone-assistant/internal/usecase/assistant"
	"github.com/ashk12/phone-assistant/internal/version"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

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

	logger.Info("Starting phone-assistant API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("model", cfg.LLM.Model),
	)

	// Register generation metrics explicitly (no init())
	metrics.RegisterGenerationMetrics()

	// Load the catalog and build the similarity index together: both are
	// read-only from here on and shared across concurrent requests.
	ctx := context.Background()
	loader := catalog.NewLoader(cfg.Catalog.RemoteURL, cfg.Catalog.LocalPath, logger)
	snap := loader.Load(ctx)
	store := catalog.NewStore(snap.Products)
	idx := index.Build(snap.Products, index.Options{
		MaxVocabulary: cfg.Retrieval.MaxVocabulary,
		MinScore:      cfg.Retrieval.MinScore,
	})
	logger.Info("catalog ready",
		zap.Int("products", store.Len()),
		zap.String("source", string(snap.Source)),
	)

	llmClient := llm.NewClient(&llm.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Logger:  logger,
	})

	// Optional answer cache over Redis.
	var generator assistant.Generator = llmClient
	if cfg.Cache.Enabled {
		kv, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer kv.Close()

		if err := kv.WaitForReady(ctx, 10*time.Second); err != nil {
			logger.Fatal("Cache store not ready", zap.Error(err))
		}

		generator = anscache.New(
			llmClient, kv,
			time.Duration(cfg.Cache.TTLSec)*time.Second,
			metrics.AnswerCacheTotal, logger,
		)
		logger.Info("answer cache enabled", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	gate := safety.NewGate(llmClient, logger)

	svc := assistant.New(store, idx, llmClient, generator, gate, logger).
		WithTunables(assistant.Tunables{
			TopK:       cfg.Retrieval.TopK,
			MaxContext: cfg.Retrieval.MaxContext,
		})

	server := chiTransport.NewServer(svc, store, snap.Source, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Register(r)

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
						"error": "internal error",
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

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
