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

	cacheRedis "github.com/apatrida/cardindex/internal/cache/redis"
	"github.com/apatrida/cardindex/internal/config"
	"github.com/apatrida/cardindex/internal/engine/elastic"
	logpkg "github.com/apatrida/cardindex/internal/logger"
	"github.com/apatrida/cardindex/internal/metrics"
	documentrepo "github.com/apatrida/cardindex/internal/repository/document"
	"github.com/apatrida/cardindex/internal/repository/schema"
	searchrepo "github.com/apatrida/cardindex/internal/repository/search"
	"github.com/apatrida/cardindex/internal/repository/searchcache"
	sourcerepo "github.com/apatrida/cardindex/internal/repository/source"
	chiTransport "github.com/apatrida/cardindex/internal/transport/chi"
	documentuc "github.com/apatrida/cardindex/internal/usecase/document"
	healthuc "github.com/apatrida/cardindex/internal/usecase/health"
	searchuc "github.com/apatrida/cardindex/internal/usecase/search"
	syncuc "github.com/apatrida/cardindex/internal/usecase/sync"
	"github.com/apatrida/cardindex/internal/version"
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

	logger.Info("Starting cardindex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("engine_addrs", cfg.Engine.Addresses),
	)

	store, err := elastic.NewStore(elastic.Config{
		Addresses: cfg.Engine.Addresses,
		Username:  cfg.Engine.Username,
		Password:  cfg.Engine.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create engine store", zap.Error(err))
	}
	defer store.Close()

	// Wait for the engine to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Engine.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Engine not ready", zap.Error(err))
	}
	logger.Info("Connected to search engine")

	// Bootstrap index schemas before serving any traffic
	schemaManager := schema.New(store, cfg.Indexes.Templates, cfg.Indexes.Suggestions, logger)
	if err := schemaManager.EnsureAll(ctx); err != nil {
		logger.Fatal("Failed to bootstrap index schemas", zap.Error(err))
	}

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Repositories
	docRepo := documentrepo.New(store, cfg.Indexes.Templates, cfg.Indexes.Suggestions)
	var searchRepo searchuc.Repository = searchrepo.New(store, cfg.Indexes.Templates, cfg.Indexes.Suggestions)

	// Optional search result cache
	if cfg.Cache.Enabled {
		kv, err := cacheRedis.NewStore(cacheRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer kv.Close()

		searchRepo = searchcache.New(
			searchRepo, kv,
			time.Duration(cfg.Cache.TTLSec)*time.Second,
			metrics.SearchCacheTotal, logger,
		)
		logger.Info("Search result cache enabled", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	// Use case services
	planner := searchuc.NewPlanner(searchuc.Boosts{
		Tags:        cfg.Search.Boosts.Tags,
		Title:       cfg.Search.Boosts.Title,
		Author:      cfg.Search.Boosts.Author,
		Classes:     cfg.Search.Boosts.Classes,
		Description: cfg.Search.Boosts.Description,
	})
	searchSvc := searchuc.New(searchRepo, planner, logger)
	docSvc := documentuc.New(docRepo, logger)

	// Optional change-feed sync driver
	var sourceRepo *sourcerepo.Repo
	if cfg.Source.DSN != "" {
		sourceRepo, err = sourcerepo.New(ctx, cfg.Source.DSN)
		if err != nil {
			logger.Fatal("Failed to connect change-feed source", zap.Error(err))
		}
		defer sourceRepo.Close()

		syncer := syncuc.New(
			sourceRepo, docRepo,
			time.Duration(cfg.Source.PollIntervalSec)*time.Second,
			time.Duration(cfg.Source.OverlapSec)*time.Second,
			logger,
		)
		go syncer.Run(ctx)
		logger.Info("Change-feed sync started",
			zap.Int("poll_interval_sec", cfg.Source.PollIntervalSec))
	}

	// Pass nil interface (not typed nil pointer!) if no source is configured.
	var sourcePinger healthuc.SourcePinger
	if sourceRepo != nil {
		sourcePinger = sourceRepo
	}
	healthSvc := healthuc.New(store, sourcePinger)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, docSvc, healthSvc, cfg.Search.DefaultPageSize, logger)

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
