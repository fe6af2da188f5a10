package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/kailas-cloud/soartv/internal/bounded"
	"github.com/kailas-cloud/soartv/internal/config"
	dbRedis "github.com/kailas-cloud/soartv/internal/db/redis"
	logpkg "github.com/kailas-cloud/soartv/internal/logger"
	"github.com/kailas-cloud/soartv/internal/metrics"
	catalogrepo "github.com/kailas-cloud/soartv/internal/repository/catalog"
	"github.com/kailas-cloud/soartv/internal/repository/filestore"
	profilerepo "github.com/kailas-cloud/soartv/internal/repository/profile"
	projectrepo "github.com/kailas-cloud/soartv/internal/repository/project"
	chiTransport "github.com/kailas-cloud/soartv/internal/transport/chi"
	"github.com/kailas-cloud/soartv/internal/transport/gcs"
	catalogUC "github.com/kailas-cloud/soartv/internal/usecase/catalog"
	healthUC "github.com/kailas-cloud/soartv/internal/usecase/health"
	objectUC "github.com/kailas-cloud/soartv/internal/usecase/object"
	profileUC "github.com/kailas-cloud/soartv/internal/usecase/profile"
	projectUC "github.com/kailas-cloud/soartv/internal/usecase/project"
	recommendationUC "github.com/kailas-cloud/soartv/internal/usecase/recommendation"
	uploadUC "github.com/kailas-cloud/soartv/internal/usecase/upload"
	"github.com/kailas-cloud/soartv/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level, zap.String("version", version.Version))
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting SoarTV API server",
		zap.String("commit", version.Commit),
		zap.String("build_date", version.Date),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.Bool("object_storage", cfg.Objects.Bucket != ""),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register recommendation metrics explicitly (no init())
	metrics.RegisterRecommendationMetrics()

	// Object storage is optional; without a bucket uploads answer 503.
	var bucket objectUC.Bucket
	var storagePinger healthUC.StoragePinger
	if cfg.Objects.Bucket != "" {
		b, err := gcs.New(ctx, gcs.Config{
			Bucket:          cfg.Objects.Bucket,
			CredentialsFile: cfg.Objects.CredentialsFile,
			Endpoint:        cfg.Objects.Endpoint,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to create object storage client", zap.Error(err))
		}
		defer func() { _ = b.Close() }()
		bucket, storagePinger = b, b
	}

	guard := bounded.NewGuard(bounded.Settings{
		Name:             "document_store",
		Timeout:          time.Duration(cfg.Fallback.TimeoutMs) * time.Millisecond,
		FailureThreshold: cfg.Fallback.FailureThreshold,
		OpenTimeout:      time.Duration(cfg.Fallback.OpenTimeoutSec) * time.Second,
	}, logger)

	// Repositories
	profileRepo := profilerepo.New(store)
	projectRepo := projectrepo.New(store)
	uploads := filestore.Open(cfg.Fallback.ProjectsFile, logger)

	// Use case services
	clock := time.Now
	services := chiTransport.Services{
		Catalog:  catalogUC.New(catalogrepo.New()),
		Objects:  objectUC.New(bucket, cfg.Objects.UploadPrefix, time.Duration(cfg.Objects.UploadTTLSec)*time.Second),
		Uploads:  uploadUC.New(uploads, clock),
		Profiles: profileUC.New(profileRepo),
		Projects: projectUC.New(projectRepo, clock),
		Recommendations: recommendationUC.New(profileRepo, projectRepo, guard, clock, recommendationUC.Options{
			RecentLimit:           cfg.Recommendation.RecentLimit,
			EnrichmentConcurrency: cfg.Recommendation.EnrichmentConcurrency,
		}),
		Health: healthUC.New(store, storagePinger, guard),
	}

	server := chiTransport.NewServer(services, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.CORS(cfg.HTTP.CORSOrigins))
	r.Use(chiTransport.RateLimit(cfg.HTTP.RateLimitRPM))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Mount(r)
	if cfg.HTTP.StaticDir != "" {
		r.NotFound(chiTransport.SPAHandler(cfg.HTTP.StaticDir).ServeHTTP)
		logger.Info("Serving web client", zap.String("dir", cfg.HTTP.StaticDir))
	}

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.String("path", r.URL.Path),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.CodeInternalError,
						Message: "internal error",
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
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
