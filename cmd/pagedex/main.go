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

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kailas-cloud/pagedex/internal/config"
	"github.com/kailas-cloud/pagedex/internal/db"
	dbRedis "github.com/kailas-cloud/pagedex/internal/db/redis"
	"github.com/kailas-cloud/pagedex/internal/domain"
	"github.com/kailas-cloud/pagedex/internal/domain/method"
	logpkg "github.com/kailas-cloud/pagedex/internal/logger"
	"github.com/kailas-cloud/pagedex/internal/markdown"
	"github.com/kailas-cloud/pagedex/internal/metrics"
	"github.com/kailas-cloud/pagedex/internal/repository/content"
	"github.com/kailas-cloud/pagedex/internal/repository/dirsource"
	"github.com/kailas-cloud/pagedex/internal/repository/doccache"
	chiTransport "github.com/kailas-cloud/pagedex/internal/transport/chi"
	"github.com/kailas-cloud/pagedex/internal/transport/httpsource"
	bloguc "github.com/kailas-cloud/pagedex/internal/usecase/blog"
	healthuc "github.com/kailas-cloud/pagedex/internal/usecase/health"
	portfoliouc "github.com/kailas-cloud/pagedex/internal/usecase/portfolio"
	referenceuc "github.com/kailas-cloud/pagedex/internal/usecase/reference"
	"github.com/kailas-cloud/pagedex/internal/version"
	"github.com/kailas-cloud/pagedex/internal/view"
)

func main() {
	// .env is optional; real environment variables win.
	envFileErr := godotenv.Load()

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

	if envFileErr != nil && !errors.Is(envFileErr, os.ErrNotExist) {
		logger.Warn("Failed to load .env file", zap.Error(envFileErr))
	}

	logger.Info("Starting pagedex server",
		zap.String("build", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("source_kind", cfg.Source.Kind),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	metrics.RegisterContentMetrics()

	source, err := buildSource(&cfg.Source, logger)
	if err != nil {
		logger.Fatal("Failed to create content source", zap.Error(err))
	}

	// Optional document cache in front of the source.
	var (
		cachePinger healthuc.CachePinger
		purger      chiTransport.CachePurger
	)
	if cfg.Cache.Enabled {
		store, err := openStore(&cfg.Cache, logger)
		if err != nil {
			logger.Fatal("Failed to open cache store", zap.Error(err))
		}
		defer store.Close()

		cached := doccache.New(
			source, store, time.Duration(cfg.Cache.TTLSec)*time.Second,
			metrics.DocumentCacheTotal, logger,
		)
		source = cached
		cachePinger = store
		purger = cached
	}

	repo := content.New(source, content.DefaultPaths())

	referenceSvc := referenceuc.New(repo, method.Standard(cfg.Reference.DefaultStandard))
	blogSvc := bloguc.New(repo, markdown.New())
	portfolioSvc := portfoliouc.New(repo)

	var sourceChecker healthuc.SourceChecker
	if hc, ok := source.(domain.HealthChecker); ok {
		sourceChecker = hc
	}
	healthSvc := healthuc.New(cachePinger, sourceChecker)

	pages, err := view.New()
	if err != nil {
		logger.Fatal("Failed to parse page templates", zap.Error(err))
	}

	server := chiTransport.NewServer(referenceSvc, blogSvc, portfolioSvc, healthSvc, purger, pages, logger)
	handler := chiTransport.NewRouter(server, chiTransport.RouterConfig{
		APIKeys:        cfg.Auth.APIKeys,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

// buildSource creates the content source selected by cfg.Kind.
func buildSource(cfg *config.SourceConfig, logger *zap.Logger) (domain.Source, error) {
	switch cfg.Kind {
	case config.SourceHTTP:
		src, err := httpsource.New(&httpsource.Config{
			BaseURL:          cfg.BaseURL,
			Timeout:          time.Duration(cfg.TimeoutSec) * time.Second,
			MaxDocumentBytes: cfg.MaxDocumentBytes,
			Logger:           logger,
		})
		if err != nil {
			return nil, fmt.Errorf("http source: %w", err)
		}
		return src, nil
	case config.SourceDir:
		src, err := dirsource.New(cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("dir source: %w", err)
		}
		return src, nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}

// openStore connects to the cache and waits until it answers.
// Valkey and Redis share one client implementation.
func openStore(cfg *config.CacheConfig, logger *zap.Logger) (db.Store, error) {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Addrs,
		Password: cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s store: %w", cfg.Driver, err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		return nil, fmt.Errorf("%s not ready: %w", cfg.Driver, err)
	}
	logger.Info("Connected to cache", zap.String("driver", cfg.Driver), zap.Strings("addrs", cfg.Addrs))
	return store, nil
}
