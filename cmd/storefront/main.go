package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/config"
	h "github.com/fjod/go_storefront/internal/http"
	"github.com/fjod/go_storefront/internal/notify"
	"github.com/fjod/go_storefront/internal/service"
	"github.com/fjod/go_storefront/internal/session"
	"github.com/fjod/go_storefront/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel).With("service", "storefront")
	slog.SetDefault(log)

	ctx := context.Background()

	// Spans are not exported; the provider gives otelhttp real span contexts for log correlation.
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error("tracer provider shutdown failed", "err", err)
		}
	}()

	products, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Error("catalog load failed", "err", err)
		os.Exit(1)
	}

	store, closeStore, err := openSessionStore(ctx, cfg, log)
	if err != nil {
		log.Error("session store setup failed", "err", err)
		os.Exit(1)
	}
	defer closeStore()

	sinks := notify.Multi{notify.NewLogSink(log)}
	if len(cfg.KafkaBrokers) > 0 {
		writer := notify.NewKafkaWriter(cfg.KafkaTopic, cfg.KafkaBrokers...)
		defer writer.Close()
		sinks = append(sinks, notify.NewKafkaSink(writer, log))
		log.Info("kafka notifications enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	svc := service.NewStorefrontService(products, store, sinks, log)
	handler := h.NewHandler(svc, cfg.RequestTimeout)

	r := h.NewRouter(h.RouterConfig{
		RequestTimeout:     cfg.RequestTimeout,
		SessionTTL:         cfg.SessionTTL,
		MaxRequestBodySize: cfg.MaxRequestBodySize,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	}, handler)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(r, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("storefront listening", "port", cfg.HTTPPort, "session_store", cfg.SessionStore, "catalog", cfg.CatalogSource)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "err", err)
	}
	log.Info("server exited")
}

func loadCatalog(ctx context.Context, cfg *config.Config) (catalog.Catalog, error) {
	if cfg.CatalogSource == config.CatalogSQLite {
		c, err := catalog.LoadSQLite(ctx, cfg.CatalogDBPath)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return catalog.Default(), nil
}

func openSessionStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (session.Store, func(), error) {
	if cfg.SessionStore != config.SessionStoreRedis {
		store := session.NewMemoryStore(cfg.SessionTTL)
		return store, func() { store.Close() }, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		redisClient.Close()
		return nil, nil, err
	}
	log.Info("redis ping succeeded", "addr", cfg.RedisAddr)

	store := session.NewRedisStore(redisClient, cfg.SessionTTL)
	return store, func() {
		store.Close()
		redisClient.Close()
	}, nil
}
