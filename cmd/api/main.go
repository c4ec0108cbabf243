package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nammaelampillai-official/namma-elampillai/api/routes"
	authsvc "github.com/nammaelampillai-official/namma-elampillai/internal/auth"
	"github.com/nammaelampillai-official/namma-elampillai/internal/catalog"
	"github.com/nammaelampillai-official/namma-elampillai/internal/content"
	"github.com/nammaelampillai-official/namma-elampillai/internal/mailer"
	ordersvc "github.com/nammaelampillai-official/namma-elampillai/internal/orders"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/config"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/db"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/metrics"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/migrate"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, order idempotency guard disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	orderMetrics := metrics.NewOrderMetrics(registry)

	contentService := content.NewService(content.NewRepo(dbClient), logg)
	dispatcher := mailer.NewDispatcher(
		mailer.NewSender(cfg.SMTP, logg),
		contentService,
		cfg.Site.PublicBaseURL,
		orderMetrics,
		logg,
	)
	if !cfg.SMTP.HasCredentials() {
		logg.Warn(context.Background(), "smtp credentials not configured, email delivery is simulated")
	}

	catalogService := catalog.NewService(catalog.NewRepo(dbClient), logg)
	ordersService := ordersvc.NewService(
		ordersvc.NewRepo(dbClient),
		ordersvc.NewFileStore(cfg.Orders.FallbackPath),
		catalogService,
		dispatcher,
		orderMetrics,
		logg,
	)

	tokens := authsvc.NewTokenIssuer(cfg.JWT)
	authService := authsvc.NewService(cfg.Auth, tokens, contentService, dispatcher, logg)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:     cfg,
			Logger:     logg,
			DB:         dbClient,
			Redis:      redisClient,
			Registry:   registry,
			Tokens:     tokens,
			Auth:       authService,
			Catalog:    catalogService,
			Content:    contentService,
			Orders:     ordersService,
			Dispatcher: dispatcher,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
