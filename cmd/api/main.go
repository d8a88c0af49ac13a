package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shopori/cart-service/api/routes"
	"github.com/shopori/cart-service/internal/cart"
	"github.com/shopori/cart-service/internal/catalog"
	checkoutsvc "github.com/shopori/cart-service/internal/checkout"
	"github.com/shopori/cart-service/internal/profile"
	"github.com/shopori/cart-service/pkg/config"
	"github.com/shopori/cart-service/pkg/db"
	"github.com/shopori/cart-service/pkg/logger"
	"github.com/shopori/cart-service/pkg/metrics"
	"github.com/shopori/cart-service/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "cart-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "cart-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open local store", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing local store", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	cartMetrics := metrics.NewCartMetrics(registry)

	catalogClient, err := catalog.NewClient(cfg.Backend, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog client", err)
		os.Exit(1)
	}
	orderClient, err := checkoutsvc.NewClient(cfg.Backend, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout client", err)
		os.Exit(1)
	}

	broadcaster := cart.NewBroadcaster()
	broadcaster.Subscribe(cart.ObserverFunc(func(ctx context.Context, event cart.ChangeEvent) {
		cartMetrics.IncMutation(string(event.Kind))
		cartMetrics.SetCartSize(event.ItemCount)
	}))
	broadcaster.Subscribe(cart.ObserverFunc(func(ctx context.Context, event cart.ChangeEvent) {
		ctx = logg.WithFields(ctx, map[string]any{
			"kind":       string(event.Kind),
			"item_count": event.ItemCount,
		})
		logg.Debug(ctx, "cart.changed")
	}))

	cartService, err := cart.NewService(cart.NewRepository(dbClient.DB()), catalogClient, broadcaster, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(cartService, orderClient, checkoutsvc.NewCalculator(cfg.Shipping), cartMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	profileRepo := profile.NewRepository(dbClient.DB())

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting cart api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, registry, catalogClient, cartService, checkoutService, profileRepo),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "cart api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
