package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"grubdash/internal/cache"
	"grubdash/internal/config"
	"grubdash/internal/domain"
	"grubdash/internal/events"
	"grubdash/internal/httpapi"
	"grubdash/internal/ids"
	"grubdash/internal/observability"
	"grubdash/internal/service"
	"grubdash/internal/store"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	dishSeed, err := store.LoadSeed[domain.Dish](cfg.Seed.Dishes)
	if err != nil {
		logger.Fatal("load dish seed", zap.Error(err))
	}
	orderSeed, err := store.LoadSeed[domain.Order](cfg.Seed.Orders)
	if err != nil {
		logger.Fatal("load order seed", zap.Error(err))
	}

	dishStore := store.New(func(d domain.Dish) string { return d.ID }, dishSeed...)
	orderStore := store.New(func(o domain.Order) string { return o.ID }, orderSeed...)

	dishCache, err := cache.New[domain.Dish](cfg.Cache.Size)
	if err != nil {
		logger.Fatal("create dish cache", zap.Error(err))
	}
	orderCache, err := cache.New[domain.Order](cfg.Cache.Size)
	if err != nil {
		logger.Fatal("create order cache", zap.Error(err))
	}

	var publisher events.Publisher = events.Noop{}
	if len(cfg.Kafka.Brokers) > 0 {
		kp := events.NewKafka(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() { _ = kp.Close() }()
		publisher = kp
	}

	metrics := observability.NewInmem(100)
	gen := ids.UUID{}

	dishes := service.NewDishes(dishStore, dishCache, gen, logger, metrics)
	orders := service.NewOrders(orderStore, orderCache, gen, publisher, logger, metrics)

	server := httpapi.New(dishes, orders, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("server starting",
		zap.String("addr", cfg.HTTP.Addr),
		zap.Int("dishes", dishStore.Len()),
		zap.Int("orders", orderStore.Len()),
	)
	if err := server.ListenAndServe(ctx, cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("listen", zap.Error(err))
	}
	logger.Info("server stopped")
}
