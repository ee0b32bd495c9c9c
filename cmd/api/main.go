package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/maricoIR/HengamGallery/internal/breaker"
	"github.com/maricoIR/HengamGallery/internal/cache"
	cartservice "github.com/maricoIR/HengamGallery/internal/cart/service"
	catalogrepo "github.com/maricoIR/HengamGallery/internal/catalog/repository"
	catalogservice "github.com/maricoIR/HengamGallery/internal/catalog/service"
	"github.com/maricoIR/HengamGallery/internal/checkout"
	"github.com/maricoIR/HengamGallery/internal/config"
	"github.com/maricoIR/HengamGallery/internal/events"
	"github.com/maricoIR/HengamGallery/internal/favorites"
	h "github.com/maricoIR/HengamGallery/internal/http"
	"github.com/maricoIR/HengamGallery/internal/identity"
	ordersrepo "github.com/maricoIR/HengamGallery/internal/orders/repository"
)

func main() {
	cfg := config.Load()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	cancel()

	// Snapshots survive restarts, so no TTL; the catalog cache expires.
	snapshots := breaker.Wrap(cache.NewRedisStore(redisClient), "snapshots")
	catalogCache := breaker.Wrap(cache.NewRedisCache(redisClient, 5*time.Minute), "catalog-cache")

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBrokers...)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Printf("publishing events to kafka at %v", cfg.KafkaBrokers)
	}

	var delayer catalogrepo.Delayer = catalogrepo.NopDelayer{}
	if cfg.SimulateLatency {
		delayer = catalogrepo.SleepDelayer{}
	}

	catalogRepo := catalogrepo.NewMemoryRepository(delayer)
	catalogSvc := catalogservice.NewCatalogService(catalogRepo, catalogCache)

	cartSvc := cartservice.NewService(snapshots, publisher, cartservice.SystemClock{})
	favoritesSvc := favorites.NewService(snapshots, publisher)
	identityStore := identity.NewStore(identity.StaticChecker{}, snapshots, delayer, identity.SystemClock{})

	orderRepo, err := ordersrepo.NewRepository(cfg.OrdersDBPath)
	if err != nil {
		log.Fatalf("failed to open orders database: %v", err)
	}
	defer orderRepo.Close()

	if err := orderRepo.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	checkoutSvc := checkout.NewService(cartSvc, orderRepo, publisher)

	router := h.NewRouter(h.RouterDeps{
		Catalog:        h.NewCatalogHandler(catalogSvc),
		Cart:           h.NewCartHandler(cartSvc, catalogSvc),
		Favorites:      h.NewFavoritesHandler(favoritesSvc, catalogSvc),
		Auth:           h.NewAuthHandler(identityStore),
		Checkout:       h.NewCheckoutHandler(checkoutSvc, cartSvc, identityStore),
		Orders:         h.NewOrdersHandler(orderRepo, identityStore),
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront API starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
