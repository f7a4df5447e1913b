package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Mykyta-G/Webbshop/internal/cart"
	"github.com/Mykyta-G/Webbshop/internal/catalog"
	"github.com/Mykyta-G/Webbshop/internal/catalog/cache"
	"github.com/Mykyta-G/Webbshop/internal/checkout"
	h "github.com/Mykyta-G/Webbshop/internal/http"
)

type Config struct {
	HTTPPort        string
	DBPath          string
	MigrationsPath  string
	CartPath        string
	RedisAddr       string
	RedisPassword   string
	KafkaBrokers    string
	StaticDir       string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "3000"),
		DBPath:          getEnv("DB_PATH", "./webshop.db"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./internal/catalog/migrations"),
		CartPath:        getEnv("CART_PATH", "./cart.json"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", "localhost:9092"),
		StaticDir:       getEnv("STATIC_DIR", ""),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	log.Println("Webbshop server starting")

	cfg := loadConfig()
	ctx := context.Background()

	// Catalog store
	repo, err := catalog.NewSQLiteRepository(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Catalog cache; the server runs without it if Redis is unreachable
	var productCache cache.ProductCache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unreachable, catalog cache disabled: %v", err)
	} else {
		productCache = cache.NewRedisCache(redisClient)
		log.Println("Redis ping succeeded, catalog cache enabled")
	}

	catalogService := catalog.NewService(repo, productCache)

	// Cart ledger, persisted like the browser cart was
	ledger := cart.NewLedger(cart.NewFileStore(cfg.CartPath))

	// Order delivery channel
	publisher := checkout.NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ",")...)
	defer publisher.Close()

	productHandler := h.NewProductHandler(catalogService, cfg.RequestTimeout)
	cartHandler := h.NewCartHandler(ledger, cfg.RequestTimeout)
	checkoutHandler := h.NewCheckoutHandler(ledger, checkout.NewAssembler(), publisher, cfg.RequestTimeout)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(h.RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Post("/", productHandler.Create)
			r.Get("/{id}", productHandler.Get)
			r.Delete("/{id}", productHandler.Delete)
		})
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Delete("/", cartHandler.Clear)
			r.Post("/items", cartHandler.AddItem)
			r.Patch("/items/{id}", cartHandler.AdjustQuantity)
			r.Delete("/items/{id}", cartHandler.RemoveItem)
		})
		r.Post("/checkout", checkoutHandler.Submit)
	})

	// Static frontend, when one is configured
	if cfg.StaticDir != "" {
		fs := http.FileServer(http.Dir(cfg.StaticDir))
		r.Handle("/*", fs)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(r, "webshop"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on http://localhost:%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
