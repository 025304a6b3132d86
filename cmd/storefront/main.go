package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abdo0vuln/e-commerce/internal/auth"
	"github.com/abdo0vuln/e-commerce/internal/cache"
	"github.com/abdo0vuln/e-commerce/internal/events"
	"github.com/abdo0vuln/e-commerce/internal/httpapi"
	"github.com/abdo0vuln/e-commerce/internal/repository"
	"github.com/abdo0vuln/e-commerce/internal/service"
)

type Config struct {
	HTTPPort        string
	MongoURI        string
	MongoDBName     string
	RedisAddr       string
	RedisPassword   string
	KafkaBrokers    string
	JWTSecret       string
	PublicDir       string
	Env             string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGO_DB_NAME", "algerianstyle"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key"),
		PublicDir:       getEnv("PUBLIC_DIR", "public"),
		Env:             getEnv("APP_ENV", "development"),
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
	cfg := loadConfig()
	ctx := context.Background()

	// Set up MongoDB connection
	db, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.KafkaBrokers != "" {
		kp := events.NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ",")...)
		defer kp.Close()
		publisher = kp
		log.Printf("Order events publishing to %s", cfg.KafkaBrokers)
	} else {
		log.Printf("No Kafka brokers configured, order events disabled")
	}

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	tokens := auth.NewTokens(cfg.JWTSecret)
	catalogCache := cache.NewRedisCache(redisClient)

	authService := service.NewAuthService(userRepo, tokens)
	catalogService := service.NewCatalogService(productRepo, categoryRepo, catalogCache)
	orderService := service.NewOrderService(orderRepo, productRepo, catalogService, publisher)
	userService := service.NewUserService(userRepo, productRepo)

	production := cfg.Env == "production"
	uploadsDir := filepath.Join(cfg.PublicDir, "uploads")

	router := httpapi.NewRouter(httpapi.RouterConfig{
		Tokens:         tokens,
		Auth:           httpapi.NewAuthHandler(authService, tokens, production),
		Products:       httpapi.NewProductHandler(catalogService),
		Categories:     httpapi.NewCategoryHandler(catalogService),
		Orders:         httpapi.NewOrderHandler(orderService),
		Users:          httpapi.NewUserHandler(userService),
		Upload:         httpapi.NewUploadHandler(uploadsDir),
		Seed:           httpapi.NewSeedHandler(db, production),
		UploadsDir:     uploadsDir,
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
		log.Printf("Storefront API starting on :%s", cfg.HTTPPort)
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

	if err := db.Client().Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect error: %v", err)
	}

	log.Println("server exited")
}
