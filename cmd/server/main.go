package main

import (
	"context" // context package is needed for Redis operations
	"os"      // For stdout logging

	"thrift_manager/internal/api"        // Custom package for API handlers
	"thrift_manager/internal/config"     // Custom package for configuration
	"thrift_manager/internal/db"         // Custom package for database setup
	"thrift_manager/internal/middleware" // Custom package for middleware
	"thrift_manager/internal/service"    // Custom package for business logic
	"thrift_manager/internal/store"      // Custom package for repositories
	"thrift_manager/internal/utils"      // Custom package for cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration
	setupLogger(cfg)           // Setup logger
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Connect to the database
	gdb, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	cache := setupCache(cfg) // Redis cache, or a no-op without REDIS_ADDR

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := service.New(store.New(gdb), cache, cfg.JWTSecret, cfg.SessionTTL) // Wire services
	r := api.NewRouter(svc, api.RouterOptions{
		IsProd:  cfg.IsProd,
		Metrics: middleware.NewMetrics(),
	})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.WithFields(logrus.Fields{"port": cfg.AppPort, "prod": cfg.IsProd}).Info("Server running") // Log server start
	// Start the server on port cfg.AppPort
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}

// setupLogger configures logrus from the environment
func setupLogger(cfg *config.Config) {
	logrus.SetOutput(os.Stdout)
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{}) // Machine readable in production
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithField("level", cfg.LogLevel).Warn("unknown LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// setupCache connects to Redis when configured
func setupCache(cfg *config.Config) utils.Cache {
	if cfg.RedisAddr == "" {
		logrus.Info("REDIS_ADDR not set, dashboard caching disabled")
		return utils.NopCache{}
	}
	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})
	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}
	return utils.NewRedisCache(redisClient, cfg.CacheTTL)
}
