package config

import (
	"errors"  // For validation errors
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For TTL parsing

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort    string        // Application port
	DBUser     string        // Database user
	DBPassword string        // Database password
	DBHost     string        // Database host
	DBPort     string        // Database port
	DBName     string        // Database name
	JWTSecret  string        // JWT secret key
	RedisAddr  string        // Redis server address, empty disables caching
	RedisPass  string        // Redis password
	RedisDB    int           // Redis database number
	IsProd     bool          // Is production environment
	SessionTTL time.Duration // Lifetime of the session token and cookie
	CacheTTL   time.Duration // Lifetime of cached dashboard responses
	LogLevel   string        // logrus level name
}

const (
	defaultPort       = "5000"
	defaultSessionTTL = 7 * 24 * time.Hour
	defaultCacheTTL   = 60 * time.Second
)

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:    getEnv("APP_PORT", defaultPort),               // Application port
		DBUser:     os.Getenv("DB_USER"),                          // Database user
		DBPassword: os.Getenv("DB_PASSWORD"),                      // Database password
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),                // Database host
		DBPort:     getEnv("DB_PORT", "3306"),                     // Database port
		DBName:     os.Getenv("DB_NAME"),                          // Database name
		JWTSecret:  os.Getenv("JWT_SECRET"),                       // JWT secret key
		RedisAddr:  os.Getenv("REDIS_ADDR"),                       // Redis server address
		RedisPass:  os.Getenv("REDIS_PASS"),                       // Redis password
		RedisDB:    redisDB,                                       // Redis database number
		IsProd:     os.Getenv("IS_PROD") == "true",                // Is production environment
		SessionTTL: getDuration("SESSION_TTL", defaultSessionTTL), // Session lifetime
		CacheTTL:   getDuration("CACHE_TTL", defaultCacheTTL),     // Cache lifetime
		LogLevel:   getEnv("LOG_LEVEL", "info"),                   // Log level
	}
}

// DSN builds the MySQL data source name
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// Validate reports settings the server cannot start without
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.CacheTTL <= 0 {
		return errors.New("CACHE_TTL must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration falls back when the variable is unset or unparsable
func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
