package main

import (
	"thrift_manager/internal/config" // Custom import path (Config)
	"thrift_manager/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logging
)

// Main entry point for migration
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Create or update all tables
}
