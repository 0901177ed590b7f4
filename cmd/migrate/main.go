package main

import (
	"github.com/joho/godotenv"

	"studio-api/internal/config"
	"studio-api/internal/logger"
	"studio-api/internal/storage"
)

// Creates the studio schema and exits. The API server also creates missing
// tables on startup, this command exists for provisioning pipelines that
// migrate before deploying.
func main() {
	log := logger.NewLogger()
	defer log.Close()

	if err := godotenv.Load(); err != nil {
		log.Warn("ENV", "Error loading .env file, using environment variables")
	}

	cfg := config.Load()

	store, err := storage.NewMySQLStore(cfg.Database, log)
	if err != nil {
		log.Fatal("MIGRATE", "Migration failed: "+err.Error())
	}
	defer store.Close()

	log.LogDatabase("MIGRATE", "mysql", "Schema is up to date")
}
