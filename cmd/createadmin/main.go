package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"

	"studio-api/internal/auth"
	"studio-api/internal/config"
	"studio-api/internal/logger"
	"studio-api/internal/services"
	"studio-api/internal/storage"
)

// Seeds an administrator account so the dashboard can be logged into on a
// fresh deployment.
func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	log := logger.NewLogger()
	defer log.Close()

	if *password == "" {
		log.Fatal("CREATEADMIN", "a password is required, pass -password")
	}

	if err := godotenv.Load(); err != nil {
		log.Warn("ENV", "Error loading .env file, using environment variables")
	}

	cfg := config.Load()

	store, err := storage.NewMySQLStore(cfg.Database, log)
	if err != nil {
		log.Fatal("CREATEADMIN", "Failed to connect to MySQL: "+err.Error())
	}
	defer store.Close()

	tokens := auth.NewManager(cfg.Auth.SecretKey, time.Duration(cfg.Auth.TokenExpiryMinutes)*time.Minute)
	authService := services.NewAuthService(store, tokens, log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := authService.CreateUser(ctx, *username, *password)
	if err != nil {
		log.Fatal("CREATEADMIN", "Failed to create admin: "+err.Error())
	}

	log.LogSecurity("CREATEADMIN", "admin account created: "+user.Username)
}
