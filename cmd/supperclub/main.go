package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/supperclub-dev/supperclub/db"
	"github.com/supperclub-dev/supperclub/internal/auth"
	"github.com/supperclub-dev/supperclub/internal/config"
	"github.com/supperclub-dev/supperclub/internal/handlers"
	"github.com/supperclub-dev/supperclub/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := auth.InitJWTSecret(cfg.JWTSecret); err != nil {
		log.Fatalf("Failed to initialize JWT: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	handlers.Configure(cfg)

	r := router.NewRouter()

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
