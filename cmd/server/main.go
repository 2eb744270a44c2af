package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/bciai-club/clubdesk/internal/app"
	"github.com/bciai-club/clubdesk/internal/handlers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug.Printf("No .env file loaded: %v", err)
	}

	service, err := app.NewService("config.toml")
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}
	defer service.Close()

	if err := service.Store.ApplyMigrations(service.Config.Database.MigrationsDir); err != nil {
		logger.Error.Fatalf("Failed to apply migrations: %v", err)
	}

	mux := http.NewServeMux()
	handlers.Register(mux, service)
	mux.Handle("/metrics", promhttp.Handler())

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: service.Config.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders: []string{"Content-Type"},
	})

	logger.Info.Printf("Starting clubdesk server on %s", service.Config.Server.Port)
	if err := http.ListenAndServe(service.Config.Server.Port, corsMiddleware.Handler(mux)); err != nil {
		logger.Error.Fatalf("Clubdesk server failed: %v", err)
	}
}
