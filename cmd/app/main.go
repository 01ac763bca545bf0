package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sathishrouthu1909/fitness-booking-api/internal/clock"
	"github.com/sathishrouthu1909/fitness-booking-api/internal/config"
	"github.com/sathishrouthu1909/fitness-booking-api/internal/db"
	"github.com/sathishrouthu1909/fitness-booking-api/internal/logger"
	"github.com/sathishrouthu1909/fitness-booking-api/internal/server"
)

// @title Fitness Studio Booking API
// @version 1.0
// @description API for booking fitness studio classes.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	defer logger.Sync()
	logger.Info("Starting fitness booking API")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatalf("Failed to load studio timezone %q: %v", cfg.StudioTimezone, err)
	}
	studioClock := clock.NewStudio(loc)

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	srv := server.New(database, cfg, studioClock)

	go func() {
		logger.Info("Server listening", "port", cfg.Port, "timezone", cfg.StudioTimezone)
		if err := srv.Start(cfg.Port); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}
	logger.Info("Server stopped")
}
