package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Nazarious-ucu/weather-dashboard/internal/app"
	"github.com/Nazarious-ucu/weather-dashboard/internal/config"
	metricsSvc "github.com/Nazarious-ucu/weather-dashboard/internal/services/metrics"
	"github.com/Nazarious-ucu/weather-dashboard/pkg/logger"
)

const serviceName = "weather_dashboard"

// @title Bristol Weather Dashboard
// @version 1.0
// @description Current conditions and the next 24 hours of forecast for Bristol, UK.
// @host localhost:8080
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(cfg.LogsPath, serviceName)
	if err != nil {
		log.Panicf("failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(*cfg, l, metricsSvc.NewMetrics(serviceName))

	if err := application.Start(ctx); err != nil {
		l.Error().Err(err).Msg("application failed to run")
		stop()
		os.Exit(1)
	}
}
