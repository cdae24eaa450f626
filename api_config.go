package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

type apiConfig struct {
	dbQueries               dbQuerier
	dbURL                   string
	newDBClientFunc         func(driverName, dataSourceName string) (*sql.DB, error)
	cache                   Cache
	geocoder                GeocodingService
	forecaster              ForecastService
	geocodeURL              string
	forecastURL             string
	httpClient              *http.Client
	schedulerRefreshInterval time.Duration
	refreshHorizonDays      int
	port                    string
	devMode                 bool
	logger                  *slog.Logger
}

// getRequiredEnv retrieves an environment variable by key, and fatals if it's not set.
func getRequiredEnv(key string, logger *slog.Logger) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		logger.Error("environment variable must be set", "key", key)
		os.Exit(1)
	}
	return val
}

// getEnv retrieves an environment variable by key, with a fallback value.
func getEnv(key, fallback string, logger *slog.Logger) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer, with a fallback value.
func getEnvAsInt(key string, fallback int, logger *slog.Logger) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		logger.Warn("invalid integer value for environment variable, using fallback", "key", key, "value", valStr, "error", err)
		return fallback
	}
	return val
}

// forecastTimeout bounds every outbound geocoding/forecast call. There are no
// retries; a trip is created without weather when the deadline passes.
const forecastTimeout = 8 * time.Second

func config() *apiConfig {
	devModeStr := os.Getenv("DEV_MODE")
	devMode, err := strconv.ParseBool(devModeStr)
	if err != nil {
		devMode = false
	}

	var logger *slog.Logger
	if devMode {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	redisURL := getRequiredEnv("REDIS_URL", logger)
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Error("could not parse Redis URL", "error", err)
		os.Exit(1)
	}
	redisClient := redis.NewClient(opt)
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Error("could not connect to Redis", "error", err)
		os.Exit(1)
	}
	cache := NewRedisCache(redisClient)

	httpClient := &http.Client{
		Timeout:   forecastTimeout,
		Transport: &metricsTransport{},
	}

	geocodeURL := getEnv("GEOCODE_URL", "https://geocoding-api.open-meteo.com/v1/search", logger)
	forecastURL := getEnv("FORECAST_URL", "https://api.open-meteo.com/v1/forecast", logger)

	refreshIntervalMin := getEnvAsInt("WEATHER_REFRESH_INTERVAL_MIN", 720, logger)
	refreshHorizonDays := getEnvAsInt("WEATHER_REFRESH_HORIZON_DAYS", 14, logger)

	cfg := apiConfig{
		dbURL:                    getRequiredEnv("DB_URL", logger),
		newDBClientFunc:          sql.Open,
		cache:                    cache,
		geocoder:                 NewOpenMeteoGeocodingService(geocodeURL, httpClient),
		forecaster:               NewOpenMeteoForecastService(forecastURL, httpClient),
		geocodeURL:               geocodeURL,
		forecastURL:              forecastURL,
		httpClient:               httpClient,
		schedulerRefreshInterval: time.Duration(refreshIntervalMin) * time.Minute,
		refreshHorizonDays:       refreshHorizonDays,
		port:                     getEnv("PORT", "8080", logger),
		devMode:                  devMode,
		logger:                   logger,
	}

	return &cfg
}
