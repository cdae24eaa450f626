package main

import (
	"net/http"
	"os"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config()
	cfg.logger.Debug("configuration loaded")

	if err := cfg.ConnectDB(); err != nil {
		os.Exit(1)
	}

	scheduler := NewScheduler(cfg, cfg.schedulerRefreshInterval)
	cfg.logger.Info("starting scheduler", "interval", cfg.schedulerRefreshInterval.String(), "horizon_days", cfg.refreshHorizonDays)
	scheduler.Start()

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/me", cfg.handlerMe)
	mux.HandleFunc("GET /api/geocode", cfg.handlerGeocode)

	mux.HandleFunc("GET /api/items", cfg.handlerListItems)
	mux.HandleFunc("POST /api/items", cfg.handlerCreateItem)
	mux.HandleFunc("PUT /api/items/{itemID}", cfg.handlerUpdateItem)
	mux.HandleFunc("DELETE /api/items/{itemID}", cfg.handlerDeleteItem)

	mux.HandleFunc("GET /api/luggage", cfg.handlerListLuggage)
	mux.HandleFunc("POST /api/luggage", cfg.handlerCreateLuggage)
	mux.HandleFunc("PUT /api/luggage/{luggageID}", cfg.handlerUpdateLuggage)
	mux.HandleFunc("DELETE /api/luggage/{luggageID}", cfg.handlerDeleteLuggage)

	mux.HandleFunc("POST /api/trips", cfg.handlerCreateTrip)
	mux.HandleFunc("GET /api/trips", cfg.handlerListTrips)
	mux.HandleFunc("GET /api/trips/{tripID}", cfg.handlerGetTrip)
	mux.HandleFunc("DELETE /api/trips/{tripID}", cfg.handlerDeleteTrip)
	mux.HandleFunc("PUT /api/trips/{tripID}/status", cfg.handlerUpdateTripStatus)
	mux.HandleFunc("PUT /api/trips/{tripID}/luggage", cfg.handlerUpdateTripLuggage)
	mux.HandleFunc("POST /api/trips/{tripID}/weather/refresh", cfg.handlerRefreshTripWeather)

	mux.HandleFunc("POST /api/trips/{tripID}/items", cfg.handlerCreateTripItem)
	mux.HandleFunc("PUT /api/trip-items/{itemID}/quantity", cfg.handlerUpdateTripItemQuantity)
	mux.HandleFunc("PUT /api/trip-items/{itemID}/packed", cfg.handlerSetTripItemPacked)
	mux.HandleFunc("DELETE /api/trip-items/{itemID}", cfg.handlerDeleteTripItem)

	mux.Handle("GET /metrics", promhttp.Handler())

	if cfg.devMode {
		cfg.logger.Debug("development mode enabled. Registering /dev endpoints.")
		mux.HandleFunc("GET /dev/config", cfg.handlerConfig)
		mux.HandleFunc("POST /dev/reset-db", cfg.handlerResetDB)
	}

	server := &http.Server{
		Addr:    ":" + cfg.port,
		Handler: corsMiddleware(metricsMiddleware(mux)),
	}

	cfg.logger.Info("starting server", "port", cfg.port)
	err := server.ListenAndServe()
	if err != nil {
		cfg.logger.Error("server startup failed", "error", err)
		os.Exit(1)
	}
}
