package main

import (
	"context"
	"sync"
	"time"

	"github.com/natalgaw/packlist/internal/database"
)

// The scheduler keeps forecasts on upcoming trips fresh. Every tick it walks
// the planning trips departing within the refresh horizon and re-fetches
// their daily forecasts. The forecast cache TTL sits just under the refresh
// interval so each sweep reaches the upstream API instead of its own stale
// entry.

type Scheduler struct {
	cfg         *apiConfig
	refreshChan <-chan time.Time
	stop        chan struct{}
	ticker      *time.Ticker
	refreshJobs func()
}

func NewScheduler(cfg *apiConfig, refreshInterval time.Duration) *Scheduler {
	ticker := time.NewTicker(refreshInterval)
	s := &Scheduler{
		cfg:         cfg,
		refreshChan: ticker.C,
		stop:        make(chan struct{}),
		ticker:      ticker,
	}
	s.refreshJobs = s.runWeatherRefreshJobs
	return s
}

func (s *Scheduler) Start() {
	go func() {
		for {
			select {
			case <-s.refreshChan:
				s.cfg.logger.Info("scheduler: running weather refresh jobs")
				s.refreshJobs()
			case <-s.stop:
				s.cfg.logger.Info("scheduler: stopping")
				if s.ticker != nil {
					s.ticker.Stop()
				}
				return
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	close(s.stop)
}

// runWeatherRefreshJobs refreshes the forecast of every planning trip that
// departs between now and the horizon. Trips are refreshed concurrently and
// failures are logged per trip without stopping the sweep.
func (s *Scheduler) runWeatherRefreshJobs() {
	ctx := context.Background()
	now := time.Now().UTC()
	trips, err := s.cfg.dbQueries.ListUpcomingPlanningTrips(ctx, database.ListUpcomingPlanningTripsParams{
		DepartureDate:   now,
		DepartureDate_2: now.AddDate(0, 0, s.cfg.refreshHorizonDays),
	})
	if err != nil {
		s.cfg.logger.Error("scheduler: could not list upcoming trips", "error", err)
		return
	}
	if len(trips) == 0 {
		s.cfg.logger.Debug("scheduler: no upcoming trips need a weather refresh")
		return
	}

	var wg sync.WaitGroup
	for _, dbTrip := range trips {
		wg.Add(1)
		go func(trip database.Trip) {
			defer wg.Done()
			if _, err := s.cfg.refreshTripWeather(ctx, trip); err != nil {
				s.cfg.logger.Warn("scheduler: weather refresh failed", "trip_id", trip.ID, "destination", trip.Destination, "error", err)
				return
			}
			s.cfg.logger.Debug("scheduler: refreshed weather", "trip_id", trip.ID, "destination", trip.Destination)
		}(dbTrip)
	}
	wg.Wait()
	s.cfg.logger.Info("scheduler: weather refresh sweep complete", "trips", len(trips))
}

// refreshTripWeather fetches a fresh forecast for the trip's stay and stores
// it on the trip row.
func (cfg *apiConfig) refreshTripWeather(ctx context.Context, trip database.Trip) (TripWeather, error) {
	forecasts, err := cfg.cachedForecast(ctx, trip.Latitude, trip.Longitude,
		trip.DepartureDate.Format(dateLayout), trip.ReturnDate.Format(dateLayout))
	if err != nil {
		return TripWeather{}, err
	}
	weather := TripWeather{DailyForecasts: forecasts, FetchedAt: time.Now().UTC()}
	raw, err := tripWeatherToNullRawMessage(&weather)
	if err != nil {
		return TripWeather{}, err
	}
	if err := cfg.dbQueries.UpdateTripWeather(ctx, database.UpdateTripWeatherParams{ID: trip.ID, Weather: raw}); err != nil {
		return TripWeather{}, err
	}
	return weather, nil
}
