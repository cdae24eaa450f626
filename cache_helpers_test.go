package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestCachedGeocodeCacheHit(t *testing.T) {
	cfg, _ := newTestConfig(t)
	cached := []CityCandidate{{Name: "São Paulo", Latitude: -23.55, Longitude: -46.63}}
	payload, _ := json.Marshal(cached)

	cfg.cache = &mockCache{
		getFunc: func(ctx context.Context, key string) (string, error) {
			// Diacritics are stripped and the name lowercased for the key.
			if key != "geocode:sao paulo" {
				t.Errorf("cache key: got %q, want %q", key, "geocode:sao paulo")
			}
			return string(payload), nil
		},
	}
	cfg.geocoder = &mockGeocodingService{
		GeocodeFunc: func(ctx context.Context, cityName string) ([]CityCandidate, error) {
			t.Fatal("provider must not be called on a cache hit")
			return nil, nil
		},
	}

	got, err := cfg.cachedGeocode(context.Background(), "São Paulo")
	if err != nil {
		t.Fatalf("cachedGeocode failed with error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "São Paulo" {
		t.Errorf("got %v, want the cached candidate", got)
	}
}

func TestCachedGeocodeCacheMiss(t *testing.T) {
	cfg, _ := newTestConfig(t)
	setCalled := false

	cfg.cache = &mockCache{
		setFunc: func(ctx context.Context, key string, value any, expiration time.Duration) error {
			setCalled = true
			if expiration != geocodeCacheTTL {
				t.Errorf("expiration: got %v, want %v", expiration, geocodeCacheTTL)
			}
			return nil
		},
	}
	cfg.geocoder = &mockGeocodingService{
		GeocodeFunc: func(ctx context.Context, cityName string) ([]CityCandidate, error) {
			return []CityCandidate{{Name: "Wrocław"}}, nil
		},
	}

	got, err := cfg.cachedGeocode(context.Background(), "Wrocław")
	if err != nil {
		t.Fatalf("cachedGeocode failed with error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if !setCalled {
		t.Error("fresh result was not written back to the cache")
	}
}

func TestCachedGeocodeProviderErrorSurfaces(t *testing.T) {
	cfg, _ := newTestConfig(t)
	providerErr := errors.New("upstream is down")
	cfg.geocoder = &mockGeocodingService{
		GeocodeFunc: func(ctx context.Context, cityName string) ([]CityCandidate, error) {
			return nil, providerErr
		},
	}

	_, err := cfg.cachedGeocode(context.Background(), "Wrocław")
	if !errors.Is(err, providerErr) {
		t.Errorf("got %v, want the provider error", err)
	}
}

func TestCachedForecastCacheHit(t *testing.T) {
	cfg, _ := newTestConfig(t)
	cached := []DailyForecast{{Date: "2026-09-10", HighTemp: 70}}
	payload, _ := json.Marshal(cached)

	cfg.cache = &mockCache{
		getFunc: func(ctx context.Context, key string) (string, error) {
			want := "forecast:51.1000:17.0300:2026-09-10:2026-09-12"
			if key != want {
				t.Errorf("cache key: got %q, want %q", key, want)
			}
			return string(payload), nil
		},
	}
	cfg.forecaster = &mockForecastService{
		FetchDailyForecastsFunc: func(ctx context.Context, lat, lon float64, startDate, endDate string) ([]DailyForecast, error) {
			t.Fatal("provider must not be called on a cache hit")
			return nil, nil
		},
	}

	got, err := cfg.cachedForecast(context.Background(), 51.1, 17.03, "2026-09-10", "2026-09-12")
	if err != nil {
		t.Fatalf("cachedForecast failed with error: %v", err)
	}
	if len(got) != 1 || got[0].Date != "2026-09-10" {
		t.Errorf("got %v, want the cached forecast", got)
	}
}

func TestCachedForecastCacheErrorFallsThrough(t *testing.T) {
	cfg, _ := newTestConfig(t)
	cfg.cache = &mockCache{
		getFunc: func(ctx context.Context, key string) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	cfg.forecaster = &mockForecastService{
		FetchDailyForecastsFunc: func(ctx context.Context, lat, lon float64, startDate, endDate string) ([]DailyForecast, error) {
			return []DailyForecast{{Date: startDate}}, nil
		},
	}

	got, err := cfg.cachedForecast(context.Background(), 51.1, 17.03, "2026-09-10", "2026-09-12")
	if err != nil {
		t.Fatalf("cachedForecast failed with error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d forecasts, want 1", len(got))
	}
}

func TestCachedForecastCorruptEntryFallsThrough(t *testing.T) {
	cfg, _ := newTestConfig(t)
	fetched := false
	cfg.cache = &mockCache{
		getFunc: func(ctx context.Context, key string) (string, error) {
			return "not json", nil
		},
	}
	cfg.forecaster = &mockForecastService{
		FetchDailyForecastsFunc: func(ctx context.Context, lat, lon float64, startDate, endDate string) ([]DailyForecast, error) {
			fetched = true
			return []DailyForecast{{Date: startDate}}, nil
		},
	}

	if _, err := cfg.cachedForecast(context.Background(), 51.1, 17.03, "2026-09-10", "2026-09-12"); err != nil {
		t.Fatalf("cachedForecast failed with error: %v", err)
	}
	if !fetched {
		t.Error("corrupt cache entry should fall through to the provider")
	}
}
