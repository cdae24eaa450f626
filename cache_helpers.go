package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// This file wraps the external API clients with a Redis cache. Geocoding
// results are stable and cached for a day; forecasts change and are cached
// just under the scheduler's refresh interval so a refresh never serves a
// result it is about to replace.

const geocodeCacheTTL = 24 * time.Hour
const forecastCacheTTL = 11*time.Hour + 55*time.Minute

// cachedGeocode returns candidates from the cache when present, otherwise
// queries the geocoding provider and stores the result. Cache errors are
// logged and treated as misses; the provider error is authoritative.
func (cfg *apiConfig) cachedGeocode(ctx context.Context, cityName string) ([]CityCandidate, error) {
	alias, err := normalizeCityName(cityName)
	if err != nil {
		return nil, fmt.Errorf("could not normalize city name: %w", err)
	}
	cacheKey := "geocode:" + alias

	cachedData, err := cfg.cache.Get(ctx, cacheKey)
	if err == nil {
		var candidates []CityCandidate
		if jsonErr := json.Unmarshal([]byte(cachedData), &candidates); jsonErr == nil && len(candidates) > 0 {
			cfg.logger.Debug("geocode cache hit", "key", cacheKey)
			return candidates, nil
		}
		cfg.logger.Warn("invalid geocode cache entry", "key", cacheKey)
	} else if err != redis.Nil {
		cfg.logger.Warn("error getting from redis", "key", cacheKey, "error", err)
	}

	candidates, err := cfg.geocoder.Geocode(ctx, cityName)
	if err != nil {
		return nil, err
	}

	if cacheErr := cfg.cache.Set(ctx, cacheKey, candidates, geocodeCacheTTL); cacheErr != nil {
		cfg.logger.Warn("error setting to redis", "key", cacheKey, "error", cacheErr)
	}
	return candidates, nil
}

// cachedForecast returns the daily forecast for a coordinate and date range,
// preferring the cache. Forecast payloads are value types, so the key is
// derived from the request parameters, never from a trip identifier.
func (cfg *apiConfig) cachedForecast(ctx context.Context, lat, lon float64, startDate, endDate string) ([]DailyForecast, error) {
	cacheKey := fmt.Sprintf("forecast:%.4f:%.4f:%s:%s", lat, lon, startDate, endDate)

	cachedData, err := cfg.cache.Get(ctx, cacheKey)
	if err == nil {
		var forecasts []DailyForecast
		if jsonErr := json.Unmarshal([]byte(cachedData), &forecasts); jsonErr == nil && len(forecasts) > 0 {
			cfg.logger.Debug("forecast cache hit", "key", cacheKey)
			return forecasts, nil
		}
		cfg.logger.Warn("invalid forecast cache entry", "key", cacheKey)
	} else if err != redis.Nil {
		cfg.logger.Warn("error getting from redis", "key", cacheKey, "error", err)
	}

	forecasts, err := cfg.forecaster.FetchDailyForecasts(ctx, lat, lon, startDate, endDate)
	if err != nil {
		return nil, err
	}

	if cacheErr := cfg.cache.Set(ctx, cacheKey, forecasts, forecastCacheTTL); cacheErr != nil {
		cfg.logger.Warn("error setting to redis", "key", cacheKey, "error", cacheErr)
	}
	return forecasts, nil
}
