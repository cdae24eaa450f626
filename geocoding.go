package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// This file provides destination geocoding: turning the city a user types in
// the trip wizard into coordinate candidates for the forecast fetch. The
// provider sits behind the GeocodingService interface so tests can substitute
// a mock and the provider can be swapped without touching the handlers.

// ErrNoResultsFound is returned when a geocoding query yields no candidates.
var ErrNoResultsFound = errors.New("no results found for the given query")

// geocodeMaxResults caps how many city candidates the wizard is offered.
const geocodeMaxResults = 5

// GeocodingService defines the contract for destination lookups.
type GeocodingService interface {
	Geocode(ctx context.Context, cityName string) ([]CityCandidate, error)
}

// OpenMeteoGeocodingService implements GeocodingService against the
// Open-Meteo geocoding API.
type OpenMeteoGeocodingService struct {
	geocodeURL string
	httpClient *http.Client
}

// NewOpenMeteoGeocodingService creates a new OpenMeteoGeocodingService.
func NewOpenMeteoGeocodingService(geocodeURL string, httpClient *http.Client) *OpenMeteoGeocodingService {
	return &OpenMeteoGeocodingService{
		geocodeURL: geocodeURL,
		httpClient: httpClient,
	}
}

// Geocode looks up city candidates for a name. The request inherits the
// caller's context; the shared HTTP client bounds it with the forecast
// timeout.
func (s *OpenMeteoGeocodingService) Geocode(ctx context.Context, cityName string) ([]CityCandidate, error) {
	baseURL, err := url.Parse(s.geocodeURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse geocode URL: %w", err)
	}

	q := baseURL.Query()
	q.Set("name", cityName)
	q.Set("count", strconv.Itoa(geocodeMaxResults))
	q.Set("language", "en")
	baseURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	var responseJSON geocodeResponseOMeteo
	if err := json.NewDecoder(resp.Body).Decode(&responseJSON); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if len(responseJSON.Results) == 0 {
		return nil, ErrNoResultsFound
	}

	candidates := make([]CityCandidate, len(responseJSON.Results))
	for i, result := range responseJSON.Results {
		candidates[i] = CityCandidate{
			Name:        result.Name,
			Latitude:    result.Latitude,
			Longitude:   result.Longitude,
			CountryCode: result.CountryCode,
			Admin1:      result.Admin1,
			Timezone:    result.Timezone,
		}
	}
	return candidates, nil
}

// The following structs represent the Open-Meteo geocoding API JSON response.
type geocodeResponseOMeteo struct {
	Results []geocodeResultOMeteo `json:"results"`
}

type geocodeResultOMeteo struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"country_code"`
	Admin1      string  `json:"admin1"`
	Timezone    string  `json:"timezone"`
}
