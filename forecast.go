package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// This file fetches a trip's daily forecast from the Open-Meteo API and
// parses it into the []DailyForecast the aggregator consumes. A single
// timeout-bounded request per trip; no retries. A failed fetch never blocks
// trip creation; the caller falls back to a nil forecast.

// ForecastService defines the contract for retrieving a multi-day forecast
// for a coordinate and date range.
type ForecastService interface {
	FetchDailyForecasts(ctx context.Context, lat, lon float64, startDate, endDate string) ([]DailyForecast, error)
}

// OpenMeteoForecastService implements ForecastService against the Open-Meteo
// forecast API.
type OpenMeteoForecastService struct {
	forecastURL string
	httpClient  *http.Client
}

// NewOpenMeteoForecastService creates a new OpenMeteoForecastService.
func NewOpenMeteoForecastService(forecastURL string, httpClient *http.Client) *OpenMeteoForecastService {
	return &OpenMeteoForecastService{
		forecastURL: forecastURL,
		httpClient:  httpClient,
	}
}

// dailyForecastParams are the daily variables requested from Open-Meteo.
// Temperatures are requested in Fahrenheit to match the thresholds stored on
// master items.
const dailyForecastParams = "temperature_2m_max,temperature_2m_min,precipitation_probability_max,snowfall_sum,weather_code"

// FetchDailyForecasts requests the daily forecast for [startDate, endDate]
// (calendar dates, "2006-01-02"). A non-200 response is surfaced as an error
// carrying the status code.
func (s *OpenMeteoForecastService) FetchDailyForecasts(ctx context.Context, lat, lon float64, startDate, endDate string) ([]DailyForecast, error) {
	baseURL, err := url.Parse(s.forecastURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse forecast URL: %w", err)
	}

	q := baseURL.Query()
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	q.Set("daily", dailyForecastParams)
	q.Set("temperature_unit", "fahrenheit")
	q.Set("timezone", "auto")
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)
	baseURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build forecast request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast API returned status %d", resp.StatusCode)
	}

	return ParseDailyForecastsOMeteo(resp.Body)
}

// ParseDailyForecastsOMeteo decodes an Open-Meteo daily forecast response.
// The daily variables arrive as parallel arrays indexed by day; a response
// whose arrays disagree in length is rejected.
func ParseDailyForecastsOMeteo(body io.Reader) ([]DailyForecast, error) {
	var response responseDailyForecastOMeteo
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode forecast response: %w", err)
	}

	d := response.Daily
	n := len(d.Time)
	if len(d.Temperature2mMax) != n || len(d.Temperature2mMin) != n ||
		len(d.PrecipitationProbabilityMax) != n || len(d.SnowfallSum) != n ||
		len(d.WeatherCode) != n {
		return nil, fmt.Errorf("forecast response arrays have mismatched lengths")
	}

	forecasts := make([]DailyForecast, n)
	for i := 0; i < n; i++ {
		forecasts[i] = DailyForecast{
			Date:              d.Time[i],
			HighTemp:          d.Temperature2mMax[i],
			LowTemp:           d.Temperature2mMin[i],
			PrecipProbability: d.PrecipitationProbabilityMax[i],
			Snowfall:          d.SnowfallSum[i],
			WeatherCode:       d.WeatherCode[i],
			Condition:         conditionFromCode(d.WeatherCode[i]),
		}
	}
	return forecasts, nil
}

// responseDailyForecastOMeteo represents the Open-Meteo forecast API JSON response.
type responseDailyForecastOMeteo struct {
	Daily struct {
		Time                        []string  `json:"time"`
		Temperature2mMax            []float64 `json:"temperature_2m_max"`
		Temperature2mMin            []float64 `json:"temperature_2m_min"`
		PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
		SnowfallSum                 []float64 `json:"snowfall_sum"`
		WeatherCode                 []int     `json:"weather_code"`
	} `json:"daily"`
}
