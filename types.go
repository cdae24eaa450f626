package main

import (
	"time"

	"github.com/google/uuid"
)

// User is an account resolved from the opaque identity the auth layer supplies.
type User struct {
	ID         uuid.UUID `json:"id"`
	ExternalID string    `json:"external_id"`
	Email      string    `json:"email,omitempty"`
	Name       string    `json:"name,omitempty"`
}

// WeatherConditions is the optional weather predicate on a master item.
// A nil *WeatherConditions means the item is unconditional. When present,
// each populated sub-condition is evaluated independently and the results
// are OR-combined: any satisfied sub-condition makes the item eligible.
// Temperature and Direction form a single threshold test and are only
// meaningful together.
type WeatherConditions struct {
	Temperature *float64 `json:"temperature,omitempty"`
	Direction   string   `json:"direction,omitempty"` // "above" or "below"
	Rain        bool     `json:"rain,omitempty"`
	Snow        bool     `json:"snow,omitempty"`
}

// Quantity rule types convert trip length into a pack count for one item.
const (
	QuantityPerDay   = "perDay"   // quantity = tripDays * value
	QuantityPerNDays = "perNDays" // quantity = ceil(tripDays / value), at least 1
	QuantityFixed    = "fixed"    // quantity = value, regardless of trip length
)

type QuantityRule struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
}

// MasterItem is a reusable entry in a user's item library, together with the
// rules that decide whether and how many of it to pack for a given trip.
type MasterItem struct {
	ID           uuid.UUID          `json:"id"`
	UserID       uuid.UUID          `json:"user_id"`
	Name         string             `json:"name"`
	Category     string             `json:"category"`
	TripTypes    []string           `json:"trip_types"`
	Weather      *WeatherConditions `json:"weather_conditions"`
	QuantityRule QuantityRule       `json:"quantity_rule"`
}

// DailyForecast is one calendar day of a trip's forecast, as parsed from the
// weather API. Immutable once attached to a trip.
type DailyForecast struct {
	Date              string  `json:"date"`
	HighTemp          float64 `json:"high_temp"`
	LowTemp           float64 `json:"low_temp"`
	PrecipProbability float64 `json:"precip_probability"`
	Snowfall          float64 `json:"snowfall"`
	WeatherCode       int     `json:"weather_code"`
	Condition         string  `json:"condition"`
}

// TripWeather is the forecast payload stored on a trip. A trip whose forecast
// fetch failed carries a nil *TripWeather.
type TripWeather struct {
	DailyForecasts []DailyForecast `json:"daily_forecasts"`
	FetchedAt      time.Time       `json:"fetched_at"`
}

// TripParameters are the inputs the packing-list generator works from.
type TripParameters struct {
	TripType string
	TripDays int
	Weather  *TripWeather
}

// GeneratedPackingItem is one line of a generated packing list. The caller
// persists these as trip items; the generator does not own them.
type GeneratedPackingItem struct {
	ItemName string `json:"item_name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// Luggage sizes map to fixed nominal item capacities; see luggageCapacity.
const (
	LuggageSmall  = "small"
	LuggageMedium = "medium"
	LuggageLarge  = "large"
)

// LuggageItem is an entry in a user's luggage catalog.
type LuggageItem struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	TransportModes []string  `json:"transport_modes"`
	Size           string    `json:"size"`
}

// Trip statuses follow the trip lifecycle from creation to completion.
const (
	TripStatusPlanning  = "planning"
	TripStatusPacking   = "packing"
	TripStatusCompleted = "completed"
)

type Trip struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"user_id"`
	Destination     string       `json:"destination"`
	Latitude        float64      `json:"latitude"`
	Longitude       float64      `json:"longitude"`
	DepartureDate   time.Time    `json:"departure_date"`
	ReturnDate      time.Time    `json:"return_date"`
	TripType        string       `json:"trip_type"`
	TransportMode   string       `json:"transport_mode"`
	Status          string       `json:"status"`
	SelectedLuggage []uuid.UUID  `json:"selected_luggage"`
	Weather         *TripWeather `json:"weather"`
	CreatedAt       time.Time    `json:"created_at"`
}

// TripItem is one persisted row of a trip's packing checklist.
type TripItem struct {
	ID       uuid.UUID `json:"id"`
	TripID   uuid.UUID `json:"trip_id"`
	ItemName string    `json:"item_name"`
	Category string    `json:"category"`
	Quantity int       `json:"quantity"`
	Packed   bool      `json:"packed"`
}

// CityCandidate is one geocoding result for a destination search.
type CityCandidate struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"country_code"`
	Admin1      string  `json:"admin1,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
}

// TripResponse is the payload returned by the trip-creation workflow. Warnings
// carry non-fatal conditions (missing forecast, undersized luggage) that the
// UI surfaces without failing the request.
type TripResponse struct {
	Trip             Trip          `json:"trip"`
	Items            []TripItem    `json:"items"`
	SuggestedLuggage []LuggageItem `json:"suggested_luggage"`
	Warnings         []string      `json:"warnings,omitempty"`
}

type GeocodeResponse struct {
	Candidates []CityCandidate `json:"candidates"`
}
