package main

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/natalgaw/packlist/internal/database"
	"github.com/sqlc-dev/pqtype"
)

func TestDatabaseItemToMasterItem(t *testing.T) {
	itemID := uuid.New()
	userID := uuid.New()

	t.Run("item with weather conditions", func(t *testing.T) {
		temp := 15.0
		raw, err := json.Marshal(WeatherConditions{Temperature: &temp, Direction: "below"})
		if err != nil {
			t.Fatalf("could not marshal fixture: %v", err)
		}

		dbItem := database.Item{
			ID:                itemID,
			UserID:            userID,
			Name:              "Warm jacket",
			Category:          "clothing",
			TripTypes:         []string{"all"},
			WeatherConditions: pqtype.NullRawMessage{RawMessage: raw, Valid: true},
			QuantityRuleType:  QuantityFixed,
			QuantityRuleValue: 1,
		}

		item, err := databaseItemToMasterItem(dbItem)
		if err != nil {
			t.Fatalf("databaseItemToMasterItem failed: %v", err)
		}

		if item.ID != itemID || item.UserID != userID {
			t.Errorf("IDs not carried over: got %v/%v", item.ID, item.UserID)
		}
		if item.Weather == nil {
			t.Fatal("expected weather conditions, got nil")
		}
		if item.Weather.Temperature == nil || *item.Weather.Temperature != temp {
			t.Errorf("temperature: got %v, want %v", item.Weather.Temperature, temp)
		}
		if item.Weather.Direction != "below" {
			t.Errorf("direction: got %q, want %q", item.Weather.Direction, "below")
		}
		if item.QuantityRule.Type != QuantityFixed || item.QuantityRule.Value != 1 {
			t.Errorf("quantity rule: got %+v", item.QuantityRule)
		}
	})

	t.Run("unconditional item keeps nil weather", func(t *testing.T) {
		dbItem := database.Item{
			ID:                itemID,
			UserID:            userID,
			Name:              "Toothbrush",
			Category:          "toiletries",
			TripTypes:         []string{"all"},
			QuantityRuleType:  QuantityFixed,
			QuantityRuleValue: 1,
		}

		item, err := databaseItemToMasterItem(dbItem)
		if err != nil {
			t.Fatalf("databaseItemToMasterItem failed: %v", err)
		}
		if item.Weather != nil {
			t.Errorf("expected nil weather, got %+v", item.Weather)
		}
	})

	t.Run("malformed weather column is an error", func(t *testing.T) {
		dbItem := database.Item{
			ID:                itemID,
			Name:              "Broken",
			WeatherConditions: pqtype.NullRawMessage{RawMessage: json.RawMessage(`{not json`), Valid: true},
		}

		if _, err := databaseItemToMasterItem(dbItem); err == nil {
			t.Error("expected an error for malformed weather conditions, got nil")
		}
	})
}

func TestMasterItemParamsRoundTrip(t *testing.T) {
	temp := 25.0
	item := MasterItem{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Name:     "Sunscreen",
		Category: "toiletries",
		TripTypes: []string{
			"vacation", "camping",
		},
		Weather:      &WeatherConditions{Temperature: &temp, Direction: "above"},
		QuantityRule: QuantityRule{Type: QuantityPerNDays, Value: 7},
	}

	params, err := masterItemToCreateItemParams(item)
	if err != nil {
		t.Fatalf("masterItemToCreateItemParams failed: %v", err)
	}
	if !params.WeatherConditions.Valid {
		t.Fatal("expected a valid weather_conditions payload")
	}

	back, err := databaseItemToMasterItem(database.Item{
		ID:                item.ID,
		UserID:            params.UserID,
		Name:              params.Name,
		Category:          params.Category,
		TripTypes:         params.TripTypes,
		WeatherConditions: params.WeatherConditions,
		QuantityRuleType:  params.QuantityRuleType,
		QuantityRuleValue: params.QuantityRuleValue,
	})
	if err != nil {
		t.Fatalf("databaseItemToMasterItem failed: %v", err)
	}

	if !reflect.DeepEqual(item, back) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", back, item)
	}
}

func TestDatabaseTripToTrip(t *testing.T) {
	tripID := uuid.New()
	departure := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	t.Run("trip with stored forecast", func(t *testing.T) {
		weather := TripWeather{
			DailyForecasts: []DailyForecast{{Date: "2026-09-10", HighTemp: 21, LowTemp: 12, WeatherCode: 61, Condition: "Slight rain"}},
			FetchedAt:      departure,
		}
		raw, err := tripWeatherToNullRawMessage(&weather)
		if err != nil {
			t.Fatalf("tripWeatherToNullRawMessage failed: %v", err)
		}

		dbTrip := database.Trip{
			ID:              tripID,
			Destination:     "Bergen",
			DepartureDate:   departure,
			ReturnDate:      departure.AddDate(0, 0, 2),
			TripType:        "vacation",
			TransportMode:   "plane",
			Status:          "planning",
			SelectedLuggage: []uuid.UUID{},
			Weather:         raw,
		}

		trip, err := databaseTripToTrip(dbTrip)
		if err != nil {
			t.Fatalf("databaseTripToTrip failed: %v", err)
		}
		if trip.Weather == nil {
			t.Fatal("expected a forecast on the trip, got nil")
		}
		if !reflect.DeepEqual(*trip.Weather, weather) {
			t.Errorf("weather mismatch:\ngot  %+v\nwant %+v", *trip.Weather, weather)
		}
	})

	t.Run("NULL weather stays nil", func(t *testing.T) {
		trip, err := databaseTripToTrip(database.Trip{ID: tripID, Destination: "Bergen"})
		if err != nil {
			t.Fatalf("databaseTripToTrip failed: %v", err)
		}
		if trip.Weather != nil {
			t.Errorf("expected nil weather, got %+v", trip.Weather)
		}
	})

	t.Run("corrupt weather payload is an error", func(t *testing.T) {
		dbTrip := database.Trip{
			ID:      tripID,
			Weather: pqtype.NullRawMessage{RawMessage: json.RawMessage(`[`), Valid: true},
		}
		if _, err := databaseTripToTrip(dbTrip); err == nil {
			t.Error("expected an error for a corrupt weather payload, got nil")
		}
	})
}

func TestTripWeatherToNullRawMessageNil(t *testing.T) {
	raw, err := tripWeatherToNullRawMessage(nil)
	if err != nil {
		t.Fatalf("tripWeatherToNullRawMessage failed: %v", err)
	}
	if raw.Valid {
		t.Error("nil weather should map to a NULL column")
	}
}

func TestGeneratedItemToCreateTripItemParams(t *testing.T) {
	tripID := uuid.New()
	params := generatedItemToCreateTripItemParams(tripID, GeneratedPackingItem{
		ItemName: "Socks",
		Category: "clothing",
		Quantity: 3,
	})

	if params.TripID != tripID {
		t.Errorf("trip ID: got %v, want %v", params.TripID, tripID)
	}
	if params.ItemName != "Socks" || params.Category != "clothing" || params.Quantity != 3 {
		t.Errorf("unexpected params: %+v", params)
	}
	if params.Packed {
		t.Error("new checklist rows should start unpacked")
	}
}

func TestNullString(t *testing.T) {
	if got := nullString(""); got.Valid {
		t.Error("empty string should map to NULL")
	}
	if got := nullString("Ada"); !got.Valid || got.String != "Ada" {
		t.Errorf("got %+v, want valid %q", got, "Ada")
	}
}
