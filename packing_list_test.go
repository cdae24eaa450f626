package main

import (
	"errors"
	"reflect"
	"testing"
)

func floatPtr(f float64) *float64 { return &f }

func forecastOf(days ...DailyForecast) *TripWeather {
	return &TripWeather{DailyForecasts: days}
}

func TestGeneratePackingListTripTypeFilter(t *testing.T) {
	items := []MasterItem{
		{Name: "Suit", TripTypes: []string{"business"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
		{Name: "Toothbrush", TripTypes: []string{"all"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
		{Name: "Tent", TripTypes: []string{"camping"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
		{Name: "Orphan", TripTypes: nil, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	}

	tests := []struct {
		name      string
		tripType  string
		wantNames []string
	}{
		{name: "business trip", tripType: "business", wantNames: []string{"Suit", "Toothbrush"}},
		{name: "camping trip", tripType: "camping", wantNames: []string{"Toothbrush", "Tent"}},
		{name: "vacation only matches the all sentinel", tripType: "vacation", wantNames: []string{"Toothbrush"}},
		{name: "matching is case-sensitive", tripType: "Business", wantNames: []string{"Toothbrush"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := GeneratePackingList(items, TripParameters{TripType: tc.tripType, TripDays: 3})
			if err != nil {
				t.Fatalf("GeneratePackingList returned error: %v", err)
			}
			gotNames := make([]string, len(got))
			for i, item := range got {
				gotNames[i] = item.ItemName
			}
			if !reflect.DeepEqual(gotNames, tc.wantNames) {
				t.Errorf("got %v, want %v", gotNames, tc.wantNames)
			}
		})
	}
}

func TestGeneratePackingListWeatherFilter(t *testing.T) {
	rainyDay := DailyForecast{HighTemp: 60, LowTemp: 50, PrecipProbability: 80}
	coldDay := DailyForecast{HighTemp: 40, LowTemp: 28}
	warmDay := DailyForecast{HighTemp: 85, LowTemp: 70}

	umbrella := MasterItem{
		Name:         "Umbrella",
		TripTypes:    []string{"all"},
		Weather:      &WeatherConditions{Rain: true},
		QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1},
	}
	coat := MasterItem{
		Name:         "Winter coat",
		TripTypes:    []string{"all"},
		Weather:      &WeatherConditions{Temperature: floatPtr(32), Direction: "below"},
		QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1},
	}
	sunscreen := MasterItem{
		Name:         "Sunscreen",
		TripTypes:    []string{"all"},
		Weather:      &WeatherConditions{Temperature: floatPtr(75), Direction: "above"},
		QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1},
	}
	socks := MasterItem{
		Name:         "Socks",
		TripTypes:    []string{"all"},
		QuantityRule: QuantityRule{Type: QuantityPerDay, Value: 1},
	}

	tests := []struct {
		name      string
		weather   *TripWeather
		wantNames []string
	}{
		{
			name:      "no forecast drops every conditional item",
			weather:   nil,
			wantNames: []string{"Socks"},
		},
		{
			name:      "empty forecast matches nothing",
			weather:   forecastOf(),
			wantNames: []string{"Socks"},
		},
		{
			name:      "rainy trip includes rain gear",
			weather:   forecastOf(rainyDay),
			wantNames: []string{"Umbrella", "Socks"},
		},
		{
			name:      "cold trip includes cold-weather gear",
			weather:   forecastOf(coldDay),
			wantNames: []string{"Winter coat", "Socks"},
		},
		{
			name:      "mixed trip includes gear for every day",
			weather:   forecastOf(rainyDay, coldDay, warmDay),
			wantNames: []string{"Umbrella", "Winter coat", "Sunscreen", "Socks"},
		},
	}

	items := []MasterItem{umbrella, coat, sunscreen, socks}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := GeneratePackingList(items, TripParameters{TripType: "vacation", TripDays: 2, Weather: tc.weather})
			if err != nil {
				t.Fatalf("GeneratePackingList returned error: %v", err)
			}
			gotNames := make([]string, len(got))
			for i, item := range got {
				gotNames[i] = item.ItemName
			}
			if !reflect.DeepEqual(gotNames, tc.wantNames) {
				t.Errorf("got %v, want %v", gotNames, tc.wantNames)
			}
		})
	}
}

func TestGeneratePackingListSubConditionsAreORCombined(t *testing.T) {
	// Rain requested and present, temperature requested and absent: one hit
	// is enough.
	item := MasterItem{
		Name:      "Rain boots",
		TripTypes: []string{"all"},
		Weather: &WeatherConditions{
			Temperature: floatPtr(0),
			Direction:   "below",
			Rain:        true,
		},
		QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1},
	}
	weather := forecastOf(DailyForecast{HighTemp: 55, LowTemp: 45, PrecipProbability: 90})

	got, err := GeneratePackingList([]MasterItem{item}, TripParameters{TripType: "vacation", TripDays: 2, Weather: weather})
	if err != nil {
		t.Fatalf("GeneratePackingList returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d items, want 1", len(got))
	}
}

func TestGeneratePackingListEmptyPredicateNeverMatches(t *testing.T) {
	// A weather predicate with no populated sub-condition is present but
	// vacuous; it must not behave like an unconditional item.
	item := MasterItem{
		Name:         "Mystery gear",
		TripTypes:    []string{"all"},
		Weather:      &WeatherConditions{},
		QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1},
	}
	weather := forecastOf(DailyForecast{HighTemp: 70, LowTemp: 50, PrecipProbability: 90, Snowfall: 2})

	got, err := GeneratePackingList([]MasterItem{item}, TripParameters{TripType: "vacation", TripDays: 2, Weather: weather})
	if err != nil {
		t.Fatalf("GeneratePackingList returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d items, want 0", len(got))
	}
}

func TestComputeQuantityRules(t *testing.T) {
	tests := []struct {
		name     string
		rule     QuantityRule
		tripDays int
		want     int
	}{
		{name: "perDay multiplies", rule: QuantityRule{Type: QuantityPerDay, Value: 2}, tripDays: 5, want: 10},
		{name: "fixed ignores trip length", rule: QuantityRule{Type: QuantityFixed, Value: 3}, tripDays: 14, want: 3},
		{name: "perNDays rounds up", rule: QuantityRule{Type: QuantityPerNDays, Value: 3}, tripDays: 7, want: 3},
		{name: "perNDays exact division", rule: QuantityRule{Type: QuantityPerNDays, Value: 3}, tripDays: 6, want: 2},
		{name: "perNDays never below one", rule: QuantityRule{Type: QuantityPerNDays, Value: 30}, tripDays: 2, want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := computeQuantity(tc.rule, tc.tripDays)
			if got != tc.want {
				t.Errorf("computeQuantity(%+v, %d): got %d, want %d", tc.rule, tc.tripDays, got, tc.want)
			}
		})
	}
}

func TestGeneratePackingListValidation(t *testing.T) {
	survivor := MasterItem{Name: "Socks", TripTypes: []string{"all"}, QuantityRule: QuantityRule{Type: QuantityPerDay, Value: 1}}
	badValue := MasterItem{Name: "Broken", TripTypes: []string{"all"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 0}}
	filteredOut := MasterItem{Name: "Suit", TripTypes: []string{"business"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}}

	t.Run("zero trip days with a surviving item errors", func(t *testing.T) {
		_, err := GeneratePackingList([]MasterItem{survivor}, TripParameters{TripType: "vacation", TripDays: 0})
		if !errors.Is(err, ErrInvalidTripDays) {
			t.Errorf("got %v, want ErrInvalidTripDays", err)
		}
	})

	t.Run("non-positive rule value errors", func(t *testing.T) {
		_, err := GeneratePackingList([]MasterItem{badValue}, TripParameters{TripType: "vacation", TripDays: 3})
		if !errors.Is(err, ErrInvalidQuantityValue) {
			t.Errorf("got %v, want ErrInvalidQuantityValue", err)
		}
	})

	t.Run("fully filtered catalog suppresses validation", func(t *testing.T) {
		// Nothing reaches the quantity stage, so the invalid trip length is
		// never observed.
		got, err := GeneratePackingList([]MasterItem{filteredOut}, TripParameters{TripType: "vacation", TripDays: 0})
		if err != nil {
			t.Fatalf("GeneratePackingList returned error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d items, want 0", len(got))
		}
	})

	t.Run("empty catalog yields empty list", func(t *testing.T) {
		got, err := GeneratePackingList(nil, TripParameters{TripType: "vacation", TripDays: 3})
		if err != nil {
			t.Fatalf("GeneratePackingList returned error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d items, want 0", len(got))
		}
	})
}

func TestGeneratePackingListQuantities(t *testing.T) {
	items := []MasterItem{
		{Name: "Socks", Category: "clothing", TripTypes: []string{"all"}, QuantityRule: QuantityRule{Type: QuantityPerDay, Value: 1}},
		{Name: "Shampoo", Category: "toiletries", TripTypes: []string{"all"}, QuantityRule: QuantityRule{Type: QuantityPerNDays, Value: 7}},
		{Name: "Passport", Category: "documents", TripTypes: []string{"all"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	}

	got, err := GeneratePackingList(items, TripParameters{TripType: "cityBreak", TripDays: 10})
	if err != nil {
		t.Fatalf("GeneratePackingList returned error: %v", err)
	}

	want := []GeneratedPackingItem{
		{ItemName: "Socks", Category: "clothing", Quantity: 10},
		{ItemName: "Shampoo", Category: "toiletries", Quantity: 2},
		{ItemName: "Passport", Category: "documents", Quantity: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
