package main

import "testing"

func TestSummarizeForecastRain(t *testing.T) {
	tests := []struct {
		name string
		days []DailyForecast
		want bool
	}{
		{
			name: "probability at the threshold is not rain",
			days: []DailyForecast{{PrecipProbability: 40}},
			want: false,
		},
		{
			name: "probability just over the threshold is rain",
			days: []DailyForecast{{PrecipProbability: 41}},
			want: true,
		},
		{
			name: "drizzle code counts despite low probability",
			days: []DailyForecast{{PrecipProbability: 5, WeatherCode: 51}},
			want: true,
		},
		{
			name: "thunderstorm code counts as rain",
			days: []DailyForecast{{WeatherCode: 95}},
			want: true,
		},
		{
			name: "one rainy day among dry days is enough",
			days: []DailyForecast{{PrecipProbability: 0}, {PrecipProbability: 10}, {PrecipProbability: 90}},
			want: true,
		},
		{
			name: "snow code alone is not rain",
			days: []DailyForecast{{WeatherCode: 73}},
			want: false,
		},
		{
			name: "no days",
			days: nil,
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := summarizeForecast(tc.days).HasRain
			if got != tc.want {
				t.Errorf("HasRain: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSummarizeForecastSnow(t *testing.T) {
	tests := []struct {
		name string
		days []DailyForecast
		want bool
	}{
		{
			name: "zero snowfall is not snow",
			days: []DailyForecast{{Snowfall: 0}},
			want: false,
		},
		{
			name: "any positive snowfall is snow",
			days: []DailyForecast{{Snowfall: 0.1}},
			want: true,
		},
		{
			name: "snow code without measured snowfall is snow",
			days: []DailyForecast{{WeatherCode: 71}},
			want: true,
		},
		{
			name: "rain code alone is not snow",
			days: []DailyForecast{{WeatherCode: 63}},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := summarizeForecast(tc.days).HasSnow
			if got != tc.want {
				t.Errorf("HasSnow: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSummaryTemperatureChecks(t *testing.T) {
	summary := summarizeForecast([]DailyForecast{
		{HighTemp: 70, LowTemp: 50},
		{HighTemp: 85, LowTemp: 62},
		{HighTemp: 55, LowTemp: 31},
	})

	tests := []struct {
		name      string
		check     func(float64) bool
		threshold float64
		want      bool
	}{
		{name: "above matched by the hottest high", check: summary.AnyTempAtOrAbove, threshold: 80, want: true},
		{name: "above is inclusive", check: summary.AnyTempAtOrAbove, threshold: 85, want: true},
		{name: "above beyond every reading", check: summary.AnyTempAtOrAbove, threshold: 86, want: false},
		{name: "below matched by the coldest low", check: summary.AnyTempAtOrBelow, threshold: 32, want: true},
		{name: "below is inclusive", check: summary.AnyTempAtOrBelow, threshold: 31, want: true},
		{name: "below under every reading", check: summary.AnyTempAtOrBelow, threshold: 30, want: false},
		{name: "lows can satisfy an above check", check: summary.AnyTempAtOrAbove, threshold: 62, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.check(tc.threshold); got != tc.want {
				t.Errorf("threshold %v: got %v, want %v", tc.threshold, got, tc.want)
			}
		})
	}
}

func TestEmptySummaryMatchesNothing(t *testing.T) {
	summary := summarizeForecast(nil)
	if summary.AnyTempAtOrAbove(-1000) {
		t.Error("AnyTempAtOrAbove matched on an empty summary")
	}
	if summary.AnyTempAtOrBelow(1000) {
		t.Error("AnyTempAtOrBelow matched on an empty summary")
	}
}
