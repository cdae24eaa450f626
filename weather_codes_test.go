package main

import "testing"

func TestConditionFromCode(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{code: 0, want: "Clear sky"},
		{code: 3, want: "Overcast"},
		{code: 57, want: "Dense freezing drizzle"},
		{code: 77, want: "Snow grains"},
		{code: 99, want: "Thunderstorm with heavy hail"},
		{code: 42, want: "Unknown"},
		{code: -1, want: "Unknown"},
	}

	for _, tc := range tests {
		if got := conditionFromCode(tc.code); got != tc.want {
			t.Errorf("conditionFromCode(%d): got %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestBucketsAreDisjoint(t *testing.T) {
	buckets := map[string]map[int]bool{
		"clear":        clearCodes,
		"cloudy":       cloudyCodes,
		"fog":          fogCodes,
		"rain":         rainCodes,
		"snow":         snowCodes,
		"thunderstorm": thunderstormCodes,
	}

	seen := map[int]string{}
	for name, bucket := range buckets {
		for code := range bucket {
			if other, ok := seen[code]; ok {
				t.Errorf("code %d is in both %s and %s", code, other, name)
			}
			seen[code] = name
			if _, ok := weatherCodeLabels[code]; !ok {
				t.Errorf("code %d is bucketed but has no label", code)
			}
		}
	}

	for code := range weatherCodeLabels {
		if _, ok := seen[code]; !ok {
			t.Errorf("code %d has a label but no bucket", code)
		}
	}
}

func TestIsRainCode(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{code: 51, want: true},
		{code: 67, want: true},
		{code: 82, want: true},
		{code: 95, want: true}, // thunderstorms imply rain
		{code: 99, want: true},
		{code: 71, want: false},
		{code: 45, want: false},
		{code: 0, want: false},
		{code: 1234, want: false},
	}

	for _, tc := range tests {
		if got := isRainCode(tc.code); got != tc.want {
			t.Errorf("isRainCode(%d): got %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestIsSnowCode(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{code: 71, want: true},
		{code: 77, want: true},
		{code: 86, want: true},
		{code: 56, want: false}, // freezing drizzle is rain, not snow
		{code: 95, want: false},
		{code: 0, want: false},
	}

	for _, tc := range tests {
		if got := isSnowCode(tc.code); got != tc.want {
			t.Errorf("isSnowCode(%d): got %v, want %v", tc.code, got, tc.want)
		}
	}
}
