package main

// This file maps WMO weather codes (as used by the Open-Meteo API) to display
// labels and to the semantic buckets the packing rules care about. The tables
// are fixed at compile time and treated as read-only.

// weatherCodeLabels holds the human-readable label for every known code.
var weatherCodeLabels = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// The bucket sets partition the known code space; a code belongs to at most
// one bucket, and unknown codes belong to none.
var (
	clearCodes        = codeSet(0)
	cloudyCodes       = codeSet(1, 2, 3)
	fogCodes          = codeSet(45, 48)
	rainCodes         = codeSet(51, 53, 55, 56, 57, 61, 63, 65, 66, 67, 80, 81, 82)
	snowCodes         = codeSet(71, 73, 75, 77, 85, 86)
	thunderstormCodes = codeSet(95, 96, 99)
)

func codeSet(codes ...int) map[int]bool {
	s := make(map[int]bool, len(codes))
	for _, c := range codes {
		s[c] = true
	}
	return s
}

// conditionFromCode returns the display label for a weather code, or
// "Unknown" for any code outside the table.
func conditionFromCode(code int) string {
	if label, ok := weatherCodeLabels[code]; ok {
		return label
	}
	return "Unknown"
}

// isRainCode reports whether a code means precipitation for packing purposes.
// Thunderstorm codes count as rain.
func isRainCode(code int) bool {
	return rainCodes[code] || thunderstormCodes[code]
}

// isSnowCode reports whether a code is in the snow bucket.
func isSnowCode(code int) bool {
	return snowCodes[code]
}
