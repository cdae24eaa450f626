package main

// TripWeatherSummary aggregates a trip's daily forecasts into the flags the
// packing rules test against. It is computed fresh for every generator call;
// a summary built from zero days never matches anything.
type TripWeatherSummary struct {
	HasRain bool
	HasSnow bool

	highs []float64
	lows  []float64
}

// summarizeForecast folds daily forecasts into a TripWeatherSummary. Order of
// the input does not matter; every accumulation is commutative. A day counts
// as rainy when its precipitation probability exceeds 40% or its weather code
// is a rain code, and as snowy when any snowfall is forecast or its weather
// code is a snow code.
func summarizeForecast(days []DailyForecast) TripWeatherSummary {
	s := TripWeatherSummary{
		highs: make([]float64, 0, len(days)),
		lows:  make([]float64, 0, len(days)),
	}
	for _, day := range days {
		s.highs = append(s.highs, day.HighTemp)
		s.lows = append(s.lows, day.LowTemp)
		if day.PrecipProbability > 40 || isRainCode(day.WeatherCode) {
			s.HasRain = true
		}
		if day.Snowfall > 0 || isSnowCode(day.WeatherCode) {
			s.HasSnow = true
		}
	}
	return s
}

// AnyTempAtOrAbove reports whether any day's high or low meets or exceeds t.
// A single warm day satisfies it even if the rest of the trip is cold: the
// rule stands for "you might need this at some point on the trip".
func (s TripWeatherSummary) AnyTempAtOrAbove(t float64) bool {
	for i := range s.highs {
		if s.highs[i] >= t || s.lows[i] >= t {
			return true
		}
	}
	return false
}

// AnyTempAtOrBelow reports whether any day's high or low is at or below t.
func (s TripWeatherSummary) AnyTempAtOrBelow(t float64) bool {
	for i := range s.highs {
		if s.highs[i] <= t || s.lows[i] <= t {
			return true
		}
	}
	return false
}
