package main

import "errors"

// This file implements the packing-list generation engine: a pure function
// mapping a user's item library and trip parameters to a concrete list of
// items with computed quantities. It performs no I/O and keeps no state
// between calls.

// The generator's only error paths. Both indicate bad input data rather than
// an unpackable trip; callers are expected to roll back any trip record they
// created before calling.
var (
	ErrInvalidTripDays      = errors.New("trip duration must be a positive number of days")
	ErrInvalidQuantityValue = errors.New("quantity rule value must be positive")
)

// TripTypeAll is the sentinel trip-type label meaning an item applies to
// every trip type.
const TripTypeAll = "all"

// GeneratePackingList evaluates every master item against the trip and
// returns the items to pack, in catalog order, with computed quantities.
//
// Each item passes through three stages, short-circuiting on the first miss:
//
//  1. trip-type filter: the item's trip types must contain "all" or the
//     trip's type (exact, case-sensitive match);
//  2. weather filter: unconditional items always pass; weather-conditional
//     items are dropped outright when the trip has no forecast, and otherwise
//     pass when at least one of their sub-conditions matches the summary;
//  3. quantity computation per the item's rule.
//
// tripDays and the rule value are validated at stage 3, so a catalog that is
// entirely filtered out earlier returns an empty list even when tripDays is
// invalid. That is long-standing observed behavior which callers' test suites
// encode; keep it when touching this function.
func GeneratePackingList(masterItems []MasterItem, trip TripParameters) ([]GeneratedPackingItem, error) {
	var summary TripWeatherSummary
	hasForecast := trip.Weather != nil
	if hasForecast {
		summary = summarizeForecast(trip.Weather.DailyForecasts)
	}

	result := []GeneratedPackingItem{}
	for _, item := range masterItems {
		if !tripTypeMatches(item.TripTypes, trip.TripType) {
			continue
		}

		if item.Weather != nil {
			if !hasForecast {
				// Never guess at weather-conditional items without a forecast.
				continue
			}
			if !weatherConditionsMatch(*item.Weather, summary) {
				continue
			}
		}

		if trip.TripDays <= 0 {
			return nil, ErrInvalidTripDays
		}
		if item.QuantityRule.Value <= 0 {
			return nil, ErrInvalidQuantityValue
		}

		result = append(result, GeneratedPackingItem{
			ItemName: item.Name,
			Category: item.Category,
			Quantity: computeQuantity(item.QuantityRule, trip.TripDays),
		})
	}
	return result, nil
}

func tripTypeMatches(itemTripTypes []string, tripType string) bool {
	for _, t := range itemTripTypes {
		if t == TripTypeAll || t == tripType {
			return true
		}
	}
	return false
}

// weatherConditionsMatch evaluates each present sub-condition into its own
// boolean and folds them with OR. A predicate with no recognized
// sub-condition present never matches.
func weatherConditionsMatch(wc WeatherConditions, summary TripWeatherSummary) bool {
	tempMatch := false
	if wc.Temperature != nil {
		switch wc.Direction {
		case "above":
			tempMatch = summary.AnyTempAtOrAbove(*wc.Temperature)
		case "below":
			tempMatch = summary.AnyTempAtOrBelow(*wc.Temperature)
		}
	}
	rainMatch := wc.Rain && summary.HasRain
	snowMatch := wc.Snow && summary.HasSnow

	return tempMatch || rainMatch || snowMatch
}

func computeQuantity(rule QuantityRule, tripDays int) int {
	switch rule.Type {
	case QuantityPerDay:
		return tripDays * rule.Value
	case QuantityPerNDays:
		// Ceiling division, floored at one unit so very long replacement
		// intervals still pack something.
		quantity := (tripDays + rule.Value - 1) / rule.Value
		if quantity < 1 {
			quantity = 1
		}
		return quantity
	default: // QuantityFixed
		return rule.Value
	}
}
