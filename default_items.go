package main

import (
	"context"

	"github.com/google/uuid"
)

// This file defines the default item library seeded for every new user, so a
// first trip produces a sensible checklist before any customization.
// Temperature thresholds are in degrees Fahrenheit, matching the unit the
// forecast is fetched in.

func tempThreshold(t float64) *float64 { return &t }

var defaultMasterItems = []MasterItem{
	{Name: "T-Shirts", Category: "Clothing", TripTypes: []string{"all"}, QuantityRule: QuantityRule{Type: QuantityPerDay, Value: 1}},
	{Name: "Underwear", Category: "Clothing", TripTypes: []string{"all"}, QuantityRule: QuantityRule{Type: QuantityPerDay, Value: 1}},
	{Name: "Socks", Category: "Clothing", TripTypes: []string{"all"}, QuantityRule: QuantityRule{Type: QuantityPerDay, Value: 1}},
	{Name: "Jeans", Category: "Clothing", TripTypes: []string{"all"}, QuantityRule: QuantityRule{Type: QuantityPerNDays, Value: 3}},
	{Name: "Toothbrush", Category: "Toiletries", TripTypes: []string{"all"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	{Name: "Toothpaste", Category: "Toiletries", TripTypes: []string{"all"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	{Name: "Deodorant", Category: "Toiletries", TripTypes: []string{"all"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	{Name: "Phone Charger", Category: "Electronics", TripTypes: []string{"all"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	{Name: "Passport", Category: "Documents", TripTypes: []string{"all"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	{Name: "Rain Jacket", Category: "Clothing", TripTypes: []string{"all"},
		Weather: &WeatherConditions{Rain: true}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	{Name: "Umbrella", Category: "Accessories", TripTypes: []string{"all"},
		Weather: &WeatherConditions{Rain: true}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	{Name: "Winter Coat", Category: "Clothing", TripTypes: []string{"all"},
		Weather: &WeatherConditions{Temperature: tempThreshold(40), Direction: "below"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	{Name: "Gloves", Category: "Accessories", TripTypes: []string{"all"},
		Weather: &WeatherConditions{Temperature: tempThreshold(35), Direction: "below"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	{Name: "Snow Boots", Category: "Footwear", TripTypes: []string{"all"},
		Weather: &WeatherConditions{Snow: true}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	{Name: "Shorts", Category: "Clothing", TripTypes: []string{"all"},
		Weather: &WeatherConditions{Temperature: tempThreshold(75), Direction: "above"}, QuantityRule: QuantityRule{Type: QuantityPerNDays, Value: 2}},
	{Name: "Sunscreen", Category: "Toiletries", TripTypes: []string{"vacation", "camping"},
		Weather: &WeatherConditions{Temperature: tempThreshold(65), Direction: "above"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	{Name: "Swimsuit", Category: "Clothing", TripTypes: []string{"vacation"},
		Weather: &WeatherConditions{Temperature: tempThreshold(70), Direction: "above"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	{Name: "Dress Shirts", Category: "Clothing", TripTypes: []string{"business"}, QuantityRule: QuantityRule{Type: QuantityPerDay, Value: 1}},
	{Name: "Laptop", Category: "Electronics", TripTypes: []string{"business"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	{Name: "Sleeping Bag", Category: "Gear", TripTypes: []string{"camping"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	{Name: "Hiking Boots", Category: "Footwear", TripTypes: []string{"camping"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
	{Name: "Comfortable Walking Shoes", Category: "Footwear", TripTypes: []string{"cityBreak"}, QuantityRule: QuantityRule{Type: QuantityFixed, Value: 1}},
}

// seedDefaultItems inserts the default library for a newly created user.
// Individual insert failures are logged and skipped rather than failing the
// user's first request.
func (cfg *apiConfig) seedDefaultItems(ctx context.Context, userID uuid.UUID) {
	for _, item := range defaultMasterItems {
		item.UserID = userID
		params, err := masterItemToCreateItemParams(item)
		if err != nil {
			cfg.logger.Error("could not build default item params", "item", item.Name, "error", err)
			continue
		}
		if _, err := cfg.dbQueries.CreateItem(ctx, params); err != nil {
			cfg.logger.Warn("could not seed default item", "item", item.Name, "user_id", userID, "error", err)
		}
	}
	cfg.logger.Debug("seeded default item library", "user_id", userID, "count", len(defaultMasterItems))
}
