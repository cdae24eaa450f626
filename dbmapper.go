package main

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/natalgaw/packlist/internal/database"
	"github.com/sqlc-dev/pqtype"
)

// This file converts between the sqlc-generated row types and the domain
// types the rest of the application works with. Weather predicates and trip
// forecasts live in jsonb columns and are (un)marshalled here, at the edge.

// databaseUserToUser converts a database.User to a User.
func databaseUserToUser(dbUser database.User) User {
	return User{
		ID:         dbUser.ID,
		ExternalID: dbUser.ExternalID,
		Email:      dbUser.Email,
		Name:       dbUser.Name.String,
	}
}

// databaseItemToMasterItem converts a database.Item to a MasterItem.
// A malformed weather_conditions column is an error rather than a silently
// unconditional item.
func databaseItemToMasterItem(dbItem database.Item) (MasterItem, error) {
	item := MasterItem{
		ID:        dbItem.ID,
		UserID:    dbItem.UserID,
		Name:      dbItem.Name,
		Category:  dbItem.Category,
		TripTypes: dbItem.TripTypes,
		QuantityRule: QuantityRule{
			Type:  dbItem.QuantityRuleType,
			Value: int(dbItem.QuantityRuleValue),
		},
	}
	if dbItem.WeatherConditions.Valid {
		var wc WeatherConditions
		if err := json.Unmarshal(dbItem.WeatherConditions.RawMessage, &wc); err != nil {
			return MasterItem{}, fmt.Errorf("invalid weather conditions on item %s: %w", dbItem.ID, err)
		}
		item.Weather = &wc
	}
	return item, nil
}

// masterItemToCreateItemParams converts a MasterItem to database.CreateItemParams.
func masterItemToCreateItemParams(item MasterItem) (database.CreateItemParams, error) {
	weather, err := weatherConditionsToNullRawMessage(item.Weather)
	if err != nil {
		return database.CreateItemParams{}, err
	}
	return database.CreateItemParams{
		UserID:            item.UserID,
		Name:              item.Name,
		Category:          item.Category,
		TripTypes:         item.TripTypes,
		WeatherConditions: weather,
		QuantityRuleType:  item.QuantityRule.Type,
		QuantityRuleValue: int32(item.QuantityRule.Value),
	}, nil
}

// masterItemToUpdateItemParams converts a MasterItem to database.UpdateItemParams.
func masterItemToUpdateItemParams(item MasterItem) (database.UpdateItemParams, error) {
	weather, err := weatherConditionsToNullRawMessage(item.Weather)
	if err != nil {
		return database.UpdateItemParams{}, err
	}
	return database.UpdateItemParams{
		ID:                item.ID,
		Name:              item.Name,
		Category:          item.Category,
		TripTypes:         item.TripTypes,
		WeatherConditions: weather,
		QuantityRuleType:  item.QuantityRule.Type,
		QuantityRuleValue: int32(item.QuantityRule.Value),
	}, nil
}

func weatherConditionsToNullRawMessage(wc *WeatherConditions) (pqtype.NullRawMessage, error) {
	if wc == nil {
		return pqtype.NullRawMessage{}, nil
	}
	raw, err := json.Marshal(wc)
	if err != nil {
		return pqtype.NullRawMessage{}, fmt.Errorf("could not marshal weather conditions: %w", err)
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}, nil
}

// databaseLuggageToLuggageItem converts a database.Luggage to a LuggageItem.
func databaseLuggageToLuggageItem(dbLuggage database.Luggage) LuggageItem {
	return LuggageItem{
		ID:             dbLuggage.ID,
		UserID:         dbLuggage.UserID,
		Name:           dbLuggage.Name,
		TransportModes: dbLuggage.TransportModes,
		Size:           dbLuggage.Size,
	}
}

// luggageItemToCreateLuggageParams converts a LuggageItem to database.CreateLuggageParams.
func luggageItemToCreateLuggageParams(item LuggageItem) database.CreateLuggageParams {
	return database.CreateLuggageParams{
		UserID:         item.UserID,
		Name:           item.Name,
		TransportModes: item.TransportModes,
		Size:           item.Size,
	}
}

// databaseTripToTrip converts a database.Trip to a Trip.
func databaseTripToTrip(dbTrip database.Trip) (Trip, error) {
	trip := Trip{
		ID:              dbTrip.ID,
		UserID:          dbTrip.UserID,
		Destination:     dbTrip.Destination,
		Latitude:        dbTrip.Latitude,
		Longitude:       dbTrip.Longitude,
		DepartureDate:   dbTrip.DepartureDate,
		ReturnDate:      dbTrip.ReturnDate,
		TripType:        dbTrip.TripType,
		TransportMode:   dbTrip.TransportMode,
		Status:          dbTrip.Status,
		SelectedLuggage: dbTrip.SelectedLuggage,
		CreatedAt:       dbTrip.CreatedAt,
	}
	if dbTrip.Weather.Valid {
		var weather TripWeather
		if err := json.Unmarshal(dbTrip.Weather.RawMessage, &weather); err != nil {
			return Trip{}, fmt.Errorf("invalid weather payload on trip %s: %w", dbTrip.ID, err)
		}
		trip.Weather = &weather
	}
	return trip, nil
}

// tripWeatherToNullRawMessage marshals a trip's forecast for the jsonb
// column; nil stays NULL so a failed fetch is distinguishable at rest.
func tripWeatherToNullRawMessage(weather *TripWeather) (pqtype.NullRawMessage, error) {
	if weather == nil {
		return pqtype.NullRawMessage{}, nil
	}
	raw, err := json.Marshal(weather)
	if err != nil {
		return pqtype.NullRawMessage{}, fmt.Errorf("could not marshal trip weather: %w", err)
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}, nil
}

// databaseTripItemToTripItem converts a database.TripItem to a TripItem.
func databaseTripItemToTripItem(dbItem database.TripItem) TripItem {
	return TripItem{
		ID:       dbItem.ID,
		TripID:   dbItem.TripID,
		ItemName: dbItem.ItemName,
		Category: dbItem.Category,
		Quantity: int(dbItem.Quantity),
		Packed:   dbItem.Packed,
	}
}

// generatedItemToCreateTripItemParams converts a generator output line into
// insert params for a trip's checklist.
func generatedItemToCreateTripItemParams(tripID uuid.UUID, item GeneratedPackingItem) database.CreateTripItemParams {
	return database.CreateTripItemParams{
		TripID:   tripID,
		ItemName: item.ItemName,
		Category: item.Category,
		Quantity: int32(item.Quantity),
		Packed:   false,
	}
}

// nullString wraps an optional string for TEXT NULL columns.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
