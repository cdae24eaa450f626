package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/natalgaw/packlist/internal/database"
)

// This file contains the helpers behind the HTTP handlers: identity
// resolution, ownership checks, catalog loading, and the trip-creation
// workflow that ties the forecast fetch, the packing-list generator and the
// luggage recommender together.

const dateLayout = "2006-01-02"

// missingForecastWarning is returned alongside a trip whose forecast fetch
// failed; the trip is still created and weather-conditional items skipped.
const missingForecastWarning = "Unable to fetch weather for this trip. Weather-conditional items were skipped when generating this list."

// errNotOwner is mapped to 404 by handlers so resource existence is not
// leaked across accounts.
var errNotOwner = errors.New("resource does not belong to the authenticated user")

// errNoIdentity means the request carried no identity header.
var errNoIdentity = errors.New("missing X-User-ID header")

// userFromRequest resolves the opaque identity header to a user record.
// Authentication itself happens upstream; this layer only trusts the header.
// A first-seen identity gets a user row and the default item library.
func (cfg *apiConfig) userFromRequest(r *http.Request) (database.User, error) {
	ctx := r.Context()
	externalID := r.Header.Get("X-User-ID")
	if externalID == "" {
		return database.User{}, errNoIdentity
	}

	user, err := cfg.dbQueries.GetUserByExternalID(ctx, externalID)
	if err == nil {
		return user, nil
	}
	if err != sql.ErrNoRows {
		return database.User{}, fmt.Errorf("database error when fetching user: %w", err)
	}

	cfg.logger.Debug("first sight of user, creating and seeding", "external_id", externalID)
	user, err = cfg.dbQueries.CreateUser(ctx, database.CreateUserParams{
		ExternalID: externalID,
		Email:      r.Header.Get("X-User-Email"),
		Name:       nullString(r.Header.Get("X-User-Name")),
	})
	if err != nil {
		return database.User{}, fmt.Errorf("could not create user: %w", err)
	}
	cfg.seedDefaultItems(ctx, user.ID)
	return user, nil
}

// getOwnedTrip fetches a trip and verifies it belongs to the user.
func (cfg *apiConfig) getOwnedTrip(ctx context.Context, userID uuid.UUID, tripID uuid.UUID) (database.Trip, error) {
	trip, err := cfg.dbQueries.GetTrip(ctx, tripID)
	if err != nil {
		return database.Trip{}, err
	}
	if trip.UserID != userID {
		return database.Trip{}, errNotOwner
	}
	return trip, nil
}

// getOwnedTripItem fetches a trip item and verifies its trip belongs to the user.
func (cfg *apiConfig) getOwnedTripItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) (database.TripItem, error) {
	item, err := cfg.dbQueries.GetTripItem(ctx, itemID)
	if err != nil {
		return database.TripItem{}, err
	}
	if _, err := cfg.getOwnedTrip(ctx, userID, item.TripID); err != nil {
		return database.TripItem{}, err
	}
	return item, nil
}

// loadMasterItems returns the user's item library in catalog order.
func (cfg *apiConfig) loadMasterItems(ctx context.Context, userID uuid.UUID) ([]MasterItem, error) {
	dbItems, err := cfg.dbQueries.ListItemsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("database error when listing items: %w", err)
	}
	items := make([]MasterItem, 0, len(dbItems))
	for _, dbItem := range dbItems {
		item, err := databaseItemToMasterItem(dbItem)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// loadLuggage returns the user's luggage catalog.
func (cfg *apiConfig) loadLuggage(ctx context.Context, userID uuid.UUID) ([]LuggageItem, error) {
	dbLuggage, err := cfg.dbQueries.ListLuggageByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("database error when listing luggage: %w", err)
	}
	luggage := make([]LuggageItem, 0, len(dbLuggage))
	for _, l := range dbLuggage {
		luggage = append(luggage, databaseLuggageToLuggageItem(l))
	}
	return luggage, nil
}

// tripDaysBetween counts the calendar days of a stay, inclusive of both the
// departure and return dates.
func tripDaysBetween(departure, returnDate time.Time) int {
	return int(returnDate.Sub(departure).Hours()/24) + 1
}

// createTripForUser runs the trip-creation workflow:
//
//  1. fetch the stay's daily forecast (one bounded attempt; on failure the
//     trip proceeds with no weather and a warning);
//  2. persist the trip;
//  3. generate the packing list; a validation error from the generator
//     rolls the trip row back so no orphaned trip survives;
//  4. persist the generated items;
//  5. suggest luggage for the transport mode and store the selection.
func (cfg *apiConfig) createTripForUser(ctx context.Context, user database.User, req createTripRequest, departure, returnDate time.Time) (TripResponse, error) {
	var warnings []string
	var weather *TripWeather

	forecasts, err := cfg.cachedForecast(ctx, req.Latitude, req.Longitude, req.DepartureDate, req.ReturnDate)
	if err != nil {
		cfg.logger.Warn("forecast unavailable, creating trip without weather", "destination", req.Destination, "error", err)
		warnings = append(warnings, missingForecastWarning)
	} else {
		weather = &TripWeather{DailyForecasts: forecasts, FetchedAt: time.Now().UTC()}
	}

	weatherRaw, err := tripWeatherToNullRawMessage(weather)
	if err != nil {
		return TripResponse{}, err
	}

	dbTrip, err := cfg.dbQueries.CreateTrip(ctx, database.CreateTripParams{
		UserID:          user.ID,
		Destination:     req.Destination,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		DepartureDate:   departure,
		ReturnDate:      returnDate,
		TripType:        req.TripType,
		TransportMode:   req.TransportMode,
		Status:          TripStatusPlanning,
		SelectedLuggage: []uuid.UUID{},
		Weather:         weatherRaw,
	})
	if err != nil {
		return TripResponse{}, fmt.Errorf("could not persist trip: %w", err)
	}

	masterItems, err := cfg.loadMasterItems(ctx, user.ID)
	if err != nil {
		cfg.rollbackTrip(ctx, dbTrip.ID)
		return TripResponse{}, err
	}

	generated, err := GeneratePackingList(masterItems, TripParameters{
		TripType: req.TripType,
		TripDays: tripDaysBetween(departure, returnDate),
		Weather:  weather,
	})
	if err != nil {
		cfg.rollbackTrip(ctx, dbTrip.ID)
		return TripResponse{}, err
	}
	packingListsGenerated.WithLabelValues(strconv.FormatBool(weather != nil)).Inc()

	tripItems := make([]TripItem, 0, len(generated))
	totalItemCount := 0
	for _, g := range generated {
		dbItem, err := cfg.dbQueries.CreateTripItem(ctx, generatedItemToCreateTripItemParams(dbTrip.ID, g))
		if err != nil {
			cfg.logger.Error("could not persist trip item", "trip_id", dbTrip.ID, "item", g.ItemName, "error", err)
			continue
		}
		tripItems = append(tripItems, databaseTripItemToTripItem(dbItem))
		totalItemCount += g.Quantity
	}

	luggage, err := cfg.loadLuggage(ctx, user.ID)
	if err != nil {
		cfg.logger.Warn("could not load luggage catalog, skipping suggestion", "user_id", user.ID, "error", err)
		luggage = nil
	}
	suggested := SuggestLuggage(luggage, req.TransportMode, totalItemCount)
	selectedIDs := make([]uuid.UUID, len(suggested))
	for i, bag := range suggested {
		selectedIDs[i] = bag.ID
	}
	if err := cfg.dbQueries.UpdateTripLuggage(ctx, database.UpdateTripLuggageParams{ID: dbTrip.ID, SelectedLuggage: selectedIDs}); err != nil {
		cfg.logger.Warn("could not store suggested luggage", "trip_id", dbTrip.ID, "error", err)
	}
	if warning := UndersizedLuggageWarning(suggested, totalItemCount); warning != "" {
		warnings = append(warnings, warning)
	}

	trip, err := databaseTripToTrip(dbTrip)
	if err != nil {
		return TripResponse{}, err
	}
	trip.SelectedLuggage = selectedIDs

	return TripResponse{
		Trip:             trip,
		Items:            tripItems,
		SuggestedLuggage: suggested,
		Warnings:         warnings,
	}, nil
}

// rollbackTrip removes a trip created earlier in a failed workflow.
func (cfg *apiConfig) rollbackTrip(ctx context.Context, tripID uuid.UUID) {
	if err := cfg.dbQueries.DeleteTrip(ctx, tripID); err != nil {
		cfg.logger.Error("could not roll back trip after failed generation", "trip_id", tripID, "error", err)
	}
}
