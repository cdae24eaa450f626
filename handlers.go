package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/natalgaw/packlist/internal/database"
)

// Trip and trip-item handlers. Every handler resolves the caller's identity
// first and only ever touches rows owned by that user; ownership failures
// answer 404 so existence of other users' trips is not revealed.

type createTripRequest struct {
	Destination   string  `json:"destination"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    string  `json:"return_date"`
	TripType      string  `json:"trip_type"`
	TransportMode string  `json:"transport_mode"`
}

var validTripStatuses = map[string]bool{
	TripStatusPlanning:  true,
	TripStatusPacking:   true,
	TripStatusCompleted: true,
}

var validTripTypes = map[string]bool{
	"business":  true,
	"vacation":  true,
	"camping":   true,
	"cityBreak": true,
}

// handlerCreateTrip creates a trip, generates its packing list from the
// user's item library and the stay's forecast, and suggests luggage.
func (cfg *apiConfig) handlerCreateTrip(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}

	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Destination == "" {
		respondWithError(w, http.StatusBadRequest, "destination is required")
		return
	}
	if !validTripTypes[req.TripType] {
		respondWithError(w, http.StatusBadRequest, "unknown trip type")
		return
	}
	departure, err := time.Parse(dateLayout, req.DepartureDate)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "departure_date must be YYYY-MM-DD")
		return
	}
	returnDate, err := time.Parse(dateLayout, req.ReturnDate)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "return_date must be YYYY-MM-DD")
		return
	}
	if returnDate.Before(departure) {
		respondWithError(w, http.StatusBadRequest, "return_date must not be before departure_date")
		return
	}

	resp, err := cfg.createTripForUser(r.Context(), user, req, departure, returnDate)
	if err != nil {
		if errors.Is(err, ErrInvalidTripDays) || errors.Is(err, ErrInvalidQuantityValue) {
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		cfg.logger.Error("trip creation failed", "destination", req.Destination, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not create trip")
		return
	}
	respondWithJSON(w, http.StatusCreated, resp)
}

func (cfg *apiConfig) handlerListTrips(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	dbTrips, err := cfg.dbQueries.ListTripsByUser(r.Context(), user.ID)
	if err != nil {
		cfg.logger.Error("could not list trips", "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not list trips")
		return
	}
	trips := make([]Trip, 0, len(dbTrips))
	for _, dbTrip := range dbTrips {
		trip, err := databaseTripToTrip(dbTrip)
		if err != nil {
			cfg.logger.Error("skipping malformed trip row", "trip_id", dbTrip.ID, "error", err)
			continue
		}
		trips = append(trips, trip)
	}
	respondWithJSON(w, http.StatusOK, trips)
}

func (cfg *apiConfig) handlerGetTrip(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	tripID, err := uuid.Parse(r.PathValue("tripID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid trip id")
		return
	}
	dbTrip, err := cfg.getOwnedTrip(r.Context(), user.ID, tripID)
	if err != nil {
		respondOwnershipError(w, err)
		return
	}
	trip, err := databaseTripToTrip(dbTrip)
	if err != nil {
		cfg.logger.Error("malformed trip row", "trip_id", tripID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not read trip")
		return
	}
	dbItems, err := cfg.dbQueries.ListTripItemsByTrip(r.Context(), tripID)
	if err != nil {
		cfg.logger.Error("could not list trip items", "trip_id", tripID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not read trip items")
		return
	}
	items := make([]TripItem, 0, len(dbItems))
	for _, dbItem := range dbItems {
		items = append(items, databaseTripItemToTripItem(dbItem))
	}
	respondWithJSON(w, http.StatusOK, struct {
		Trip  Trip       `json:"trip"`
		Items []TripItem `json:"items"`
	}{Trip: trip, Items: items})
}

func (cfg *apiConfig) handlerDeleteTrip(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	tripID, err := uuid.Parse(r.PathValue("tripID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid trip id")
		return
	}
	if _, err := cfg.getOwnedTrip(r.Context(), user.ID, tripID); err != nil {
		respondOwnershipError(w, err)
		return
	}
	if err := cfg.dbQueries.DeleteTrip(r.Context(), tripID); err != nil {
		cfg.logger.Error("could not delete trip", "trip_id", tripID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not delete trip")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (cfg *apiConfig) handlerUpdateTripStatus(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	tripID, err := uuid.Parse(r.PathValue("tripID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid trip id")
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validTripStatuses[req.Status] {
		respondWithError(w, http.StatusBadRequest, "unknown trip status")
		return
	}
	if _, err := cfg.getOwnedTrip(r.Context(), user.ID, tripID); err != nil {
		respondOwnershipError(w, err)
		return
	}
	if err := cfg.dbQueries.UpdateTripStatus(r.Context(), database.UpdateTripStatusParams{ID: tripID, Status: req.Status}); err != nil {
		cfg.logger.Error("could not update trip status", "trip_id", tripID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not update trip status")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlerUpdateTripLuggage replaces the trip's luggage selection with bags
// picked by the user and reports whether the pick looks undersized.
func (cfg *apiConfig) handlerUpdateTripLuggage(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	tripID, err := uuid.Parse(r.PathValue("tripID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid trip id")
		return
	}
	var req struct {
		LuggageIDs []uuid.UUID `json:"luggage_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := cfg.getOwnedTrip(r.Context(), user.ID, tripID); err != nil {
		respondOwnershipError(w, err)
		return
	}

	luggage, err := cfg.loadLuggage(r.Context(), user.ID)
	if err != nil {
		cfg.logger.Error("could not load luggage catalog", "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not load luggage")
		return
	}
	byID := make(map[uuid.UUID]LuggageItem, len(luggage))
	for _, bag := range luggage {
		byID[bag.ID] = bag
	}
	selected := make([]LuggageItem, 0, len(req.LuggageIDs))
	for _, id := range req.LuggageIDs {
		bag, ok := byID[id]
		if !ok {
			respondWithError(w, http.StatusBadRequest, "luggage id does not belong to your catalog")
			return
		}
		selected = append(selected, bag)
	}

	if err := cfg.dbQueries.UpdateTripLuggage(r.Context(), database.UpdateTripLuggageParams{ID: tripID, SelectedLuggage: req.LuggageIDs}); err != nil {
		cfg.logger.Error("could not update trip luggage", "trip_id", tripID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not update trip luggage")
		return
	}

	totalItemCount, err := cfg.tripItemCount(r.Context(), tripID)
	if err != nil {
		cfg.logger.Error("could not count trip items", "trip_id", tripID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not update trip luggage")
		return
	}
	var warnings []string
	if warning := UndersizedLuggageWarning(selected, totalItemCount); warning != "" {
		warnings = append(warnings, warning)
	}
	respondWithJSON(w, http.StatusOK, struct {
		Warnings []string `json:"warnings"`
	}{Warnings: warnings})
}

// handlerRefreshTripWeather re-fetches the trip's forecast on demand.
func (cfg *apiConfig) handlerRefreshTripWeather(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	tripID, err := uuid.Parse(r.PathValue("tripID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid trip id")
		return
	}
	dbTrip, err := cfg.getOwnedTrip(r.Context(), user.ID, tripID)
	if err != nil {
		respondOwnershipError(w, err)
		return
	}
	weather, err := cfg.refreshTripWeather(r.Context(), dbTrip)
	if err != nil {
		cfg.logger.Error("could not refresh trip weather", "trip_id", tripID, "error", err)
		respondWithError(w, http.StatusBadGateway, "could not refresh trip weather")
		return
	}
	respondWithJSON(w, http.StatusOK, weather)
}

func (cfg *apiConfig) handlerCreateTripItem(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	tripID, err := uuid.Parse(r.PathValue("tripID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid trip id")
		return
	}
	var req struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondWithError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Quantity < 1 {
		respondWithError(w, http.StatusBadRequest, "quantity must be at least 1")
		return
	}
	if _, err := cfg.getOwnedTrip(r.Context(), user.ID, tripID); err != nil {
		respondOwnershipError(w, err)
		return
	}
	dbItem, err := cfg.dbQueries.CreateTripItem(r.Context(), database.CreateTripItemParams{
		TripID:   tripID,
		ItemName: req.Name,
		Category: req.Category,
		Quantity: int32(req.Quantity),
		Packed:   false,
	})
	if err != nil {
		cfg.logger.Error("could not create trip item", "trip_id", tripID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not create trip item")
		return
	}
	respondWithJSON(w, http.StatusCreated, databaseTripItemToTripItem(dbItem))
}

func (cfg *apiConfig) handlerUpdateTripItemQuantity(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	itemID, err := uuid.Parse(r.PathValue("itemID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid trip item id")
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity < 1 {
		respondWithError(w, http.StatusBadRequest, "quantity must be at least 1")
		return
	}
	if _, err := cfg.getOwnedTripItem(r.Context(), user.ID, itemID); err != nil {
		respondOwnershipError(w, err)
		return
	}
	if err := cfg.dbQueries.UpdateTripItemQuantity(r.Context(), database.UpdateTripItemQuantityParams{ID: itemID, Quantity: int32(req.Quantity)}); err != nil {
		cfg.logger.Error("could not update trip item quantity", "trip_item_id", itemID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not update trip item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (cfg *apiConfig) handlerSetTripItemPacked(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	itemID, err := uuid.Parse(r.PathValue("itemID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid trip item id")
		return
	}
	var req struct {
		Packed bool `json:"packed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := cfg.getOwnedTripItem(r.Context(), user.ID, itemID); err != nil {
		respondOwnershipError(w, err)
		return
	}
	if err := cfg.dbQueries.SetTripItemPacked(r.Context(), database.SetTripItemPackedParams{ID: itemID, Packed: req.Packed}); err != nil {
		cfg.logger.Error("could not set trip item packed state", "trip_item_id", itemID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not update trip item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (cfg *apiConfig) handlerDeleteTripItem(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	itemID, err := uuid.Parse(r.PathValue("itemID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid trip item id")
		return
	}
	if _, err := cfg.getOwnedTripItem(r.Context(), user.ID, itemID); err != nil {
		respondOwnershipError(w, err)
		return
	}
	if err := cfg.dbQueries.DeleteTripItem(r.Context(), itemID); err != nil {
		cfg.logger.Error("could not delete trip item", "trip_item_id", itemID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not delete trip item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// tripItemCount sums the quantities of all items on a trip.
func (cfg *apiConfig) tripItemCount(ctx context.Context, tripID uuid.UUID) (int, error) {
	dbItems, err := cfg.dbQueries.ListTripItemsByTrip(ctx, tripID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, item := range dbItems {
		total += int(item.Quantity)
	}
	return total, nil
}

func respondIdentityError(w http.ResponseWriter, err error) {
	if errors.Is(err, errNoIdentity) {
		respondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}
	respondWithError(w, http.StatusInternalServerError, "could not resolve user")
}

func respondOwnershipError(w http.ResponseWriter, err error) {
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, errNotOwner) {
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}
	respondWithError(w, http.StatusInternalServerError, "database error")
}
