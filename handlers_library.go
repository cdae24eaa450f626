package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/natalgaw/packlist/internal/database"
)

// Handlers for the item library, the luggage catalog, identity, geocoding
// and the dev-only endpoints.

var validQuantityRuleTypes = map[string]bool{
	QuantityPerDay:   true,
	QuantityPerNDays: true,
	QuantityFixed:    true,
}

var validLuggageSizes = map[string]bool{
	LuggageSmall:  true,
	LuggageMedium: true,
	LuggageLarge:  true,
}

type itemRequest struct {
	Name              string             `json:"name"`
	Category          string             `json:"category"`
	TripTypes         []string           `json:"trip_types"`
	Weather           *WeatherConditions `json:"weather_conditions"`
	QuantityRuleType  string             `json:"quantity_rule_type"`
	QuantityRuleValue int                `json:"quantity_rule_value"`
}

func (req itemRequest) validate() error {
	if req.Name == "" {
		return errors.New("name is required")
	}
	if !validQuantityRuleTypes[req.QuantityRuleType] {
		return errors.New("unknown quantity rule type")
	}
	if req.QuantityRuleValue < 1 {
		return errors.New("quantity rule value must be at least 1")
	}
	if req.Weather != nil && req.Weather.Temperature != nil {
		if req.Weather.Direction != "above" && req.Weather.Direction != "below" {
			return errors.New("temperature condition requires direction \"above\" or \"below\"")
		}
	}
	return nil
}

func (req itemRequest) toMasterItem(id, userID uuid.UUID) MasterItem {
	tripTypes := req.TripTypes
	if tripTypes == nil {
		tripTypes = []string{}
	}
	return MasterItem{
		ID:        id,
		UserID:    userID,
		Name:      req.Name,
		Category:  req.Category,
		TripTypes: tripTypes,
		Weather:   req.Weather,
		QuantityRule: QuantityRule{
			Type:  req.QuantityRuleType,
			Value: req.QuantityRuleValue,
		},
	}
}

// handlerMe resolves the caller's identity, creating the account and its
// default item library on first sight.
func (cfg *apiConfig) handlerMe(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, databaseUserToUser(user))
}

func (cfg *apiConfig) handlerListItems(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	items, err := cfg.loadMasterItems(r.Context(), user.ID)
	if err != nil {
		cfg.logger.Error("could not list items", "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not list items")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (cfg *apiConfig) handlerCreateItem(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	params, err := masterItemToCreateItemParams(req.toMasterItem(uuid.Nil, user.ID))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	dbItem, err := cfg.dbQueries.CreateItem(r.Context(), params)
	if err != nil {
		cfg.logger.Error("could not create item", "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not create item")
		return
	}
	item, err := databaseItemToMasterItem(dbItem)
	if err != nil {
		cfg.logger.Error("created item row is malformed", "item_id", dbItem.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not create item")
		return
	}
	respondWithJSON(w, http.StatusCreated, item)
}

func (cfg *apiConfig) handlerUpdateItem(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	itemID, err := uuid.Parse(r.PathValue("itemID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	existing, err := cfg.dbQueries.GetItem(r.Context(), itemID)
	if err != nil {
		respondOwnershipError(w, err)
		return
	}
	if existing.UserID != user.ID {
		respondOwnershipError(w, errNotOwner)
		return
	}
	params, err := masterItemToUpdateItemParams(req.toMasterItem(itemID, user.ID))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	dbItem, err := cfg.dbQueries.UpdateItem(r.Context(), params)
	if err != nil {
		cfg.logger.Error("could not update item", "item_id", itemID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not update item")
		return
	}
	item, err := databaseItemToMasterItem(dbItem)
	if err != nil {
		cfg.logger.Error("updated item row is malformed", "item_id", itemID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not update item")
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

func (cfg *apiConfig) handlerDeleteItem(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	itemID, err := uuid.Parse(r.PathValue("itemID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid item id")
		return
	}
	existing, err := cfg.dbQueries.GetItem(r.Context(), itemID)
	if err != nil {
		respondOwnershipError(w, err)
		return
	}
	if existing.UserID != user.ID {
		respondOwnershipError(w, errNotOwner)
		return
	}
	if err := cfg.dbQueries.DeleteItem(r.Context(), itemID); err != nil {
		cfg.logger.Error("could not delete item", "item_id", itemID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not delete item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type luggageRequest struct {
	Name           string   `json:"name"`
	TransportModes []string `json:"transport_modes"`
	Size           string   `json:"size"`
}

func (req luggageRequest) validate() error {
	if req.Name == "" {
		return errors.New("name is required")
	}
	if !validLuggageSizes[req.Size] {
		return errors.New("size must be small, medium or large")
	}
	return nil
}

func (cfg *apiConfig) handlerListLuggage(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	luggage, err := cfg.loadLuggage(r.Context(), user.ID)
	if err != nil {
		cfg.logger.Error("could not list luggage", "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not list luggage")
		return
	}
	respondWithJSON(w, http.StatusOK, luggage)
}

func (cfg *apiConfig) handlerCreateLuggage(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	var req luggageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	modes := req.TransportModes
	if modes == nil {
		modes = []string{}
	}
	dbLuggage, err := cfg.dbQueries.CreateLuggage(r.Context(), luggageItemToCreateLuggageParams(LuggageItem{
		UserID:         user.ID,
		Name:           req.Name,
		TransportModes: modes,
		Size:           req.Size,
	}))
	if err != nil {
		cfg.logger.Error("could not create luggage", "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not create luggage")
		return
	}
	respondWithJSON(w, http.StatusCreated, databaseLuggageToLuggageItem(dbLuggage))
}

func (cfg *apiConfig) handlerUpdateLuggage(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	luggageID, err := uuid.Parse(r.PathValue("luggageID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid luggage id")
		return
	}
	var req luggageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	existing, err := cfg.dbQueries.GetLuggage(r.Context(), luggageID)
	if err != nil {
		respondOwnershipError(w, err)
		return
	}
	if existing.UserID != user.ID {
		respondOwnershipError(w, errNotOwner)
		return
	}
	modes := req.TransportModes
	if modes == nil {
		modes = []string{}
	}
	dbLuggage, err := cfg.dbQueries.UpdateLuggage(r.Context(), database.UpdateLuggageParams{
		ID:             luggageID,
		Name:           req.Name,
		TransportModes: modes,
		Size:           req.Size,
	})
	if err != nil {
		cfg.logger.Error("could not update luggage", "luggage_id", luggageID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not update luggage")
		return
	}
	respondWithJSON(w, http.StatusOK, databaseLuggageToLuggageItem(dbLuggage))
}

func (cfg *apiConfig) handlerDeleteLuggage(w http.ResponseWriter, r *http.Request) {
	user, err := cfg.userFromRequest(r)
	if err != nil {
		respondIdentityError(w, err)
		return
	}
	luggageID, err := uuid.Parse(r.PathValue("luggageID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid luggage id")
		return
	}
	existing, err := cfg.dbQueries.GetLuggage(r.Context(), luggageID)
	if err != nil {
		respondOwnershipError(w, err)
		return
	}
	if existing.UserID != user.ID {
		respondOwnershipError(w, errNotOwner)
		return
	}
	if err := cfg.dbQueries.DeleteLuggage(r.Context(), luggageID); err != nil {
		cfg.logger.Error("could not delete luggage", "luggage_id", luggageID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "could not delete luggage")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlerGeocode resolves a destination name to candidate cities.
func (cfg *apiConfig) handlerGeocode(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		respondWithError(w, http.StatusBadRequest, "city query parameter is required")
		return
	}
	candidates, err := cfg.cachedGeocode(r.Context(), city)
	if err != nil {
		if errors.Is(err, ErrNoResultsFound) {
			respondWithError(w, http.StatusNotFound, "no results found for city")
			return
		}
		cfg.logger.Error("geocoding failed", "city", city, "error", err)
		respondWithError(w, http.StatusBadGateway, "geocoding service unavailable")
		return
	}
	respondWithJSON(w, http.StatusOK, GeocodeResponse{Candidates: candidates})
}

// handlerConfig reports the running configuration. Dev mode only.
func (cfg *apiConfig) handlerConfig(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, struct {
		Port               string `json:"port"`
		GeocodeURL         string `json:"geocode_url"`
		ForecastURL        string `json:"forecast_url"`
		RefreshInterval    string `json:"weather_refresh_interval"`
		RefreshHorizonDays int    `json:"weather_refresh_horizon_days"`
	}{
		Port:               cfg.port,
		GeocodeURL:         cfg.geocodeURL,
		ForecastURL:        cfg.forecastURL,
		RefreshInterval:    cfg.schedulerRefreshInterval.String(),
		RefreshHorizonDays: cfg.refreshHorizonDays,
	})
}

// handlerResetDB wipes all data. Dev mode only; registered only when
// DEV_MODE is set.
func (cfg *apiConfig) handlerResetDB(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	steps := []struct {
		name string
		fn   func() error
	}{
		{"trip items", func() error { return cfg.dbQueries.DeleteAllTripItems(ctx) }},
		{"trips", func() error { return cfg.dbQueries.DeleteAllTrips(ctx) }},
		{"items", func() error { return cfg.dbQueries.DeleteAllItems(ctx) }},
		{"luggage", func() error { return cfg.dbQueries.DeleteAllLuggage(ctx) }},
		{"users", func() error { return cfg.dbQueries.DeleteAllUsers(ctx) }},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			cfg.logger.Error("database reset failed", "step", step.name, "error", err)
			respondWithError(w, http.StatusInternalServerError, "could not reset database")
			return
		}
	}
	if err := cfg.cache.Flush(ctx); err != nil {
		cfg.logger.Warn("could not flush cache during reset", "error", err)
	}
	cfg.logger.Info("database reset complete")
	w.WriteHeader(http.StatusNoContent)
}
