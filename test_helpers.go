package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/natalgaw/packlist/internal/database"
	"github.com/redis/go-redis/v9"
)

// --- Mocks ---

// mockGeocodingService is a mock for the GeocodingService interface.
type mockGeocodingService struct {
	GeocodeFunc func(ctx context.Context, cityName string) ([]CityCandidate, error)
}

func (m *mockGeocodingService) Geocode(ctx context.Context, cityName string) ([]CityCandidate, error) {
	if m.GeocodeFunc != nil {
		return m.GeocodeFunc(ctx, cityName)
	}
	return nil, errors.New("GeocodeFunc not implemented in mock")
}

// mockForecastService is a mock for the ForecastService interface.
type mockForecastService struct {
	FetchDailyForecastsFunc func(ctx context.Context, lat, lon float64, startDate, endDate string) ([]DailyForecast, error)
}

func (m *mockForecastService) FetchDailyForecasts(ctx context.Context, lat, lon float64, startDate, endDate string) ([]DailyForecast, error) {
	if m.FetchDailyForecastsFunc != nil {
		return m.FetchDailyForecastsFunc(ctx, lat, lon, startDate, endDate)
	}
	return nil, errors.New("FetchDailyForecastsFunc not implemented in mock")
}

// mockCache is a mock for the Cache interface.
type mockCache struct {
	getFunc   func(ctx context.Context, key string) (string, error)
	setFunc   func(ctx context.Context, key string, value any, expiration time.Duration) error
	flushFunc func(ctx context.Context) error
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return "", redis.Nil
}

func (m *mockCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, expiration)
	}
	return nil
}

func (m *mockCache) Flush(ctx context.Context) error {
	if m.flushFunc != nil {
		return m.flushFunc(ctx)
	}
	return nil
}

// testLogger returns a logger whose output is discarded.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockQuerier is a comprehensive, safe mock for the dbQuerier interface.
// It fails the test if any unexpected method is called.
type mockQuerier struct {
	t *testing.T

	CreateItemFunc                func(ctx context.Context, arg database.CreateItemParams) (database.Item, error)
	CreateLuggageFunc             func(ctx context.Context, arg database.CreateLuggageParams) (database.Luggage, error)
	CreateTripFunc                func(ctx context.Context, arg database.CreateTripParams) (database.Trip, error)
	CreateTripItemFunc            func(ctx context.Context, arg database.CreateTripItemParams) (database.TripItem, error)
	CreateUserFunc                func(ctx context.Context, arg database.CreateUserParams) (database.User, error)
	DeleteAllItemsFunc            func(ctx context.Context) error
	DeleteAllLuggageFunc          func(ctx context.Context) error
	DeleteAllTripItemsFunc        func(ctx context.Context) error
	DeleteAllTripsFunc            func(ctx context.Context) error
	DeleteAllUsersFunc            func(ctx context.Context) error
	DeleteItemFunc                func(ctx context.Context, id uuid.UUID) error
	DeleteLuggageFunc             func(ctx context.Context, id uuid.UUID) error
	DeleteTripFunc                func(ctx context.Context, id uuid.UUID) error
	DeleteTripItemFunc            func(ctx context.Context, id uuid.UUID) error
	DeleteTripItemsByTripFunc     func(ctx context.Context, tripID uuid.UUID) error
	GetItemFunc                   func(ctx context.Context, id uuid.UUID) (database.Item, error)
	GetLuggageFunc                func(ctx context.Context, id uuid.UUID) (database.Luggage, error)
	GetTripFunc                   func(ctx context.Context, id uuid.UUID) (database.Trip, error)
	GetTripItemFunc               func(ctx context.Context, id uuid.UUID) (database.TripItem, error)
	GetUserByExternalIDFunc       func(ctx context.Context, externalID string) (database.User, error)
	ListItemsByUserFunc           func(ctx context.Context, userID uuid.UUID) ([]database.Item, error)
	ListLuggageByUserFunc         func(ctx context.Context, userID uuid.UUID) ([]database.Luggage, error)
	ListTripItemsByTripFunc       func(ctx context.Context, tripID uuid.UUID) ([]database.TripItem, error)
	ListTripsByUserFunc           func(ctx context.Context, userID uuid.UUID) ([]database.Trip, error)
	ListUpcomingPlanningTripsFunc func(ctx context.Context, arg database.ListUpcomingPlanningTripsParams) ([]database.Trip, error)
	SetTripItemPackedFunc         func(ctx context.Context, arg database.SetTripItemPackedParams) error
	UpdateItemFunc                func(ctx context.Context, arg database.UpdateItemParams) (database.Item, error)
	UpdateLuggageFunc             func(ctx context.Context, arg database.UpdateLuggageParams) (database.Luggage, error)
	UpdateTripItemQuantityFunc    func(ctx context.Context, arg database.UpdateTripItemQuantityParams) error
	UpdateTripLuggageFunc         func(ctx context.Context, arg database.UpdateTripLuggageParams) error
	UpdateTripStatusFunc          func(ctx context.Context, arg database.UpdateTripStatusParams) error
	UpdateTripWeatherFunc         func(ctx context.Context, arg database.UpdateTripWeatherParams) error
}

// --- mockQuerier method implementations ---

func (m *mockQuerier) fail(method string) {
	m.t.Fatalf("unexpected call to mockQuerier method: %s", method)
}

func (m *mockQuerier) CreateItem(ctx context.Context, arg database.CreateItemParams) (database.Item, error) {
	if m.CreateItemFunc != nil {
		return m.CreateItemFunc(ctx, arg)
	}
	m.fail("CreateItem")
	return database.Item{}, nil
}
func (m *mockQuerier) CreateLuggage(ctx context.Context, arg database.CreateLuggageParams) (database.Luggage, error) {
	if m.CreateLuggageFunc != nil {
		return m.CreateLuggageFunc(ctx, arg)
	}
	m.fail("CreateLuggage")
	return database.Luggage{}, nil
}
func (m *mockQuerier) CreateTrip(ctx context.Context, arg database.CreateTripParams) (database.Trip, error) {
	if m.CreateTripFunc != nil {
		return m.CreateTripFunc(ctx, arg)
	}
	m.fail("CreateTrip")
	return database.Trip{}, nil
}
func (m *mockQuerier) CreateTripItem(ctx context.Context, arg database.CreateTripItemParams) (database.TripItem, error) {
	if m.CreateTripItemFunc != nil {
		return m.CreateTripItemFunc(ctx, arg)
	}
	m.fail("CreateTripItem")
	return database.TripItem{}, nil
}
func (m *mockQuerier) CreateUser(ctx context.Context, arg database.CreateUserParams) (database.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, arg)
	}
	m.fail("CreateUser")
	return database.User{}, nil
}
func (m *mockQuerier) DeleteAllItems(ctx context.Context) error {
	if m.DeleteAllItemsFunc != nil {
		return m.DeleteAllItemsFunc(ctx)
	}
	m.fail("DeleteAllItems")
	return nil
}
func (m *mockQuerier) DeleteAllLuggage(ctx context.Context) error {
	if m.DeleteAllLuggageFunc != nil {
		return m.DeleteAllLuggageFunc(ctx)
	}
	m.fail("DeleteAllLuggage")
	return nil
}
func (m *mockQuerier) DeleteAllTripItems(ctx context.Context) error {
	if m.DeleteAllTripItemsFunc != nil {
		return m.DeleteAllTripItemsFunc(ctx)
	}
	m.fail("DeleteAllTripItems")
	return nil
}
func (m *mockQuerier) DeleteAllTrips(ctx context.Context) error {
	if m.DeleteAllTripsFunc != nil {
		return m.DeleteAllTripsFunc(ctx)
	}
	m.fail("DeleteAllTrips")
	return nil
}
func (m *mockQuerier) DeleteAllUsers(ctx context.Context) error {
	if m.DeleteAllUsersFunc != nil {
		return m.DeleteAllUsersFunc(ctx)
	}
	m.fail("DeleteAllUsers")
	return nil
}
func (m *mockQuerier) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if m.DeleteItemFunc != nil {
		return m.DeleteItemFunc(ctx, id)
	}
	m.fail("DeleteItem")
	return nil
}
func (m *mockQuerier) DeleteLuggage(ctx context.Context, id uuid.UUID) error {
	if m.DeleteLuggageFunc != nil {
		return m.DeleteLuggageFunc(ctx, id)
	}
	m.fail("DeleteLuggage")
	return nil
}
func (m *mockQuerier) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	if m.DeleteTripFunc != nil {
		return m.DeleteTripFunc(ctx, id)
	}
	m.fail("DeleteTrip")
	return nil
}
func (m *mockQuerier) DeleteTripItem(ctx context.Context, id uuid.UUID) error {
	if m.DeleteTripItemFunc != nil {
		return m.DeleteTripItemFunc(ctx, id)
	}
	m.fail("DeleteTripItem")
	return nil
}
func (m *mockQuerier) DeleteTripItemsByTrip(ctx context.Context, tripID uuid.UUID) error {
	if m.DeleteTripItemsByTripFunc != nil {
		return m.DeleteTripItemsByTripFunc(ctx, tripID)
	}
	m.fail("DeleteTripItemsByTrip")
	return nil
}
func (m *mockQuerier) GetItem(ctx context.Context, id uuid.UUID) (database.Item, error) {
	if m.GetItemFunc != nil {
		return m.GetItemFunc(ctx, id)
	}
	m.fail("GetItem")
	return database.Item{}, nil
}
func (m *mockQuerier) GetLuggage(ctx context.Context, id uuid.UUID) (database.Luggage, error) {
	if m.GetLuggageFunc != nil {
		return m.GetLuggageFunc(ctx, id)
	}
	m.fail("GetLuggage")
	return database.Luggage{}, nil
}
func (m *mockQuerier) GetTrip(ctx context.Context, id uuid.UUID) (database.Trip, error) {
	if m.GetTripFunc != nil {
		return m.GetTripFunc(ctx, id)
	}
	m.fail("GetTrip")
	return database.Trip{}, nil
}
func (m *mockQuerier) GetTripItem(ctx context.Context, id uuid.UUID) (database.TripItem, error) {
	if m.GetTripItemFunc != nil {
		return m.GetTripItemFunc(ctx, id)
	}
	m.fail("GetTripItem")
	return database.TripItem{}, nil
}
func (m *mockQuerier) GetUserByExternalID(ctx context.Context, externalID string) (database.User, error) {
	if m.GetUserByExternalIDFunc != nil {
		return m.GetUserByExternalIDFunc(ctx, externalID)
	}
	m.fail("GetUserByExternalID")
	return database.User{}, nil
}
func (m *mockQuerier) ListItemsByUser(ctx context.Context, userID uuid.UUID) ([]database.Item, error) {
	if m.ListItemsByUserFunc != nil {
		return m.ListItemsByUserFunc(ctx, userID)
	}
	m.fail("ListItemsByUser")
	return nil, nil
}
func (m *mockQuerier) ListLuggageByUser(ctx context.Context, userID uuid.UUID) ([]database.Luggage, error) {
	if m.ListLuggageByUserFunc != nil {
		return m.ListLuggageByUserFunc(ctx, userID)
	}
	m.fail("ListLuggageByUser")
	return nil, nil
}
func (m *mockQuerier) ListTripItemsByTrip(ctx context.Context, tripID uuid.UUID) ([]database.TripItem, error) {
	if m.ListTripItemsByTripFunc != nil {
		return m.ListTripItemsByTripFunc(ctx, tripID)
	}
	m.fail("ListTripItemsByTrip")
	return nil, nil
}
func (m *mockQuerier) ListTripsByUser(ctx context.Context, userID uuid.UUID) ([]database.Trip, error) {
	if m.ListTripsByUserFunc != nil {
		return m.ListTripsByUserFunc(ctx, userID)
	}
	m.fail("ListTripsByUser")
	return nil, nil
}
func (m *mockQuerier) ListUpcomingPlanningTrips(ctx context.Context, arg database.ListUpcomingPlanningTripsParams) ([]database.Trip, error) {
	if m.ListUpcomingPlanningTripsFunc != nil {
		return m.ListUpcomingPlanningTripsFunc(ctx, arg)
	}
	m.fail("ListUpcomingPlanningTrips")
	return nil, nil
}
func (m *mockQuerier) SetTripItemPacked(ctx context.Context, arg database.SetTripItemPackedParams) error {
	if m.SetTripItemPackedFunc != nil {
		return m.SetTripItemPackedFunc(ctx, arg)
	}
	m.fail("SetTripItemPacked")
	return nil
}
func (m *mockQuerier) UpdateItem(ctx context.Context, arg database.UpdateItemParams) (database.Item, error) {
	if m.UpdateItemFunc != nil {
		return m.UpdateItemFunc(ctx, arg)
	}
	m.fail("UpdateItem")
	return database.Item{}, nil
}
func (m *mockQuerier) UpdateLuggage(ctx context.Context, arg database.UpdateLuggageParams) (database.Luggage, error) {
	if m.UpdateLuggageFunc != nil {
		return m.UpdateLuggageFunc(ctx, arg)
	}
	m.fail("UpdateLuggage")
	return database.Luggage{}, nil
}
func (m *mockQuerier) UpdateTripItemQuantity(ctx context.Context, arg database.UpdateTripItemQuantityParams) error {
	if m.UpdateTripItemQuantityFunc != nil {
		return m.UpdateTripItemQuantityFunc(ctx, arg)
	}
	m.fail("UpdateTripItemQuantity")
	return nil
}
func (m *mockQuerier) UpdateTripLuggage(ctx context.Context, arg database.UpdateTripLuggageParams) error {
	if m.UpdateTripLuggageFunc != nil {
		return m.UpdateTripLuggageFunc(ctx, arg)
	}
	m.fail("UpdateTripLuggage")
	return nil
}
func (m *mockQuerier) UpdateTripStatus(ctx context.Context, arg database.UpdateTripStatusParams) error {
	if m.UpdateTripStatusFunc != nil {
		return m.UpdateTripStatusFunc(ctx, arg)
	}
	m.fail("UpdateTripStatus")
	return nil
}
func (m *mockQuerier) UpdateTripWeather(ctx context.Context, arg database.UpdateTripWeatherParams) error {
	if m.UpdateTripWeatherFunc != nil {
		return m.UpdateTripWeatherFunc(ctx, arg)
	}
	m.fail("UpdateTripWeather")
	return nil
}
