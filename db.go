package main

import (
	"context"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/natalgaw/packlist/internal/database"
)

// ConnectDB establishes the PostgreSQL connection and initializes dbQueries
// with the sqlc-generated Queries struct. Called once at startup so the
// process fails fast when the database is unreachable.
func (cfg *apiConfig) ConnectDB() error {
	db, err := cfg.newDBClientFunc("postgres", cfg.dbURL)
	if err != nil {
		cfg.logger.Error("couldn't prepare connection to database", "error", err)
		return err
	}
	if err := db.Ping(); err != nil {
		cfg.logger.Error("couldn't connect to database", "error", err)
		return err
	}
	cfg.dbQueries = database.New(db)
	cfg.logger.Info("connected to database")
	return nil
}

// dbQuerier abstracts all database operations. It is implemented by the
// sqlc-generated Queries struct; handlers depend on the interface so tests
// can inject function mocks.
type dbQuerier interface {
	CreateItem(ctx context.Context, arg database.CreateItemParams) (database.Item, error)
	CreateLuggage(ctx context.Context, arg database.CreateLuggageParams) (database.Luggage, error)
	CreateTrip(ctx context.Context, arg database.CreateTripParams) (database.Trip, error)
	CreateTripItem(ctx context.Context, arg database.CreateTripItemParams) (database.TripItem, error)
	CreateUser(ctx context.Context, arg database.CreateUserParams) (database.User, error)
	DeleteAllItems(ctx context.Context) error
	DeleteAllLuggage(ctx context.Context) error
	DeleteAllTripItems(ctx context.Context) error
	DeleteAllTrips(ctx context.Context) error
	DeleteAllUsers(ctx context.Context) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	DeleteLuggage(ctx context.Context, id uuid.UUID) error
	DeleteTrip(ctx context.Context, id uuid.UUID) error
	DeleteTripItem(ctx context.Context, id uuid.UUID) error
	DeleteTripItemsByTrip(ctx context.Context, tripID uuid.UUID) error
	GetItem(ctx context.Context, id uuid.UUID) (database.Item, error)
	GetLuggage(ctx context.Context, id uuid.UUID) (database.Luggage, error)
	GetTrip(ctx context.Context, id uuid.UUID) (database.Trip, error)
	GetTripItem(ctx context.Context, id uuid.UUID) (database.TripItem, error)
	GetUserByExternalID(ctx context.Context, externalID string) (database.User, error)
	ListItemsByUser(ctx context.Context, userID uuid.UUID) ([]database.Item, error)
	ListLuggageByUser(ctx context.Context, userID uuid.UUID) ([]database.Luggage, error)
	ListTripItemsByTrip(ctx context.Context, tripID uuid.UUID) ([]database.TripItem, error)
	ListTripsByUser(ctx context.Context, userID uuid.UUID) ([]database.Trip, error)
	ListUpcomingPlanningTrips(ctx context.Context, arg database.ListUpcomingPlanningTripsParams) ([]database.Trip, error)
	SetTripItemPacked(ctx context.Context, arg database.SetTripItemPackedParams) error
	UpdateItem(ctx context.Context, arg database.UpdateItemParams) (database.Item, error)
	UpdateLuggage(ctx context.Context, arg database.UpdateLuggageParams) (database.Luggage, error)
	UpdateTripItemQuantity(ctx context.Context, arg database.UpdateTripItemQuantityParams) error
	UpdateTripLuggage(ctx context.Context, arg database.UpdateTripLuggageParams) error
	UpdateTripStatus(ctx context.Context, arg database.UpdateTripStatusParams) error
	UpdateTripWeather(ctx context.Context, arg database.UpdateTripWeatherParams) error
}
