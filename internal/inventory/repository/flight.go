package repository

import (
	"context"
	"errors"
	"fmt"
	inventoryerrors "skyfare/internal/inventory/errors"
	"skyfare/pkg/config"
	mongotx "skyfare/pkg/db/mongo"
	"skyfare/pkg/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	FlightsCollection = "Flights"
)

// FlightSearchCriteria narrows a route/date search. Counts filter on
// remaining availability.
type FlightSearchCriteria struct {
	DepCode    string
	ArrCode    string
	MinDepDate time.Time
	MaxDepDate time.Time
	MinSeats   int
}

type FlightRepository interface {
	FindByID(ctx context.Context, id string) (*model.Flight, error)
	Search(ctx context.Context, criteria FlightSearchCriteria) ([]*model.Flight, error)
	FindOffers(ctx context.Context, depCode string) ([]*model.Flight, error)
	// ApplyAvailabilityDelta increments the available counter with the
	// bounds [0, capacity] enforced by the update filter itself, so two
	// concurrent decrements can never both observe the same value.
	ApplyAvailabilityDelta(ctx context.Context, id string, delta, capacity int) error
	OccupySeat(ctx context.Context, id, seat string) error
	ReleaseSeat(ctx context.Context, id, seat string) error
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoFlightRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoFlightRepository(cfg *config.Config) FlightRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoFlightRepository{
		cfg:        cfg,
		collection: db.Collection(FlightsCollection),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

// withTimeout wraps the context with a timeout unless the call is
// already inside a transaction; a SessionContext cannot be wrapped
// without breaking transaction semantics.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoFlightRepository) FindByID(ctx context.Context, id string) (*model.Flight, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", inventoryerrors.ErrInvalidID, id)
	}

	var flight model.Flight
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&flight)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, inventoryerrors.ErrFlightNotFound
		}
		return nil, fmt.Errorf("failed to find flight: %w", err)
	}

	return &flight, nil
}

func (r *mongoFlightRepository) Search(ctx context.Context, criteria FlightSearchCriteria) ([]*model.Flight, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"dep_code": criteria.DepCode,
		"arr_code": criteria.ArrCode,
		"dep_date": bson.M{
			"$gte": criteria.MinDepDate,
			"$lte": criteria.MaxDepDate,
		},
	}
	if criteria.MinSeats > 0 {
		filter["available"] = bson.M{"$gte": criteria.MinSeats}
	}

	opts := options.Find().SetSort(bson.D{{Key: "dep_date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search flights: %w", err)
	}
	defer cursor.Close(ctx)

	var flights []*model.Flight
	if err = cursor.All(ctx, &flights); err != nil {
		return nil, fmt.Errorf("failed to decode flights: %w", err)
	}

	return flights, nil
}

func (r *mongoFlightRepository) FindOffers(ctx context.Context, depCode string) ([]*model.Flight, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{
		"dep_code": depCode,
		"is_offer": true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find offers: %w", err)
	}
	defer cursor.Close(ctx)

	var flights []*model.Flight
	if err = cursor.All(ctx, &flights); err != nil {
		return nil, fmt.Errorf("failed to decode offers: %w", err)
	}

	return flights, nil
}

func (r *mongoFlightRepository) ApplyAvailabilityDelta(ctx context.Context, id string, delta, capacity int) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", inventoryerrors.ErrInvalidID, id)
	}

	// Bounds live in the filter: the update matches only when the
	// resulting counter stays within [0, capacity].
	filter := bson.M{
		"_id": objectID,
		"available": bson.M{
			"$gte": -delta,
			"$lte": capacity - delta,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{
		"$inc": bson.M{"available": delta},
	})
	if err != nil {
		return fmt.Errorf("failed to change availability: %w", err)
	}

	if result.MatchedCount == 0 {
		return r.classifyMiss(ctx, objectID, inventoryerrors.ErrAvailabilityBounds)
	}

	return nil
}

func (r *mongoFlightRepository) OccupySeat(ctx context.Context, id, seat string) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", inventoryerrors.ErrInvalidID, id)
	}

	filter := bson.M{
		"_id":            objectID,
		"occupied_seats": bson.M{"$ne": seat},
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{
		"$addToSet": bson.M{"occupied_seats": seat},
	})
	if err != nil {
		return fmt.Errorf("failed to occupy seat: %w", err)
	}

	if result.MatchedCount == 0 {
		return r.classifyMiss(ctx, objectID, inventoryerrors.ErrSeatOccupied)
	}

	return nil
}

func (r *mongoFlightRepository) ReleaseSeat(ctx context.Context, id, seat string) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", inventoryerrors.ErrInvalidID, id)
	}

	filter := bson.M{
		"_id":            objectID,
		"occupied_seats": seat,
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{
		"$pull": bson.M{"occupied_seats": seat},
	})
	if err != nil {
		return fmt.Errorf("failed to release seat: %w", err)
	}

	if result.MatchedCount == 0 {
		return r.classifyMiss(ctx, objectID, inventoryerrors.ErrSeatNotOccupied)
	}

	return nil
}

// classifyMiss distinguishes "flight does not exist" from "the guarded
// filter rejected the mutation" after a zero-match update.
func (r *mongoFlightRepository) classifyMiss(ctx context.Context, objectID primitive.ObjectID, guardErr error) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to classify update miss: %w", err)
	}
	if count == 0 {
		return inventoryerrors.ErrFlightNotFound
	}
	return guardErr
}

func (r *mongoFlightRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
