package repository

import (
	"context"
	"errors"
	"fmt"
	inventoryerrors "skyfare/internal/inventory/errors"
	"skyfare/pkg/config"
	"skyfare/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	SeatMapsCollection = "Seat_maps"
)

type SeatMapRepository interface {
	FindByPlaneType(ctx context.Context, planeType string) (*model.SeatMap, error)
}

type mongoSeatMapRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoSeatMapRepository(cfg *config.Config) SeatMapRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSeatMapRepository{
		cfg:        cfg,
		collection: db.Collection(SeatMapsCollection),
	}
}

func (r *mongoSeatMapRepository) FindByPlaneType(ctx context.Context, planeType string) (*model.SeatMap, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var seatMap model.SeatMap
	err := r.collection.FindOne(ctx, bson.M{"plane_type": planeType}).Decode(&seatMap)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, inventoryerrors.ErrSeatMapNotFound
		}
		return nil, fmt.Errorf("failed to find seat map: %w", err)
	}

	return &seatMap, nil
}
