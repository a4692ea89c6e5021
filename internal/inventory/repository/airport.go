package repository

import (
	"context"
	"fmt"
	"skyfare/pkg/config"
	"skyfare/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	AirportsCollection = "Airports"
)

type AirportRepository interface {
	FindAll(ctx context.Context) ([]*model.Airport, error)
}

type mongoAirportRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoAirportRepository(cfg *config.Config) AirportRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoAirportRepository{
		cfg:        cfg,
		collection: db.Collection(AirportsCollection),
	}
}

func (r *mongoAirportRepository) FindAll(ctx context.Context) ([]*model.Airport, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find airports: %w", err)
	}
	defer cursor.Close(ctx)

	var airports []*model.Airport
	if err = cursor.All(ctx, &airports); err != nil {
		return nil, fmt.Errorf("failed to decode airports: %w", err)
	}

	return airports, nil
}
