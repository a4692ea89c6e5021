package repository

import (
	"context"
	"errors"
	"fmt"
	basketserrors "skyfare/internal/baskets/errors"
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
	BasketsCollection = "Baskets"
)

type BasketRepository interface {
	Create(ctx context.Context, basket *model.Basket) error
	FindByID(ctx context.Context, id string) (*model.Basket, error)
	FindByUserID(ctx context.Context, userID string) (*model.Basket, error)
	FindExpired(ctx context.Context, before time.Time, limit int) ([]*model.Basket, error)
	Update(ctx context.Context, basket *model.Basket) error
	Delete(ctx context.Context, id string) error
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

type mongoBasketRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

func NewMongoBasketRepository(cfg *config.Config) BasketRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBasketRepository{
		cfg:        cfg,
		collection: db.Collection(BasketsCollection),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

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

func (r *mongoBasketRepository) Create(ctx context.Context, basket *model.Basket) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	basket.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, basket)
	if err != nil {
		return fmt.Errorf("failed to create basket: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		basket.ID = oid.Hex()
	}

	return nil
}

func (r *mongoBasketRepository) FindByID(ctx context.Context, id string) (*model.Basket, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", basketserrors.ErrInvalidID, id)
	}

	var basket model.Basket
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&basket)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, basketserrors.ErrBasketNotFound
		}
		return nil, fmt.Errorf("failed to find basket: %w", err)
	}

	return &basket, nil
}

func (r *mongoBasketRepository) FindByUserID(ctx context.Context, userID string) (*model.Basket, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var basket model.Basket
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&basket)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, basketserrors.ErrBasketNotFound
		}
		return nil, fmt.Errorf("failed to find basket by user: %w", err)
	}

	return &basket, nil
}

func (r *mongoBasketRepository) FindExpired(ctx context.Context, before time.Time, limit int) ([]*model.Basket, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "expiry_time", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"expiry_time": bson.M{"$lt": before}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find expired baskets: %w", err)
	}
	defer cursor.Close(ctx)

	var baskets []*model.Basket
	if err = cursor.All(ctx, &baskets); err != nil {
		return nil, fmt.Errorf("failed to decode expired baskets: %w", err)
	}

	return baskets, nil
}

func (r *mongoBasketRepository) Update(ctx context.Context, basket *model.Basket) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(basket.ID)
	if err != nil {
		return fmt.Errorf("%w: %s", basketserrors.ErrInvalidID, basket.ID)
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{
			"flights":     basket.Flights,
			"expiry_time": basket.ExpiryTime,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update basket: %w", err)
	}

	if result.MatchedCount == 0 {
		return basketserrors.ErrBasketNotFound
	}

	return nil
}

func (r *mongoBasketRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", basketserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete basket: %w", err)
	}

	if result.DeletedCount == 0 {
		return basketserrors.ErrBasketNotFound
	}

	return nil
}

func (r *mongoBasketRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
