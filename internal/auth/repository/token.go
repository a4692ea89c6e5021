package repository

import (
	"context"
	"errors"
	"fmt"
	autherrors "skyfare/internal/auth/errors"
	"skyfare/pkg/config"
	"skyfare/pkg/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	LoginTokensCollection = "Login_tokens"
)

type TokenRepository interface {
	FindByToken(ctx context.Context, token string) (*model.LoginToken, error)
}

type mongoTokenRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoTokenRepository(cfg *config.Config) TokenRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoTokenRepository{
		cfg:        cfg,
		collection: db.Collection(LoginTokensCollection),
	}
}

func (r *mongoTokenRepository) FindByToken(ctx context.Context, token string) (*model.LoginToken, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var loginToken model.LoginToken
	err := r.collection.FindOne(ctx, bson.M{"token": token}).Decode(&loginToken)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, autherrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to find login token: %w", err)
	}

	return &loginToken, nil
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
