package service

import (
	"context"
	"errors"
	basketserrors "skyfare/internal/baskets/errors"
	"skyfare/internal/baskets/repository"
	"skyfare/internal/baskets/validator"
	"skyfare/internal/events"
	inventoryservice "skyfare/internal/inventory/service"
	"skyfare/pkg/config"
	apperrors "skyfare/pkg/errors"
	"skyfare/pkg/model"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type BasketService interface {
	// GetOrCreate returns the user's active basket, creating an empty
	// one when none exists. An expired basket is swept first and a
	// fresh one returned in its place.
	GetOrCreate(ctx context.Context, userID string) (*model.Basket, error)
	// Upload replaces the basket contents with the given selections.
	// Prior holds are released and new ones claimed in one transaction,
	// so a failure on any flight leaves the ledger untouched. An empty
	// selection list clears the basket.
	Upload(ctx context.Context, userID string, selections []model.BasketSelection) (*model.Basket, error)
	GetByID(ctx context.Context, userID, id string) (*model.Basket, error)
	// Release deletes the basket in the caller's transaction scope.
	// With restoreAvailability the held seats return to the ledger;
	// without it the caller is taking ownership of the holds.
	Release(ctx context.Context, basket *model.Basket, restoreAvailability bool) error
	// SweepExpired releases every basket whose expiry has passed and
	// returns how many were swept.
	SweepExpired(ctx context.Context) (int, error)
}

type basketService struct {
	repo      repository.BasketRepository
	ledger    inventoryservice.Ledger
	validator *validator.BasketValidator
	publisher *events.Publisher
	cfg       *config.Config
	now       func() time.Time
}

func NewBasketService(
	repo repository.BasketRepository,
	ledger inventoryservice.Ledger,
	validator *validator.BasketValidator,
	publisher *events.Publisher,
	cfg *config.Config,
) BasketService {
	return &basketService{
		repo:      repo,
		ledger:    ledger,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *basketService) GetOrCreate(ctx context.Context, userID string) (*model.Basket, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("User ID cannot be empty")
	}

	basket, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, basketserrors.ErrBasketNotFound) {
			return s.createEmpty(ctx, userID)
		}
		return nil, apperrors.Internal("Failed to retrieve basket", err)
	}

	if basket.Expired(s.now()) {
		swept, err := s.sweepOne(ctx, basket)
		if err != nil {
			return nil, err
		}
		if swept {
			return s.createEmpty(ctx, userID)
		}

		// A concurrent request refreshed or consumed the basket between
		// the read and the sweep transaction.
		basket, err = s.repo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, basketserrors.ErrBasketNotFound) {
				return s.createEmpty(ctx, userID)
			}
			return nil, apperrors.Internal("Failed to retrieve basket", err)
		}
	}

	return basket, nil
}

func (s *basketService) Upload(ctx context.Context, userID string, selections []model.BasketSelection) (*model.Basket, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("User ID cannot be empty")
	}

	if err := s.validator.ValidateSelections(selections); err != nil {
		s.cfg.Log.Warn("Basket upload validation failed", "user_id", userID, "error", err)
		return nil, apperrors.Validation("Invalid basket selections", map[string]any{"error": err.Error()})
	}

	basket, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	var updated *model.Basket
	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		// Re-read on the session: the driver retries this callback on
		// transient errors, and a retried attempt must release the holds
		// the committed document actually carries, not the ones read
		// before the transaction began.
		current, err := s.repo.FindByID(sessCtx, basket.ID)
		if err != nil {
			if errors.Is(err, basketserrors.ErrBasketNotFound) {
				return apperrors.NotFoundWithID("Basket", basket.ID)
			}
			return apperrors.Internal("Failed to load basket", err)
		}

		// Return prior holds before claiming new ones so a re-upload of
		// the same flight never needs headroom for both.
		for _, held := range current.Flights {
			if err := s.ledger.ChangeAvailability(sessCtx, held.FlightID, held.SeatCount()); err != nil {
				return err
			}
		}

		flights := make([]model.BasketFlight, 0, len(selections))
		for _, sel := range selections {
			flight, err := s.ledger.FlightByID(sessCtx, sel.FlightID)
			if err != nil {
				return err
			}
			if err := s.ledger.ChangeAvailability(sessCtx, sel.FlightID, -sel.SeatCount()); err != nil {
				return err
			}
			flights = append(flights, model.BasketFlight{
				FlightID:  sel.FlightID,
				Adult:     sel.Adult,
				Child:     sel.Child,
				Infant:    sel.Infant,
				UnitPrice: flight.Price,
			})
		}

		current.Flights = flights
		current.ExpiryTime = s.now().Add(s.cfg.BasketExpiry)

		if err := s.repo.Update(sessCtx, current); err != nil {
			if errors.Is(err, basketserrors.ErrBasketNotFound) {
				return apperrors.NotFoundWithID("Basket", current.ID)
			}
			return apperrors.Internal("Failed to update basket", err)
		}
		updated = current
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to upload basket", "user_id", userID, "error", err)
		return nil, err
	}

	s.cfg.Log.Info("Basket uploaded successfully",
		"basket_id", updated.ID,
		"user_id", userID,
		"flights", len(updated.Flights),
	)
	return updated, nil
}

func (s *basketService) GetByID(ctx context.Context, userID, id string) (*model.Basket, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Basket ID cannot be empty")
	}

	basket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, basketserrors.ErrBasketNotFound) {
			return nil, apperrors.NotFoundWithID("Basket", id)
		}
		if errors.Is(err, basketserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid basket ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve basket", err)
	}

	// Another user's basket is indistinguishable from a missing one.
	if basket.UserID != userID {
		return nil, apperrors.NotFoundWithID("Basket", id)
	}

	return basket, nil
}

func (s *basketService) Release(ctx context.Context, basket *model.Basket, restoreAvailability bool) error {
	if restoreAvailability {
		for _, held := range basket.Flights {
			if err := s.ledger.ChangeAvailability(ctx, held.FlightID, held.SeatCount()); err != nil {
				return err
			}
		}
	}

	if err := s.repo.Delete(ctx, basket.ID); err != nil {
		if errors.Is(err, basketserrors.ErrBasketNotFound) {
			return apperrors.NotFoundWithID("Basket", basket.ID)
		}
		return apperrors.Internal("Failed to delete basket", err)
	}

	return nil
}

func (s *basketService) SweepExpired(ctx context.Context) (int, error) {
	expired, err := s.repo.FindExpired(ctx, s.now(), 0)
	if err != nil {
		return 0, apperrors.Internal("Failed to find expired baskets", err)
	}

	swept := 0
	for _, basket := range expired {
		ok, err := s.sweepOne(ctx, basket)
		if err != nil {
			// A concurrent upload or reservation may have claimed the
			// basket already. Keep sweeping the rest.
			s.cfg.Log.Warn("Failed to sweep expired basket",
				"basket_id", basket.ID,
				"user_id", basket.UserID,
				"error", err,
			)
			continue
		}
		if ok {
			swept++
		}
	}

	if swept > 0 {
		s.cfg.Log.Info("Expired baskets swept", "count", swept)
	}
	return swept, nil
}

func (s *basketService) createEmpty(ctx context.Context, userID string) (*model.Basket, error) {
	basket := &model.Basket{
		UserID:     userID,
		Flights:    []model.BasketFlight{},
		ExpiryTime: s.now().Add(s.cfg.BasketExpiry),
	}

	if err := s.repo.Create(ctx, basket); err != nil {
		return nil, apperrors.Internal("Failed to create basket", err)
	}

	s.cfg.Log.Info("Basket created", "basket_id", basket.ID, "user_id", userID)
	return basket, nil
}

// sweepOne releases one expired basket. The basket is re-read inside
// the transaction so a concurrent upload that refreshed it since the
// expiry snapshot leaves it untouched.
func (s *basketService) sweepOne(ctx context.Context, basket *model.Basket) (bool, error) {
	swept := false
	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		swept = false
		current, err := s.repo.FindByID(sessCtx, basket.ID)
		if err != nil {
			if errors.Is(err, basketserrors.ErrBasketNotFound) {
				return nil
			}
			return apperrors.Internal("Failed to load basket", err)
		}
		if !current.Expired(s.now()) {
			return nil
		}
		if err := s.Release(sessCtx, current, true); err != nil {
			return err
		}
		swept = true
		return nil
	})
	if err != nil || !swept {
		return false, err
	}

	s.publisher.BasketExpired(ctx, basket.ID, basket.UserID)
	return true, nil
}
