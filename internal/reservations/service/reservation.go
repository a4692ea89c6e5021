package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	basketsservice "skyfare/internal/baskets/service"
	"skyfare/internal/events"
	inventoryservice "skyfare/internal/inventory/service"
	reservationserrors "skyfare/internal/reservations/errors"
	"skyfare/internal/reservations/repository"
	"skyfare/internal/reservations/validator"
	"skyfare/pkg/config"
	apperrors "skyfare/pkg/errors"
	"skyfare/pkg/model"
	"skyfare/pkg/sanitizer"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const reservationNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type ReservationService interface {
	// Create turns a basket into an unconfirmed reservation: seat labels
	// are claimed, the total is priced from the basket's fare snapshots,
	// and the basket is consumed, all in one transaction.
	Create(ctx context.Context, userID string, input *model.CreateReservationInput) (*model.Reservation, error)
	// List returns a page of the user's confirmed reservations, newest
	// first, plus the total count. Unconfirmed ones stay invisible
	// until payment completes.
	List(ctx context.Context, userID string, limit int, offset int64) ([]*model.Reservation, int64, error)
	Get(ctx context.Context, userID, number string) (*model.Reservation, error)
	// Confirm marks a reservation paid. Confirming twice is a no-op.
	Confirm(ctx context.Context, userID, number string) (*model.Reservation, error)
	// SweepUnconfirmed deletes reservations that sat unconfirmed past
	// the expiry window and returns their seats to the ledger.
	SweepUnconfirmed(ctx context.Context) (int, error)
}

type reservationService struct {
	repo      repository.ReservationRepository
	baskets   basketsservice.BasketService
	ledger    inventoryservice.Ledger
	validator *validator.ReservationValidator
	publisher *events.Publisher
	cfg       *config.Config
	now       func() time.Time
}

func NewReservationService(
	repo repository.ReservationRepository,
	baskets basketsservice.BasketService,
	ledger inventoryservice.Ledger,
	validator *validator.ReservationValidator,
	publisher *events.Publisher,
	cfg *config.Config,
) ReservationService {
	return &reservationService{
		repo:      repo,
		baskets:   baskets,
		ledger:    ledger,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *reservationService) Create(ctx context.Context, userID string, input *model.CreateReservationInput) (*model.Reservation, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("User ID cannot be empty")
	}

	s.sanitize(input)
	if err := s.validator.ValidateCreate(input); err != nil {
		s.cfg.Log.Warn("Reservation validation failed", "user_id", userID, "error", err)
		return nil, apperrors.Validation("Invalid reservation input", map[string]any{"error": err.Error()})
	}

	number, err := s.allocateNumber(ctx)
	if err != nil {
		return nil, err
	}

	reservation := &model.Reservation{
		ReservationNumber: number,
		UserID:            userID,
		ReservationDate:   s.now(),
	}

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		// Load on the session so the holds being consumed are the ones
		// the commit will see, not a snapshot a concurrent upload may
		// have replaced in the meantime.
		basket, err := s.baskets.GetByID(sessCtx, userID, input.BasketID)
		if err != nil {
			return err
		}
		if basket.Expired(s.now()) {
			return apperrors.Conflict("Basket has expired")
		}
		if len(basket.Flights) == 0 {
			return apperrors.InvalidInput("Basket is empty")
		}

		if err := s.verifyPassengerCounts(basket, input.Passengers); err != nil {
			return err
		}
		if err := verifySeatFlights(basket, input.Passengers); err != nil {
			return err
		}

		total := 0.0
		flights := make([]model.ReservedFlight, 0, len(basket.Flights))

		for _, held := range basket.Flights {
			reserved := model.ReservedFlight{
				FlightID:   held.FlightID,
				Price:      held.UnitPrice,
				Passengers: make([]model.Passenger, 0, len(input.Passengers)),
			}

			for _, data := range input.Passengers {
				passenger := model.Passenger{
					Type:           data.Type,
					FirstName:      data.FirstName,
					LastName:       data.LastName,
					DOB:            data.DOB,
					HandBaggage:    data.HandBaggage,
					CheckedBaggage: data.CheckedBaggage,
					Seat:           data.SeatFor(held.FlightID),
				}
				if passenger.Seat != "" {
					if err := s.ledger.ChangeSeatOccupancy(sessCtx, held.FlightID, passenger.Seat, true); err != nil {
						return err
					}
				}
				reserved.Passengers = append(reserved.Passengers, passenger)
			}

			total += s.priceFlight(&held, reserved.Passengers)
			flights = append(flights, reserved)
		}

		reservation.Flights = flights
		reservation.TotalPrice = total

		if err := s.repo.Create(sessCtx, reservation); err != nil {
			if errors.Is(err, reservationserrors.ErrDuplicateNumber) {
				return apperrors.Internal("Reservation number collision", err)
			}
			return apperrors.Internal("Failed to create reservation", err)
		}

		// The seat holds transfer to the reservation, so the basket is
		// consumed without restoring availability.
		return s.baskets.Release(sessCtx, basket, false)
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create reservation", "user_id", userID, "basket_id", input.BasketID, "error", err)
		return nil, err
	}

	s.publisher.ReservationCreated(ctx, reservation.ReservationNumber, userID, reservation.TotalPrice)
	s.cfg.Log.Info("Reservation created successfully",
		"reservation_number", reservation.ReservationNumber,
		"user_id", userID,
		"total_price", reservation.TotalPrice,
	)
	return reservation, nil
}

func (s *reservationService) List(ctx context.Context, userID string, limit int, offset int64) ([]*model.Reservation, int64, error) {
	if userID == "" {
		return nil, 0, apperrors.InvalidInput("User ID cannot be empty")
	}

	var count int64
	var reservations []*model.Reservation
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.CountConfirmedByUser(ctx, userID)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count reservations", "user_id", userID, "error", errCount)
			errCount = apperrors.Internal("Failed to count reservations", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		reservations, errFind = s.repo.FindConfirmedByUser(ctx, userID, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list reservations", "user_id", userID, "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve reservations", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return reservations, count, nil
}

func (s *reservationService) Get(ctx context.Context, userID, number string) (*model.Reservation, error) {
	if number == "" {
		return nil, apperrors.InvalidInput("Reservation number cannot be empty")
	}

	reservation, err := s.repo.FindByUserAndNumber(ctx, userID, number)
	if err != nil {
		if errors.Is(err, reservationserrors.ErrReservationNotFound) {
			return nil, apperrors.NotFoundWithID("Reservation", number)
		}
		return nil, apperrors.Internal("Failed to retrieve reservation", err)
	}

	return reservation, nil
}

func (s *reservationService) Confirm(ctx context.Context, userID, number string) (*model.Reservation, error) {
	reservation, err := s.Get(ctx, userID, number)
	if err != nil {
		return nil, err
	}

	if reservation.IsConfirmed {
		return reservation, nil
	}

	if s.expiredAt(reservation, s.now()) {
		return nil, apperrors.Conflict("Reservation has expired")
	}

	if err := s.repo.SetConfirmed(ctx, reservation.ID); err != nil {
		if errors.Is(err, reservationserrors.ErrReservationNotFound) {
			return nil, apperrors.NotFoundWithID("Reservation", number)
		}
		return nil, apperrors.Internal("Failed to confirm reservation", err)
	}
	reservation.IsConfirmed = true

	s.publisher.ReservationConfirmed(ctx, reservation.ReservationNumber, userID, reservation.TotalPrice)
	s.cfg.Log.Info("Reservation confirmed",
		"reservation_number", reservation.ReservationNumber,
		"user_id", userID,
	)
	return reservation, nil
}

func (s *reservationService) SweepUnconfirmed(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.cfg.ReservationExpiry)
	expired, err := s.repo.FindUnconfirmedBefore(ctx, cutoff, 0)
	if err != nil {
		return 0, apperrors.Internal("Failed to find expired reservations", err)
	}

	swept := 0
	for _, reservation := range expired {
		ok, err := s.sweepOne(ctx, reservation)
		if err != nil {
			// A concurrent confirm may have claimed it. Keep sweeping.
			s.cfg.Log.Warn("Failed to sweep expired reservation",
				"reservation_number", reservation.ReservationNumber,
				"user_id", reservation.UserID,
				"error", err,
			)
			continue
		}
		if ok {
			swept++
		}
	}

	if swept > 0 {
		s.cfg.Log.Info("Expired reservations swept", "count", swept)
	}
	return swept, nil
}

// sweepOne returns one expired reservation's seats to the ledger. The
// reservation is re-read inside the transaction and skipped when it was
// confirmed or removed since the expiry snapshot.
func (s *reservationService) sweepOne(ctx context.Context, reservation *model.Reservation) (bool, error) {
	swept := false
	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		swept = false
		current, err := s.repo.FindByUserAndNumber(sessCtx, reservation.UserID, reservation.ReservationNumber)
		if err != nil {
			if errors.Is(err, reservationserrors.ErrReservationNotFound) {
				return nil
			}
			return apperrors.Internal("Failed to load reservation", err)
		}
		if current.IsConfirmed {
			return nil
		}

		for _, flight := range current.Flights {
			if err := s.ledger.ChangeAvailability(sessCtx, flight.FlightID, flight.SeatPassengerCount()); err != nil {
				return err
			}
			for _, passenger := range flight.Passengers {
				if passenger.Seat == "" {
					continue
				}
				if err := s.ledger.ChangeSeatOccupancy(sessCtx, flight.FlightID, passenger.Seat, false); err != nil {
					return err
				}
			}
		}

		if err := s.repo.DeleteUnconfirmed(sessCtx, current.ID); err != nil {
			if errors.Is(err, reservationserrors.ErrReservationNotFound) {
				// Confirmed between the read and the delete; abort so the
				// ledger releases above roll back with it.
				return apperrors.Conflict("Reservation is no longer unconfirmed")
			}
			return apperrors.Internal("Failed to delete reservation", err)
		}
		swept = true
		return nil
	})
	if err != nil || !swept {
		return false, err
	}

	s.publisher.ReservationExpired(ctx, reservation.ReservationNumber, reservation.UserID)
	return true, nil
}

// --- Helpers ---

func (s *reservationService) sanitize(input *model.CreateReservationInput) {
	for i := range input.Passengers {
		p := &input.Passengers[i]
		p.FirstName = sanitizer.NormalizePassengerName(p.FirstName)
		p.LastName = sanitizer.NormalizePassengerName(p.LastName)
		for j := range p.Seats {
			p.Seats[j].Seat = sanitizer.NormalizeSeatLabel(p.Seats[j].Seat)
		}
	}
}

// verifyPassengerCounts requires the manifest to match every basket
// flight: the same travellers fly the whole journey.
func (s *reservationService) verifyPassengerCounts(basket *model.Basket, passengers []model.PassengerData) error {
	var adults, children, infants int
	for _, p := range passengers {
		switch p.Type {
		case model.PassengerAdult:
			adults++
		case model.PassengerChild:
			children++
		case model.PassengerInfant:
			infants++
		}
	}

	for _, flight := range basket.Flights {
		if flight.Adult != adults || flight.Child != children || flight.Infant != infants {
			return apperrors.InvalidInput(fmt.Sprintf(
				"Passenger counts (%d adult, %d child, %d infant) do not match basket flight %s (%d adult, %d child, %d infant)",
				adults, children, infants,
				flight.FlightID,
				flight.Adult, flight.Child, flight.Infant,
			))
		}
	}

	return nil
}

func verifySeatFlights(basket *model.Basket, passengers []model.PassengerData) error {
	held := make(map[string]bool, len(basket.Flights))
	for _, flight := range basket.Flights {
		held[flight.FlightID] = true
	}

	for _, p := range passengers {
		for _, seat := range p.Seats {
			if !held[seat.FlightID] {
				return apperrors.InvalidInput(fmt.Sprintf("Seat selection references flight %s which is not in the basket", seat.FlightID))
			}
		}
	}

	return nil
}

// priceFlight prices one leg: the fare covers every counted seat, the
// first hand bag is free, and a chosen seat label carries a fee even
// for an infant on a lap.
func (s *reservationService) priceFlight(held *model.BasketFlight, passengers []model.Passenger) float64 {
	total := held.UnitPrice * float64(held.SeatCount())

	for _, p := range passengers {
		total += float64(p.CheckedBaggage) * s.cfg.CheckedBaggagePrice
		if extra := p.HandBaggage - s.cfg.FreeHandBaggage; extra > 0 {
			total += float64(extra) * s.cfg.HandBaggagePrice
		}
		if p.Seat != "" {
			total += s.cfg.SeatPrice
		}
	}

	return total
}

func (s *reservationService) expiredAt(reservation *model.Reservation, now time.Time) bool {
	return !reservation.IsConfirmed &&
		reservation.ReservationDate.Add(s.cfg.ReservationExpiry).Before(now)
}

// allocateNumber draws random 6-character codes until one is unused.
// The collision check is advisory; the unique index on the collection
// is the real guarantee.
func (s *reservationService) allocateNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < s.cfg.ReservationNumberMaxRetries; attempt++ {
		number, err := generateNumber(s.cfg.ReservationNumberLength)
		if err != nil {
			return "", apperrors.Internal("Failed to generate reservation number", err)
		}

		count, err := s.repo.CountByNumber(ctx, number)
		if err != nil {
			return "", apperrors.Internal("Failed to check reservation number", err)
		}
		if count == 0 {
			return number, nil
		}
	}

	return "", apperrors.Internal("Exhausted reservation number attempts", nil)
}

func generateNumber(length int) (string, error) {
	max := big.NewInt(int64(len(reservationNumberCharset)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = reservationNumberCharset[n.Int64()]
	}
	return string(buf), nil
}
