package service

import (
	"context"
	reservationserrors "skyfare/internal/reservations/errors"
	"skyfare/internal/reservations/validator"
	"skyfare/pkg/config"
	mongotx "skyfare/pkg/db/mongo"
	apperrors "skyfare/pkg/errors"
	"skyfare/pkg/logger"
	"skyfare/pkg/model"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	userA    = "507f1f77bcf86cd799439011"
	flightX  = "64a000000000000000000001"
	flightY  = "64a000000000000000000002"
	basketID = "64b000000000000000000001"
	resID    = "64c000000000000000000001"
)

type mockReservationRepository struct {
	createFunc                func(ctx context.Context, reservation *model.Reservation) error
	countByNumberFunc         func(ctx context.Context, number string) (int64, error)
	findByUserAndNumberFunc   func(ctx context.Context, userID, number string) (*model.Reservation, error)
	findConfirmedByUserFunc   func(ctx context.Context, userID string, limit int, offset int64) ([]*model.Reservation, error)
	countConfirmedByUserFunc  func(ctx context.Context, userID string) (int64, error)
	findUnconfirmedBeforeFunc func(ctx context.Context, cutoff time.Time, limit int) ([]*model.Reservation, error)
	setConfirmedFunc          func(ctx context.Context, id string) error
	deleteUnconfirmedFunc     func(ctx context.Context, id string) error
}

func (m *mockReservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, reservation)
	}
	reservation.ID = resID
	return nil
}

func (m *mockReservationRepository) CountByNumber(ctx context.Context, number string) (int64, error) {
	if m.countByNumberFunc != nil {
		return m.countByNumberFunc(ctx, number)
	}
	return 0, nil
}

func (m *mockReservationRepository) FindByUserAndNumber(ctx context.Context, userID, number string) (*model.Reservation, error) {
	if m.findByUserAndNumberFunc != nil {
		return m.findByUserAndNumberFunc(ctx, userID, number)
	}
	return nil, reservationserrors.ErrReservationNotFound
}

func (m *mockReservationRepository) FindConfirmedByUser(ctx context.Context, userID string, limit int, offset int64) ([]*model.Reservation, error) {
	if m.findConfirmedByUserFunc != nil {
		return m.findConfirmedByUserFunc(ctx, userID, limit, offset)
	}
	return nil, nil
}

func (m *mockReservationRepository) CountConfirmedByUser(ctx context.Context, userID string) (int64, error) {
	if m.countConfirmedByUserFunc != nil {
		return m.countConfirmedByUserFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockReservationRepository) FindUnconfirmedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*model.Reservation, error) {
	if m.findUnconfirmedBeforeFunc != nil {
		return m.findUnconfirmedBeforeFunc(ctx, cutoff, limit)
	}
	return nil, nil
}

func (m *mockReservationRepository) SetConfirmed(ctx context.Context, id string) error {
	if m.setConfirmedFunc != nil {
		return m.setConfirmedFunc(ctx, id)
	}
	return nil
}

func (m *mockReservationRepository) DeleteUnconfirmed(ctx context.Context, id string) error {
	if m.deleteUnconfirmedFunc != nil {
		return m.deleteUnconfirmedFunc(ctx, id)
	}
	return nil
}

func (m *mockReservationRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(mongo.NewSessionContext(ctx, nil))
}

type releaseCall struct {
	basketID string
	restore  bool
}

type mockBasketService struct {
	getByIDFunc func(ctx context.Context, userID, id string) (*model.Basket, error)
	releases    []releaseCall
}

func (m *mockBasketService) GetOrCreate(ctx context.Context, userID string) (*model.Basket, error) {
	return nil, nil
}

func (m *mockBasketService) Upload(ctx context.Context, userID string, selections []model.BasketSelection) (*model.Basket, error) {
	return nil, nil
}

func (m *mockBasketService) GetByID(ctx context.Context, userID, id string) (*model.Basket, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, userID, id)
	}
	return nil, apperrors.NotFoundWithID("Basket", id)
}

func (m *mockBasketService) Release(ctx context.Context, basket *model.Basket, restoreAvailability bool) error {
	m.releases = append(m.releases, releaseCall{basketID: basket.ID, restore: restoreAvailability})
	return nil
}

func (m *mockBasketService) SweepExpired(ctx context.Context) (int, error) {
	return 0, nil
}

type seatChange struct {
	flightID string
	seat     string
	occupied bool
}

type availabilityChange struct {
	flightID string
	delta    int
}

type mockLedger struct {
	changeSeatOccupancyFunc func(ctx context.Context, flightID, seat string, occupied bool) error
	seatChanges             []seatChange
	availabilityChanges     []availabilityChange
}

func (m *mockLedger) FlightByID(ctx context.Context, id string) (*model.Flight, error) {
	return &model.Flight{ID: id, PlaneType: "A320", Price: 100, Available: 50}, nil
}

func (m *mockLedger) SeatMapCapacity(ctx context.Context, planeType string) (int, error) {
	return 180, nil
}

func (m *mockLedger) ChangeAvailability(ctx context.Context, flightID string, delta int) error {
	m.availabilityChanges = append(m.availabilityChanges, availabilityChange{flightID: flightID, delta: delta})
	return nil
}

func (m *mockLedger) IsSeatOccupied(ctx context.Context, flightID, seat string) (bool, error) {
	return false, nil
}

func (m *mockLedger) ChangeSeatOccupancy(ctx context.Context, flightID, seat string, occupied bool) error {
	m.seatChanges = append(m.seatChanges, seatChange{flightID: flightID, seat: seat, occupied: occupied})
	if m.changeSeatOccupancyFunc != nil {
		return m.changeSeatOccupancyFunc(ctx, flightID, seat, occupied)
	}
	return nil
}

func (m *mockLedger) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(mongo.NewSessionContext(ctx, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		BasketExpiry:                15 * time.Minute,
		ReservationExpiry:           30 * time.Minute,
		ReservationNumberLength:     6,
		ReservationNumberMaxRetries: 100,
		CheckedBaggagePrice:         30,
		HandBaggagePrice:            10,
		SeatPrice:                   10,
		FreeHandBaggage:             1,
		Log:                         logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"}),
	}
}

func newTestService(repo *mockReservationRepository, baskets *mockBasketService, ledger *mockLedger) ReservationService {
	cfg := testConfig()
	return NewReservationService(repo, baskets, ledger, validator.NewReservationValidator(cfg.Log), nil, cfg)
}

func journeyBasket() *model.Basket {
	return &model.Basket{
		ID:     basketID,
		UserID: userA,
		Flights: []model.BasketFlight{
			{FlightID: flightX, Adult: 2, Child: 1, Infant: 1, UnitPrice: 100},
		},
		ExpiryTime: time.Now().Add(10 * time.Minute),
	}
}

func journeyPassengers() []model.PassengerData {
	dob := func(year int) time.Time {
		return time.Date(year, 3, 15, 0, 0, 0, 0, time.UTC)
	}
	return []model.PassengerData{
		{
			Type: model.PassengerAdult, FirstName: "Ada", LastName: "Lovelace", DOB: dob(1985),
			HandBaggage: 2, CheckedBaggage: 1,
			Seats: []model.SeatSelection{{FlightID: flightX, Seat: "12C"}},
		},
		{
			Type: model.PassengerAdult, FirstName: "Alan", LastName: "Turing", DOB: dob(1988),
			HandBaggage: 1,
		},
		{
			Type: model.PassengerChild, FirstName: "Tim", LastName: "Lovelace", DOB: dob(2016),
			CheckedBaggage: 1,
		},
		{
			Type: model.PassengerInfant, FirstName: "Eva", LastName: "Lovelace", DOB: dob(2025),
		},
	}
}

func TestCreate_BuildsReservationFromBasket(t *testing.T) {
	baskets := &mockBasketService{
		getByIDFunc: func(ctx context.Context, userID, id string) (*model.Basket, error) {
			return journeyBasket(), nil
		},
	}
	ledger := &mockLedger{}
	var created *model.Reservation
	repo := &mockReservationRepository{
		createFunc: func(ctx context.Context, reservation *model.Reservation) error {
			created = reservation
			reservation.ID = resID
			return nil
		},
	}
	svc := newTestService(repo, baskets, ledger)

	reservation, err := svc.Create(context.Background(), userA, &model.CreateReservationInput{
		BasketID:   basketID,
		Passengers: journeyPassengers(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reservation.ReservationNumber) != 6 {
		t.Errorf("expected 6-character reservation number, got %q", reservation.ReservationNumber)
	}
	for _, c := range reservation.ReservationNumber {
		if !strings.ContainsRune(reservationNumberCharset, c) {
			t.Errorf("reservation number contains invalid character %q", c)
		}
	}

	// Fare 100 x 3 counted seats, one checked bag x2 (30 each), one
	// extra hand bag (10), one seat fee (10).
	if reservation.TotalPrice != 380 {
		t.Errorf("expected total price 380, got %.2f", reservation.TotalPrice)
	}

	if created == nil {
		t.Fatal("expected reservation to be persisted")
	}
	if len(created.Flights) != 1 || len(created.Flights[0].Passengers) != 4 {
		t.Fatalf("expected all 4 passengers on the flight, got %+v", created.Flights)
	}
	if created.IsConfirmed {
		t.Error("new reservation must start unconfirmed")
	}

	if len(ledger.seatChanges) != 1 || ledger.seatChanges[0] != (seatChange{flightID: flightX, seat: "12C", occupied: true}) {
		t.Errorf("expected seat 12C claimed, got %v", ledger.seatChanges)
	}

	if len(baskets.releases) != 1 {
		t.Fatalf("expected basket to be consumed, got %v", baskets.releases)
	}
	if baskets.releases[0].restore {
		t.Error("consuming the basket must not restore availability")
	}
}

func TestCreate_NormalizesSeatLabels(t *testing.T) {
	baskets := &mockBasketService{
		getByIDFunc: func(ctx context.Context, userID, id string) (*model.Basket, error) {
			return journeyBasket(), nil
		},
	}
	ledger := &mockLedger{}
	svc := newTestService(&mockReservationRepository{}, baskets, ledger)

	passengers := journeyPassengers()
	passengers[0].Seats[0].Seat = " 12c "

	_, err := svc.Create(context.Background(), userA, &model.CreateReservationInput{
		BasketID:   basketID,
		Passengers: passengers,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ledger.seatChanges) != 1 || ledger.seatChanges[0].seat != "12C" {
		t.Errorf("expected normalized seat 12C, got %v", ledger.seatChanges)
	}
}

func TestCreate_PassengerCountMismatch(t *testing.T) {
	baskets := &mockBasketService{
		getByIDFunc: func(ctx context.Context, userID, id string) (*model.Basket, error) {
			return journeyBasket(), nil
		},
	}
	svc := newTestService(&mockReservationRepository{}, baskets, &mockLedger{})

	passengers := journeyPassengers()[:2]

	_, err := svc.Create(context.Background(), userA, &model.CreateReservationInput{
		BasketID:   basketID,
		Passengers: passengers,
	})
	if !apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestCreate_ExpiredBasket(t *testing.T) {
	baskets := &mockBasketService{
		getByIDFunc: func(ctx context.Context, userID, id string) (*model.Basket, error) {
			basket := journeyBasket()
			basket.ExpiryTime = time.Now().Add(-time.Minute)
			return basket, nil
		},
	}
	svc := newTestService(&mockReservationRepository{}, baskets, &mockLedger{})

	_, err := svc.Create(context.Background(), userA, &model.CreateReservationInput{
		BasketID:   basketID,
		Passengers: journeyPassengers(),
	})
	if !apperrors.IsCode(err, apperrors.CodeConflict) {
		t.Errorf("expected CONFLICT for expired basket, got %v", err)
	}
}

func TestCreate_SeatOnFlightOutsideBasket(t *testing.T) {
	baskets := &mockBasketService{
		getByIDFunc: func(ctx context.Context, userID, id string) (*model.Basket, error) {
			return journeyBasket(), nil
		},
	}
	svc := newTestService(&mockReservationRepository{}, baskets, &mockLedger{})

	passengers := journeyPassengers()
	passengers[0].Seats = []model.SeatSelection{{FlightID: flightY, Seat: "12C"}}

	_, err := svc.Create(context.Background(), userA, &model.CreateReservationInput{
		BasketID:   basketID,
		Passengers: passengers,
	})
	if !apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestCreate_SeatConflictAbortsReservation(t *testing.T) {
	baskets := &mockBasketService{
		getByIDFunc: func(ctx context.Context, userID, id string) (*model.Basket, error) {
			return journeyBasket(), nil
		},
	}
	ledger := &mockLedger{
		changeSeatOccupancyFunc: func(ctx context.Context, flightID, seat string, occupied bool) error {
			return apperrors.Conflict("Seat 12C already occupied on flight " + flightID)
		},
	}
	repo := &mockReservationRepository{
		createFunc: func(ctx context.Context, reservation *model.Reservation) error {
			t.Error("reservation must not be persisted when a seat claim fails")
			return nil
		},
	}
	svc := newTestService(repo, baskets, ledger)

	_, err := svc.Create(context.Background(), userA, &model.CreateReservationInput{
		BasketID:   basketID,
		Passengers: journeyPassengers(),
	})
	if !apperrors.IsCode(err, apperrors.CodeConflict) {
		t.Errorf("expected CONFLICT, got %v", err)
	}
	if len(baskets.releases) != 0 {
		t.Error("basket must survive a failed reservation")
	}
}

func TestCreate_LoadsBasketOnSession(t *testing.T) {
	onSession := false
	baskets := &mockBasketService{
		getByIDFunc: func(ctx context.Context, userID, id string) (*model.Basket, error) {
			_, onSession = ctx.(mongo.SessionContext)
			return journeyBasket(), nil
		},
	}
	svc := newTestService(&mockReservationRepository{}, baskets, &mockLedger{})

	_, err := svc.Create(context.Background(), userA, &model.CreateReservationInput{
		BasketID:   basketID,
		Passengers: journeyPassengers(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !onSession {
		t.Error("expected the basket to be loaded on the transaction session")
	}
}

func TestCreate_RetriesOnNumberCollision(t *testing.T) {
	baskets := &mockBasketService{
		getByIDFunc: func(ctx context.Context, userID, id string) (*model.Basket, error) {
			return journeyBasket(), nil
		},
	}
	attempts := 0
	repo := &mockReservationRepository{
		countByNumberFunc: func(ctx context.Context, number string) (int64, error) {
			attempts++
			if attempts == 1 {
				return 1, nil
			}
			return 0, nil
		},
	}
	svc := newTestService(repo, baskets, &mockLedger{})

	_, err := svc.Create(context.Background(), userA, &model.CreateReservationInput{
		BasketID:   basketID,
		Passengers: journeyPassengers(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 2 {
		t.Errorf("expected 2 allocation attempts, got %d", attempts)
	}
}

func TestCreate_ExhaustedNumberAttempts(t *testing.T) {
	baskets := &mockBasketService{
		getByIDFunc: func(ctx context.Context, userID, id string) (*model.Basket, error) {
			return journeyBasket(), nil
		},
	}
	repo := &mockReservationRepository{
		countByNumberFunc: func(ctx context.Context, number string) (int64, error) {
			return 1, nil
		},
	}
	svc := newTestService(repo, baskets, &mockLedger{})

	_, err := svc.Create(context.Background(), userA, &model.CreateReservationInput{
		BasketID:   basketID,
		Passengers: journeyPassengers(),
	})
	if !apperrors.IsCode(err, apperrors.CodeInternal) {
		t.Errorf("expected INTERNAL_ERROR, got %v", err)
	}
}

func unconfirmedReservation() *model.Reservation {
	return &model.Reservation{
		ID:                resID,
		ReservationNumber: "AB12CD",
		UserID:            userA,
		ReservationDate:   time.Now().Add(-5 * time.Minute),
		Flights: []model.ReservedFlight{
			{
				FlightID: flightX,
				Price:    100,
				Passengers: []model.Passenger{
					{Type: model.PassengerAdult, FirstName: "Ada", LastName: "Lovelace", Seat: "12C"},
					{Type: model.PassengerChild, FirstName: "Tim", LastName: "Lovelace"},
					{Type: model.PassengerInfant, FirstName: "Eva", LastName: "Lovelace"},
				},
			},
		},
		TotalPrice: 230,
	}
}

func TestConfirm_SetsFlag(t *testing.T) {
	confirmed := false
	repo := &mockReservationRepository{
		findByUserAndNumberFunc: func(ctx context.Context, userID, number string) (*model.Reservation, error) {
			return unconfirmedReservation(), nil
		},
		setConfirmedFunc: func(ctx context.Context, id string) error {
			confirmed = true
			return nil
		},
	}
	svc := newTestService(repo, &mockBasketService{}, &mockLedger{})

	reservation, err := svc.Confirm(context.Background(), userA, "AB12CD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !confirmed {
		t.Error("expected repository confirm call")
	}
	if !reservation.IsConfirmed {
		t.Error("expected returned reservation to be confirmed")
	}
}

func TestConfirm_Idempotent(t *testing.T) {
	repo := &mockReservationRepository{
		findByUserAndNumberFunc: func(ctx context.Context, userID, number string) (*model.Reservation, error) {
			reservation := unconfirmedReservation()
			reservation.IsConfirmed = true
			return reservation, nil
		},
		setConfirmedFunc: func(ctx context.Context, id string) error {
			t.Error("confirming twice must not hit the repository again")
			return nil
		},
	}
	svc := newTestService(repo, &mockBasketService{}, &mockLedger{})

	reservation, err := svc.Confirm(context.Background(), userA, "AB12CD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reservation.IsConfirmed {
		t.Error("expected confirmed reservation")
	}
}

func TestConfirm_ExpiredReservation(t *testing.T) {
	repo := &mockReservationRepository{
		findByUserAndNumberFunc: func(ctx context.Context, userID, number string) (*model.Reservation, error) {
			reservation := unconfirmedReservation()
			reservation.ReservationDate = time.Now().Add(-time.Hour)
			return reservation, nil
		},
	}
	svc := newTestService(repo, &mockBasketService{}, &mockLedger{})

	_, err := svc.Confirm(context.Background(), userA, "AB12CD")
	if !apperrors.IsCode(err, apperrors.CodeConflict) {
		t.Errorf("expected CONFLICT for expired reservation, got %v", err)
	}
}

func TestConfirm_UnknownNumber(t *testing.T) {
	svc := newTestService(&mockReservationRepository{}, &mockBasketService{}, &mockLedger{})

	_, err := svc.Confirm(context.Background(), userA, "ZZZZZZ")
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestSweepUnconfirmed_RestoresLedger(t *testing.T) {
	deleted := false
	repo := &mockReservationRepository{
		findUnconfirmedBeforeFunc: func(ctx context.Context, cutoff time.Time, limit int) ([]*model.Reservation, error) {
			return []*model.Reservation{unconfirmedReservation()}, nil
		},
		findByUserAndNumberFunc: func(ctx context.Context, userID, number string) (*model.Reservation, error) {
			return unconfirmedReservation(), nil
		},
		deleteUnconfirmedFunc: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	ledger := &mockLedger{}
	svc := newTestService(repo, &mockBasketService{}, ledger)

	swept, err := svc.SweepUnconfirmed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if swept != 1 {
		t.Errorf("expected 1 swept reservation, got %d", swept)
	}
	if !deleted {
		t.Error("expected reservation to be deleted")
	}

	// Adult and child return to the counter; the infant never held one.
	if len(ledger.availabilityChanges) != 1 || ledger.availabilityChanges[0].delta != 2 {
		t.Errorf("expected 2 seats restored, got %v", ledger.availabilityChanges)
	}
	if len(ledger.seatChanges) != 1 || ledger.seatChanges[0] != (seatChange{flightID: flightX, seat: "12C", occupied: false}) {
		t.Errorf("expected seat 12C freed, got %v", ledger.seatChanges)
	}
}

func TestSweepUnconfirmed_SkipsConcurrentlyConfirmed(t *testing.T) {
	repo := &mockReservationRepository{
		findUnconfirmedBeforeFunc: func(ctx context.Context, cutoff time.Time, limit int) ([]*model.Reservation, error) {
			return []*model.Reservation{unconfirmedReservation()}, nil
		},
		findByUserAndNumberFunc: func(ctx context.Context, userID, number string) (*model.Reservation, error) {
			// Confirmed after the expiry snapshot was taken.
			reservation := unconfirmedReservation()
			reservation.IsConfirmed = true
			return reservation, nil
		},
		deleteUnconfirmedFunc: func(ctx context.Context, id string) error {
			t.Error("confirmed reservation must not be deleted")
			return nil
		},
	}
	ledger := &mockLedger{}
	svc := newTestService(repo, &mockBasketService{}, ledger)

	swept, err := svc.SweepUnconfirmed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if swept != 0 {
		t.Errorf("expected 0 swept reservations, got %d", swept)
	}
	if len(ledger.availabilityChanges) != 0 || len(ledger.seatChanges) != 0 {
		t.Errorf("expected no ledger changes, got %v / %v", ledger.availabilityChanges, ledger.seatChanges)
	}
}

func TestSweepUnconfirmed_ContinuesPastFailures(t *testing.T) {
	first := unconfirmedReservation()
	second := unconfirmedReservation()
	second.ID = "64c000000000000000000002"
	second.ReservationNumber = "EF34GH"

	repo := &mockReservationRepository{
		findUnconfirmedBeforeFunc: func(ctx context.Context, cutoff time.Time, limit int) ([]*model.Reservation, error) {
			return []*model.Reservation{first, second}, nil
		},
		findByUserAndNumberFunc: func(ctx context.Context, userID, number string) (*model.Reservation, error) {
			if number == first.ReservationNumber {
				return first, nil
			}
			return second, nil
		},
		deleteUnconfirmedFunc: func(ctx context.Context, id string) error {
			if id == first.ID {
				return reservationserrors.ErrReservationNotFound
			}
			return nil
		},
	}
	svc := newTestService(repo, &mockBasketService{}, &mockLedger{})

	swept, err := svc.SweepUnconfirmed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if swept != 1 {
		t.Errorf("expected 1 swept reservation, got %d", swept)
	}
}

func TestList_ReturnsPageAndTotal(t *testing.T) {
	repo := &mockReservationRepository{
		findConfirmedByUserFunc: func(ctx context.Context, userID string, limit int, offset int64) ([]*model.Reservation, error) {
			if limit != 10 || offset != 5 {
				t.Errorf("expected limit 10 offset 5, got %d/%d", limit, offset)
			}
			reservation := unconfirmedReservation()
			reservation.IsConfirmed = true
			return []*model.Reservation{reservation}, nil
		},
		countConfirmedByUserFunc: func(ctx context.Context, userID string) (int64, error) {
			return 42, nil
		},
	}
	svc := newTestService(repo, &mockBasketService{}, &mockLedger{})

	reservations, total, err := svc.List(context.Background(), userA, 10, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reservations) != 1 {
		t.Errorf("expected 1 reservation, got %d", len(reservations))
	}
	if total != 42 {
		t.Errorf("expected total 42, got %d", total)
	}
}
