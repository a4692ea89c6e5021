package service

import (
	"context"
	inventoryerrors "skyfare/internal/inventory/errors"
	"skyfare/internal/inventory/repository"
	"skyfare/pkg/config"
	mongotx "skyfare/pkg/db/mongo"
	apperrors "skyfare/pkg/errors"
	"skyfare/pkg/logger"
	"skyfare/pkg/model"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type mockFlightRepository struct {
	searchFunc   func(ctx context.Context, criteria repository.FlightSearchCriteria) ([]*model.Flight, error)
	findByIDFunc func(ctx context.Context, id string) (*model.Flight, error)
}

func (m *mockFlightRepository) FindByID(ctx context.Context, id string) (*model.Flight, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, inventoryerrors.ErrFlightNotFound
}

func (m *mockFlightRepository) Search(ctx context.Context, criteria repository.FlightSearchCriteria) ([]*model.Flight, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, criteria)
	}
	return nil, nil
}

func (m *mockFlightRepository) FindOffers(ctx context.Context, depCode string) ([]*model.Flight, error) {
	return nil, nil
}

func (m *mockFlightRepository) ApplyAvailabilityDelta(ctx context.Context, id string, delta, capacity int) error {
	return nil
}

func (m *mockFlightRepository) OccupySeat(ctx context.Context, id, seat string) error {
	return nil
}

func (m *mockFlightRepository) ReleaseSeat(ctx context.Context, id, seat string) error {
	return nil
}

func (m *mockFlightRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(mongo.NewSessionContext(ctx, nil))
}

type mockAirportRepository struct {
	findAllFunc func(ctx context.Context) ([]*model.Airport, error)
}

func (m *mockAirportRepository) FindAll(ctx context.Context) ([]*model.Airport, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

type mockSeatMapRepository struct {
	findByPlaneTypeFunc func(ctx context.Context, planeType string) (*model.SeatMap, error)
}

func (m *mockSeatMapRepository) FindByPlaneType(ctx context.Context, planeType string) (*model.SeatMap, error) {
	if m.findByPlaneTypeFunc != nil {
		return m.findByPlaneTypeFunc(ctx, planeType)
	}
	return nil, inventoryerrors.ErrSeatMapNotFound
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"}),
	}
}

func newTestService(flights *mockFlightRepository) SearchService {
	return NewSearchService(flights, &mockAirportRepository{}, &mockSeatMapRepository{}, testConfig())
}

func TestSearch_WindowSpansOneDayEachSide(t *testing.T) {
	var got repository.FlightSearchCriteria
	flights := &mockFlightRepository{
		searchFunc: func(ctx context.Context, criteria repository.FlightSearchCriteria) ([]*model.Flight, error) {
			got = criteria
			return []*model.Flight{}, nil
		},
	}
	svc := newTestService(flights)

	depDate := time.Now().Add(10 * 24 * time.Hour)
	_, err := svc.Search(context.Background(), SearchQuery{
		DepCode: "LTN",
		ArrCode: "KRK",
		DepDate: depDate,
		Adult:   2,
		Child:   1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantMin := depDate.AddDate(0, 0, -1)
	wantMax := depDate.AddDate(0, 0, 1)
	if !got.MinDepDate.Equal(wantMin) || !got.MaxDepDate.Equal(wantMax) {
		t.Errorf("expected window [%v, %v], got [%v, %v]", wantMin, wantMax, got.MinDepDate, got.MaxDepDate)
	}
	if got.MinSeats != 3 {
		t.Errorf("expected MinSeats 3, got %d", got.MinSeats)
	}
}

func TestSearch_WindowClampedToNow(t *testing.T) {
	var got repository.FlightSearchCriteria
	flights := &mockFlightRepository{
		searchFunc: func(ctx context.Context, criteria repository.FlightSearchCriteria) ([]*model.Flight, error) {
			got = criteria
			return []*model.Flight{}, nil
		},
	}
	svc := newTestService(flights)

	_, err := svc.Search(context.Background(), SearchQuery{
		DepCode: "LTN",
		ArrCode: "KRK",
		DepDate: time.Now(),
		Adult:   1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.MinDepDate.Before(time.Now().Add(-time.Minute)) {
		t.Errorf("expected window start clamped to now, got %v", got.MinDepDate)
	}
}

func TestSearch_PastDateReturnsEmpty(t *testing.T) {
	flights := &mockFlightRepository{
		searchFunc: func(ctx context.Context, criteria repository.FlightSearchCriteria) ([]*model.Flight, error) {
			t.Error("window entirely in the past must not hit the repository")
			return nil, nil
		},
	}
	svc := newTestService(flights)

	results, err := svc.Search(context.Background(), SearchQuery{
		DepCode: "LTN",
		ArrCode: "KRK",
		DepDate: time.Now().AddDate(0, 0, -10),
		Adult:   1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no flights, got %d", len(results))
	}
}

func TestSearch_RejectsBadQueries(t *testing.T) {
	svc := newTestService(&mockFlightRepository{})

	cases := []struct {
		name  string
		query SearchQuery
	}{
		{"missing codes", SearchQuery{DepDate: time.Now(), Adult: 1}},
		{"same codes", SearchQuery{DepCode: "LTN", ArrCode: "LTN", DepDate: time.Now(), Adult: 1}},
		{"no counted travellers", SearchQuery{DepCode: "LTN", ArrCode: "KRK", DepDate: time.Now(), Infant: 1}},
		{"infants exceed adults", SearchQuery{DepCode: "LTN", ArrCode: "KRK", DepDate: time.Now(), Adult: 1, Infant: 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Search(context.Background(), tc.query)
			if !apperrors.IsCode(err, apperrors.CodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", err)
			}
		})
	}
}

func TestOccupiedSeats_NeverNil(t *testing.T) {
	flights := &mockFlightRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Flight, error) {
			return &model.Flight{ID: id, PlaneType: "A320"}, nil
		},
	}
	svc := newTestService(flights)

	seats, err := svc.OccupiedSeats(context.Background(), "64a000000000000000000001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seats == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestSeatMap_UnknownPlaneType(t *testing.T) {
	svc := newTestService(&mockFlightRepository{})

	_, err := svc.SeatMap(context.Background(), "B747")
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}
