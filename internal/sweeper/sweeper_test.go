package sweeper

import (
	"context"
	"errors"
	"skyfare/pkg/config"
	"skyfare/pkg/logger"
	"sync/atomic"
	"testing"
	"time"
)

type mockBasketSweeper struct {
	calls     atomic.Int64
	sweepFunc func(ctx context.Context) (int, error)
}

func (m *mockBasketSweeper) SweepExpired(ctx context.Context) (int, error) {
	m.calls.Add(1)
	if m.sweepFunc != nil {
		return m.sweepFunc(ctx)
	}
	return 0, nil
}

type mockReservationSweeper struct {
	calls     atomic.Int64
	sweepFunc func(ctx context.Context) (int, error)
}

func (m *mockReservationSweeper) SweepUnconfirmed(ctx context.Context) (int, error) {
	m.calls.Add(1)
	if m.sweepFunc != nil {
		return m.sweepFunc(ctx)
	}
	return 0, nil
}

func testConfig(interval time.Duration) *config.Config {
	return &config.Config{
		SweepInterval: interval,
		SweepTimeout:  time.Second,
		Log:           logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"}),
	}
}

func TestRunOnce_SweepsBothSides(t *testing.T) {
	baskets := &mockBasketSweeper{}
	reservations := &mockReservationSweeper{}
	s := NewSweeper(baskets, reservations, testConfig(time.Hour))

	s.RunOnce(context.Background())

	if baskets.calls.Load() != 1 {
		t.Errorf("expected 1 basket sweep, got %d", baskets.calls.Load())
	}
	if reservations.calls.Load() != 1 {
		t.Errorf("expected 1 reservation sweep, got %d", reservations.calls.Load())
	}
}

func TestRunOnce_BasketFailureDoesNotBlockReservations(t *testing.T) {
	baskets := &mockBasketSweeper{
		sweepFunc: func(ctx context.Context) (int, error) {
			return 0, errors.New("mongo down")
		},
	}
	reservations := &mockReservationSweeper{}
	s := NewSweeper(baskets, reservations, testConfig(time.Hour))

	s.RunOnce(context.Background())

	if reservations.calls.Load() != 1 {
		t.Error("expected reservation sweep despite basket failure")
	}
}

func TestStartStop(t *testing.T) {
	baskets := &mockBasketSweeper{}
	reservations := &mockReservationSweeper{}
	s := NewSweeper(baskets, reservations, testConfig(10*time.Millisecond))

	s.Start()

	deadline := time.After(2 * time.Second)
	for baskets.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 2 sweep passes, got %d", baskets.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	s.Stop()
	s.Stop() // second call must not panic

	after := baskets.calls.Load()
	time.Sleep(50 * time.Millisecond)
	if baskets.calls.Load() != after {
		t.Error("expected no sweeps after Stop")
	}
}
