// Package sweeper runs the periodic expiry pass that returns seats
// held by abandoned baskets and unconfirmed reservations to the ledger.
package sweeper

import (
	"context"
	"skyfare/pkg/config"
	"sync"
	"time"
)

// BasketSweeper is the slice of the basket service the sweeper needs.
type BasketSweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// ReservationSweeper is the slice of the reservation service the
// sweeper needs.
type ReservationSweeper interface {
	SweepUnconfirmed(ctx context.Context) (int, error)
}

type Sweeper struct {
	baskets      BasketSweeper
	reservations ReservationSweeper
	cfg          *config.Config

	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

func NewSweeper(baskets BasketSweeper, reservations ReservationSweeper, cfg *config.Config) *Sweeper {
	return &Sweeper{
		baskets:      baskets,
		reservations: reservations,
		cfg:          cfg,
		done:         make(chan struct{}),
	}
}

// Start launches the sweep loop. The first pass runs immediately so a
// restart does not leave expired holds sitting for a full interval.
func (s *Sweeper) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.cfg.Log.Info("Sweeper started", "interval", s.cfg.SweepInterval)
		s.RunOnce(context.Background())

		ticker := time.NewTicker(s.cfg.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.RunOnce(context.Background())
			case <-s.done:
				return
			}
		}
	}()
}

// Stop halts the loop and waits for an in-flight pass to finish.
// Calling Stop twice is safe.
func (s *Sweeper) Stop() {
	s.once.Do(func() {
		close(s.done)
	})
	s.wg.Wait()
	s.cfg.Log.Info("Sweeper stopped")
}

// RunOnce performs a single sweep pass under the configured timeout.
// One side failing does not stop the other from being swept.
func (s *Sweeper) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.SweepTimeout)
	defer cancel()

	started := time.Now()

	basketsSwept, err := s.baskets.SweepExpired(ctx)
	if err != nil {
		s.cfg.Log.Error("Basket sweep failed", "error", err)
	}

	reservationsSwept, err := s.reservations.SweepUnconfirmed(ctx)
	if err != nil {
		s.cfg.Log.Error("Reservation sweep failed", "error", err)
	}

	s.cfg.Log.Debug("Sweep pass completed",
		"baskets_swept", basketsSwept,
		"reservations_swept", reservationsSwept,
		"duration", time.Since(started),
	)
}
