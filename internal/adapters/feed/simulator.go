package feed

import (
	"context"
	"delivery-dashboard-service/internal/domain"
	"delivery-dashboard-service/internal/platform/metrics"
	"delivery-dashboard-service/internal/services"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Simulator regenerates the dashboard's live fleet metrics on a schedule.
// Run is the only goroutine touching the rand source; readers get the
// latest snapshot through an atomic pointer, so Snapshot is safe from any
// goroutine without locks.
type Simulator struct {
	interval  time.Duration
	fleetSize int
	rng       *rand.Rand
	log       zerolog.Logger
	recorder  *metrics.Recorder
	current   atomic.Pointer[domain.FleetSnapshot]
}

// Options configures a Simulator.
type Options struct {
	Interval  time.Duration
	FleetSize int
	// Seed fixes the rand source for reproducible feeds; 0 seeds from the
	// clock.
	Seed     int64
	Recorder *metrics.Recorder
	Log      zerolog.Logger
}

// New builds a simulator and publishes an initial snapshot, so readers
// never observe an empty feed.
func New(opts Options) *Simulator {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	s := &Simulator{
		interval:  interval,
		fleetSize: opts.FleetSize,
		rng:       rand.New(rand.NewSource(seed)),
		log:       opts.Log,
		recorder:  opts.Recorder,
	}
	s.refresh()
	return s
}

// Run regenerates the snapshot on the configured interval until the
// context is canceled.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("metrics feed started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("metrics feed stopped")
			return
		case <-ticker.C:
			s.refresh()
		}
	}
}

// Snapshot returns the most recently published snapshot.
func (s *Simulator) Snapshot() domain.FleetSnapshot {
	return *s.current.Load()
}

func (s *Simulator) refresh() {
	snap := services.SimulateSnapshot(s.rng, s.fleetSize, time.Now())
	s.current.Store(&snap)
	s.recorder.FeedRefresh()
	s.log.Debug().
		Int("active_vehicles", snap.ActiveVehicles).
		Int("in_progress", snap.DeliveriesInProgress).
		Msg("fleet snapshot refreshed")
}
