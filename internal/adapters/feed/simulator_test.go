package feed

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSimulatorPublishesInitialSnapshot(t *testing.T) {
	sim := New(Options{FleetSize: 3, Seed: 7, Log: zerolog.Nop()})

	snap := sim.Snapshot()
	if snap.GeneratedAt.IsZero() {
		t.Fatal("no snapshot published at construction")
	}
	if snap.ActiveVehicles < 1 || snap.ActiveVehicles > 3 {
		t.Errorf("active vehicles = %d, want within fleet size", snap.ActiveVehicles)
	}
	if len(snap.StatusCounts) == 0 {
		t.Error("status counts missing from initial snapshot")
	}
}

func TestSimulatorSameSeedSameFirstSnapshot(t *testing.T) {
	a := New(Options{FleetSize: 3, Seed: 99, Log: zerolog.Nop()})
	b := New(Options{FleetSize: 3, Seed: 99, Log: zerolog.Nop()})

	sa, sb := a.Snapshot(), b.Snapshot()
	// GeneratedAt differs by wall clock; the drawn values must not.
	if sa.ActiveVehicles != sb.ActiveVehicles ||
		sa.DeliveriesCompleted != sb.DeliveriesCompleted ||
		sa.DeliveriesInProgress != sb.DeliveriesInProgress ||
		sa.OnTimeRatePct != sb.OnTimeRatePct {
		t.Fatalf("same seed diverged:\n%+v\n%+v", sa, sb)
	}
}

func TestSimulatorRunRefreshesAndStops(t *testing.T) {
	sim := New(Options{Interval: 5 * time.Millisecond, FleetSize: 3, Seed: 7, Log: zerolog.Nop()})
	first := sim.Snapshot()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sim.Run(ctx)
		close(done)
	}()

	// Wait for at least one tick to replace the initial snapshot.
	deadline := time.After(2 * time.Second)
	for {
		if !sim.Snapshot().GeneratedAt.Equal(first.GeneratedAt) {
			break
		}
		select {
		case <-deadline:
			cancel()
			t.Fatal("snapshot never refreshed")
		case <-time.After(2 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on context cancellation")
	}
}
