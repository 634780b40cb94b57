package services

import (
	"delivery-dashboard-service/internal/domain"
	"math"
	"math/rand"
	"time"
)

// SimulateSnapshot produces one tick of live dashboard metrics. The values
// are display jitter drawn from plausible operating ranges and carry no
// relationship to route plans; the result is fully determined by the rand
// source, the fleet size, and the clock reading passed in.
func SimulateSnapshot(rng *rand.Rand, fleetSize int, now time.Time) domain.FleetSnapshot {
	snap := domain.FleetSnapshot{
		GeneratedAt:  now,
		StatusCounts: make(map[domain.DeliveryStatus]int, len(domain.AllStatuses)),
	}

	if fleetSize > 0 {
		snap.ActiveVehicles = 1 + rng.Intn(fleetSize)
	}
	snap.DeliveriesCompleted = 10 + rng.Intn(41)
	snap.DeliveriesInProgress = rng.Intn(13)
	snap.OnTimeRatePct = round1(88 + rng.Float64()*11.5)
	snap.AvgSpeedKmh = round1(24 + rng.Float64()*24)
	snap.FuelEfficiencyKmPerL = round1(8 + rng.Float64()*6)

	for _, status := range domain.AllStatuses {
		snap.StatusCounts[status] = 0
	}
	// Keep the distribution consistent with the headline numbers: the three
	// en-route states split the in-progress count, delivered matches the
	// completed count.
	for i := 0; i < snap.DeliveriesInProgress; i++ {
		switch rng.Intn(3) {
		case 0:
			snap.StatusCounts[domain.StatusPickedUp]++
		case 1:
			snap.StatusCounts[domain.StatusInTransit]++
		default:
			snap.StatusCounts[domain.StatusOutForDelivery]++
		}
	}
	snap.StatusCounts[domain.StatusDelivered] = snap.DeliveriesCompleted
	snap.StatusCounts[domain.StatusPending] = rng.Intn(9)
	snap.StatusCounts[domain.StatusFailed] = rng.Intn(3)
	snap.StatusCounts[domain.StatusReturned] = rng.Intn(2)

	return snap
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
