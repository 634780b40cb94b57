package domain

import "time"

// One tick of live dashboard metrics for the fleet. Snapshots are cosmetic
// display data regenerated on a schedule, independent of route plans, and
// a new snapshot always replaces the prior one wholesale.
type FleetSnapshot struct {
	GeneratedAt          time.Time
	ActiveVehicles       int
	DeliveriesInProgress int
	DeliveriesCompleted  int
	OnTimeRatePct        float64
	AvgSpeedKmh          float64
	FuelEfficiencyKmPerL float64
	StatusCounts         map[DeliveryStatus]int
}
