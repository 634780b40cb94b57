package dto

import "time"

type FleetSnapshotResponse struct {
	GeneratedAt          time.Time      `json:"generated_at"`
	ActiveVehicles       int            `json:"active_vehicles"`
	DeliveriesInProgress int            `json:"deliveries_in_progress"`
	DeliveriesCompleted  int            `json:"deliveries_completed"`
	OnTimeRatePct        float64        `json:"on_time_rate_pct"`
	AvgSpeedKmh          float64        `json:"avg_speed_kmh"`
	FuelEfficiencyKmPerL float64        `json:"fuel_efficiency_km_per_l"`
	StatusCounts         map[string]int `json:"status_counts"`
}
