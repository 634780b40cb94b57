package dto

type StopResponse struct {
	Label       string `json:"label"`
	ScheduledAt string `json:"scheduled_at"`
	Kind        string `json:"kind"`
}

type PlanResponse struct {
	VehicleID      string         `json:"vehicle_id"`
	Stops          []StopResponse `json:"stops"`
	DistanceKm     float64        `json:"distance_km"`
	EstimatedHours float64        `json:"estimated_hours"`
	FuelCost       int            `json:"fuel_cost"`
	Deliveries     int            `json:"deliveries"`
}
