package dto

import "time"

type PackageRequest struct {
	PackageID            string  `json:"package_id"`
	WeightKg             float64 `json:"weight_kg"`
	LengthCm             float64 `json:"length_cm"`
	WidthCm              float64 `json:"width_cm"`
	HeightCm             float64 `json:"height_cm"`
	Fragile              bool    `json:"fragile"`
	TemperatureSensitive bool    `json:"temperature_sensitive"`
	Hazardous            bool    `json:"hazardous"`
	DeclaredValue        float64 `json:"declared_value"`
}

type OrderRequest struct {
	OrderID             string           `json:"order_id"`
	CustomerID          string           `json:"customer_id"`
	Address             string           `json:"address"`
	Priority            string           `json:"priority"`
	WindowStart         time.Time        `json:"window_start"`
	WindowEnd           time.Time        `json:"window_end"`
	Packages            []PackageRequest `json:"packages"`
	SpecialInstructions string           `json:"special_instructions"`
}

type LoadingPlanRequest struct {
	Orders []OrderRequest `json:"orders"`
}

type PackageHandlingResponse struct {
	PackageID string   `json:"package_id"`
	WeightKg  float64  `json:"weight_kg"`
	Size      string   `json:"size"`
	Notes     []string `json:"notes"`
}

type LoadingInstructionResponse struct {
	Sequence            int                       `json:"sequence"`
	OrderID             string                    `json:"order_id"`
	CustomerID          string                    `json:"customer_id"`
	Address             string                    `json:"address"`
	Priority            string                    `json:"priority"`
	Zone                string                    `json:"zone"`
	Packages            []PackageHandlingResponse `json:"packages"`
	WeightKg            float64                   `json:"weight_kg"`
	VolumeCm3           float64                   `json:"volume_cm3"`
	CumulativeWeightKg  float64                   `json:"cumulative_weight_kg"`
	CumulativeVolumeCm3 float64                   `json:"cumulative_volume_cm3"`
	SpecialInstructions string                    `json:"special_instructions"`
}

type VehicleLoadingPlanResponse struct {
	VehicleID            string                       `json:"vehicle_id"`
	DriverID             string                       `json:"driver_id"`
	Orders               int                          `json:"orders"`
	TotalWeightKg        float64                      `json:"total_weight_kg"`
	TotalVolumeCm3       float64                      `json:"total_volume_cm3"`
	WeightUtilizationPct float64                      `json:"weight_utilization_pct"`
	VolumeUtilizationPct float64                      `json:"volume_utilization_pct"`
	Sequence             []LoadingInstructionResponse `json:"sequence"`
	SpecialNotes         []string                     `json:"special_notes"`
}

type LoadingSummaryResponse struct {
	TotalOrders       int     `json:"total_orders"`
	AssignedOrders    int     `json:"assigned_orders"`
	UnassignedOrders  int     `json:"unassigned_orders"`
	AssignmentRatePct float64 `json:"assignment_rate_pct"`
	VehiclesUsed      int     `json:"vehicles_used"`
	VehiclesAvailable int     `json:"vehicles_available"`
}

type LoadingMetricsResponse struct {
	FleetWeightUtilizationPct float64        `json:"fleet_weight_utilization_pct"`
	FleetVolumeUtilizationPct float64        `json:"fleet_volume_utilization_pct"`
	PriorityDistribution      map[string]int `json:"priority_distribution"`
	LoadBalanceScore          float64        `json:"load_balance_score"`
}

type LoadingPlanResponse struct {
	Summary            LoadingSummaryResponse       `json:"summary"`
	Assignments        []VehicleLoadingPlanResponse `json:"assignments"`
	UnassignedOrderIDs []string                     `json:"unassigned_order_ids"`
	Metrics            LoadingMetricsResponse       `json:"metrics"`
}
