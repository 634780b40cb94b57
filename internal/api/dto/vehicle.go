package dto

type VehicleResponse struct {
	VehicleID     string   `json:"vehicle_id"`
	DisplayName   string   `json:"display_name"`
	CapacityLabel string   `json:"capacity_label"`
	CapacityKg    float64  `json:"capacity_kg"`
	CapacityCm3   float64  `json:"capacity_cm3"`
	DriverID      string   `json:"driver_id"`
	Equipment     []string `json:"equipment"`
}

type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}
