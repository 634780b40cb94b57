package domain

import "slices"

// Special equipment tags a vehicle may carry.
const (
	EquipmentFragileHandling   = "fragile_handling"
	EquipmentRefrigeration     = "refrigeration"
	EquipmentHazardousHandling = "hazardous_handling"
)

// Represents one vehicle in the known fleet.
// The capacity label is the human-readable form vehicle pickers show;
// the numeric capacities and equipment tags drive loading decisions.
type Vehicle struct {
	VehicleID     string
	DisplayName   string
	CapacityLabel string
	CapacityKg    float64
	CapacityCm3   float64
	DriverID      string
	Equipment     []string
}

// CanCarry reports whether the order fits the vehicle's rated weight and
// volume capacity and the vehicle has the equipment the order's packages
// need (refrigeration for temperature-sensitive, fragile and hazardous
// handling for the matching flags).
func (v Vehicle) CanCarry(order DeliveryOrder) bool {
	if order.TotalWeightKg() > v.CapacityKg || order.TotalVolumeCm3() > v.CapacityCm3 {
		return false
	}
	for _, pkg := range order.Packages {
		if pkg.TemperatureSensitive && !v.HasEquipment(EquipmentRefrigeration) {
			return false
		}
		if pkg.Fragile && !v.HasEquipment(EquipmentFragileHandling) {
			return false
		}
		if pkg.Hazardous && !v.HasEquipment(EquipmentHazardousHandling) {
			return false
		}
	}
	return true
}

// HasEquipment reports whether the vehicle carries the given equipment tag.
func (v Vehicle) HasEquipment(tag string) bool {
	return slices.Contains(v.Equipment, tag)
}
