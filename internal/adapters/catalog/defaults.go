package catalog

import "delivery-dashboard-service/internal/domain"

// The built-in vehicle table: three vehicles with fixed Mumbai routes out
// of the distribution center. Distances, times, fuel costs and delivery
// counts are reference data agreed with dispatch, not computed figures.
func defaultEntries() []domain.TableEntry {
	return []domain.TableEntry{
		{
			Vehicle: domain.Vehicle{
				VehicleID:     "VEH_001",
				DisplayName:   "Large Truck",
				CapacityLabel: "1000 kg",
				CapacityKg:    1000,
				CapacityCm3:   10000000,
				DriverID:      "DRV_001",
				Equipment:     []string{domain.EquipmentFragileHandling, domain.EquipmentRefrigeration},
			},
			Plan: domain.Plan{
				VehicleID: "VEH_001",
				Stops: []domain.Stop{
					{Label: "Distribution Center", ScheduledAt: "08:00", Kind: domain.StopKindDepot},
					{Label: "Bandra West", ScheduledAt: "08:40", Kind: domain.StopKindDelivery},
					{Label: "Worli", ScheduledAt: "09:35", Kind: domain.StopKindDelivery},
					{Label: "Churchgate", ScheduledAt: "10:20", Kind: domain.StopKindDelivery},
					{Label: "Colaba", ScheduledAt: "10:50", Kind: domain.StopKindDelivery},
					{Label: "Distribution Center", ScheduledAt: "11:12", Kind: domain.StopKindDepot},
				},
				DistanceKm:     55.2,
				EstimatedHours: 3.2,
				FuelCost:       480,
				Deliveries:     4,
			},
		},
		{
			Vehicle: domain.Vehicle{
				VehicleID:     "VEH_002",
				DisplayName:   "Medium Van",
				CapacityLabel: "750 kg",
				CapacityKg:    750,
				CapacityCm3:   7500000,
				DriverID:      "DRV_002",
				Equipment:     []string{domain.EquipmentFragileHandling},
			},
			Plan: domain.Plan{
				VehicleID: "VEH_002",
				Stops: []domain.Stop{
					{Label: "Distribution Center", ScheduledAt: "08:00", Kind: domain.StopKindDepot},
					{Label: "Andheri West", ScheduledAt: "08:50", Kind: domain.StopKindDelivery},
					{Label: "Goregaon", ScheduledAt: "09:40", Kind: domain.StopKindDelivery},
					{Label: "Malad West", ScheduledAt: "10:20", Kind: domain.StopKindDelivery},
					{Label: "Distribution Center", ScheduledAt: "10:48", Kind: domain.StopKindDepot},
				},
				DistanceKm:     42.1,
				EstimatedHours: 2.8,
				FuelCost:       350,
				Deliveries:     3,
			},
		},
		{
			Vehicle: domain.Vehicle{
				VehicleID:     "VEH_003",
				DisplayName:   "Small Van",
				CapacityLabel: "500 kg",
				CapacityKg:    500,
				CapacityCm3:   5000000,
				DriverID:      "DRV_003",
				Equipment:     []string{domain.EquipmentHazardousHandling},
			},
			Plan: domain.Plan{
				VehicleID: "VEH_003",
				Stops: []domain.Stop{
					{Label: "Distribution Center", ScheduledAt: "08:00", Kind: domain.StopKindDepot},
					{Label: "Powai", ScheduledAt: "08:55", Kind: domain.StopKindDelivery},
					{Label: "Vikhroli", ScheduledAt: "09:50", Kind: domain.StopKindDelivery},
					{Label: "Distribution Center", ScheduledAt: "10:30", Kind: domain.StopKindDepot},
				},
				DistanceKm:     32.5,
				EstimatedHours: 2.5,
				FuelCost:       285,
				Deliveries:     2,
			},
		},
	}
}
