package catalog

import (
	"delivery-dashboard-service/internal/domain"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type stopSeed struct {
	Label       string `json:"label"`
	ScheduledAt string `json:"scheduled_at"`
	Kind        string `json:"kind"`
}

type planSeed struct {
	Stops          []stopSeed `json:"stops"`
	DistanceKm     float64    `json:"distance_km"`
	EstimatedHours float64    `json:"estimated_hours"`
	FuelCost       int        `json:"fuel_cost"`
	Deliveries     int        `json:"deliveries"`
}

type vehicleSeed struct {
	VehicleID     string   `json:"vehicle_id"`
	DisplayName   string   `json:"display_name"`
	CapacityLabel string   `json:"capacity_label"`
	CapacityKg    float64  `json:"capacity_kg"`
	CapacityCm3   float64  `json:"capacity_cm3"`
	DriverID      string   `json:"driver_id"`
	Equipment     []string `json:"equipment"`
}

type entrySeed struct {
	Vehicle vehicleSeed `json:"vehicle"`
	Plan    planSeed    `json:"plan"`
}

// LoadTable reads a vehicle table override from a JSON file. The file holds
// an array of vehicle/plan entries; the plan's vehicle id is taken from the
// vehicle, so entries do not repeat it.
func LoadTable(path string) (*domain.VehicleTable, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load vehicle table: read %q: %w", path, err)
	}

	var data []entrySeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load vehicle table: parse json: %w", err)
	}

	entries := make([]domain.TableEntry, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.Vehicle.VehicleID)
		if id == "" {
			return nil, fmt.Errorf("load vehicle table: entry %d: vehicle_id cannot be empty", i+1)
		}

		stops := make([]domain.Stop, 0, len(item.Plan.Stops))
		for j, s := range item.Plan.Stops {
			kind, err := parseStopKind(s.Kind)
			if err != nil {
				return nil, fmt.Errorf("load vehicle table: entry %d stop %d: %w", i+1, j+1, err)
			}
			stops = append(stops, domain.Stop{
				Label:       s.Label,
				ScheduledAt: s.ScheduledAt,
				Kind:        kind,
			})
		}

		entries = append(entries, domain.TableEntry{
			Vehicle: domain.Vehicle{
				VehicleID:     id,
				DisplayName:   item.Vehicle.DisplayName,
				CapacityLabel: item.Vehicle.CapacityLabel,
				CapacityKg:    item.Vehicle.CapacityKg,
				CapacityCm3:   item.Vehicle.CapacityCm3,
				DriverID:      item.Vehicle.DriverID,
				Equipment:     item.Vehicle.Equipment,
			},
			Plan: domain.Plan{
				VehicleID:      id,
				Stops:          stops,
				DistanceKm:     item.Plan.DistanceKm,
				EstimatedHours: item.Plan.EstimatedHours,
				FuelCost:       item.Plan.FuelCost,
				Deliveries:     item.Plan.Deliveries,
			},
		})
	}

	table, err := domain.NewVehicleTable(entries)
	if err != nil {
		return nil, fmt.Errorf("load vehicle table: %w", err)
	}

	return table, nil
}

// EncodeTable renders a vehicle table in the override file format, so a
// table loaded with LoadTable round-trips.
func EncodeTable(table *domain.VehicleTable) ([]byte, error) {
	vehicles := table.Vehicles()
	data := make([]entrySeed, 0, len(vehicles))

	for _, v := range vehicles {
		plan := table.SelectPlan(v.VehicleID)

		stops := make([]stopSeed, 0, len(plan.Stops))
		for _, s := range plan.Stops {
			stops = append(stops, stopSeed{
				Label:       s.Label,
				ScheduledAt: s.ScheduledAt,
				Kind:        string(s.Kind),
			})
		}

		data = append(data, entrySeed{
			Vehicle: vehicleSeed{
				VehicleID:     v.VehicleID,
				DisplayName:   v.DisplayName,
				CapacityLabel: v.CapacityLabel,
				CapacityKg:    v.CapacityKg,
				CapacityCm3:   v.CapacityCm3,
				DriverID:      v.DriverID,
				Equipment:     v.Equipment,
			},
			Plan: planSeed{
				Stops:          stops,
				DistanceKm:     plan.DistanceKm,
				EstimatedHours: plan.EstimatedHours,
				FuelCost:       plan.FuelCost,
				Deliveries:     plan.Deliveries,
			},
		})
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode vehicle table: %w", err)
	}
	return out, nil
}

func parseStopKind(s string) (domain.StopKind, error) {
	switch domain.StopKind(s) {
	case domain.StopKindDepot:
		return domain.StopKindDepot, nil
	case domain.StopKindDelivery:
		return domain.StopKindDelivery, nil
	}
	return "", fmt.Errorf("unknown stop kind %q", s)
}
