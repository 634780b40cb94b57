package domain

import (
	"errors"
	"fmt"
)

// One row of the known vehicle table: a vehicle and its predefined plan.
type TableEntry struct {
	Vehicle Vehicle
	Plan    Plan
}

// The known vehicle table: the fixed reference set of vehicles and their
// precomputed plans. A table is validated at construction and never
// mutated afterwards, so lookups need no coordination between goroutines.
type VehicleTable struct {
	vehicles []Vehicle
	plans    map[string]Plan
}

// Build a VehicleTable from entries, keeping entry order for enumeration.
func NewVehicleTable(entries []TableEntry) (*VehicleTable, error) {
	t := &VehicleTable{plans: make(map[string]Plan, len(entries))}
	for i, e := range entries {
		if e.Vehicle.VehicleID == "" {
			return nil, fmt.Errorf("vehicle table: entry %d has a blank vehicle id", i)
		}
		if _, ok := t.plans[e.Vehicle.VehicleID]; ok {
			return nil, fmt.Errorf("vehicle table: duplicate vehicle id %q", e.Vehicle.VehicleID)
		}
		if err := validatePlan(e.Vehicle.VehicleID, e.Plan); err != nil {
			return nil, fmt.Errorf("vehicle table: vehicle %q: %w", e.Vehicle.VehicleID, err)
		}
		t.vehicles = append(t.vehicles, e.Vehicle)
		t.plans[e.Vehicle.VehicleID] = e.Plan
	}
	return t, nil
}

func validatePlan(vehicleID string, plan Plan) error {
	if plan.VehicleID != vehicleID {
		return fmt.Errorf("plan belongs to vehicle %q", plan.VehicleID)
	}
	if plan.DistanceKm < 0 || plan.EstimatedHours < 0 || plan.FuelCost < 0 || plan.Deliveries < 0 {
		return errors.New("plan has negative metrics")
	}
	deliveries := 0
	for _, s := range plan.Stops {
		if s.Kind == StopKindDelivery {
			deliveries++
		}
	}
	if deliveries != plan.Deliveries {
		return fmt.Errorf("plan declares %d deliveries but has %d delivery stops", plan.Deliveries, deliveries)
	}
	if n := len(plan.Stops); n > 0 {
		if n < 2 || plan.Stops[0].Kind != StopKindDepot || plan.Stops[n-1].Kind != StopKindDepot {
			return errors.New("route must start and end at the depot")
		}
	}
	return nil
}

// Vehicles returns the known vehicles in table order.
// The returned slice is the caller's to keep.
func (t *VehicleTable) Vehicles() []Vehicle {
	out := make([]Vehicle, len(t.vehicles))
	copy(out, t.vehicles)
	return out
}

// Len returns the number of vehicles in the table.
func (t *VehicleTable) Len() int { return len(t.vehicles) }

// SelectPlan maps a vehicle identifier to its predefined plan. Identifiers
// outside the table, the empty string included, yield the empty plan for
// that identifier: selection is total and never fails. Each call returns a
// plan owning its own stop slice, so repeated and concurrent calls cannot
// observe one another.
func (t *VehicleTable) SelectPlan(vehicleID string) Plan {
	plan, ok := t.plans[vehicleID]
	if !ok {
		return EmptyPlan(vehicleID)
	}
	stops := make([]Stop, len(plan.Stops))
	copy(stops, plan.Stops)
	plan.Stops = stops
	return plan
}
