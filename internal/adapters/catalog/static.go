package catalog

import (
	"context"
	"delivery-dashboard-service/internal/domain"
	"errors"
	"fmt"
)

// In-memory implementation of the FleetRepository and PlanSelector ports,
// backed by the known vehicle table.
type Catalog struct {
	table *domain.VehicleTable
}

func New(table *domain.VehicleTable) *Catalog {
	return &Catalog{table: table}
}

// Default builds the catalog from the built-in vehicle table.
func Default() (*Catalog, error) {
	table, err := DefaultTable()
	if err != nil {
		return nil, err
	}
	return New(table), nil
}

// DefaultTable builds the built-in vehicle table.
func DefaultTable() (*domain.VehicleTable, error) {
	table, err := domain.NewVehicleTable(defaultEntries())
	if err != nil {
		return nil, fmt.Errorf("default catalog: %w", err)
	}
	return table, nil
}

// Return all known vehicles in table order.
func (c *Catalog) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	if c.table == nil {
		return nil, errors.New("catalog: vehicle table is nil")
	}
	return c.table.Vehicles(), nil
}

// Return the predefined plan for the vehicle identifier. A nil table
// behaves as an empty one, so selection stays total.
func (c *Catalog) SelectPlan(vehicleID string) domain.Plan {
	if c.table == nil {
		return domain.EmptyPlan(vehicleID)
	}
	return c.table.SelectPlan(vehicleID)
}

// Len returns the number of known vehicles.
func (c *Catalog) Len() int {
	if c.table == nil {
		return 0
	}
	return c.table.Len()
}
