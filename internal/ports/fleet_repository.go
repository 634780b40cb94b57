package ports

import (
	"context"
	"delivery-dashboard-service/internal/domain"
)

// Port: a boundary for enumerating the known vehicle fleet.
type FleetRepository interface {
	// Retrieve all known vehicles in stable table order.
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
}
