package ports

import "delivery-dashboard-service/internal/domain"

// Port: maps a vehicle identifier to its predefined delivery plan.
// Implementations must be total: any string is a valid input, identifiers
// outside the known table yield the empty plan, and the call never blocks,
// errors, or panics. Safe for concurrent use.
type PlanSelector interface {
	// Return the predefined plan for the vehicle identifier.
	SelectPlan(vehicleID string) domain.Plan
}
