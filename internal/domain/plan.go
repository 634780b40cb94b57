package domain

// Marks a stop as a depot visit or a customer delivery.
type StopKind string

const (
	StopKindDepot    StopKind = "depot"
	StopKindDelivery StopKind = "delivery"
)

// Represents a single stop in a vehicle's delivery plan.
// A Stop pairs a display label (place name or depot marker) with the
// scheduled wall-clock time the dashboard renders. The time is kept as
// the original "HH:MM" display string rather than a timestamp.
type Stop struct {
	Label       string
	ScheduledAt string
	Kind        StopKind
}

// Represents the predefined delivery plan for a single vehicle.
// A Plan is fixed reference data, not the output of a routing algorithm:
// the ordered stop sequence and its summary metrics are looked up from the
// known vehicle table, never computed from geography. It is immutable
// planning data and contains no side effects.
type Plan struct {
	VehicleID      string
	Stops          []Stop
	DistanceKm     float64
	EstimatedHours float64
	FuelCost       int
	Deliveries     int
}

// The defined result for vehicle identifiers outside the known table:
// zero stops and zero metrics. It renders like any other plan.
func EmptyPlan(vehicleID string) Plan {
	return Plan{VehicleID: vehicleID, Stops: []Stop{}}
}

// IsEmpty reports whether the plan carries no stops.
func (p Plan) IsEmpty() bool { return len(p.Stops) == 0 }
