package domain

// Cargo bay zones. FRONT sits by the door for easy access; BACK is the
// deepest section of the bay.
type LoadingZone string

const (
	ZoneFront  LoadingZone = "FRONT"
	ZoneMiddle LoadingZone = "MIDDLE"
	ZoneBack   LoadingZone = "BACK"
)

// Per-package handling guidance attached to a loading instruction.
type PackageHandling struct {
	PackageID string
	WeightKg  float64
	Size      PackageSize
	Notes     []string
}

// One step of a vehicle loading sequence: which order goes in next, where
// it sits in the cargo bay, and what care its packages need.
type LoadingInstruction struct {
	Sequence            int
	OrderID             string
	CustomerID          string
	Address             string
	Priority            Priority
	Zone                LoadingZone
	Packages            []PackageHandling
	WeightKg            float64
	VolumeCm3           float64
	CumulativeWeightKg  float64
	CumulativeVolumeCm3 float64
	SpecialInstructions string
}

// The loading sequence and utilization summary for one vehicle.
// SpecialNotes carries one line per order that needs special handling.
type VehicleLoadingPlan struct {
	VehicleID            string
	DriverID             string
	Orders               int
	TotalWeightKg        float64
	TotalVolumeCm3       float64
	WeightUtilizationPct float64
	VolumeUtilizationPct float64
	Sequence             []LoadingInstruction
	SpecialNotes         []string
}

// Counts and rates summarizing one master loading plan.
type LoadingSummary struct {
	TotalOrders       int
	AssignedOrders    int
	UnassignedOrders  int
	AssignmentRatePct float64
	VehiclesUsed      int
	VehiclesAvailable int
}

// Fleet-wide utilization and balance figures for a master loading plan.
type LoadingMetrics struct {
	FleetWeightUtilizationPct float64
	FleetVolumeUtilizationPct float64
	PriorityDistribution      map[Priority]int
	LoadBalanceScore          float64
}

// The complete result of planning one dispatch run: per-vehicle loading
// sequences, the orders no vehicle could take, and fleet-level metrics.
type MasterLoadingPlan struct {
	Summary            LoadingSummary
	Assignments        []VehicleLoadingPlan
	UnassignedOrderIDs []string
	Metrics            LoadingMetrics
}
