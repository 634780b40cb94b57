package services

import (
	"delivery-dashboard-service/internal/domain"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Running totals for one vehicle while orders are being assigned.
type vehicleLoad struct {
	vehicle   domain.Vehicle
	orders    []domain.DeliveryOrder
	weightKg  float64
	volumeCm3 float64
}

func (l *vehicleLoad) fits(order domain.DeliveryOrder) bool {
	if !l.vehicle.CanCarry(order) {
		return false
	}
	return l.weightKg+order.TotalWeightKg() <= l.vehicle.CapacityKg &&
		l.volumeCm3+order.TotalVolumeCm3() <= l.vehicle.CapacityCm3
}

// PlanLoading builds the master loading plan for one dispatch run.
//
// Orders are taken in urgency order and assigned first-fit across vehicles
// sorted by rated capacity, largest first, so bulky urgent orders find room
// while smaller vehicles stay free for the remainder. Orders no vehicle can
// take are reported as unassigned rather than failing the run. This is a
// planning shortcut intended for predictable dispatch behavior, not a
// bin-packing solver.
func PlanLoading(vehicles []domain.Vehicle, orders []domain.DeliveryOrder) (*domain.MasterLoadingPlan, error) {
	if len(vehicles) == 0 {
		return nil, errors.New("plan loading: vehicle list must not be empty")
	}

	seen := make(map[string]struct{}, len(orders))
	for _, order := range orders {
		if order.OrderID == "" {
			return nil, errors.New("plan loading: order with a blank order id")
		}
		if _, ok := seen[order.OrderID]; ok {
			return nil, fmt.Errorf("plan loading: duplicate order id %q", order.OrderID)
		}
		seen[order.OrderID] = struct{}{}
	}

	loads := make([]*vehicleLoad, 0, len(vehicles))
	for _, v := range vehicles {
		loads = append(loads, &vehicleLoad{vehicle: v})
	}
	slices.SortFunc(loads, func(a, b *vehicleLoad) int {
		if a.vehicle.CapacityKg != b.vehicle.CapacityKg {
			if a.vehicle.CapacityKg > b.vehicle.CapacityKg {
				return -1
			}
			return 1
		}
		// Tie-breaker keeps assignment deterministic for equal capacities.
		return strings.Compare(a.vehicle.VehicleID, b.vehicle.VehicleID)
	})

	queue := make([]domain.DeliveryOrder, len(orders))
	copy(queue, orders)
	slices.SortFunc(queue, compareByUrgency)

	unassigned := []string{}
	for _, order := range queue {
		placed := false
		for _, load := range loads {
			if !load.fits(order) {
				continue
			}
			load.orders = append(load.orders, order)
			load.weightKg += order.TotalWeightKg()
			load.volumeCm3 += order.TotalVolumeCm3()
			placed = true
			break
		}
		if !placed {
			unassigned = append(unassigned, order.OrderID)
		}
	}

	plan := &domain.MasterLoadingPlan{
		Assignments:        []domain.VehicleLoadingPlan{},
		UnassignedOrderIDs: unassigned,
	}
	for _, load := range loads {
		if len(load.orders) == 0 {
			continue
		}
		plan.Assignments = append(plan.Assignments, BuildLoadingPlan(load.vehicle, load.orders))
	}

	assigned := len(orders) - len(unassigned)
	rate := 0.0
	if len(orders) > 0 {
		rate = float64(assigned) / float64(len(orders)) * 100
	}
	plan.Summary = domain.LoadingSummary{
		TotalOrders:       len(orders),
		AssignedOrders:    assigned,
		UnassignedOrders:  len(unassigned),
		AssignmentRatePct: rate,
		VehiclesUsed:      len(plan.Assignments),
		VehiclesAvailable: len(vehicles),
	}
	plan.Metrics = loadingMetrics(loads)

	return plan, nil
}

// BuildLoadingPlan produces the loading sequence for the orders already
// assigned to one vehicle. The sequence runs in urgency order and positions
// map to cargo zones by thirds: the final third loads in FRONT by the door
// for easy access, the first third sits deepest in BACK.
func BuildLoadingPlan(vehicle domain.Vehicle, orders []domain.DeliveryOrder) domain.VehicleLoadingPlan {
	queue := make([]domain.DeliveryOrder, len(orders))
	copy(queue, orders)
	slices.SortFunc(queue, compareForLoading)

	plan := domain.VehicleLoadingPlan{
		VehicleID:    vehicle.VehicleID,
		DriverID:     vehicle.DriverID,
		Orders:       len(queue),
		Sequence:     make([]domain.LoadingInstruction, 0, len(queue)),
		SpecialNotes: []string{},
	}

	var cumWeight, cumVolume float64
	for i, order := range queue {
		cumWeight += order.TotalWeightKg()
		cumVolume += order.TotalVolumeCm3()

		instruction := domain.LoadingInstruction{
			Sequence:            i + 1,
			OrderID:             order.OrderID,
			CustomerID:          order.CustomerID,
			Address:             order.Address,
			Priority:            order.Priority,
			Zone:                zoneForPosition(i, len(queue)),
			Packages:            make([]domain.PackageHandling, 0, len(order.Packages)),
			WeightKg:            order.TotalWeightKg(),
			VolumeCm3:           order.TotalVolumeCm3(),
			CumulativeWeightKg:  cumWeight,
			CumulativeVolumeCm3: cumVolume,
			SpecialInstructions: order.SpecialInstructions,
		}
		for _, pkg := range order.Packages {
			instruction.Packages = append(instruction.Packages, domain.PackageHandling{
				PackageID: pkg.PackageID,
				WeightKg:  pkg.WeightKg,
				Size:      pkg.SizeCategory(),
				Notes:     handlingNotes(pkg),
			})
		}
		plan.Sequence = append(plan.Sequence, instruction)

		if order.RequiresSpecialHandling() {
			plan.SpecialNotes = append(plan.SpecialNotes,
				fmt.Sprintf("Order %s: %s", order.OrderID, specialHandlingNote(order)))
		}
	}

	plan.TotalWeightKg = cumWeight
	plan.TotalVolumeCm3 = cumVolume
	if vehicle.CapacityKg > 0 {
		plan.WeightUtilizationPct = cumWeight / vehicle.CapacityKg * 100
	}
	if vehicle.CapacityCm3 > 0 {
		plan.VolumeUtilizationPct = cumVolume / vehicle.CapacityCm3 * 100
	}

	return plan
}

// compareByUrgency orders the assignment queue: priority class first, then
// earlier delivery deadline, with order id as the deterministic final key.
func compareByUrgency(a, b domain.DeliveryOrder) int {
	if a.Priority != b.Priority {
		return int(a.Priority) - int(b.Priority)
	}
	if !a.WindowEnd.Equal(b.WindowEnd) {
		if a.WindowEnd.Before(b.WindowEnd) {
			return -1
		}
		return 1
	}
	return strings.Compare(a.OrderID, b.OrderID)
}

// compareForLoading orders a vehicle's loading sequence: urgency keys
// first, then heavier orders earlier, then simpler handling earlier, with
// order id again as the deterministic final key.
func compareForLoading(a, b domain.DeliveryOrder) int {
	if a.Priority != b.Priority {
		return int(a.Priority) - int(b.Priority)
	}
	if !a.WindowEnd.Equal(b.WindowEnd) {
		if a.WindowEnd.Before(b.WindowEnd) {
			return -1
		}
		return 1
	}
	if aw, bw := a.TotalWeightKg(), b.TotalWeightKg(); aw != bw {
		if aw > bw {
			return -1
		}
		return 1
	}
	if ac, bc := a.HandlingComplexity(), b.HandlingComplexity(); ac != bc {
		return ac - bc
	}
	return strings.Compare(a.OrderID, b.OrderID)
}

// zoneForPosition maps a zero-based sequence position to a cargo zone by
// thirds of the full sequence.
func zoneForPosition(position, total int) domain.LoadingZone {
	switch {
	case position >= total*2/3:
		return domain.ZoneFront
	case position >= total/3:
		return domain.ZoneMiddle
	default:
		return domain.ZoneBack
	}
}

// handlingNotes lists the care a single package needs on the manifest.
func handlingNotes(pkg domain.Package) []string {
	notes := []string{}
	if pkg.Fragile {
		notes = append(notes, "FRAGILE - Handle with care")
	}
	if pkg.TemperatureSensitive {
		notes = append(notes, "TEMPERATURE SENSITIVE - Keep cool")
	}
	if pkg.Hazardous {
		notes = append(notes, "HAZARDOUS - Follow safety protocols")
	}
	if pkg.WeightKg > 20 {
		notes = append(notes, "HEAVY - Use proper lifting technique")
	}
	if pkg.MaxDimensionCm() > 100 {
		notes = append(notes, "OVERSIZED - May require team lift")
	}
	return notes
}

// specialHandlingNote summarizes an order's handling needs on one line,
// deduplicated in first-seen order.
func specialHandlingNote(order domain.DeliveryOrder) string {
	seen := make(map[string]struct{}, 3)
	notes := []string{}
	add := func(note string) {
		if _, ok := seen[note]; ok {
			return
		}
		seen[note] = struct{}{}
		notes = append(notes, note)
	}
	for _, pkg := range order.Packages {
		if pkg.Fragile {
			add("Contains fragile items")
		}
		if pkg.TemperatureSensitive {
			add("Requires temperature control")
		}
		if pkg.Hazardous {
			add("Contains hazardous materials")
		}
	}
	return strings.Join(notes, "; ")
}

// loadingMetrics derives fleet-level figures over the vehicles that
// actually received orders.
func loadingMetrics(loads []*vehicleLoad) domain.LoadingMetrics {
	metrics := domain.LoadingMetrics{
		PriorityDistribution: make(map[domain.Priority]int),
	}

	var capWeight, capVolume, usedWeight, usedVolume float64
	utilizations := []float64{}
	for _, load := range loads {
		if len(load.orders) == 0 {
			continue
		}
		capWeight += load.vehicle.CapacityKg
		capVolume += load.vehicle.CapacityCm3
		usedWeight += load.weightKg
		usedVolume += load.volumeCm3
		if load.vehicle.CapacityKg > 0 {
			utilizations = append(utilizations, load.weightKg/load.vehicle.CapacityKg)
		}
		for _, order := range load.orders {
			metrics.PriorityDistribution[order.Priority]++
		}
	}

	if capWeight > 0 {
		metrics.FleetWeightUtilizationPct = usedWeight / capWeight * 100
	}
	if capVolume > 0 {
		metrics.FleetVolumeUtilizationPct = usedVolume / capVolume * 100
	}
	metrics.LoadBalanceScore = loadBalanceScore(utilizations)

	return metrics
}

// loadBalanceScore rates how evenly weight utilization spreads across the
// loaded vehicles: 100 is perfect balance, 0 is badly skewed. Fewer than
// two loaded vehicles always score 100.
func loadBalanceScore(utilizations []float64) float64 {
	if len(utilizations) < 2 {
		return 100
	}
	mean := stat.Mean(utilizations, nil)
	if mean <= 0 {
		return 100
	}
	cv := stat.PopStdDev(utilizations, nil) / mean
	score := 100 - cv*100
	if score < 0 {
		return 0
	}
	return score
}
