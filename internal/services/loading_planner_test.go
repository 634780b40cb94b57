package services

import (
	"delivery-dashboard-service/internal/domain"
	"strings"
	"testing"
	"time"
)

func testFleet() []domain.Vehicle {
	return []domain.Vehicle{
		{
			VehicleID: "VEH_001", DriverID: "DRV_001",
			CapacityKg: 1000, CapacityCm3: 10000000,
			Equipment: []string{domain.EquipmentFragileHandling, domain.EquipmentRefrigeration},
		},
		{
			VehicleID: "VEH_002", DriverID: "DRV_002",
			CapacityKg: 750, CapacityCm3: 7500000,
			Equipment: []string{domain.EquipmentFragileHandling},
		},
		{
			VehicleID: "VEH_003", DriverID: "DRV_003",
			CapacityKg: 500, CapacityCm3: 5000000,
			Equipment: []string{domain.EquipmentHazardousHandling},
		},
	}
}

func plainOrder(id string, priority domain.Priority, weightKg float64) domain.DeliveryOrder {
	return domain.DeliveryOrder{
		OrderID:    id,
		CustomerID: "CUST_" + id,
		Priority:   priority,
		Packages: []domain.Package{
			{PackageID: id + "_P1", WeightKg: weightKg, LengthCm: 100, WidthCm: 100, HeightCm: 100},
		},
	}
}

func TestPlanLoadingAssignsByUrgencyAndCapacity(t *testing.T) {
	urgent := plainOrder("ORD_URG", domain.PriorityUrgent, 900)
	big := plainOrder("ORD_BIG", domain.PriorityHigh, 600)
	cold := plainOrder("ORD_COLD", domain.PriorityNormal, 10)
	cold.Packages[0].TemperatureSensitive = true
	hazmat := plainOrder("ORD_HAZ", domain.PriorityNormal, 50)
	hazmat.Packages[0].Hazardous = true
	leftover := plainOrder("ORD_NONE", domain.PriorityNormal, 600)

	plan, err := PlanLoading(testFleet(), []domain.DeliveryOrder{leftover, hazmat, cold, big, urgent})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := plan.Summary
	if s.TotalOrders != 5 || s.AssignedOrders != 4 || s.UnassignedOrders != 1 {
		t.Fatalf("summary counts = %+v, want 5/4/1", s)
	}
	if s.AssignmentRatePct != 80 {
		t.Errorf("assignment rate = %v, want 80", s.AssignmentRatePct)
	}
	if s.VehiclesUsed != 3 || s.VehiclesAvailable != 3 {
		t.Errorf("vehicle counts = %+v, want 3 used of 3", s)
	}

	if len(plan.UnassignedOrderIDs) != 1 || plan.UnassignedOrderIDs[0] != "ORD_NONE" {
		t.Fatalf("unassigned = %v, want [ORD_NONE]", plan.UnassignedOrderIDs)
	}

	if len(plan.Assignments) != 3 {
		t.Fatalf("expected 3 vehicle plans, got %d", len(plan.Assignments))
	}

	// Assignments come back in capacity order, largest vehicle first.
	byVehicle := map[string]domain.VehicleLoadingPlan{}
	for i, vp := range plan.Assignments {
		byVehicle[vp.VehicleID] = vp
		want := []string{"VEH_001", "VEH_002", "VEH_003"}[i]
		if vp.VehicleID != want {
			t.Errorf("assignment %d is %s, want %s", i, vp.VehicleID, want)
		}
	}

	if got := byVehicle["VEH_001"].TotalWeightKg; got != 910 {
		t.Errorf("VEH_001 weight = %v, want 910 (urgent + refrigerated)", got)
	}
	if got := byVehicle["VEH_001"].WeightUtilizationPct; got != 91 {
		t.Errorf("VEH_001 weight utilization = %v, want 91", got)
	}
	if got := byVehicle["VEH_002"].WeightUtilizationPct; got != 80 {
		t.Errorf("VEH_002 weight utilization = %v, want 80", got)
	}
	if got := byVehicle["VEH_003"].Sequence; len(got) != 1 || got[0].OrderID != "ORD_HAZ" {
		t.Errorf("VEH_003 should carry only the hazardous order, got %+v", got)
	}

	m := plan.Metrics
	if m.PriorityDistribution[domain.PriorityUrgent] != 1 ||
		m.PriorityDistribution[domain.PriorityHigh] != 1 ||
		m.PriorityDistribution[domain.PriorityNormal] != 2 {
		t.Errorf("priority distribution = %v", m.PriorityDistribution)
	}
	if m.LoadBalanceScore <= 0 || m.LoadBalanceScore >= 100 {
		t.Errorf("balance score = %v, want strictly between 0 and 100 for a skewed load", m.LoadBalanceScore)
	}
}

func TestPlanLoadingRejectsBadInput(t *testing.T) {
	orders := []domain.DeliveryOrder{plainOrder("ORD_1", domain.PriorityNormal, 10)}

	if _, err := PlanLoading(nil, orders); err == nil {
		t.Error("expected error for empty vehicle list")
	}

	dup := []domain.DeliveryOrder{
		plainOrder("ORD_1", domain.PriorityNormal, 10),
		plainOrder("ORD_1", domain.PriorityLow, 5),
	}
	if _, err := PlanLoading(testFleet(), dup); err == nil {
		t.Error("expected error for duplicate order ids")
	}

	blank := []domain.DeliveryOrder{plainOrder("", domain.PriorityNormal, 10)}
	if _, err := PlanLoading(testFleet(), blank); err == nil {
		t.Error("expected error for blank order id")
	}
}

func TestPlanLoadingNoOrders(t *testing.T) {
	plan, err := PlanLoading(testFleet(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Summary.TotalOrders != 0 || plan.Summary.AssignmentRatePct != 0 {
		t.Errorf("summary = %+v, want zeros", plan.Summary)
	}
	if len(plan.Assignments) != 0 || len(plan.UnassignedOrderIDs) != 0 {
		t.Errorf("expected no assignments, got %+v", plan)
	}
}

func TestBuildLoadingPlanSequenceAndZones(t *testing.T) {
	deadline := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	orders := make([]domain.DeliveryOrder, 0, 6)
	weights := []float64{5, 40, 15, 30, 10, 25}
	for i, w := range weights {
		order := plainOrder("ORD_"+string(rune('A'+i)), domain.PriorityNormal, w)
		order.WindowEnd = deadline
		orders = append(orders, order)
	}
	// One fragile, heavy, oversized package to exercise the manifest notes.
	orders[1].Packages[0].Fragile = true
	orders[1].Packages[0].LengthCm = 120
	orders[1].SpecialInstructions = "Ring the bell twice"

	vehicle := testFleet()[0]
	plan := BuildLoadingPlan(vehicle, orders)

	if plan.VehicleID != "VEH_001" || plan.DriverID != "DRV_001" {
		t.Fatalf("plan header = %s/%s", plan.VehicleID, plan.DriverID)
	}
	if plan.Orders != 6 || len(plan.Sequence) != 6 {
		t.Fatalf("expected 6 sequence steps, got %d", len(plan.Sequence))
	}

	// Same priority and deadline everywhere, so weight decides: heaviest first.
	wantOrder := []string{"ORD_B", "ORD_D", "ORD_F", "ORD_C", "ORD_E", "ORD_A"}
	wantZones := []domain.LoadingZone{
		domain.ZoneBack, domain.ZoneBack,
		domain.ZoneMiddle, domain.ZoneMiddle,
		domain.ZoneFront, domain.ZoneFront,
	}
	var cum float64
	for i, step := range plan.Sequence {
		if step.Sequence != i+1 {
			t.Errorf("step %d numbered %d", i, step.Sequence)
		}
		if step.OrderID != wantOrder[i] {
			t.Errorf("step %d order = %s, want %s", i, step.OrderID, wantOrder[i])
		}
		if step.Zone != wantZones[i] {
			t.Errorf("step %d zone = %s, want %s", i, step.Zone, wantZones[i])
		}
		cum += step.WeightKg
		if step.CumulativeWeightKg != cum {
			t.Errorf("step %d cumulative weight = %v, want %v", i, step.CumulativeWeightKg, cum)
		}
	}

	if plan.TotalWeightKg != 125 {
		t.Errorf("total weight = %v, want 125", plan.TotalWeightKg)
	}
	if plan.WeightUtilizationPct != 12.5 {
		t.Errorf("weight utilization = %v, want 12.5", plan.WeightUtilizationPct)
	}

	first := plan.Sequence[0]
	if first.SpecialInstructions != "Ring the bell twice" {
		t.Errorf("special instructions lost: %+v", first)
	}
	notes := first.Packages[0].Notes
	joined := strings.Join(notes, "|")
	for _, want := range []string{
		"FRAGILE - Handle with care",
		"HEAVY - Use proper lifting technique",
		"OVERSIZED - May require team lift",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("manifest notes missing %q: %v", want, notes)
		}
	}

	if len(plan.SpecialNotes) != 1 || plan.SpecialNotes[0] != "Order ORD_B: Contains fragile items" {
		t.Errorf("special notes = %v", plan.SpecialNotes)
	}
}

func TestZoneForPosition(t *testing.T) {
	if z := zoneForPosition(0, 1); z != domain.ZoneFront {
		t.Errorf("single order loads FRONT, got %s", z)
	}
	if z := zoneForPosition(0, 2); z != domain.ZoneMiddle {
		t.Errorf("first of two loads MIDDLE, got %s", z)
	}
	if z := zoneForPosition(1, 2); z != domain.ZoneFront {
		t.Errorf("second of two loads FRONT, got %s", z)
	}
}

func TestLoadBalanceScore(t *testing.T) {
	if got := loadBalanceScore([]float64{0.8, 0.8, 0.8}); got != 100 {
		t.Errorf("even load scored %v, want 100", got)
	}
	if got := loadBalanceScore([]float64{0.9}); got != 100 {
		t.Errorf("single vehicle scored %v, want 100", got)
	}
	if got := loadBalanceScore([]float64{0.05, 0.95}); got >= 60 {
		t.Errorf("skewed load scored %v, want well under 100", got)
	}
}
