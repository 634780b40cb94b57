package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const validTableJSON = `[
  {
    "vehicle": {
      "vehicle_id": "VEH_100",
      "display_name": "Test Truck",
      "capacity_label": "800 kg",
      "capacity_kg": 800,
      "capacity_cm3": 8000000,
      "driver_id": "DRV_100",
      "equipment": ["fragile_handling"]
    },
    "plan": {
      "stops": [
        {"label": "Depot", "scheduled_at": "07:30", "kind": "depot"},
        {"label": "Riverside", "scheduled_at": "08:10", "kind": "delivery"},
        {"label": "Depot", "scheduled_at": "09:00", "kind": "depot"}
      ],
      "distance_km": 18.4,
      "estimated_hours": 1.5,
      "fuel_cost": 140,
      "deliveries": 1
    }
  }
]`

func writeTableFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fleet.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadTable(t *testing.T) {
	table, err := LoadTable(writeTableFile(t, validTableJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plan := table.SelectPlan("VEH_100")
	if plan.IsEmpty() {
		t.Fatal("loaded vehicle not selectable")
	}
	if plan.DistanceKm != 18.4 || plan.FuelCost != 140 || plan.Deliveries != 1 {
		t.Errorf("plan metrics = %+v", plan)
	}
	if len(plan.Stops) != 3 || plan.Stops[1].Label != "Riverside" {
		t.Errorf("stops = %+v", plan.Stops)
	}

	vehicles := table.Vehicles()
	if len(vehicles) != 1 || vehicles[0].DisplayName != "Test Truck" {
		t.Errorf("vehicles = %+v", vehicles)
	}
}

func TestEncodeTableRoundTrip(t *testing.T) {
	table, err := DefaultTable()
	if err != nil {
		t.Fatalf("default table: %v", err)
	}

	encoded, err := EncodeTable(table)
	if err != nil {
		t.Fatalf("encode table: %v", err)
	}

	reloaded, err := LoadTable(writeTableFile(t, string(encoded)))
	if err != nil {
		t.Fatalf("reload encoded table: %v", err)
	}

	if reloaded.Len() != table.Len() {
		t.Fatalf("reloaded %d vehicles, want %d", reloaded.Len(), table.Len())
	}
	for _, v := range table.Vehicles() {
		want := table.SelectPlan(v.VehicleID)
		got := reloaded.SelectPlan(v.VehicleID)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("plan for %s changed across round trip:\ngot  %+v\nwant %+v", v.VehicleID, got, want)
		}
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestLoadTableBadJSON(t *testing.T) {
	if _, err := LoadTable(writeTableFile(t, "{not json")); err == nil {
		t.Error("expected error for malformed json")
	}
}

func TestLoadTableBlankVehicleID(t *testing.T) {
	contents := `[{"vehicle": {"vehicle_id": "  "}, "plan": {"stops": []}}]`
	if _, err := LoadTable(writeTableFile(t, contents)); err == nil {
		t.Error("expected error for a blank vehicle id")
	}
}

func TestLoadTableBadStopKind(t *testing.T) {
	contents := `[
	  {
	    "vehicle": {"vehicle_id": "VEH_100"},
	    "plan": {"stops": [{"label": "Depot", "scheduled_at": "07:30", "kind": "warehouse"}]}
	  }
	]`
	if _, err := LoadTable(writeTableFile(t, contents)); err == nil {
		t.Error("expected error for an unknown stop kind")
	}
}

func TestLoadTableRejectsInconsistentPlan(t *testing.T) {
	// deliveries declares 2 but the route has a single delivery stop
	contents := `[
	  {
	    "vehicle": {"vehicle_id": "VEH_100"},
	    "plan": {
	      "stops": [
	        {"label": "Depot", "scheduled_at": "07:30", "kind": "depot"},
	        {"label": "Riverside", "scheduled_at": "08:10", "kind": "delivery"},
	        {"label": "Depot", "scheduled_at": "09:00", "kind": "depot"}
	      ],
	      "deliveries": 2
	    }
	  }
	]`
	if _, err := LoadTable(writeTableFile(t, contents)); err == nil {
		t.Error("expected error for a delivery count mismatch")
	}
}
