package domain

import "testing"

func TestVehicleCanCarry(t *testing.T) {
	vehicle := Vehicle{
		VehicleID:   "VEH_1",
		CapacityKg:  100,
		CapacityCm3: 500000,
		Equipment:   []string{EquipmentFragileHandling},
	}

	plain := DeliveryOrder{Packages: []Package{
		{PackageID: "P1", WeightKg: 40, LengthCm: 40, WidthCm: 40, HeightCm: 40},
	}}
	if !vehicle.CanCarry(plain) {
		t.Error("expected plain order to fit")
	}

	heavy := DeliveryOrder{Packages: []Package{
		{PackageID: "P1", WeightKg: 120, LengthCm: 10, WidthCm: 10, HeightCm: 10},
	}}
	if vehicle.CanCarry(heavy) {
		t.Error("order over the weight rating was accepted")
	}

	bulky := DeliveryOrder{Packages: []Package{
		{PackageID: "P1", WeightKg: 10, LengthCm: 100, WidthCm: 100, HeightCm: 100},
	}}
	if vehicle.CanCarry(bulky) {
		t.Error("order over the volume rating was accepted")
	}

	fragile := DeliveryOrder{Packages: []Package{
		{PackageID: "P1", WeightKg: 10, LengthCm: 20, WidthCm: 20, HeightCm: 20, Fragile: true},
	}}
	if !vehicle.CanCarry(fragile) {
		t.Error("fragile order refused despite fragile handling equipment")
	}

	chilled := DeliveryOrder{Packages: []Package{
		{PackageID: "P1", WeightKg: 10, LengthCm: 20, WidthCm: 20, HeightCm: 20, TemperatureSensitive: true},
	}}
	if vehicle.CanCarry(chilled) {
		t.Error("temperature-sensitive order accepted without refrigeration")
	}

	hazmat := DeliveryOrder{Packages: []Package{
		{PackageID: "P1", WeightKg: 10, LengthCm: 20, WidthCm: 20, HeightCm: 20, Hazardous: true},
	}}
	if vehicle.CanCarry(hazmat) {
		t.Error("hazardous order accepted without hazardous handling")
	}
}

func TestVehicleHasEquipment(t *testing.T) {
	vehicle := Vehicle{Equipment: []string{EquipmentRefrigeration, EquipmentFragileHandling}}
	if !vehicle.HasEquipment(EquipmentRefrigeration) {
		t.Error("expected refrigeration")
	}
	if vehicle.HasEquipment(EquipmentHazardousHandling) {
		t.Error("unexpected hazardous handling")
	}
}
