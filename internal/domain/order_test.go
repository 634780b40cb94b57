package domain

import "testing"

func TestPackageSizeCategory(t *testing.T) {
	cases := []struct {
		pkg  Package
		want PackageSize
	}{
		{Package{WeightKg: 0.5, LengthCm: 20, WidthCm: 15, HeightCm: 10}, SizeSmall},
		{Package{WeightKg: 0.5, LengthCm: 35, WidthCm: 15, HeightCm: 10}, SizeMedium},
		{Package{WeightKg: 3, LengthCm: 40, WidthCm: 30, HeightCm: 20}, SizeMedium},
		{Package{WeightKg: 12, LengthCm: 80, WidthCm: 40, HeightCm: 40}, SizeLarge},
		{Package{WeightKg: 25, LengthCm: 80, WidthCm: 40, HeightCm: 40}, SizeExtraLarge},
		{Package{WeightKg: 3, LengthCm: 120, WidthCm: 30, HeightCm: 20}, SizeExtraLarge},
	}

	for _, c := range cases {
		if got := c.pkg.SizeCategory(); got != c.want {
			t.Errorf("size of %.1f kg / %.0f cm = %q, want %q",
				c.pkg.WeightKg, c.pkg.MaxDimensionCm(), got, c.want)
		}
	}
}

func TestOrderTotals(t *testing.T) {
	order := DeliveryOrder{
		OrderID: "ORD_1",
		Packages: []Package{
			{PackageID: "PKG_1", WeightKg: 4, LengthCm: 30, WidthCm: 20, HeightCm: 10},
			{PackageID: "PKG_2", WeightKg: 6, LengthCm: 50, WidthCm: 40, HeightCm: 25, Fragile: true},
		},
	}

	if got := order.TotalWeightKg(); got != 10 {
		t.Errorf("total weight = %v, want 10", got)
	}
	if got := order.TotalVolumeCm3(); got != 6000+50000 {
		t.Errorf("total volume = %v, want 56000", got)
	}
	if got := order.HandlingComplexity(); got != 1 {
		t.Errorf("handling complexity = %d, want 1", got)
	}
	if !order.RequiresSpecialHandling() {
		t.Error("order with a fragile package should require special handling")
	}
}

func TestParsePriority(t *testing.T) {
	for _, c := range []struct {
		in   string
		want Priority
	}{
		{"urgent", PriorityUrgent},
		{"high", PriorityHigh},
		{"normal", PriorityNormal},
		{"low", PriorityLow},
	} {
		got, err := ParsePriority(c.in)
		if err != nil {
			t.Fatalf("ParsePriority(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParsePriority(%q) = %v, want %v", c.in, got, c.want)
		}
		if got.String() != c.in {
			t.Errorf("round trip of %q gave %q", c.in, got.String())
		}
	}

	if _, err := ParsePriority("ASAP"); err == nil {
		t.Error("expected error for unknown priority")
	}
	if Priority(0).Valid() || Priority(5).Valid() {
		t.Error("out-of-range priorities reported valid")
	}
}
