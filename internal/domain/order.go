package domain

import (
	"fmt"
	"time"
)

// Delivery urgency classes. Lower values are more urgent and sort earlier
// in assignment and loading sequences.
type Priority int

const (
	PriorityUrgent Priority = iota + 1
	PriorityHigh
	PriorityNormal
	PriorityLow
)

func (p Priority) String() string {
	switch p {
	case PriorityUrgent:
		return "urgent"
	case PriorityHigh:
		return "high"
	case PriorityNormal:
		return "normal"
	case PriorityLow:
		return "low"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// Valid reports whether p is one of the four defined classes.
func (p Priority) Valid() bool {
	return p >= PriorityUrgent && p <= PriorityLow
}

// ParsePriority converts the lowercase wire form ("urgent", "high",
// "normal", "low") into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "urgent":
		return PriorityUrgent, nil
	case "high":
		return PriorityHigh, nil
	case "normal":
		return PriorityNormal, nil
	case "low":
		return PriorityLow, nil
	}
	return 0, fmt.Errorf("parse priority: unknown value %q", s)
}

// Size classes shown on load manifests.
type PackageSize string

const (
	SizeSmall      PackageSize = "small"
	SizeMedium     PackageSize = "medium"
	SizeLarge      PackageSize = "large"
	SizeExtraLarge PackageSize = "xl"
)

// Represents a single physical parcel inside a delivery order.
// Dimensions are centimeters, weight is kilograms.
type Package struct {
	PackageID            string
	WeightKg             float64
	LengthCm             float64
	WidthCm              float64
	HeightCm             float64
	Fragile              bool
	TemperatureSensitive bool
	Hazardous            bool
	DeclaredValue        float64
}

// VolumeCm3 returns the package volume in cubic centimeters.
func (p Package) VolumeCm3() float64 {
	return p.LengthCm * p.WidthCm * p.HeightCm
}

// MaxDimensionCm returns the longest edge of the package.
func (p Package) MaxDimensionCm() float64 {
	return max(p.LengthCm, p.WidthCm, p.HeightCm)
}

// SizeCategory buckets the package for manifests: small under 1 kg and
// 30 cm, medium under 5 kg and 60 cm, large under 20 kg and 100 cm,
// xl otherwise.
func (p Package) SizeCategory() PackageSize {
	switch dim := p.MaxDimensionCm(); {
	case p.WeightKg < 1 && dim < 30:
		return SizeSmall
	case p.WeightKg < 5 && dim < 60:
		return SizeMedium
	case p.WeightKg < 20 && dim < 100:
		return SizeLarge
	default:
		return SizeExtraLarge
	}
}

// RequiresSpecialHandling reports whether any handling flag is set.
func (p Package) RequiresSpecialHandling() bool {
	return p.Fragile || p.TemperatureSensitive || p.Hazardous
}

// Represents a customer order: one or more packages delivered together to
// a single address within a delivery window.
type DeliveryOrder struct {
	OrderID             string
	CustomerID          string
	Address             string
	Priority            Priority
	WindowStart         time.Time
	WindowEnd           time.Time
	Packages            []Package
	SpecialInstructions string
}

// TotalWeightKg sums the package weights.
func (o DeliveryOrder) TotalWeightKg() float64 {
	var total float64
	for _, pkg := range o.Packages {
		total += pkg.WeightKg
	}
	return total
}

// TotalVolumeCm3 sums the package volumes.
func (o DeliveryOrder) TotalVolumeCm3() float64 {
	var total float64
	for _, pkg := range o.Packages {
		total += pkg.VolumeCm3()
	}
	return total
}

// HandlingComplexity counts the packages that need special handling.
func (o DeliveryOrder) HandlingComplexity() int {
	n := 0
	for _, pkg := range o.Packages {
		if pkg.RequiresSpecialHandling() {
			n++
		}
	}
	return n
}

// RequiresSpecialHandling reports whether any package in the order does.
func (o DeliveryOrder) RequiresSpecialHandling() bool {
	return o.HandlingComplexity() > 0
}
