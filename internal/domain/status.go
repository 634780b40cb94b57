package domain

// Lifecycle states of a delivery, from acceptance through the terminal
// outcomes.
type DeliveryStatus string

const (
	StatusPending        DeliveryStatus = "pending"
	StatusPickedUp       DeliveryStatus = "picked_up"
	StatusInTransit      DeliveryStatus = "in_transit"
	StatusOutForDelivery DeliveryStatus = "out_for_delivery"
	StatusDelivered      DeliveryStatus = "delivered"
	StatusFailed         DeliveryStatus = "failed"
	StatusReturned       DeliveryStatus = "returned"
)

// AllStatuses lists every delivery status in lifecycle order.
var AllStatuses = []DeliveryStatus{
	StatusPending,
	StatusPickedUp,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
	StatusFailed,
	StatusReturned,
}

// Progress returns the percent-complete figure dashboards render for the
// status. Failed and returned deliveries report zero, same as pending.
func (s DeliveryStatus) Progress() int {
	switch s {
	case StatusPickedUp:
		return 20
	case StatusInTransit:
		return 40
	case StatusOutForDelivery:
		return 80
	case StatusDelivered:
		return 100
	default:
		return 0
	}
}

// Terminal reports whether the status ends the delivery lifecycle.
func (s DeliveryStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusFailed || s == StatusReturned
}
