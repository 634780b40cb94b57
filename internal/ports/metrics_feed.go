package ports

import "delivery-dashboard-service/internal/domain"

// Port: a source of live fleet metric snapshots for the dashboard.
type MetricsFeed interface {
	// Return the most recently generated snapshot.
	Snapshot() domain.FleetSnapshot
}
