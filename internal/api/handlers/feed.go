package handlers

import (
	"delivery-dashboard-service/internal/api/dto"
	"delivery-dashboard-service/internal/ports"
	"net/http"
)

// FeedHandler serves the latest live fleet metrics snapshot.
type FeedHandler struct {
	Feed ports.MetricsFeed
}

func (h *FeedHandler) Live(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snap := h.Feed.Snapshot()

	counts := make(map[string]int, len(snap.StatusCounts))
	for status, n := range snap.StatusCounts {
		counts[string(status)] = n
	}

	res := dto.FleetSnapshotResponse{
		GeneratedAt:          snap.GeneratedAt,
		ActiveVehicles:       snap.ActiveVehicles,
		DeliveriesInProgress: snap.DeliveriesInProgress,
		DeliveriesCompleted:  snap.DeliveriesCompleted,
		OnTimeRatePct:        snap.OnTimeRatePct,
		AvgSpeedKmh:          snap.AvgSpeedKmh,
		FuelEfficiencyKmPerL: snap.FuelEfficiencyKmPerL,
		StatusCounts:         counts,
	}

	writeJSON(w, r, http.StatusOK, res)
}
