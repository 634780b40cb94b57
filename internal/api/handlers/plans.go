package handlers

import (
	"delivery-dashboard-service/internal/api/dto"
	"delivery-dashboard-service/internal/platform/metrics"
	"delivery-dashboard-service/internal/ports"
	"net/http"
	"strings"
)

// PlanHandler serves fixed route plan lookups.
type PlanHandler struct {
	Selector ports.PlanSelector
	Recorder *metrics.Recorder
}

// Plan resolves the route plan for the vehicle named in the query string.
// Selection is total: an unknown, blank, or missing vehicle identifier
// degrades to the empty plan with status 200 rather than an error status,
// so dashboard polling never breaks on a stale vehicle id.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	vehicleID := strings.TrimSpace(r.URL.Query().Get("vehicle"))

	plan := h.Selector.SelectPlan(vehicleID)
	h.Recorder.PlanSelection(vehicleID, !plan.IsEmpty())

	stops := make([]dto.StopResponse, 0, len(plan.Stops))
	for _, s := range plan.Stops {
		stops = append(stops, dto.StopResponse{
			Label:       s.Label,
			ScheduledAt: s.ScheduledAt,
			Kind:        string(s.Kind),
		})
	}

	res := dto.PlanResponse{
		VehicleID:      plan.VehicleID,
		Stops:          stops,
		DistanceKm:     plan.DistanceKm,
		EstimatedHours: plan.EstimatedHours,
		FuelCost:       plan.FuelCost,
		Deliveries:     plan.Deliveries,
	}

	writeJSON(w, r, http.StatusOK, res)
}
