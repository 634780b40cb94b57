package handlers

import (
	"delivery-dashboard-service/internal/api/dto"
	"delivery-dashboard-service/internal/ports"
	"net/http"

	"github.com/rs/zerolog"
)

// VehicleHandler exposes read-only fleet enumeration endpoints.
type VehicleHandler struct {
	Fleet ports.FleetRepository
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	vehicles, err := h.Fleet.ListVehicles(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list vehicles failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListVehiclesResponse{
		Vehicles: make([]dto.VehicleResponse, 0, len(vehicles)),
	}
	for _, v := range vehicles {
		res.Vehicles = append(res.Vehicles, dto.VehicleResponse{
			VehicleID:     v.VehicleID,
			DisplayName:   v.DisplayName,
			CapacityLabel: v.CapacityLabel,
			CapacityKg:    v.CapacityKg,
			CapacityCm3:   v.CapacityCm3,
			DriverID:      v.DriverID,
			Equipment:     v.Equipment,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
