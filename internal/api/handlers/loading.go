package handlers

import (
	"context"
	"delivery-dashboard-service/internal/api/dto"
	"delivery-dashboard-service/internal/domain"
	"delivery-dashboard-service/internal/platform/obs"
	"delivery-dashboard-service/internal/ports"
	"delivery-dashboard-service/internal/services"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Guards the planner against unbounded request bodies.
const maxOrdersPerPlan = 200

// LoadingHandler computes master loading plans for dispatch runs.
type LoadingHandler struct {
	Fleet ports.FleetRepository
}

// Create validates a batch of delivery orders and plans their loading
// across the catalog fleet. Orders that fit nowhere come back in the
// unassigned list; only malformed input fails the request.
func (h *LoadingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.LoadingPlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.Orders) == 0 {
		writeError(w, r, http.StatusBadRequest, "orders must not be empty")
		return
	}
	if len(req.Orders) > maxOrdersPerPlan {
		writeError(w, r, http.StatusBadRequest,
			fmt.Sprintf("orders must contain at most %d entries", maxOrdersPerPlan))
		return
	}

	orders, err := ordersFromRequest(req.Orders)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	vehicles, err := h.Fleet.ListVehicles(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list vehicles failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	plan, err := planLoading(r.Context(), vehicles, orders)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("plan loading failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, loadingPlanResponse(plan))
}

func planLoading(ctx context.Context, vehicles []domain.Vehicle, orders []domain.DeliveryOrder) (plan *domain.MasterLoadingPlan, err error) {
	defer obs.Time(ctx, "loading.plan")(&err)
	return services.PlanLoading(vehicles, orders)
}

// ordersFromRequest converts and validates the wire orders. Request-level
// checks live here so the planner only ever sees well-formed input.
func ordersFromRequest(reqs []dto.OrderRequest) ([]domain.DeliveryOrder, error) {
	orders := make([]domain.DeliveryOrder, 0, len(reqs))
	seen := make(map[string]struct{}, len(reqs))

	for i, or := range reqs {
		orderID := strings.TrimSpace(or.OrderID)
		if orderID == "" {
			return nil, fmt.Errorf("order %d: order_id is required", i)
		}
		if _, ok := seen[orderID]; ok {
			return nil, fmt.Errorf("order %d: duplicate order_id %q", i, orderID)
		}
		seen[orderID] = struct{}{}

		priority, err := domain.ParsePriority(or.Priority)
		if err != nil {
			return nil, fmt.Errorf("order %d: priority must be one of urgent, high, normal, low", i)
		}

		if or.WindowStart.IsZero() || or.WindowEnd.IsZero() {
			return nil, fmt.Errorf("order %d: window_start and window_end are required", i)
		}
		if !or.WindowEnd.After(or.WindowStart) {
			return nil, fmt.Errorf("order %d: window_end must be after window_start", i)
		}

		if len(or.Packages) == 0 {
			return nil, fmt.Errorf("order %d: packages must not be empty", i)
		}

		packages := make([]domain.Package, 0, len(or.Packages))
		for j, pr := range or.Packages {
			packageID := strings.TrimSpace(pr.PackageID)
			if packageID == "" {
				return nil, fmt.Errorf("order %d: package %d: package_id is required", i, j)
			}
			if pr.WeightKg <= 0 {
				return nil, fmt.Errorf("order %d: package %d: weight_kg must be positive", i, j)
			}
			if pr.LengthCm <= 0 || pr.WidthCm <= 0 || pr.HeightCm <= 0 {
				return nil, fmt.Errorf("order %d: package %d: dimensions must be positive", i, j)
			}
			if pr.DeclaredValue < 0 {
				return nil, fmt.Errorf("order %d: package %d: declared_value must not be negative", i, j)
			}

			packages = append(packages, domain.Package{
				PackageID:            packageID,
				WeightKg:             pr.WeightKg,
				LengthCm:             pr.LengthCm,
				WidthCm:              pr.WidthCm,
				HeightCm:             pr.HeightCm,
				Fragile:              pr.Fragile,
				TemperatureSensitive: pr.TemperatureSensitive,
				Hazardous:            pr.Hazardous,
				DeclaredValue:        pr.DeclaredValue,
			})
		}

		orders = append(orders, domain.DeliveryOrder{
			OrderID:             orderID,
			CustomerID:          strings.TrimSpace(or.CustomerID),
			Address:             strings.TrimSpace(or.Address),
			Priority:            priority,
			WindowStart:         or.WindowStart,
			WindowEnd:           or.WindowEnd,
			Packages:            packages,
			SpecialInstructions: strings.TrimSpace(or.SpecialInstructions),
		})
	}

	return orders, nil
}

func loadingPlanResponse(plan *domain.MasterLoadingPlan) dto.LoadingPlanResponse {
	assignments := make([]dto.VehicleLoadingPlanResponse, 0, len(plan.Assignments))
	for _, a := range plan.Assignments {
		assignments = append(assignments, vehicleLoadingPlanResponse(a))
	}

	distribution := make(map[string]int, len(plan.Metrics.PriorityDistribution))
	for priority, count := range plan.Metrics.PriorityDistribution {
		distribution[priority.String()] = count
	}

	return dto.LoadingPlanResponse{
		Summary: dto.LoadingSummaryResponse{
			TotalOrders:       plan.Summary.TotalOrders,
			AssignedOrders:    plan.Summary.AssignedOrders,
			UnassignedOrders:  plan.Summary.UnassignedOrders,
			AssignmentRatePct: plan.Summary.AssignmentRatePct,
			VehiclesUsed:      plan.Summary.VehiclesUsed,
			VehiclesAvailable: plan.Summary.VehiclesAvailable,
		},
		Assignments:        assignments,
		UnassignedOrderIDs: plan.UnassignedOrderIDs,
		Metrics: dto.LoadingMetricsResponse{
			FleetWeightUtilizationPct: plan.Metrics.FleetWeightUtilizationPct,
			FleetVolumeUtilizationPct: plan.Metrics.FleetVolumeUtilizationPct,
			PriorityDistribution:      distribution,
			LoadBalanceScore:          plan.Metrics.LoadBalanceScore,
		},
	}
}

func vehicleLoadingPlanResponse(plan domain.VehicleLoadingPlan) dto.VehicleLoadingPlanResponse {
	sequence := make([]dto.LoadingInstructionResponse, 0, len(plan.Sequence))
	for _, step := range plan.Sequence {
		packages := make([]dto.PackageHandlingResponse, 0, len(step.Packages))
		for _, p := range step.Packages {
			packages = append(packages, dto.PackageHandlingResponse{
				PackageID: p.PackageID,
				WeightKg:  p.WeightKg,
				Size:      string(p.Size),
				Notes:     p.Notes,
			})
		}

		sequence = append(sequence, dto.LoadingInstructionResponse{
			Sequence:            step.Sequence,
			OrderID:             step.OrderID,
			CustomerID:          step.CustomerID,
			Address:             step.Address,
			Priority:            step.Priority.String(),
			Zone:                string(step.Zone),
			Packages:            packages,
			WeightKg:            step.WeightKg,
			VolumeCm3:           step.VolumeCm3,
			CumulativeWeightKg:  step.CumulativeWeightKg,
			CumulativeVolumeCm3: step.CumulativeVolumeCm3,
			SpecialInstructions: step.SpecialInstructions,
		})
	}

	return dto.VehicleLoadingPlanResponse{
		VehicleID:            plan.VehicleID,
		DriverID:             plan.DriverID,
		Orders:               plan.Orders,
		TotalWeightKg:        plan.TotalWeightKg,
		TotalVolumeCm3:       plan.TotalVolumeCm3,
		WeightUtilizationPct: plan.WeightUtilizationPct,
		VolumeUtilizationPct: plan.VolumeUtilizationPct,
		Sequence:             sequence,
		SpecialNotes:         plan.SpecialNotes,
	}
}
