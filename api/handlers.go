/*
handlers.go - HTTP API handlers for the wage calculation engines

PURPOSE:
  Exposes the three calculation engines via REST API. Handles HTTP
  request/response and JSON serialization, then delegates to the pure
  calculation core. No calculation logic lives here.

ENDPOINTS:
  Collaboration:
    POST /api/calculate                    Blended human/AI cost analysis

  Service Contract Act:
    GET  /api/sca/rates                    List the wage determination
    GET  /api/sca/rates/{code}             Single occupation entry
    POST /api/sca/compensation             Total compensation

  Davis-Bacon:
    GET  /api/davis-bacon/rates            List the wage determination
    GET  /api/davis-bacon/rates/{occupation}  Single trade entry
    POST /api/davis-bacon/compensation     Total compensation
    GET  /api/davis-bacon/minimum-wage     Statutory minimum by contract date

ERROR HANDLING:
  Two distinct failure shapes, mapped differently:
  - Validation errors (out-of-range field, malformed body) are client
    errors: 400 with an ErrorResponse.
  - Unknown occupation codes are soft failures: the engine's own result
    record carries the message and the handler returns it as a normal
    payload. Callers branch on the "error" key, nothing raises.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/warp/wage-engine/collab"
	"github.com/warp/wage-engine/davisbacon"
	"github.com/warp/wage-engine/sca"
	"github.com/warp/wage-engine/wage"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the initialized wage determinations for all handlers.
// Both determinations are immutable after construction, so a single
// Handler is safe for concurrent requests without locking.
type Handler struct {
	SCA        *sca.Determination
	DavisBacon *davisbacon.Determination
}

// NewHandler creates a Handler over the given determinations.
func NewHandler(scaDet *sca.Determination, dbDet *davisbacon.Determination) *Handler {
	return &Handler{SCA: scaDet, DavisBacon: dbDet}
}

// =============================================================================
// COLLABORATION COST
// =============================================================================

// Calculate handles POST /api/calculate.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	employee, err := collab.NewHumanEmployee(req.Human.Role, req.Human.HoursWorked, req.Human.HourlyWage, req.Human.TaskComplexity)
	if err != nil {
		respondValidationError(w, err)
		return
	}
	agent, err := collab.NewAIAgent(req.AIAgent.Model, req.AIAgent.TotalQueries, req.AIAgent.QueryComplexity,
		req.AIAgent.InfrastructureCost, req.AIAgent.Accuracy, req.AIAgent.Latency)
	if err != nil {
		respondValidationError(w, err)
		return
	}
	metrics, err := collab.NewCollaborationMetrics(req.Metrics.CollaborationRatio, req.Metrics.BusinessValue)
	if err != nil {
		respondValidationError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, collab.CalculateWagesAndCosts(employee, agent, metrics))
}

// =============================================================================
// SERVICE CONTRACT ACT
// =============================================================================

// ListSCARates handles GET /api/sca/rates.
func (h *Handler) ListSCARates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toSCAWageRateDTOs(h.SCA.Rates()))
}

// GetSCARate handles GET /api/sca/rates/{code}.
func (h *Handler) GetSCARate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	rate, ok := h.SCA.GetWageRate(code)
	if !ok {
		respondError(w, http.StatusNotFound, "occupation code not found", nil)
		return
	}
	respondJSON(w, http.StatusOK, toSCAWageRateDTO(rate))
}

// SCACompensation handles POST /api/sca/compensation.
func (h *Handler) SCACompensation(w http.ResponseWriter, r *http.Request) {
	var req SCACompensationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if req.Hours < 0 {
		respondValidationError(w, wage.NewValidationError("hours", "must be non-negative", req.Hours))
		return
	}
	if req.YearsOfService < 0 {
		respondValidationError(w, wage.NewValidationError("years_of_service", "must be non-negative", req.YearsOfService))
		return
	}

	result := h.SCA.CalculateTotalCompensation(req.OccupationCode, req.Hours, req.YearsOfService, req.HasEO13706)
	if result.Failed() {
		// Soft failure: descriptive payload, not an HTTP error.
		respondJSON(w, http.StatusOK, map[string]string{"error": result.Error})
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// =============================================================================
// DAVIS-BACON
// =============================================================================

// ListDavisBaconRates handles GET /api/davis-bacon/rates.
func (h *Handler) ListDavisBaconRates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toDavisBaconWageRateDTOs(h.DavisBacon.Rates()))
}

// GetDavisBaconRate handles GET /api/davis-bacon/rates/{occupation}.
func (h *Handler) GetDavisBaconRate(w http.ResponseWriter, r *http.Request) {
	occupation := chi.URLParam(r, "occupation")
	rate, ok := h.DavisBacon.GetWageRate(occupation)
	if !ok {
		respondError(w, http.StatusNotFound, "occupation not found in wage determination", nil)
		return
	}
	respondJSON(w, http.StatusOK, toDavisBaconWageRateDTO(rate))
}

// DavisBaconCompensation handles POST /api/davis-bacon/compensation.
func (h *Handler) DavisBaconCompensation(w http.ResponseWriter, r *http.Request) {
	var req DavisBaconCompensationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if req.Hours < 0 {
		respondValidationError(w, wage.NewValidationError("hours", "must be non-negative", req.Hours))
		return
	}

	result := h.DavisBacon.CalculateTotalCompensation(req.Occupation, req.Hours)
	if result.Failed() {
		respondJSON(w, http.StatusOK, map[string]string{"error": result.Error})
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// MinimumWage handles GET /api/davis-bacon/minimum-wage?contract_date=YYYY-MM-DD.
func (h *Handler) MinimumWage(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("contract_date")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "contract_date query parameter is required", nil)
		return
	}
	contractDate, err := time.Parse("2006-01-02", raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "contract_date must be YYYY-MM-DD", err)
		return
	}

	respondJSON(w, http.StatusOK, MinimumWageDTO{
		ContractDate: raw,
		MinimumWage:  davisbacon.GetMinimumWage(contractDate).InexactFloat64(),
	})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	respondJSON(w, status, resp)
}

// respondValidationError maps a construction-time validation failure to a
// 400 with field-level detail.
func respondValidationError(w http.ResponseWriter, err error) {
	var verr *wage.ValidationError
	if errors.As(err, &verr) {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   verr.Error(),
			Code:    "validation_failed",
			Details: map[string]any{"field": verr.Field, "constraint": verr.Constraint},
		})
		return
	}
	respondError(w, http.StatusBadRequest, err.Error(), nil)
}
