/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine records from the external API contract, allowing field
  renaming and version evolution without touching the engines.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *DTO:     Response types returned to clients

VALIDATION:
  Range validation lives in the engine constructors, not here. DTOs are
  pure data carriers; handlers forward their fields and translate
  *wage.ValidationError into a 400.

SEE ALSO:
  - handlers.go: Uses these types
  - collab/types.go: the validated records these map onto
*/
package api

import (
	"github.com/warp/wage-engine/davisbacon"
	"github.com/warp/wage-engine/sca"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// HumanEmployeeRequest is the "human" block of a calculate request.
type HumanEmployeeRequest struct {
	Role           string  `json:"role"`
	HoursWorked    float64 `json:"hours_worked"`
	HourlyWage     float64 `json:"hourly_wage"`
	TaskComplexity int     `json:"task_complexity"`
}

// AIAgentRequest is the "ai_agent" block of a calculate request.
type AIAgentRequest struct {
	Model              string   `json:"model"`
	TotalQueries       int      `json:"total_queries"`
	QueryComplexity    int      `json:"query_complexity"`
	InfrastructureCost float64  `json:"infrastructure_cost"`
	Accuracy           *float64 `json:"accuracy,omitempty"`
	Latency            *float64 `json:"latency,omitempty"`
}

// MetricsRequest is the "metrics" block of a calculate request.
type MetricsRequest struct {
	CollaborationRatio float64 `json:"collaboration_ratio"`
	BusinessValue      float64 `json:"business_value"`
}

// CalculateRequest is the body of POST /api/calculate.
type CalculateRequest struct {
	Human   HumanEmployeeRequest `json:"human"`
	AIAgent AIAgentRequest       `json:"ai_agent"`
	Metrics MetricsRequest       `json:"metrics"`
}

// SCACompensationRequest is the body of POST /api/sca/compensation.
type SCACompensationRequest struct {
	OccupationCode string  `json:"occupation_code"`
	Hours          float64 `json:"hours"`
	YearsOfService int     `json:"years_of_service"`
	HasEO13706     bool    `json:"has_eo13706"`
}

// DavisBaconCompensationRequest is the body of POST /api/davis-bacon/compensation.
type DavisBaconCompensationRequest struct {
	Occupation string  `json:"occupation"`
	Hours      float64 `json:"hours"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// SCAWageRateDTO represents one SCA table entry.
type SCAWageRateDTO struct {
	OccupationCode       string  `json:"occupation_code"`
	Title                string  `json:"title"`
	BaseRate             float64 `json:"base_rate"`
	HealthWelfare        float64 `json:"health_welfare"`
	HealthWelfareEO13706 float64 `json:"health_welfare_eo13706"`
}

// DavisBaconWageRateDTO represents one Davis-Bacon table entry.
type DavisBaconWageRateDTO struct {
	Key            string  `json:"key"`
	Occupation     string  `json:"occupation"`
	BaseRate       float64 `json:"base_rate"`
	FringeBenefits float64 `json:"fringe_benefits"`
	TotalRate      float64 `json:"total_rate"`
}

// MinimumWageDTO is the response of GET /api/davis-bacon/minimum-wage.
type MinimumWageDTO struct {
	ContractDate string  `json:"contract_date"`
	MinimumWage  float64 `json:"minimum_wage"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toSCAWageRateDTO(r sca.WageRate) SCAWageRateDTO {
	return SCAWageRateDTO{
		OccupationCode:       r.OccupationCode,
		Title:                r.Title,
		BaseRate:             r.BaseRate.InexactFloat64(),
		HealthWelfare:        r.HealthWelfare.InexactFloat64(),
		HealthWelfareEO13706: r.HealthWelfareEO13706.InexactFloat64(),
	}
}

func toSCAWageRateDTOs(rates []sca.WageRate) []SCAWageRateDTO {
	dtos := make([]SCAWageRateDTO, len(rates))
	for i, r := range rates {
		dtos[i] = toSCAWageRateDTO(r)
	}
	return dtos
}

func toDavisBaconWageRateDTO(r davisbacon.WageRate) DavisBaconWageRateDTO {
	return DavisBaconWageRateDTO{
		Key:            r.Key,
		Occupation:     r.Occupation,
		BaseRate:       r.BaseRate.InexactFloat64(),
		FringeBenefits: r.FringeBenefit.InexactFloat64(),
		TotalRate:      r.TotalRate.InexactFloat64(),
	}
}

func toDavisBaconWageRateDTOs(rates []davisbacon.WageRate) []DavisBaconWageRateDTO {
	dtos := make([]DavisBaconWageRateDTO, len(rates))
	for i, r := range rates {
		dtos[i] = toDavisBaconWageRateDTO(r)
	}
	return dtos
}
