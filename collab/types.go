/*
types.go - Input records for the collaboration cost engine

PURPOSE:
  Immutable value objects describing one human/AI collaboration: the human
  employee, the AI agent usage, and the measured collaboration signals.
  Records are constructed fresh per calculation request and discarded after.

VALIDATION:
  All range constraints are enforced at construction time via the New*
  constructors, which return *wage.ValidationError on violation. A record
  that exists is a valid record; the calculator never re-checks ranges.

OPTIONAL FIELDS:
  AIAgent.Accuracy and AIAgent.Latency are informational. They are validated
  for range when present but consumed by no formula in the current rule set.

SEE ALSO:
  - calculator.go: the operations over these records
  - wage/errors.go: ValidationError
*/
package collab

import (
	"github.com/warp/wage-engine/wage"
)

// =============================================================================
// INPUT RECORDS
// =============================================================================

// HumanEmployee describes the human side of a collaboration.
type HumanEmployee struct {
	Role           string
	HoursWorked    float64
	HourlyWage     float64
	TaskComplexity int // 1-5
}

// AIAgent describes the AI usage side of a collaboration.
type AIAgent struct {
	Model              string
	TotalQueries       int
	QueryComplexity    int // 1-5
	InfrastructureCost float64
	Accuracy           *float64 // optional, 0-1
	Latency            *float64 // optional, seconds
}

// CollaborationMetrics carries the measured collaboration signals.
type CollaborationMetrics struct {
	CollaborationRatio float64 // 0-1
	BusinessValue      float64 // may be zero or negative
}

// =============================================================================
// VALIDATING CONSTRUCTORS
// =============================================================================

func wageErr(field, constraint string, value any) error {
	return wage.NewValidationError(field, constraint, value)
}

// NewHumanEmployee validates and builds a HumanEmployee record.
func NewHumanEmployee(role string, hoursWorked, hourlyWage float64, taskComplexity int) (HumanEmployee, error) {
	if hoursWorked < 0 {
		return HumanEmployee{}, wageErr("hours_worked", "must be non-negative", hoursWorked)
	}
	if hourlyWage < 0 {
		return HumanEmployee{}, wageErr("hourly_wage", "must be non-negative", hourlyWage)
	}
	if taskComplexity < 1 || taskComplexity > 5 {
		return HumanEmployee{}, wageErr("task_complexity", "must be between 1 and 5", taskComplexity)
	}
	return HumanEmployee{
		Role:           role,
		HoursWorked:    hoursWorked,
		HourlyWage:     hourlyWage,
		TaskComplexity: taskComplexity,
	}, nil
}

// NewAIAgent validates and builds an AIAgent record.
func NewAIAgent(model string, totalQueries, queryComplexity int, infrastructureCost float64, accuracy, latency *float64) (AIAgent, error) {
	if totalQueries < 0 {
		return AIAgent{}, wageErr("total_queries", "must be non-negative", totalQueries)
	}
	if queryComplexity < 1 || queryComplexity > 5 {
		return AIAgent{}, wageErr("query_complexity", "must be between 1 and 5", queryComplexity)
	}
	if infrastructureCost < 0 {
		return AIAgent{}, wageErr("infrastructure_cost", "must be non-negative", infrastructureCost)
	}
	if accuracy != nil && (*accuracy < 0 || *accuracy > 1) {
		return AIAgent{}, wageErr("accuracy", "must be between 0 and 1", *accuracy)
	}
	return AIAgent{
		Model:              model,
		TotalQueries:       totalQueries,
		QueryComplexity:    queryComplexity,
		InfrastructureCost: infrastructureCost,
		Accuracy:           accuracy,
		Latency:            latency,
	}, nil
}

// NewCollaborationMetrics validates and builds a CollaborationMetrics record.
func NewCollaborationMetrics(collaborationRatio, businessValue float64) (CollaborationMetrics, error) {
	if collaborationRatio < 0 || collaborationRatio > 1 {
		return CollaborationMetrics{}, wageErr("collaboration_ratio", "must be between 0 and 1", collaborationRatio)
	}
	return CollaborationMetrics{
		CollaborationRatio: collaborationRatio,
		BusinessValue:      businessValue,
	}, nil
}
