/*
calculator.go - Collaboration cost calculations and wage recommendations

PURPOSE:
  The pure calculation core for blended human/AI labor. Computes human wages
  under the statutory floor, AI operational costs, the weighted blend with
  its cost-to-value signal, and the wage adjustment recommendation.

STATUTORY FLOOR:
  Effective hourly wage is max(input wage, MinimumWage) where MinimumWage is
  the greater of the federal (7.25) and state (10.00) minimums. The floor is
  never bypassable by a lower input wage.

BLEND WEIGHTS:
  Total cost uses fixed task weights (0.7 human / 0.3 AI). The weights are
  deliberately decoupled from the measured collaboration_ratio, which feeds
  only the recommendation ladder.

RECOMMENDATION LADDER:
  An ordered decision table evaluated top to bottom, first match wins.
  Reordering changes outputs for overlapping inputs, so the branch order is
  part of the contract, not an implementation detail.

ROUNDING:
  Intermediates stay unrounded decimals. Each result field is rounded once,
  at assembly: money to 2dp, ratios to 4dp.

SEE ALSO:
  - types.go: input records and validation
  - wage/money.go: rounding contract
*/
package collab

import (
	"github.com/shopspring/decimal"

	"github.com/warp/wage-engine/wage"
)

// =============================================================================
// CONSTANTS
// =============================================================================

var (
	// FederalMinimumWage and StateMinimumWage set the statutory wage floor.
	FederalMinimumWage = wage.MustDecimal("7.25")
	StateMinimumWage   = wage.MustDecimal("10.00")

	// MinimumWage is the effective floor: the greater of the two minimums.
	MinimumWage = decimal.Max(FederalMinimumWage, StateMinimumWage)

	// AIBaseCost is the per-query operational cost.
	AIBaseCost = wage.MustDecimal("0.01")

	// HumanTaskWeight and AITaskWeight blend the two cost sides. Fixed by
	// policy, independent of the measured collaboration ratio.
	HumanTaskWeight = wage.MustDecimal("0.7")
	AITaskWeight    = wage.MustDecimal("0.3")
)

var (
	complexityStep = wage.MustDecimal("0.1")
	one            = decimal.NewFromInt(1)
)

// =============================================================================
// RESULT RECORDS
// =============================================================================

// CollaborationCost is the blended cost of a human/AI collaboration.
type CollaborationCost struct {
	TotalCost        float64 `json:"total_cost"`
	CostToValueRatio float64 `json:"cost_to_value_ratio"`
}

// Recommendation is a wage adjustment recommendation.
type Recommendation struct {
	AdjustmentPercentage float64 `json:"adjustment_percentage"`
	Reason               string  `json:"reason"`
	Action               string  `json:"action"`
}

// Result bundles every output of one collaboration calculation.
type Result struct {
	HumanWages           float64           `json:"human_wages"`
	AICosts              float64           `json:"ai_costs"`
	CollaborationMetrics CollaborationCost `json:"collaboration_metrics"`
	WageRecommendations  Recommendation    `json:"wage_recommendations"`
}

// =============================================================================
// WAGE AND COST CALCULATIONS
// =============================================================================

// CalculateHumanWages computes the human wage cost with the statutory floor
// and the linear complexity multiplier applied. The result is unrounded;
// rounding happens at final assembly.
func CalculateHumanWages(employee HumanEmployee) decimal.Decimal {
	hourlyWage := decimal.Max(decimal.NewFromFloat(employee.HourlyWage), MinimumWage)

	// 1 + 0.1*(complexity-1): 1.0 at complexity 1 up to 1.4 at complexity 5.
	multiplier := one.Add(complexityStep.Mul(decimal.NewFromInt(int64(employee.TaskComplexity - 1))))

	return hourlyWage.Mul(decimal.NewFromFloat(employee.HoursWorked)).Mul(multiplier)
}

// CalculateAICosts computes AI operational cost from usage and complexity.
// infrastructure_cost is a per-complexity-unit rate, scaled by the query
// complexity tier. That scaling is a deliberate rule, not a flat add-on.
func CalculateAICosts(agent AIAgent) decimal.Decimal {
	baseCost := AIBaseCost.Mul(decimal.NewFromInt(int64(agent.TotalQueries)))
	complexityCost := decimal.NewFromFloat(agent.InfrastructureCost).Mul(decimal.NewFromInt(int64(agent.QueryComplexity)))
	return baseCost.Add(complexityCost)
}

// CalculateCollaborationCost blends the two cost sides with the fixed task
// weights and derives the cost-to-value signal. business_value <= 0 yields a
// ratio of 0 rather than a division fault.
func CalculateCollaborationCost(humanWages, aiCost decimal.Decimal, metrics CollaborationMetrics) CollaborationCost {
	totalCost := HumanTaskWeight.Mul(humanWages).Add(AITaskWeight.Mul(aiCost))

	costToValue := decimal.Zero
	if metrics.BusinessValue > 0 {
		costToValue = totalCost.Div(decimal.NewFromFloat(metrics.BusinessValue))
	}

	return CollaborationCost{
		TotalCost:        wage.RoundMoney(totalCost),
		CostToValueRatio: wage.RoundRatio(costToValue),
	}
}

// =============================================================================
// RECOMMENDATION LADDER
// =============================================================================

// RecommendWageAdjustment walks the ordered rule ladder, first match wins.
// An earlier rule masks later rules even when their conditions also hold.
func RecommendWageAdjustment(employee HumanEmployee, metrics CollaborationMetrics) Recommendation {
	switch {
	case employee.TaskComplexity >= 4 && metrics.BusinessValue > 0:
		return Recommendation{
			AdjustmentPercentage: 15.0,
			Reason:               "High complexity tasks with proven business value",
			Action:               "Increase",
		}
	case metrics.CollaborationRatio > 0.7 && employee.TaskComplexity >= 3:
		return Recommendation{
			AdjustmentPercentage: 10.0,
			Reason:               "Effective AI collaboration with moderate complexity",
			Action:               "Increase",
		}
	case employee.TaskComplexity <= 2 && metrics.CollaborationRatio > 0.8:
		return Recommendation{
			AdjustmentPercentage: -5.0,
			Reason:               "Reduced complexity due to AI automation",
			Action:               "Decrease",
		}
	default:
		return Recommendation{
			AdjustmentPercentage: 0.0,
			Reason:               "Current wage level appropriate",
			Action:               "Maintain",
		}
	}
}

// =============================================================================
// ORCHESTRATION
// =============================================================================

// CalculateWagesAndCosts runs the full pipeline over validated records.
// Deterministic, no side effects.
func CalculateWagesAndCosts(employee HumanEmployee, agent AIAgent, metrics CollaborationMetrics) Result {
	humanWages := CalculateHumanWages(employee)
	aiCosts := CalculateAICosts(agent)

	return Result{
		HumanWages:           wage.RoundMoney(humanWages),
		AICosts:              wage.RoundMoney(aiCosts),
		CollaborationMetrics: CalculateCollaborationCost(humanWages, aiCosts, metrics),
		WageRecommendations:  RecommendWageAdjustment(employee, metrics),
	}
}
