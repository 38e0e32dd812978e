package collab_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/wage-engine/collab"
	"github.com/warp/wage-engine/wage"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func employee(t *testing.T, hours, hourlyWage float64, complexity int) collab.HumanEmployee {
	t.Helper()
	e, err := collab.NewHumanEmployee("AI Supervisor", hours, hourlyWage, complexity)
	require.NoError(t, err)
	return e
}

func agent(t *testing.T, queries, queryComplexity int, infraCost float64) collab.AIAgent {
	t.Helper()
	a, err := collab.NewAIAgent("GPT-4", queries, queryComplexity, infraCost, nil, nil)
	require.NoError(t, err)
	return a
}

func metrics(t *testing.T, ratio, businessValue float64) collab.CollaborationMetrics {
	t.Helper()
	m, err := collab.NewCollaborationMetrics(ratio, businessValue)
	require.NoError(t, err)
	return m
}

// =============================================================================
// HUMAN WAGE TESTS
// =============================================================================

func TestCalculateHumanWages_StatutoryFloor(t *testing.T) {
	// GIVEN: An hourly wage below the 10.00 statutory floor
	// WHEN: Calculating wages for 40 hours at complexity 1
	// THEN: The floor applies, regardless of the input wage

	e := employee(t, 40, 5.00, 1)
	wages := collab.CalculateHumanWages(e)

	assert.Equal(t, 400.00, wage.RoundMoney(wages), "5.00/h is floored to 10.00/h")
}

func TestCalculateHumanWages_AboveFloorUsesInputWage(t *testing.T) {
	// GIVEN: An hourly wage above the floor
	// WHEN: Calculating wages
	// THEN: The input wage is used as-is

	e := employee(t, 40, 15.00, 1)
	wages := collab.CalculateHumanWages(e)

	assert.Equal(t, 600.00, wage.RoundMoney(wages))
}

func TestCalculateHumanWages_ComplexityMultiplierIsLinear(t *testing.T) {
	// GIVEN: The same wage and hours at complexity 1, 3 and 5
	// THEN: Multipliers are 1.0, 1.2 and 1.4

	cases := []struct {
		complexity int
		expected   float64
	}{
		{1, 200.00}, // 20 * 10 * 1.0
		{2, 220.00},
		{3, 240.00}, // 20 * 10 * 1.2
		{4, 260.00},
		{5, 280.00}, // 20 * 10 * 1.4
	}
	for _, tc := range cases {
		e := employee(t, 10, 20.00, tc.complexity)
		assert.Equal(t, tc.expected, wage.RoundMoney(collab.CalculateHumanWages(e)),
			"complexity %d", tc.complexity)
	}
}

// =============================================================================
// AI COST TESTS
// =============================================================================

func TestCalculateAICosts_ScalesInfrastructureByComplexity(t *testing.T) {
	// GIVEN: 5000 queries at complexity 3 with a 150 infrastructure rate
	// THEN: cost = 0.01*5000 + 150*3; the infrastructure rate scales with
	//       the complexity tier, it is not a flat cost

	a := agent(t, 5000, 3, 150)
	assert.Equal(t, 500.00, wage.RoundMoney(collab.CalculateAICosts(a)))
}

func TestCalculateAICosts_ZeroQueries(t *testing.T) {
	a := agent(t, 0, 2, 100)
	assert.Equal(t, 200.00, wage.RoundMoney(collab.CalculateAICosts(a)))
}

// =============================================================================
// COLLABORATION COST TESTS
// =============================================================================

func TestCalculateCollaborationCost_WeightedBlend(t *testing.T) {
	// GIVEN: Human wages 780, AI cost 500, business value 20000
	// THEN: total = 0.7*780 + 0.3*500 = 696.00, ratio = 696/20000 = 0.0348

	m := metrics(t, 0.7, 20000)
	cost := collab.CalculateCollaborationCost(
		collab.CalculateHumanWages(employee(t, 40, 15.00, 4)),
		collab.CalculateAICosts(agent(t, 5000, 3, 150)),
		m,
	)

	assert.Equal(t, 696.00, cost.TotalCost)
	assert.Equal(t, 0.0348, cost.CostToValueRatio)
}

func TestCalculateCollaborationCost_ZeroOrNegativeValueGuard(t *testing.T) {
	// GIVEN: Zero or negative business value
	// THEN: The ratio is 0, never a division fault

	human := collab.CalculateHumanWages(employee(t, 40, 15.00, 3))
	ai := collab.CalculateAICosts(agent(t, 100, 1, 10))

	for _, value := range []float64{0, -5000} {
		m := metrics(t, 0.5, value)
		cost := collab.CalculateCollaborationCost(human, ai, m)
		assert.Equal(t, 0.0, cost.CostToValueRatio, "business value %v", value)
		assert.Greater(t, cost.TotalCost, 0.0)
	}
}

// =============================================================================
// RECOMMENDATION LADDER TESTS
// =============================================================================

func TestRecommendWageAdjustment_HighComplexityWithValue(t *testing.T) {
	rec := collab.RecommendWageAdjustment(employee(t, 40, 20, 4), metrics(t, 0.1, 100))

	assert.Equal(t, "Increase", rec.Action)
	assert.Equal(t, 15.0, rec.AdjustmentPercentage)
	assert.Equal(t, "High complexity tasks with proven business value", rec.Reason)
}

func TestRecommendWageAdjustment_EffectiveCollaboration(t *testing.T) {
	// complexity 3 keeps rule 1 from firing; ratio > 0.7 selects rule 2
	rec := collab.RecommendWageAdjustment(employee(t, 40, 20, 3), metrics(t, 0.8, 100))

	assert.Equal(t, "Increase", rec.Action)
	assert.Equal(t, 10.0, rec.AdjustmentPercentage)
}

func TestRecommendWageAdjustment_AutomatedLowComplexity(t *testing.T) {
	rec := collab.RecommendWageAdjustment(employee(t, 40, 20, 2), metrics(t, 0.9, 100))

	assert.Equal(t, "Decrease", rec.Action)
	assert.Equal(t, -5.0, rec.AdjustmentPercentage)
	assert.Equal(t, "Reduced complexity due to AI automation", rec.Reason)
}

func TestRecommendWageAdjustment_Maintain(t *testing.T) {
	rec := collab.RecommendWageAdjustment(employee(t, 40, 20, 3), metrics(t, 0.5, 100))

	assert.Equal(t, "Maintain", rec.Action)
	assert.Equal(t, 0.0, rec.AdjustmentPercentage)
}

func TestRecommendWageAdjustment_FirstMatchWins(t *testing.T) {
	// GIVEN: complexity 5, ratio 0.9, value 100 - rules 1 and 2 both hold
	// THEN: Rule 1 masks the rest; the ladder is ordered, not parallel

	rec := collab.RecommendWageAdjustment(employee(t, 40, 20, 5), metrics(t, 0.9, 100))

	assert.Equal(t, "Increase", rec.Action)
	assert.Equal(t, 15.0, rec.AdjustmentPercentage, "rule 1 must win over rule 2")
}

func TestRecommendWageAdjustment_NoValueFallsThrough(t *testing.T) {
	// GIVEN: complexity 4 but no proven business value
	// THEN: Rule 1 does not fire; ratio 0.75 sends it to rule 2 instead

	rec := collab.RecommendWageAdjustment(employee(t, 40, 20, 4), metrics(t, 0.75, 0))

	assert.Equal(t, "Increase", rec.Action)
	assert.Equal(t, 10.0, rec.AdjustmentPercentage)
}

// =============================================================================
// ORCHESTRATION TESTS
// =============================================================================

func TestCalculateWagesAndCosts_EndToEnd(t *testing.T) {
	// GIVEN: The worked reference scenario
	// human{40h, 15.00, complexity 4}, ai{5000 queries, complexity 3, 150},
	// metrics{0.7, 20000}

	result := collab.CalculateWagesAndCosts(
		employee(t, 40, 15.00, 4),
		agent(t, 5000, 3, 150),
		metrics(t, 0.7, 20000),
	)

	assert.Equal(t, 780.00, result.HumanWages) // 15 * 40 * 1.3
	assert.Equal(t, 500.00, result.AICosts)
	assert.Equal(t, 696.00, result.CollaborationMetrics.TotalCost)
	assert.Equal(t, 0.0348, result.CollaborationMetrics.CostToValueRatio)
	assert.Equal(t, "Increase", result.WageRecommendations.Action)
	assert.Equal(t, 15.0, result.WageRecommendations.AdjustmentPercentage)
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestNewHumanEmployee_RejectsOutOfRangeComplexity(t *testing.T) {
	for _, complexity := range []int{0, 6, -1} {
		_, err := collab.NewHumanEmployee("x", 40, 20, complexity)
		require.Error(t, err, "complexity %d", complexity)

		var verr *wage.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "task_complexity", verr.Field)
		assert.True(t, errors.Is(err, wage.ErrValidation))
	}
}

func TestNewHumanEmployee_RejectsNegativeInputs(t *testing.T) {
	_, err := collab.NewHumanEmployee("x", -1, 20, 3)
	assert.Error(t, err)

	_, err = collab.NewHumanEmployee("x", 40, -0.01, 3)
	assert.Error(t, err)
}

func TestNewAIAgent_Validation(t *testing.T) {
	_, err := collab.NewAIAgent("m", -1, 3, 10, nil, nil)
	assert.Error(t, err, "negative queries")

	_, err = collab.NewAIAgent("m", 10, 0, 10, nil, nil)
	assert.Error(t, err, "complexity below range")

	badAccuracy := 1.5
	_, err = collab.NewAIAgent("m", 10, 3, 10, &badAccuracy, nil)
	assert.Error(t, err, "accuracy above 1")

	// Optional fields round-trip when valid
	accuracy, latency := 0.95, 1.2
	a, err := collab.NewAIAgent("m", 10, 3, 10, &accuracy, &latency)
	require.NoError(t, err)
	assert.Equal(t, 0.95, *a.Accuracy)
	assert.Equal(t, 1.2, *a.Latency)
}

func TestNewCollaborationMetrics_RatioRange(t *testing.T) {
	for _, ratio := range []float64{-0.1, 1.01} {
		_, err := collab.NewCollaborationMetrics(ratio, 100)
		assert.Error(t, err, "ratio %v", ratio)
	}

	// Boundaries are inclusive; negative business value is allowed
	for _, ratio := range []float64{0, 1} {
		_, err := collab.NewCollaborationMetrics(ratio, -100)
		assert.NoError(t, err, "ratio %v", ratio)
	}
}
