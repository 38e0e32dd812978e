/*
determination.go - Service Contract Act compensation calculation

PURPOSE:
  Computes total weekly compensation under the SCA: base pay, capped health
  & welfare, and annual vacation/holiday entitlements prorated to a weekly
  share. Benefit tiers derive from years of service.

HEALTH & WELFARE CAP:
  H&W is payable on at most 40 hours per week. Overtime hours earn base pay
  but never additional H&W; the cap is statutory and must not be bypassed.

EO 13706:
  Contracts covered by Executive Order 13706 use the lower H&W rate and
  carry the 56-hour paid-sick-leave entitlement. Non-covered contracts
  report 0 sick leave hours.

SOFT FAILURE:
  An unknown occupation code returns a Compensation with only Error set.
  Callers branch on Failed(), nothing is thrown. This keeps the "always
  returns a value" contract the adapter depends on.

SEE ALSO:
  - rates.go: the wage table
  - davisbacon/determination.go: the construction-trade counterpart
*/
package sca

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warp/wage-engine/wage"
)

// =============================================================================
// BENEFIT CONSTANTS
// =============================================================================

const (
	// PaidHolidays is the fixed annual paid-holiday entitlement.
	PaidHolidays = 11

	// SickLeaveHours is the EO 13706 entitlement: 1 hour per 30 worked,
	// capped at 56 per year.
	SickLeaveHours = 56

	hoursPerVacationWeek = 40
	hoursPerHoliday      = 8
	weeksPerYear         = 52
	healthWelfareCapHrs  = 40
)

// =============================================================================
// RESULT RECORDS
// =============================================================================

// Benefits is the tenure-derived benefit entitlement. Recomputed per call,
// never stored.
type Benefits struct {
	VacationWeeks  int `json:"vacation_weeks"`
	PaidHolidays   int `json:"paid_holidays"`
	SickLeaveHours int `json:"sick_leave_hours"`
}

// Compensation is the result of a total compensation calculation. Either
// Error is set and everything else is zero, or Error is empty and all
// components are populated.
type Compensation struct {
	Occupation        string    `json:"occupation"`
	BasePay           float64   `json:"base_pay"`
	HealthWelfare     float64   `json:"health_welfare"`
	VacationPay       float64   `json:"vacation_pay"`
	HolidayPay        float64   `json:"holiday_pay"`
	TotalCompensation float64   `json:"total_compensation"`
	Benefits          *Benefits `json:"benefits,omitempty"`
	Error             string    `json:"error,omitempty"`
}

// Failed reports whether the calculation produced a soft failure.
func (c Compensation) Failed() bool {
	return c.Error != ""
}

// =============================================================================
// BENEFIT ACCRUAL
// =============================================================================

// CalculateBenefits derives the benefit entitlement from years of service.
// Vacation is a step function: 25+ years -> 5 weeks, 15+ -> 4, 5+ -> 3,
// otherwise 2.
func CalculateBenefits(yearsOfService int) Benefits {
	var vacationWeeks int
	switch {
	case yearsOfService >= 25:
		vacationWeeks = 5
	case yearsOfService >= 15:
		vacationWeeks = 4
	case yearsOfService >= 5:
		vacationWeeks = 3
	default:
		vacationWeeks = 2
	}
	return Benefits{
		VacationWeeks:  vacationWeeks,
		PaidHolidays:   PaidHolidays,
		SickLeaveHours: SickLeaveHours,
	}
}

// =============================================================================
// TOTAL COMPENSATION
// =============================================================================

// CalculateTotalCompensation computes weekly SCA compensation for an
// occupation code. Unknown codes yield a soft-failure Compensation.
func (d *Determination) CalculateTotalCompensation(occupationCode string, hours float64, yearsOfService int, hasEO13706 bool) Compensation {
	rate, ok := d.GetWageRate(occupationCode)
	if !ok {
		return Compensation{
			Error: fmt.Sprintf("Occupation code %s not found", occupationCode),
		}
	}

	hrs := decimal.NewFromFloat(hours)
	basePay := rate.BaseRate.Mul(hrs)

	hwRate := rate.HealthWelfare
	if hasEO13706 {
		hwRate = rate.HealthWelfareEO13706
	}
	// H&W accrues on at most 40 hours per week.
	hwPay := decimal.Min(hwRate.Mul(hrs), hwRate.Mul(decimal.NewFromInt(healthWelfareCapHrs)))

	benefits := CalculateBenefits(yearsOfService)
	vacationHours := decimal.NewFromInt(int64(benefits.VacationWeeks * hoursPerVacationWeek))
	holidayHours := decimal.NewFromInt(int64(benefits.PaidHolidays * hoursPerHoliday))

	// Annual entitlements expressed as a weekly share.
	fiftyTwo := decimal.NewFromInt(weeksPerYear)
	vacationPay := rate.BaseRate.Mul(vacationHours).Div(fiftyTwo)
	holidayPay := rate.BaseRate.Mul(holidayHours).Div(fiftyTwo)

	total := basePay.Add(hwPay).Add(vacationPay).Add(holidayPay)

	// Sick leave is an EO 13706 entitlement only.
	if !hasEO13706 {
		benefits.SickLeaveHours = 0
	}

	return Compensation{
		Occupation:        rate.Title,
		BasePay:           wage.RoundMoney(basePay),
		HealthWelfare:     wage.RoundMoney(hwPay),
		VacationPay:       wage.RoundMoney(vacationPay),
		HolidayPay:        wage.RoundMoney(holidayPay),
		TotalCompensation: wage.RoundMoney(total),
		Benefits:          &benefits,
	}
}
