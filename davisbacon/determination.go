/*
Package davisbacon computes prevailing-wage compensation for federal
construction contracts under the Davis-Bacon Act.

PURPOSE:
  Occupation wage-rate lookup (general determination CA20250001), the
  contract-date statutory minimum selector, and fringe-benefit total
  compensation.

STORED TOTAL RATE:
  Each entry carries base_rate, fringe_benefits, AND a separately stored
  total_rate, exactly as published. Compensation multiplies the stored
  total, it never re-derives base+fringe. A data-entry discrepancy between
  the components and the total is reproduced, not corrected.

MINIMUM WAGE SELECTOR:
  GetMinimumWage picks the EO 14026 floor (17.75) for contracts entered on
  or after 2022-01-30 and the EO 13658 floor (13.30) before that. The main
  compensation path prices at the table's flat rates regardless of date;
  the selector is a separately callable operation.

CASE-INSENSITIVE LOOKUP:
  Occupation keys are upper-cased before matching, so "electrician",
  "ELECTRICIAN" and "Electrician" all resolve to the same entry.

SEE ALSO:
  - sca: the service-contract counterpart
  - store/sqlite: persistence of the same snapshot
*/
package davisbacon

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/wage-engine/wage"
)

// =============================================================================
// STATUTORY MINIMUMS
// =============================================================================

var (
	// ExecutiveOrder14026MinWage is the 2025 contractor minimum for
	// contracts entered on or after January 30, 2022.
	ExecutiveOrder14026MinWage = wage.MustDecimal("17.75")

	// ExecutiveOrder13658MinWage is the 2025 minimum for older contracts.
	ExecutiveOrder13658MinWage = wage.MustDecimal("13.30")

	// eo14026Cutoff is the first contract date covered by EO 14026.
	eo14026Cutoff = time.Date(2022, time.January, 30, 0, 0, 0, 0, time.UTC)
)

// =============================================================================
// WAGE RATE ENTRY
// =============================================================================

// WageRate is one trade entry in the wage determination.
type WageRate struct {
	Key           string // upper-case lookup key, e.g. "ELECTRICIAN"
	Occupation    string // display title
	BaseRate      decimal.Decimal
	FringeBenefit decimal.Decimal
	TotalRate     decimal.Decimal // stored independently, never derived
}

// Compensation is the result of a total compensation calculation; the soft
// failure shape mirrors sca.Compensation.
type Compensation struct {
	Occupation        string  `json:"occupation"`
	Hours             float64 `json:"hours"`
	BasePay           float64 `json:"base_pay"`
	FringeBenefits    float64 `json:"fringe_benefits"`
	TotalCompensation float64 `json:"total_compensation"`
	Error             string  `json:"error,omitempty"`
}

// Failed reports whether the calculation produced a soft failure.
func (c Compensation) Failed() bool {
	return c.Error != ""
}

// =============================================================================
// DETERMINATION
// =============================================================================

// Determination holds the immutable trade wage table.
type Determination struct {
	rates map[string]WageRate
}

// NewDetermination builds a Determination from the built-in CA20250001
// snapshot.
func NewDetermination() *Determination {
	return NewDeterminationFromRates(SnapshotRates())
}

// NewDeterminationFromRates builds a Determination from externally loaded
// entries, e.g. the sqlite rate store.
func NewDeterminationFromRates(rates []WageRate) *Determination {
	m := make(map[string]WageRate, len(rates))
	for _, r := range rates {
		m[strings.ToUpper(r.Key)] = r
	}
	return &Determination{rates: m}
}

// GetMinimumWage selects the statutory minimum wage from the contract date.
// Exposed as its own operation; the compensation path does not consult it.
func GetMinimumWage(contractDate time.Time) decimal.Decimal {
	if !contractDate.Before(eo14026Cutoff) {
		return ExecutiveOrder14026MinWage
	}
	return ExecutiveOrder13658MinWage
}

// GetWageRate looks up a trade entry, case-insensitively. Absence is a
// normal, representable outcome, not an error.
func (d *Determination) GetWageRate(occupation string) (WageRate, bool) {
	r, ok := d.rates[strings.ToUpper(occupation)]
	return r, ok
}

// Rates returns all entries sorted by lookup key.
func (d *Determination) Rates() []WageRate {
	out := make([]WageRate, 0, len(d.rates))
	for _, r := range d.rates {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// CalculateTotalCompensation computes compensation for a trade at the
// table's flat rates. Unknown occupations yield a soft-failure result.
func (d *Determination) CalculateTotalCompensation(occupation string, hours float64) Compensation {
	rate, ok := d.GetWageRate(occupation)
	if !ok {
		return Compensation{
			Error: fmt.Sprintf("Occupation %s not found in wage determination", occupation),
		}
	}

	hrs := decimal.NewFromFloat(hours)

	return Compensation{
		Occupation:        rate.Occupation,
		Hours:             hours,
		BasePay:           wage.RoundMoney(rate.BaseRate.Mul(hrs)),
		FringeBenefits:    wage.RoundMoney(rate.FringeBenefit.Mul(hrs)),
		TotalCompensation: wage.RoundMoney(rate.TotalRate.Mul(hrs)),
	}
}

// =============================================================================
// SNAPSHOT - general determination CA20250001
// =============================================================================

// SnapshotRates returns the built-in regulatory snapshot. Also used by the
// rate store to seed an empty database.
func SnapshotRates() []WageRate {
	entry := func(key, occupation, base, fringe, total string) WageRate {
		return WageRate{
			Key:           key,
			Occupation:    occupation,
			BaseRate:      wage.MustDecimal(base),
			FringeBenefit: wage.MustDecimal(fringe),
			TotalRate:     wage.MustDecimal(total),
		}
	}
	return []WageRate{
		entry("ASBESTOS_WORKER", "Asbestos Workers/Insulator", "49.58", "25.27", "74.85"),
		entry("ELECTRICIAN", "Electrician", "52.85", "17.62", "70.47"),
		entry("ELEVATOR_MECHANIC", "Elevator Mechanic", "66.63", "37.885", "104.515"),
		entry("LABORER_BASIC", "Laborer Group 1", "37.68", "22.44", "60.12"),
	}
}
