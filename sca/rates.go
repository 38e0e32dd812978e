/*
rates.go - SCA wage determination table (WD 2015-5623 Rev 25)

PURPOSE:
  The static occupation-code wage snapshot for Service Contract Act
  determinations. Entries are regulatory data, not code: the values must
  match the published determination byte for byte, whether seeded here or
  loaded from the rate store.

IMMUTABILITY:
  A Determination's table is built once at construction and only ever read
  afterwards. Concurrent lookups need no locking; replacing the snapshot
  means constructing a new Determination, never mutating one in place.

SEE ALSO:
  - determination.go: benefit accrual and compensation calculation
  - store/sqlite: persistence of the same snapshot
*/
package sca

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/warp/wage-engine/wage"
)

// =============================================================================
// WAGE RATE ENTRY
// =============================================================================

// WageRate is one occupation entry in the SCA wage determination.
type WageRate struct {
	OccupationCode       string
	Title                string
	BaseRate             decimal.Decimal
	HealthWelfare        decimal.Decimal // standard H&W hourly rate
	HealthWelfareEO13706 decimal.Decimal // H&W rate when EO 13706 applies
}

// Default hourly health & welfare rates applied to every occupation in the
// determination unless the entry overrides them.
var (
	DefaultHealthWelfare        = wage.MustDecimal("5.36")
	DefaultHealthWelfareEO13706 = wage.MustDecimal("4.93")
)

// =============================================================================
// DETERMINATION
// =============================================================================

// Determination holds the immutable occupation-code wage table.
type Determination struct {
	rates map[string]WageRate
}

// NewDetermination builds a Determination from the built-in WD 2015-5623
// Rev 25 snapshot.
func NewDetermination() *Determination {
	return NewDeterminationFromRates(SnapshotRates())
}

// NewDeterminationFromRates builds a Determination from externally loaded
// entries, e.g. the sqlite rate store. The slice is copied into a private
// map; callers keep no handle into the table.
func NewDeterminationFromRates(rates []WageRate) *Determination {
	m := make(map[string]WageRate, len(rates))
	for _, r := range rates {
		m[r.OccupationCode] = r
	}
	return &Determination{rates: m}
}

// GetWageRate looks up the entry for an occupation code. Absence is a
// normal, representable outcome, not an error.
func (d *Determination) GetWageRate(occupationCode string) (WageRate, bool) {
	r, ok := d.rates[occupationCode]
	return r, ok
}

// Rates returns all entries sorted by occupation code.
func (d *Determination) Rates() []WageRate {
	out := make([]WageRate, 0, len(d.rates))
	for _, r := range d.rates {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccupationCode < out[j].OccupationCode })
	return out
}

// =============================================================================
// SNAPSHOT - WD 2015-5623 Rev 25
// =============================================================================

// SnapshotRates returns the built-in regulatory snapshot. Also used by the
// rate store to seed an empty database.
func SnapshotRates() []WageRate {
	entry := func(code, title, baseRate string) WageRate {
		return WageRate{
			OccupationCode:       code,
			Title:                title,
			BaseRate:             wage.MustDecimal(baseRate),
			HealthWelfare:        DefaultHealthWelfare,
			HealthWelfareEO13706: DefaultHealthWelfareEO13706,
		}
	}
	return []WageRate{
		entry("01020", "Administrative Assistant", "46.70"),
		entry("14044", "Computer Operator IV", "38.58"),
		entry("14160", "Personal Computer Support Technician", "38.58"),
		entry("14170", "System Support Specialist", "43.12"),
		entry("30086", "Engineering Technician VI", "47.80"),
	}
}
