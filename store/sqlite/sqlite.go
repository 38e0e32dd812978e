/*
Package sqlite provides a SQLite-backed store for the statutory wage tables.

PURPOSE:
  The wage determinations are configuration data, not code. This store lets
  deployments hold them in a database: the schema is migrated on New(), an
  empty database is seeded with the built-in regulatory snapshot, and the
  engines are constructed from the loaded rows at startup.

KEY TABLES:
  sca_wage_rates:         WD 2015-5623 Rev 25 entries
  davis_bacon_wage_rates: CA20250001 entries (total_rate stored verbatim,
                          never recomputed from base+fringe)

RATE ENCODING:
  Rates are stored as TEXT and parsed with decimal.NewFromString, so the
  published values survive the round trip exactly.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. Loading happens during startup,
  before concurrent calculation begins; the loaded tables are handed to
  immutable Determinations, so readers never touch the database afterwards.

USAGE:
  store, err := sqlite.New("./data/rates.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  rates, err := store.SCAWageRates(ctx)
  det := sca.NewDeterminationFromRates(rates)

SEE ALSO:
  - sca/rates.go, davisbacon/determination.go: snapshot sources
  - cmd/server/main.go: startup wiring
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/wage-engine/davisbacon"
	"github.com/warp/wage-engine/sca"
)

// Store persists the wage determination tables in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a store at the given database path and seeds it with the
// built-in snapshot if the tables are empty. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := store.seed(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed wage tables: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Service Contract Act wage determination (WD 2015-5623 Rev 25)
	CREATE TABLE IF NOT EXISTS sca_wage_rates (
		occupation_code TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		base_rate TEXT NOT NULL,
		health_welfare TEXT NOT NULL,
		health_welfare_eo13706 TEXT NOT NULL
	);

	-- Davis-Bacon wage determination (CA20250001)
	-- total_rate is published data, stored independently of base+fringe
	CREATE TABLE IF NOT EXISTS davis_bacon_wage_rates (
		occupation_key TEXT PRIMARY KEY,
		occupation TEXT NOT NULL,
		base_rate TEXT NOT NULL,
		fringe_benefits TEXT NOT NULL,
		total_rate TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// seed inserts the built-in regulatory snapshot into empty tables.
func (s *Store) seed(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sca_wage_rates`).Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		for _, r := range sca.SnapshotRates() {
			if err := s.SaveSCAWageRate(ctx, r); err != nil {
				return err
			}
		}
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM davis_bacon_wage_rates`).Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		for _, r := range davisbacon.SnapshotRates() {
			if err := s.SaveDavisBaconWageRate(ctx, r); err != nil {
				return err
			}
		}
	}
	return nil
}

// =============================================================================
// SCA WAGE RATES
// =============================================================================

// SaveSCAWageRate inserts or replaces one SCA entry.
func (s *Store) SaveSCAWageRate(ctx context.Context, r sca.WageRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO sca_wage_rates
			(occupation_code, title, base_rate, health_welfare, health_welfare_eo13706)
		VALUES (?, ?, ?, ?, ?)`,
		r.OccupationCode, r.Title,
		r.BaseRate.String(), r.HealthWelfare.String(), r.HealthWelfareEO13706.String(),
	)
	return err
}

// SCAWageRates loads every SCA entry ordered by occupation code.
func (s *Store) SCAWageRates(ctx context.Context) ([]sca.WageRate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT occupation_code, title, base_rate, health_welfare, health_welfare_eo13706
		FROM sca_wage_rates ORDER BY occupation_code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []sca.WageRate
	for rows.Next() {
		var r sca.WageRate
		var base, hw, hwEO string
		if err := rows.Scan(&r.OccupationCode, &r.Title, &base, &hw, &hwEO); err != nil {
			return nil, err
		}
		if r.BaseRate, err = decimal.NewFromString(base); err != nil {
			return nil, fmt.Errorf("bad base_rate for %s: %w", r.OccupationCode, err)
		}
		if r.HealthWelfare, err = decimal.NewFromString(hw); err != nil {
			return nil, fmt.Errorf("bad health_welfare for %s: %w", r.OccupationCode, err)
		}
		if r.HealthWelfareEO13706, err = decimal.NewFromString(hwEO); err != nil {
			return nil, fmt.Errorf("bad health_welfare_eo13706 for %s: %w", r.OccupationCode, err)
		}
		rates = append(rates, r)
	}
	return rates, rows.Err()
}

// =============================================================================
// DAVIS-BACON WAGE RATES
// =============================================================================

// SaveDavisBaconWageRate inserts or replaces one Davis-Bacon entry.
func (s *Store) SaveDavisBaconWageRate(ctx context.Context, r davisbacon.WageRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO davis_bacon_wage_rates
			(occupation_key, occupation, base_rate, fringe_benefits, total_rate)
		VALUES (?, ?, ?, ?, ?)`,
		r.Key, r.Occupation,
		r.BaseRate.String(), r.FringeBenefit.String(), r.TotalRate.String(),
	)
	return err
}

// DavisBaconWageRates loads every Davis-Bacon entry ordered by key.
func (s *Store) DavisBaconWageRates(ctx context.Context) ([]davisbacon.WageRate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT occupation_key, occupation, base_rate, fringe_benefits, total_rate
		FROM davis_bacon_wage_rates ORDER BY occupation_key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []davisbacon.WageRate
	for rows.Next() {
		var r davisbacon.WageRate
		var base, fringe, total string
		if err := rows.Scan(&r.Key, &r.Occupation, &base, &fringe, &total); err != nil {
			return nil, err
		}
		if r.BaseRate, err = decimal.NewFromString(base); err != nil {
			return nil, fmt.Errorf("bad base_rate for %s: %w", r.Key, err)
		}
		if r.FringeBenefit, err = decimal.NewFromString(fringe); err != nil {
			return nil, fmt.Errorf("bad fringe_benefits for %s: %w", r.Key, err)
		}
		if r.TotalRate, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("bad total_rate for %s: %w", r.Key, err)
		}
		rates = append(rates, r)
	}
	return rates, rows.Err()
}
