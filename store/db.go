// SPDX-License-Identifier: MIT
// Package: store
//
// db.go - SQLite connection, schema and run persistence.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/netecon/dynamics"
	"github.com/katalvlaran/netecon/matrix"
)

// Series names.
const (
	SeriesPrices  = "prices"
	SeriesStocks  = "stocks"
	SeriesWages   = "wages"
	SeriesMu      = "mu"
	SeriesBudget  = "budget"
	SeriesLabour  = "labour"
	SeriesQDemand = "q_demand"
	SeriesQReal   = "q_real"

	SeriesProfits   = "profits"
	SeriesCashflow  = "cashflow"
	SeriesBalance   = "balance"
	SeriesTradeflow = "tradeflow"
)

const memoryPath = ":memory:"

// DB wraps a SQLite connection for run persistence.
type DB struct {
	conn *sqlx.DB
}

// Run describes one saved run.
type Run struct {
	ID        string
	Label     string
	CreatedAt time.Time
	TMax      int
	N         int
	Policy    string
	Q         float64
	B         float64
}

// runRow is the scan target of the runs table.
type runRow struct {
	ID        string  `db:"id"`
	Label     string  `db:"label"`
	CreatedAt string  `db:"created_at"`
	TMax      int     `db:"t_max"`
	N         int     `db:"n"`
	Policy    string  `db:"policy"`
	Q         float64 `db:"q"`
	B         float64 `db:"b"`
}

// Open opens or creates a SQLite database at the given path. ":memory:"
// gives a private in-memory database.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if path == memoryPath {
		// Every pooled connection would see its own empty database.
		conn.SetMaxOpenConns(1)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		created_at TEXT NOT NULL,
		t_max INTEGER NOT NULL,
		n INTEGER NOT NULL,
		policy TEXT NOT NULL,
		q REAL NOT NULL,
		b REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS series (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		period INTEGER NOT NULL,
		idx INTEGER NOT NULL,
		value REAL,
		PRIMARY KEY (run_id, name, period, idx)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Attached returns the *DB attached to d with dynamics.WithStorage, if any.
func Attached(d *dynamics.Dynamics) (*DB, bool) {
	db, ok := d.Storage().(*DB)
	return db, ok && db != nil
}

// SaveRun stores every tensor of a completed run and returns the new run
// identifier.
//
// Errors: ErrRunIncomplete if d holds no completed run for its current
// initial conditions.
func (db *DB) SaveRun(d *dynamics.Dynamics, label string) (string, error) {
	if !d.RanWithCurrentIC() {
		return "", ErrRunIncomplete
	}
	accounts, err := d.AccountsSeries()
	if err != nil {
		return "", fmt.Errorf("accounts: %w", err)
	}
	id := uuid.New().String()
	eco := d.Economy()

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	q := eco.Q
	if math.IsInf(q, 1) {
		q = math.MaxFloat64 // +Inf is stored as the largest finite REAL
	}
	_, err = tx.Exec(`INSERT INTO runs (id, label, created_at, t_max, n, policy, q, b)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, label, time.Now().UTC().Format(time.RFC3339Nano), d.TMax(), d.N(), d.Policy().Name(), q, eco.B)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Preparex("INSERT INTO series (run_id, name, period, idx, value) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	var rows int
	insert := func(name string, period int, values []float64) error {
		for i, v := range values {
			var val any = v
			if math.IsNaN(v) || math.IsInf(v, 0) {
				val = nil
			}
			if _, err := stmt.Exec(id, name, period, i, val); err != nil {
				return fmt.Errorf("insert %s[%d][%d]: %w", name, period, i, err)
			}
			rows++
		}

		return nil
	}

	for t := 0; t <= d.TMax(); t++ {
		if err := insert(SeriesPrices, t, d.Prices.Row(t)); err != nil {
			return "", err
		}
		if err := insert(SeriesStocks, t, d.Stocks.Row(t)); err != nil {
			return "", err
		}
		for name, vec := range map[string][]float64{
			SeriesWages: d.Wages, SeriesMu: d.Mu, SeriesBudget: d.Budget, SeriesLabour: d.Labour,
		} {
			if err := insert(name, t, vec[t:t+1]); err != nil {
				return "", err
			}
		}
		if err := insert(SeriesQDemand, t, d.QDemand[t].Flatten()); err != nil {
			return "", err
		}
		if err := insert(SeriesQReal, t, d.QReal[t].Flatten()); err != nil {
			return "", err
		}
		for name, m := range map[string]*matrix.Dense{
			SeriesProfits: accounts.Profits, SeriesCashflow: accounts.Cashflow,
			SeriesBalance: accounts.Balance, SeriesTradeflow: accounts.Tradeflow,
		} {
			if err := insert(name, t, m.Row(t)); err != nil {
				return "", err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	slog.Info("run saved", "run", id, "label", label, "t_max", d.TMax(), "n", d.N(), "values", rows)

	return id, nil
}

// GetRun returns the metadata of one run.
func (db *DB) GetRun(id string) (Run, error) {
	var r runRow
	err := db.conn.Get(&r, "SELECT id, label, created_at, t_max, n, policy, q, b FROM runs WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, err
	}

	return r.run()
}

// Runs lists every saved run, oldest first.
func (db *DB) Runs() ([]Run, error) {
	var rows []runRow
	err := db.conn.Select(&rows, "SELECT id, label, created_at, t_max, n, policy, q, b FROM runs ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	out := make([]Run, len(rows))
	for i, r := range rows {
		if out[i], err = r.run(); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (r runRow) run() (Run, error) {
	created, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return Run{}, fmt.Errorf("run %s: created_at: %w", r.ID, err)
	}
	q := r.Q
	if q == math.MaxFloat64 {
		q = math.Inf(1)
	}

	return Run{ID: r.ID, Label: r.Label, CreatedAt: created, TMax: r.TMax, N: r.N, Policy: r.Policy, Q: q, B: r.B}, nil
}

// width returns the number of values per period of a series.
func width(name string, n int) (int, error) {
	switch name {
	case SeriesPrices, SeriesStocks, SeriesProfits, SeriesCashflow:
		return n, nil
	case SeriesBalance, SeriesTradeflow:
		return n + 1, nil
	case SeriesWages, SeriesMu, SeriesBudget, SeriesLabour:
		return 1, nil
	case SeriesQDemand, SeriesQReal:
		return (n + 1) * (n + 1), nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownSeries)
	}
}

// LoadSeries returns a saved series as a (t_max+1)×width matrix, one row per
// period. Values that were not finite come back as NaN.
func (db *DB) LoadSeries(runID, name string) (*matrix.Dense, error) {
	run, err := db.GetRun(runID)
	if err != nil {
		return nil, err
	}
	w, err := width(name, run.N)
	if err != nil {
		return nil, err
	}

	var points []struct {
		Period int             `db:"period"`
		Idx    int             `db:"idx"`
		Value  sql.NullFloat64 `db:"value"`
	}
	err = db.conn.Select(&points,
		"SELECT period, idx, value FROM series WHERE run_id = ? AND name = ? ORDER BY period, idx",
		runID, name,
	)
	if err != nil {
		return nil, err
	}

	out, err := matrix.NewDense(run.TMax+1, w)
	if err != nil {
		return nil, err
	}
	for _, p := range points {
		v := math.NaN()
		if p.Value.Valid {
			v = p.Value.Float64
		}
		if err := out.Set(p.Period, p.Idx, v); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	return out, nil
}

// DeleteRun removes a run and its series.
func (db *DB) DeleteRun(id string) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM series WHERE run_id = ?", id); err != nil {
		return err
	}
	res, err := tx.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", id, ErrRunNotFound)
	}

	return tx.Commit()
}
