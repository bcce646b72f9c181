// Package store provides SQLite-based persistence for evaluation runs, so
// past analyses can be listed and re-read without re-parsing the dive log.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/reefscope/divetrace/internal/deco"
)

// DB wraps a SQLite connection for run persistence.
type DB struct {
	conn *sqlx.DB
}

// Run describes one stored evaluation of a dive log.
type Run struct {
	ID             string    `db:"id"`
	CreatedAt      time.Time `db:"created_at"`
	Source         string    `db:"source"`
	GradientFactor float64   `db:"gradient_factor"`
	GasFraction    float64   `db:"gas_fraction"`
	SampleCount    int       `db:"sample_count"`
}

// Open opens or creates a SQLite database at the given path, creating the
// parent directory if needed.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
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
		created_at TIMESTAMP NOT NULL,
		source TEXT NOT NULL,
		gradient_factor REAL NOT NULL,
		gas_fraction REAL NOT NULL,
		sample_count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS samples (
		run_id TEXT NOT NULL REFERENCES runs(id),
		time REAL NOT NULL,
		tissue INTEGER NOT NULL,
		depth REAL NOT NULL,
		ambient REAL NOT NULL,
		tissue_pressure REAL NOT NULL,
		ceiling REAL NOT NULL,
		in_deco INTEGER NOT NULL,
		m_value_surface REAL NOT NULL,
		ndl REAL,
		reported_ndl REAL
	);

	CREATE INDEX IF NOT EXISTS idx_samples_run_time ON samples(run_id, time);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun stores an evaluated series under a fresh run ID and returns it.
// Undefined NDLs (NaN) are stored as NULL.
func (db *DB) SaveRun(source string, opts deco.Options, samples []deco.EvaluatedSample) (Run, error) {
	run := Run{
		ID:             uuid.NewString(),
		CreatedAt:      time.Now().UTC(),
		Source:         source,
		GradientFactor: opts.GradientFactor,
		GasFraction:    opts.GasFraction,
		SampleCount:    len(samples),
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return Run{}, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs
		(id, created_at, source, gradient_factor, gas_fraction, sample_count)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt, run.Source, run.GradientFactor, run.GasFraction, run.SampleCount,
	)
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO samples
		(run_id, time, tissue, depth, ambient, tissue_pressure,
		 ceiling, in_deco, m_value_surface, ndl, reported_ndl)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, err
	}
	defer stmt.Close()

	for _, s := range samples {
		inDeco := 0
		if s.InDeco {
			inDeco = 1
		}
		_, err := stmt.Exec(
			run.ID, s.Time, s.TissueIndex, s.Depth, s.Ambient, s.TissuePressure,
			s.Ceiling, inDeco, s.MValueSurface, nullable(s.NDL), nullable(s.ReportedNDL),
		)
		if err != nil {
			return Run{}, fmt.Errorf("insert sample t=%v tissue=%d: %w", s.Time, s.TissueIndex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, err
	}

	slog.Info("run saved", "run", run.ID, "source", source, "samples", len(samples))
	return run, nil
}

// RecentRuns returns the most recent runs, newest first.
func (db *DB) RecentRuns(limit int) ([]Run, error) {
	var runs []Run
	err := db.conn.Select(&runs,
		`SELECT id, created_at, source, gradient_factor, gas_fraction, sample_count
		 FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	return runs, err
}

// RunSamples reads back the evaluated series of a run in (time, tissue) order.
func (db *DB) RunSamples(runID string) ([]deco.EvaluatedSample, error) {
	rows, err := db.conn.Queryx(
		`SELECT time, tissue, depth, ambient, tissue_pressure,
		        ceiling, in_deco, m_value_surface, ndl, reported_ndl
		 FROM samples WHERE run_id = ? ORDER BY time, tissue`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []deco.EvaluatedSample
	for rows.Next() {
		var (
			s      deco.EvaluatedSample
			inDeco int
			ndl    sql.NullFloat64
			repNDL sql.NullFloat64
		)
		err := rows.Scan(&s.Time, &s.TissueIndex, &s.Depth, &s.Ambient, &s.TissuePressure,
			&s.Ceiling, &inDeco, &s.MValueSurface, &ndl, &repNDL)
		if err != nil {
			return nil, err
		}
		s.InDeco = inDeco != 0
		s.NDL = fromNullable(ndl)
		s.ReportedNDL = fromNullable(repNDL)
		out = append(out, s)
	}
	return out, rows.Err()
}

func nullable(v float64) any {
	if math.IsNaN(v) {
		return nil
	}
	return v
}

func fromNullable(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
