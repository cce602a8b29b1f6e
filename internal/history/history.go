// Package history keeps a session-scoped record of computed runs. The store
// is an in-memory SQLite database: queryable like any other store but gone
// when the process exits, so nothing is ever persisted between sessions.
package history

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"biodesign/internal/design"
	"biodesign/internal/profile"
)

// Run is one recorded profile computation.
type Run struct {
	ID           string
	CreatedAt    time.Time
	ProcessType  string
	Organism     string
	Scale        string
	Duration     int     // hours
	FinalBiomass float64 // g/L at the end of the run
	FinalProduct float64 // g/L at the end of the run
	Snapshot     []byte  // YAML design snapshot
}

// Store is the in-memory run history.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewStore opens a fresh in-memory history store.
func NewStore() (*Store, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}
	// An in-memory database exists per connection; keep the pool at one so
	// every query sees the same database.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return s, nil
}

// Close releases the store. All history is lost, by design.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		process_type TEXT NOT NULL,
		organism TEXT NOT NULL,
		scale TEXT NOT NULL,
		duration INTEGER NOT NULL,
		final_biomass REAL NOT NULL,
		final_product REAL NOT NULL,
		snapshot BLOB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores a run computed from d with its resulting curves and returns
// the stored entry.
func (s *Store) Record(d *design.Design, curves *profile.Curves) (*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := d.Marshal()
	if err != nil {
		return nil, err
	}

	n := curves.Len()
	run := &Run{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now().UTC(),
		ProcessType:  string(d.Config.ProcessType),
		Organism:     d.Config.Organism,
		Scale:        string(d.Config.Scale),
		Duration:     d.Parameters.Duration,
		FinalBiomass: curves.Biomass[n-1],
		FinalProduct: curves.Product[n-1],
		Snapshot:     snapshot,
	}

	_, err = s.db.Exec(`
		INSERT INTO runs (id, created_at, process_type, organism, scale, duration, final_biomass, final_product, snapshot)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt, run.ProcessType, run.Organism, run.Scale,
		run.Duration, run.FinalBiomass, run.FinalProduct, run.Snapshot,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}
	return run, nil
}

// List returns all recorded runs, newest first.
func (s *Store) List() ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, created_at, process_type, organism, scale, duration, final_biomass, final_product, snapshot
		FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		r := &Run{}
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.ProcessType, &r.Organism, &r.Scale,
			&r.Duration, &r.FinalBiomass, &r.FinalProduct, &r.Snapshot); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Get returns the run with the given id, or sql.ErrNoRows.
func (s *Store) Get(id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := &Run{}
	err := s.db.QueryRow(`
		SELECT id, created_at, process_type, organism, scale, duration, final_biomass, final_product, snapshot
		FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &r.CreatedAt, &r.ProcessType, &r.Organism, &r.Scale,
			&r.Duration, &r.FinalBiomass, &r.FinalProduct, &r.Snapshot)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Design reconstructs the design snapshot stored with the run.
func (r *Run) Design() (*design.Design, error) {
	return design.Unmarshal(r.Snapshot)
}

// Clear drops all recorded runs.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`DELETE FROM runs`)
	return err
}

// Count returns the number of recorded runs.
func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n)
	return n, err
}
