package history

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"

	"biodesign/internal/design"
	"biodesign/internal/profile"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func record(t *testing.T, s *Store, d *design.Design) *Run {
	t.Helper()
	curves, err := profile.ComputeDefault(float64(d.Parameters.Duration))
	if err != nil {
		t.Fatal(err)
	}
	run, err := s.Record(d, curves)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	return run
}

func TestStore_RecordAndGet(t *testing.T) {
	s := newTestStore(t)

	run := record(t, s, design.Default())
	if run.ID == "" {
		t.Error("run should get an id")
	}
	if run.ProcessType != "Batch Culture" || run.Duration != 168 {
		t.Errorf("unexpected run metadata: %+v", run)
	}
	if run.FinalBiomass <= 9 || run.FinalBiomass > 10 {
		t.Errorf("final biomass after 168h should be close to carrying capacity, got %v", run.FinalBiomass)
	}

	got, err := s.Get(run.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != run.ID || got.Organism != "CHO Cells" {
		t.Errorf("Get returned wrong run: %+v", got)
	}

	d, err := got.Design()
	if err != nil {
		t.Fatalf("snapshot did not parse: %v", err)
	}
	if d.Parameters.Duration != 168 {
		t.Errorf("snapshot duration: expected 168, got %d", d.Parameters.Duration)
	}
}

func TestStore_Get_Missing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get("no-such-run")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := newTestStore(t)

	first := record(t, s, design.Default())
	time.Sleep(5 * time.Millisecond) // distinct created_at timestamps

	d := design.Default()
	d.Config.Organism = "E. coli"
	second := record(t, s, d)

	runs, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second.ID || runs[1].ID != first.ID {
		t.Errorf("runs not in newest-first order: %s, %s", runs[0].ID, runs[1].ID)
	}
}

func TestStore_ClearAndCount(t *testing.T) {
	s := newTestStore(t)

	record(t, s, design.Default())
	record(t, s, design.Default())

	n, err := s.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 runs, got %d", n)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	n, err = s.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("expected empty store after Clear, got %d", n)
	}
}

func TestStore_FreshStoreIsEmpty(t *testing.T) {
	// Ephemerality check: a new store never sees another store's runs.
	a := newTestStore(t)
	record(t, a, design.Default())

	b := newTestStore(t)
	n, err := b.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("fresh store should be empty, got %d runs", n)
	}
}
