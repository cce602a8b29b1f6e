package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biodesign/internal/design"
	"biodesign/internal/export"
	"biodesign/internal/logging"
)

func newTestWatcher(t *testing.T) (*Watcher, string, string) {
	t.Helper()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "design.yaml")
	outDir := filepath.Join(tmpDir, "out")
	require.NoError(t, design.Default().Save(path))

	w, err := New(path, outDir, logging.Nop())
	require.NoError(t, err)
	w.debounce = 50 * time.Millisecond
	return w, path, outDir
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return cond()
}

func TestWatcher_InitialExport(t *testing.T) {
	w, _, outDir := newTestWatcher(t)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	assert.Equal(t, 1, w.Snapshot().Exports, "exactly one initial export")
	_, err := os.Stat(filepath.Join(outDir, export.SummaryFileName))
	assert.NoError(t, err, "initial export artifact missing")
}

func TestWatcher_ReexportsOnChange(t *testing.T) {
	w, path, outDir := newTestWatcher(t)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	d := design.Default()
	d.Config.Organism = "E. coli"
	require.NoError(t, d.Save(path))

	require.True(t,
		waitFor(t, 5*time.Second, func() bool { return w.Snapshot().Exports >= 2 }),
		"expected a re-export after change, stats %+v", w.Snapshot())

	reloaded, err := design.Load(filepath.Join(outDir, export.DesignFileName))
	require.NoError(t, err)
	assert.Equal(t, "E. coli", reloaded.Config.Organism, "exported design not refreshed")
}

func TestWatcher_SkipsInvalidDesign(t *testing.T) {
	w, path, _ := newTestWatcher(t)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	bad := design.Default()
	bad.Parameters.Duration = -1
	require.NoError(t, bad.Save(path))

	require.True(t,
		waitFor(t, 5*time.Second, func() bool { return w.Snapshot().InvalidLoads >= 1 }),
		"expected invalid load to be counted, stats %+v", w.Snapshot())
	assert.Equal(t, 1, w.Snapshot().Exports, "invalid design must not be exported")
}

func TestWatcher_FailedStartLeavesStopSafe(t *testing.T) {
	tmpDir := t.TempDir()
	// The design's parent directory does not exist, so the watch add fails.
	path := filepath.Join(tmpDir, "missing", "design.yaml")
	w, err := New(path, filepath.Join(tmpDir, "out"), logging.Nop())
	require.NoError(t, err)

	require.Error(t, w.Start(context.Background()))

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked after a failed Start")
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, _, _ := newTestWatcher(t)
	require.NoError(t, w.Start(context.Background()))

	w.Stop()
	w.Stop() // second call must not panic or block
}
