package integration

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	mcwlog "github.com/msto63/mCW/foundation/core/log"
	"github.com/msto63/mCW/internal/history"
)

// quietLogger keeps parser traces out of the test output.
func quietLogger() *mcwlog.Logger {
	return mcwlog.New().WithOutput(io.Discard)
}

// writeFixture writes one input file into a fresh temp directory and
// returns its path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

// openTestStore opens a run database in a temp directory and closes it
// when the test finishes.
func openTestStore(t *testing.T) history.RunStore {
	t.Helper()
	store, err := history.NewSQLiteStore(history.SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "runs.db"),
	})
	if err != nil {
		t.Fatalf("opening run store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// testContext returns a context with timeout for tests
func testContext(t *testing.T, timeout time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), timeout)
}

// requireNoError fails the test if err is not nil
func requireNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
}

// requireTrue fails the test if condition is false
func requireTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Fatalf("Expected true: %s", msg)
	}
}

// requireEqual fails the test if expected != actual
func requireEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("%s: expected %v, got %v", msg, expected, actual)
	}
}

// requireNotEmpty fails the test if value is empty
func requireNotEmpty(t *testing.T, value string, msg string) {
	t.Helper()
	if value == "" {
		t.Fatalf("%s: expected non-empty string", msg)
	}
}

// logTestStart logs the start of a test with tool info
func logTestStart(t *testing.T, toolName, testName string) {
	t.Helper()
	t.Logf("=== %s: %s ===", toolName, testName)
}
