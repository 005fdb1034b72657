// File: timer_test.go
// Title: Operation Timer Tests
// Description: Unit tests for the operation timer.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-02-24
// Modified: 2026-02-24
//
// Change History:
// - 2026-02-24 v0.1.0: Initial tests

package log

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTimerStop(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	timer := logger.StartTimer("sdc.parse").WithField("file", "top.sdc")
	time.Sleep(time.Millisecond)
	elapsed := timer.Stop()

	if elapsed <= 0 {
		t.Errorf("Stop() elapsed = %v, want > 0", elapsed)
	}

	out := buf.String()
	if !strings.Contains(out, "sdc.parse completed") {
		t.Errorf("completion message missing: %q", out)
	}
	if !strings.Contains(out, "file=top.sdc") {
		t.Errorf("timer field missing: %q", out)
	}
	if !strings.Contains(out, "duration=") {
		t.Errorf("duration missing: %q", out)
	}
}

func TestTimerStopTwice(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	timer := logger.StartTimer("op")
	timer.Stop()
	timer.Stop()

	if got := strings.Count(buf.String(), "op completed"); got != 1 {
		t.Errorf("completion logged %d times, want 1", got)
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	timer := logger.StartTimer("sdc.parse")
	timer.StopWithError(errors.New("strict mode abort"))

	out := buf.String()
	if !strings.Contains(out, "[WRN]") {
		t.Errorf("failure must log at warn level: %q", out)
	}
	if !strings.Contains(out, "sdc.parse failed") {
		t.Errorf("failure message missing: %q", out)
	}
	if !strings.Contains(out, "strict mode abort") {
		t.Errorf("error missing: %q", out)
	}
}

func TestTimerBelowLevel(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	logger.StartTimer("quiet").Stop()

	if buf.Len() != 0 {
		t.Errorf("debug-level timer emitted output at info level: %q", buf.String())
	}
}
