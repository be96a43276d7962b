package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/openhwif/hwif-go/pkg/log"
)

func TestCollect(t *testing.T) {
	path := writeTrace(t, sampleEvents()...)

	stats, err := Collect(path)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if stats.TotalEvents != 4 {
		t.Errorf("TotalEvents = %d, want 4", stats.TotalEvents)
	}
	if got := stats.EventsByCategory[log.CategoryCycle]; got != 2 {
		t.Errorf("cycle events = %d, want 2", got)
	}
	if got := stats.ErrorsByStage[log.StageRead]; got != 1 {
		t.Errorf("read errors = %d, want 1", got)
	}
	if got := stats.Transitions["CONFIGURED -> STARTED"]; got != 1 {
		t.Errorf("transitions = %d, want 1", got)
	}
	if len(stats.Runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(stats.Runs))
	}

	run := stats.Runs["5f1c2a9e-0000-4000-8000-000000000001"]
	if run.Cycles != 2 || run.Overruns != 1 || run.Errors != 1 {
		t.Errorf("run stats = %+v", run)
	}
	if run.MaxDuration != 12*time.Millisecond {
		t.Errorf("MaxDuration = %s, want 12ms", run.MaxDuration)
	}
	if run.MeanDuration() != 6200*time.Microsecond {
		t.Errorf("MeanDuration = %s, want 6.2ms", run.MeanDuration())
	}
	if d := stats.TimeRange.End.Sub(stats.TimeRange.Start); d != 30*time.Millisecond {
		t.Errorf("time range = %s, want 30ms", d)
	}
}

func TestRunStatsOutput(t *testing.T) {
	path := writeTrace(t, sampleEvents()...)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Total Events: 4",
		"CYCLE:",
		"Runs: 1",
		"[5f1c2a9e] 2 cycles, 1 overruns, 1 errors",
		"READ:",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestRunStatsEmptyFile(t *testing.T) {
	path := writeTrace(t)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestRunStatsMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunStats("/nonexistent/trace.hwlog", &buf); err == nil {
		t.Error("expected error for missing file")
	}
}
