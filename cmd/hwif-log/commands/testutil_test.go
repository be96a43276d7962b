package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/openhwif/hwif-go/pkg/log"
)

var baseTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// writeTrace writes events to a fresh trace file and returns its path.
func writeTrace(t *testing.T, events ...log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.hwlog")
	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func sampleEvents() []log.Event {
	return []log.Event{
		{
			Timestamp:  baseTime,
			RunID:      "5f1c2a9e-0000-4000-8000-000000000001",
			Component:  "arm",
			Category:   log.CategoryTransition,
			Transition: &log.TransitionEvent{From: "CONFIGURED", To: "STARTED"},
		},
		{
			Timestamp: baseTime.Add(10 * time.Millisecond),
			RunID:     "5f1c2a9e-0000-4000-8000-000000000001",
			Category:  log.CategoryCycle,
			Cycle: &log.CycleEvent{
				Sequence: 1,
				Duration: 400 * time.Microsecond,
				Values:   map[string]string{"joint1/velocity": "5", "joint1/position": "0.05"},
			},
		},
		{
			Timestamp: baseTime.Add(20 * time.Millisecond),
			RunID:     "5f1c2a9e-0000-4000-8000-000000000001",
			Category:  log.CategoryCycle,
			Cycle:     &log.CycleEvent{Sequence: 2, Duration: 12 * time.Millisecond, Overrun: true},
		},
		{
			Timestamp: baseTime.Add(30 * time.Millisecond),
			RunID:     "5f1c2a9e-0000-4000-8000-000000000001",
			Component: "arm",
			Category:  log.CategoryError,
			Error:     &log.ErrorEventData{Stage: log.StageRead, Message: "encoder fault", Sequence: 3},
		},
	}
}
