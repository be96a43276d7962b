package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.hwlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, path string, filter Filter) []Event {
	t.Helper()
	reader, err := NewFilteredReader(path, filter)
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	var read []Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}
	return read
}

func TestReaderIteratesEvents(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), RunID: "run-1", Component: "arm", Category: CategoryTransition},
		{Timestamp: time.Now(), RunID: "run-1", Category: CategoryCycle},
		{Timestamp: time.Now(), RunID: "run-1", Component: "arm", Category: CategoryError},
	}
	path := createTestLogFile(t, events)

	read := readAll(t, path, Filter{})
	if len(read) != 3 {
		t.Fatalf("got %d events, want 3", len(read))
	}
	for i := range events {
		if read[i].Category != events[i].Category {
			t.Errorf("event %d: Category = %s, want %s", i, read[i].Category, events[i].Category)
		}
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.hwlog")

	logger, _ := NewFileLogger(path)
	logger.Close()

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != io.EOF {
		t.Errorf("expected io.EOF, got err=%v, event=%+v", err, event)
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.hwlog")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	cycle := CategoryCycle
	transition := CategoryTransition

	events := []Event{
		{Timestamp: base.Add(-time.Hour), RunID: "run-1", Component: "arm", Category: CategoryTransition},
		{Timestamp: base, RunID: "run-1", Category: CategoryCycle},
		{Timestamp: base.Add(30 * time.Minute), RunID: "run-2", Component: "gripper", Category: CategoryTransition},
		{Timestamp: base.Add(2 * time.Hour), RunID: "run-2", Category: CategoryCycle},
	}
	path := createTestLogFile(t, events)

	start := base.Add(-5 * time.Minute)
	end := base.Add(time.Hour)

	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{"none", Filter{}, []int{0, 1, 2, 3}},
		{"run id", Filter{RunID: "run-2"}, []int{2, 3}},
		{"component", Filter{Component: "arm"}, []int{0}},
		{"category", Filter{Category: &cycle}, []int{1, 3}},
		{"time range", Filter{TimeStart: &start, TimeEnd: &end}, []int{1, 2}},
		{"combined", Filter{RunID: "run-2", Category: &transition}, []int{2}},
		{"no match", Filter{RunID: "run-3"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			read := readAll(t, path, tt.filter)
			if len(read) != len(tt.want) {
				t.Fatalf("got %d events, want %d", len(read), len(tt.want))
			}
			for i, idx := range tt.want {
				if !read[i].Timestamp.Equal(events[idx].Timestamp) {
					t.Errorf("event %d: Timestamp = %v, want %v", i, read[i].Timestamp, events[idx].Timestamp)
				}
			}
		})
	}
}
