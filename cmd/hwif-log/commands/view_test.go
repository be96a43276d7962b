package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/openhwif/hwif-go/pkg/log"
)

func TestFormatTransitionEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[0])
	output := buf.String()

	for _, want := range []string{
		"2026-03-02T09:00:00.000000Z",
		"[run:5f1c2a9e]",
		"TRANSITION",
		"arm",
		"CONFIGURED -> STARTED",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestFormatCycleEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[1])
	output := buf.String()

	if !strings.Contains(output, "Cycle: 1") {
		t.Errorf("expected cycle number, got: %s", output)
	}
	if !strings.Contains(output, "400µs") {
		t.Errorf("expected duration in microseconds, got: %s", output)
	}
	// Values are sorted by name.
	pos := strings.Index(output, "joint1/position = 0.05")
	vel := strings.Index(output, "joint1/velocity = 5")
	if pos < 0 || vel < 0 || pos > vel {
		t.Errorf("expected sorted values, got: %s", output)
	}
	if strings.Contains(output, "OVERRUN") {
		t.Errorf("unexpected OVERRUN marker: %s", output)
	}
	// Loop-wide events have no component.
	if !strings.Contains(output, "CYCLE      -") {
		t.Errorf("expected placeholder component, got: %s", output)
	}
}

func TestFormatOverrunCycle(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[2])
	output := buf.String()

	if !strings.Contains(output, "OVERRUN") {
		t.Errorf("expected OVERRUN marker, got: %s", output)
	}
	if !strings.Contains(output, "12.000ms") {
		t.Errorf("expected millisecond duration, got: %s", output)
	}
}

func TestFormatErrorEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[3])
	output := buf.String()

	for _, want := range []string{"ERROR", "Stage: READ", "Cycle: 3", "Message: encoder fault"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestShortenRunID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"5f1c2a9e-0000", "5f1c2a9e"},
		{"short", "short"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := shortenRunID(tt.in); got != tt.want {
			t.Errorf("shortenRunID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRunViewFiltersByCategory(t *testing.T) {
	path := writeTrace(t, sampleEvents()...)

	cat := log.CategoryCycle
	var buf bytes.Buffer
	if err := RunView(path, log.Filter{Category: &cat}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	if got := strings.Count(output, "CYCLE"); got != 2 {
		t.Errorf("expected 2 cycle events, got %d: %s", got, output)
	}
	if strings.Contains(output, "TRANSITION") || strings.Contains(output, "encoder fault") {
		t.Errorf("filter let other categories through: %s", output)
	}
}

func TestRunViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunView("/nonexistent/trace.hwlog", log.Filter{}, &buf); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFilterOptionsBuild(t *testing.T) {
	tests := []struct {
		name    string
		opts    FilterOptions
		wantErr bool
		check   func(t *testing.T, f log.Filter)
	}{
		{
			name: "empty",
			check: func(t *testing.T, f log.Filter) {
				if f.Category != nil || f.TimeStart != nil || f.TimeEnd != nil {
					t.Errorf("expected empty filter, got %+v", f)
				}
			},
		},
		{
			name: "category and component",
			opts: FilterOptions{Category: "error", Component: "arm", RunID: "r1"},
			check: func(t *testing.T, f log.Filter) {
				if f.Category == nil || *f.Category != log.CategoryError {
					t.Errorf("Category = %v, want ERROR", f.Category)
				}
				if f.Component != "arm" || f.RunID != "r1" {
					t.Errorf("unexpected filter %+v", f)
				}
			},
		},
		{
			name: "time range",
			opts: FilterOptions{TimeStart: "2026-03-02T09:00:00Z", TimeEnd: "2026-03-02T10:00:00Z"},
			check: func(t *testing.T, f log.Filter) {
				if f.TimeStart == nil || !f.TimeStart.Equal(baseTime) {
					t.Errorf("TimeStart = %v", f.TimeStart)
				}
				if f.TimeEnd == nil || f.TimeEnd.Sub(baseTime) != time.Hour {
					t.Errorf("TimeEnd = %v", f.TimeEnd)
				}
			},
		},
		{name: "bad category", opts: FilterOptions{Category: "frames"}, wantErr: true},
		{name: "bad time", opts: FilterOptions{TimeStart: "yesterday"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := tt.opts.Build()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			tt.check(t, f)
		})
	}
}
