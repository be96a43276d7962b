// Package commands implements the hwif-log CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/openhwif/hwif-go/pkg/log"
)

// RunView prints every event matching filter in human-readable form.
func RunView(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [run:id] CATEGORY component
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	name := event.Component
	if name == "" {
		name = "-"
	}
	fmt.Fprintf(w, "%s [run:%s] %-10s %s\n", ts, shortenRunID(event.RunID), event.Category.String(), name)

	switch {
	case event.Transition != nil:
		fmt.Fprintf(w, "  %s -> %s\n", event.Transition.From, event.Transition.To)
	case event.Cycle != nil:
		formatCycleDetails(w, event.Cycle)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// shortenRunID returns the first 8 characters of the run ID.
func shortenRunID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatCycleDetails(w io.Writer, c *log.CycleEvent) {
	fmt.Fprintf(w, "  Cycle: %d  Duration: %s", c.Sequence, formatDuration(c.Duration))
	if c.Overrun {
		fmt.Fprint(w, "  OVERRUN")
	}
	fmt.Fprintln(w)

	names := make([]string, 0, len(c.Values))
	for name := range c.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "    %s = %s\n", name, c.Values[name])
	}
}

func formatErrorDetails(w io.Writer, e *log.ErrorEventData) {
	fmt.Fprintf(w, "  Stage: %s\n", e.Stage.String())
	if e.Sequence > 0 {
		fmt.Fprintf(w, "  Cycle: %d\n", e.Sequence)
	}
	fmt.Fprintf(w, "  Message: %s\n", e.Message)
}

// formatDuration prints sub-millisecond durations in microseconds.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
}
