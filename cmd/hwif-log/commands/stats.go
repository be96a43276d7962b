package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/openhwif/hwif-go/pkg/log"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	ErrorsByStage    map[log.Stage]int
	Runs             map[string]*RunSummary
	Transitions      map[string]int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// RunSummary holds statistics for a single control-loop run.
type RunSummary struct {
	FirstSeen   time.Time
	LastSeen    time.Time
	Cycles      int
	Overruns    int
	Errors      int
	MaxDuration time.Duration
	total       time.Duration
}

// MeanDuration returns the average cycle duration.
func (r *RunSummary) MeanDuration() time.Duration {
	if r.Cycles == 0 {
		return 0
	}
	return r.total / time.Duration(r.Cycles)
}

// Collect reads every event from path and aggregates them.
func Collect(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		ErrorsByStage:    make(map[log.Stage]int),
		Runs:             make(map[string]*RunSummary),
		Transitions:      make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		run, ok := stats.Runs[event.RunID]
		if !ok {
			run = &RunSummary{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
			stats.Runs[event.RunID] = run
		}
		if event.Timestamp.After(run.LastSeen) {
			run.LastSeen = event.Timestamp
		}

		switch {
		case event.Transition != nil:
			stats.Transitions[event.Transition.From+" -> "+event.Transition.To]++
		case event.Cycle != nil:
			run.Cycles++
			run.total += event.Cycle.Duration
			if event.Cycle.Overrun {
				run.Overruns++
			}
			if event.Cycle.Duration > run.MaxDuration {
				run.MaxDuration = event.Cycle.Duration
			}
		case event.Error != nil:
			run.Errors++
			stats.ErrorsByStage[event.Error.Stage]++
		}
	}
	return stats, nil
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := Collect(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Control Loop Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryTransition, log.CategoryCycle, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.Transitions) > 0 {
		fmt.Fprintln(w, "Transitions:")
		keys := make([]string, 0, len(stats.Transitions))
		for k := range stats.Transitions {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "  %-28s %d\n", k, stats.Transitions[k])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Runs: %d\n", len(stats.Runs))
	type runInfo struct {
		id    string
		stats *RunSummary
	}
	runs := make([]runInfo, 0, len(stats.Runs))
	for id, rs := range stats.Runs {
		runs = append(runs, runInfo{id, rs})
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].stats.FirstSeen.Before(runs[j].stats.FirstSeen)
	})
	for _, r := range runs {
		fmt.Fprintf(w, "  [%s] %d cycles, %d overruns, %d errors\n",
			shortenRunID(r.id), r.stats.Cycles, r.stats.Overruns, r.stats.Errors)
		if r.stats.Cycles > 0 {
			fmt.Fprintf(w, "           Cycle time: mean %s, max %s\n",
				formatDuration(r.stats.MeanDuration()), formatDuration(r.stats.MaxDuration))
		}
	}

	if len(stats.ErrorsByStage) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Errors by Stage:")
		for s := log.StageConfigure; s <= log.StageWrite; s++ {
			if count := stats.ErrorsByStage[s]; count > 0 {
				fmt.Fprintf(w, "  %-12s %d\n", s.String()+":", count)
			}
		}
	}
}
