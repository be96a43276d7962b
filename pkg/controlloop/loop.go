// Package controlloop drives imported hardware through periodic
// read/update/write cycles.
//
// Each cycle reads every component, lets every controller compute new
// commands from the fresh state, and writes every component. The loop runs
// on a single goroutine, so a cycle's reads always complete before its
// updates, and its updates before its writes.
package controlloop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openhwif/hwif-go/pkg/component"
	"github.com/openhwif/hwif-go/pkg/handle"
	"github.com/openhwif/hwif-go/pkg/log"
)

// Hardware is the set of components a loop drives. *resource.Manager
// implements it. A failed StartAll leaves no component started.
type Hardware interface {
	StartAll() error
	StopAll() error
	ReadAll(ctx context.Context) error
	WriteAll(ctx context.Context) error
	Snapshot() map[string]handle.Value
}

// Controller computes commands from state once per cycle.
type Controller interface {
	Update(ctx context.Context, period time.Duration) error
}

// ControllerFunc adapts a function to Controller.
type ControllerFunc func(ctx context.Context, period time.Duration) error

// Update calls f.
func (f ControllerFunc) Update(ctx context.Context, period time.Duration) error {
	return f(ctx, period)
}

// Stats summarizes a run.
type Stats struct {
	RunID     string
	Cycles    uint64
	Errors    uint64
	Overruns  uint64
	LastCycle time.Duration
}

// Loop runs the control cycle.
type Loop struct {
	hw          Hardware
	cfg         Config
	logger      *slog.Logger
	trace       log.Logger
	controllers []Controller
	now         func() time.Time
	runID       string

	mu    sync.Mutex
	stats Stats
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the operational logger.
func WithLogger(l *slog.Logger) Option {
	return func(loop *Loop) {
		loop.logger = l
	}
}

// WithTrace sets the trace logger.
func WithTrace(t log.Logger) Option {
	return func(loop *Loop) {
		loop.trace = t
	}
}

// WithController adds a controller. Controllers run in the order added.
func WithController(c Controller) Option {
	return func(loop *Loop) {
		loop.controllers = append(loop.controllers, c)
	}
}

// WithClock replaces time.Now for cycle timing.
func WithClock(now func() time.Time) Option {
	return func(loop *Loop) {
		loop.now = now
	}
}

// WithRunID sets the run id instead of generating one.
func WithRunID(id string) Option {
	return func(loop *Loop) {
		loop.runID = id
	}
}

// New creates a loop over hw. The config must be valid.
func New(hw Hardware, cfg Config, opts ...Option) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := &Loop{
		hw:     hw,
		cfg:    cfg,
		logger: slog.Default(),
		trace:  log.NoopLogger{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.runID == "" {
		l.runID = uuid.NewString()
	}
	l.stats.RunID = l.runID
	return l, nil
}

// RunID returns the id stamped on this loop's trace events.
func (l *Loop) RunID() string {
	return l.runID
}

// Stats returns a copy of the run statistics.
func (l *Loop) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

// Run starts all components and cycles until ctx is cancelled or too many
// cycles fail in a row. Cancellation returns nil; giving up returns the last
// cycle error. The hardware is stopped in both cases, on cancellation only
// if StopOnExit is set.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.hw.StartAll(); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	l.logger.Info("control loop started", "runID", l.runID, "period", l.cfg.Period)

	ticker := time.NewTicker(l.cfg.Period)
	defer ticker.Stop()

	consecutive := 0
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("control loop stopping", "runID", l.runID, "cycles", l.Stats().Cycles)
			if l.cfg.StopOnExit {
				return l.hw.StopAll()
			}
			return nil

		case <-ticker.C:
			err := l.Step(ctx)
			if err == nil {
				consecutive = 0
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			consecutive++
			l.logger.Warn("control cycle failed", "error", err, "consecutive", consecutive)
			if consecutive >= l.cfg.MaxConsecutiveErrors {
				l.logger.Error("too many failed cycles, stopping hardware", "runID", l.runID, "error", err)
				if stopErr := l.hw.StopAll(); stopErr != nil {
					return errors.Join(err, stopErr)
				}
				return err
			}
		}
	}
}

// Step runs exactly one read/update/write cycle.
func (l *Loop) Step(ctx context.Context) error {
	l.mu.Lock()
	seq := l.stats.Cycles + 1
	l.mu.Unlock()

	start := l.now()
	stage, err := l.cycle(ctx)
	end := l.now()
	elapsed := end.Sub(start)
	overrun := elapsed > l.cfg.Period

	l.mu.Lock()
	l.stats.Cycles = seq
	l.stats.LastCycle = elapsed
	if overrun {
		l.stats.Overruns++
	}
	if err != nil {
		l.stats.Errors++
	}
	l.mu.Unlock()

	if overrun {
		l.logger.Debug("cycle overrun", "seq", seq, "elapsed", elapsed, "period", l.cfg.Period)
	}

	if err != nil {
		l.traceError(end, seq, stage, err)
		return err
	}
	l.traceCycle(end, seq, elapsed, overrun)
	return nil
}

func (l *Loop) cycle(ctx context.Context) (log.Stage, error) {
	ctx, cancel := context.WithTimeout(ctx, l.cfg.cycleTimeout())
	defer cancel()

	if err := l.hw.ReadAll(ctx); err != nil {
		return log.StageRead, err
	}
	for _, c := range l.controllers {
		if err := c.Update(ctx, l.cfg.Period); err != nil {
			return log.StageUpdate, fmt.Errorf("update: %w", err)
		}
	}
	if err := l.hw.WriteAll(ctx); err != nil {
		return log.StageWrite, err
	}
	return 0, nil
}

func (l *Loop) traceCycle(ts time.Time, seq uint64, elapsed time.Duration, overrun bool) {
	if _, off := l.trace.(log.NoopLogger); off {
		return
	}
	snapshot := l.hw.Snapshot()
	values := make(map[string]string, len(snapshot))
	for name, v := range snapshot {
		values[name] = v.String()
	}
	l.trace.Log(log.Event{
		Timestamp: ts,
		RunID:     l.runID,
		Category:  log.CategoryCycle,
		Cycle: &log.CycleEvent{
			Sequence: seq,
			Duration: elapsed,
			Overrun:  overrun,
			Values:   values,
		},
	})
}

func (l *Loop) traceError(ts time.Time, seq uint64, stage log.Stage, err error) {
	var name string
	var cerr *component.CycleError
	if errors.As(err, &cerr) {
		name = cerr.Component
		stage = log.StageOf(cerr.Stage)
	}
	l.trace.Log(log.Event{
		Timestamp: ts,
		RunID:     l.runID,
		Component: name,
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Stage:    stage,
			Message:  err.Error(),
			Sequence: seq,
		},
	})
}
