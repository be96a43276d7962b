package main

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/openhwif/hwif-go/pkg/component"
	"github.com/openhwif/hwif-go/pkg/controlloop"
	"github.com/openhwif/hwif-go/pkg/examples"
	"github.com/openhwif/hwif-go/pkg/hardware"
	hwlog "github.com/openhwif/hwif-go/pkg/log"
	"github.com/openhwif/hwif-go/pkg/persistence"
	"github.com/openhwif/hwif-go/pkg/resource"
)

// Simulator wires one component from a description file into a resource
// manager and a control loop.
type Simulator struct {
	logger  *slog.Logger
	info    *hardware.Info
	manager *resource.Manager
	loop    *controlloop.Loop
	store   *persistence.SnapshotStore
	trace   *hwlog.FileLogger

	closeOnce sync.Once
	closeErr  error
}

// NewSimulator loads the description, restores any saved snapshot and
// imports the component. The component is configured but not started.
func NewSimulator(cfg Config, logger *slog.Logger) (*Simulator, error) {
	info, err := hardware.Load(cfg.ConfigFile)
	if err != nil {
		return nil, err
	}
	if cfg.Plugin != "" {
		info.Plugin = cfg.Plugin
	}
	logger.Info("hardware description loaded",
		"file", cfg.ConfigFile,
		"hardware", info.Name,
		"plugin", info.Plugin,
		"components", len(info.Components))

	sim := &Simulator{logger: logger, info: info}

	if cfg.StateFile != "" {
		sim.store = persistence.NewSnapshotStore(cfg.StateFile)
		snap, err := sim.store.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load state: %w", err)
		}
		n, err := persistence.ApplyInitialValues(info, snap)
		if err != nil {
			return nil, fmt.Errorf("failed to apply state: %w", err)
		}
		if n > 0 {
			logger.Info("state restored", "file", cfg.StateFile, "interfaces", n)
		}
	}

	reg := component.NewRegistry()
	if err := examples.Register(reg); err != nil {
		return nil, err
	}
	c, err := reg.New(info.Plugin)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, reg.Names())
	}

	runID := uuid.NewString()
	traces := []hwlog.Logger{hwlog.NewSlogAdapter(logger.With("source", "trace"))}
	if cfg.TraceFile != "" {
		sim.trace, err = hwlog.NewFileLogger(cfg.TraceFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open trace file: %w", err)
		}
		traces = append(traces, sim.trace)
		logger.Info("tracing enabled", "file", cfg.TraceFile)
	}
	trace := hwlog.NewMultiLogger(traces...)

	sim.manager = resource.NewManager(
		resource.WithLogger(logger),
		resource.WithObserver(&hwlog.TransitionObserver{Logger: trace, RunID: runID}),
	)
	if err := sim.manager.Import(c, info); err != nil {
		sim.closeTrace()
		return nil, fmt.Errorf("failed to import %s: %w", info.Name, err)
	}

	loopCfg := controlloop.DefaultConfig()
	loopCfg.Period = cfg.Period
	loopCfg.CycleTimeout = cfg.CycleTimeout
	sim.loop, err = controlloop.New(sim.manager, loopCfg,
		controlloop.WithLogger(logger),
		controlloop.WithTrace(trace),
		controlloop.WithRunID(runID))
	if err != nil {
		sim.closeTrace()
		return nil, err
	}
	return sim, nil
}

// Info returns the (possibly restored) hardware description.
func (s *Simulator) Info() *hardware.Info { return s.info }

// Manager returns the resource manager holding the component.
func (s *Simulator) Manager() *resource.Manager { return s.manager }

// Loop returns the control loop.
func (s *Simulator) Loop() *controlloop.Loop { return s.loop }

// Close saves the state snapshot, if configured, closes the resource manager
// and closes the trace file. Handles taken from the manager report
// handle.ErrReleased afterwards. Only the first call has an effect.
func (s *Simulator) Close() error {
	s.closeOnce.Do(func() { s.closeErr = s.close() })
	return s.closeErr
}

func (s *Simulator) close() error {
	var errs []error
	if s.store != nil {
		snap, err := persistence.FromValues(s.manager.Snapshot())
		if err == nil {
			err = s.store.Save(snap)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to save state: %w", err))
		} else {
			s.logger.Info("state saved", "file", s.store.Path(), "interfaces", len(snap.Values))
		}
	}
	if err := s.manager.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close components: %w", err))
	}
	if err := s.closeTrace(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *Simulator) closeTrace() error {
	if s.trace == nil {
		return nil
	}
	if n := s.trace.Dropped(); n > 0 {
		s.logger.Warn("trace events dropped", "file", s.trace.Path(), "count", n)
	}
	return s.trace.Close()
}
