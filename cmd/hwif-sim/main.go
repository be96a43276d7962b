// Command hwif-sim runs a hardware component described by a YAML or TOML
// file inside a fixed-rate control loop.
//
// Usage:
//
//	hwif-sim [flags]
//
// Flags:
//
//	-config string          Hardware description file (required)
//	-plugin string          Component plugin, overrides the description
//	-period duration        Control loop period (default 10ms)
//	-cycle-timeout duration Deadline for one read/update/write cycle (default: period)
//	-log-level string       Log level: debug, info, warn, error (default "info")
//	-trace string           File path for control-loop tracing (CBOR format)
//	-state-file string      YAML snapshot restored on start and saved on exit
//	-interactive            Step the loop by hand from a command shell
//
// Examples:
//
//	# Run the simulated actuator until interrupted
//	hwif-sim -config cmd/hwif-sim/testdata/rrbot.yaml
//
//	# Step it by hand, keeping state between runs
//	hwif-sim -config rrbot.yaml -interactive -state-file rrbot.state.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openhwif/hwif-go/cmd/hwif-sim/interactive"
	"github.com/openhwif/hwif-go/pkg/controlloop"
)

// Config holds the command-line configuration.
type Config struct {
	ConfigFile   string
	Plugin       string
	Period       time.Duration
	CycleTimeout time.Duration
	LogLevel     string
	TraceFile    string
	StateFile    string
	Interactive  bool
}

var config Config

func init() {
	flag.StringVar(&config.ConfigFile, "config", "", "Hardware description file (required)")
	flag.StringVar(&config.Plugin, "plugin", "", "Component plugin, overrides the description")
	flag.DurationVar(&config.Period, "period", controlloop.DefaultPeriod, "Control loop period")
	flag.DurationVar(&config.CycleTimeout, "cycle-timeout", 0, "Deadline for one read/update/write cycle (default: period)")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&config.TraceFile, "trace", "", "File path for control-loop tracing (CBOR format)")
	flag.StringVar(&config.StateFile, "state-file", "", "YAML snapshot restored on start and saved on exit")
	flag.BoolVar(&config.Interactive, "interactive", false, "Step the loop by hand from a command shell")
}

func main() {
	flag.Parse()

	if err := validateConfig(&config); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}
	applyDefaults(&config)

	logger := newLogger(os.Stderr, config.LogLevel)
	slog.SetDefault(logger)

	if err := run(config, logger); err != nil {
		logger.Error("hwif-sim failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg Config, logger *slog.Logger) error {
	sim, err := NewSimulator(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var runErr error
	if cfg.Interactive {
		runErr = runInteractive(ctx, cancel, sim)
	} else {
		logger.Info("control loop running",
			"hardware", sim.Info().Name,
			"runId", sim.Loop().RunID(),
			"period", cfg.Period)
		runErr = sim.Loop().Run(ctx)
	}

	stats := sim.Loop().Stats()
	logger.Info("control loop finished",
		"cycles", stats.Cycles,
		"errors", stats.Errors,
		"overruns", stats.Overruns)

	if err := sim.Close(); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	return runErr
}

func runInteractive(ctx context.Context, cancel context.CancelFunc, sim *Simulator) error {
	if err := sim.Manager().StartAll(); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer func() {
		if err := sim.Manager().StopAll(); err != nil {
			slog.Warn("stop failed", "error", err)
		}
	}()

	shell, err := interactive.New(sim.Manager(), sim.Loop())
	if err != nil {
		return err
	}
	defer shell.Release()

	shell.Run(ctx, cancel)
	return nil
}

func validateConfig(cfg *Config) error {
	if cfg.ConfigFile == "" {
		return fmt.Errorf("-config is required")
	}
	if cfg.Period <= 0 {
		return fmt.Errorf("period must be positive, got %s", cfg.Period)
	}
	if cfg.CycleTimeout < 0 {
		return fmt.Errorf("cycle timeout must not be negative, got %s", cfg.CycleTimeout)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.CycleTimeout == 0 {
		cfg.CycleTimeout = cfg.Period
	}
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
