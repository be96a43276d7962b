package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/openhwif/hwif-go/pkg/component"
	"github.com/openhwif/hwif-go/pkg/handle"
	hwlog "github.com/openhwif/hwif-go/pkg/log"
	"github.com/openhwif/hwif-go/pkg/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(file string) Config {
	cfg := Config{
		ConfigFile: filepath.Join("testdata", file),
		Period:     10 * time.Millisecond,
		LogLevel:   "info",
	}
	applyDefaults(&cfg)
	return cfg
}

func TestNewSimulatorYAML(t *testing.T) {
	sim, err := NewSimulator(testConfig("rrbot.yaml"), discardLogger())
	require.NoError(t, err)
	defer sim.Close()

	assert.Equal(t, "rrbot", sim.Info().Name)
	assert.Equal(t, []string{"joint1/velocity", "joint2/velocity"}, sim.Manager().CommandInterfaceNames())

	comps := sim.Manager().Components()
	require.Len(t, comps, 1)
	assert.Equal(t, component.StatusConfigured, comps[0].Status())

	pos, err := sim.Manager().StateInterface("joint2/position")
	require.NoError(t, err)
	v, err := pos.Float64()
	require.NoError(t, err)
	assert.InDelta(t, 1.57, v, 1e-12)
}

func TestNewSimulatorTOMLGeneric(t *testing.T) {
	sim, err := NewSimulator(testConfig("io_board.toml"), discardLogger())
	require.NoError(t, err)
	defer sim.Close()

	mgr := sim.Manager()
	require.NoError(t, mgr.StartAll())

	ci, err := mgr.ClaimCommandInterface("gpio/mask")
	require.NoError(t, err)
	require.NoError(t, ci.SetUint32(0xff))
	require.NoError(t, sim.Loop().Step(context.Background()))
	require.NoError(t, mgr.ReleaseCommandInterface(ci))

	si, err := mgr.StateInterface("gpio/mask")
	require.NoError(t, err)
	got, err := si.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xff), got)
}

func TestNewSimulatorPluginOverride(t *testing.T) {
	cfg := testConfig("rrbot.yaml")
	cfg.Plugin = "no_such_plugin"

	_, err := NewSimulator(cfg, discardLogger())
	assert.ErrorIs(t, err, component.ErrUnknownPlugin)
}

func TestNewSimulatorMissingFile(t *testing.T) {
	_, err := NewSimulator(testConfig("missing.yaml"), discardLogger())
	assert.Error(t, err)
}

func TestSimulatorStateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig("rrbot.yaml")
	cfg.StateFile = filepath.Join(dir, "rrbot.state.yaml")

	sim, err := NewSimulator(cfg, discardLogger())
	require.NoError(t, err)

	mgr := sim.Manager()
	require.NoError(t, mgr.StartAll())
	ci, err := mgr.ClaimCommandInterface("joint1/velocity")
	require.NoError(t, err)
	require.NoError(t, ci.SetFloat64(1))
	for i := 0; i < 3; i++ {
		require.NoError(t, sim.Loop().Step(context.Background()))
	}
	require.NoError(t, mgr.ReleaseCommandInterface(ci))
	require.NoError(t, mgr.StopAll())
	require.NoError(t, sim.Close())

	snap, err := persistence.NewSnapshotStore(cfg.StateFile).Load()
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Contains(t, snap.Values, "joint1/position")
	assert.NotContains(t, snap.Values, "joint1/effort", "unbound handles are not saved")

	// A second run starts where the first one stopped.
	sim2, err := NewSimulator(cfg, discardLogger())
	require.NoError(t, err)
	pos, err := sim2.Manager().StateInterface("joint1/position")
	require.NoError(t, err)
	v, err := pos.Float64()
	require.NoError(t, err)
	assert.InDelta(t, 0.02, v, 1e-12)

	require.NoError(t, sim2.Close())
	_, err = pos.Float64()
	assert.ErrorIs(t, err, handle.ErrReleased, "handles die with the simulator")
	require.NoError(t, sim2.Close(), "second Close is a no-op")

	again, err := persistence.NewSnapshotStore(cfg.StateFile).Load()
	require.NoError(t, err)
	assert.Contains(t, again.Values, "joint1/position", "second Close does not overwrite the snapshot")
}

func TestSimulatorTraceFile(t *testing.T) {
	cfg := testConfig("rrbot.yaml")
	cfg.TraceFile = filepath.Join(t.TempDir(), "run.hwlog")

	sim, err := NewSimulator(cfg, discardLogger())
	require.NoError(t, err)
	require.NoError(t, sim.Manager().StartAll())
	require.NoError(t, sim.Loop().Step(context.Background()))
	require.NoError(t, sim.Close())

	reader, err := hwlog.NewReader(cfg.TraceFile)
	require.NoError(t, err)
	defer reader.Close()

	var categories []hwlog.Category
	for {
		e, err := reader.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		assert.Equal(t, sim.Loop().RunID(), e.RunID)
		categories = append(categories, e.Category)
	}
	// UNCONFIGURED->CONFIGURED, CONFIGURED->STARTED, one cycle, then
	// STARTED->STOPPED from Close.
	assert.Equal(t, []hwlog.Category{
		hwlog.CategoryTransition,
		hwlog.CategoryTransition,
		hwlog.CategoryCycle,
		hwlog.CategoryTransition,
	}, categories)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{ConfigFile: "x.yaml", Period: time.Millisecond, LogLevel: "debug"}, false},
		{"missing config", Config{Period: time.Millisecond}, true},
		{"zero period", Config{ConfigFile: "x.yaml"}, true},
		{"negative timeout", Config{ConfigFile: "x.yaml", Period: time.Millisecond, CycleTimeout: -1}, true},
		{"bad level", Config{ConfigFile: "x.yaml", Period: time.Millisecond, LogLevel: "loud"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{Period: 5 * time.Millisecond}
	applyDefaults(&cfg)
	assert.Equal(t, 5*time.Millisecond, cfg.CycleTimeout)

	cfg = Config{Period: 5 * time.Millisecond, CycleTimeout: time.Millisecond}
	applyDefaults(&cfg)
	assert.Equal(t, time.Millisecond, cfg.CycleTimeout)
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
