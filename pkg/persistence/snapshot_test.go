package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/openhwif/hwif-go/pkg/handle"
	"github.com/openhwif/hwif-go/pkg/hardware"
)

func TestSnapshotStoreSaveLoad(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "state", "snapshot.yaml"))

	values := map[string]handle.Value{
		"joint1/position": handle.Float64(0.15),
		"joint1/mode":     handle.Int32(-2),
		"io/mask":         handle.Uint32(0),
		"io/frame":        handle.Bytes([]byte{0xca, 0xfe}),
		"io/vector":       handle.Float64s([]float64{1.5, -2}),
	}
	snap, err := FromValues(values)
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}
	if err := store.Save(snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load returned nil")
	}
	if loaded.Version != SnapshotVersion {
		t.Errorf("Version = %d, want %d", loaded.Version, SnapshotVersion)
	}
	if loaded.SavedAt.IsZero() {
		t.Error("SavedAt not set")
	}

	got, err := loaded.HandleValues()
	if err != nil {
		t.Fatalf("HandleValues failed: %v", err)
	}
	if len(got) != len(values) {
		t.Fatalf("got %d values, want %d", len(got), len(values))
	}
	for name, want := range values {
		if !got[name].Equal(want) {
			t.Errorf("%s = %s (%s), want %s (%s)", name, got[name], got[name].Kind(), want, want.Kind())
		}
	}
}

func TestSnapshotStoreLoadMissing(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "missing.yaml"))

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap != nil {
		t.Errorf("expected nil snapshot, got %+v", snap)
	}
}

func TestSnapshotStoreKeepsSavedAt(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "snapshot.yaml"))
	ts := time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)

	if err := store.Save(&Snapshot{SavedAt: ts}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loaded.SavedAt.Equal(ts) {
		t.Errorf("SavedAt = %v, want %v", loaded.SavedAt, ts)
	}
}

func TestSnapshotStoreRejectsNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := os.WriteFile(path, []byte("version: 99\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewSnapshotStore(path).Load()
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("Load() error = %v, want ErrUnsupportedVersion", err)
	}
}

func TestSnapshotStoreClear(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "snapshot.yaml"))

	// Clearing a missing file is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear on missing file failed: %v", err)
	}

	if err := store.Save(&Snapshot{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("snapshot file still exists")
	}
}

func TestFromValueRejectsNone(t *testing.T) {
	if _, err := FromValue(handle.Value{}); err == nil {
		t.Error("expected error for KindNone")
	}
}

func TestSnapshotValueMissingField(t *testing.T) {
	if _, err := (SnapshotValue{Kind: "float64"}).Value(); err == nil {
		t.Error("expected error for missing float64")
	}
}

func TestApplyInitialValues(t *testing.T) {
	info := &hardware.Info{
		Name: "rig",
		Components: []hardware.ComponentInfo{{
			Name: "joint1",
			StateInterfaces: []hardware.InterfaceInfo{
				{Name: "position"},
				{Name: "mode", DataType: "int32"},
				{Name: "effort"},
			},
			CommandInterfaces: []hardware.InterfaceInfo{{Name: "velocity"}},
		}},
	}
	snap, err := FromValues(map[string]handle.Value{
		"joint1/position": handle.Float64(0.25),
		"joint1/mode":     handle.Float64(3), // kind differs, skipped
		"joint1/velocity": handle.Float64(5), // not a state interface here
		"joint2/position": handle.Float64(1), // unknown component
	})
	if err != nil {
		t.Fatal(err)
	}

	applied, err := ApplyInitialValues(info, snap)
	if err != nil {
		t.Fatalf("ApplyInitialValues failed: %v", err)
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}

	c := info.Components[0]
	if c.StateInterfaces[0].InitialValue != "0.25" {
		t.Errorf("position initial value = %q", c.StateInterfaces[0].InitialValue)
	}
	if c.StateInterfaces[1].InitialValue != "" {
		t.Errorf("mode initial value = %q, want unchanged", c.StateInterfaces[1].InitialValue)
	}
	if c.CommandInterfaces[0].InitialValue != "" {
		t.Errorf("command initial value = %q, want unchanged", c.CommandInterfaces[0].InitialValue)
	}

	v, err := c.StateInterfaces[0].Initial()
	if err != nil || !v.Equal(handle.Float64(0.25)) {
		t.Errorf("Initial() = %s, %v", v, err)
	}
}

func TestApplyInitialValuesNilSnapshot(t *testing.T) {
	n, err := ApplyInitialValues(&hardware.Info{}, nil)
	if err != nil || n != 0 {
		t.Errorf("ApplyInitialValues(nil) = %d, %v", n, err)
	}
}
