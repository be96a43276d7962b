package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/openhwif/hwif-go/pkg/handle"
	"github.com/openhwif/hwif-go/pkg/hardware"
)

// SnapshotVersion is the current version of the snapshot file format.
const SnapshotVersion = 1

// ErrUnsupportedVersion is returned by Load for files written by a newer
// format version.
var ErrUnsupportedVersion = errors.New("unsupported snapshot version")

// Snapshot holds state interface values keyed by full name.
type Snapshot struct {
	// Version is the snapshot file format version.
	Version int `yaml:"version"`

	// SavedAt is when the snapshot was last saved.
	SavedAt time.Time `yaml:"saved_at"`

	// Values maps full interface names to values.
	Values map[string]SnapshotValue `yaml:"values,omitempty"`
}

// SnapshotValue mirrors handle.Value for YAML. Exactly the field matching
// Kind is set.
type SnapshotValue struct {
	Kind     string    `yaml:"kind"`
	Float64  *float64  `yaml:"float64,omitempty"`
	Int32    *int32    `yaml:"int32,omitempty"`
	Uint32   *uint32   `yaml:"uint32,omitempty"`
	Bytes    string    `yaml:"bytes,omitempty"` // hex
	Float64s []float64 `yaml:"float64s,omitempty"`
}

// FromValue converts a handle value. KindNone values are not representable.
func FromValue(v handle.Value) (SnapshotValue, error) {
	sv := SnapshotValue{Kind: v.Kind().String()}
	switch v.Kind() {
	case handle.KindFloat64:
		f, _ := v.AsFloat64()
		sv.Float64 = &f
	case handle.KindInt32:
		i, _ := v.AsInt32()
		sv.Int32 = &i
	case handle.KindUint32:
		u, _ := v.AsUint32()
		sv.Uint32 = &u
	case handle.KindBytes:
		sv.Bytes = v.String()
	case handle.KindFloat64s:
		sv.Float64s, _ = v.AsFloat64s()
	default:
		return SnapshotValue{}, fmt.Errorf("cannot persist value of kind %s", v.Kind())
	}
	return sv, nil
}

// Value converts back to a handle value.
func (sv SnapshotValue) Value() (handle.Value, error) {
	k, err := handle.ParseKind(sv.Kind)
	if err != nil {
		return handle.Value{}, err
	}
	switch k {
	case handle.KindFloat64:
		if sv.Float64 == nil {
			return handle.Value{}, fmt.Errorf("%s value missing", k)
		}
		return handle.Float64(*sv.Float64), nil
	case handle.KindInt32:
		if sv.Int32 == nil {
			return handle.Value{}, fmt.Errorf("%s value missing", k)
		}
		return handle.Int32(*sv.Int32), nil
	case handle.KindUint32:
		if sv.Uint32 == nil {
			return handle.Value{}, fmt.Errorf("%s value missing", k)
		}
		return handle.Uint32(*sv.Uint32), nil
	case handle.KindBytes:
		return handle.ParseValue(k, sv.Bytes)
	case handle.KindFloat64s:
		return handle.Float64s(sv.Float64s), nil
	default:
		return handle.Value{}, fmt.Errorf("cannot restore value of kind %s", k)
	}
}

// FromValues builds a snapshot from values keyed by full name.
func FromValues(values map[string]handle.Value) (*Snapshot, error) {
	s := &Snapshot{Values: make(map[string]SnapshotValue, len(values))}
	for name, v := range values {
		sv, err := FromValue(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		s.Values[name] = sv
	}
	return s, nil
}

// HandleValues converts the snapshot back to handle values.
func (s *Snapshot) HandleValues() (map[string]handle.Value, error) {
	out := make(map[string]handle.Value, len(s.Values))
	for name, sv := range s.Values {
		v, err := sv.Value()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

// ApplyInitialValues sets the initial value of every state interface in info
// that has a snapshot entry of the same kind, and returns how many were set.
// Command interfaces are left alone so a restart never resumes motion.
func ApplyInitialValues(info *hardware.Info, s *Snapshot) (int, error) {
	if s == nil {
		return 0, nil
	}
	values, err := s.HandleValues()
	if err != nil {
		return 0, err
	}

	applied := 0
	for ci := range info.Components {
		c := &info.Components[ci]
		for si := range c.StateInterfaces {
			iface := &c.StateInterfaces[si]
			v, ok := values[hardware.FullName(c.Name, iface.Name)]
			if !ok {
				continue
			}
			k, err := iface.Kind()
			if err != nil || k != v.Kind() {
				continue
			}
			iface.InitialValue = v.String()
			applied++
		}
	}
	return applied, nil
}

// SnapshotStore manages persistence of a snapshot to a YAML file.
type SnapshotStore struct {
	mu   sync.Mutex
	path string
}

// NewSnapshotStore creates a new snapshot store.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Path returns the file path.
func (s *SnapshotStore) Path() string {
	return s.path
}

// Save persists the snapshot to disk.
func (s *SnapshotStore) Save(snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	snap.Version = SnapshotVersion
	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now()
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Load reads the snapshot from disk.
// Returns nil, nil if the file doesn't exist (no previous run).
func (s *SnapshotStore) Load() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{}
	if err := yaml.Unmarshal(data, snap); err != nil {
		return nil, err
	}
	if snap.Version > SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, snap.Version)
	}

	return snap, nil
}

// Clear removes the snapshot file.
func (s *SnapshotStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
