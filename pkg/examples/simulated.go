package examples

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/openhwif/hwif-go/pkg/component"
	"github.com/openhwif/hwif-go/pkg/handle"
	"github.com/openhwif/hwif-go/pkg/hardware"
)

// DefaultTimeStep is the integration step used when the description has no
// "dt" parameter.
const DefaultTimeStep = 0.01

// Interface names understood by SimulatedActuator.
const (
	InterfacePosition = "position"
	InterfaceVelocity = "velocity"
)

// simJoint is the simulated state of one joint.
type simJoint struct {
	name string

	position handle.Ref
	velocity handle.Ref
	command  handle.Ref

	// latched is the command taken by the last Write.
	latched float64

	lo, hi       float64
	hasLo, hasHi bool

	// unbound are declared state interfaces the simulation cannot produce.
	unbound []string
}

func (j *simJoint) clamp(v float64) float64 {
	if j.hasLo {
		v = math.Max(v, j.lo)
	}
	if j.hasHi {
		v = math.Min(v, j.hi)
	}
	return v
}

// SimulatedActuator simulates velocity-commanded joints.
//
// Every component in the description is a joint with a "velocity" command
// interface. Write latches the commanded velocity, clamped to the command's
// min/max. Read advances position by latched velocity times the fixed time
// step and publishes the velocity. Declared state interfaces other than
// position and velocity are exported unbound.
//
// Parameters:
//   - dt: integration step in seconds (default 0.01)
type SimulatedActuator struct {
	component.Base

	mu     sync.Mutex
	store  *handle.Store
	dt     float64
	joints []*simJoint
}

// NewSimulatedActuator creates an unconfigured SimulatedActuator.
func NewSimulatedActuator() *SimulatedActuator {
	return &SimulatedActuator{store: handle.NewStore(), dt: DefaultTimeStep}
}

// Configure implements component.Component.
func (a *SimulatedActuator) Configure(info *hardware.Info) error {
	if err := a.ConfigureDefault(info); err != nil {
		return err
	}
	if err := a.configure(info); err != nil {
		a.Fail()
		return err
	}
	return nil
}

func (a *SimulatedActuator) configure(info *hardware.Info) error {
	if s, ok := info.Parameter("dt"); ok {
		dt, err := strconv.ParseFloat(s, 64)
		if err != nil || dt <= 0 {
			return fmt.Errorf("%w: dt must be a positive number, got %q", ErrUnsupportedDescription, s)
		}
		a.dt = dt
	}

	for _, c := range info.Components {
		cmd, ok := c.CommandInterface(InterfaceVelocity)
		if !ok {
			return fmt.Errorf("%w: %s has no velocity command interface", ErrUnsupportedDescription, c.Name)
		}
		if len(c.CommandInterfaces) != 1 {
			return fmt.Errorf("%w: %s may only declare a velocity command interface", ErrUnsupportedDescription, c.Name)
		}

		j := &simJoint{name: c.Name}
		var err error
		if j.command, err = allocDouble(a.store, cmd); err != nil {
			return fmt.Errorf("%s: %w", hardware.FullName(c.Name, cmd.Name), err)
		}
		if j.lo, j.hi, j.hasLo, j.hasHi, err = cmd.Limits(); err != nil {
			return fmt.Errorf("%s: %w", hardware.FullName(c.Name, cmd.Name), err)
		}

		for i := range c.StateInterfaces {
			si := &c.StateInterfaces[i]
			switch si.Name {
			case InterfacePosition:
				j.position, err = allocDouble(a.store, si)
			case InterfaceVelocity:
				j.velocity, err = allocDouble(a.store, si)
			default:
				j.unbound = append(j.unbound, si.Name)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", hardware.FullName(c.Name, si.Name), err)
			}
		}
		a.joints = append(a.joints, j)
	}
	return nil
}

func allocDouble(store *handle.Store, iface *hardware.InterfaceInfo) (handle.Ref, error) {
	k, err := iface.Kind()
	if err != nil {
		return handle.Ref{}, err
	}
	if k != handle.KindFloat64 {
		return handle.Ref{}, fmt.Errorf("%w: must be double, got %s", ErrUnsupportedDescription, k)
	}
	v, err := iface.Initial()
	if err != nil {
		return handle.Ref{}, err
	}
	return store.Alloc(v), nil
}

// TimeStep returns the integration step in seconds.
func (a *SimulatedActuator) TimeStep() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dt
}

// ExportStateInterfaces implements component.Component.
func (a *SimulatedActuator) ExportStateInterfaces() ([]handle.StateInterface, error) {
	if err := a.RequireConfigured(); err != nil {
		return nil, err
	}
	var out []handle.StateInterface
	for _, j := range a.joints {
		if j.position.IsBound() {
			out = append(out, handle.NewStateInterface(j.name, InterfacePosition, j.position))
		}
		if j.velocity.IsBound() {
			out = append(out, handle.NewStateInterface(j.name, InterfaceVelocity, j.velocity))
		}
		for _, name := range j.unbound {
			out = append(out, handle.NewStateInterface(j.name, name, handle.Ref{}))
		}
	}
	return out, nil
}

// ExportCommandInterfaces implements component.Component.
func (a *SimulatedActuator) ExportCommandInterfaces() ([]*handle.CommandInterface, error) {
	if err := a.RequireConfigured(); err != nil {
		return nil, err
	}
	out := make([]*handle.CommandInterface, 0, len(a.joints))
	for _, j := range a.joints {
		ci, err := handle.NewCommandInterface(j.name, InterfaceVelocity, j.command)
		if err != nil {
			for _, prev := range out {
				prev.Release()
			}
			return nil, err
		}
		out = append(out, ci)
	}
	return out, nil
}

// Start implements component.Component.
func (a *SimulatedActuator) Start() error {
	if err := a.RequireConfigured(); err != nil {
		return err
	}
	a.SetStatus(component.StatusStarted)
	return nil
}

// Stop zeroes every command so a restart does not resume motion.
func (a *SimulatedActuator) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, j := range a.joints {
		j.latched = 0
		if err := j.command.StoreFloat64(0); err != nil {
			return err
		}
		if j.velocity.IsBound() {
			if err := j.velocity.StoreFloat64(0); err != nil {
				return err
			}
		}
	}
	a.SetStatus(component.StatusStopped)
	return nil
}

// Close releases the storage behind every exported interface.
func (a *SimulatedActuator) Close() error {
	a.store.Release()
	return nil
}

// Read advances the simulation by one time step.
func (a *SimulatedActuator) Read(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, j := range a.joints {
		if j.position.IsBound() {
			pos, err := j.position.LoadFloat64()
			if err != nil {
				return err
			}
			if err := j.position.StoreFloat64(pos + j.latched*a.dt); err != nil {
				return err
			}
		}
		if j.velocity.IsBound() {
			if err := j.velocity.StoreFloat64(j.latched); err != nil {
				return err
			}
		}
	}
	return nil
}

// Write latches the commanded velocities.
func (a *SimulatedActuator) Write(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, j := range a.joints {
		v, err := j.command.LoadFloat64()
		if err != nil {
			return err
		}
		if math.IsNaN(v) {
			continue
		}
		j.latched = j.clamp(v)
	}
	return nil
}

var (
	_ component.Component = (*SimulatedActuator)(nil)
	_ component.Closer    = (*SimulatedActuator)(nil)
)
