package examples

import (
	"context"
	"fmt"

	"github.com/openhwif/hwif-go/pkg/component"
	"github.com/openhwif/hwif-go/pkg/handle"
	"github.com/openhwif/hwif-go/pkg/hardware"
)

// MinimalActuator is the smallest useful component: one joint with two
// double state interfaces and one double command interface. Read and Write
// do nothing, so the values only change when someone writes them.
type MinimalActuator struct {
	component.Base

	store    *handle.Store
	joint    *hardware.ComponentInfo
	position handle.Ref
	velocity handle.Ref
	command  handle.Ref
}

// NewMinimalActuator creates an unconfigured MinimalActuator.
func NewMinimalActuator() *MinimalActuator {
	return &MinimalActuator{store: handle.NewStore()}
}

// Configure accepts exactly one component with one command interface and
// two state interfaces.
func (a *MinimalActuator) Configure(info *hardware.Info) error {
	if err := a.ConfigureDefault(info); err != nil {
		return err
	}

	switch {
	case len(info.Components) != 1:
		a.Fail()
		return fmt.Errorf("%w: can only control one joint, got %d", ErrUnsupportedDescription, len(info.Components))
	case len(info.Components[0].CommandInterfaces) != 1:
		a.Fail()
		return fmt.Errorf("%w: needs exactly one command interface", ErrUnsupportedDescription)
	case len(info.Components[0].StateInterfaces) != 2:
		a.Fail()
		return fmt.Errorf("%w: needs exactly two state interfaces", ErrUnsupportedDescription)
	}

	joint := &info.Components[0]
	refs := make([]handle.Ref, 0, 3)
	for _, iface := range []hardware.InterfaceInfo{joint.StateInterfaces[0], joint.StateInterfaces[1], joint.CommandInterfaces[0]} {
		k, err := iface.Kind()
		if err != nil {
			a.Fail()
			return err
		}
		if k != handle.KindFloat64 {
			a.Fail()
			return fmt.Errorf("%w: %s must be double, got %s", ErrUnsupportedDescription, iface.Name, k)
		}
		v, err := iface.Initial()
		if err != nil {
			a.Fail()
			return err
		}
		refs = append(refs, a.store.Alloc(v))
	}

	a.joint = joint
	a.position, a.velocity, a.command = refs[0], refs[1], refs[2]
	return nil
}

// ExportStateInterfaces exports the two declared state interfaces.
func (a *MinimalActuator) ExportStateInterfaces() ([]handle.StateInterface, error) {
	if err := a.RequireConfigured(); err != nil {
		return nil, err
	}
	return []handle.StateInterface{
		handle.NewStateInterface(a.joint.Name, a.joint.StateInterfaces[0].Name, a.position),
		handle.NewStateInterface(a.joint.Name, a.joint.StateInterfaces[1].Name, a.velocity),
	}, nil
}

// ExportCommandInterfaces exports the declared command interface.
func (a *MinimalActuator) ExportCommandInterfaces() ([]*handle.CommandInterface, error) {
	if err := a.RequireConfigured(); err != nil {
		return nil, err
	}
	ci, err := handle.NewCommandInterface(a.joint.Name, a.joint.CommandInterfaces[0].Name, a.command)
	if err != nil {
		return nil, err
	}
	return []*handle.CommandInterface{ci}, nil
}

// Start implements component.Component.
func (a *MinimalActuator) Start() error {
	if err := a.RequireConfigured(); err != nil {
		return err
	}
	a.SetStatus(component.StatusStarted)
	return nil
}

// Stop implements component.Component.
func (a *MinimalActuator) Stop() error {
	a.SetStatus(component.StatusStopped)
	return nil
}

// Close releases the storage behind every exported interface.
func (a *MinimalActuator) Close() error {
	a.store.Release()
	return nil
}

// Read implements component.Component.
func (a *MinimalActuator) Read(context.Context) error { return nil }

// Write implements component.Component.
func (a *MinimalActuator) Write(context.Context) error { return nil }

var (
	_ component.Component = (*MinimalActuator)(nil)
	_ component.Closer    = (*MinimalActuator)(nil)
)
