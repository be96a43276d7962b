package examples

import (
	"context"
	"fmt"

	"github.com/openhwif/hwif-go/pkg/component"
	"github.com/openhwif/hwif-go/pkg/handle"
	"github.com/openhwif/hwif-go/pkg/hardware"
)

type loopback struct {
	component string
	name      string
	state     handle.Ref
	command   handle.Ref
}

// GenericSystem exports every declared interface of every component, with
// the value kind taken from data_type. Write copies each command value into
// the state interface of the same full name, so the system behaves like
// perfectly tracking hardware for any value kind.
type GenericSystem struct {
	component.Base

	store *handle.Store
	slots []*loopback
}

// NewGenericSystem creates an unconfigured GenericSystem.
func NewGenericSystem() *GenericSystem {
	return &GenericSystem{store: handle.NewStore()}
}

// Configure implements component.Component. A command interface and a state
// interface sharing a full name must have the same data type.
func (s *GenericSystem) Configure(info *hardware.Info) error {
	if err := s.ConfigureDefault(info); err != nil {
		return err
	}
	if err := s.configure(info); err != nil {
		s.Fail()
		return err
	}
	return nil
}

func (s *GenericSystem) configure(info *hardware.Info) error {
	for _, c := range info.Components {
		byName := make(map[string]*loopback)
		entry := func(name string) *loopback {
			lb, ok := byName[name]
			if !ok {
				lb = &loopback{component: c.Name, name: name}
				byName[name] = lb
				s.slots = append(s.slots, lb)
			}
			return lb
		}

		for i := range c.StateInterfaces {
			iface := &c.StateInterfaces[i]
			v, err := iface.Initial()
			if err != nil {
				return fmt.Errorf("%s: %w", hardware.FullName(c.Name, iface.Name), err)
			}
			entry(iface.Name).state = s.store.Alloc(v)
		}
		for i := range c.CommandInterfaces {
			iface := &c.CommandInterfaces[i]
			v, err := iface.Initial()
			if err != nil {
				return fmt.Errorf("%s: %w", hardware.FullName(c.Name, iface.Name), err)
			}
			lb := entry(iface.Name)
			if lb.state.IsBound() && lb.state.Kind() != v.Kind() {
				return fmt.Errorf("%w: %s: state is %s, command is %s", ErrUnsupportedDescription,
					hardware.FullName(c.Name, iface.Name), lb.state.Kind(), v.Kind())
			}
			lb.command = s.store.Alloc(v)
		}
	}
	return nil
}

// ExportStateInterfaces implements component.Component.
func (s *GenericSystem) ExportStateInterfaces() ([]handle.StateInterface, error) {
	if err := s.RequireConfigured(); err != nil {
		return nil, err
	}
	var out []handle.StateInterface
	for _, lb := range s.slots {
		if lb.state.IsBound() {
			out = append(out, handle.NewStateInterface(lb.component, lb.name, lb.state))
		}
	}
	return out, nil
}

// ExportCommandInterfaces implements component.Component.
func (s *GenericSystem) ExportCommandInterfaces() ([]*handle.CommandInterface, error) {
	if err := s.RequireConfigured(); err != nil {
		return nil, err
	}
	var out []*handle.CommandInterface
	for _, lb := range s.slots {
		if !lb.command.IsBound() {
			continue
		}
		ci, err := handle.NewCommandInterface(lb.component, lb.name, lb.command)
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
func (s *GenericSystem) Start() error {
	if err := s.RequireConfigured(); err != nil {
		return err
	}
	s.SetStatus(component.StatusStarted)
	return nil
}

// Stop implements component.Component.
func (s *GenericSystem) Stop() error {
	s.SetStatus(component.StatusStopped)
	return nil
}

// Close releases the storage behind every exported interface.
func (s *GenericSystem) Close() error {
	s.store.Release()
	return nil
}

// Read implements component.Component. State is already current after Write.
func (s *GenericSystem) Read(ctx context.Context) error {
	return ctx.Err()
}

// Write copies every command value into its state slot.
func (s *GenericSystem) Write(ctx context.Context) error {
	for _, lb := range s.slots {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !lb.state.IsBound() || !lb.command.IsBound() {
			continue
		}
		v, err := lb.command.Load()
		if err != nil {
			return err
		}
		if err := lb.state.Store(v); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ component.Component = (*GenericSystem)(nil)
	_ component.Closer    = (*GenericSystem)(nil)
)
