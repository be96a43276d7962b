// Package examples provides reference components demonstrating how to
// build hardware components on top of the hwif-go library.
//
// The example implementations show:
//   - Validating a hardware description in Configure
//   - Allocating interface storage from a handle.Store
//   - Exporting bound and unbound state interfaces
//   - Driving state from commands in Read and Write
//
// Available examples:
//   - MinimalActuator: one joint, no hardware behind it
//   - SimulatedActuator: velocity-commanded joints with integrated position
//   - GenericSystem: loopback of every declared interface, any value kind
//
// Register adds all of them to a component.Registry.
package examples

import (
	"errors"

	"github.com/openhwif/hwif-go/pkg/component"
)

// Plugin names used by Register.
const (
	PluginMinimalActuator   = "minimal_actuator"
	PluginSimulatedActuator = "simulated_actuator"
	PluginGenericSystem     = "generic_system"
)

// ErrUnsupportedDescription is returned by Configure when a valid description
// asks for something the component cannot do.
var ErrUnsupportedDescription = errors.New("description not supported by component")

// Register adds the example components to reg.
func Register(reg *component.Registry) error {
	for name, factory := range map[string]component.Factory{
		PluginMinimalActuator:   func() component.Component { return NewMinimalActuator() },
		PluginSimulatedActuator: func() component.Component { return NewSimulatedActuator() },
		PluginGenericSystem:     func() component.Component { return NewGenericSystem() },
	} {
		if err := reg.Register(name, factory); err != nil {
			return err
		}
	}
	return nil
}
