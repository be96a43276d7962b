// Package hardware models the parsed hardware description a component is
// configured with.
//
// A description names the hardware (Name, Type, Plugin) and lists its
// components in order. Each component declares the state and command
// interfaces it is expected to expose:
//
//	name: rrbot
//	type: actuator
//	plugin: simulated_actuator
//	parameters:
//	  dt: "0.01"
//	components:
//	  - name: joint1
//	    state_interfaces:
//	      - name: position
//	      - name: velocity
//	    command_interfaces:
//	      - name: velocity
//
// Descriptions are read from YAML or TOML files. Exported handles are matched
// against the declared interfaces by full name, "<component>/<interface>".
package hardware

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/openhwif/hwif-go/pkg/handle"
)

// ErrInvalidDescription is wrapped by every validation failure.
var ErrInvalidDescription = errors.New("invalid hardware description")

// Info is a parsed hardware description.
type Info struct {
	// Name identifies the hardware instance.
	Name string `yaml:"name" toml:"name"`

	// Type is the hardware category, e.g. "actuator", "sensor", "system".
	Type string `yaml:"type" toml:"type"`

	// Plugin names the component implementation in a component registry.
	Plugin string `yaml:"plugin" toml:"plugin"`

	// Parameters are free-form settings passed to the component.
	Parameters map[string]string `yaml:"parameters,omitempty" toml:"parameters,omitempty"`

	// Components are the joints, sensors or GPIO groups, in order.
	Components []ComponentInfo `yaml:"components" toml:"components"`
}

// ComponentInfo describes one logical joint or component.
type ComponentInfo struct {
	Name              string            `yaml:"name" toml:"name"`
	Type              string            `yaml:"type,omitempty" toml:"type,omitempty"`
	StateInterfaces   []InterfaceInfo   `yaml:"state_interfaces,omitempty" toml:"state_interfaces,omitempty"`
	CommandInterfaces []InterfaceInfo   `yaml:"command_interfaces,omitempty" toml:"command_interfaces,omitempty"`
	Parameters        map[string]string `yaml:"parameters,omitempty" toml:"parameters,omitempty"`
}

// InterfaceInfo describes one declared interface.
type InterfaceInfo struct {
	// Name is the interface name, e.g. "position".
	Name string `yaml:"name" toml:"name"`

	// DataType selects the value kind. Empty means double.
	DataType string `yaml:"data_type,omitempty" toml:"data_type,omitempty"`

	// InitialValue seeds the slot, parsed according to DataType.
	InitialValue string `yaml:"initial_value,omitempty" toml:"initial_value,omitempty"`

	// Min and Max are optional limits for double interfaces.
	Min string `yaml:"min,omitempty" toml:"min,omitempty"`
	Max string `yaml:"max,omitempty" toml:"max,omitempty"`
}

// FullName joins a component and interface name with a single slash.
func FullName(component, iface string) string {
	return component + "/" + iface
}

// Kind returns the value kind selected by DataType.
func (i *InterfaceInfo) Kind() (handle.Kind, error) {
	return handle.ParseKind(i.DataType)
}

// Initial returns the initial slot value: InitialValue parsed as the
// interface kind, or the zero value of that kind when unset.
func (i *InterfaceInfo) Initial() (handle.Value, error) {
	k, err := i.Kind()
	if err != nil {
		return handle.Value{}, err
	}
	if i.InitialValue == "" {
		return handle.Zero(k), nil
	}
	return handle.ParseValue(k, i.InitialValue)
}

// Limits returns the parsed Min and Max. hasLo and hasHi are false for a
// bound left empty.
func (i *InterfaceInfo) Limits() (lo, hi float64, hasLo, hasHi bool, err error) {
	if i.Min != "" {
		if lo, err = strconv.ParseFloat(i.Min, 64); err != nil {
			return 0, 0, false, false, fmt.Errorf("min %q: %w", i.Min, err)
		}
		hasLo = true
	}
	if i.Max != "" {
		if hi, err = strconv.ParseFloat(i.Max, 64); err != nil {
			return 0, 0, false, false, fmt.Errorf("max %q: %w", i.Max, err)
		}
		hasHi = true
	}
	return lo, hi, hasLo, hasHi, nil
}

// Component returns the component with the given name.
func (h *Info) Component(name string) (*ComponentInfo, bool) {
	for i := range h.Components {
		if h.Components[i].Name == name {
			return &h.Components[i], true
		}
	}
	return nil, false
}

// Parameter returns a hardware-level parameter.
func (h *Info) Parameter(key string) (string, bool) {
	v, ok := h.Parameters[key]
	return v, ok
}

// DeclaredStateInterfaces returns the full names of every declared state
// interface in declaration order.
func (h *Info) DeclaredStateInterfaces() []string {
	var names []string
	for _, c := range h.Components {
		for _, si := range c.StateInterfaces {
			names = append(names, FullName(c.Name, si.Name))
		}
	}
	return names
}

// DeclaredCommandInterfaces returns the full names of every declared command
// interface in declaration order.
func (h *Info) DeclaredCommandInterfaces() []string {
	var names []string
	for _, c := range h.Components {
		for _, ci := range c.CommandInterfaces {
			names = append(names, FullName(c.Name, ci.Name))
		}
	}
	return names
}

// StateInterfaceNames returns the declared state interface names.
func (c *ComponentInfo) StateInterfaceNames() []string {
	return interfaceNames(c.StateInterfaces)
}

// CommandInterfaceNames returns the declared command interface names.
func (c *ComponentInfo) CommandInterfaceNames() []string {
	return interfaceNames(c.CommandInterfaces)
}

// StateInterface returns the declared state interface with the given name.
func (c *ComponentInfo) StateInterface(name string) (*InterfaceInfo, bool) {
	return findInterface(c.StateInterfaces, name)
}

// CommandInterface returns the declared command interface with the given name.
func (c *ComponentInfo) CommandInterface(name string) (*InterfaceInfo, bool) {
	return findInterface(c.CommandInterfaces, name)
}

func interfaceNames(ifaces []InterfaceInfo) []string {
	names := make([]string, len(ifaces))
	for i, iface := range ifaces {
		names[i] = iface.Name
	}
	return names
}

func findInterface(ifaces []InterfaceInfo, name string) (*InterfaceInfo, bool) {
	for i := range ifaces {
		if ifaces[i].Name == name {
			return &ifaces[i], true
		}
	}
	return nil, false
}

// Validate checks the description is structurally usable: it has a name and
// at least one component, component names are unique, and every interface has
// a unique, non-empty name and a parseable data type and initial value.
func (h *Info) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDescription)
	}
	if len(h.Components) == 0 {
		return fmt.Errorf("%w: %s declares no components", ErrInvalidDescription, h.Name)
	}

	seen := make(map[string]bool, len(h.Components))
	for i := range h.Components {
		c := &h.Components[i]
		if c.Name == "" {
			return fmt.Errorf("%w: component %d has no name", ErrInvalidDescription, i)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate component %q", ErrInvalidDescription, c.Name)
		}
		seen[c.Name] = true

		if err := validateInterfaces(c.Name, "state", c.StateInterfaces); err != nil {
			return err
		}
		if err := validateInterfaces(c.Name, "command", c.CommandInterfaces); err != nil {
			return err
		}
	}
	return nil
}

func validateInterfaces(component, direction string, ifaces []InterfaceInfo) error {
	seen := make(map[string]bool, len(ifaces))
	for i := range ifaces {
		iface := &ifaces[i]
		if iface.Name == "" {
			return fmt.Errorf("%w: %s: %s interface %d has no name", ErrInvalidDescription, component, direction, i)
		}
		if seen[iface.Name] {
			return fmt.Errorf("%w: duplicate %s interface %q", ErrInvalidDescription, direction, FullName(component, iface.Name))
		}
		seen[iface.Name] = true

		if _, err := iface.Initial(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidDescription, FullName(component, iface.Name), err)
		}
		lo, hi, hasLo, hasHi, err := iface.Limits()
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidDescription, FullName(component, iface.Name), err)
		}
		if hasLo && hasHi && lo > hi {
			return fmt.Errorf("%w: %s: min %s is above max %s", ErrInvalidDescription, FullName(component, iface.Name), iface.Min, iface.Max)
		}
	}
	return nil
}

// Clone returns a deep copy of the description.
func (h *Info) Clone() *Info {
	out := *h
	out.Parameters = maps.Clone(h.Parameters)
	out.Components = make([]ComponentInfo, len(h.Components))
	for i, c := range h.Components {
		c.StateInterfaces = slices.Clone(c.StateInterfaces)
		c.CommandInterfaces = slices.Clone(c.CommandInterfaces)
		c.Parameters = maps.Clone(c.Parameters)
		out.Components[i] = c
	}
	return &out
}
