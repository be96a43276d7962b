// Package resource owns the components of a hardware setup and the interfaces
// they export.
//
// The Manager imports a component by configuring it and collecting its
// state and command interfaces, indexed by full name ("component/interface").
// State interfaces can be looked up by any number of consumers. A command
// interface has exactly one owner at a time: ClaimCommandInterface moves it
// out of the manager and ReleaseCommandInterface moves it back.
//
// Close ends the manager's lifetime: components are stopped and their
// storage is released, so every handle obtained from the manager reports
// handle.ErrReleased afterwards.
package resource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/openhwif/hwif-go/pkg/component"
	"github.com/openhwif/hwif-go/pkg/handle"
	"github.com/openhwif/hwif-go/pkg/hardware"
)

// Manager errors.
var (
	ErrDuplicateInterface = errors.New("interface already exported")
	ErrInterfaceNotFound  = errors.New("interface not found")
	ErrAlreadyClaimed     = errors.New("command interface already claimed")
	ErrNotClaimed         = errors.New("command interface not claimed")
	ErrForeignInterface   = errors.New("command interface does not belong to this manager")
)

type commandEntry struct {
	owner   string
	ci      *handle.CommandInterface
	claimed bool
}

// Manager owns guarded components and their exported interfaces.
type Manager struct {
	mu         sync.RWMutex
	logger     *slog.Logger
	observer   component.Observer
	components []*component.Guard
	states     map[string]handle.StateInterface
	commands   map[string]*commandEntry
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the operational logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// WithObserver reports the lifecycle transitions of every imported component.
func WithObserver(o component.Observer) Option {
	return func(m *Manager) {
		m.observer = o
	}
}

// NewManager creates an empty manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		logger:   slog.Default(),
		states:   make(map[string]handle.StateInterface),
		commands: make(map[string]*commandEntry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Import configures c with info, exports its interfaces and indexes them.
// On any failure nothing is indexed and the component is not kept.
func (m *Manager) Import(c component.Component, info *hardware.Info) error {
	var gopts []component.GuardOption
	if m.observer != nil {
		gopts = append(gopts, component.WithObserver(m.observer))
	}
	g := component.NewGuard(c, gopts...)

	if err := g.Configure(info); err != nil {
		return err
	}
	states, err := g.ExportStateInterfaces()
	if err != nil {
		return err
	}
	commands, err := g.ExportCommandInterfaces()
	if err != nil {
		return err
	}

	if err := m.index(g, info, states, commands); err != nil {
		for _, ci := range commands {
			ci.Release()
		}
		return err
	}

	m.logger.Info("imported component",
		"component", g.Name(),
		"stateInterfaces", len(states),
		"commandInterfaces", len(commands))
	return nil
}

func (m *Manager) index(g *component.Guard, info *hardware.Info, states []handle.StateInterface, commands []*handle.CommandInterface) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	owner := g.Name()

	seen := make(map[string]bool, len(states))
	for _, si := range states {
		name := si.FullName()
		if _, exists := m.states[name]; exists || seen[name] {
			return fmt.Errorf("%w: state %s", ErrDuplicateInterface, name)
		}
		seen[name] = true
	}
	clear(seen)
	for _, ci := range commands {
		name := ci.FullName()
		if _, exists := m.commands[name]; exists || seen[name] {
			return fmt.Errorf("%w: command %s", ErrDuplicateInterface, name)
		}
		seen[name] = true
	}

	declaredStates := declared(info.DeclaredStateInterfaces())
	declaredCommands := declared(info.DeclaredCommandInterfaces())

	for _, si := range states {
		name := si.FullName()
		if !declaredStates[name] {
			m.logger.Warn("exported state interface not in description", "component", owner, "interface", name)
		}
		if !si.IsBound() {
			m.logger.Debug("state interface exported unbound", "component", owner, "interface", name)
		}
		m.states[name] = si
	}
	for _, ci := range commands {
		name := ci.FullName()
		if !declaredCommands[name] {
			m.logger.Warn("exported command interface not in description", "component", owner, "interface", name)
		}
		m.commands[name] = &commandEntry{owner: owner, ci: ci}
	}
	m.components = append(m.components, g)
	return nil
}

func declared(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// StateInterface returns the state interface with the given full name.
// Every caller gets its own read-only copy.
func (m *Manager) StateInterface(fullName string) (handle.StateInterface, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	si, ok := m.states[fullName]
	if !ok {
		return handle.StateInterface{}, fmt.Errorf("%w: state %s", ErrInterfaceNotFound, fullName)
	}
	return si, nil
}

// ClaimCommandInterface moves the command interface with the given full name
// to the caller. It stays claimed until handed back with
// ReleaseCommandInterface.
func (m *Manager) ClaimCommandInterface(fullName string) (*handle.CommandInterface, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.commands[fullName]
	if !ok {
		return nil, fmt.Errorf("%w: command %s", ErrInterfaceNotFound, fullName)
	}
	if entry.claimed {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyClaimed, fullName)
	}
	ci, err := entry.ci.Move()
	if err != nil {
		return nil, fmt.Errorf("claim %s: %w", fullName, err)
	}
	entry.claimed = true
	m.logger.Debug("claimed command interface", "interface", fullName)
	return ci, nil
}

// ReleaseCommandInterface moves a claimed command interface back into the
// manager. ci is moved-from afterwards.
func (m *Manager) ReleaseCommandInterface(ci *handle.CommandInterface) error {
	fullName := ci.FullName()

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.commands[fullName]
	if !ok {
		return fmt.Errorf("%w: command %s", ErrInterfaceNotFound, fullName)
	}
	if !entry.claimed {
		return fmt.Errorf("%w: %s", ErrNotClaimed, fullName)
	}
	if !sameSlot(entry.ci, ci) {
		return fmt.Errorf("%w: %s", ErrForeignInterface, fullName)
	}
	back, err := ci.Move()
	if err != nil {
		return fmt.Errorf("release %s: %w", fullName, err)
	}
	entry.ci = back
	entry.claimed = false
	m.logger.Debug("released command interface", "interface", fullName)
	return nil
}

// sameSlot reports whether ci is the interface claimed from entry. The
// moved-from entry keeps the slot identity of the interface it handed out.
func sameSlot(entry, ci *handle.CommandInterface) bool {
	if !entry.IsBound() {
		return !ci.IsBound()
	}
	return entry.SameSlot(ci)
}

// IsClaimed reports whether the named command interface is claimed.
func (m *Manager) IsClaimed(fullName string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.commands[fullName]
	return ok && entry.claimed
}

// StateInterfaceNames returns the full names of all state interfaces, sorted.
func (m *Manager) StateInterfaceNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedKeys(m.states)
}

// CommandInterfaceNames returns the full names of all command interfaces,
// sorted.
func (m *Manager) CommandInterfaceNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedKeys(m.commands)
}

func sortedKeys[V any](src map[string]V) []string {
	names := make([]string, 0, len(src))
	for name := range src {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Components returns the imported components in import order.
func (m *Manager) Components() []component.Component {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]component.Component, len(m.components))
	for i, g := range m.components {
		out[i] = g
	}
	return out
}

// Snapshot returns the current value of every bound state interface.
func (m *Manager) Snapshot() map[string]handle.Value {
	m.mu.RLock()
	defer m.mu.RUnlock()

	values := make(map[string]handle.Value, len(m.states))
	for name, si := range m.states {
		if !si.IsBound() {
			continue
		}
		v, err := si.Value()
		if err != nil {
			continue
		}
		values[name] = v
	}
	return values
}

func (m *Manager) guards() []*component.Guard {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.components)
}

// StartAll starts every component in import order. On the first failure
// the components already started are stopped again, in reverse order, and
// the start error is returned joined with any stop failures.
func (m *Manager) StartAll() error {
	guards := m.guards()
	for i, g := range guards {
		if err := g.Start(); err != nil {
			errs := []error{fmt.Errorf("%s: %w", g.Name(), err)}
			for _, started := range slices.Backward(guards[:i]) {
				if err := started.Stop(); err != nil {
					m.logger.Error("stop after failed start", "component", started.Name(), "error", err)
					errs = append(errs, fmt.Errorf("%s: %w", started.Name(), err))
				}
			}
			return errors.Join(errs...)
		}
	}
	return nil
}

// StopAll stops every component in import order. A failing component does
// not keep the others from stopping; all failures are returned joined.
func (m *Manager) StopAll() error {
	var errs []error
	for _, g := range m.guards() {
		if err := g.Stop(); err != nil {
			m.logger.Error("stop failed", "component", g.Name(), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", g.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// ReadAll reads every component in import order. The first failure aborts
// the pass.
func (m *Manager) ReadAll(ctx context.Context) error {
	for _, g := range m.guards() {
		if err := g.Read(ctx); err != nil {
			return err
		}
	}
	return nil
}

// WriteAll writes every component in import order. The first failure aborts
// the pass.
func (m *Manager) WriteAll(ctx context.Context) error {
	for _, g := range m.guards() {
		if err := g.Write(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close stops every component, releases the command interfaces the manager
// still holds and ends the storage lifetime of every component. Interfaces
// claimed by consumers report handle.ErrReleased afterwards. The manager is
// empty once Close returns and can import again.
func (m *Manager) Close() error {
	m.mu.Lock()
	guards := m.components
	commands := m.commands
	m.components = nil
	m.states = make(map[string]handle.StateInterface)
	m.commands = make(map[string]*commandEntry)
	m.mu.Unlock()

	for _, entry := range commands {
		if !entry.claimed {
			entry.ci.Release()
		}
	}

	var errs []error
	for _, g := range guards {
		if err := g.Close(); err != nil {
			m.logger.Error("close failed", "component", g.Name(), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", g.Name(), err))
		}
	}
	m.logger.Info("closed resource manager", "components", len(guards))
	return errors.Join(errs...)
}
