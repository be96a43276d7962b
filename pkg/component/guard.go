package component

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/openhwif/hwif-go/pkg/handle"
	"github.com/openhwif/hwif-go/pkg/hardware"
)

// Observer is notified after every lifecycle transition.
type Observer interface {
	OnTransition(component string, from, to Status)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(component string, from, to Status)

// OnTransition calls f.
func (f ObserverFunc) OnTransition(component string, from, to Status) {
	f(component, from, to)
}

// Guard enforces the lifecycle ordering around a Component:
//
//   - Configure runs once, from UNCONFIGURED. A failure leaves the component
//     FAILED and every later call returns ErrUnusable.
//   - Each export runs once, after a successful Configure.
//   - Start is accepted from CONFIGURED or STOPPED and is a no-op when
//     already STARTED. Stop is accepted from CONFIGURED or STARTED and is a
//     no-op when already STOPPED.
//   - Read and Write run only while STARTED. Their failures are returned as
//     *CycleError and never retried.
//
// The guard's status is authoritative; the wrapped component's own Status is
// not consulted.
type Guard struct {
	mu       sync.Mutex
	inner    Component
	status   Status
	observer Observer

	stateExported   bool
	commandExported bool
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithObserver sets the transition observer.
func WithObserver(o Observer) GuardOption {
	return func(g *Guard) {
		g.observer = o
	}
}

// NewGuard wraps c.
func NewGuard(c Component, opts ...GuardOption) *Guard {
	g := &Guard{inner: c, status: StatusUnconfigured}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Unwrap returns the wrapped component.
func (g *Guard) Unwrap() Component {
	return g.inner
}

// Name returns the wrapped component's name.
func (g *Guard) Name() string {
	return g.inner.Name()
}

// Status returns the guarded status.
func (g *Guard) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// usable reports whether lifecycle calls past Configure are allowed.
// Caller holds g.mu.
func (g *Guard) usable() error {
	switch g.status {
	case StatusFailed:
		return ErrUnusable
	case StatusUnconfigured:
		return ErrNotConfigured
	default:
		return nil
	}
}

// setStatus records a transition and returns a function that notifies the
// observer. Call the returned function after releasing g.mu.
func (g *Guard) setStatus(to Status) func() {
	from := g.status
	g.status = to
	if g.observer == nil || from == to {
		return func() {}
	}
	name := g.inner.Name()
	return func() { g.observer.OnTransition(name, from, to) }
}

// Configure implements Component.
func (g *Guard) Configure(info *hardware.Info) error {
	g.mu.Lock()
	switch g.status {
	case StatusUnconfigured:
	case StatusFailed:
		g.mu.Unlock()
		return ErrUnusable
	default:
		g.mu.Unlock()
		return ErrAlreadyConfigured
	}

	if err := g.inner.Configure(info); err != nil {
		notify := g.setStatus(StatusFailed)
		g.mu.Unlock()
		notify()
		return fmt.Errorf("configure: %w", err)
	}
	notify := g.setStatus(StatusConfigured)
	g.mu.Unlock()
	notify()
	return nil
}

// ExportStateInterfaces implements Component.
func (g *Guard) ExportStateInterfaces() ([]handle.StateInterface, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.usable(); err != nil {
		return nil, err
	}
	if g.stateExported {
		return nil, ErrAlreadyExported
	}
	ifaces, err := g.inner.ExportStateInterfaces()
	if err != nil {
		return nil, fmt.Errorf("export state interfaces: %w", err)
	}
	g.stateExported = true
	return ifaces, nil
}

// ExportCommandInterfaces implements Component.
func (g *Guard) ExportCommandInterfaces() ([]*handle.CommandInterface, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.usable(); err != nil {
		return nil, err
	}
	if g.commandExported {
		return nil, ErrAlreadyExported
	}
	ifaces, err := g.inner.ExportCommandInterfaces()
	if err != nil {
		return nil, fmt.Errorf("export command interfaces: %w", err)
	}
	g.commandExported = true
	return ifaces, nil
}

// Start implements Component.
func (g *Guard) Start() error {
	g.mu.Lock()
	if err := g.usable(); err != nil {
		g.mu.Unlock()
		return err
	}
	if g.status == StatusStarted {
		g.mu.Unlock()
		return nil
	}
	if err := g.inner.Start(); err != nil {
		g.mu.Unlock()
		return fmt.Errorf("start: %w", err)
	}
	notify := g.setStatus(StatusStarted)
	g.mu.Unlock()
	notify()
	return nil
}

// Stop implements Component.
func (g *Guard) Stop() error {
	g.mu.Lock()
	if err := g.usable(); err != nil {
		g.mu.Unlock()
		return err
	}
	if g.status == StatusStopped {
		g.mu.Unlock()
		return nil
	}
	if err := g.inner.Stop(); err != nil {
		g.mu.Unlock()
		return fmt.Errorf("stop: %w", err)
	}
	notify := g.setStatus(StatusStopped)
	g.mu.Unlock()
	notify()
	return nil
}

// Close stops the component unless it is already stopped, then releases its
// storage if it implements Closer. A component that never configured is
// only released.
func (g *Guard) Close() error {
	var errs []error
	if err := g.Stop(); err != nil && !errors.Is(err, ErrNotConfigured) && !errors.Is(err, ErrUnusable) {
		errs = append(errs, err)
	}
	if c, ok := g.inner.(Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Read implements Component.
func (g *Guard) Read(ctx context.Context) error {
	return g.cycle(ctx, StageRead, g.inner.Read)
}

// Write implements Component.
func (g *Guard) Write(ctx context.Context) error {
	return g.cycle(ctx, StageWrite, g.inner.Write)
}

func (g *Guard) cycle(ctx context.Context, stage Stage, fn func(context.Context) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.usable(); err != nil {
		return err
	}
	if g.status != StatusStarted {
		return fmt.Errorf("%w: %s while %s", ErrNotStarted, stage, g.status)
	}
	if err := ctx.Err(); err != nil {
		return &CycleError{Component: g.inner.Name(), Stage: stage, Err: err}
	}
	if err := fn(ctx); err != nil {
		return &CycleError{Component: g.inner.Name(), Stage: stage, Err: err}
	}
	return nil
}

// Compile-time interface satisfaction checks.
var (
	_ Component = (*Guard)(nil)
	_ Closer    = (*Guard)(nil)
)
