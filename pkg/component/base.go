package component

import (
	"fmt"
	"sync"

	"github.com/openhwif/hwif-go/pkg/hardware"
)

// Base holds the description and status shared by every component. Embed it
// and call ConfigureDefault from Configure.
type Base struct {
	mu     sync.RWMutex
	info   *hardware.Info
	status Status
}

// ConfigureDefault validates and stores info. On success the status becomes
// CONFIGURED, on failure FAILED.
func (b *Base) ConfigureDefault(info *hardware.Info) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if info == nil {
		b.status = StatusFailed
		return fmt.Errorf("%w: nil description", hardware.ErrInvalidDescription)
	}
	if err := info.Validate(); err != nil {
		b.status = StatusFailed
		return err
	}
	b.info = info
	b.status = StatusConfigured
	return nil
}

// Fail marks the component unusable. Components call it when their own
// checks reject a description that ConfigureDefault accepted.
func (b *Base) Fail() {
	b.SetStatus(StatusFailed)
}

// Info returns the stored description, nil before configuration.
func (b *Base) Info() *hardware.Info {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.info
}

// Name returns the hardware name from the description.
func (b *Base) Name() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.info == nil {
		return ""
	}
	return b.info.Name
}

// Status returns the current status.
func (b *Base) Status() Status {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status
}

// SetStatus sets the current status.
func (b *Base) SetStatus(s Status) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = s
}

// RequireConfigured returns ErrNotConfigured before a successful
// ConfigureDefault and ErrUnusable after a failed configuration. Components
// call it at the top of their exports and Start.
func (b *Base) RequireConfigured() error {
	switch b.Status() {
	case StatusUnconfigured:
		return ErrNotConfigured
	case StatusFailed:
		return ErrUnusable
	default:
		return nil
	}
}
