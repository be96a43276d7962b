package controlloop

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid control loop config")

// Default configuration values.
const (
	DefaultPeriod               = 10 * time.Millisecond
	DefaultMaxConsecutiveErrors = 1
)

// Config holds control loop settings.
type Config struct {
	// Period is the time between cycle starts.
	Period time.Duration

	// CycleTimeout bounds one read/update/write cycle. Zero means Period.
	CycleTimeout time.Duration

	// MaxConsecutiveErrors is the number of failed cycles in a row after
	// which the loop stops the hardware and returns.
	MaxConsecutiveErrors int

	// StopOnExit stops all components when the run context is cancelled.
	StopOnExit bool
}

// DefaultConfig returns the default configuration: a 10 ms period, a cycle
// timeout equal to the period, stop on the first failed cycle and stop the
// hardware on exit.
func DefaultConfig() Config {
	return Config{
		Period:               DefaultPeriod,
		CycleTimeout:         DefaultPeriod,
		MaxConsecutiveErrors: DefaultMaxConsecutiveErrors,
		StopOnExit:           true,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Period <= 0 {
		return fmt.Errorf("%w: period must be positive, got %v", ErrInvalidConfig, c.Period)
	}
	if c.CycleTimeout < 0 {
		return fmt.Errorf("%w: cycle timeout must not be negative, got %v", ErrInvalidConfig, c.CycleTimeout)
	}
	if c.MaxConsecutiveErrors < 1 {
		return fmt.Errorf("%w: max consecutive errors must be at least 1, got %d", ErrInvalidConfig, c.MaxConsecutiveErrors)
	}
	return nil
}

func (c Config) cycleTimeout() time.Duration {
	if c.CycleTimeout == 0 {
		return c.Period
	}
	return c.CycleTimeout
}
