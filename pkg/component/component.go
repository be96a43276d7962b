// Package component defines the lifecycle contract a hardware component
// implements and the state machine the framework drives it through.
//
// # Lifecycle
//
//	UNCONFIGURED --Configure--> CONFIGURED --Start--> STARTED
//	                   |                       ^         |
//	                   v                       |        Stop
//	                 FAILED                  Start       v
//	                                           +----- STOPPED
//
// After a successful Configure the framework collects handles with
// ExportStateInterfaces and ExportCommandInterfaces, calls Start, and then
// calls Read and Write once per control cycle. Stop leaves the hardware in a
// safe, non-actuating condition.
//
// Concrete components embed Base for status bookkeeping. Guard wraps any
// Component and rejects calls made out of order, so components themselves
// can assume the sequence is respected.
package component

import (
	"context"
	"errors"
	"fmt"

	"github.com/openhwif/hwif-go/pkg/handle"
	"github.com/openhwif/hwif-go/pkg/hardware"
)

// Component is the contract between the framework and a hardware component.
// A nil error is success.
type Component interface {
	// Name returns the component instance name.
	Name() string

	// Status returns the current lifecycle status.
	Status() Status

	// Configure validates and stores the hardware description.
	Configure(info *hardware.Info) error

	// ExportStateInterfaces returns the state handles bound to internal storage.
	ExportStateInterfaces() ([]handle.StateInterface, error)

	// ExportCommandInterfaces returns the command handles bound to internal
	// storage. The component must not keep a live command interface on any
	// exported slot.
	ExportCommandInterfaces() ([]*handle.CommandInterface, error)

	// Start arms the hardware.
	Start() error

	// Stop disarms the hardware.
	Stop() error

	// Read refreshes state storage from the hardware. It must return once ctx
	// is done.
	Read(ctx context.Context) error

	// Write pushes command storage out to the hardware. It must return once
	// ctx is done.
	Write(ctx context.Context) error
}

// Closer is implemented by components that own handle storage. Close ends
// the lifetime of that storage: every handle the component exported reports
// handle.ErrReleased afterwards.
type Closer interface {
	Close() error
}

// Status is the lifecycle state of a component.
type Status uint8

const (
	StatusUnconfigured Status = iota
	StatusConfigured
	StatusStarted
	StatusStopped
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusUnconfigured:
		return "UNCONFIGURED"
	case StatusConfigured:
		return "CONFIGURED"
	case StatusStarted:
		return "STARTED"
	case StatusStopped:
		return "STOPPED"
	case StatusFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Lifecycle errors.
var (
	ErrNotConfigured     = errors.New("component not configured")
	ErrAlreadyConfigured = errors.New("component already configured")
	ErrUnusable          = errors.New("component failed configuration and is unusable")
	ErrNotStarted        = errors.New("component not started")
	ErrAlreadyExported   = errors.New("interfaces already exported")
)

// Stage names the lifecycle call an error came from.
type Stage uint8

const (
	StageConfigure Stage = iota
	StageExport
	StageStart
	StageStop
	StageRead
	StageWrite
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageConfigure:
		return "CONFIGURE"
	case StageExport:
		return "EXPORT"
	case StageStart:
		return "START"
	case StageStop:
		return "STOP"
	case StageRead:
		return "READ"
	case StageWrite:
		return "WRITE"
	default:
		return "UNKNOWN"
	}
}

// CycleError is a failed Read or Write. The framework decides whether to
// retry or stop; the component layer never retries.
type CycleError struct {
	Component string
	Stage     Stage
	Err       error
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Component, e.Stage, e.Err)
}

func (e *CycleError) Unwrap() error {
	return e.Err
}
