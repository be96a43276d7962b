package log

import (
	"fmt"
	"strings"
	"time"
)

// Event is one entry of a control-loop trace.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID identifies the control-loop run (UUID).
	RunID string `cbor:"2,keyasint"`

	// Component is the hardware name, empty for loop-wide events.
	Component string `cbor:"3,keyasint,omitempty"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Transition *TransitionEvent `cbor:"10,keyasint,omitempty"`
	Cycle      *CycleEvent      `cbor:"11,keyasint,omitempty"`
	Error      *ErrorEventData  `cbor:"12,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryTransition indicates a component lifecycle transition.
	CategoryTransition Category = 0
	// CategoryCycle indicates a completed control cycle.
	CategoryCycle Category = 1
	// CategoryError indicates a failed lifecycle call.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryTransition:
		return "TRANSITION"
	case CategoryCycle:
		return "CYCLE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToUpper(s) {
	case "TRANSITION":
		return CategoryTransition, nil
	case "CYCLE":
		return CategoryCycle, nil
	case "ERROR":
		return CategoryError, nil
	default:
		return 0, fmt.Errorf("unknown category %q", s)
	}
}

// Stage names the lifecycle call or loop phase an event belongs to.
type Stage uint8

const (
	StageConfigure Stage = 0
	StageExport    Stage = 1
	StageStart     Stage = 2
	StageStop      Stage = 3
	StageRead      Stage = 4
	StageUpdate    Stage = 5
	StageWrite     Stage = 6
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
	case StageUpdate:
		return "UPDATE"
	case StageWrite:
		return "WRITE"
	default:
		return "UNKNOWN"
	}
}

// TransitionEvent captures a component lifecycle transition.
type TransitionEvent struct {
	// From is the previous status name.
	From string `cbor:"1,keyasint"`

	// To is the new status name.
	To string `cbor:"2,keyasint"`
}

// CycleEvent captures one completed control cycle.
type CycleEvent struct {
	// Sequence is the 1-based cycle number within the run.
	Sequence uint64 `cbor:"1,keyasint"`

	// Duration is the wall time the cycle took. Stored as nanoseconds.
	Duration time.Duration `cbor:"2,keyasint"`

	// Overrun is set when the cycle took longer than the loop period.
	Overrun bool `cbor:"3,keyasint,omitempty"`

	// Values holds the state interface values after the cycle, rendered as
	// strings and keyed by full name.
	Values map[string]string `cbor:"4,keyasint,omitempty"`
}

// ErrorEventData captures a failed lifecycle call.
type ErrorEventData struct {
	// Stage where the error occurred.
	Stage Stage `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Sequence is the cycle number for READ/UPDATE/WRITE errors.
	Sequence uint64 `cbor:"3,keyasint,omitempty"`
}
