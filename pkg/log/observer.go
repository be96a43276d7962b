package log

import (
	"time"

	"github.com/openhwif/hwif-go/pkg/component"
)

// TransitionObserver turns component lifecycle transitions into trace
// events. Install it with resource.WithObserver.
type TransitionObserver struct {
	Logger Logger

	// RunID is stamped on every event.
	RunID string

	// Now defaults to time.Now.
	Now func() time.Time
}

// OnTransition implements component.Observer.
func (o *TransitionObserver) OnTransition(name string, from, to component.Status) {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	o.Logger.Log(Event{
		Timestamp: now(),
		RunID:     o.RunID,
		Component: name,
		Category:  CategoryTransition,
		Transition: &TransitionEvent{
			From: from.String(),
			To:   to.String(),
		},
	})
}

// StageOf maps a component stage to the trace stage.
func StageOf(s component.Stage) Stage {
	switch s {
	case component.StageConfigure:
		return StageConfigure
	case component.StageExport:
		return StageExport
	case component.StageStart:
		return StageStart
	case component.StageStop:
		return StageStop
	case component.StageRead:
		return StageRead
	default:
		return StageWrite
	}
}

var _ component.Observer = (*TransitionObserver)(nil)
