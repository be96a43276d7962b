package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to see the trace in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level. Error events are
// written at Warn level.
func (a *SlogAdapter) Log(event Event) {
	level := slog.LevelDebug
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("category", event.Category.String()),
	}
	if event.Component != "" {
		attrs = append(attrs, slog.String("component", event.Component))
	}

	switch {
	case event.Transition != nil:
		attrs = append(attrs,
			slog.String("from", event.Transition.From),
			slog.String("to", event.Transition.To),
		)
	case event.Cycle != nil:
		attrs = append(attrs,
			slog.Uint64("seq", event.Cycle.Sequence),
			slog.Duration("duration", event.Cycle.Duration),
		)
		if event.Cycle.Overrun {
			attrs = append(attrs, slog.Bool("overrun", true))
		}
	case event.Error != nil:
		level = slog.LevelWarn
		attrs = append(attrs,
			slog.String("stage", event.Error.Stage.String()),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Sequence != 0 {
			attrs = append(attrs, slog.Uint64("seq", event.Error.Sequence))
		}
	}

	a.logger.LogAttrs(context.Background(), level, "trace", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
