// Package log provides a structured control-loop trace.
//
// This package defines the Logger interface and Event types for capturing
// component lifecycle transitions, completed control cycles and failed
// lifecycle calls. It is separate from operational logging (slog): the trace
// is a complete machine-readable record of a run for debugging and analysis.
//
// # Basic Usage
//
// Applications configure tracing by providing a Logger implementation:
//
//	// For development: log to console via slog
//	loop := controlloop.New(mgr, cfg, controlloop.WithTrace(log.NewSlogAdapter(slog.Default())))
//
//	// For analysis: write to binary file
//	trace, _ := log.NewFileLogger("/var/log/hwif/run.hwlog")
//
//	// Both: use MultiLogger
//	tracer := log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), trace)
//
// Lifecycle transitions reach the trace through TransitionObserver, which
// plugs into the resource manager as a component.Observer.
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events, conventionally with the
// .hwlog extension. The hwif-log CLI tool views and summarizes them.
package log
