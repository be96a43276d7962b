package main

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger at the given level. Unknown levels fall
// back to info.
func newLogger(w io.Writer, level string) *slog.Logger {
	lvl, err := parseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
