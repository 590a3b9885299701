package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// newLogger creates the session logger. The terminal belongs to the game,
// so logs go to path or nowhere. Every line carries the session's run id.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger.With("run", uuid.NewString()), closeFn, nil
}
