package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// newLogger opens the log sink. An empty path discards everything, since
// the terminal backends own the screen. The returned func closes the file.
func newLogger(path, level string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		w, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
