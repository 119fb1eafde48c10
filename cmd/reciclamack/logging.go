package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reciclamack/internal/storage"
)

var (
	logger  = log.Default()
	logFile *os.File
)

// openLog builds the process logger. Terminal games own the screen, so logs
// go to a file unless path is "-".
func openLog(path, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var w io.Writer = os.Stderr
	if path != "-" && path != "" {
		expanded, err := storage.ExpandHome(path)
		if err != nil {
			return nil, fmt.Errorf("cannot resolve log path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
			return nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "reciclamack",
		Level:           lvl,
	})
	return logger, nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
