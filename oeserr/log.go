package oeserr

import (
	"log/slog"
	"sync"
)

var (
	loggerMu sync.RWMutex
	logger   *slog.Logger
)

// SetLogger replaces the logger used for construction-time records and
// classification traces. Passing nil restores slog.Default.
func SetLogger(l *slog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func activeLogger() *slog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()

	if logger != nil {
		return logger
	}

	return slog.Default()
}
