package montecarlopi

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	logMu  sync.RWMutex
	logger = newLogger(os.Stderr)
	once   sync.Once
)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("component", "montecarlopi")
}

// SetLogOutput redirects debug output, mostly for tests.
func SetLogOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	logger = newLogger(w)
}

func DebugLog(msg string, args ...any) {
	if !Debug {
		return
	}
	logMu.RLock()
	l := logger
	logMu.RUnlock()
	l.Debug(msg, args...)
}

func DebugLogOnce(msg string, args ...any) {
	if !Debug {
		return
	}
	once.Do(func() {
		DebugLog(msg, args...)
	})
}
