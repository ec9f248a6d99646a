package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	goerrors "github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

const defaultLogFile = "weapon-stats.log"

var (
	traceMu      sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
)

// Error writes errors to the shared log file. Errors carrying a stack (as
// produced by go-errors) include it in the entry.
func Error(err error) {
	if err == nil {
		return
	}
	logger, closeFn, ok := open()
	if !ok {
		return
	}
	defer closeFn()

	fields := logrus.Fields{}
	var stacked *goerrors.Error
	if goerrors.As(err, &stacked) {
		fields["stack"] = string(stacked.Stack())
	}
	logger.WithFields(fields).Error(err.Error())
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// TraceEnabled reports whether trace entries are currently emitted.
func TraceEnabled() bool {
	traceMu.Lock()
	defer traceMu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	logger, closeFn, ok := open()
	if !ok {
		return
	}
	defer closeFn()

	entry := logger.WithField("event", event)
	if payload != nil {
		entry = entry.WithField("payload", payload)
	}
	entry.Debug("trace")
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Path returns the currently configured log destination.
func Path() string {
	traceMu.Lock()
	defer traceMu.Unlock()
	return logPath
}

func open() (*logrus.Logger, func(), bool) {
	f, err := os.OpenFile(Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return nil, nil, false
	}
	return newLogger(f), func() { f.Close() }, true
}

func newLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logrus.DebugLevel)
	logger.Formatter = &logrus.JSONFormatter{}
	return logger
}
