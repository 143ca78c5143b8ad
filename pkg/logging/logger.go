// Package logging writes run-scoped diagnostic logs for the toolkit.
//
// Every process run gets one log file: the browser manager, its sessions,
// and the storefront server all append to it, so a failed e2e run maps to a
// single file to read. Assertions never look at these logs; they exist for
// debugging.
//
// The file lives under STOREWRIGHT_LOG_DIR when set (useful as a CI
// artifact directory), otherwise under ~/.storewright/logs. Debugf output is
// suppressed unless STOREWRIGHT_DEBUG is set.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// runSink is the shared per-process sink: one run, one file. Opening it
// falls back to stderr so logging never blocks a test run.
var runSink struct {
	once sync.Once
	path string
	w    io.Writer
	err  error
}

func openRunSink() (io.Writer, error) {
	runSink.once.Do(func() {
		runSink.w = os.Stderr

		dir := os.Getenv("STOREWRIGHT_LOG_DIR")
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				runSink.err = fmt.Errorf("resolving home directory: %w", err)
				return
			}
			dir = filepath.Join(home, ".storewright", "logs")
		}
		if err := os.MkdirAll(dir, 0750); err != nil {
			runSink.err = fmt.Errorf("creating log directory: %w", err)
			return
		}

		path := filepath.Join(dir, fmt.Sprintf("run-%s.log", uuid.NewString()[:8]))
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			runSink.err = fmt.Errorf("opening log file: %w", err)
			return
		}
		runSink.path = path
		runSink.w = f
	})
	return runSink.w, runSink.err
}

// RunLogPath returns the path of the current run's log file, or "" when
// file logging is unavailable.
func RunLogPath() string {
	_, _ = openRunSink()
	return runSink.path
}

// Logger tags entries with a component name ("browser", "storefront").
type Logger struct {
	component string
	debug     bool
	out       *log.Logger
}

// NewLogger returns a logger for component. When the run log file cannot be
// created the logger writes to stderr instead and the error says why.
func NewLogger(component string) (*Logger, error) {
	w, err := openRunSink()
	l := newWithWriter(component, w, os.Getenv("STOREWRIGHT_DEBUG") != "")
	if err != nil {
		l.Warnf("file logging unavailable, using stderr: %v", err)
	}
	return l, err
}

func newWithWriter(component string, w io.Writer, debug bool) *Logger {
	return &Logger{
		component: component,
		debug:     debug,
		out:       log.New(w, "", 0),
	}
}

func (l *Logger) logf(level, format string, v ...interface{}) {
	ts := time.Now().Format("15:04:05.000")
	l.out.Printf("%s %-5s %s: %s", ts, level, l.component, fmt.Sprintf(format, v...))
}

// Debugf logs only when STOREWRIGHT_DEBUG is set.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if !l.debug {
		return
	}
	l.logf("DEBUG", format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.logf("INFO", format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logf("WARN", format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logf("ERROR", format, v...)
}
