// Package log provides the structured logger used for diagnostics.
// User-facing output goes through internal/ui instead.
package log

import (
	"io"
	"os"

	"github.com/baditaflorin/l"
)

// Logger is a leveled key/value logger
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Close() error
}

// Options configures a StdLogger
type Options struct {
	// Output defaults to os.Stderr
	Output io.Writer
	// JSON switches to JSON-formatted records
	JSON bool
	// Verbose enables debug records
	Verbose bool
}

// StdLogger adapts l.Logger to Logger
type StdLogger struct {
	logger  l.Logger
	verbose bool
}

// New creates a logger backed by github.com/baditaflorin/l
func New(opts Options) (*StdLogger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      out,
		JsonFormat:  opts.JSON,
		AsyncWrite:  true,
		BufferSize:  64 * 1024,
		MaxFileSize: 10 * 1024 * 1024,
		MaxBackups:  3,
		AddSource:   opts.Verbose,
	})
	if err != nil {
		return nil, err
	}

	return &StdLogger{logger: logger, verbose: opts.Verbose}, nil
}

// Debug logs a debug message. Dropped unless Verbose was set.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	if !s.verbose {
		return
	}
	s.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

// Close flushes pending records and closes the logger.
func (s *StdLogger) Close() error {
	return s.logger.Close()
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Close() error                 { return nil }

// Nop returns a Logger that discards everything
func Nop() Logger {
	return nopLogger{}
}

var _ Logger = (*StdLogger)(nil)
