package report

import (
	"io"
	"log"
)

// Logger defines the interface for logging
type Logger interface {
	Debug(msg string)
	Warn(msg string)
	Error(msg string)
}

// StdLogger writes to a standard library logger. Debug lines are dropped unless Verbose is set.
type StdLogger struct {
	Logger  *log.Logger
	Verbose bool
}

// NewStdLogger creates a StdLogger writing to w with the standard flags.
func NewStdLogger(w io.Writer, verbose bool) *StdLogger {
	return &StdLogger{Logger: log.New(w, "policyplot: ", log.LstdFlags), Verbose: verbose}
}

func (l *StdLogger) Debug(msg string) {
	if l.Verbose {
		l.Logger.Printf("debug: %s", msg)
	}
}

func (l *StdLogger) Warn(msg string) {
	l.Logger.Printf("warning: %s", msg)
}

func (l *StdLogger) Error(msg string) {
	l.Logger.Printf("error: %s", msg)
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(string) {}
