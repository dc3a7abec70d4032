// Package log prints console diagnostics: JSON debug lines when enabled,
// and coloured warnings and errors.
package log

import (
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"time"

	"github.com/ttacon/chalk"
)

type Context map[string]interface{}

type Message struct {
	Time    string  `json:"time"`
	Service string  `json:"service"`
	Message string  `json:"message"`
	Context Context `json:"context,omitempty"`
}

type Logger struct {
	out   io.Writer
	std   *stdlog.Logger
	debug bool
	now   func() time.Time
}

func New(out io.Writer, debug bool) *Logger {
	return &Logger{
		out:   out,
		std:   stdlog.New(out, "", stdlog.LstdFlags),
		debug: debug,
		now:   time.Now,
	}
}

var std = New(os.Stderr, false)

// Default returns the process-wide logger.
func Default() *Logger { return std }

// SetDebug toggles debug output on the process-wide logger.
func SetDebug(on bool) { std.debug = on }

func (l *Logger) DebugEnabled() bool { return l != nil && l.debug }

// Debug writes one JSON line. It is a no-op unless debug output is enabled.
func (l *Logger) Debug(service, message string, ctx Context) {
	if !l.DebugEnabled() {
		return
	}
	data, err := json.Marshal(Message{
		Time:    l.now().Format(time.RFC3339),
		Service: service,
		Message: message,
		Context: ctx,
	})
	if err != nil {
		l.std.Print(message)
		return
	}
	fmt.Fprintln(l.out, string(data))
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.std.Printf(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.std.Print(chalk.Yellow.Color(fmt.Sprintf(format, args...)))
}

func (l *Logger) Error(err error, msg string) {
	l.std.Print(chalk.Red.Color(fmt.Sprintf("%s: %v", msg, err)))
}

// Fatal prints err in red and exits with status 1.
func (l *Logger) Fatal(err error, msg string) {
	l.Error(err, msg)
	os.Exit(1)
}
