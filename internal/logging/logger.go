// Package logging provides runtime.Logger implementations for hosts that run
// outside Nakama.
package logging

import (
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/pterm/pterm"
)

// Logger adapts a pterm structured logger to runtime.Logger. Fields are
// emitted as pterm arguments on every line.
type Logger struct {
	out    *pterm.Logger
	fields map[string]interface{}
}

var _ runtime.Logger = (*Logger)(nil)

// New returns a logger writing to w at the named level (debug, info, warn,
// error). Unknown levels mean info.
func New(w io.Writer, level string) *Logger {
	out := pterm.DefaultLogger.WithLevel(ParseLevel(level)).WithWriter(w)
	return &Logger{out: out, fields: map[string]interface{}{}}
}

// ParseLevel maps a level name to pterm's log level.
func ParseLevel(level string) pterm.LogLevel {
	switch strings.ToLower(level) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	case "off", "disabled":
		return pterm.LogLevelDisabled
	default:
		return pterm.LogLevelInfo
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.out.Debug(fmt.Sprintf(format, v...), l.args())
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.out.Info(fmt.Sprintf(format, v...), l.args())
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.out.Warn(fmt.Sprintf(format, v...), l.args())
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.out.Error(fmt.Sprintf(format, v...), l.args())
}

func (l *Logger) WithField(key string, v interface{}) runtime.Logger {
	return l.WithFields(map[string]interface{}{key: v})
}

func (l *Logger) WithFields(fields map[string]interface{}) runtime.Logger {
	merged := maps.Clone(l.fields)
	maps.Copy(merged, fields)
	return &Logger{out: l.out, fields: merged}
}

func (l *Logger) Fields() map[string]interface{} {
	return maps.Clone(l.fields)
}

func (l *Logger) args() []pterm.LoggerArgument {
	if len(l.fields) == 0 {
		return nil
	}
	return l.out.ArgsFromMap(l.fields)
}

type nop struct{}

// Nop returns a logger that discards everything.
func Nop() runtime.Logger { return nop{} }

func (nop) Debug(string, ...interface{}) {}
func (nop) Info(string, ...interface{}) {}
func (nop) Warn(string, ...interface{}) {}
func (nop) Error(string, ...interface{}) {}
func (n nop) WithField(string, interface{}) runtime.Logger { return n }
func (n nop) WithFields(map[string]interface{}) runtime.Logger { return n }
func (nop) Fields() map[string]interface{} { return nil }
