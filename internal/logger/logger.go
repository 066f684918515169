// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used by the agent, the page injector and the client TUI.
//
// Logger embeds zerolog.Logger, so Debug, Info, Warn, Error and friends are
// available directly. Request-scoped loggers are attached to a context by the
// message channel middleware and retrieved with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON logger writing to os.Stdout for the given role
// (e.g. "agent"). level is a zerolog level name; an empty or unknown value
// falls back to debug.
//
// Every entry carries the "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name.
func NewLogger(role, level string) *Logger {
	return newLogger(os.Stdout, role, level)
}

// NewClientLogger constructs a logger for the interactive client. The TUI
// owns the terminal, so entries are appended to logPath instead of stdout.
// An empty logPath means "openpims-client.log" next to the executable; if the
// file cannot be opened the logger falls back to discarding output.
func NewClientLogger(role, logPath string) *Logger {
	if logPath == "" {
		execPath, _ := os.Executable()
		logPath = filepath.Join(filepath.Dir(execPath), "openpims-client.log")
	}

	var out io.Writer = io.Discard
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err == nil {
		out = logFile
	}

	return newLogger(out, role, "")
}

func newLogger(out io.Writer, role, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of the receiver that can be enriched with
// extra fields without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger stored in the request context by the
// trace-id middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger stored in ctx. zerolog falls back to its
// default logger when none is attached, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
