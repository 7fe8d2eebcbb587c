// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the go-accounts binaries.
//
// [Logger] embeds zerolog.Logger, so the whole zerolog API is available on
// it. Request-scoped loggers are attached by the HTTP middleware and read
// back with [FromRequest] or [FromContext].
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelEnv names the environment variable holding the minimum level of the
// server logger ("debug", "info", "warn", ...).
const LevelEnv = "LOG_LEVEL"

type Logger struct {
	zerolog.Logger
}

// NewLogger returns the JSON logger of a server-side process. Every entry is
// tagged with role, a timestamp and the calling function under "func".
// The level comes from LOG_LEVEL and defaults to debug.
func NewLogger(role string) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	return newJSONLogger(os.Stdout, role, levelFromEnv(os.Getenv(LevelEnv)))
}

func newJSONLogger(w io.Writer, role string, level zerolog.Level) *Logger {
	logger := zerolog.New(w).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// levelFromEnv parses value, falling back to debug when it is empty or
// unknown.
func levelFromEnv(value string) zerolog.Level {
	value = strings.TrimSpace(value)
	if value == "" {
		return zerolog.DebugLevel
	}

	level, err := zerolog.ParseLevel(strings.ToLower(value))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return level
}

// NewClientLogger returns a console logger on stderr for the CLI, keeping
// stdout free for command output.
func NewClientLogger(role string) *Logger {
	return newConsoleLogger(os.Stderr, role)
}

func newConsoleLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}).
		Level(zerolog.InfoLevel).
		With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
