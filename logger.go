// Copyright 2025 The Embedlog Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// Version is the library version string, fixed at build time.
const Version = "1.1.0"

// pathMode selects how the call-site file is rendered in the metadata
// prefix.
type pathMode uint8

const (
	// pathOff omits the file from the prefix.
	pathOff pathMode = iota
	// pathFull splices the full call-site path into the composed message.
	pathFull
	// pathBase renders a "(%s) " verb in the prefix and forwards the base
	// file name as a leading runtime argument, avoiding per-call string
	// concatenation on the hot path.
	pathBase
)

// logCallDepth is the number of frames between runtime.Caller inside
// Logger.log and the user's call site. Both the Logger methods and the
// package-level entry points interpose exactly one frame.
const logCallDepth = 2

// Logger is the logging context: the threshold, the prefix configuration
// and the bound sink. All prefix configuration is fixed at construction;
// only the sink can be replaced afterwards, via [Logger.Bind].
//
// Thread-safety: the sink reference uses [atomic.Pointer] so a sink bound
// once at startup is safe to read from every goroutine. The facade does
// NOT serialize concurrent Bind-while-logging; binding after concurrent
// callers have started is the embedding application's responsibility to
// prevent, or the sink itself must synchronize internally.
type Logger struct {
	// Prefix configuration (immutable after New)
	moduleName   string
	metaHead     string // "[<module>] " or ""
	pathMode     pathMode
	withFunction bool

	// Gate configuration (immutable after New)
	threshold Level

	// Sink requested at construction, before the atomic slot exists.
	initial Sink

	// Internal state. Lock-free sink access; never nil after New.
	sink atomic.Pointer[Sink]
}

// Option is a functional option for configuring the logger.
type Option func(*Logger)

// defaultLogger returns a Logger with default configuration. The threshold
// defaults to the build-tag-selected constant; without a tag it is unset
// and New refuses to proceed.
func defaultLogger() *Logger {
	return &Logger{
		threshold: compiledThreshold,
		pathMode:  pathOff,
	}
}

// New creates a new Logger with the given options.
//
// The threshold must resolve to one of the five defined levels, either
// from a build tag or from [WithThreshold]; a missing threshold is a
// configuration error, never defaulted. The returned Logger always has a
// callable sink bound: the one given via [WithSink], or the no-op sink.
func New(opts ...Option) (*Logger, error) {
	l := defaultLogger()

	for _, opt := range opts {
		opt(l)
	}

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if l.moduleName != "" {
		l.metaHead = "[" + l.moduleName + "] "
	}
	l.Bind(l.initial)

	return l, nil
}

// MustNew creates a new Logger or panics on error.
func MustNew(opts ...Option) *Logger {
	l, err := New(opts...)
	if err != nil {
		panic("logging initialization failed: " + err.Error())
	}
	return l
}

// Validate checks if the configuration is valid.
func (l *Logger) Validate() error {
	if l.threshold == levelUnset {
		return ErrMissingThreshold
	}
	if !l.threshold.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, int(l.threshold))
	}
	return nil
}

// Bind replaces the active sink. A nil sink binds the built-in no-op sink,
// so call sites never need a nil check. Binding again simply replaces the
// previous sink; the last writer wins.
func (l *Logger) Bind(s Sink) {
	if s == nil {
		s = NopSink
	}
	l.sink.Store(&s)
}

// Error logs a critical failure. The format string and arguments follow
// the printf contract of the bound sink.
func (l *Logger) Error(format string, args ...any) {
	l.log(logCallDepth, LevelError, format, args)
}

// Warn logs an abnormal but recoverable condition.
func (l *Logger) Warn(format string, args ...any) {
	l.log(logCallDepth, LevelWarn, format, args)
}

// Info logs a normal operational status message.
func (l *Logger) Info(format string, args ...any) {
	l.log(logCallDepth, LevelInfo, format, args)
}

// Debug logs detailed diagnostic information.
func (l *Logger) Debug(format string, args ...any) {
	l.log(logCallDepth, LevelDebug, format, args)
}

// log gates, composes and dispatches a single message.
//
// The gate comes first so suppressed calls never touch runtime.Caller or
// the composer. The sink's return status is discarded: the facade is
// fire-and-forget and defines no retry or escalation on sink failure.
func (l *Logger) log(skip int, level Level, format string, args []any) {
	if Disabled {
		return
	}
	if level > l.threshold || l.threshold == LevelNone {
		return
	}

	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		file, line = "???", 0
	}
	var fn string
	if l.withFunction {
		fn = shortFuncName(pc, ok)
	}

	msg, fwd := l.compose(level, file, line, fn, format, args)

	s := l.sink.Load()
	(*s)(msg, fwd...)
}

// Threshold returns the compiled-in threshold of this Logger. It is fixed
// at construction and read-only afterwards.
func (l *Logger) Threshold() Level {
	return l.threshold
}

// ModuleName returns the configured module tag, or "" if none.
func (l *Logger) ModuleName() string {
	return l.moduleName
}
