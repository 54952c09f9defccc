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
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Package-level cached context reused where an API demands one.
//
// We reuse context.Background() because it is immutable, safe for
// concurrent access, and the facade never uses it for cancellation.
var bgCtx = context.Background()

type ctxKey int

const loggerKey ctxKey = iota

// inertLogger is handed out by FromContext when no Logger was stored. It
// drops everything, so code logging through an unpopulated context never
// faults and never emits.
var inertLogger = func() *Logger {
	l := &Logger{threshold: LevelNone}
	l.Bind(nil)
	return l
}()

// ContextWithLogger stores a Logger in the context for retrieval with
// [FromContext].
func ContextWithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the Logger previously stored with
// [ContextWithLogger]. If none was stored, an inert Logger is returned.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerKey).(*Logger); ok {
		return l
	}
	return inertLogger
}

// Trace correlation key names appended to composed messages.
const (
	fieldTraceID = "trace_id"
	fieldSpanID  = "span_id"
)

// ContextLogger wraps a Logger with trace correlation taken from an
// OpenTelemetry span context. When the context carries an active span,
// every message gains a " trace_id=<id> span_id=<id>" tail before the
// line terminator; without a span it behaves exactly like the wrapped
// Logger.
//
// Typically created per request and used on a single goroutine.
type ContextLogger struct {
	logger  *Logger
	traceID string
	spanID  string
}

// NewContextLogger creates a context-aware logger around l, extracting
// trace and span IDs from ctx if an active span is present.
func NewContextLogger(ctx context.Context, l *Logger) *ContextLogger {
	cl := &ContextLogger{logger: l}
	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		sc := span.SpanContext()
		cl.traceID = sc.TraceID().String()
		cl.spanID = sc.SpanID().String()
	}
	return cl
}

// TraceID returns the trace ID if available.
func (cl *ContextLogger) TraceID() string {
	return cl.traceID
}

// SpanID returns the span ID if available.
func (cl *ContextLogger) SpanID() string {
	return cl.spanID
}

// Error logs a critical failure with trace correlation.
func (cl *ContextLogger) Error(format string, args ...any) {
	cl.logger.log(logCallDepth, LevelError, cl.fmt(format), cl.fwd(args))
}

// Warn logs an abnormal but recoverable condition with trace correlation.
func (cl *ContextLogger) Warn(format string, args ...any) {
	cl.logger.log(logCallDepth, LevelWarn, cl.fmt(format), cl.fwd(args))
}

// Info logs a normal operational status message with trace correlation.
func (cl *ContextLogger) Info(format string, args ...any) {
	cl.logger.log(logCallDepth, LevelInfo, cl.fmt(format), cl.fwd(args))
}

// Debug logs detailed diagnostic information with trace correlation.
func (cl *ContextLogger) Debug(format string, args ...any) {
	cl.logger.log(logCallDepth, LevelDebug, cl.fmt(format), cl.fwd(args))
}

func (cl *ContextLogger) fmt(format string) string {
	if cl.traceID == "" {
		return format
	}
	return format + " " + fieldTraceID + "=%s " + fieldSpanID + "=%s"
}

func (cl *ContextLogger) fwd(args []any) []any {
	if cl.traceID == "" {
		return args
	}
	out := make([]any, 0, len(args)+2)
	out = append(out, args...)
	return append(out, cl.traceID, cl.spanID)
}
