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
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// SinkCall is one recorded sink invocation: the composed format string
// and the forwarded arguments, exactly as the dispatcher passed them.
type SinkCall struct {
	Format string
	Args   []any
}

// Rendered returns the call formatted the way a printf transport would
// print it.
func (c SinkCall) Rendered() string {
	return fmt.Sprintf(c.Format, c.Args...)
}

// SinkRecorder records every sink invocation for test assertions.
//
// Use cases:
//   - Verify number of dispatches (gating behavior)
//   - Inspect composed format strings byte for byte (prefix layout)
//   - Inspect forwarded argument order (function-name forwarding)
//
// Example:
//
//	rec := &SinkRecorder{}
//	logger := logging.MustNew(
//	    logging.WithThreshold(logging.LevelInfo),
//	    logging.WithSink(rec.Sink()),
//	)
//	logger.Info("ready")
//
//	if rec.CallCount() != 1 {
//	    t.Error("expected exactly one dispatch")
//	}
type SinkRecorder struct {
	mu     sync.Mutex
	calls  []SinkCall
	status int
}

// Sink returns the recording sink. The returned status is the recorder's
// configured status (0 unless [SinkRecorder.SetStatus] was called).
func (r *SinkRecorder) Sink() Sink {
	return func(format string, args ...any) int {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, SinkCall{Format: format, Args: append([]any(nil), args...)})
		return r.status
	}
}

// SetStatus sets the status every recorded call returns, for exercising
// the fire-and-forget contract with failing sinks.
func (r *SinkRecorder) SetStatus(status int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = status
}

// Calls returns a copy of all recorded invocations.
func (r *SinkRecorder) Calls() []SinkCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]SinkCall(nil), r.calls...)
}

// CallCount returns the number of recorded invocations.
func (r *SinkRecorder) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// LastCall returns the most recent invocation, or nil if none happened.
func (r *SinkRecorder) LastCall() *SinkCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil
	}
	c := r.calls[len(r.calls)-1]
	return &c
}

// Contains reports whether any rendered message contains substr.
func (r *SinkRecorder) Contains(substr string) bool {
	for _, c := range r.Calls() {
		if strings.Contains(c.Rendered(), substr) {
			return true
		}
	}
	return false
}

// Reset clears all recorded invocations.
func (r *SinkRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// AssertCall checks that exactly one invocation was recorded and that its
// composed format matches wantFormat byte for byte with wantArgs
// forwarded in order.
func (r *SinkRecorder) AssertCall(t *testing.T, wantFormat string, wantArgs ...any) {
	t.Helper()

	calls := r.Calls()
	require.Len(t, calls, 1, "expected exactly one sink invocation")
	require.Equal(t, wantFormat, calls[0].Format, "composed format mismatch")
	if len(wantArgs) == 0 {
		require.Empty(t, calls[0].Args, "expected no forwarded arguments")
		return
	}
	require.Equal(t, wantArgs, calls[0].Args, "forwarded arguments mismatch")
}

// CountingSink counts invocations without storing them.
//
// Useful for volume checks in long-running tests where a [SinkRecorder]
// would exhaust memory.
type CountingSink struct {
	count int64
	mu    sync.Mutex
}

// Sink returns the counting sink.
func (c *CountingSink) Sink() Sink {
	return func(string, ...any) int {
		c.mu.Lock()
		c.count++
		c.mu.Unlock()
		return 0
	}
}

// Count returns the number of invocations.
func (c *CountingSink) Count() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// SlowSink wraps a sink with a fixed delay per call, simulating a slow
// transport. The facade imposes no timeout, so call sites inherit the
// full delay; tests use this to verify that inherited-latency contract.
func SlowSink(delay time.Duration, inner Sink) Sink {
	return func(format string, args ...any) int {
		time.Sleep(delay)
		if inner != nil {
			return inner(format, args...)
		}
		return 0
	}
}
