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
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/PurpleSec/logx"
)

// Sink is the transport function every composed message is dispatched
// through: a printf-shaped callable returning an integer status. The
// facade ignores the status; it exists so implementations matching
// existing formatted-print primitives fit without adaptation.
//
// The sink runs synchronously on the caller's goroutine and blocks the
// call site for as long as it blocks. A sink invoked from multiple
// goroutines must synchronize internally; the facade does not serialize
// calls.
type Sink func(format string, args ...any) int

// NopSink accepts any arguments, performs no observable action and
// reports success. It is bound whenever no real sink is supplied, which
// guarantees every active call site always has a callable sink.
var NopSink Sink = func(string, ...any) int { return 0 }

// WriterSink returns a sink that formats each message into w.
//
// The status is the byte count reported by the writer, or -1 on write
// error. Writes from concurrent callers are only as atomic as w itself.
func WriterSink(w io.Writer) Sink {
	return func(format string, args ...any) int {
		n, err := fmt.Fprintf(w, format, args...)
		if err != nil {
			return -1
		}
		return n
	}
}

// StdoutSink returns a sink writing to standard output, the conventional
// console transport during development.
func StdoutSink() Sink {
	return WriterSink(os.Stdout)
}

// SlogSink returns a sink that forwards composed lines into a
// [slog.Logger] at the given level.
//
// The composed line already carries the severity tag and location prefix,
// so it travels as the record message with the trailing CRLF stripped;
// slog adds its own framing.
func SlogSink(sl *slog.Logger, level slog.Level) Sink {
	return func(format string, args ...any) int {
		sl.Log(bgCtx, level, strings.TrimSuffix(fmt.Sprintf(format, args...), "\r\n"))
		return 0
	}
}

// LogxSink returns a sink that forwards into a [logx.Log], typically one
// built with logx.File or logx.Multiple, so the facade can feed an
// existing logx pipeline.
func LogxSink(lx logx.Log) Sink {
	return func(format string, args ...any) int {
		lx.Info(strings.TrimSuffix(format, "\r\n"), args...)
		return 0
	}
}
