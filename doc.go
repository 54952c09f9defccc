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

// Package logging is a minimal, build-time-configurable logging facade
// for embedded and resource-constrained applications.
//
// Design philosophy: the facade does exactly two things. It decides at
// build time which severity levels exist at all, and it forwards each
// surviving message, with a deterministic textual prefix, through a
// single pluggable transport function (the sink). There is no
// persistence, no encoding, no fan-out and no synchronization: a log
// statement is one string concatenation and one indirect call, or
// nothing.
//
// # Basic Usage
//
//	logger := logging.MustNew(
//	    logging.WithThreshold(logging.LevelInfo),
//	    logging.WithModuleName("APP"),
//	    logging.WithSink(logging.StdoutSink()),
//	)
//	logger.Info("service started on port %d", 8080)
//	logger.Debug("never emitted at this threshold")
//
// # Build-Time Level Selection
//
// The threshold can be fixed with a build tag instead of [WithThreshold]:
//
//	go build -tags loginfo ./...
//
// Exactly one of lognone, logerror, logwarn, loginfo or logdebug selects
// the compiled-in threshold; two at once fail the build, and none at all
// leaves the package-level entry points ([LogError], [LogWarn], [LogInfo],
// [LogDebug]) compiled out and forces [New] callers to pass
// [WithThreshold] explicitly. The additional logoff tag is a global kill
// switch that turns every entry point into a no-op regardless of
// threshold. Because the gates are package constants, disabled call sites
// are eliminated by the compiler rather than merely suppressed.
//
// # Message Layout
//
// Every emitted message is the severity tag, an optional "[MODULE] " tag,
// an optional "(file) " marker, a ":line - " location suffix, the
// caller's format string verbatim, and a CRLF terminator:
//
//	[ERROR] [APP] (%s) (%s):42 - boom %d\r\n
//
// With [WithFunctionName] the function name (and with [WithFileName] the
// base file name) travel as leading arguments rather than being spliced
// into the string, so the sink's formatted-print primitive resolves them.
//
// # Sinks
//
// A [Sink] is any printf-shaped function returning an int status. The
// facade ships a writer sink, an slog bridge, a logx bridge and a
// periph.io UART sink; binding nil installs a safe no-op sink. The status
// is always ignored: logging is fire-and-forget, and a failing transport
// never feeds back into the call site.
//
// # Concurrency Obligations
//
// The sink reference is shared process-wide state with no locking around
// rebinding. Bind once at startup before spawning concurrent logging
// callers, or make the sink itself internally synchronized. Message
// ordering across goroutines is whatever the sink guarantees; the facade
// does not serialize calls, and a blocking sink blocks its caller for the
// full duration.
package logging
