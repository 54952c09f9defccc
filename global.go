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

// defaultModuleName is the module tag of the process-wide default Logger.
// It is build-time configuration, settable at link time:
//
//	go build -tags loginfo -ldflags "-X embedlog.dev/logging.defaultModuleName=APP"
var defaultModuleName string

// std is the process-wide default Logger behind the package-level entry
// points. Its threshold is the build-tag constant; in a build without a
// threshold tag it is inert and the entry points below compile to nothing
// anyway.
var std = func() *Logger {
	l := &Logger{threshold: compiledThreshold, moduleName: defaultModuleName}
	if compiledThreshold == levelUnset {
		l.threshold = LevelNone
	}
	if l.moduleName != "" {
		l.metaHead = "[" + l.moduleName + "] "
	}
	l.Bind(nil)
	return l
}()

// Init binds the process-wide sink used by [LogError], [LogWarn],
// [LogInfo] and [LogDebug]. A nil sink binds the no-op sink. Must be
// called before concurrent logging callers start; the facade does not
// synchronize re-initialization against in-flight calls.
func Init(s Sink) {
	std.Bind(s)
}

// Default returns the process-wide default Logger.
func Default() *Logger {
	return std
}

// SetDefault replaces the process-wide default Logger, for embedders that
// configure prefixes beyond what link-time configuration offers. Same
// caller obligation as [Init]: call before concurrent logging starts.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	std = l
}

// The package-level entry points are gated on the compile-time constants,
// so levels disabled by build tags (or a missing threshold tag, or the
// logoff kill switch) generate no code at the call site.

// LogError logs a critical failure through the default Logger.
func LogError(format string, args ...any) {
	if Disabled || compiledThreshold < LevelError {
		return
	}
	std.log(logCallDepth, LevelError, format, args)
}

// LogWarn logs an abnormal but recoverable condition through the default
// Logger.
func LogWarn(format string, args ...any) {
	if Disabled || compiledThreshold < LevelWarn {
		return
	}
	std.log(logCallDepth, LevelWarn, format, args)
}

// LogInfo logs a normal operational status message through the default
// Logger.
func LogInfo(format string, args ...any) {
	if Disabled || compiledThreshold < LevelInfo {
		return
	}
	std.log(logCallDepth, LevelInfo, format, args)
}

// LogDebug logs detailed diagnostic information through the default
// Logger.
func LogDebug(format string, args ...any) {
	if Disabled || compiledThreshold < LevelDebug {
		return
	}
	std.log(logCallDepth, LevelDebug, format, args)
}
