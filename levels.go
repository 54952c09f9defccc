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

// Level represents a log severity level.
//
// Levels form a total order: LevelNone < LevelError < LevelWarn <
// LevelInfo < LevelDebug. A message at level L is emitted iff L is not
// LevelNone and L <= the configured threshold.
type Level int

const (
	// LevelNone disables all logging. A threshold of LevelNone suppresses
	// every entry point; LevelNone is never a valid message level.
	LevelNone Level = iota
	// LevelError is for critical failures requiring immediate attention.
	LevelError
	// LevelWarn is for abnormal conditions that don't stop execution.
	LevelWarn
	// LevelInfo is for normal operational status messages.
	LevelInfo
	// LevelDebug is for detailed diagnostic information during development.
	LevelDebug
)

// unknownLevelName is returned for any value outside the five defined levels.
const unknownLevelName = "UNKNOWN_LEVEL"

// levelNames is the fixed bijective level-to-name mapping.
var levelNames = [...]string{
	LevelNone:  "NONE",
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
}

// severityTags are the fixed-width message prefixes, padded so that the
// caller text aligns across levels. LevelNone has no tag because it never
// produces a message.
var severityTags = [...]string{
	LevelError: "[ERROR] ",
	LevelWarn:  "[WARN]  ",
	LevelInfo:  "[INFO]  ",
	LevelDebug: "[DEBUG] ",
}

// LevelName returns the human-readable name of a severity level.
// Any value outside the five defined levels yields "UNKNOWN_LEVEL".
func LevelName(l Level) string {
	if l < LevelNone || l > LevelDebug {
		return unknownLevelName
	}
	return levelNames[l]
}

// String implements [fmt.Stringer].
func (l Level) String() string {
	return LevelName(l)
}

// valid reports whether l is one of the five defined levels.
func (l Level) valid() bool {
	return l >= LevelNone && l <= LevelDebug
}

// tag returns the padded severity tag for an emittable level.
func (l Level) tag() string {
	return severityTags[l]
}
