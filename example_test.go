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

package logging_test

import (
	"errors"
	"fmt"

	"embedlog.dev/logging"
)

// Messages below the threshold are gated before composition: the sink is
// never invoked for them.
func ExampleNew() {
	rec := &logging.SinkRecorder{}
	logger := logging.MustNew(
		logging.WithThreshold(logging.LevelWarn),
		logging.WithModuleName("APP"),
		logging.WithSink(rec.Sink()),
	)

	logger.Info("suppressed at WARN threshold")
	logger.Error("emitted %d", 1)
	logger.Warn("emitted %d", 2)

	fmt.Println(rec.CallCount())
	// Output: 2
}

// A misconfigured threshold is refused, never silently defaulted.
func ExampleNew_invalidThreshold() {
	_, err := logging.New(logging.WithThreshold(logging.Level(9)))
	fmt.Println(errors.Is(err, logging.ErrInvalidLevel))
	// Output: true
}

// Binding nil installs the no-op sink; re-binding replaces the sink with
// the last writer winning.
func ExampleLogger_Bind() {
	first := &logging.SinkRecorder{}
	second := &logging.SinkRecorder{}

	logger := logging.MustNew(
		logging.WithThreshold(logging.LevelInfo),
		logging.WithSink(first.Sink()),
	)
	logger.Info("to first")

	logger.Bind(second.Sink())
	logger.Info("to second")

	fmt.Println(first.CallCount(), second.CallCount())
	// Output: 1 1
}

func ExampleLevelName() {
	fmt.Println(logging.LevelName(logging.LevelError))
	fmt.Println(logging.LevelName(logging.Level(42)))
	// Output:
	// ERROR
	// UNKNOWN_LEVEL
}

func ExampleLogger_Threshold() {
	logger := logging.MustNew(logging.WithThreshold(logging.LevelDebug))
	fmt.Println(logger.Threshold(), logging.Version)
	// Output: DEBUG 1.1.0
}
