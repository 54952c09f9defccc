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

//go:build logoff

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Run with: go test -tags "logoff logdebug"
//
// The kill switch wins over any threshold: no entry point, package-level
// or per-Logger, may produce a sink invocation.

func TestKillSwitchSuppressesEverything(t *testing.T) {
	assert.True(t, Disabled)

	rec := &SinkRecorder{}
	logger := MustNew(WithThreshold(LevelDebug), WithSink(rec.Sink()))

	logger.Error("x")
	logger.Warn("x")
	logger.Info("x")
	logger.Debug("x")
	assert.Equal(t, 0, rec.CallCount())

	Init(rec.Sink())
	t.Cleanup(func() { Init(nil) })
	LogError("x")
	LogDebug("x")
	assert.Equal(t, 0, rec.CallCount())
}
