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

//go:build loginfo && !logoff

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run with: go test -tags loginfo

func TestTaggedThresholdCompiledIn(t *testing.T) {
	level, ok := CompiledThreshold()
	require.True(t, ok)
	assert.Equal(t, LevelInfo, level)

	// New picks up the tag without WithThreshold.
	logger, err := New()
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, logger.Threshold())
}

func TestTaggedPackageEntryPoints(t *testing.T) {
	rec := &SinkRecorder{}
	Init(rec.Sink())
	t.Cleanup(func() { Init(nil) })

	LogDebug("suppressed at the compiled threshold")
	assert.Equal(t, 0, rec.CallCount())

	LogInfo("compiled in %d", 1)
	LogWarn("compiled in %d", 2)
	LogError("compiled in %d", 3)
	assert.Equal(t, 3, rec.CallCount())
}
