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
	"io"
	"testing"
)

// BenchmarkSuppressed measures the cost of a gated-out call: the prefix
// composer and runtime.Caller must never run for it.
func BenchmarkSuppressed(b *testing.B) {
	logger := MustNew(WithThreshold(LevelError), WithSink(WriterSink(io.Discard)))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug("invisible %d", i)
	}
}

func BenchmarkEmitMinimalPrefix(b *testing.B) {
	logger := MustNew(WithThreshold(LevelDebug), WithSink(NopSink))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("n=%d", i)
	}
}

func BenchmarkEmitFullPrefix(b *testing.B) {
	logger := MustNew(
		WithThreshold(LevelDebug),
		WithModuleName("BENCH"),
		WithFileName(),
		WithFunctionName(),
		WithSink(NopSink),
	)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("n=%d", i)
	}
}

func BenchmarkEmitToWriter(b *testing.B) {
	logger := MustNew(
		WithThreshold(LevelDebug),
		WithModuleName("BENCH"),
		WithSink(WriterSink(io.Discard)),
	)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("n=%d", i)
	}
}

func BenchmarkEmitParallel(b *testing.B) {
	logger := MustNew(WithThreshold(LevelDebug), WithSink(NopSink))

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			logger.Info("parallel")
		}
	})
}
