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
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/PurpleSec/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopSink(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, NopSink("anything %d %s", 1, "x"))
	assert.Equal(t, 0, NopSink(""))
}

func TestWriterSink(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	sink := WriterSink(buf)

	n := sink("[INFO]  :7 - up in %dms\r\n", 125)
	assert.Equal(t, "[INFO]  :7 - up in 125ms\r\n", buf.String())
	assert.Equal(t, buf.Len(), n)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("transport down")
}

// A failing transport reports a negative status; the facade discards it
// either way.
func TestWriterSinkError(t *testing.T) {
	t.Parallel()

	sink := WriterSink(failingWriter{})
	assert.Equal(t, -1, sink("lost\r\n"))

	logger := MustNew(WithThreshold(LevelDebug), WithSink(sink))
	assert.NotPanics(t, func() { logger.Error("still fine") })
}

func TestSlogSink(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	sl := slog.New(slog.NewTextHandler(buf, nil))
	sink := SlogSink(sl, slog.LevelInfo)

	sink("[ERROR] [APP] :3 - boom %d\r\n", 5)

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "boom 5")
	// slog frames its own records; the facade's CRLF must not leak in.
	assert.NotContains(t, out, "\r")
}

func TestLogxSink(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	sink := LogxSink(logx.Writer(buf, logx.Info))

	sink("[WARN]  :9 - retry %d\r\n", 2)

	assert.Contains(t, buf.String(), "retry 2")
}
