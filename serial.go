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

//go:build !tinygo

package logging

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/uart"
	"periph.io/x/conn/v3/uart/uartreg"
	"periph.io/x/host/v3"
)

// SerialConfig holds the configuration for the periph.io UART sink.
type SerialConfig struct {
	// PortName is the UART registry name or device path (e.g.
	// "/dev/ttyAMA0"). Empty selects the first available port.
	PortName string
	// Baud is the line rate. Defaults to 115200 baud if not provided.
	Baud physic.Frequency
	// Bits is the number of data bits. Defaults to 8 if not provided.
	Bits int
}

// SerialSink opens a UART through periph.io and returns a sink writing
// each composed message to it, 8N1 framing by default. The returned
// closer releases the port.
//
// This is the classic embedded transport: a debug console on a serial
// line. The sink formats on the caller's goroutine and performs one
// blocking transmit per message; concurrent callers must serialize
// externally if interleaving matters.
func SerialSink(c SerialConfig) (Sink, io.Closer, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize periph.io host: %w", err)
	}

	p, err := uartreg.Open(c.PortName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open UART port: %w", err)
	}

	if c.Baud == 0 {
		c.Baud = 115200 * physic.Hertz
	}
	if c.Bits == 0 {
		c.Bits = 8
	}

	conn, err := p.Connect(c.Baud, uart.One, uart.NoParity, uart.NoFlow, c.Bits)
	if err != nil {
		p.Close()
		return nil, nil, fmt.Errorf("failed to configure UART: %w", err)
	}

	sink := func(format string, args ...any) int {
		msg := fmt.Sprintf(format, args...)
		if err := conn.Tx([]byte(msg), nil); err != nil {
			return -1
		}
		return len(msg)
	}
	return sink, p, nil
}
