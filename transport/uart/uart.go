// Copyright 2026 The gtt-drivers Contributors.
// SPDX-License-Identifier: Apache-2.0
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

// Package uart implements the gtt.Transport interface over a serial
// port. This is the transport the GTT's RS232 and USB headers speak.
package uart

import (
	"fmt"
	"sync/atomic"

	gtt "github.com/Yook74/gtt-drivers"
	"go.bug.st/serial"
)

// DefaultBaudRate is the GTT factory default.
const DefaultBaudRate = 115200

// Transport implements the gtt.Transport interface for UART
// communication.
type Transport struct {
	port     serial.Port
	portName string
	closed   atomic.Bool
}

// New opens a serial port at the GTT factory default of 115200 8N1.
// The display asserts RTS/CTS flow control in hardware; the adapter
// handles it when wired.
func New(portName string) (*Transport, error) {
	return NewWithBaudRate(portName, DefaultBaudRate)
}

// NewWithBaudRate opens a serial port at a non-default baud rate, for
// displays whose communication speed has been reconfigured.
func NewWithBaudRate(portName string, baudRate int) (*Transport, error) {
	port, err := serial.Open(portName, &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, &gtt.TransportError{
			Op:   "open",
			Port: portName,
			Err:  err,
		}
	}

	// Signal the display we are ready to receive. Reads stay fully
	// blocking: the decode loop owns them and unblocks on Close.
	if err := port.SetRTS(true); err != nil {
		_ = port.Close()
		return nil, &gtt.TransportError{
			Op:   "set RTS",
			Port: portName,
			Err:  err,
		}
	}

	return &Transport{
		port:     port,
		portName: portName,
	}, nil
}

// Read blocks until at least one byte arrives or the port is closed.
func (t *Transport) Read(p []byte) (int, error) {
	n, err := t.port.Read(p)
	if err != nil {
		return n, &gtt.TransportError{
			Op:        "read",
			Port:      t.portName,
			Err:       err,
			Retryable: !t.closed.Load(),
		}
	}
	return n, nil
}

// Write puts bytes on the wire.
func (t *Transport) Write(p []byte) (int, error) {
	n, err := t.port.Write(p)
	if err != nil {
		return n, &gtt.TransportError{
			Op:        "write",
			Port:      t.portName,
			Err:       err,
			Retryable: true,
		}
	}
	if n < len(p) {
		return n, &gtt.TransportError{
			Op:   "write",
			Port: t.portName,
			Err:  fmt.Errorf("short write: %d of %d bytes", n, len(p)),
		}
	}
	return n, nil
}

// Close closes the port, unblocking any pending Read.
func (t *Transport) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	if err := t.port.Close(); err != nil {
		return fmt.Errorf("UART close failed: %w", err)
	}
	return nil
}

// IsConnected returns true if the transport is connected
func (t *Transport) IsConnected() bool {
	return !t.closed.Load()
}

// Type returns the transport type
func (*Transport) Type() gtt.TransportType {
	return gtt.TransportUART
}
