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

// Package i2c implements the gtt.Transport interface over an I2C bus
// via periph.io.
//
// The GTT's I2C interface has no data-ready line, so the transport
// polls the device and reassembles complete reply frames internally;
// the byte stream it exposes to the Conn matches what the UART
// transport would deliver. Bytes read while the display's outbox is
// empty come back as 0xFF filler and are discarded between frames.
package i2c

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	gtt "github.com/Yook74/gtt-drivers"
	"github.com/Yook74/gtt-drivers/internal/frame"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

const (
	// GTT 7-bit I2C address. The manual quotes 0x50, which is the
	// 8-bit write address including the R/W bit; periph.io and the
	// Linux kernel expect the 7-bit form: 0x50 >> 1 = 0x28.
	gttAddr = 0x28

	// Filler byte the display returns while its outbox is empty.
	fillerByte = 0xFF

	// How long to wait between polls of an empty outbox.
	pollInterval = 2 * time.Millisecond

	// Max clock frequency (100 kHz per the GTT manual).
	maxClockFreq = 100 * physic.KiloHertz
)

// Transport implements the gtt.Transport interface for I2C
// communication.
type Transport struct {
	dev     *i2c.Dev
	bus     i2c.BusCloser // Held so Close() can release the OS file descriptor
	busName string
	pending []byte // reassembled frame bytes not yet read by the Conn
	closed  atomic.Bool
}

// parseI2CPath extracts the bus path from a composite detection path.
// Accepts "/dev/i2c-1:0x28" or a bare bus name.
func parseI2CPath(path string) string {
	bus, _, _ := strings.Cut(path, ":")
	return bus
}

// New opens the I2C bus and addresses the display on it.
func New(busName string) (*Transport, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}

	bus, err := i2creg.Open(parseI2CPath(busName))
	if err != nil {
		return nil, &gtt.TransportError{
			Op:   "open",
			Port: busName,
			Err:  err,
		}
	}
	// Some adapters pin their speed; a failure here is not fatal.
	_ = bus.SetSpeed(maxClockFreq)

	return &Transport{
		dev:     &i2c.Dev{Bus: bus, Addr: gttAddr},
		bus:     bus,
		busName: busName,
	}, nil
}

// Read serves bytes of reassembled reply frames, blocking until a
// frame arrives or the transport is closed.
func (t *Transport) Read(p []byte) (int, error) {
	for len(t.pending) == 0 {
		if t.closed.Load() {
			return 0, &gtt.TransportError{
				Op:   "read",
				Port: t.busName,
				Err:  errors.New("transport closed"),
			}
		}
		fetched, err := t.fetchFrame()
		if err != nil {
			return 0, err
		}
		if !fetched {
			time.Sleep(pollInterval)
		}
	}

	n := copy(p, t.pending)
	t.pending = t.pending[n:]
	return n, nil
}

// fetchFrame polls for the start of a reply frame and, once the
// sentinel appears, reads the rest of the frame in one transaction
// burst. It reports whether a frame was buffered.
func (t *Transport) fetchFrame() (bool, error) {
	first, err := t.readByte()
	if err != nil {
		return false, err
	}
	if first == fillerByte {
		return false, nil
	}

	// Deliver whatever came first; the Conn enforces the sentinel and
	// treats a mismatch as desync, which is exactly right here too.
	header := make([]byte, frame.HeaderLength)
	header[0] = first
	if first == frame.ResponseSentinel {
		if err := t.readFull(header[1:]); err != nil {
			return false, err
		}
		payloadLen := int(binary.BigEndian.Uint16(header[2:4]))
		payload := make([]byte, payloadLen)
		if err := t.readFull(payload); err != nil {
			return false, err
		}
		t.pending = append(append(t.pending, header...), payload...)
		return true, nil
	}

	t.pending = append(t.pending, first)
	return true, nil
}

func (t *Transport) readByte() (byte, error) {
	var buf [1]byte
	if err := t.dev.Tx(nil, buf[:]); err != nil {
		return 0, &gtt.TransportError{
			Op:        "read",
			Port:      t.busName,
			Err:       err,
			Retryable: !t.closed.Load(),
		}
	}
	return buf[0], nil
}

// readFull reads exactly len(buf) frame bytes in one transaction.
// Once a frame has started the display streams it without filler.
func (t *Transport) readFull(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if err := t.dev.Tx(nil, buf); err != nil {
		return &gtt.TransportError{
			Op:   "read",
			Port: t.busName,
			Err:  err,
		}
	}
	return nil
}

// Write puts a command on the bus in a single transaction.
func (t *Transport) Write(p []byte) (int, error) {
	if err := t.dev.Tx(p, nil); err != nil {
		return 0, &gtt.TransportError{
			Op:        "write",
			Port:      t.busName,
			Err:       err,
			Retryable: true,
		}
	}
	return len(p), nil
}

// Close releases the bus. The polling Read notices the closed flag on
// its next wakeup.
func (t *Transport) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	if err := t.bus.Close(); err != nil {
		return fmt.Errorf("I2C close failed: %w", err)
	}
	return nil
}

// IsConnected returns true if the transport is connected
func (t *Transport) IsConnected() bool {
	return !t.closed.Load()
}

// Type returns the transport type
func (*Transport) Type() gtt.TransportType {
	return gtt.TransportI2C
}
