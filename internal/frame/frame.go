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

// Package frame implements the reply-side grammar of the GTT wire
// protocol: [0xFC][response code][length:u16be][payload]. It performs
// no I/O of its own beyond consuming bytes from the supplied reader.
package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrBadSentinel reports a frame whose first byte is not 0xFC. The
// byte stream cannot be resynchronized after this; the connection must
// be reopened.
var ErrBadSentinel = errors.New("malformed frame: bad sentinel byte")

// Frame is one display-to-host message.
type Frame struct {
	// Payload is exactly the byte count announced by the length field.
	Payload []byte
	// ResponseCode identifies the message kind, including the reserved
	// touch notification code.
	ResponseCode byte
}

// Read decodes a single frame from r. It blocks until the frame is
// complete or r fails. A short read on any part is a decode failure,
// never a partial frame to be resumed later.
func Read(r io.Reader) (Frame, error) {
	var header [HeaderLength]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Frame{}, fmt.Errorf("read frame header: %w", err)
	}

	if header[0] != ResponseSentinel {
		return Frame{}, fmt.Errorf("%w: got 0x%02X, want 0x%02X",
			ErrBadSentinel, header[0], ResponseSentinel)
	}

	fr := Frame{ResponseCode: header[1]}
	payloadLen := binary.BigEndian.Uint16(header[2:4])
	if payloadLen == 0 {
		return fr, nil
	}

	fr.Payload = make([]byte, payloadLen)
	if _, err := io.ReadFull(r, fr.Payload); err != nil {
		return Frame{}, fmt.Errorf("read frame payload (%d bytes): %w", payloadLen, err)
	}
	return fr, nil
}

// Encode serializes a frame into the wire format. The display side of
// the driver never encodes frames; this exists for tests and the wire
// simulator.
func Encode(responseCode byte, payload []byte) []byte {
	if len(payload) > MaxPayloadLength {
		payload = payload[:MaxPayloadLength]
	}
	buf := make([]byte, HeaderLength+len(payload))
	buf[0] = ResponseSentinel
	buf[1] = responseCode
	binary.BigEndian.PutUint16(buf[2:4], uint16(len(payload)))
	copy(buf[HeaderLength:], payload)
	return buf
}
