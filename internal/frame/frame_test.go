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

package frame

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		code    byte
		payload []byte
	}{
		{
			name:    "empty payload",
			code:    0x58,
			payload: nil,
		},
		{
			name:    "single status byte",
			code:    0x69,
			payload: []byte{0xFE},
		},
		{
			name:    "touch notification",
			code:    TouchResponseCode,
			payload: []byte{0x01, 0x05},
		},
		{
			name:    "payload containing sentinel bytes",
			code:    0x42,
			payload: []byte{0xFC, 0xFE, 0x00, 0xFC},
		},
		{
			name:    "large payload",
			code:    0xFF,
			payload: bytes.Repeat([]byte{0xAB}, 4096),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fr, err := Read(bytes.NewReader(Encode(tt.code, tt.payload)))
			require.NoError(t, err)
			assert.Equal(t, tt.code, fr.ResponseCode)
			if len(tt.payload) == 0 {
				assert.Empty(t, fr.Payload)
			} else {
				assert.Equal(t, tt.payload, fr.Payload)
			}
		})
	}
}

func TestReadBadSentinel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		wire  []byte
	}{
		{
			name: "command sentinel instead of response sentinel",
			wire: []byte{CommandSentinel, 0x58, 0x00, 0x00},
		},
		{
			name: "zero byte",
			wire: []byte{0x00, 0x58, 0x00, 0x01, 0xFE},
		},
		{
			name: "garbage with trailing valid frame",
			wire: append([]byte{0x7F}, Encode(0x58, []byte{0xFE})...),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Read(bytes.NewReader(tt.wire))
			assert.ErrorIs(t, err, ErrBadSentinel)
		})
	}
}

func TestReadShortStream(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		wire []byte
	}{
		{
			name: "empty stream",
			wire: nil,
		},
		{
			name: "truncated header",
			wire: []byte{ResponseSentinel, 0x58},
		},
		{
			name: "truncated payload",
			wire: []byte{ResponseSentinel, 0x58, 0x00, 0x04, 0xFE, 0xFE},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Read(bytes.NewReader(tt.wire))
			require.Error(t, err)
			assert.False(t, errors.Is(err, ErrBadSentinel))
			assert.True(t, errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF))
		})
	}
}

func TestReadConsumesExactlyOneFrame(t *testing.T) {
	t.Parallel()
	wire := append(Encode(0x10, []byte{0xFE}), Encode(0x11, []byte{0x01})...)
	r := bytes.NewReader(wire)

	first, err := Read(r)
	require.NoError(t, err)
	second, err := Read(r)
	require.NoError(t, err)

	assert.Equal(t, byte(0x10), first.ResponseCode)
	assert.Equal(t, []byte{0xFE}, first.Payload)
	assert.Equal(t, byte(0x11), second.ResponseCode)
	assert.Equal(t, []byte{0x01}, second.Payload)
	assert.Zero(t, r.Len())
}
