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

package gtt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"timeout", ErrResponseTimeout, true},
		{"wrapped timeout", fmt.Errorf("update bar: %w", ErrResponseTimeout), true},
		{"transport write", ErrTransportWrite, true},
		{"transport read", ErrTransportRead, true},
		{"retryable transport error", &TransportError{Err: errors.New("EAGAIN"), Op: "read", Retryable: true}, true},
		{"permanent transport error", &TransportError{Err: errors.New("device gone"), Op: "open", Retryable: false}, false},
		{"bad sentinel", ErrBadSentinel, false},
		{"conn closed", ErrConnClosed, false},
		{"status error", &StatusError{Codes: []byte{0x01}}, false},
		{"id conflict", ErrIDConflict, false},
		{"invalid argument", ErrInvalidArgument, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestCheckStatus(t *testing.T) {
	t.Parallel()

	assert.NoError(t, checkStatus(nil))
	assert.NoError(t, checkStatus([]byte{0xFE}))
	assert.NoError(t, checkStatus([]byte{0xFE, 0xFE, 0xFE}))

	err := checkStatus([]byte{0xFE, 0x03, 0xFE, 0x07})
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, []byte{0xFE, 0x03, 0xFE, 0x07}, statusErr.Codes)
	assert.Equal(t, []byte{0x03, 0x07}, statusErr.FailedCodes())
	assert.Contains(t, statusErr.Error(), "FE 03 FE 07")
}

func TestTransportErrorFormatting(t *testing.T) {
	t.Parallel()

	base := errors.New("broken pipe")
	err := &TransportError{Err: base, Op: "write", Port: "/dev/ttyUSB0"}
	assert.Equal(t, "write /dev/ttyUSB0: broken pipe", err.Error())
	assert.ErrorIs(t, err, base)

	err = &TransportError{Err: base, Op: "write"}
	assert.Equal(t, "write: broken pipe", err.Error())
}
