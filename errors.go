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

	"github.com/Yook74/gtt-drivers/internal/frame"
)

// Error categories. Transport and protocol errors mean the byte stream
// is gone or untrustworthy and the connection must be reopened.
// Identifier and argument errors are caller-usage faults; they never
// require a reconnect.
var (
	// Protocol errors - reconnect to recover
	ErrBadSentinel        = frame.ErrBadSentinel
	ErrUnexpectedResponse = errors.New("unexpected response from display")
	ErrConnClosed         = errors.New("connection is closed")

	// Transport errors - potentially retryable
	ErrTransportWrite  = errors.New("transport write failed")
	ErrTransportRead   = errors.New("transport read failed")
	ErrResponseTimeout = errors.New("timed out waiting for a response")

	// Identifier errors - caller misuse
	ErrOutOfIDs      = errors.New("all component IDs are in use")
	ErrIDConflict    = errors.New("component ID is already in use")
	ErrUnknownID     = errors.New("component ID has not been registered")
	ErrInvalidIDType = errors.New("component IDs must be integers or strings")

	// Argument errors - caller misuse
	ErrInvalidArgument = errors.New("invalid argument")
)

// StatusError reports a command the display rejected. Most commands
// are acknowledged with a payload of per-field status bytes where 0xFE
// means success; any other byte is a device error code.
type StatusError struct {
	// Codes holds the raw status bytes exactly as received.
	Codes []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("display returned error status codes: % X", e.Codes)
}

// FailedCodes returns only the status bytes that signal an error.
func (e *StatusError) FailedCodes() []byte {
	var failed []byte
	for _, code := range e.Codes {
		if code != frame.StatusOK {
			failed = append(failed, code)
		}
	}
	return failed
}

// checkStatus validates a status reply payload. A payload of all 0xFE
// bytes is success; anything else produces a *StatusError carrying the
// full payload.
func checkStatus(payload []byte) error {
	for _, code := range payload {
		if code != frame.StatusOK {
			return &StatusError{Codes: append([]byte(nil), payload...)}
		}
	}
	return nil
}

// TransportError wraps transport-level errors with additional context
type TransportError struct {
	Err       error  // Underlying error
	Op        string // Operation that failed
	Port      string // Port or device identifier
	Retryable bool   // Whether the error is retryable
}

func (e *TransportError) Error() string {
	if e.Port != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Port, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether an operation that failed with err may
// succeed when reissued. Only the command layer retries; the transport
// engine itself never does.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var te *TransportError
	if errors.As(err, &te) {
		return te.Retryable
	}

	switch {
	case errors.Is(err, ErrResponseTimeout),
		errors.Is(err, ErrTransportWrite),
		errors.Is(err, ErrTransportRead):
		return true
	default:
		return false
	}
}
