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
	"io"
	"sync"

	"github.com/Yook74/gtt-drivers/internal/frame"
)

// mockTransport is an in-memory Transport for tests. The display-to-
// host direction is an io.Pipe so reads block exactly like a serial
// port; the host-to-display direction captures written commands.
type mockTransport struct {
	rx        *io.PipeReader
	rxFeed    *io.PipeWriter
	written   chan []byte
	closeOnce sync.Once
}

func newMockTransport() *mockTransport {
	rx, rxFeed := io.Pipe()
	return &mockTransport{
		rx:      rx,
		rxFeed:  rxFeed,
		written: make(chan []byte, 64),
	}
}

// feed puts one reply frame on the simulated wire. It returns once
// the decode loop has consumed the bytes.
func (m *mockTransport) feed(responseCode byte, payload []byte) {
	m.feedRaw(frame.Encode(responseCode, payload))
}

// feedRaw puts arbitrary bytes on the simulated wire.
func (m *mockTransport) feedRaw(wire []byte) {
	_, _ = m.rxFeed.Write(wire)
}

func (m *mockTransport) Read(p []byte) (int, error) {
	return m.rx.Read(p)
}

func (m *mockTransport) Write(p []byte) (int, error) {
	m.written <- append([]byte(nil), p...)
	return len(p), nil
}

func (m *mockTransport) Close() error {
	m.closeOnce.Do(func() {
		_ = m.rx.Close()
		_ = m.rxFeed.Close()
	})
	return nil
}

func (m *mockTransport) IsConnected() bool {
	return true
}

func (*mockTransport) Type() TransportType {
	return TransportMock
}
