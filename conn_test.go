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
	"sync/atomic"
	"testing"
	"time"

	"github.com/Yook74/gtt-drivers/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConn(t *testing.T) (*Conn, *mockTransport) {
	t.Helper()
	mock := newMockTransport()
	conn := OpenConn(mock)
	t.Cleanup(func() { _ = conn.Close() })
	return conn, mock
}

// pendingWaiters reports how many callers are blocked on a response
// code, used to sequence concurrent test goroutines.
func pendingWaiters(c *Conn, code byte) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending[code])
}

func queuedFrames(c *Conn, code byte) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queued[code])
}

func TestAwaitResponseFulfilled(t *testing.T) {
	t.Parallel()
	conn, mock := newTestConn(t)

	go mock.feed(0x2A, []byte{0xDE, 0xAD})

	payload, err := conn.AwaitResponse(0x2A, time.Second)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD}, payload)
}

func TestAwaitResponseClaimsQueuedFrame(t *testing.T) {
	t.Parallel()
	conn, mock := newTestConn(t)

	// No one is waiting, so the frame must be queued, not dropped.
	mock.feed(0x2A, []byte{0x01})
	require.Eventually(t, func() bool {
		return queuedFrames(conn, 0x2A) == 1
	}, time.Second, time.Millisecond)

	payload, err := conn.AwaitResponse(0x2A, 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, payload)
	assert.Zero(t, queuedFrames(conn, 0x2A))
}

func TestConcurrentWaitersSameCodeFIFO(t *testing.T) {
	t.Parallel()
	conn, mock := newTestConn(t)

	type outcome struct {
		payload []byte
		err     error
	}
	first := make(chan outcome, 1)
	second := make(chan outcome, 1)

	go func() {
		payload, err := conn.AwaitResponse(0x2A, time.Second)
		first <- outcome{payload, err}
	}()
	require.Eventually(t, func() bool {
		return pendingWaiters(conn, 0x2A) == 1
	}, time.Second, time.Millisecond)

	go func() {
		payload, err := conn.AwaitResponse(0x2A, time.Second)
		second <- outcome{payload, err}
	}()
	require.Eventually(t, func() bool {
		return pendingWaiters(conn, 0x2A) == 2
	}, time.Second, time.Millisecond)

	mock.feed(0x2A, []byte{0x01})
	mock.feed(0x2A, []byte{0x02})

	got1 := <-first
	got2 := <-second
	require.NoError(t, got1.err)
	require.NoError(t, got2.err)
	assert.Equal(t, []byte{0x01}, got1.payload, "first registered waiter gets the first frame")
	assert.Equal(t, []byte{0x02}, got2.payload, "second registered waiter gets the second frame")
}

func TestTimeoutDoesNotAffectOtherWaits(t *testing.T) {
	t.Parallel()
	conn, mock := newTestConn(t)

	fulfilled := make(chan error, 1)
	go func() {
		payload, err := conn.AwaitResponse(0x09, time.Second)
		if err == nil && string(payload) != "ok" {
			err = assert.AnError
		}
		fulfilled <- err
	}()
	require.Eventually(t, func() bool {
		return pendingWaiters(conn, 0x09) == 1
	}, time.Second, time.Millisecond)

	_, err := conn.AwaitResponse(0x07, 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrResponseTimeout)

	mock.feed(0x09, []byte("ok"))
	assert.NoError(t, <-fulfilled)
}

func TestLateFrameAfterTimeoutIsQueued(t *testing.T) {
	t.Parallel()
	conn, mock := newTestConn(t)

	_, err := conn.AwaitResponse(0x05, 10*time.Millisecond)
	require.ErrorIs(t, err, ErrResponseTimeout)

	mock.feed(0x05, []byte{0x42})
	require.Eventually(t, func() bool {
		return queuedFrames(conn, 0x05) == 1
	}, time.Second, time.Millisecond)

	payload, err := conn.AwaitResponse(0x05, 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x42}, payload)
}

func TestTouchRouting(t *testing.T) {
	t.Parallel()
	conn, mock := newTestConn(t)

	var calls atomic.Int32
	conn.RegisterTouchHandler(3, TouchHandlerFunc(func(region byte) {
		assert.Equal(t, byte(3), region)
		calls.Add(1)
	}))

	mock.feed(frame.TouchResponseCode, []byte{0x01, 0x03})
	require.Eventually(t, func() bool {
		return calls.Load() == 1
	}, time.Second, time.Millisecond)

	// Touch frames bypass the request/response path entirely.
	_, err := conn.AwaitResponse(frame.TouchResponseCode, 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrResponseTimeout)
	assert.Zero(t, queuedFrames(conn, frame.TouchResponseCode))

	// Touches on regions without a handler are dropped.
	mock.feed(frame.TouchResponseCode, []byte{0x01, 0x09})
	mock.feed(0x2A, nil)
	_, err = conn.AwaitResponse(0x2A, time.Second)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestUnregisterTouchHandler(t *testing.T) {
	t.Parallel()
	conn, mock := newTestConn(t)

	var calls atomic.Int32
	conn.RegisterTouchHandler(5, TouchHandlerFunc(func(byte) { calls.Add(1) }))
	conn.UnregisterTouchHandler(5)

	mock.feed(frame.TouchResponseCode, []byte{0x01, 0x05})
	mock.feed(0x2A, nil)
	_, err := conn.AwaitResponse(0x2A, time.Second)
	require.NoError(t, err)
	assert.Zero(t, calls.Load())
}

func TestBadSentinelClosesConn(t *testing.T) {
	t.Parallel()
	mock := newMockTransport()
	conn := OpenConn(mock)

	waitErr := make(chan error, 1)
	go func() {
		_, err := conn.AwaitResponse(0x2A, time.Second)
		waitErr <- err
	}()
	require.Eventually(t, func() bool {
		return pendingWaiters(conn, 0x2A) == 1
	}, time.Second, time.Millisecond)

	// Anything that is not 0xFC desynchronizes the stream for good.
	mock.feedRaw([]byte{0x00, 0x2A, 0x00, 0x00})

	err := <-waitErr
	assert.ErrorIs(t, err, ErrConnClosed)
	assert.ErrorIs(t, err, ErrBadSentinel)

	select {
	case <-conn.Done():
	case <-time.After(time.Second):
		t.Fatal("decode loop did not exit after a bad sentinel")
	}
	assert.ErrorIs(t, conn.Err(), ErrBadSentinel)
	assert.NoError(t, conn.Close())
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()
	conn, _ := newTestConn(t)

	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())
	assert.NoError(t, conn.Err(), "a caller-initiated close is not a failure")

	err := conn.Send([]byte{frame.CommandSentinel, 0x58})
	assert.ErrorIs(t, err, ErrConnClosed)

	_, err = conn.AwaitResponse(0x58, 10*time.Millisecond)
	assert.ErrorIs(t, err, ErrConnClosed)
}

func TestCloseFailsPendingWaits(t *testing.T) {
	t.Parallel()
	conn, _ := newTestConn(t)

	waitErr := make(chan error, 1)
	go func() {
		_, err := conn.AwaitResponse(0x2A, time.Minute)
		waitErr <- err
	}()
	require.Eventually(t, func() bool {
		return pendingWaiters(conn, 0x2A) == 1
	}, time.Second, time.Millisecond)

	require.NoError(t, conn.Close())
	assert.ErrorIs(t, <-waitErr, ErrConnClosed)
}

func TestSendWritesCommandAtomically(t *testing.T) {
	t.Parallel()
	conn, mock := newTestConn(t)

	cmd := command(0x58)
	require.NoError(t, conn.Send(cmd))
	assert.Equal(t, []byte{frame.CommandSentinel, 0x58}, <-mock.written)
}

func TestAwaitStatus(t *testing.T) {
	t.Parallel()
	conn, mock := newTestConn(t)

	go mock.feed(0x69, []byte{0xFE, 0xFE, 0xFE})
	require.NoError(t, conn.AwaitStatus(0x69, time.Second))

	go mock.feed(0x69, []byte{0xFE, 0x02, 0x08})
	err := conn.AwaitStatus(0x69, time.Second)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, []byte{0xFE, 0x02, 0x08}, statusErr.Codes)
	assert.Equal(t, []byte{0x02, 0x08}, statusErr.FailedCodes())
}
