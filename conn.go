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
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Yook74/gtt-drivers/internal/frame"
	"github.com/Yook74/gtt-drivers/internal/syncutil"
)

// touchBacklog is the number of touch events buffered between the
// decode loop and the dispatcher goroutine. The decode loop only
// stalls on touch traffic once this many events are waiting on a slow
// handler.
const touchBacklog = 16

// TouchHandler is invoked when the display reports a touch on a
// region the handler was registered for.
type TouchHandler interface {
	HandleTouch(region byte)
}

// TouchHandlerFunc adapts a plain function to the TouchHandler
// interface.
type TouchHandlerFunc func(region byte)

// HandleTouch calls f(region).
func (f TouchHandlerFunc) HandleTouch(region byte) {
	f(region)
}

type waitResult struct {
	payload []byte
	err     error
}

// pendingWait represents one caller blocked awaiting a specific
// response code. It is resolved exactly once: fulfilled with a
// payload, failed on connection loss, or abandoned on timeout.
type pendingWait struct {
	result chan waitResult // buffered, capacity 1
}

// Conn owns a Transport and runs the single background loop that
// decodes reply frames and routes each one to a waiting caller, to
// the touch dispatcher, or onto a queue for a later waiter.
//
// Replies are correlated by response code alone; there is no
// per-request identifier on the wire. If two goroutines await the same
// response code concurrently, arriving frames satisfy the waits in
// registration order. This is a protocol limitation, not a driver
// choice.
type Conn struct {
	transport Transport

	writeMu syncutil.Mutex // serializes Send calls on the wire

	mu       syncutil.Mutex // guards the fields below
	pending  map[byte][]*pendingWait
	queued   map[byte][][]byte // unclaimed replies, FIFO per code
	handlers map[byte]TouchHandler
	closed   bool
	cause    error // why the conn closed, nil for a caller Close

	touchCh   chan byte
	loopDone  chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// OpenConn starts a connection over an already-open transport. It
// launches the background decode loop; Close is the only way to stop
// it. Most callers want Open, which layers the command API on top.
func OpenConn(t Transport) *Conn {
	c := &Conn{
		transport: t,
		pending:   make(map[byte][]*pendingWait),
		queued:    make(map[byte][][]byte),
		handlers:  make(map[byte]TouchHandler),
		touchCh:   make(chan byte, touchBacklog),
		loopDone:  make(chan struct{}),
	}
	go c.readLoop()
	go c.dispatchTouches()
	return c
}

// Send writes a pre-serialized command to the display. Bytes from
// concurrent Send calls never interleave; calls go out on the wire in
// the order they acquire the write lock. Send never waits for a
// response.
func (c *Conn) Send(data []byte) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrConnClosed
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if _, err := c.transport.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrTransportWrite, err)
	}
	return nil
}

// AwaitResponse blocks until the display sends a frame carrying the
// given response code, then returns its payload. If no matching frame
// arrives within timeout, it fails with ErrResponseTimeout; a frame
// arriving after that is queued for the next waiter rather than
// dropped.
func (c *Conn) AwaitResponse(responseCode byte, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return c.AwaitResponseContext(ctx, responseCode)
}

// AwaitResponseContext is AwaitResponse with caller-controlled
// cancellation.
func (c *Conn) AwaitResponseContext(ctx context.Context, responseCode byte) ([]byte, error) {
	c.mu.Lock()
	if c.closed {
		err := c.closedErrLocked()
		c.mu.Unlock()
		return nil, err
	}
	if q := c.queued[responseCode]; len(q) > 0 {
		payload := q[0]
		if len(q) == 1 {
			delete(c.queued, responseCode)
		} else {
			c.queued[responseCode] = q[1:]
		}
		c.mu.Unlock()
		return payload, nil
	}
	w := &pendingWait{result: make(chan waitResult, 1)}
	c.pending[responseCode] = append(c.pending[responseCode], w)
	c.mu.Unlock()

	select {
	case res := <-w.result:
		return res.payload, res.err
	case <-ctx.Done():
		if !c.removeWait(responseCode, w) {
			// The decode loop fulfilled the wait while the timeout
			// fired; take the result rather than losing the frame.
			res := <-w.result
			return res.payload, res.err
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("awaiting response 0x%02X: %w", responseCode, ErrResponseTimeout)
		}
		return nil, fmt.Errorf("awaiting response 0x%02X: %w", responseCode, ctx.Err())
	}
}

// AwaitStatus waits for the status reply of the command whose opcode
// is responseCode and validates its status bytes. A non-success byte
// surfaces as a *StatusError.
func (c *Conn) AwaitStatus(responseCode byte, timeout time.Duration) error {
	payload, err := c.AwaitResponse(responseCode, timeout)
	if err != nil {
		return err
	}
	return checkStatus(payload)
}

// RegisterTouchHandler binds a handler to a touch region handle,
// replacing any previous handler for that region. The binding lives
// until the Conn closes or the handler is unregistered.
func (c *Conn) RegisterTouchHandler(region byte, handler TouchHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[region] = handler
}

// UnregisterTouchHandler removes the handler for a region, if any.
func (c *Conn) UnregisterTouchHandler(region byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.handlers, region)
}

// ClearTouchHandlers removes every registered touch handler.
func (c *Conn) ClearTouchHandlers() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = make(map[byte]TouchHandler)
}

// Close stops the decode loop by closing the transport and fails all
// pending waits with ErrConnClosed. It is idempotent and returns once
// the loop has exited.
func (c *Conn) Close() error {
	c.shutdown(nil)
	<-c.loopDone
	return c.closeErr
}

// Done is closed when the decode loop has exited, either through
// Close or because the transport failed.
func (c *Conn) Done() <-chan struct{} {
	return c.loopDone
}

// Err returns the reason the connection closed, or nil while it is
// open or after a clean Close.
func (c *Conn) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cause
}

// shutdown marks the conn closed and closes the transport, recording
// cause as the reason (nil for a caller-initiated close). Closing the
// transport unblocks the decode loop's pending read.
func (c *Conn) shutdown(cause error) {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.cause = cause
		c.mu.Unlock()
		c.closeErr = c.transport.Close()
	})
}

func (c *Conn) closedErrLocked() error {
	if c.cause != nil {
		return fmt.Errorf("%w: %w", ErrConnClosed, c.cause)
	}
	return ErrConnClosed
}

// readLoop decodes frames until the transport fails, which is its
// only terminal state; a closed Conn is not restartable.
func (c *Conn) readLoop() {
	defer close(c.loopDone)

	for {
		fr, err := frame.Read(c.transport)
		if err != nil {
			c.terminate(err)
			return
		}
		c.route(fr)
	}
}

// terminate handles decode loop exit: a bad sentinel means the byte
// stream is desynchronized and cannot be safely resumed, so it closes
// the transport just like a read failure would. All pending waits fail
// with the close reason.
func (c *Conn) terminate(readErr error) {
	c.mu.Lock()
	userClosed := c.closed
	c.mu.Unlock()

	if !userClosed {
		cause := readErr
		if !errors.Is(readErr, ErrBadSentinel) {
			cause = fmt.Errorf("%w: %w", ErrTransportRead, readErr)
		}
		debugf("decode loop stopping: %v", cause)
		c.shutdown(cause)
	}

	c.mu.Lock()
	err := c.closedErrLocked()
	waiters := c.pending
	c.pending = make(map[byte][]*pendingWait)
	c.mu.Unlock()

	for _, waits := range waiters {
		for _, w := range waits {
			w.result <- waitResult{err: err}
		}
	}
	close(c.touchCh)
}

// route delivers one decoded frame: touch notifications go to the
// dispatcher, everything else to the first waiter registered for the
// frame's response code, or onto the unclaimed queue. The queue is
// unbounded, matching the device's contract that it only responds to
// commands it was sent; sustained unclaimed replies indicate a driver
// bug, not load.
func (c *Conn) route(fr frame.Frame) {
	if fr.ResponseCode == frame.TouchResponseCode {
		if len(fr.Payload) < 2 {
			debugf("dropping touch frame with short payload (%d bytes)", len(fr.Payload))
			return
		}
		c.touchCh <- fr.Payload[1]
		return
	}

	c.mu.Lock()
	if waits := c.pending[fr.ResponseCode]; len(waits) > 0 {
		w := waits[0]
		if len(waits) == 1 {
			delete(c.pending, fr.ResponseCode)
		} else {
			c.pending[fr.ResponseCode] = waits[1:]
		}
		c.mu.Unlock()
		w.result <- waitResult{payload: fr.Payload}
		return
	}
	c.queued[fr.ResponseCode] = append(c.queued[fr.ResponseCode], fr.Payload)
	c.mu.Unlock()
}

// removeWait unregisters a pending wait that timed out. It reports
// false if the wait was already fulfilled or failed.
func (c *Conn) removeWait(responseCode byte, target *pendingWait) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	waits := c.pending[responseCode]
	for i, w := range waits {
		if w == target {
			c.pending[responseCode] = append(waits[:i:i], waits[i+1:]...)
			if len(c.pending[responseCode]) == 0 {
				delete(c.pending, responseCode)
			}
			return true
		}
	}
	return false
}

// dispatchTouches runs touch callbacks off the decode loop so a slow
// handler does not stall reply routing. Events for the same region are
// delivered in arrival order.
func (c *Conn) dispatchTouches() {
	for region := range c.touchCh {
		c.mu.Lock()
		handler := c.handlers[region]
		c.mu.Unlock()

		if handler == nil {
			debugf("no handler registered for touch region %d", region)
			continue
		}
		handler.HandleTouch(region)
	}
}
