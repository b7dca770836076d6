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

// Package gtttest simulates a GTT display behind the gtt.Transport
// interface, for integration tests that exercise the full driver
// without hardware.
package gtttest

import (
	"errors"
	"sync"

	gtt "github.com/Yook74/gtt-drivers"
	"github.com/Yook74/gtt-drivers/internal/frame"
)

// Command records one host-to-display command the simulator received.
type Command struct {
	Args   []byte
	Opcode byte
}

// VirtualDisplay implements gtt.Transport and answers commands the
// way a real display would: with a status acknowledgement whose
// response code is the command opcode, a scripted query payload, or
// silence for the drawing commands that are never acknowledged.
//
// Touch simulates a finger on the panel.
type VirtualDisplay struct {
	mu            sync.Mutex
	commands      []Command
	statusReplies map[byte][]byte   // per-opcode status payload override
	queryReplies  map[byte][][]byte // per-opcode scripted query payloads
	silent        map[byte]bool     // opcodes that are never acknowledged

	rx        chan []byte // wire chunks traveling display -> host
	leftover  []byte      // partially consumed chunk
	done      chan struct{}
	closeOnce sync.Once
}

// Unacknowledged command opcodes: the drawing commands and bar init.
var defaultSilentOpcodes = []byte{0x63, 0x6C, 0x70, 0x72, 0x67}

// NewVirtualDisplay returns a simulator that acknowledges every
// command with a single success status byte.
func NewVirtualDisplay() *VirtualDisplay {
	silent := make(map[byte]bool, len(defaultSilentOpcodes))
	for _, opcode := range defaultSilentOpcodes {
		silent[opcode] = true
	}
	return &VirtualDisplay{
		statusReplies: make(map[byte][]byte),
		queryReplies:  make(map[byte][][]byte),
		silent:        silent,
		rx:            make(chan []byte, 64),
		done:          make(chan struct{}),
	}
}

// SetStatusReply overrides the status payload for one opcode, e.g. to
// simulate a rejected command.
func (v *VirtualDisplay) SetStatusReply(opcode byte, statusCodes ...byte) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.statusReplies[opcode] = statusCodes
}

// QueueQueryReply scripts the payload for the next command with this
// opcode. Scripted payloads are consumed in FIFO order and take
// precedence over status acknowledgements.
func (v *VirtualDisplay) QueueQueryReply(opcode byte, payload []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.queryReplies[opcode] = append(v.queryReplies[opcode], payload)
}

// SetSilent controls whether an opcode is acknowledged at all.
func (v *VirtualDisplay) SetSilent(opcode byte, silent bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.silent[opcode] = silent
}

// Commands returns a copy of every command received so far.
func (v *VirtualDisplay) Commands() []Command {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]Command, len(v.commands))
	copy(out, v.commands)
	return out
}

// LastCommand returns the most recent command, or false if none
// arrived yet.
func (v *VirtualDisplay) LastCommand() (Command, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.commands) == 0 {
		return Command{}, false
	}
	return v.commands[len(v.commands)-1], true
}

// Touch emits an unsolicited touch notification for a region handle.
func (v *VirtualDisplay) Touch(region byte) {
	v.Inject(frame.TouchResponseCode, []byte{0x01, region})
}

// Inject emits an arbitrary reply frame, as if the display had sent
// it on its own.
func (v *VirtualDisplay) Inject(responseCode byte, payload []byte) {
	v.InjectRaw(frame.Encode(responseCode, payload))
}

// InjectRaw emits raw bytes on the display-to-host wire, including
// deliberately malformed ones.
func (v *VirtualDisplay) InjectRaw(wire []byte) {
	select {
	case v.rx <- wire:
	case <-v.done:
	}
}

// Write receives one command from the host and queues the simulated
// reply. The driver always writes whole commands, so each call is one
// command.
func (v *VirtualDisplay) Write(p []byte) (int, error) {
	select {
	case <-v.done:
		return 0, errors.New("virtual display closed")
	default:
	}
	if len(p) < 2 || p[0] != frame.CommandSentinel {
		return 0, errors.New("virtual display received bytes that are not a command")
	}

	cmd := Command{
		Opcode: p[1],
		Args:   append([]byte(nil), p[2:]...),
	}

	v.mu.Lock()
	v.commands = append(v.commands, cmd)
	reply := v.replyForLocked(cmd.Opcode)
	v.mu.Unlock()

	if reply != nil {
		v.InjectRaw(reply)
	}
	return len(p), nil
}

// replyForLocked picks the wire bytes to answer an opcode with, or
// nil for silence.
func (v *VirtualDisplay) replyForLocked(opcode byte) []byte {
	if queued := v.queryReplies[opcode]; len(queued) > 0 {
		payload := queued[0]
		v.queryReplies[opcode] = queued[1:]
		return frame.Encode(opcode, payload)
	}
	if v.silent[opcode] {
		return nil
	}
	if status, ok := v.statusReplies[opcode]; ok {
		return frame.Encode(opcode, status)
	}
	return frame.Encode(opcode, []byte{frame.StatusOK})
}

// Read serves the display-to-host wire, blocking until bytes arrive
// or the simulator closes.
func (v *VirtualDisplay) Read(p []byte) (int, error) {
	if len(v.leftover) > 0 {
		n := copy(p, v.leftover)
		v.leftover = v.leftover[n:]
		return n, nil
	}

	select {
	case chunk := <-v.rx:
		n := copy(p, chunk)
		v.leftover = chunk[n:]
		return n, nil
	case <-v.done:
		return 0, errors.New("virtual display closed")
	}
}

// Close stops the simulator, unblocking any pending Read.
func (v *VirtualDisplay) Close() error {
	v.closeOnce.Do(func() {
		close(v.done)
	})
	return nil
}

// IsConnected returns true until the simulator is closed.
func (v *VirtualDisplay) IsConnected() bool {
	select {
	case <-v.done:
		return false
	default:
		return true
	}
}

// Type returns the transport type
func (*VirtualDisplay) Type() gtt.TransportType {
	return gtt.TransportMock
}
