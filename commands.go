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

import "github.com/Yook74/gtt-drivers/internal/frame"

// GTT command opcodes. Every command is written as 0xFE followed by
// the opcode and its arguments. A command that is acknowledged does so
// with a status frame whose response code equals the opcode.
const (
	// Screen and drawing
	cmdClearScreen     = 0x58
	cmdSetDrawingColor = 0x63
	cmdDrawLine        = 0x6C
	cmdDrawPixel       = 0x70
	cmdDrawRectangle   = 0x72

	// Bar graphs
	cmdInitPlainBar   = 0x67
	cmdUpdateBarValue = 0x69

	// Traces
	cmdInitTrace   = 0x74
	cmdUpdateTrace = 0x75

	// Labels and fonts
	cmdInitLabel         = 0x10
	cmdUpdateLabel       = 0x11
	cmdSetLabelFontSize  = 0x14
	cmdSetLabelFontColor = 0x15
	cmdLoadFont          = 0x28

	// Bitmaps
	cmdLoadBitmap    = 0x5F
	cmdDisplayBitmap = 0x61

	// Animations
	cmdLoadAnimation       = 0xC0
	cmdSetupAnimation      = 0xC1
	cmdActivateAnimation   = 0xC2
	cmdStopAllAnimations   = 0xC3
	cmdResumeAllAnimations = 0xC4
	cmdSetAnimationFrame   = 0xC5
	cmdGetAnimationFrame   = 0xC6
	cmdClearAnimations     = 0xC7

	// Touch regions
	cmdCreateTouchRegion     = 0x84
	cmdDeleteTouchRegion     = 0x85
	cmdDeleteAllTouchRegions = 0x86
)

// command serializes an opcode and its argument fields into a single
// wire-ready buffer.
func command(opcode byte, fields ...[]byte) []byte {
	size := 2
	for _, field := range fields {
		size += len(field)
	}
	buf := make([]byte, 2, size)
	buf[0] = frame.CommandSentinel
	buf[1] = opcode
	for _, field := range fields {
		buf = append(buf, field...)
	}
	return buf
}

// terminated returns s as bytes with the protocol's NUL terminator,
// used for file path and text arguments.
func terminated(s string) []byte {
	return append([]byte(s), 0x00)
}
