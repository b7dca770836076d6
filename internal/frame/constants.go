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

// Frame markers - these prefix every message in each direction
const (
	CommandSentinel  = 0xFE // First byte of every host-to-display command
	ResponseSentinel = 0xFC // First byte of every display-to-host frame
)

// Reserved response codes
const (
	// TouchResponseCode tags unsolicited touch event notifications.
	// The second payload byte carries the touched region's handle.
	TouchResponseCode = 0x87
)

// Status reply convention
const (
	// StatusOK is the per-byte success value in status replies. Any
	// other byte is a device error code to surface to the caller.
	StatusOK = 0xFE
)

// Frame size limits
const (
	HeaderLength     = 4      // sentinel + response code + 2 length bytes
	MaxPayloadLength = 0xFFFF // Payload length field is an unsigned short
)
