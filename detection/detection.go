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

// Package detection finds serial ports a GTT display could be
// attached to. It cannot tell a display from any other serial device;
// it only narrows the candidate list for tools like cmd/gttdemo.
package detection

// PortInfo describes one candidate serial port.
type PortInfo struct {
	// Path is the device path to hand to transport/uart.New
	Path string
	// Name is the bare device name, like ttyUSB0
	Name string
	// USB is true when the port sits behind a USB adapter, which is
	// how GTT displays usually enumerate
	USB bool
}

// SerialPorts lists candidate serial ports, most likely first.
func SerialPorts() ([]PortInfo, error) {
	return serialPorts()
}
