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

//go:build linux

package detection

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sys/unix"
)

const ttyClassDir = "/sys/class/tty"

// serialPorts walks /sys/class/tty and keeps the entries that are
// real, accessible serial devices. USB adapters sort first since that
// is how GTT displays usually attach.
func serialPorts() ([]PortInfo, error) {
	entries, err := os.ReadDir(ttyClassDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", ttyClassDir, err)
	}

	var ports []PortInfo
	for _, entry := range entries {
		if port, ok := classifyTTY(entry.Name()); ok {
			ports = append(ports, port)
		}
	}

	sort.SliceStable(ports, func(i, j int) bool {
		return ports[i].USB && !ports[j].USB
	})
	return ports, nil
}

// classifyTTY decides whether a /sys/class/tty entry is a usable
// serial port. Entries without a device/ link are virtual consoles;
// ports the process cannot read and write are skipped.
func classifyTTY(name string) (PortInfo, bool) {
	devLink := filepath.Join(ttyClassDir, name, "device")
	if _, err := os.Stat(devLink); err != nil {
		return PortInfo{}, false
	}

	path := "/dev/" + name
	if err := unix.Access(path, unix.R_OK|unix.W_OK); err != nil {
		return PortInfo{}, false
	}

	return PortInfo{
		Path: path,
		Name: name,
		USB:  isUSBSerial(name),
	}, true
}

// isUSBSerial reports whether the tty sits on the USB subsystem.
func isUSBSerial(name string) bool {
	if strings.HasPrefix(name, "ttyUSB") || strings.HasPrefix(name, "ttyACM") {
		return true
	}
	target, err := os.Readlink(filepath.Join(ttyClassDir, name, "device"))
	if err != nil {
		return false
	}
	return strings.Contains(target, "usb")
}
