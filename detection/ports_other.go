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

//go:build !linux

package detection

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.bug.st/serial"
)

// serialPorts falls back to the serial library's enumeration on
// platforms without a /sys tree.
func serialPorts() ([]PortInfo, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate serial ports: %w", err)
	}

	ports := make([]PortInfo, 0, len(names))
	for _, path := range names {
		name := filepath.Base(path)
		ports = append(ports, PortInfo{
			Path: path,
			Name: name,
			USB:  strings.Contains(strings.ToLower(name), "usb"),
		})
	}
	return ports, nil
}
