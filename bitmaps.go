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

import "fmt"

// LoadBitmap loads a bitmap file from the display's on-board
// filesystem into a bitmap buffer without drawing it. id may be an
// unused integer handle or a new string alias. A missing or malformed
// file surfaces as a *StatusError from the display.
func (d *Display) LoadBitmap(id any, filePath string) error {
	if filePath == "" {
		return fmt.Errorf("%w: bitmap file path is empty", ErrInvalidArgument)
	}
	handle, err := d.ids.Resolve(id, true)
	if err != nil {
		return err
	}
	return d.exchange(cmdLoadBitmap, []byte{handle}, terminated(filePath))
}

// DisplayBitmap draws a previously loaded bitmap with its top-left
// corner at (x, y).
func (d *Display) DisplayBitmap(id any, x, y int) error {
	if err := d.validateX(x); err != nil {
		return err
	}
	if err := d.validateY(y); err != nil {
		return err
	}
	handle, err := d.ids.Resolve(id, false)
	if err != nil {
		return err
	}
	coords, err := unsignedShorts(x, y)
	if err != nil {
		return err
	}
	return d.exchange(cmdDisplayBitmap, []byte{handle}, coords)
}

// LoadAndDisplayBitmap loads a bitmap file and immediately draws it
// at (x, y).
func (d *Display) LoadAndDisplayBitmap(id any, filePath string, x, y int) error {
	if err := d.LoadBitmap(id, filePath); err != nil {
		return err
	}
	return d.DisplayBitmap(id, x, y)
}
