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

// CreateTouchRegion defines a touch-sensitive rectangle and binds a
// handler that fires when the display reports a touch inside it. id
// may be an unused integer handle or a new string alias.
//
// The handler runs on the session's touch dispatcher goroutine; see
// the package documentation for the backlog behavior.
func (d *Display) CreateTouchRegion(id any, x, y, width, height int, handler TouchHandler) error {
	if handler == nil {
		return fmt.Errorf("%w: touch handler is nil", ErrInvalidArgument)
	}
	if err := d.validateX(x, x+width); err != nil {
		return err
	}
	if err := d.validateY(y, y+height); err != nil {
		return err
	}
	box, err := unsignedShorts(x, y, width, height)
	if err != nil {
		return err
	}

	handle, err := d.ids.Resolve(id, true)
	if err != nil {
		return err
	}

	if err := d.exchange(cmdCreateTouchRegion, []byte{handle}, box); err != nil {
		return err
	}
	d.conn.RegisterTouchHandler(handle, handler)
	return nil
}

// DeleteTouchRegion removes a touch region and unbinds its handler.
// The region's handle stays allocated in the session registry; the
// protocol has no handle release.
func (d *Display) DeleteTouchRegion(id any) error {
	handle, err := d.ids.Resolve(id, false)
	if err != nil {
		return err
	}
	if err := d.exchange(cmdDeleteTouchRegion, []byte{handle}); err != nil {
		return err
	}
	d.conn.UnregisterTouchHandler(handle)
	return nil
}

// DeleteAllTouchRegions removes every touch region and unbinds all
// handlers.
func (d *Display) DeleteAllTouchRegions() error {
	if err := d.exchange(cmdDeleteAllTouchRegions); err != nil {
		return err
	}
	d.conn.ClearTouchHandlers()
	return nil
}
