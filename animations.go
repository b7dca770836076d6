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

// LoadAnimation loads an animation definition file from the display's
// on-board filesystem into an animation buffer. memoryID may be an
// unused integer handle or a new string alias.
func (d *Display) LoadAnimation(memoryID any, filePath string) error {
	if filePath == "" {
		return fmt.Errorf("%w: animation file path is empty", ErrInvalidArgument)
	}
	handle, err := d.ids.Resolve(memoryID, true)
	if err != nil {
		return err
	}
	return d.exchange(cmdLoadAnimation, []byte{handle}, terminated(filePath))
}

// SetupAnimation binds a loaded animation buffer to a screen instance
// with its top-left corner at (x, y). One buffer can back several
// instances. displayID must be unused; memoryID must name a buffer
// loaded with LoadAnimation.
func (d *Display) SetupAnimation(displayID, memoryID any, x, y int) error {
	if err := d.validateX(x); err != nil {
		return err
	}
	if err := d.validateY(y); err != nil {
		return err
	}
	memHandle, err := d.ids.Resolve(memoryID, false)
	if err != nil {
		return fmt.Errorf("animation buffer: %w", err)
	}
	handle, err := d.ids.Resolve(displayID, true)
	if err != nil {
		return err
	}
	coords, err := unsignedShorts(x, y)
	if err != nil {
		return err
	}
	return d.exchange(cmdSetupAnimation, []byte{handle, memHandle}, coords)
}

// ActivateAnimation starts an animation instance, or pauses it on its
// current frame when play is false.
func (d *Display) ActivateAnimation(displayID any, play bool) error {
	handle, err := d.ids.Resolve(displayID, false)
	if err != nil {
		return err
	}
	state := byte(0)
	if play {
		state = 1
	}
	return d.exchange(cmdActivateAnimation, []byte{handle, state})
}

// SetAnimationFrame jumps a paused animation instance to the given
// frame.
func (d *Display) SetAnimationFrame(displayID any, frameIndex int) error {
	if frameIndex < 0 || frameIndex > 255 {
		return fmt.Errorf("%w: frame index %d is outside [0, 255]", ErrInvalidArgument, frameIndex)
	}
	handle, err := d.ids.Resolve(displayID, false)
	if err != nil {
		return err
	}
	return d.exchange(cmdSetAnimationFrame, []byte{handle, byte(frameIndex)})
}

// GetAnimationFrame queries the frame an animation instance is
// currently showing.
func (d *Display) GetAnimationFrame(displayID any) (int, error) {
	handle, err := d.ids.Resolve(displayID, false)
	if err != nil {
		return 0, err
	}
	payload, err := d.query(cmdGetAnimationFrame, []byte{handle})
	if err != nil {
		return 0, err
	}
	if len(payload) < 1 {
		return 0, fmt.Errorf("%w: empty animation frame reply", ErrUnexpectedResponse)
	}
	return int(payload[0]), nil
}

// StopAllAnimations pauses every animation instance on the screen.
func (d *Display) StopAllAnimations() error {
	return d.exchange(cmdStopAllAnimations)
}

// ResumeAllAnimations restarts every animation instance paused by
// StopAllAnimations.
func (d *Display) ResumeAllAnimations() error {
	return d.exchange(cmdResumeAllAnimations)
}

// ClearAnimations removes every animation instance from the screen
// and frees the display-side buffers. The session keeps the handles
// allocated: the protocol has no handle release, so cleared ids
// cannot be reused.
func (d *Display) ClearAnimations() error {
	return d.exchange(cmdClearAnimations)
}
