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

// BarConfig describes a plain bar graph.
type BarConfig struct {
	// Value is the initial fill value, in [MinValue, MaxValue]
	Value int
	// MinValue is the value at which the bar is empty
	MinValue int
	// MaxValue is the value at which the bar is full
	MaxValue int
	// X, Y locate the top-left corner in pixels
	X int
	Y int
	// Width and Height size the bar in pixels
	Width  int
	Height int
	// FgColor fills the bar; defaults to white
	FgColor string
	// BgColor fills the empty portion; defaults to black
	BgColor string
	// Direction selects which way the bar fills
	Direction BarDirection
}

// CreatePlainBar defines a bar graph on the display and draws its
// initial value. id may be an unused integer handle or a new string
// alias.
func (d *Display) CreatePlainBar(id any, cfg BarConfig) error {
	if err := d.validateX(cfg.X, cfg.X+cfg.Width); err != nil {
		return err
	}
	if err := d.validateY(cfg.Y, cfg.Y+cfg.Height); err != nil {
		return err
	}

	fg, bg := cfg.FgColor, cfg.BgColor
	if fg == "" {
		fg = defaultFgColor
	}
	if bg == "" {
		bg = defaultBgColor
	}
	colors, err := hexColors(fg, bg)
	if err != nil {
		return err
	}
	geometry, err := signedShorts(cfg.MinValue, cfg.MaxValue, cfg.X, cfg.Y, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	if _, err := signedShorts(cfg.Value); err != nil {
		return err
	}

	handle, err := d.ids.Resolve(id, true)
	if err != nil {
		return err
	}

	// The init command is not acknowledged; the update that follows
	// is, which also confirms the init reached the display.
	if err := d.write(cmdInitPlainBar, []byte{handle}, geometry, colors, []byte{byte(cfg.Direction)}); err != nil {
		return err
	}
	return d.UpdateBarValue(id, cfg.Value)
}

// UpdateBarValue changes the fill value of an existing bar graph.
func (d *Display) UpdateBarValue(id any, value int) error {
	handle, err := d.ids.Resolve(id, false)
	if err != nil {
		return err
	}
	packed, err := signedShorts(value)
	if err != nil {
		return err
	}
	return d.exchange(cmdUpdateBarValue, []byte{handle}, packed)
}
