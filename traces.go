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

// TraceConfig describes a scrolling data trace.
type TraceConfig struct {
	// MinValue is the sample value at the trace's origin edge
	MinValue int
	// MaxValue is the sample value at the opposite edge
	MaxValue int
	// X, Y locate the top-left corner in pixels
	X int
	Y int
	// Width and Height size the trace window in pixels
	Width  int
	Height int
	// Type selects how samples are drawn
	Type TraceType
	// OriginPosition places the origin corner
	OriginPosition TraceOriginPosition
	// OriginShift selects the scroll direction
	OriginShift TraceOriginShift
	// Color draws the samples; defaults to white
	Color string
}

// InitTrace defines a data trace on the display. id may be an unused
// integer handle or a new string alias.
func (d *Display) InitTrace(id any, cfg TraceConfig) error {
	if err := d.validateX(cfg.X, cfg.X+cfg.Width); err != nil {
		return err
	}
	if err := d.validateY(cfg.Y, cfg.Y+cfg.Height); err != nil {
		return err
	}

	color := cfg.Color
	if color == "" {
		color = defaultFgColor
	}
	rgb, err := hexColors(color)
	if err != nil {
		return err
	}
	window, err := unsignedShorts(cfg.X, cfg.Y, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	span, err := signedShorts(cfg.MinValue, cfg.MaxValue)
	if err != nil {
		return err
	}

	handle, err := d.ids.Resolve(id, true)
	if err != nil {
		return err
	}

	style := byte(cfg.Type) | byte(cfg.OriginPosition) | byte(cfg.OriginShift)
	return d.exchange(cmdInitTrace, []byte{handle}, window, span, []byte{style}, rgb)
}

// UpdateTrace appends a sample to an existing trace, scrolling it by
// one step.
func (d *Display) UpdateTrace(id any, value int) error {
	handle, err := d.ids.Resolve(id, false)
	if err != nil {
		return err
	}
	packed, err := signedShorts(value)
	if err != nil {
		return err
	}
	return d.exchange(cmdUpdateTrace, []byte{handle}, packed)
}
