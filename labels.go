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

// LoadFont loads a font file from the display's on-board filesystem
// into a font buffer. id may be an unused integer handle or a new
// string alias; CreateLabel refers to the font by the same id.
func (d *Display) LoadFont(id any, filePath string) error {
	if filePath == "" {
		return fmt.Errorf("%w: font file path is empty", ErrInvalidArgument)
	}
	handle, err := d.ids.Resolve(id, true)
	if err != nil {
		return err
	}
	return d.exchange(cmdLoadFont, []byte{handle}, terminated(filePath))
}

// LabelConfig describes a text label.
type LabelConfig struct {
	// Text is the initial label contents; it must not be empty
	Text string
	// X, Y locate the top-left corner in pixels
	X int
	Y int
	// Width and Height size the bounding box in pixels
	Width  int
	Height int
	// Font identifies a font previously loaded with LoadFont
	Font any
	// FontSize is the point size to render at, in [1, 255]
	FontSize int
	// Rotation is the text rotation in degrees: 0, 90, 180 or 270
	Rotation int
	// VerticalJust and HorizontalJust position the text inside the
	// bounding box
	VerticalJust   FontAlignVertical
	HorizontalJust FontAlignHorizontal
	// FgColor is the text color; defaults to white
	FgColor string
	// BgColor fills the box behind the text; defaults to black
	BgColor string
}

// CreateLabel defines a label on the display and renders its initial
// text. id may be an unused integer handle or a new string alias.
func (d *Display) CreateLabel(id any, cfg LabelConfig) error {
	if cfg.Text == "" {
		return fmt.Errorf("%w: label text is empty", ErrInvalidArgument)
	}
	if cfg.VerticalJust > AlignVCenter {
		return fmt.Errorf("%w: vertical justification %d", ErrInvalidArgument, cfg.VerticalJust)
	}
	if cfg.HorizontalJust > AlignHCenter {
		return fmt.Errorf("%w: horizontal justification %d", ErrInvalidArgument, cfg.HorizontalJust)
	}
	switch cfg.Rotation {
	case 0, 90, 180, 270:
	default:
		return fmt.Errorf("%w: rotation %d is not a quarter turn", ErrInvalidArgument, cfg.Rotation)
	}
	if cfg.FontSize < 1 || cfg.FontSize > 255 {
		return fmt.Errorf("%w: font size %d is outside [1, 255]", ErrInvalidArgument, cfg.FontSize)
	}
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
	box, err := unsignedShorts(cfg.X, cfg.Y, cfg.Width, cfg.Height, cfg.Rotation)
	if err != nil {
		return err
	}

	fontHandle, err := d.ids.Resolve(cfg.Font, false)
	if err != nil {
		return fmt.Errorf("label font: %w", err)
	}
	handle, err := d.ids.Resolve(id, true)
	if err != nil {
		return err
	}

	err = d.exchange(cmdInitLabel,
		[]byte{handle},
		box,
		[]byte{byte(cfg.VerticalJust), byte(cfg.HorizontalJust), fontHandle, byte(cfg.FontSize)},
		colors,
	)
	if err != nil {
		return err
	}
	return d.UpdateLabelText(id, cfg.Text)
}

// UpdateLabelText replaces the text of an existing label.
func (d *Display) UpdateLabelText(id any, text string) error {
	if text == "" {
		return fmt.Errorf("%w: label text is empty", ErrInvalidArgument)
	}
	handle, err := d.ids.Resolve(id, false)
	if err != nil {
		return err
	}
	return d.exchange(cmdUpdateLabel, []byte{handle}, terminated(text))
}

// SetLabelFontSize changes the point size of an existing label.
func (d *Display) SetLabelFontSize(id any, size int) error {
	if size < 1 || size > 255 {
		return fmt.Errorf("%w: font size %d is outside [1, 255]", ErrInvalidArgument, size)
	}
	handle, err := d.ids.Resolve(id, false)
	if err != nil {
		return err
	}
	return d.exchange(cmdSetLabelFontSize, []byte{handle, byte(size)})
}

// SetLabelFontColor changes the text color of an existing label.
func (d *Display) SetLabelFontColor(id any, colorHex string) error {
	rgb, err := hexColors(colorHex)
	if err != nil {
		return err
	}
	handle, err := d.ids.Resolve(id, false)
	if err != nil {
		return err
	}
	return d.exchange(cmdSetLabelFontColor, []byte{handle}, rgb)
}
