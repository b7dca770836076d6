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

import (
	"context"
	"fmt"
	"time"

	"github.com/Yook74/gtt-drivers/internal/bytefmt"
)

// Default colors for widgets that take optional color arguments.
const (
	defaultFgColor = "FFFFFF"
	defaultBgColor = "000000"
)

// DisplayConfig contains configuration options for a Display session.
type DisplayConfig struct {
	// RetryConfig enables retrying command/status exchanges. Nil
	// disables retries; the transport engine never retries on its own.
	RetryConfig *RetryConfig
	// Timeout is the default timeout for awaiting a reply
	Timeout time.Duration
	// Width and Height of the screen in pixels, used to validate
	// coordinates before they go on the wire
	Width  int
	Height int
}

// DefaultDisplayConfig returns the configuration for a GTT35A.
func DefaultDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Timeout: 1 * time.Second,
		Width:   320,
		Height:  240,
	}
}

// Display is one session with a GTT display. It owns the connection,
// the component ID registry and the screen dimensions, and exposes
// the widget command surface.
//
// Display is safe for concurrent use, with the response-code
// correlation caveat described in the package documentation.
type Display struct {
	conn   *Conn
	ids    *Registry
	config *DisplayConfig
}

// Open starts a display session over an already-open transport and
// launches the background receive loop. Close is the only way to stop
// the loop; a closed session cannot be reopened.
func Open(transport Transport, opts ...Option) (*Display, error) {
	d := &Display{
		ids:    NewRegistry(),
		config: DefaultDisplayConfig(),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	if d.config.Width <= 0 || d.config.Height <= 0 {
		return nil, fmt.Errorf("%w: display dimensions must be positive", ErrInvalidArgument)
	}

	d.conn = OpenConn(transport)
	return d, nil
}

// Close stops the background receive loop and closes the transport.
// It is idempotent.
func (d *Display) Close() error {
	return d.conn.Close()
}

// Conn exposes the underlying connection for raw protocol access.
func (d *Display) Conn() *Conn {
	return d.conn
}

// Width returns the configured screen width in pixels.
func (d *Display) Width() int {
	return d.config.Width
}

// Height returns the configured screen height in pixels.
func (d *Display) Height() int {
	return d.config.Height
}

// ResolveID translates a widget identifier (int or string alias) into
// its wire handle. Most callers never need this; every widget method
// resolves its own identifiers.
func (d *Display) ResolveID(id any, isNew bool) (byte, error) {
	return d.ids.Resolve(id, isNew)
}

// write serializes a command and sends it without awaiting a reply.
func (d *Display) write(opcode byte, fields ...[]byte) error {
	return d.conn.Send(command(opcode, fields...))
}

// exchange sends a command and validates its status reply. When a
// RetryConfig is set, the whole exchange is retried on transient
// failures; the command is re-sent, so only idempotent commands go
// through here.
func (d *Display) exchange(opcode byte, fields ...[]byte) error {
	op := func() error {
		if err := d.write(opcode, fields...); err != nil {
			return err
		}
		return d.conn.AwaitStatus(opcode, d.config.Timeout)
	}
	if d.config.RetryConfig == nil {
		return op()
	}
	return RetryWithConfig(context.Background(), d.config.RetryConfig, op)
}

// query sends a command and returns the payload of its reply.
func (d *Display) query(opcode byte, fields ...[]byte) ([]byte, error) {
	if err := d.write(opcode, fields...); err != nil {
		return nil, err
	}
	return d.conn.AwaitResponse(opcode, d.config.Timeout)
}

// validateX checks that each value is a visible x coordinate.
func (d *Display) validateX(values ...int) error {
	for _, v := range values {
		if v < 0 {
			return fmt.Errorf("%w: x value %d is negative", ErrInvalidArgument, v)
		}
		if v >= d.config.Width {
			return fmt.Errorf("%w: x value %d is off the right edge of the %d pixel wide screen",
				ErrInvalidArgument, v, d.config.Width)
		}
	}
	return nil
}

// validateY checks that each value is a visible y coordinate.
func (d *Display) validateY(values ...int) error {
	for _, v := range values {
		if v < 0 {
			return fmt.Errorf("%w: y value %d is negative", ErrInvalidArgument, v)
		}
		if v >= d.config.Height {
			return fmt.Errorf("%w: y value %d is past the bottom of the %d pixel tall screen",
				ErrInvalidArgument, v, d.config.Height)
		}
	}
	return nil
}

// invalidArg wraps a field-packing failure as a caller-usage error.
func invalidArg(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
}

// signedShorts packs values as big-endian signed 16-bit fields.
func signedShorts(values ...int) ([]byte, error) {
	out, err := bytefmt.AppendSignedShorts(nil, values...)
	if err != nil {
		return nil, invalidArg(err)
	}
	return out, nil
}

// unsignedShorts packs values as big-endian unsigned 16-bit fields.
func unsignedShorts(values ...int) ([]byte, error) {
	out, err := bytefmt.AppendUnsignedShorts(nil, values...)
	if err != nil {
		return nil, invalidArg(err)
	}
	return out, nil
}

// hexColors packs 6-hex-digit color strings as RGB byte triples.
func hexColors(colors ...string) ([]byte, error) {
	out, err := bytefmt.AppendHexColors(nil, colors...)
	if err != nil {
		return nil, invalidArg(err)
	}
	return out, nil
}

// ClearScreen wipes the screen to the background color.
func (d *Display) ClearScreen() error {
	return d.exchange(cmdClearScreen)
}

// SetDrawingColor sets the color used by subsequent drawing commands.
func (d *Display) SetDrawingColor(colorHex string) error {
	rgb, err := hexColors(colorHex)
	if err != nil {
		return err
	}
	return d.write(cmdSetDrawingColor, rgb)
}

// DrawPixel lights a single pixel in the current drawing color.
// Drawing commands are not acknowledged by the display.
func (d *Display) DrawPixel(x, y int) error {
	if err := d.validateX(x); err != nil {
		return err
	}
	if err := d.validateY(y); err != nil {
		return err
	}
	coords, err := unsignedShorts(x, y)
	if err != nil {
		return err
	}
	return d.write(cmdDrawPixel, coords)
}

// DrawLine draws a line between two points in the current drawing
// color.
func (d *Display) DrawLine(x1, y1, x2, y2 int) error {
	if err := d.validateX(x1, x2); err != nil {
		return err
	}
	if err := d.validateY(y1, y2); err != nil {
		return err
	}
	coords, err := unsignedShorts(x1, y1, x2, y2)
	if err != nil {
		return err
	}
	return d.write(cmdDrawLine, coords)
}

// DrawRectangle outlines a width by height rectangle whose top-left
// corner is at (x, y), in the current drawing color.
func (d *Display) DrawRectangle(x, y, width, height int) error {
	if err := d.validateX(x, x+width); err != nil {
		return err
	}
	if err := d.validateY(y, y+height); err != nil {
		return err
	}
	coords, err := unsignedShorts(x, y, x+width, y+height)
	if err != nil {
		return err
	}
	return d.write(cmdDrawRectangle, coords)
}
