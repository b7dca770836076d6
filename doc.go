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

/*
Package gtt provides a pure Go driver for Matrix Orbital GTT series
intelligent touch displays.

The GTT speaks a fixed binary protocol over a full-duplex byte stream:
the host writes 0xFE-prefixed commands, and the display answers with
length-prefixed reply frames carrying status acknowledgements, query
payloads, or unsolicited touch notifications. This package turns that
stream into a reliable synchronous request/response mechanism usable
from many goroutines at once, plus asynchronous touch event dispatch.

Basic Usage:

	import (
	    gtt "github.com/Yook74/gtt-drivers"
	    "github.com/Yook74/gtt-drivers/transport/uart"
	)

	// Open a serial transport
	transport, err := uart.New("/dev/ttyUSB0")
	if err != nil {
	    log.Fatal(err)
	}

	// Open a display session on top of it
	display, err := gtt.Open(transport, gtt.WithDimensions(320, 240))
	if err != nil {
	    log.Fatal(err)
	}
	defer display.Close()

	if err := display.ClearScreen(); err != nil {
	    log.Fatal(err)
	}

	// Widgets are addressed by an integer handle or a string alias
	err = display.CreatePlainBar("cpu", gtt.BarConfig{
	    Value:    25,
	    MaxValue: 100,
	    X:        10,
	    Y:        10,
	    Width:    20,
	    Height:   100,
	})
	if err != nil {
	    log.Fatal(err)
	}
	if err := display.UpdateBarValue("cpu", 75); err != nil {
	    log.Fatal(err)
	}

Transport Selection:

The driver supports two transport layers:

  - UART: most common, 115200 baud over the display's RS232/USB header
  - I2C: for embedded systems wiring the display to an I2C bus

Touch Events:

Touch regions carry a callback that fires when the display reports a
touch:

	err = display.CreateTouchRegion("ok", 0, 0, 100, 50,
	    gtt.TouchHandlerFunc(func(region byte) {
	        fmt.Println("pressed OK")
	    }))

Callbacks run on a dedicated dispatcher goroutine, so a slow callback
does not stall reply routing until the dispatch backlog fills.

Error Handling:

All operations return meaningful errors that can be inspected:

	if errors.Is(err, gtt.ErrResponseTimeout) {
	    // Handle timeout
	}

	var statusErr *gtt.StatusError
	if errors.As(err, &statusErr) {
	    // Inspect the raw status codes from the display
	}

Errors split into two families: transport and protocol faults
(recoverable only by reopening the connection) and caller-usage faults
such as ErrIDConflict or ErrInvalidArgument (never require a
reconnect).

Thread Safety:

Display and Conn are safe for concurrent use. Note that the wire
protocol correlates replies by response code alone, so two goroutines
must not issue concurrent operations that await the same response code
if they need distinguishable results; replies for one code are handed
to waiters in registration order.
*/
package gtt
