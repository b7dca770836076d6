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

// gttdemo exercises a GTT display: it draws a bar graph that fills
// over time and a touch region that reports presses until
// interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	gtt "github.com/Yook74/gtt-drivers"
	"github.com/Yook74/gtt-drivers/detection"
	"github.com/Yook74/gtt-drivers/transport/uart"
)

var (
	flagDevice = flag.String("device", "", "Serial port of the display (auto-detect if empty)")
	flagList   = flag.Bool("list", false, "List candidate serial ports and exit")
	flagWidth  = flag.Int("width", 320, "Screen width in pixels")
	flagHeight = flag.Int("height", 240, "Screen height in pixels")
	flagDebug  = flag.Bool("debug", false, "Enable debug output")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *flagDebug {
		gtt.SetDebugEnabled(true)
	}

	if *flagList {
		return listPorts()
	}

	device := *flagDevice
	if device == "" {
		detected, err := detectPort()
		if err != nil {
			return err
		}
		device = detected
		fmt.Printf("Using detected port %s\n", device)
	}

	transport, err := uart.New(device)
	if err != nil {
		return err
	}

	display, err := gtt.Open(transport, gtt.WithDimensions(*flagWidth, *flagHeight))
	if err != nil {
		_ = transport.Close()
		return err
	}
	defer func() { _ = display.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return demo(ctx, display)
}

func listPorts() error {
	ports, err := detection.SerialPorts()
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		fmt.Println("No serial ports found")
		return nil
	}
	for _, port := range ports {
		kind := "built-in"
		if port.USB {
			kind = "usb"
		}
		fmt.Printf("%s\t%s\n", port.Path, kind)
	}
	return nil
}

func detectPort() (string, error) {
	ports, err := detection.SerialPorts()
	if err != nil {
		return "", err
	}
	if len(ports) == 0 {
		return "", fmt.Errorf("no serial ports found; specify one with -device")
	}
	return ports[0].Path, nil
}

func demo(ctx context.Context, display *gtt.Display) error {
	if err := display.ClearScreen(); err != nil {
		return err
	}

	err := display.CreatePlainBar("progress", gtt.BarConfig{
		MaxValue: 100,
		X:        20,
		Y:        20,
		Width:    30,
		Height:   180,
		FgColor:  "30C030",
	})
	if err != nil {
		return err
	}

	presses := make(chan byte, 8)
	err = display.CreateTouchRegion("button", 100, 20, 180, 180,
		gtt.TouchHandlerFunc(func(region byte) {
			select {
			case presses <- region:
			default:
			}
		}))
	if err != nil {
		return err
	}

	fmt.Println("Touch the right side of the screen; Ctrl-C to exit")

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	value := 0

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nExiting")
			return nil
		case <-display.Conn().Done():
			return fmt.Errorf("connection lost: %w", display.Conn().Err())
		case region := <-presses:
			fmt.Printf("Touch on region %d\n", region)
		case <-ticker.C:
			value = (value + 5) % 101
			if err := display.UpdateBarValue("progress", value); err != nil {
				return err
			}
		}
	}
}
