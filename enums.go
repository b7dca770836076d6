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

// BarDirection selects which way a bar graph fills.
type BarDirection byte

const (
	BarBottomToTop BarDirection = 0
	BarLeftToRight BarDirection = 1
	BarRightToLeft BarDirection = 2
	BarTopToBottom BarDirection = 3
)

// FontAlignVertical positions label text inside its bounding box.
type FontAlignVertical byte

const (
	AlignTop     FontAlignVertical = 0
	AlignBottom  FontAlignVertical = 1
	AlignVCenter FontAlignVertical = 2
)

// FontAlignHorizontal positions label text inside its bounding box.
type FontAlignHorizontal byte

const (
	AlignLeft    FontAlignHorizontal = 0
	AlignRight   FontAlignHorizontal = 1
	AlignHCenter FontAlignHorizontal = 2
)

// TraceType selects how trace samples are drawn.
type TraceType byte

const (
	TraceBar  TraceType = 0
	TraceLine TraceType = 1
	TraceStep TraceType = 2
	TraceBox  TraceType = 3
)

// TraceOriginPosition places the trace origin. The values are chosen
// so position, type and shift OR together into the trace style byte.
type TraceOriginPosition byte

const (
	OriginBottomLeft  TraceOriginPosition = 0
	OriginLeftUp      TraceOriginPosition = 16
	OriginTopRight    TraceOriginPosition = 32
	OriginRightDown   TraceOriginPosition = 48
	OriginBottomRight TraceOriginPosition = 64
	OriginLeftDown    TraceOriginPosition = 80
	OriginTopLeft     TraceOriginPosition = 96
	OriginRightUp     TraceOriginPosition = 112
)

// TraceOriginShift selects which way the trace scrolls relative to
// its origin.
type TraceOriginShift byte

const (
	ShiftTowardOrigin   TraceOriginShift = 0
	ShiftAwayFromOrigin TraceOriginShift = 128
)
