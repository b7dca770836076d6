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

// Package bytefmt packs command arguments into the big-endian field
// encodings the GTT protocol uses.
package bytefmt

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

var (
	// ErrValueOutOfRange reports an integer that does not fit the
	// 16-bit wire field it is destined for.
	ErrValueOutOfRange = errors.New("value does not fit in a 16-bit field")
	// ErrBadHexColor reports a color string that is not 6 hex digits.
	ErrBadHexColor = errors.New("hex colors must be 6 hex digits")
)

// AppendSignedShorts appends each value as a big-endian signed 16-bit
// integer.
func AppendSignedShorts(dst []byte, values ...int) ([]byte, error) {
	for _, v := range values {
		if v < -0x8000 || v > 0x7FFF {
			return nil, fmt.Errorf("%w: %d", ErrValueOutOfRange, v)
		}
		dst = binary.BigEndian.AppendUint16(dst, uint16(int16(v)))
	}
	return dst, nil
}

// AppendUnsignedShorts appends each value as a big-endian unsigned
// 16-bit integer.
func AppendUnsignedShorts(dst []byte, values ...int) ([]byte, error) {
	for _, v := range values {
		if v < 0 || v > 0xFFFF {
			return nil, fmt.Errorf("%w: %d", ErrValueOutOfRange, v)
		}
		dst = binary.BigEndian.AppendUint16(dst, uint16(v))
	}
	return dst, nil
}

// AppendHexColors appends each color as 3 bytes of RGB. Colors are
// 6-hex-digit strings like "FFA000".
func AppendHexColors(dst []byte, colors ...string) ([]byte, error) {
	for _, color := range colors {
		if len(color) != 6 {
			return nil, fmt.Errorf("%w: %q", ErrBadHexColor, color)
		}
		rgb, err := hex.DecodeString(color)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadHexColor, color)
		}
		dst = append(dst, rgb...)
	}
	return dst, nil
}
