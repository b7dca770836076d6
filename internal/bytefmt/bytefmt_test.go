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

package bytefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendSignedShorts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		values  []int
		want    []byte
		wantErr bool
	}{
		{
			name:   "positive values",
			values: []int{0, 10, 100},
			want:   []byte{0x00, 0x00, 0x00, 0x0A, 0x00, 0x64},
		},
		{
			name:   "negative value",
			values: []int{-3},
			want:   []byte{0xFF, 0xFD},
		},
		{
			name:   "extremes",
			values: []int{-32768, 32767},
			want:   []byte{0x80, 0x00, 0x7F, 0xFF},
		},
		{
			name:    "too large",
			values:  []int{32768},
			wantErr: true,
		},
		{
			name:    "too small",
			values:  []int{-32769},
			wantErr: true,
		},
		{
			name:    "huge value",
			values:  []int{20000000},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := AppendSignedShorts(nil, tt.values...)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValueOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppendUnsignedShorts(t *testing.T) {
	t.Parallel()
	got, err := AppendUnsignedShorts([]byte{0xAA}, 0, 319, 65535)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0x00, 0x00, 0x01, 0x3F, 0xFF, 0xFF}, got)

	_, err = AppendUnsignedShorts(nil, -1)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = AppendUnsignedShorts(nil, 65536)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestAppendHexColors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		colors  []string
		want    []byte
		wantErr bool
	}{
		{
			name:   "white and gray",
			colors: []string{"FFFFFF", "606060"},
			want:   []byte{0xFF, 0xFF, 0xFF, 0x60, 0x60, 0x60},
		},
		{
			name:   "lowercase digits",
			colors: []string{"a0b1c2"},
			want:   []byte{0xA0, 0xB1, 0xC2},
		},
		{
			name:    "too short",
			colors:  []string{"feet"},
			wantErr: true,
		},
		{
			name:    "non-hex digit",
			colors:  []string{"00000G"},
			wantErr: true,
		},
		{
			name:    "single digit",
			colors:  []string{"0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := AppendHexColors(nil, tt.colors...)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadHexColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
