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
	"fmt"

	"github.com/Yook74/gtt-drivers/internal/syncutil"
)

// Registry maps caller-chosen component identifiers onto the one-byte
// handles the display understands. Callers may address a component by
// an explicit integer in [0, 255] or by an arbitrary string alias; an
// alias is bound to an automatically chosen unused handle on first
// use.
//
// Handles are never released: the protocol has no notion of
// destroying an on-device object, so a handle stays allocated for the
// life of the session even if the object it names is no longer drawn.
type Registry struct {
	mu      syncutil.Mutex
	aliases map[string]byte
	inUse   [256]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{aliases: make(map[string]byte)}
}

// Resolve translates id into a wire handle. id must be an int, a
// byte, or a string alias; any other type is ErrInvalidIDType.
//
// With isNew true, the id must not already be registered: an integer
// is claimed as-is and an alias is bound to the highest unused handle,
// scanning from 255 down to 1. Aliases are allocated from the top
// because callers picking their own numbers tend to pick small ones.
//
// With isNew false, the id must already be a bound alias or a claimed
// integer, and the existing handle is returned.
func (r *Registry) Resolve(id any, isNew bool) (byte, error) {
	switch v := id.(type) {
	case string:
		return r.resolveAlias(v, isNew)
	case int:
		if v < 0 || v > 255 {
			return 0, fmt.Errorf("%w: integer ID %d is outside [0, 255]", ErrInvalidArgument, v)
		}
		return r.resolveHandle(byte(v), isNew)
	case byte:
		return r.resolveHandle(v, isNew)
	default:
		return 0, fmt.Errorf("%w: got %T", ErrInvalidIDType, id)
	}
}

func (r *Registry) resolveAlias(alias string, isNew bool) (byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle, bound := r.aliases[alias]
	if !isNew {
		if !bound {
			return 0, fmt.Errorf("%w: alias %q", ErrUnknownID, alias)
		}
		return handle, nil
	}
	if bound {
		return 0, fmt.Errorf("%w: alias %q", ErrIDConflict, alias)
	}

	// Handle 0 is reserved for callers that claim it explicitly.
	for candidate := 255; candidate >= 1; candidate-- {
		if !r.inUse[candidate] {
			r.inUse[candidate] = true
			r.aliases[alias] = byte(candidate)
			return byte(candidate), nil
		}
	}
	return 0, fmt.Errorf("%w: cannot bind alias %q", ErrOutOfIDs, alias)
}

func (r *Registry) resolveHandle(handle byte, isNew bool) (byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if isNew {
		if r.inUse[handle] {
			return 0, fmt.Errorf("%w: handle %d", ErrIDConflict, handle)
		}
		r.inUse[handle] = true
		return handle, nil
	}
	if !r.inUse[handle] {
		return 0, fmt.Errorf("%w: handle %d", ErrUnknownID, handle)
	}
	return handle, nil
}

// InUse returns how many handles are currently allocated.
func (r *Registry) InUse() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, used := range r.inUse {
		if used {
			count++
		}
	}
	return count
}
