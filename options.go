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
	"time"
)

// Option is a functional option for configuring a Display session
type Option func(*Display) error

// WithDimensions sets the screen size used for coordinate validation.
// The default is 320x240 (GTT35A).
func WithDimensions(width, height int) Option {
	return func(d *Display) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidArgument, width, height)
		}
		d.config.Width = width
		d.config.Height = height
		return nil
	}
}

// WithTimeout sets the default timeout for awaiting replies
func WithTimeout(timeout time.Duration) Option {
	return func(d *Display) error {
		if timeout <= 0 {
			return fmt.Errorf("%w: timeout must be positive", ErrInvalidArgument)
		}
		d.config.Timeout = timeout
		return nil
	}
}

// WithRetryConfig enables retrying command/status exchanges. Retries
// re-send the command, so enable this only when every command you
// issue is idempotent.
func WithRetryConfig(config *RetryConfig) Option {
	return func(d *Display) error {
		d.config.RetryConfig = config
		return nil
	}
}

// WithMaxRetries enables retries with the default backoff and the
// given attempt limit.
func WithMaxRetries(maxAttempts int) Option {
	return func(d *Display) error {
		if d.config.RetryConfig == nil {
			d.config.RetryConfig = DefaultRetryConfig()
		}
		d.config.RetryConfig.MaxAttempts = maxAttempts
		return nil
	}
}
