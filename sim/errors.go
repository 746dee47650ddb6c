// SPDX-License-Identifier: EPL-2.0

package sim

import "errors"

var (
	// ErrNotConfigured indicates a timer run before Configure
	ErrNotConfigured = errors.New("timer not configured")
)
