// SPDX-License-Identifier: EPL-2.0

package speaker

import "errors"

var (
	// ErrAlreadyOpen indicates a second Configure with a different rate
	ErrAlreadyOpen = errors.New("audio device already open at another rate")

	// ErrNotOpen indicates Start before Configure
	ErrNotOpen = errors.New("audio device not open")
)
