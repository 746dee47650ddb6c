// SPDX-License-Identifier: EPL-2.0

package clock

import "errors"

var (
	// ErrUnknownRate indicates a compare-match value outside the supported set
	ErrUnknownRate = errors.New("unknown tick rate")
)
